package attendance

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// POST /attendance
	r.POST("/attendance", h.MarkAttendance)
	// GET /attendance?employee_id=&date_filter=
	r.GET("/attendance", h.ListAttendance)
}

func (h *Handler) MarkAttendance(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid json or missing required fields"))
		return
	}
	res, err := h.svc.Mark(c.Request.Context(), req)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) ListAttendance(c *gin.Context) {
	q := ListQuery{}
	if v := c.Query("employee_id"); v != "" {
		q.EmployeeID = &v
	}
	if v := c.Query("date_filter"); v != "" {
		q.Date = &v
	}
	res, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
