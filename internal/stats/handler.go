package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// GET /stats
	r.GET("/stats", h.OverallStats)
	// GET /stats/today
	r.GET("/stats/today", h.TodayStats)
	// GET /attendance/summary/:employee_id
	r.GET("/attendance/summary/:employee_id", h.EmployeeSummary)
}

func (h *Handler) OverallStats(c *gin.Context) {
	res, err := h.svc.Overall(c.Request.Context())
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) TodayStats(c *gin.Context) {
	res, err := h.svc.Today(c.Request.Context())
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) EmployeeSummary(c *gin.Context) {
	res, err := h.svc.Summary(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
