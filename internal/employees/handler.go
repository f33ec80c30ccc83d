package employees

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// POST /employees
	r.POST("/employees", h.CreateEmployee)
	// GET /employees
	r.GET("/employees", h.ListEmployees)
	// DELETE /employees/:employee_id (cascades to attendance)
	r.DELETE("/employees/:employee_id", h.DeleteEmployee)
}

func (h *Handler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "invalid json or missing required fields"))
		return
	}
	res, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) ListEmployees(c *gin.Context) {
	res, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("employee_id")); err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.Status(http.StatusNoContent)
}
