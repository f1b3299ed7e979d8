package handlers

import (
	"net/http"

	response "yuanli_transport/internal/adapter/http/dto/response"
	"yuanli_transport/internal/usecase"
	"yuanli_transport/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the read-only admin projections.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.usecase.Overview(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOverview(overview))
}

// GetKanban returns the status-column board. The optional handler query
// narrows every column to one staff member ("all" or absent keeps everyone).
func (h *DashboardHandler) GetKanban(c *gin.Context) {
	board, err := h.usecase.Kanban(c.Request.Context(), c.DefaultQuery("handler", "all"))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromKanban(board))
}
