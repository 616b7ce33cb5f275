package report

import (
	"net/http"

	"fintrack/internal/api"
	"fintrack/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetReport godoc
// @Summary      Monthly report
// @Description  Income, expenses, net savings and budget status of the current month, with budget notifications
// @Tags         report
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Report
// @Failure      401  {object}  api.ErrorResponse
// @Failure      403  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/report [get]
func (h *Handler) GetReport(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication token required."})
		return
	}

	r, err := h.service.Generate(c.Request.Context(), userID)
	if err != nil {
		api.RespondError(c, err, "Server error generating report.")
		return
	}

	c.JSON(http.StatusOK, r)
}
