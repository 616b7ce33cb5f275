package budget

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

// SetBudget godoc
// @Summary      Set budget
// @Description  Creates or overwrites the budget for a category and month. Month defaults to the current one.
// @Tags         budgets
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      SetBudgetRequest  true  "Budget data"
// @Success      200      {object}  api.MessageResponse
// @Success      201      {object}  api.MessageResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /api/budgets [post]
func (h *Handler) SetBudget(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication token required."})
		return
	}

	var req SetBudgetRequest
	if !api.BindJSON(c, &req, ErrInvalidBudget.Message) {
		return
	}

	created, err := h.service.Set(c.Request.Context(), userID, req)
	if err != nil {
		api.RespondError(c, err, "Server error setting budget.")
		return
	}

	if created {
		c.JSON(http.StatusCreated, api.MessageResponse{Message: "Budget set successfully."})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Budget updated successfully."})
}

// ListBudgets godoc
// @Summary      List budgets
// @Description  Lists budgets of the current month, or of the month given as YYYY-MM.
// @Tags         budgets
// @Security     BearerAuth
// @Produce      json
// @Param        month  query     string  false  "Month (YYYY-MM)"
// @Success      200    {array}   Limit
// @Failure      400    {object}  api.ErrorResponse
// @Failure      500    {object}  api.ErrorResponse
// @Router       /api/budgets [get]
func (h *Handler) ListBudgets(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication token required."})
		return
	}

	limits, err := h.service.List(c.Request.Context(), userID, c.Query("month"))
	if err != nil {
		api.RespondError(c, err, "Server error fetching budgets.")
		return
	}

	c.JSON(http.StatusOK, limits)
}
