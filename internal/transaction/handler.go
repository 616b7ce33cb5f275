package transaction

import (
	"net/http"
	"strconv"

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

// CreateTransaction godoc
// @Summary      Add transaction
// @Description  Records an income or expense and adjusts the wallet balance in the same store transaction.
// @Tags         transactions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      TransactionRequest  true  "Transaction data"
// @Success      201      {object}  CreateResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /api/transactions [post]
func (h *Handler) CreateTransaction(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication token required."})
		return
	}

	var req TransactionRequest
	if !api.BindJSON(c, &req, ErrMissingFields.Message) {
		return
	}

	id, balance, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		api.RespondError(c, err, "Server error adding transaction.")
		return
	}

	c.JSON(http.StatusCreated, CreateResponse{
		Message:    "Transaction added successfully.",
		ID:         id,
		NewBalance: balance,
	})
}

// ListTransactions godoc
// @Summary      List transactions
// @Description  Lists the caller's transactions, newest date first. The date range applies only when both ends are given.
// @Tags         transactions
// @Security     BearerAuth
// @Produce      json
// @Param        walletId   query     int     false  "Wallet ID"
// @Param        startDate  query     string  false  "Start date (YYYY-MM-DD)"
// @Param        endDate    query     string  false  "End date (YYYY-MM-DD)"
// @Success      200        {array}   Transaction
// @Failure      400        {object}  api.ErrorResponse
// @Failure      403        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /api/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication token required."})
		return
	}

	filter, err := ParseFilter(c.Query("walletId"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		api.RespondError(c, err, "")
		return
	}

	transactions, err := h.service.List(c.Request.Context(), userID, filter)
	if err != nil {
		api.RespondError(c, err, "Server error fetching transactions.")
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// UpdateTransaction godoc
// @Summary      Edit transaction
// @Description  Reverts the old amount from its wallet and applies the new one to the target wallet.
// @Tags         transactions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                 true  "Transaction ID"
// @Param        request  body      TransactionRequest  true  "Transaction data"
// @Success      200      {object}  api.MessageResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /api/transactions/{id} [put]
func (h *Handler) UpdateTransaction(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication token required."})
		return
	}

	transactionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || transactionID <= 0 {
		api.RespondError(c, ErrInvalidID, "")
		return
	}

	var req TransactionRequest
	if !api.BindJSON(c, &req, ErrMissingFields.Message) {
		return
	}

	if err := h.service.Update(c.Request.Context(), userID, transactionID, req); err != nil {
		api.RespondError(c, err, "Server error updating transaction.")
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Transaction updated successfully."})
}

// DeleteTransaction godoc
// @Summary      Delete transaction
// @Description  Deletes the transaction and reverts its effect on the wallet balance.
// @Tags         transactions
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Transaction ID"
// @Success      200  {object}  DeleteResponse
// @Failure      403  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/transactions/{id} [delete]
func (h *Handler) DeleteTransaction(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication token required."})
		return
	}

	transactionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || transactionID <= 0 {
		api.RespondError(c, ErrInvalidID, "")
		return
	}

	balance, err := h.service.Delete(c.Request.Context(), userID, transactionID)
	if err != nil {
		api.RespondError(c, err, "Server error deleting transaction.")
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{
		Message:    "Transaction deleted successfully.",
		NewBalance: balance,
	})
}
