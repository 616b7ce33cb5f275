package wallet

import (
	"net/http"
	"strconv"

	"fintrack/internal/api"
	"fintrack/internal/apperr"
	"fintrack/internal/auth"

	"github.com/gin-gonic/gin"
)

var errInvalidWalletID = apperr.Validation("Invalid wallet id.")

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateWallet godoc
// @Summary      Create wallet
// @Description  Creates a wallet with a zero balance for the authenticated user.
// @Tags         wallets
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateWalletRequest  true  "Wallet data"
// @Success      201      {object}  Wallet
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /api/wallets [post]
func (h *Handler) CreateWallet(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication token required."})
		return
	}

	var req CreateWalletRequest
	if !api.BindJSON(c, &req, ErrNameRequired.Message) {
		return
	}

	w, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		api.RespondError(c, err, "Server error creating wallet.")
		return
	}

	c.JSON(http.StatusCreated, w)
}

// ListWallets godoc
// @Summary      List wallets
// @Tags         wallets
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Wallet
// @Failure      401  {object}  api.ErrorResponse
// @Failure      403  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/wallets [get]
func (h *Handler) ListWallets(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication token required."})
		return
	}

	wallets, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		api.RespondError(c, err, "Server error fetching wallets.")
		return
	}

	c.JSON(http.StatusOK, wallets)
}

// DeleteWallet godoc
// @Summary      Delete wallet
// @Description  Deletes the wallet and all of its transactions.
// @Tags         wallets
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Wallet ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/wallets/{id} [delete]
func (h *Handler) DeleteWallet(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication token required."})
		return
	}

	walletID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || walletID <= 0 {
		api.RespondError(c, errInvalidWalletID, "")
		return
	}

	if err := h.service.Delete(c.Request.Context(), walletID, userID); err != nil {
		api.RespondError(c, err, "Server error deleting wallet.")
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Wallet deleted successfully."})
}

// ReconcileWallet godoc
// @Summary      Reconcile wallet balance
// @Description  Recomputes the balance from the wallet's transactions and stores it.
// @Tags         wallets
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Wallet ID"
// @Success      200  {object}  Reconciliation
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/wallets/{id}/reconcile [post]
func (h *Handler) ReconcileWallet(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication token required."})
		return
	}

	walletID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || walletID <= 0 {
		api.RespondError(c, errInvalidWalletID, "")
		return
	}

	rec, err := h.service.Reconcile(c.Request.Context(), walletID, userID)
	if err != nil {
		api.RespondError(c, err, "Server error reconciling wallet.")
		return
	}

	c.JSON(http.StatusOK, rec)
}
