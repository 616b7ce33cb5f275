package transaction

import "fintrack/internal/apperr"

var (
	ErrMissingFields      = apperr.Validation("Missing required fields.")
	ErrInvalidType        = apperr.Validation("Invalid transaction type.")
	ErrAmountNotPositive  = apperr.Validation("Amount must be positive.")
	ErrAmountTooLarge     = apperr.Validation("Amount is too large.")
	ErrInvalidDate        = apperr.Validation("Invalid date. Use YYYY-MM-DD.")
	ErrInvalidWalletID    = apperr.Validation("Invalid walletId.")
	ErrInvalidDateFilter  = apperr.Validation("Invalid date filter. Use YYYY-MM-DD.")
	ErrInvalidID          = apperr.Validation("Invalid transaction id.")
	ErrWalletAccessDenied = apperr.Forbidden("Access denied to this wallet.")
	ErrInsufficientFunds  = apperr.New(apperr.KindInsufficientFunds, "Insufficient funds.")
	ErrBalanceOutOfRange  = apperr.Validation("Resulting wallet balance is out of range.")
	ErrNotFound           = apperr.NotFound("Transaction not found.")
	ErrAccessDenied       = apperr.Forbidden("Access denied.")
	ErrNotFoundOrDenied   = apperr.NotFound("Transaction not found or access denied.")
	ErrTargetDenied       = apperr.Forbidden("Access denied to new wallet.")
)
