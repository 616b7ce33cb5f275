package user

import (
	"net/http"

	"fintrack/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary      Register new user
// @Description  Creates a user account with a bcrypt-hashed password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "User registration data"
// @Success      201      {object}  RegisterResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /api/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if !api.BindJSON(c, &req, ErrMissingCredentials.Message) {
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err, "Server error during registration.")
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		Message: "User registered successfully.",
		UserID:  user.ID,
	})
}

// Login godoc
// @Summary      Login user
// @Description  Authenticates by email and password and returns a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "User credentials"
// @Success      200      {object}  LoginResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !api.BindJSON(c, &req, ErrMissingCredentials.Message) {
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err, "Server error during login.")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful.",
		Token:   token,
	})
}
