package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/storefront/internal/auth/domain"
	"github.com/allisson/storefront/internal/auth/http/dto"
	authUseCase "github.com/allisson/storefront/internal/auth/usecase"
	"github.com/allisson/storefront/internal/httputil"
	customValidation "github.com/allisson/storefront/internal/validation"
)

// AuthHandler handles HTTP requests for login and caller introspection.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(authUseCase authUseCase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// LoginHandler exchanges a username and password for a bearer token.
// POST /api/auth/login - No authentication required.
// Returns 200 OK with the token, its type and expiration time.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	issued, err := h.authUseCase.Login(c.Request.Context(), req.ToLoginInput())
	if err != nil {
		h.logger.Info("login failed",
			slog.String("username", req.Username),
			slog.String("client_ip", c.ClientIP()),
			slog.String("reason", err.Error()))
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("login succeeded", slog.String("username", req.Username))

	c.JSON(http.StatusOK, dto.MapIssuedTokenToResponse(issued))
}

// MeHandler returns the identity carried by the caller's token.
// GET /api/auth/me - Requires any valid token.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	sc, ok := GetSecurityContext(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrMissingToken, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSecurityContextToResponse(sc))
}
