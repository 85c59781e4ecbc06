package http

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/storefront/internal/auth/domain"
	"github.com/allisson/storefront/internal/httputil"
)

// TokenAuthenticator validates a bearer token and returns the identity it carries.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*authDomain.SecurityContext, error)
}

const bearerPrefix = "bearer "

// extractBearerToken returns the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", authDomain.ErrMissingToken
	}
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", authDomain.ErrMalformedToken
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", authDomain.ErrMalformedToken
	}
	return token, nil
}

// AuthenticationMiddleware validates the bearer token and stores the resulting SecurityContext in
// the request context for GetSecurityContext.
//
// When optional is false a missing or invalid token aborts with 401. When optional is true the
// request continues anonymously instead, which lets public routes ignore stale tokens.
// The validation reason is only logged at debug level; the response body is always generic.
func AuthenticationMiddleware(
	authenticator TokenAuthenticator,
	optional bool,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractBearerToken(c.GetHeader("Authorization"))
		if err == nil {
			var sc *authDomain.SecurityContext
			sc, err = authenticator.Authenticate(c.Request.Context(), token)
			if err == nil {
				c.Request = c.Request.WithContext(WithSecurityContext(c.Request.Context(), sc))
				logger.Debug("authentication successful",
					slog.String("subject", sc.Subject),
					slog.String("role", sc.Role.String()))
				c.Next()
				return
			}
		}

		logger.Debug("authentication failed",
			slog.String("reason", err.Error()),
			slog.String("path", c.FullPath()))

		if optional {
			c.Next()
			return
		}

		httputil.HandleErrorGin(c, err, logger)
		c.Abort()
	}
}

// AuthorizationMiddleware enforces the route's declared policy against the SecurityContext set by
// AuthenticationMiddleware. Missing identity yields 401, a role mismatch 403.
func AuthorizationMiddleware(policy authDomain.Policy, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, _ := GetSecurityContext(c.Request.Context())

		if err := policy.Authorize(sc); err != nil {
			attrs := []any{
				slog.String("policy", policy.String()),
				slog.String("path", c.FullPath()),
			}
			if sc != nil {
				attrs = append(attrs, slog.String("subject", sc.Subject), slog.String("role", sc.Role.String()))
			}
			logger.Debug("authorization failed", attrs...)

			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}

// Protect returns the middleware chain for a route declaring policy: authentication (optional for
// anonymous policies) followed by authorization.
//
//	router.DELETE("/api/products/:id",
//	    append(Protect(authDomain.RequireRole(authDomain.RoleAdmin), authUseCase, logger), handler)...)
func Protect(policy authDomain.Policy, authenticator TokenAuthenticator, logger *slog.Logger) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		AuthenticationMiddleware(authenticator, policy.Anonymous, logger),
		AuthorizationMiddleware(policy, logger),
	}
}
