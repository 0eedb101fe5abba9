package http

import (
	"errors"
	"net/http"
	"strings"

	"fasttechfoods/internal/core/domain/model/auth"
	"fasttechfoods/internal/core/ports"
	"fasttechfoods/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	claimsContextKey = "auth.claims"
	tokenContextKey  = "auth.token"
)

// BearerAuth verifies the Authorization header on every request and attaches
// the resolved claims plus the raw token to the echo context. The raw token
// is kept so the kitchen surface can forward it to the order service
// unchanged.
func BearerAuth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer credentials",
				})
			}

			claims, err := verifier.Verify(ctx.Request().Context(), token)
			if err != nil {
				if errors.Is(err, errs.ErrForbidden) {
					return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
						Code:    http.StatusUnauthorized,
						Message: "invalid bearer credentials",
					})
				}
				return writeError(ctx, err)
			}

			ctx.Set(claimsContextKey, claims)
			ctx.Set(tokenContextKey, token)
			return next(ctx)
		}
	}
}

func callerClaims(ctx echo.Context) (auth.Claims, bool) {
	claims, ok := ctx.Get(claimsContextKey).(auth.Claims)
	return claims, ok
}

func callerToken(ctx echo.Context) string {
	token, _ := ctx.Get(tokenContextKey).(string)
	return token
}
