package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fittrack-dev/fittrack/internal/apperror"
	"github.com/fittrack-dev/fittrack/internal/auth"
	"github.com/fittrack-dev/fittrack/internal/models"
)

// ContextUserKey is where the authenticated user lives in the gin context.
const ContextUserKey = "user"

type AuthenticatedUser struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
}

// RequireAuth verifies the bearer token, resolves it to a stored user and
// puts the identity into the request context. Failures are 401s with a
// reason code distinguishing missing, expired, invalid and
// malformed-subject tokens.
func RequireAuth(tokens *auth.TokenManager, gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			abort(ctx, apperror.NewAuth(apperror.ReasonTokenMissing, "Authorization token is required"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			abort(ctx, apperror.NewAuth(apperror.ReasonTokenInvalid, "Authorization header format must be Bearer {token}"))
			return
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrTokenExpired):
				abort(ctx, apperror.NewAuth(apperror.ReasonTokenExpired, "Token has expired"))
			case errors.Is(err, auth.ErrMalformedSubject):
				abort(ctx, apperror.NewAuth(apperror.ReasonMalformedSubject, "Token subject is malformed"))
			default:
				abort(ctx, apperror.NewAuth(apperror.ReasonTokenInvalid, "Invalid token"))
			}
			return
		}

		var user models.User
		if err := gdb.First(&user, userID).Error; err != nil {
			abort(ctx, apperror.NewAuth(apperror.ReasonTokenInvalid, "User not found"))
			return
		}

		ctx.Set(ContextUserKey, AuthenticatedUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		})
		ctx.Next()
	}
}

func abort(ctx *gin.Context, err error) {
	apperror.Respond(ctx, err)
	ctx.Abort()
}
