package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fittrack-dev/fittrack/internal/apperror"
	"github.com/fittrack-dev/fittrack/internal/logger"
	"github.com/fittrack-dev/fittrack/internal/serialize"
	"github.com/fittrack-dev/fittrack/internal/services"
	"github.com/fittrack-dev/fittrack/internal/utils"
)

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	// Identifier is a username or an email; Username and Email are
	// accepted as aliases so older clients keep working.
	Identifier string `json:"identifier"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

func (r LoginRequest) identifier() string {
	switch {
	case r.Identifier != "":
		return r.Identifier
	case r.Username != "":
		return r.Username
	default:
		return r.Email
	}
}

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Signup(ctx *gin.Context) {
	var req SignupRequest

	if err := ctx.BindJSON(&req); err != nil {
		logger.Debug("failed to bind signup payload", "error", err.Error())
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, token, err := h.auth.Register(ctx.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		apperror.Respond(ctx, err)
		return
	}

	logger.Info("user registered", "user_id", user.ID, "username", user.Username)

	ctx.JSON(http.StatusCreated, gin.H{
		"user":  serialize.User(*user),
		"token": token,
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, token, err := h.auth.Login(ctx.Request.Context(), req.identifier(), req.Password)
	if err != nil {
		apperror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":  serialize.User(*user),
		"token": token,
	})
}

// CheckSession confirms the presented token still resolves to a user.
func (h *AuthHandler) CheckSession(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		apperror.Respond(ctx, apperror.NewAuth(apperror.ReasonTokenInvalid, "User not authenticated"))
		return
	}

	user, err := h.auth.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		apperror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": serialize.User(*user)})
}
