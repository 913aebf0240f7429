package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fittrack-dev/fittrack/internal/apperror"
	"github.com/fittrack-dev/fittrack/internal/serialize"
	"github.com/fittrack-dev/fittrack/internal/services"
	"github.com/fittrack-dev/fittrack/internal/utils"
)

type UpdateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type ProfileHandler struct {
	auth *services.AuthService
}

func NewProfileHandler(auth *services.AuthService) *ProfileHandler {
	return &ProfileHandler{auth: auth}
}

func (h *ProfileHandler) Get(ctx *gin.Context) {
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

func (h *ProfileHandler) Update(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		apperror.Respond(ctx, apperror.NewAuth(apperror.ReasonTokenInvalid, "User not authenticated"))
		return
	}

	var req UpdateProfileRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.auth.UpdateProfile(ctx.Request.Context(), userID, req.Username, req.Email)
	if err != nil {
		apperror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    serialize.User(*user),
	})
}

func (h *ProfileHandler) ChangePassword(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		apperror.Respond(ctx, apperror.NewAuth(apperror.ReasonTokenInvalid, "User not authenticated"))
		return
	}

	var req ChangePasswordRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.auth.ChangePassword(ctx.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		apperror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
