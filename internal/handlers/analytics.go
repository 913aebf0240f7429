package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fittrack-dev/fittrack/internal/apperror"
	"github.com/fittrack-dev/fittrack/internal/services"
	"github.com/fittrack-dev/fittrack/internal/utils"
)

type AnalyticsHandler struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsHandler(analytics *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) Stats(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		apperror.Respond(ctx, apperror.NewAuth(apperror.ReasonTokenInvalid, "User not authenticated"))
		return
	}

	stats, err := h.analytics.Stats(ctx.Request.Context(), userID)
	if err != nil {
		apperror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
