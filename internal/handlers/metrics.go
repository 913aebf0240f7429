package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fittrack-dev/fittrack/internal/apperror"
	"github.com/fittrack-dev/fittrack/internal/serialize"
	"github.com/fittrack-dev/fittrack/internal/services"
	"github.com/fittrack-dev/fittrack/internal/utils"
)

const summaryRecordsLimit = 3

type MetricsHandler struct {
	metrics   *services.MetricsService
	analytics *services.AnalyticsService
}

func NewMetricsHandler(metrics *services.MetricsService, analytics *services.AnalyticsService) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, analytics: analytics}
}

func (h *MetricsHandler) LogWater(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		apperror.Respond(ctx, apperror.NewAuth(apperror.ReasonTokenInvalid, "User not authenticated"))
		return
	}

	var req services.LogWaterInput

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	entry, err := h.metrics.LogWater(ctx.Request.Context(), userID, req)
	if err != nil {
		apperror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Water intake logged successfully",
		"log":     serialize.WaterLog(*entry),
	})
}

// LogWeight answers 201 when a new row was written and 200 when an
// existing row for the same date was updated.
func (h *MetricsHandler) LogWeight(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		apperror.Respond(ctx, apperror.NewAuth(apperror.ReasonTokenInvalid, "User not authenticated"))
		return
	}

	var req services.LogWeightInput

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	entry, created, err := h.metrics.LogWeight(ctx.Request.Context(), userID, req)
	if err != nil {
		apperror.Respond(ctx, err)
		return
	}

	status := http.StatusOK
	message := "Weight updated successfully"
	if created {
		status = http.StatusCreated
		message = "Weight logged successfully"
	}

	ctx.JSON(status, gin.H{
		"message": message,
		"log":     serialize.WeightLog(*entry),
	})
}

func (h *MetricsHandler) Summary(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		apperror.Respond(ctx, apperror.NewAuth(apperror.ReasonTokenInvalid, "User not authenticated"))
		return
	}

	reqCtx := ctx.Request.Context()

	waterToday, err := h.metrics.WaterTotalForDay(reqCtx, userID, time.Now().UTC())
	if err != nil {
		apperror.Respond(ctx, err)
		return
	}

	latest, err := h.metrics.LatestWeight(reqCtx, userID)
	if err != nil {
		apperror.Respond(ctx, err)
		return
	}

	var latestWeight *float64
	if latest != nil {
		latestWeight = &latest.WeightKG
	}

	trend, err := h.metrics.WeightTrend(reqCtx, userID)
	if err != nil {
		apperror.Respond(ctx, err)
		return
	}

	records, err := h.analytics.PersonalRecords(reqCtx, userID, summaryRecordsLimit)
	if err != nil {
		apperror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"water_intake_today": waterToday,
		"latest_weight":      latestWeight,
		"weight_trend":       serialize.WeightLogs(trend),
		"personal_records":   records,
	})
}
