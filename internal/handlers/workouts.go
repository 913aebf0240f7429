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

type WorkoutHandler struct {
	workouts *services.WorkoutService
}

func NewWorkoutHandler(workouts *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

func (h *WorkoutHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		apperror.Respond(ctx, apperror.NewAuth(apperror.ReasonTokenInvalid, "User not authenticated"))
		return
	}

	workouts, err := h.workouts.List(ctx.Request.Context(), userID)
	if err != nil {
		apperror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, serialize.Workouts(workouts))
}

func (h *WorkoutHandler) Get(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		apperror.Respond(ctx, apperror.NewAuth(apperror.ReasonTokenInvalid, "User not authenticated"))
		return
	}

	workoutID, ok := pathID(ctx, "id")
	if !ok {
		apperror.Respond(ctx, apperror.NewNotFound("Workout"))
		return
	}

	workout, err := h.workouts.Get(ctx.Request.Context(), userID, workoutID)
	if err != nil {
		apperror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, serialize.Workout(*workout))
}

func (h *WorkoutHandler) Create(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		apperror.Respond(ctx, apperror.NewAuth(apperror.ReasonTokenInvalid, "User not authenticated"))
		return
	}

	var req services.CreateWorkoutInput

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	workout, err := h.workouts.Create(ctx.Request.Context(), userID, req)
	if err != nil {
		apperror.Respond(ctx, err)
		return
	}

	logger.Info("workout created", "user_id", userID, "workout_id", workout.ID, "entries", len(workout.WorkoutExercises))

	ctx.JSON(http.StatusCreated, serialize.Workout(*workout))
}

func (h *WorkoutHandler) AddItem(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		apperror.Respond(ctx, apperror.NewAuth(apperror.ReasonTokenInvalid, "User not authenticated"))
		return
	}

	workoutID, ok := pathID(ctx, "id")
	if !ok {
		apperror.Respond(ctx, apperror.NewNotFound("Workout"))
		return
	}

	var req services.WorkoutItemInput

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	entry, err := h.workouts.AddItem(ctx.Request.Context(), userID, workoutID, req)
	if err != nil {
		apperror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, serialize.WorkoutExercise(*entry))
}

func (h *WorkoutHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		apperror.Respond(ctx, apperror.NewAuth(apperror.ReasonTokenInvalid, "User not authenticated"))
		return
	}

	workoutID, ok := pathID(ctx, "id")
	if !ok {
		apperror.Respond(ctx, apperror.NewNotFound("Workout"))
		return
	}

	if err := h.workouts.Delete(ctx.Request.Context(), userID, workoutID); err != nil {
		apperror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Workout deleted"})
}
