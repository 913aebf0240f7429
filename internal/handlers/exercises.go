package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fittrack-dev/fittrack/internal/apperror"
	"github.com/fittrack-dev/fittrack/internal/serialize"
	"github.com/fittrack-dev/fittrack/internal/services"
)

type ExerciseHandler struct {
	exercises *services.ExerciseService
}

func NewExerciseHandler(exercises *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exercises: exercises}
}

func (h *ExerciseHandler) List(ctx *gin.Context) {
	exercises, err := h.exercises.List(ctx.Request.Context())
	if err != nil {
		apperror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, serialize.Exercises(exercises))
}

func (h *ExerciseHandler) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		apperror.Respond(ctx, apperror.NewNotFound("Exercise"))
		return
	}

	exercise, err := h.exercises.Get(ctx.Request.Context(), id)
	if err != nil {
		apperror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, serialize.Exercise(*exercise))
}

func (h *ExerciseHandler) Create(ctx *gin.Context) {
	var req services.ExerciseInput

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	exercise, err := h.exercises.Create(ctx.Request.Context(), req)
	if err != nil {
		apperror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, serialize.Exercise(*exercise))
}

func (h *ExerciseHandler) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		apperror.Respond(ctx, apperror.NewNotFound("Exercise"))
		return
	}

	var req services.ExerciseInput

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	exercise, err := h.exercises.Update(ctx.Request.Context(), id, req)
	if err != nil {
		apperror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, serialize.Exercise(*exercise))
}

func (h *ExerciseHandler) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		apperror.Respond(ctx, apperror.NewNotFound("Exercise"))
		return
	}

	if err := h.exercises.Delete(ctx.Request.Context(), id); err != nil {
		apperror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Exercise deleted"})
}

// pathID parses a numeric path parameter. A non-numeric value is treated
// the same as a missing row.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
