package exercise

import (
	"errors"
	"net/http"

	"fitstack.dev/api/api"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ExerciseController struct {
	ExerciseService *ExerciseService
}

func NewExerciseController() *ExerciseController {
	return &ExerciseController{ExerciseService: NewExerciseService()}
}

// ListExercises godoc
// @Summary      List active exercises
// @Description  Returns the public exercise catalog, filterable by muscle group and equipment
// @Tags         exercises
// @Produce      json
// @Param        muscle_group  query  string  false  "Filter by muscle group"
// @Param        equipment     query  string  false  "Filter by equipment"
// @Param        page          query  int     false  "Page number"
// @Param        per_page      query  int     false  "Page size (max 100)"
// @Success      200  {array}   Exercise  "Exercises"
// @Failure      500  {object}  api.ErrorResponse "Internal server error"
// @Router       /exercises [get]
func (c *ExerciseController) ListExercises(ctx *fiber.Ctx) error {
	filter := ListFilter{
		MuscleGroup: ctx.Query("muscle_group"),
		Equipment:   ctx.Query("equipment"),
		Page:        ctx.QueryInt("page", 1),
		PerPage:     ctx.QueryInt("per_page", 50),
	}

	exercises, err := c.ExerciseService.ListActive(ctx.Context(), filter)
	if err != nil {
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	return ctx.Status(http.StatusOK).JSON(exercises)
}

// GetExercise godoc
// @Summary      Get exercise by ID
// @Tags         exercises
// @Produce      json
// @Param        id   path      string  true  "Exercise ID"
// @Success      200  {object}  Exercise  "Exercise found"
// @Failure      400  {object}  api.ErrorResponse "Invalid exercise ID"
// @Failure      404  {object}  api.ErrorResponse "Exercise not found"
// @Router       /exercises/{id} [get]
func (c *ExerciseController) GetExercise(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := uuid.Validate(id); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: "invalid exercise ID format",
		})
	}

	ex, err := c.ExerciseService.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			return ctx.Status(http.StatusNotFound).JSON(&api.ErrorResponse{
				Error: err.Error(),
			})
		}
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	return ctx.Status(http.StatusOK).JSON(ex)
}

// CreateExercise godoc
// @Summary      Create exercise
// @Description  Creates a draft catalog entry (admin only)
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Param        exercise  body      CreateExerciseDTO  true  "Exercise data"
// @Success      201  {object}  Exercise  "Created exercise"
// @Failure      400  {object}  api.ErrorResponse "Invalid request body"
// @Failure      409  {object}  api.ErrorResponse "Duplicate exercise name"
// @Router       /exercises [post]
// @Security     BearerAuth
func (c *ExerciseController) CreateExercise(ctx *fiber.Ctx) error {
	var dto CreateExerciseDTO
	if err := ctx.BodyParser(&dto); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	ex, err := c.ExerciseService.Create(dto)
	if err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return ctx.Status(http.StatusConflict).JSON(&api.ErrorResponse{
				Error: err.Error(),
			})
		}
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	return ctx.Status(http.StatusCreated).JSON(ex)
}

// UpdateExercise godoc
// @Summary      Update exercise
// @Description  Updates catalog entry fields or status (admin only)
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Param        id        path      string             true  "Exercise ID"
// @Param        exercise  body      UpdateExerciseDTO  true  "Fields to update"
// @Success      200  {object}  Exercise  "Updated exercise"
// @Failure      400  {object}  api.ErrorResponse "Invalid request"
// @Failure      404  {object}  api.ErrorResponse "Exercise not found"
// @Router       /exercises/{id} [patch]
// @Security     BearerAuth
func (c *ExerciseController) UpdateExercise(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := uuid.Validate(id); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: "invalid exercise ID format",
		})
	}

	var dto UpdateExerciseDTO
	if err := ctx.BodyParser(&dto); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	ex, err := c.ExerciseService.Update(id, dto)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			return ctx.Status(http.StatusNotFound).JSON(&api.ErrorResponse{
				Error: err.Error(),
			})
		}
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	return ctx.Status(http.StatusOK).JSON(ex)
}

// ArchiveExercise godoc
// @Summary      Archive exercise
// @Description  Archives a published exercise, deletes it if still a draft (admin only)
// @Tags         exercises
// @Produce      json
// @Param        id   path  string  true  "Exercise ID"
// @Success      204  "Archived"
// @Failure      400  {object}  api.ErrorResponse "Invalid exercise ID"
// @Failure      404  {object}  api.ErrorResponse "Exercise not found"
// @Router       /exercises/{id} [delete]
// @Security     BearerAuth
func (c *ExerciseController) ArchiveExercise(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := uuid.Validate(id); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: "invalid exercise ID format",
		})
	}

	if err := c.ExerciseService.Archive(id); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			return ctx.Status(http.StatusNotFound).JSON(&api.ErrorResponse{
				Error: err.Error(),
			})
		}
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	return ctx.SendStatus(http.StatusNoContent)
}
