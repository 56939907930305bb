package workout

import (
	"errors"
	"net/http"
	"time"

	"fitstack.dev/api/api"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type WorkoutController struct {
	WorkoutService *WorkoutService
}

func NewWorkoutController() *WorkoutController {
	return &WorkoutController{WorkoutService: NewWorkoutService()}
}

// CreateLog godoc
// @Summary      Log a workout
// @Description  Creates a workout log with nested set entries
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Param        log  body      CreateLogDTO  true  "Workout log"
// @Success      201  {object}  WorkoutLog  "Created log"
// @Failure      400  {object}  api.ErrorResponse "Invalid log payload"
// @Router       /workouts [post]
// @Security     BearerAuth
func (c *WorkoutController) CreateLog(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	var dto CreateLogDTO
	if err := ctx.BodyParser(&dto); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	logEntry, err := c.WorkoutService.CreateLog(userID, dto)
	if err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	return ctx.Status(http.StatusCreated).JSON(logEntry)
}

// ListLogs godoc
// @Summary      List my workout logs
// @Description  Newest first, filterable by date range
// @Tags         workouts
// @Produce      json
// @Param        from      query  string  false  "RFC3339 lower bound"
// @Param        to        query  string  false  "RFC3339 upper bound"
// @Param        page      query  int     false  "Page number"
// @Param        per_page  query  int     false  "Page size (max 100)"
// @Success      200  {array}   WorkoutLog  "Workout logs"
// @Failure      400  {object}  api.ErrorResponse "Invalid date filter"
// @Router       /workouts [get]
// @Security     BearerAuth
func (c *WorkoutController) ListLogs(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	filter := ListFilter{
		Page:    ctx.QueryInt("page", 1),
		PerPage: ctx.QueryInt("per_page", 20),
	}

	if from := ctx.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
				Error: "invalid 'from' date, expected RFC3339",
			})
		}
		filter.From = t
	}
	if to := ctx.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
				Error: "invalid 'to' date, expected RFC3339",
			})
		}
		filter.To = t
	}

	logs, err := c.WorkoutService.ListLogs(userID, filter)
	if err != nil {
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	return ctx.Status(http.StatusOK).JSON(logs)
}

// GetLog godoc
// @Summary      Get a workout log
// @Tags         workouts
// @Produce      json
// @Param        id   path      string  true  "Workout log ID"
// @Success      200  {object}  WorkoutLog  "Workout log"
// @Failure      400  {object}  api.ErrorResponse "Invalid log ID"
// @Failure      404  {object}  api.ErrorResponse "Log not found"
// @Router       /workouts/{id} [get]
// @Security     BearerAuth
func (c *WorkoutController) GetLog(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	id := ctx.Params("id")
	if err := uuid.Validate(id); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: "invalid workout log ID format",
		})
	}

	logEntry, err := c.WorkoutService.GetLog(userID, id)
	if err != nil {
		if errors.Is(err, ErrLogNotFound) {
			return ctx.Status(http.StatusNotFound).JSON(&api.ErrorResponse{
				Error: err.Error(),
			})
		}
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	return ctx.Status(http.StatusOK).JSON(logEntry)
}

// UpdateLog godoc
// @Summary      Update a workout log
// @Description  Updates duration and notes only; entries are immutable
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Param        id   path      string        true  "Workout log ID"
// @Param        log  body      UpdateLogDTO  true  "Fields to update"
// @Success      200  {object}  WorkoutLog  "Updated log"
// @Failure      400  {object}  api.ErrorResponse "Invalid request body"
// @Failure      404  {object}  api.ErrorResponse "Log not found"
// @Router       /workouts/{id} [patch]
// @Security     BearerAuth
func (c *WorkoutController) UpdateLog(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	id := ctx.Params("id")
	if err := uuid.Validate(id); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: "invalid workout log ID format",
		})
	}

	var dto UpdateLogDTO
	if err := ctx.BodyParser(&dto); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	logEntry, err := c.WorkoutService.UpdateLog(userID, id, dto)
	if err != nil {
		if errors.Is(err, ErrLogNotFound) {
			return ctx.Status(http.StatusNotFound).JSON(&api.ErrorResponse{
				Error: err.Error(),
			})
		}
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	return ctx.Status(http.StatusOK).JSON(logEntry)
}

// DeleteLog godoc
// @Summary      Delete a workout log
// @Description  Removes the log and its set entries
// @Tags         workouts
// @Produce      json
// @Param        id   path  string  true  "Workout log ID"
// @Success      204  "Deleted"
// @Failure      400  {object}  api.ErrorResponse "Invalid log ID"
// @Failure      404  {object}  api.ErrorResponse "Log not found"
// @Router       /workouts/{id} [delete]
// @Security     BearerAuth
func (c *WorkoutController) DeleteLog(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	id := ctx.Params("id")
	if err := uuid.Validate(id); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: "invalid workout log ID format",
		})
	}

	if err := c.WorkoutService.DeleteLog(userID, id); err != nil {
		if errors.Is(err, ErrLogNotFound) {
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
