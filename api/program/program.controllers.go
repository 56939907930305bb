package program

import (
	"errors"
	"net/http"

	"fitstack.dev/api/api"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProgramController struct {
	ProgramService *ProgramService
}

func NewProgramController() *ProgramController {
	return &ProgramController{ProgramService: NewProgramService()}
}

// ListPrograms godoc
// @Summary      List active programs
// @Tags         programs
// @Produce      json
// @Success      200  {array}   Program  "Programs open for enrollment"
// @Failure      500  {object}  api.ErrorResponse "Internal server error"
// @Router       /programs [get]
func (c *ProgramController) ListPrograms(ctx *fiber.Ctx) error {
	programs, err := c.ProgramService.ListActive()
	if err != nil {
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	return ctx.Status(http.StatusOK).JSON(programs)
}

// GetProgram godoc
// @Summary      Get program with schedule
// @Tags         programs
// @Produce      json
// @Param        id   path      string  true  "Program ID"
// @Success      200  {object}  Program  "Program with its exercise schedule"
// @Failure      400  {object}  api.ErrorResponse "Invalid program ID"
// @Failure      404  {object}  api.ErrorResponse "Program not found"
// @Router       /programs/{id} [get]
func (c *ProgramController) GetProgram(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := uuid.Validate(id); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: "invalid program ID format",
		})
	}

	p, err := c.ProgramService.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrProgramNotFound) {
			return ctx.Status(http.StatusNotFound).JSON(&api.ErrorResponse{
				Error: err.Error(),
			})
		}
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	return ctx.Status(http.StatusOK).JSON(p)
}

// CreateProgram godoc
// @Summary      Create program
// @Description  Creates a draft program with its exercise schedule (admin only)
// @Tags         programs
// @Accept       json
// @Produce      json
// @Param        program  body      CreateProgramDTO  true  "Program data"
// @Success      201  {object}  Program  "Created program"
// @Failure      400  {object}  api.ErrorResponse "Invalid request"
// @Router       /programs [post]
// @Security     BearerAuth
func (c *ProgramController) CreateProgram(ctx *fiber.Ctx) error {
	var dto CreateProgramDTO
	if err := ctx.BodyParser(&dto); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	p, err := c.ProgramService.Create(dto)
	if err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	return ctx.Status(http.StatusCreated).JSON(p)
}

// UpdateProgram godoc
// @Summary      Update program
// @Tags         programs
// @Accept       json
// @Produce      json
// @Param        id       path      string            true  "Program ID"
// @Param        program  body      UpdateProgramDTO  true  "Fields to update"
// @Success      200  {object}  Program  "Updated program"
// @Failure      400  {object}  api.ErrorResponse "Invalid request"
// @Failure      404  {object}  api.ErrorResponse "Program not found"
// @Router       /programs/{id} [patch]
// @Security     BearerAuth
func (c *ProgramController) UpdateProgram(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := uuid.Validate(id); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: "invalid program ID format",
		})
	}

	var dto UpdateProgramDTO
	if err := ctx.BodyParser(&dto); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	p, err := c.ProgramService.Update(id, dto)
	if err != nil {
		if errors.Is(err, ErrProgramNotFound) {
			return ctx.Status(http.StatusNotFound).JSON(&api.ErrorResponse{
				Error: err.Error(),
			})
		}
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	return ctx.Status(http.StatusOK).JSON(p)
}

// ArchiveProgram godoc
// @Summary      Archive program
// @Tags         programs
// @Produce      json
// @Param        id   path  string  true  "Program ID"
// @Success      204  "Archived"
// @Failure      404  {object}  api.ErrorResponse "Program not found"
// @Router       /programs/{id} [delete]
// @Security     BearerAuth
func (c *ProgramController) ArchiveProgram(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := uuid.Validate(id); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: "invalid program ID format",
		})
	}

	if err := c.ProgramService.Archive(id); err != nil {
		if errors.Is(err, ErrProgramNotFound) {
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

// Enroll godoc
// @Summary      Enroll in a program
// @Description  Creates an active enrollment with the cursor at week 1, day 1
// @Tags         enrollments
// @Produce      json
// @Param        id   path      string  true  "Program ID"
// @Success      201  {object}  Enrollment  "Created enrollment"
// @Failure      400  {object}  api.ErrorResponse "Program not open for enrollment"
// @Failure      404  {object}  api.ErrorResponse "Program not found"
// @Failure      409  {object}  api.ErrorResponse "Already enrolled"
// @Router       /programs/{id}/enroll [post]
// @Security     BearerAuth
func (c *ProgramController) Enroll(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	programID := ctx.Params("id")
	if err := uuid.Validate(programID); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: "invalid program ID format",
		})
	}

	e, err := c.ProgramService.Enroll(userID, programID)
	if err != nil {
		switch {
		case errors.Is(err, ErrProgramNotFound):
			return ctx.Status(http.StatusNotFound).JSON(&api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrAlreadyEnrolled):
			return ctx.Status(http.StatusConflict).JSON(&api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrProgramNotActive):
			return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{Error: err.Error()})
		}
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{Error: err.Error()})
	}
	return ctx.Status(http.StatusCreated).JSON(e)
}

// MyEnrollments godoc
// @Summary      List my enrollments
// @Tags         enrollments
// @Produce      json
// @Success      200  {array}   Enrollment  "Enrollments, newest first"
// @Failure      500  {object}  api.ErrorResponse "Internal server error"
// @Router       /enrollments [get]
// @Security     BearerAuth
func (c *ProgramController) MyEnrollments(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	enrollments, err := c.ProgramService.ListEnrollments(userID)
	if err != nil {
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	return ctx.Status(http.StatusOK).JSON(enrollments)
}

// AdvanceEnrollment godoc
// @Summary      Complete current training day
// @Description  Moves the enrollment cursor forward, completing the program past the final week
// @Tags         enrollments
// @Produce      json
// @Param        id   path      string  true  "Enrollment ID"
// @Success      200  {object}  Enrollment  "Updated enrollment"
// @Failure      400  {object}  api.ErrorResponse "Enrollment no longer active"
// @Failure      404  {object}  api.ErrorResponse "Enrollment not found"
// @Router       /enrollments/{id}/advance [post]
// @Security     BearerAuth
func (c *ProgramController) AdvanceEnrollment(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	id := ctx.Params("id")
	if err := uuid.Validate(id); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: "invalid enrollment ID format",
		})
	}

	e, err := c.ProgramService.Advance(userID, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrEnrollmentNotFound):
			return ctx.Status(http.StatusNotFound).JSON(&api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrEnrollmentClosed):
			return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{Error: err.Error()})
		}
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{Error: err.Error()})
	}
	return ctx.Status(http.StatusOK).JSON(e)
}

// AbandonEnrollment godoc
// @Summary      Abandon an enrollment
// @Tags         enrollments
// @Produce      json
// @Param        id   path  string  true  "Enrollment ID"
// @Success      204  "Abandoned"
// @Failure      400  {object}  api.ErrorResponse "Enrollment no longer active"
// @Failure      404  {object}  api.ErrorResponse "Enrollment not found"
// @Router       /enrollments/{id} [delete]
// @Security     BearerAuth
func (c *ProgramController) AbandonEnrollment(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	id := ctx.Params("id")
	if err := uuid.Validate(id); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: "invalid enrollment ID format",
		})
	}

	if err := c.ProgramService.Abandon(userID, id); err != nil {
		switch {
		case errors.Is(err, ErrEnrollmentNotFound):
			return ctx.Status(http.StatusNotFound).JSON(&api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrEnrollmentClosed):
			return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{Error: err.Error()})
		}
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{Error: err.Error()})
	}
	return ctx.SendStatus(http.StatusNoContent)
}
