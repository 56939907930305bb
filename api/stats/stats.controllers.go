package stats

import (
	"net/http"

	"fitstack.dev/api/api"
	"github.com/gofiber/fiber/v2"
)

type StatsController struct {
	StatsService *StatsService
}

func NewStatsController() *StatsController {
	return &StatsController{StatsService: NewStatsService()}
}

// GetStreak godoc
// @Summary      Get my workout streak
// @Description  Current and longest run of consecutive training days
// @Tags         stats
// @Produce      json
// @Success      200  {object}  Streak  "Streak"
// @Failure      500  {object}  api.ErrorResponse "Internal server error"
// @Router       /stats/streak [get]
// @Security     BearerAuth
func (c *StatsController) GetStreak(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	streak, err := c.StatsService.GetStreak(ctx.Context(), userID)
	if err != nil {
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	return ctx.Status(http.StatusOK).JSON(streak)
}

// ListAchievements godoc
// @Summary      List achievements
// @Description  Every achievement definition with the caller's earned status
// @Tags         stats
// @Produce      json
// @Success      200  {array}   AchievementStatus  "Achievements"
// @Failure      500  {object}  api.ErrorResponse "Internal server error"
// @Router       /stats/achievements [get]
// @Security     BearerAuth
func (c *StatsController) ListAchievements(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	// Catch up on anything earned since the last log write
	if _, err := c.StatsService.EvaluateAchievements(userID); err != nil {
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}

	statuses, err := c.StatsService.ListAchievements(userID)
	if err != nil {
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	return ctx.Status(http.StatusOK).JSON(statuses)
}

// GetSummary godoc
// @Summary      Get my training summary
// @Description  Workout totals, streaks and achievement count in one payload
// @Tags         stats
// @Produce      json
// @Success      200  {object}  Summary  "Summary"
// @Failure      500  {object}  api.ErrorResponse "Internal server error"
// @Router       /stats/summary [get]
// @Security     BearerAuth
func (c *StatsController) GetSummary(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	summary, err := c.StatsService.GetSummary(ctx.Context(), userID)
	if err != nil {
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	return ctx.Status(http.StatusOK).JSON(summary)
}
