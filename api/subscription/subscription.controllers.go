package subscription

import (
	"errors"
	"net/http"

	"fitstack.dev/api/api"
	"github.com/gofiber/fiber/v2"
)

type SubscriptionController struct {
	SubscriptionService *SubscriptionService
}

func NewSubscriptionController() *SubscriptionController {
	return &SubscriptionController{SubscriptionService: NewSubscriptionService()}
}

// ListPlans godoc
// @Summary      List plans
// @Tags         subscriptions
// @Produce      json
// @Success      200  {array}   Plan  "Available plans"
// @Failure      500  {object}  api.ErrorResponse "Internal server error"
// @Router       /plans [get]
func (c *SubscriptionController) ListPlans(ctx *fiber.Ctx) error {
	plans, err := c.SubscriptionService.ListPlans()
	if err != nil {
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	return ctx.Status(http.StatusOK).JSON(plans)
}

// MySubscription godoc
// @Summary      Get my subscription
// @Description  Returns the active subscription, or the implicit free plan when none exists
// @Tags         subscriptions
// @Produce      json
// @Success      200  {object}  Subscription  "Current subscription"
// @Failure      500  {object}  api.ErrorResponse "Internal server error"
// @Router       /subscriptions/me [get]
// @Security     BearerAuth
func (c *SubscriptionController) MySubscription(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	sub, err := c.SubscriptionService.Current(userID)
	if err != nil {
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	if sub == nil {
		plan, err := c.SubscriptionService.GetPlanByCode(PlanFree)
		if err != nil {
			return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{
				Error: err.Error(),
			})
		}
		return ctx.Status(http.StatusOK).JSON(fiber.Map{
			"plan":   plan,
			"status": StatusActive,
		})
	}
	return ctx.Status(http.StatusOK).JSON(sub)
}

// Subscribe godoc
// @Summary      Subscribe to a plan
// @Description  Stub checkout: activates the plan immediately for a 30-day period
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        plan  body      SubscribeDTO  true  "Plan code"
// @Success      201  {object}  Subscription  "New subscription"
// @Failure      400  {object}  api.ErrorResponse "Invalid plan"
// @Failure      404  {object}  api.ErrorResponse "Plan not found"
// @Failure      409  {object}  api.ErrorResponse "Already subscribed"
// @Router       /subscriptions [post]
// @Security     BearerAuth
func (c *SubscriptionController) Subscribe(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	var dto SubscribeDTO
	if err := ctx.BodyParser(&dto); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	sub, err := c.SubscriptionService.Subscribe(userID, dto.PlanCode)
	if err != nil {
		switch {
		case errors.Is(err, ErrPlanNotFound):
			return ctx.Status(http.StatusNotFound).JSON(&api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrAlreadySubscribed):
			return ctx.Status(http.StatusConflict).JSON(&api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrFreePlanNotBilling):
			return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{Error: err.Error()})
		}
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{Error: err.Error()})
	}
	return ctx.Status(http.StatusCreated).JSON(sub)
}

// Cancel godoc
// @Summary      Cancel my subscription
// @Description  Marks the subscription canceled; access lasts until the period end
// @Tags         subscriptions
// @Produce      json
// @Success      200  {object}  Subscription  "Canceled subscription"
// @Failure      400  {object}  api.ErrorResponse "No active subscription"
// @Failure      500  {object}  api.ErrorResponse "Internal server error"
// @Router       /subscriptions/cancel [post]
// @Security     BearerAuth
func (c *SubscriptionController) Cancel(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(string)

	sub, err := c.SubscriptionService.Cancel(userID)
	if err != nil {
		if errors.Is(err, ErrNoActiveSub) {
			return ctx.Status(http.StatusBadRequest).JSON(&api.ErrorResponse{
				Error: err.Error(),
			})
		}
		return ctx.Status(http.StatusInternalServerError).JSON(&api.ErrorResponse{
			Error: err.Error(),
		})
	}
	return ctx.Status(http.StatusOK).JSON(sub)
}
