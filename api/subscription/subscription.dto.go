package subscription

type SubscribeDTO struct {
	PlanCode string `json:"plan_code"`
}
