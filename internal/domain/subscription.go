package domain

import "time"

type Plan string

const (
	PlanFree    Plan = "FREE"
	PlanBasic   Plan = "BASIC"
	PlanPremium Plan = "PREMIUM"
	PlanImena   Plan = "IMENA"
)

// planRank is the fixed total order used to resolve the effective plan.
var planRank = map[Plan]int{
	PlanFree:    1,
	PlanBasic:   2,
	PlanPremium: 3,
	PlanImena:   4,
}

func (p Plan) Rank() int { return planRank[p] }

// Valid reports whether p names a known plan tier.
func (p Plan) Valid() bool {
	_, ok := planRank[p]
	return ok
}

// CanLaunch reports whether the plan permits submitting a launch project.
func (p Plan) CanLaunch() bool { return p.Rank() > planRank[PlanFree] }

// CanOrder reports whether the plan permits ordering a custom project.
func (p Plan) CanOrder() bool { return p.Rank() > planRank[PlanBasic] }

// CanViewAnalytics reports whether the plan permits viewing published
// project analytics.
func (p Plan) CanViewAnalytics() bool { return p.Rank() > planRank[PlanBasic] }

type SubscriptionStatus string

const (
	SubscriptionStatusActive  SubscriptionStatus = "ACTIVE"
	SubscriptionStatusExpired SubscriptionStatus = "EXPIRED"
)

// Subscription belongs to a user. A user may hold several at once
// (historical plus current); EffectivePlan picks the one that counts.
type Subscription struct {
	ID           int32              `json:"id"`
	UserID       int32              `json:"user_id"`
	Plan         Plan               `json:"plan"`
	Status       SubscriptionStatus `json:"status"`
	EndDate      *time.Time         `json:"end_date,omitempty"`
	ReminderSent bool               `json:"reminder_sent"`
	CreatedOn    string             `json:"created_on"`
}

// EffectivePlan resolves the highest-ranked plan among the user's
// non-expired subscriptions, defaulting to FREE when none are active.
// Pure and order-independent.
func EffectivePlan(subs []Subscription) Plan {
	best := PlanFree
	for _, s := range subs {
		if s.Status == SubscriptionStatusExpired {
			continue
		}
		if s.Plan.Rank() > best.Rank() {
			best = s.Plan
		}
	}
	return best
}
