package priority

import (
	"fmt"
	"math"
	"sort"

	"kitchenbot.ai/internal/sim/catalogs"
	"kitchenbot.ai/internal/sim/kitchen"
	"kitchenbot.ai/internal/sim/tuning"
)

type Weights struct {
	Value      float64
	Urgency    float64
	Slack      float64
	Activation float64
}

type Options struct {
	// PrepTimes maps a food name to its estimated prep turns. Nil means the
	// table derived from the built-in catalog.
	PrepTimes       map[string]float64
	DefaultPrepTime float64

	Weights Weights

	AllowInactive bool
	AllowClaimed  bool
}

// Scored is an order annotated for one ranking pass.
type Scored struct {
	kitchen.Order

	PriorityScore float64 `json:"priority_score"`
	TurnsLeft     int     `json:"turns_left"`
	EstimatedPrep float64 `json:"estimated_prep"`
	Slack         float64 `json:"slack"`
}

// FromTuning builds ranking options from tuning, filling the prep table from
// cat unless tuning overrides it.
func FromTuning(t tuning.Priority, cat *catalogs.Catalogs) Options {
	table := t.PrepTimes
	if table == nil && cat != nil {
		table = DefaultPrepTimes(cat)
	}
	return Options{
		PrepTimes:       table,
		DefaultPrepTime: t.DefaultPrepTime,
		Weights: Weights{
			Value:      t.ValueWeight,
			Urgency:    t.UrgencyWeight,
			Slack:      t.SlackWeight,
			Activation: t.ActivationWeight,
		},
		AllowInactive: t.AllowInactive,
		AllowClaimed:  t.AllowClaimed,
	}
}

// Rank filters and scores orders at the given turn and returns them best
// first. It has no side effects; orders is not modified.
func Rank(orders []kitchen.Order, turn int, opts Options) []Scored {
	table := opts.PrepTimes
	if table == nil {
		table = builtinPrepTimes
	}

	out := make([]Scored, 0, len(orders))
	for _, o := range orders {
		if o.CompletedTurn != nil {
			continue
		}
		if !opts.AllowInactive && !o.IsActive {
			continue
		}
		if !opts.AllowClaimed && o.ClaimedBy != nil {
			continue
		}
		turnsLeft := o.ExpiresTurn - turn
		if turnsLeft < 0 {
			continue
		}

		prep := EstimatePrep(o.Required, table, opts.DefaultPrepTime)
		slack := float64(turnsLeft) - prep

		var score float64
		if o.IsActive {
			value := o.Reward + o.Penalty
			valueRate := value / math.Max(prep, 1)
			urgency := 1 / float64(max(turnsLeft, 1))
			slackScore := 1 / (1 + math.Max(slack, 0))
			overdue := math.Max(0, -slack)
			score = opts.Weights.Value*valueRate +
				opts.Weights.Urgency*urgency +
				opts.Weights.Slack*slackScore -
				overdue
		} else {
			untilActive := max(0, o.CreatedTurn-turn)
			score = -opts.Weights.Activation * float64(untilActive)
		}

		s := Scored{
			Order:         o,
			PriorityScore: score,
			TurnsLeft:     turnsLeft,
			EstimatedPrep: prep,
			Slack:         slack,
		}
		s.Required = append([]string(nil), o.Required...)
		out = append(out, s)
	}

	// Descending on (score, -turns_left, created_turn, order_id): the more
	// urgent order wins a score tie, then the newer one, then the larger id.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.PriorityScore != b.PriorityScore {
			return a.PriorityScore > b.PriorityScore
		}
		if a.TurnsLeft != b.TurnsLeft {
			return a.TurnsLeft < b.TurnsLeft
		}
		if a.CreatedTurn != b.CreatedTurn {
			return a.CreatedTurn > b.CreatedTurn
		}
		return a.OrderID > b.OrderID
	})
	return out
}

// EstimatePrep sums per-ingredient prep time, using def for unknown names.
func EstimatePrep(required []string, table map[string]float64, def float64) float64 {
	var total float64
	for _, name := range required {
		if v, ok := table[name]; ok {
			total += v
		} else {
			total += def
		}
	}
	return total
}

// Select picks the order the bot reports as current: the best active order,
// else the best order of any kind.
func Select(ranked []Scored) (Scored, bool) {
	for _, s := range ranked {
		if s.IsActive {
			return s, true
		}
	}
	if len(ranked) > 0 {
		return ranked[0], true
	}
	return Scored{}, false
}

func (s Scored) String() string {
	return fmt.Sprintf("order_id=%d required=%v score=%.3f turns_left=%d estimated_prep=%.1f slack=%.1f",
		s.OrderID, s.Required, s.PriorityScore, s.TurnsLeft, s.EstimatedPrep, s.Slack)
}
