// Package runner drives a bot against the sandbox engine for a fixed number
// of turns and fans each turn report out to its sinks.
package runner

import (
	"context"
	"fmt"

	"kitchenbot.ai/internal/bot/workflow"
	"kitchenbot.ai/internal/sim/kitchen"
	"kitchenbot.ai/internal/sim/kitchen/sandbox"
)

// TurnSink receives every turn report in order.
type TurnSink interface {
	WriteTurn(rep workflow.TurnReport) error
}

type Result struct {
	Turns     int
	Money     int
	Completed []kitchen.Order
	Memory    *workflow.Memory
}

// Run plays turns turns, or fewer if ctx is done first. A sink error stops
// the run.
func Run(ctx context.Context, k *sandbox.Kitchen, b *workflow.Bot, turns int, sinks ...TurnSink) (Result, error) {
	mem := workflow.NewMemory()
	res := Result{Memory: mem}
	for i := 0; i < turns; i++ {
		if err := ctx.Err(); err != nil {
			res.finish(k)
			return res, err
		}
		rep := b.PlayTurn(mem, k)
		k.EndTurn()
		rep.Digest = k.Digest()
		for _, s := range sinks {
			if s == nil {
				continue
			}
			if err := s.WriteTurn(rep); err != nil {
				res.finish(k)
				return res, fmt.Errorf("turn %d: %w", rep.Turn, err)
			}
		}
		res.Turns++
	}
	res.finish(k)
	return res, nil
}

func (r *Result) finish(k *sandbox.Kitchen) {
	r.Money = k.TeamMoney()
	r.Completed = k.Completed()
}

// SinkFunc adapts a function to TurnSink.
type SinkFunc func(rep workflow.TurnReport) error

func (f SinkFunc) WriteTurn(rep workflow.TurnReport) error { return f(rep) }
