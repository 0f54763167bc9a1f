package workflow

import (
	"log"

	"kitchenbot.ai/internal/sim/kitchen"
)

// Action is the single mutating request a turn produced. For MOVE, X and Y
// hold the step offset; otherwise they are the target tile.
type Action struct {
	Kind string `json:"kind"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Item string `json:"item,omitempty"`
	OK   bool   `json:"ok"`
}

// gate forwards mutating calls to the engine and refuses every call after the
// first one in a turn.
type gate struct {
	c      kitchen.Controller
	logger *log.Logger
	bot    int
	done   *Action
}

func (g *gate) issue(a Action, call func() bool) bool {
	if g.done != nil {
		g.logger.Printf("bot %d: dropped %s, already issued %s this turn", g.bot, a.Kind, g.done.Kind)
		return false
	}
	a.OK = call()
	g.done = &a
	return a.OK
}

func (g *gate) move(dx, dy int) bool {
	return g.issue(Action{Kind: "MOVE", X: dx, Y: dy}, func() bool { return g.c.Move(g.bot, dx, dy) })
}

func (g *gate) place(p kitchen.Pos) bool {
	return g.issue(Action{Kind: "PLACE", X: p.X, Y: p.Y}, func() bool { return g.c.Place(g.bot, p.X, p.Y) })
}

func (g *gate) buy(item string, p kitchen.Pos) bool {
	return g.issue(Action{Kind: "BUY", X: p.X, Y: p.Y, Item: item}, func() bool { return g.c.Buy(g.bot, item, p.X, p.Y) })
}

func (g *gate) chop(p kitchen.Pos) bool {
	return g.issue(Action{Kind: "CHOP", X: p.X, Y: p.Y}, func() bool { return g.c.Chop(g.bot, p.X, p.Y) })
}

func (g *gate) pickup(p kitchen.Pos) bool {
	return g.issue(Action{Kind: "PICKUP", X: p.X, Y: p.Y}, func() bool { return g.c.Pickup(g.bot, p.X, p.Y) })
}

func (g *gate) addToPlate(p kitchen.Pos) bool {
	return g.issue(Action{Kind: "ADD_TO_PLATE", X: p.X, Y: p.Y}, func() bool { return g.c.AddFoodToPlate(g.bot, p.X, p.Y) })
}

func (g *gate) takeFromPan(p kitchen.Pos) bool {
	return g.issue(Action{Kind: "TAKE_FROM_PAN", X: p.X, Y: p.Y}, func() bool { return g.c.TakeFromPan(g.bot, p.X, p.Y) })
}

func (g *gate) submit(p kitchen.Pos) bool {
	return g.issue(Action{Kind: "SUBMIT", X: p.X, Y: p.Y}, func() bool { return g.c.Submit(g.bot, p.X, p.Y) })
}

func (g *gate) trash(p kitchen.Pos) bool {
	return g.issue(Action{Kind: "TRASH", X: p.X, Y: p.Y}, func() bool { return g.c.Trash(g.bot, p.X, p.Y) })
}
