package workflow

import (
	"kitchenbot.ai/internal/bot/route"
	"kitchenbot.ai/internal/sim/catalogs"
	"kitchenbot.ai/internal/sim/kitchen"
)

// turn is the per-call view the state handlers work from.
type turn struct {
	bot  *Bot
	mem  *Memory
	ctrl kitchen.Controller
	g    *gate

	id      int
	pos     kitchen.Pos
	holding *kitchen.Item
	m       *kitchen.Map

	counter kitchen.Pos
	cooker  kitchen.Pos
}

type handler func(t *turn) State

// handlers has exactly one entry per State; a handler returns its own state
// to stay.
var handlers = [numStates]handler{
	CheckPan:        (*turn).checkPan,
	AcquirePan:      (*turn).acquirePan,
	BuyIngredient:   (*turn).buyIngredient,
	PlaceIngredient: (*turn).placeIngredient,
	Chop:            (*turn).chop,
	PickupChopped:   (*turn).pickupChopped,
	Cook:            (*turn).cook,
	BuyPlate:        (*turn).buyPlate,
	PlacePlate:      (*turn).placePlate,
	BuySide:         (*turn).buySide,
	AddSide:         (*turn).addSide,
	AwaitCooked:     (*turn).awaitCooked,
	AddCooked:       (*turn).addCooked,
	PickupPlate:     (*turn).pickupPlate,
	Submit:          (*turn).submit,
	Reset:           (*turn).reset,
}

// goTo reports whether the bot can already interact with target. If not, it
// spends the turn's action on one step toward it, or does nothing when no
// path exists.
func (t *turn) goTo(target kitchen.Pos) bool {
	if kitchen.Chebyshev(t.pos, target) <= 1 {
		return true
	}
	step := route.OnMap(t.m, t.pos, route.Within(target, 1))
	switch step.Kind {
	case route.Arrived:
		return true
	case route.Move:
		t.g.move(step.DX, step.DY)
	}
	return false
}

// find locates the tile of kind nearest to the bot this turn.
func (t *turn) find(kind kitchen.TileKind) (kitchen.Pos, bool) {
	p, ok := t.m.Nearest(t.pos, kind)
	if !ok {
		t.bot.warnOnce(t.mem, "missing-"+string(kind), "bot %d: map has no %s tile", t.id, kind)
	}
	return p, ok
}

func (t *turn) itemAt(p kitchen.Pos) *kitchen.Item {
	tile, ok := t.ctrl.Tile(p.X, p.Y)
	if !ok {
		return nil
	}
	return tile.Item
}

// shopBuy walks to the nearest shop and buys item once the team can afford it.
func (t *turn) shopBuy(item string) bool {
	shop, ok := t.find(kitchen.TileShop)
	if !ok || !t.goTo(shop) {
		return false
	}
	cost, known := t.bot.cat.Cost(item)
	if !known {
		t.bot.warnOnce(t.mem, "unknown-item-"+item, "bot %d: %s is not sold", t.id, item)
		return false
	}
	if t.ctrl.TeamMoney() < cost {
		return false
	}
	return t.g.buy(item, shop)
}

func (t *turn) checkPan() State {
	if t.itemAt(t.cooker).IsPan() {
		return BuyIngredient
	}
	return AcquirePan
}

func (t *turn) acquirePan() State {
	if t.holding != nil {
		if t.goTo(t.cooker) && t.g.place(t.cooker) {
			return BuyIngredient
		}
		return AcquirePan
	}
	t.shopBuy(catalogs.ShopPan)
	return AcquirePan
}

func (t *turn) buyIngredient() State {
	if t.shopBuy(t.bot.cfg.Main) {
		return PlaceIngredient
	}
	return BuyIngredient
}

func (t *turn) placeIngredient() State {
	if t.goTo(t.counter) {
		t.g.place(t.counter)
		return Chop
	}
	return PlaceIngredient
}

func (t *turn) chop() State {
	if t.goTo(t.counter) && t.g.chop(t.counter) {
		return PickupChopped
	}
	return Chop
}

func (t *turn) pickupChopped() State {
	if t.goTo(t.counter) && t.g.pickup(t.counter) {
		return Cook
	}
	return PickupChopped
}

func (t *turn) cook() State {
	if t.goTo(t.cooker) {
		t.g.place(t.cooker)
		return BuyPlate
	}
	return Cook
}

func (t *turn) buyPlate() State {
	if t.shopBuy(catalogs.ShopPlate) {
		return PlacePlate
	}
	return BuyPlate
}

func (t *turn) placePlate() State {
	if t.goTo(t.counter) {
		t.g.place(t.counter)
		return BuySide
	}
	return PlacePlate
}

func (t *turn) buySide() State {
	if t.shopBuy(t.bot.cfg.Side) {
		return AddSide
	}
	return BuySide
}

func (t *turn) addSide() State {
	if t.goTo(t.counter) && t.g.addToPlate(t.counter) {
		return AwaitCooked
	}
	return AddSide
}

func (t *turn) awaitCooked() State {
	if !t.goTo(t.cooker) {
		return AwaitCooked
	}
	food, ok := t.itemAt(t.cooker).PanFood()
	if !ok || food.CookedStage != t.bot.cfg.CookedDone {
		return AwaitCooked
	}
	if t.g.takeFromPan(t.cooker) {
		return AddCooked
	}
	return AwaitCooked
}

func (t *turn) addCooked() State {
	if t.goTo(t.counter) && t.g.addToPlate(t.counter) {
		return PickupPlate
	}
	return AddCooked
}

func (t *turn) pickupPlate() State {
	if t.goTo(t.counter) && t.g.pickup(t.counter) {
		return Submit
	}
	return PickupPlate
}

func (t *turn) submit() State {
	at, ok := t.find(kitchen.TileSubmit)
	if ok && t.goTo(at) && t.g.submit(at) {
		return Reset
	}
	return Submit
}

// reset clears one leftover per turn: a held pan goes back on the cooker,
// anything else held is trashed, then the pan and the counter are emptied.
// Only a clean kitchen restarts the cycle.
func (t *turn) reset() State {
	if t.holding.IsPan() {
		if t.goTo(t.cooker) {
			t.g.place(t.cooker)
		}
		return Reset
	}
	if t.holding != nil {
		if bin, ok := t.find(kitchen.TileTrash); ok && t.goTo(bin) {
			t.g.trash(bin)
		}
		return Reset
	}
	if _, ok := t.itemAt(t.cooker).PanFood(); ok {
		if t.goTo(t.cooker) {
			t.g.takeFromPan(t.cooker)
		}
		return Reset
	}
	if t.itemAt(t.counter) != nil {
		if t.goTo(t.counter) {
			t.g.pickup(t.counter)
		}
		return Reset
	}
	return CheckPan
}
