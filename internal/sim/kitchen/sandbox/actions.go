package sandbox

import (
	"sort"

	"kitchenbot.ai/internal/sim/catalogs"
	"kitchenbot.ai/internal/sim/kitchen"
)

// actor returns the bot if it may still act this turn and, when a target is
// given, stands within reach of it.
func (k *Kitchen) actor(botID int, target *kitchen.Pos) (*bot, bool) {
	b, ok := k.bots[botID]
	if !ok || b.acted {
		return nil, false
	}
	if target != nil && (!k.m.InBounds(*target) || kitchen.Chebyshev(b.pos, *target) > 1) {
		return nil, false
	}
	return b, true
}

func (k *Kitchen) Move(botID, dx, dy int) bool {
	b, ok := k.actor(botID, nil)
	if !ok || abs(dx)+abs(dy) != 1 {
		return false
	}
	next := b.pos.Add(dx, dy)
	if !k.m.Walkable(next) {
		return false
	}
	for _, o := range k.bots {
		if o.id != b.id && o.pos == next {
			return false
		}
	}
	b.pos = next
	b.acted = true
	return true
}

func (k *Kitchen) Place(botID, x, y int) bool {
	p := kitchen.Pos{X: x, Y: y}
	b, ok := k.actor(botID, &p)
	if !ok || b.holding == nil {
		return false
	}
	on := k.items[p]
	switch k.m.Kind(p) {
	case kitchen.TileCounter:
		if on != nil {
			return false
		}
		k.items[p] = b.holding
	case kitchen.TileCooker:
		switch {
		case on == nil && b.holding.IsPan():
			k.items[p] = b.holding
		case on.IsPan() && on.Food == nil && b.holding.IsFood() && k.cookable(b.holding.Food.Name):
			on.Food = b.holding.Food
		default:
			return false
		}
	default:
		return false
	}
	b.holding = nil
	b.acted = true
	return true
}

func (k *Kitchen) Buy(botID int, item string, x, y int) bool {
	p := kitchen.Pos{X: x, Y: y}
	b, ok := k.actor(botID, &p)
	if !ok || b.holding != nil || k.m.Kind(p) != kitchen.TileShop {
		return false
	}
	cost, known := k.cat.Cost(item)
	if !known || k.money < cost {
		return false
	}
	switch item {
	case catalogs.ShopPan:
		b.holding = kitchen.NewPan()
	case catalogs.ShopPlate:
		b.holding = kitchen.NewPlate()
	default:
		b.holding = kitchen.NewFood(item)
	}
	k.money -= cost
	b.acted = true
	return true
}

func (k *Kitchen) Chop(botID, x, y int) bool {
	p := kitchen.Pos{X: x, Y: y}
	b, ok := k.actor(botID, &p)
	if !ok || b.holding != nil || k.m.Kind(p) != kitchen.TileCounter {
		return false
	}
	on := k.items[p]
	if !on.IsFood() || on.Food.Chopped || !k.choppable(on.Food.Name) {
		return false
	}
	on.Food.Chopped = true
	b.acted = true
	return true
}

func (k *Kitchen) Pickup(botID, x, y int) bool {
	p := kitchen.Pos{X: x, Y: y}
	b, ok := k.actor(botID, &p)
	if !ok || b.holding != nil {
		return false
	}
	on := k.items[p]
	if on == nil {
		return false
	}
	switch k.m.Kind(p) {
	case kitchen.TileCounter, kitchen.TileCooker:
	default:
		return false
	}
	b.holding = on
	delete(k.items, p)
	b.acted = true
	return true
}

func (k *Kitchen) AddFoodToPlate(botID, x, y int) bool {
	p := kitchen.Pos{X: x, Y: y}
	b, ok := k.actor(botID, &p)
	if !ok || !b.holding.IsFood() {
		return false
	}
	on := k.items[p]
	if !on.IsPlate() {
		return false
	}
	on.Foods = append(on.Foods, *b.holding.Food)
	b.holding = nil
	b.acted = true
	return true
}

func (k *Kitchen) TakeFromPan(botID, x, y int) bool {
	p := kitchen.Pos{X: x, Y: y}
	b, ok := k.actor(botID, &p)
	if !ok || b.holding != nil {
		return false
	}
	f, has := k.items[p].PanFood()
	if !has {
		return false
	}
	b.holding = &kitchen.Item{Kind: kitchen.ItemFood, Food: f}
	k.items[p].Food = nil
	b.acted = true
	return true
}

// Submit hands in the held plate. It is accepted only when it matches an
// active order's required foods, each fully prepared.
func (k *Kitchen) Submit(botID, x, y int) bool {
	p := kitchen.Pos{X: x, Y: y}
	b, ok := k.actor(botID, &p)
	if !ok || !b.holding.IsPlate() || k.m.Kind(p) != kitchen.TileSubmit {
		return false
	}
	plated := make([]string, 0, len(b.holding.Foods))
	for _, f := range b.holding.Foods {
		if !k.ready(f) {
			return false
		}
		plated = append(plated, f.Name)
	}
	sort.Strings(plated)

	for i := range k.orders {
		o := &k.orders[i]
		if !o.IsActive || !sameFoods(plated, o.Required) {
			continue
		}
		done := k.turn
		o.CompletedTurn = &done
		o.IsActive = false
		k.money += int(o.Reward)
		b.holding = nil
		b.acted = true
		return true
	}
	return false
}

func (k *Kitchen) Trash(botID, x, y int) bool {
	p := kitchen.Pos{X: x, Y: y}
	b, ok := k.actor(botID, &p)
	if !ok || b.holding == nil || k.m.Kind(p) != kitchen.TileTrash {
		return false
	}
	b.holding = nil
	b.acted = true
	return true
}

func (k *Kitchen) choppable(name string) bool { return k.cat.Foods.Defs[name].CanChop }
func (k *Kitchen) cookable(name string) bool  { return k.cat.Foods.Defs[name].CanCook }

func (k *Kitchen) ready(f kitchen.Food) bool {
	if k.choppable(f.Name) && !f.Chopped {
		return false
	}
	if k.cookable(f.Name) && f.CookedStage != 1 {
		return false
	}
	return true
}

func sameFoods(sortedPlated, required []string) bool {
	if len(sortedPlated) != len(required) {
		return false
	}
	req := append([]string(nil), required...)
	sort.Strings(req)
	for i := range req {
		if req[i] != sortedPlated[i] {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
