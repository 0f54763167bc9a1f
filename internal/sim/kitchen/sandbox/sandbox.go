// Package sandbox is a small deterministic kitchen engine. It implements
// kitchen.Controller for one team so the bot can be run end to end without
// the real game host.
package sandbox

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"kitchenbot.ai/internal/sim/catalogs"
	"kitchenbot.ai/internal/sim/kitchen"
)

type Options struct {
	Catalogs *catalogs.Catalogs
	Money    int
	Orders   []kitchen.Order
}

type Kitchen struct {
	m     *kitchen.Map
	cat   *catalogs.Catalogs
	turn  int
	money int

	bots   map[int]*bot
	items  map[kitchen.Pos]*kitchen.Item
	orders []kitchen.Order
}

type bot struct {
	id      int
	pos     kitchen.Pos
	holding *kitchen.Item
	acted   bool
}

// New places one bot on each spawn, numbered from 1 in spawn order.
func New(m *kitchen.Map, spawns []kitchen.Pos, opts Options) *Kitchen {
	cat := opts.Catalogs
	if cat == nil {
		cat = catalogs.Defaults()
	}
	k := &Kitchen{
		m:     m,
		cat:   cat,
		money: opts.Money,
		bots:  map[int]*bot{},
		items: map[kitchen.Pos]*kitchen.Item{},
	}
	for i, p := range spawns {
		k.bots[i+1] = &bot{id: i + 1, pos: p}
	}
	for _, o := range opts.Orders {
		k.orders = append(k.orders, cloneOrder(o))
	}
	k.refreshOrders()
	return k
}

// EndTurn advances cooking by one tick, moves the clock and refreshes order
// activity. Each bot may act once per turn.
func (k *Kitchen) EndTurn() {
	for p, it := range k.items {
		if k.m.Kind(p) != kitchen.TileCooker {
			continue
		}
		if f, ok := it.PanFood(); ok {
			f.CookTicks++
			f.CookedStage = min(f.CookTicks/k.cat.Foods.CookProgress, 2)
		}
	}
	for _, b := range k.bots {
		b.acted = false
	}
	k.turn++
	k.refreshOrders()
}

func (k *Kitchen) refreshOrders() {
	for i := range k.orders {
		o := &k.orders[i]
		o.IsActive = o.CompletedTurn == nil && o.CreatedTurn <= k.turn && k.turn <= o.ExpiresTurn
	}
}

// PutItem places an item on a tile, replacing whatever was there. Used to
// stage scenarios.
func (k *Kitchen) PutItem(p kitchen.Pos, it *kitchen.Item) {
	if it == nil {
		delete(k.items, p)
		return
	}
	k.items[p] = it.Clone()
}

func (k *Kitchen) ItemAt(p kitchen.Pos) *kitchen.Item { return k.items[p].Clone() }

func (k *Kitchen) SetHolding(botID int, it *kitchen.Item) {
	if b, ok := k.bots[botID]; ok {
		b.holding = it.Clone()
	}
}

func (k *Kitchen) Completed() []kitchen.Order {
	var out []kitchen.Order
	for _, o := range k.orders {
		if o.CompletedTurn != nil {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}

func (k *Kitchen) TeamBotIDs() []int {
	ids := make([]int, 0, len(k.bots))
	for id := range k.bots {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (k *Kitchen) Orders() []kitchen.Order {
	out := make([]kitchen.Order, 0, len(k.orders))
	for _, o := range k.orders {
		out = append(out, cloneOrder(o))
	}
	return out
}

func (k *Kitchen) Turn() int          { return k.turn }
func (k *Kitchen) TeamMoney() int     { return k.money }
func (k *Kitchen) Map() *kitchen.Map { return k.m }

func (k *Kitchen) BotState(botID int) (kitchen.BotState, bool) {
	b, ok := k.bots[botID]
	if !ok {
		return kitchen.BotState{}, false
	}
	return kitchen.BotState{ID: b.id, Pos: b.pos, Holding: b.holding.Clone()}, true
}

func (k *Kitchen) Tile(x, y int) (kitchen.Tile, bool) {
	p := kitchen.Pos{X: x, Y: y}
	if !k.m.InBounds(p) {
		return kitchen.Tile{}, false
	}
	return kitchen.Tile{Kind: k.m.Kind(p), Walkable: k.m.Walkable(p), Item: k.items[p].Clone()}, true
}

type digestState struct {
	Turn   int                `json:"turn"`
	Money  int                `json:"money"`
	Bots   []kitchen.BotState `json:"bots"`
	Items  []placedItem       `json:"items"`
	Orders []kitchen.Order    `json:"orders"`
}

type placedItem struct {
	Pos  kitchen.Pos   `json:"pos"`
	Item *kitchen.Item `json:"item"`
}

// Digest hashes the full engine state. Two runs with the same inputs and the
// same actions produce the same digest every turn.
func (k *Kitchen) Digest() string {
	st := digestState{Turn: k.turn, Money: k.money, Orders: k.orders}
	for _, id := range k.TeamBotIDs() {
		b, _ := k.BotState(id)
		st.Bots = append(st.Bots, b)
	}
	for p, it := range k.items {
		st.Items = append(st.Items, placedItem{Pos: p, Item: it})
	}
	sort.Slice(st.Items, func(i, j int) bool {
		a, b := st.Items[i].Pos, st.Items[j].Pos
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	raw, _ := json.Marshal(st)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func cloneOrder(o kitchen.Order) kitchen.Order {
	o.Required = append([]string(nil), o.Required...)
	if o.ClaimedBy != nil {
		v := *o.ClaimedBy
		o.ClaimedBy = &v
	}
	if o.CompletedTurn != nil {
		v := *o.CompletedTurn
		o.CompletedTurn = &v
	}
	return o
}
