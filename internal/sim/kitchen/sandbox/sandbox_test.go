package sandbox

import (
	"testing"

	"kitchenbot.ai/internal/sim/kitchen"
)

// Every station touches the spawn at (2,2).
var tightLayout = []string{
	"#####",
	"#$.K#",
	"#CB.#",
	"#ST.#",
	"#####",
}

var (
	shopAt    = kitchen.Pos{X: 1, Y: 1}
	cookerAt  = kitchen.Pos{X: 3, Y: 1}
	counterAt = kitchen.Pos{X: 1, Y: 2}
	submitAt  = kitchen.Pos{X: 1, Y: 3}
	trashAt   = kitchen.Pos{X: 2, Y: 3}
)

func newTight(t *testing.T, money int, orders ...kitchen.Order) *Kitchen {
	t.Helper()
	m, spawns, err := kitchen.ParseLayout(tightLayout)
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	return New(m, spawns, Options{Money: money, Orders: orders})
}

func TestKitchen_OneActionPerTurn(t *testing.T) {
	k := newTight(t, 500)
	if !k.Buy(1, "PAN", shopAt.X, shopAt.Y) {
		t.Fatalf("buy pan rejected")
	}
	if k.Place(1, cookerAt.X, cookerAt.Y) {
		t.Fatalf("second action in the same turn was accepted")
	}
	k.EndTurn()
	if !k.Place(1, cookerAt.X, cookerAt.Y) {
		t.Fatalf("place pan rejected after EndTurn")
	}
	if got := k.TeamMoney(); got != 450 {
		t.Fatalf("money=%d want 450", got)
	}
}

func TestKitchen_MainIngredientPipeline(t *testing.T) {
	k := newTight(t, 500)
	steps := []struct {
		name string
		do   func() bool
	}{
		{"buy pan", func() bool { return k.Buy(1, "PAN", shopAt.X, shopAt.Y) }},
		{"place pan", func() bool { return k.Place(1, cookerAt.X, cookerAt.Y) }},
		{"buy meat", func() bool { return k.Buy(1, "MEAT", shopAt.X, shopAt.Y) }},
		{"place meat", func() bool { return k.Place(1, counterAt.X, counterAt.Y) }},
		{"chop", func() bool { return k.Chop(1, counterAt.X, counterAt.Y) }},
		{"pickup", func() bool { return k.Pickup(1, counterAt.X, counterAt.Y) }},
		{"cook", func() bool { return k.Place(1, cookerAt.X, cookerAt.Y) }},
	}
	for _, s := range steps {
		if !s.do() {
			t.Fatalf("%s rejected at turn %d", s.name, k.Turn())
		}
		k.EndTurn()
	}

	// One tick already elapsed after the cook step.
	for i := 1; i < 20; i++ {
		k.EndTurn()
	}
	f, ok := k.ItemAt(cookerAt).PanFood()
	if !ok {
		t.Fatalf("pan is empty")
	}
	if !f.Chopped || f.CookedStage != 1 || f.CookTicks != 20 {
		t.Fatalf("food=%+v want chopped, stage 1, 20 ticks", *f)
	}
	if k.Chop(1, cookerAt.X, cookerAt.Y) {
		t.Fatalf("chop on a cooker accepted")
	}
	if !k.TakeFromPan(1, cookerAt.X, cookerAt.Y) {
		t.Fatalf("take from pan rejected")
	}
	st, _ := k.BotState(1)
	if !st.Holding.IsFood() || st.Holding.Food.Name != "MEAT" {
		t.Fatalf("holding=%+v want MEAT", st.Holding)
	}
	if _, ok := k.ItemAt(cookerAt).PanFood(); ok {
		t.Fatalf("pan still holds food")
	}
	if got := k.TeamMoney(); got != 500-50-80 {
		t.Fatalf("money=%d", got)
	}
}

func TestKitchen_OvercookedReachesStageTwo(t *testing.T) {
	k := newTight(t, 0)
	pan := kitchen.NewPan()
	pan.Food = &kitchen.Food{Name: "EGG"}
	k.PutItem(cookerAt, pan)
	for i := 0; i < 60; i++ {
		k.EndTurn()
	}
	f, _ := k.ItemAt(cookerAt).PanFood()
	if f.CookedStage != 2 {
		t.Fatalf("stage=%d want 2", f.CookedStage)
	}
}

func TestKitchen_BuyRules(t *testing.T) {
	k := newTight(t, 30)
	if k.Buy(1, "PAN", shopAt.X, shopAt.Y) {
		t.Fatalf("bought a pan without enough money")
	}
	if k.Buy(1, "TRUFFLE", shopAt.X, shopAt.Y) {
		t.Fatalf("bought an unknown item")
	}
	if k.Buy(1, "PLATE", counterAt.X, counterAt.Y) {
		t.Fatalf("bought from a counter")
	}
	if !k.Buy(1, "PLATE", shopAt.X, shopAt.Y) {
		t.Fatalf("plate rejected")
	}
	k.EndTurn()
	if k.Buy(1, "SAUCE", shopAt.X, shopAt.Y) {
		t.Fatalf("bought with full hands")
	}
	if got := k.TeamMoney(); got != 10 {
		t.Fatalf("money=%d want 10", got)
	}
}

func TestKitchen_MoveRules(t *testing.T) {
	m, _, err := kitchen.ParseLayout([]string{
		"#####",
		"#B.B#",
		"#####",
	})
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	k := New(m, []kitchen.Pos{{X: 1, Y: 1}, {X: 3, Y: 1}}, Options{})
	if got := k.TeamBotIDs(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("ids=%v", got)
	}
	if k.Move(1, 0, -1) {
		t.Fatalf("moved into a wall")
	}
	if k.Move(1, 1, 1) {
		t.Fatalf("diagonal move accepted")
	}
	if !k.Move(1, 1, 0) {
		t.Fatalf("move onto free floor rejected")
	}
	k.EndTurn()
	if k.Move(2, -1, 0) {
		t.Fatalf("moved onto another bot")
	}
	if k.Move(9, 1, 0) {
		t.Fatalf("unknown bot moved")
	}
	st, _ := k.BotState(1)
	if st.Pos != (kitchen.Pos{X: 2, Y: 1}) {
		t.Fatalf("pos=%+v", st.Pos)
	}
}

func TestKitchen_ActionsNeedReach(t *testing.T) {
	m, spawns, err := kitchen.ParseLayout([]string{
		"#####",
		"#B.$#",
		"#####",
	})
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	k := New(m, spawns, Options{Money: 100})
	if k.Buy(1, "PLATE", 3, 1) {
		t.Fatalf("bought from two tiles away")
	}
	if !k.Move(1, 1, 0) {
		t.Fatalf("move rejected")
	}
	k.EndTurn()
	if !k.Buy(1, "PLATE", 3, 1) {
		t.Fatalf("adjacent buy rejected")
	}
}

func TestKitchen_Submit(t *testing.T) {
	order := kitchen.Order{OrderID: 7, Required: []string{"NOODLES", "MEAT"}, Reward: 120, CreatedTurn: 0, ExpiresTurn: 50}
	k := newTight(t, 0, order)

	raw := kitchen.NewPlate()
	raw.Foods = []kitchen.Food{{Name: "MEAT", Chopped: true}, {Name: "NOODLES"}}
	k.SetHolding(1, raw)
	if k.Submit(1, submitAt.X, submitAt.Y) {
		t.Fatalf("uncooked plate accepted")
	}

	wrong := kitchen.NewPlate()
	wrong.Foods = []kitchen.Food{{Name: "NOODLES"}}
	k.SetHolding(1, wrong)
	if k.Submit(1, submitAt.X, submitAt.Y) {
		t.Fatalf("incomplete plate accepted")
	}

	good := kitchen.NewPlate()
	good.Foods = []kitchen.Food{{Name: "NOODLES"}, {Name: "MEAT", Chopped: true, CookedStage: 1}}
	k.SetHolding(1, good)
	if k.Submit(1, trashAt.X, trashAt.Y) {
		t.Fatalf("submitted on a trash tile")
	}
	if !k.Submit(1, submitAt.X, submitAt.Y) {
		t.Fatalf("prepared plate rejected")
	}
	if got := k.TeamMoney(); got != 120 {
		t.Fatalf("money=%d want 120", got)
	}
	done := k.Completed()
	if len(done) != 1 || done[0].OrderID != 7 || *done[0].CompletedTurn != 0 || done[0].IsActive {
		t.Fatalf("completed=%+v", done)
	}
	st, _ := k.BotState(1)
	if st.Holding != nil {
		t.Fatalf("still holding %+v", st.Holding)
	}
}

func TestKitchen_OrderActivity(t *testing.T) {
	k := newTight(t, 0,
		kitchen.Order{OrderID: 1, Required: []string{"SAUCE"}, CreatedTurn: 0, ExpiresTurn: 1},
		kitchen.Order{OrderID: 2, Required: []string{"SAUCE"}, CreatedTurn: 2, ExpiresTurn: 5},
	)
	active := func() []int {
		var ids []int
		for _, o := range k.Orders() {
			if o.IsActive {
				ids = append(ids, o.OrderID)
			}
		}
		return ids
	}
	if got := active(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("turn 0 active=%v", got)
	}
	k.EndTurn()
	k.EndTurn()
	if got := active(); len(got) != 1 || got[0] != 2 {
		t.Fatalf("turn 2 active=%v", got)
	}
}

func TestKitchen_SnapshotsAreCopies(t *testing.T) {
	k := newTight(t, 0, kitchen.Order{OrderID: 1, Required: []string{"SAUCE"}, ExpiresTurn: 3})
	k.Orders()[0].Required[0] = "EGG"
	if got := k.Orders()[0].Required[0]; got != "SAUCE" {
		t.Fatalf("order mutated through snapshot: %s", got)
	}
	k.PutItem(counterAt, kitchen.NewFood("ONIONS"))
	tile, _ := k.Tile(counterAt.X, counterAt.Y)
	tile.Item.Food.Chopped = true
	if k.ItemAt(counterAt).Food.Chopped {
		t.Fatalf("tile item mutated through snapshot")
	}
}

func TestKitchen_TrashAndPlating(t *testing.T) {
	k := newTight(t, 0)
	k.PutItem(counterAt, kitchen.NewPlate())
	k.SetHolding(1, kitchen.NewFood("SAUCE"))
	if !k.AddFoodToPlate(1, counterAt.X, counterAt.Y) {
		t.Fatalf("add to plate rejected")
	}
	k.EndTurn()
	if got := k.ItemAt(counterAt); len(got.Foods) != 1 || got.Foods[0].Name != "SAUCE" {
		t.Fatalf("plate=%+v", got)
	}
	if k.Trash(1, trashAt.X, trashAt.Y) {
		t.Fatalf("trashed empty hands")
	}
	if !k.Pickup(1, counterAt.X, counterAt.Y) {
		t.Fatalf("pickup plate rejected")
	}
	k.EndTurn()
	if !k.Trash(1, trashAt.X, trashAt.Y) {
		t.Fatalf("trash rejected")
	}
	if k.ItemAt(counterAt) != nil {
		t.Fatalf("counter not empty")
	}
}

func TestKitchen_DigestTracksState(t *testing.T) {
	a := newTight(t, 100)
	b := newTight(t, 100)
	if a.Digest() != b.Digest() {
		t.Fatalf("fresh kitchens differ")
	}
	a.Buy(1, "PLATE", shopAt.X, shopAt.Y)
	if a.Digest() == b.Digest() {
		t.Fatalf("digest ignored a purchase")
	}
	b.Buy(1, "PLATE", shopAt.X, shopAt.Y)
	a.EndTurn()
	b.EndTurn()
	if a.Digest() != b.Digest() {
		t.Fatalf("same actions, different digests")
	}
}
