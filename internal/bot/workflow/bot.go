package workflow

import (
	"io"
	"log"
	"strings"

	"kitchenbot.ai/internal/bot/priority"
	"kitchenbot.ai/internal/sim/catalogs"
	"kitchenbot.ai/internal/sim/kitchen"
	"kitchenbot.ai/internal/sim/tuning"
)

type Config struct {
	// Main is bought, chopped and cooked; Side is plated as bought.
	Main string
	Side string

	// CookedDone is the cooked stage at which Main leaves the pan.
	CookedDone int

	Priority priority.Options
}

func ConfigFromTuning(t tuning.Tuning, cat *catalogs.Catalogs) Config {
	return Config{
		Main:       t.Recipe.Main,
		Side:       t.Recipe.Side,
		CookedDone: t.Recipe.CookedDone,
		Priority:   priority.FromTuning(t.Priority, cat),
	}
}

// Memory is everything the bot carries from one turn to the next. The engine
// owns all other state.
type Memory struct {
	State State

	// Counter and Cooker are resolved on the first turn a map is available
	// and never change afterwards.
	Counter *kitchen.Pos
	Cooker  *kitchen.Pos

	SeenOrders   map[int]struct{}
	SeenActive   map[int]struct{}
	Printed      bool
	CurrentOrder *int

	// Warned records diagnostics already emitted so a persistent condition is
	// logged once.
	Warned map[string]bool
}

func NewMemory() *Memory {
	return &Memory{
		State:      CheckPan,
		SeenOrders: map[int]struct{}{},
		SeenActive: map[int]struct{}{},
		Warned:     map[string]bool{},
	}
}

// TurnReport describes what one call to PlayTurn saw and did.
type TurnReport struct {
	Turn    int               `json:"turn"`
	BotID   int               `json:"bot_id"`
	From    State             `json:"from"`
	To      State             `json:"to"`
	Action  *Action           `json:"action,omitempty"`
	OrderID *int              `json:"order_id,omitempty"`
	Stalled bool              `json:"stalled,omitempty"`
	Queue   []priority.Scored `json:"queue,omitempty"`

	// Digest is the engine state hash after the turn, when the caller records
	// one.
	Digest string `json:"digest,omitempty"`
}

type Bot struct {
	cfg    Config
	cat    *catalogs.Catalogs
	logger *log.Logger
}

// New returns a bot driving the first id of its team. A nil logger discards
// diagnostics; a nil catalog uses catalogs.Defaults.
func New(cfg Config, cat *catalogs.Catalogs, logger *log.Logger) *Bot {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if cat == nil {
		cat = catalogs.Defaults()
	}
	return &Bot{cfg: cfg, cat: cat, logger: logger}
}

// PlayTurn runs one turn: rank orders, then advance the pipeline by at most
// one engine action. mem is updated in place.
func (b *Bot) PlayTurn(mem *Memory, c kitchen.Controller) TurnReport {
	now := c.Turn()
	rep := TurnReport{Turn: now, From: mem.State, To: mem.State}

	ids := c.TeamBotIDs()
	if len(ids) == 0 {
		return rep
	}

	ranked := priority.Rank(c.Orders(), now, b.cfg.Priority)
	b.observeQueue(mem, ranked, now)
	rep.Queue = ranked
	rep.OrderID = mem.CurrentOrder

	botID := ids[0]
	rep.BotID = botID
	st, ok := c.BotState(botID)
	if !ok {
		b.warnOnce(mem, "no-bot-state", "bot %d: no state reported", botID)
		return rep
	}
	m := c.Map()
	if m == nil {
		return rep
	}

	if mem.Counter == nil {
		if p, ok := m.Nearest(st.Pos, kitchen.TileCounter); ok {
			mem.Counter = &p
		}
	}
	if mem.Cooker == nil {
		if p, ok := m.Nearest(st.Pos, kitchen.TileCooker); ok {
			mem.Cooker = &p
		}
	}
	if mem.Counter == nil || mem.Cooker == nil {
		rep.Stalled = true
		var missing []string
		if mem.Counter == nil {
			missing = append(missing, string(kitchen.TileCounter))
		}
		if mem.Cooker == nil {
			missing = append(missing, string(kitchen.TileCooker))
		}
		b.warnOnce(mem, "stalled", "bot %d: STALLED, map has no %s; no actions will be taken",
			botID, strings.Join(missing, " or "))
		return rep
	}

	if !mem.State.Valid() {
		b.warnOnce(mem, "bad-state", "bot %d: invalid state %s; holding", botID, mem.State)
		return rep
	}

	t := &turn{
		bot:     b,
		mem:     mem,
		ctrl:    c,
		g:       &gate{c: c, logger: b.logger, bot: botID},
		id:      botID,
		pos:     st.Pos,
		holding: st.Holding,
		m:       m,
		counter: *mem.Counter,
		cooker:  *mem.Cooker,
	}
	next := handlers[mem.State](t)
	if !CanMove(mem.State, next) {
		b.logger.Printf("bot %d: rejected transition %s -> %s", botID, mem.State, next)
		next = mem.State
	}
	if next != mem.State {
		b.logger.Printf("bot %d: turn %d %s -> %s", botID, now, mem.State, next)
	}
	mem.State = next

	rep.To = next
	rep.Action = t.g.done
	return rep
}

func (b *Bot) observeQueue(mem *Memory, ranked []priority.Scored, now int) {
	if mem.SeenOrders == nil {
		mem.SeenOrders = map[int]struct{}{}
	}
	if mem.SeenActive == nil {
		mem.SeenActive = map[int]struct{}{}
	}
	first := !mem.Printed
	newOrder, newActive := false, false
	for _, s := range ranked {
		if _, ok := mem.SeenOrders[s.OrderID]; !ok {
			newOrder = true
		}
		if _, ok := mem.SeenActive[s.OrderID]; s.IsActive && !ok {
			newActive = true
		}
	}

	if first || (newOrder && now > 0) || newActive {
		label := "Updated"
		if first {
			label = "Initial"
		}
		b.logger.Printf("%s priority queue (turn %d):", label, now)
		for _, s := range ranked {
			b.logger.Print(s.String())
		}
		mem.Printed = true
	}

	for _, s := range ranked {
		mem.SeenOrders[s.OrderID] = struct{}{}
		if s.IsActive {
			mem.SeenActive[s.OrderID] = struct{}{}
		}
	}

	if sel, ok := priority.Select(ranked); ok {
		id := sel.OrderID
		mem.CurrentOrder = &id
	} else {
		mem.CurrentOrder = nil
	}
}

func (b *Bot) warnOnce(mem *Memory, key, format string, args ...any) {
	if mem.Warned[key] {
		return
	}
	if mem.Warned == nil {
		mem.Warned = map[string]bool{}
	}
	mem.Warned[key] = true
	b.logger.Printf(format, args...)
}
