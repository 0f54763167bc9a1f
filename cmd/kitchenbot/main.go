package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"kitchenbot.ai/internal/bot/workflow"
	"kitchenbot.ai/internal/persistence/indexdb"
	persistlog "kitchenbot.ai/internal/persistence/log"
	"kitchenbot.ai/internal/sim/catalogs"
	"kitchenbot.ai/internal/sim/runner"
	"kitchenbot.ai/internal/sim/scenario"
	"kitchenbot.ai/internal/sim/tuning"
)

func main() {
	var (
		scenarioPath = flag.String("scenario", "./configs/scenarios/diner.json", "scenario file")
		configDir    = flag.String("configs", "./configs", "config directory")
		tuningPath   = flag.String("tuning", "", "path to tuning.yaml (default: <configs>/tuning.yaml)")
		turns        = flag.Int("turns", 0, "turns to play (default: the scenario's)")
		dataDir      = flag.String("data", "./data", "runtime data directory")
		segmentTurns = flag.Int("segment_turns", persistlog.DefaultSegmentTurns, "turns per log segment")
		disableDB    = flag.Bool("disable_db", false, "disable the sqlite run index")
		quiet        = flag.Bool("quiet", false, "suppress bot diagnostics")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[kitchenbot] ", log.LstdFlags|log.Lmicroseconds)

	cats, err := catalogs.Load(*configDir)
	if err != nil {
		logger.Fatalf("load catalogs: %v", err)
	}

	tp := strings.TrimSpace(*tuningPath)
	if tp == "" {
		tp = filepath.Join(*configDir, "tuning.yaml")
	}
	tune, err := tuning.Load(tp)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Fatalf("load tuning: %v", err)
		}
		logger.Printf("tuning not found (%s); using defaults", tp)
		tune = tuning.Defaults()
	}

	sc, err := scenario.Load(*scenarioPath)
	if err != nil {
		logger.Fatalf("load scenario: %v", err)
	}
	if err := sc.CheckFoods(cats); err != nil {
		logger.Fatalf("scenario %s: %v", sc.Name, err)
	}
	k, err := sc.Kitchen(cats)
	if err != nil {
		logger.Fatalf("scenario %s: %v", sc.Name, err)
	}
	n := sc.Turns
	if *turns > 0 {
		n = *turns
	}

	runDir := filepath.Join(*dataDir, "runs", sc.Name)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		logger.Fatalf("run dir: %v", err)
	}
	turnLog := persistlog.NewTurnLogger(runDir, *segmentTurns)
	defer turnLog.Close()

	sinks := []runner.TurnSink{turnLog}
	if !*disableDB {
		idx, err := indexdb.OpenSQLite(filepath.Join(runDir, "index", "run.sqlite"))
		if err != nil {
			logger.Fatalf("open index: %v", err)
		}
		defer func() {
			if d := idx.Dropped(); d > 0 {
				logger.Printf("index dropped %d writes", d)
			}
			_ = idx.Close()
		}()
		if err := idx.UpsertCatalogs(*configDir, cats, tune, sc); err != nil {
			logger.Printf("index: upsert catalogs: %v", err)
		}
		sinks = append(sinks, idx)
		defer func() {
			for _, o := range k.Completed() {
				idx.RecordCompletion(o)
			}
		}()
	}

	botLog := log.New(os.Stdout, "[bot] ", log.LstdFlags|log.Lmicroseconds)
	if *quiet {
		botLog = nil
	}
	b := workflow.New(workflow.ConfigFromTuning(tune, cats), cats, botLog)

	if *quiet {
		sinks = append(sinks, &stallNotice{logger: logger})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Printf("scenario=%s digest=%s turns=%d money=%d orders=%d", sc.Name, sc.Digest[:12], n, sc.Money, len(sc.Orders))
	res, err := runner.Run(ctx, k, b, n, sinks...)
	if err != nil {
		logger.Printf("run stopped: %v", err)
	}
	logger.Printf("played=%d money=%d completed=%d state=%s", res.Turns, res.Money, len(res.Completed), res.Memory.State)
	for _, o := range res.Completed {
		logger.Printf("completed order_id=%d turn=%d reward=%.0f required=%v", o.OrderID, *o.CompletedTurn, o.Reward, o.Required)
	}
}

// stallNotice reports the first stalled turn when bot diagnostics are off.
type stallNotice struct {
	logger *log.Logger
	seen   bool
}

func (s *stallNotice) WriteTurn(rep workflow.TurnReport) error {
	if rep.Stalled && !s.seen {
		s.seen = true
		s.logger.Printf("bot %d STALLED at turn %d: map has no COUNTER or COOKER", rep.BotID, rep.Turn)
	}
	return nil
}
