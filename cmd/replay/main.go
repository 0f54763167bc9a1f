package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kitchenbot.ai/internal/bot/workflow"
	persistlog "kitchenbot.ai/internal/persistence/log"
	"kitchenbot.ai/internal/sim/catalogs"
	"kitchenbot.ai/internal/sim/runner"
	"kitchenbot.ai/internal/sim/scenario"
	"kitchenbot.ai/internal/sim/tuning"
)

func main() {
	var (
		runDir       = flag.String("run", "", "run dir containing turns/turns-*.jsonl.zst")
		scenarioPath = flag.String("scenario", "./configs/scenarios/diner.json", "scenario file the run was played with")
		configDir    = flag.String("configs", "./configs", "config directory")
		tuningPath   = flag.String("tuning", "", "path to tuning.yaml (default: <configs>/tuning.yaml)")
		toTurn       = flag.Int("to_turn", -1, "stop after this turn (inclusive, optional)")
	)
	flag.Parse()

	if *runDir == "" {
		fmt.Fprintln(os.Stderr, "missing -run")
		os.Exit(2)
	}

	recorded, err := persistlog.ReadTurns(persistlog.TurnsDir(*runDir))
	if err != nil {
		fmt.Fprintln(os.Stderr, "read turns:", err)
		os.Exit(1)
	}
	if len(recorded) == 0 {
		fmt.Fprintln(os.Stderr, "no turn files found in", persistlog.TurnsDir(*runDir))
		os.Exit(1)
	}
	if *toTurn >= 0 && *toTurn+1 < len(recorded) {
		recorded = recorded[:*toTurn+1]
	}

	cats, err := catalogs.Load(*configDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load catalogs:", err)
		os.Exit(1)
	}
	tp := strings.TrimSpace(*tuningPath)
	if tp == "" {
		tp = filepath.Join(*configDir, "tuning.yaml")
	}
	tune, err := tuning.Load(tp)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load tuning:", err)
		os.Exit(1)
	}
	sc, err := loadScenario(*scenarioPath, cats)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load scenario:", err)
		os.Exit(1)
	}
	k, err := sc.Kitchen(cats)
	if err != nil {
		fmt.Fprintln(os.Stderr, "scenario:", err)
		os.Exit(1)
	}

	fmt.Printf("run=%s scenario=%s turns=%d\n", *runDir, sc.Name, len(recorded))

	b := workflow.New(workflow.ConfigFromTuning(tune, cats), cats, nil)
	check := &checker{want: recorded}
	res, err := runner.Run(context.Background(), k, b, len(recorded), check)
	if err != nil {
		fmt.Fprintln(os.Stderr, "replay:", err)
		os.Exit(1)
	}
	fmt.Printf("replay ok: checked=%d turns money=%d completed=%d\n", check.checked, res.Money, len(res.Completed))
}

// loadScenario applies the same checks kitchenbot does before a run.
func loadScenario(path string, cats *catalogs.Catalogs) (*scenario.Scenario, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	if err := sc.CheckFoods(cats); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	return sc, nil
}

// checker compares each replayed turn with the recorded one.
type checker struct {
	want    []workflow.TurnReport
	checked int
}

func (c *checker) WriteTurn(rep workflow.TurnReport) error {
	i := c.checked
	if i >= len(c.want) {
		return fmt.Errorf("replay ran past the recording")
	}
	w := c.want[i]
	if w.Turn != rep.Turn {
		return fmt.Errorf("turn mismatch: want=%d got=%d", w.Turn, rep.Turn)
	}
	if w.Digest != rep.Digest {
		return fmt.Errorf("digest mismatch at turn %d: got=%s want=%s", rep.Turn, rep.Digest, w.Digest)
	}
	got, _ := json.Marshal(rep)
	exp, _ := json.Marshal(w)
	if string(got) != string(exp) {
		return fmt.Errorf("report mismatch at turn %d:\n got=%s\nwant=%s", rep.Turn, got, exp)
	}
	c.checked++
	return nil
}
