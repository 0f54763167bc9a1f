package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kitchenbot.ai/internal/bot/workflow"
	persistlog "kitchenbot.ai/internal/persistence/log"
	"kitchenbot.ai/internal/sim/catalogs"
	"kitchenbot.ai/internal/sim/runner"
	"kitchenbot.ai/internal/sim/scenario"
	"kitchenbot.ai/internal/sim/tuning"
)

func play(t *testing.T, turns int, sinks ...runner.TurnSink) {
	t.Helper()
	sc, err := scenario.Load(filepath.Join("..", "..", "configs", "scenarios", "diner.json"))
	if err != nil {
		t.Fatalf("scenario.Load: %v", err)
	}
	cat := catalogs.Defaults()
	k, err := sc.Kitchen(cat)
	if err != nil {
		t.Fatalf("Kitchen: %v", err)
	}
	b := workflow.New(workflow.ConfigFromTuning(tuning.Defaults(), cat), cat, nil)
	if _, err := runner.Run(context.Background(), k, b, turns, sinks...); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestChecker_RecordedRunReplays(t *testing.T) {
	dir := t.TempDir()
	l := persistlog.NewTurnLogger(dir, 16)
	play(t, 60, l)
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	recorded, err := persistlog.ReadTurns(persistlog.TurnsDir(dir))
	if err != nil {
		t.Fatalf("ReadTurns: %v", err)
	}
	c := &checker{want: recorded}
	play(t, len(recorded), c)
	if c.checked != 60 {
		t.Fatalf("checked=%d", c.checked)
	}
}

func TestChecker_ReplaysAfterRerun(t *testing.T) {
	dir := t.TempDir()
	for run := 0; run < 2; run++ {
		l := persistlog.NewTurnLogger(dir, 0)
		play(t, 30, l)
		if err := l.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}
	recorded, err := persistlog.ReadTurns(persistlog.TurnsDir(dir))
	if err != nil {
		t.Fatalf("ReadTurns: %v", err)
	}
	if len(recorded) != 30 {
		t.Fatalf("recorded=%d want 30", len(recorded))
	}
	c := &checker{want: recorded}
	if err := replayInto(t, c); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if c.checked != 30 {
		t.Fatalf("checked=%d", c.checked)
	}
}

func TestChecker_DetectsTampering(t *testing.T) {
	var recorded []workflow.TurnReport
	play(t, 20, runner.SinkFunc(func(rep workflow.TurnReport) error {
		recorded = append(recorded, rep)
		return nil
	}))
	recorded[7].Digest = "feed"
	c := &checker{want: recorded}
	err := replayInto(t, c)
	if err == nil || !strings.Contains(err.Error(), "digest mismatch at turn 7") {
		t.Fatalf("err=%v", err)
	}
	if c.checked != 7 {
		t.Fatalf("checked=%d", c.checked)
	}
}

func TestLoadScenario_RejectsUnknownFoods(t *testing.T) {
	cats := catalogs.Defaults()
	if _, err := loadScenario(filepath.Join("..", "..", "configs", "scenarios", "diner.json"), cats); err != nil {
		t.Fatalf("diner: %v", err)
	}

	path := filepath.Join(t.TempDir(), "odd.json")
	raw := `{
  "name": "odd",
  "layout": ["#####", "#CBK#", "#$ST#", "#####"],
  "money": 10,
  "orders": [{"order_id": 1, "required": ["CAVIAR"], "reward": 5, "created_turn": 0, "expires_turn": 9}]
}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := loadScenario(path, cats)
	if err == nil || !strings.Contains(err.Error(), "1:CAVIAR") {
		t.Fatalf("err=%v", err)
	}
}

func replayInto(t *testing.T, c *checker) error {
	t.Helper()
	sc, err := scenario.Load(filepath.Join("..", "..", "configs", "scenarios", "diner.json"))
	if err != nil {
		t.Fatalf("scenario.Load: %v", err)
	}
	cat := catalogs.Defaults()
	k, _ := sc.Kitchen(cat)
	b := workflow.New(workflow.ConfigFromTuning(tuning.Defaults(), cat), cat, nil)
	_, err = runner.Run(context.Background(), k, b, len(c.want), c)
	return err
}
