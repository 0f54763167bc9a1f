package indexdb

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"

	"kitchenbot.ai/internal/bot/workflow"
	"kitchenbot.ai/internal/sim/catalogs"
	"kitchenbot.ai/internal/sim/kitchen"
	"kitchenbot.ai/internal/sim/scenario"
	"kitchenbot.ai/internal/sim/tuning"
)

// SQLiteIndex is a queryable secondary copy of a run. The JSONL turn logs stay
// the source of truth; writes are queued and may be dropped under load.
type SQLiteIndex struct {
	db *sql.DB

	ch   chan req
	wg   sync.WaitGroup
	once sync.Once

	closed  atomic.Bool
	dropped atomic.Int64
}

type reqKind int

const (
	reqTurn reqKind = iota + 1
	reqCompletion
)

type req struct {
	kind reqKind

	turn       workflow.TurnReport
	completion kitchen.Order
}

func OpenSQLite(path string) (*SQLiteIndex, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &SQLiteIndex{
		db: db,
		ch: make(chan req, 16384),
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop()
	}()
	return s, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS catalogs (
			name TEXT PRIMARY KEY,
			digest TEXT NOT NULL,
			json TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS turns (
			turn INTEGER PRIMARY KEY,
			bot_id INTEGER NOT NULL,
			from_state TEXT NOT NULL,
			to_state TEXT NOT NULL,
			action TEXT,
			action_ok INTEGER,
			order_id INTEGER,
			stalled INTEGER NOT NULL,
			raw_json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_turns_to_state ON turns(to_state, turn);`,
		`CREATE TABLE IF NOT EXISTS rankings (
			turn INTEGER NOT NULL,
			rank INTEGER NOT NULL,
			order_id INTEGER NOT NULL,
			score REAL NOT NULL,
			turns_left INTEGER NOT NULL,
			estimated_prep REAL NOT NULL,
			slack REAL NOT NULL,
			active INTEGER NOT NULL,
			PRIMARY KEY (turn, rank)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_rankings_order_turn ON rankings(order_id, turn);`,
		`CREATE TABLE IF NOT EXISTS completions (
			order_id INTEGER PRIMARY KEY,
			turn INTEGER NOT NULL,
			reward REAL NOT NULL,
			required_json TEXT NOT NULL
		);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteIndex) Close() error {
	var err error
	s.once.Do(func() {
		s.closed.Store(true)
		close(s.ch)
		s.wg.Wait()
		err = s.db.Close()
	})
	return err
}

// Dropped reports how many writes were discarded because the queue was full.
func (s *SQLiteIndex) Dropped() int64 {
	if s == nil {
		return 0
	}
	return s.dropped.Load()
}

func (s *SQLiteIndex) WriteTurn(rep workflow.TurnReport) error {
	if s == nil || s.closed.Load() {
		return nil
	}
	select {
	case s.ch <- req{kind: reqTurn, turn: rep}:
	default:
		s.dropped.Add(1)
	}
	return nil
}

func (s *SQLiteIndex) RecordCompletion(o kitchen.Order) {
	if s == nil || s.closed.Load() || o.CompletedTurn == nil {
		return
	}
	select {
	case s.ch <- req{kind: reqCompletion, completion: o}:
	default:
		s.dropped.Add(1)
	}
}

// UpsertCatalogs stores the inputs a run was played with, so a run can be
// matched to its configuration from the index alone.
func (s *SQLiteIndex) UpsertCatalogs(configDir string, cats *catalogs.Catalogs, tune tuning.Tuning, sc *scenario.Scenario) error {
	if s == nil {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	type kv struct {
		name   string
		digest string
		json   []byte
	}
	var rows []kv
	if configDir != "" {
		if b, err := os.ReadFile(filepath.Join(configDir, "foods.json")); err == nil {
			rows = append(rows, kv{name: "foods", digest: cats.Foods.Digest, json: b})
		}
		if b, err := os.ReadFile(filepath.Join(configDir, "shop.json")); err == nil {
			rows = append(rows, kv{name: "shop", digest: cats.Shop.Digest, json: b})
		}
	}
	{
		b, _ := json.Marshal(tune)
		sum := sha256.Sum256(b)
		rows = append(rows, kv{name: "tuning", digest: hex.EncodeToString(sum[:]), json: b})
	}
	if sc != nil {
		b, _ := json.Marshal(sc)
		rows = append(rows, kv{name: "scenario", digest: sc.Digest, json: b})
	}

	tx, err := s.db.BeginTx(context.Background(), nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	meta := map[string]string{"schema_version": "1"}
	if sc != nil {
		meta["scenario"] = sc.Name
	}
	for k, v := range meta {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO meta(key,value) VALUES(?,?)`, k, v); err != nil {
			return err
		}
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO catalogs(name,digest,json,updated_at) VALUES(?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, r := range rows {
		if r.name == "" || r.digest == "" || len(r.json) == 0 {
			continue
		}
		if _, err := stmt.Exec(r.name, r.digest, string(r.json), now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteIndex) loop() {
	ctx := context.Background()

	insertTurn, _ := s.db.Prepare(`INSERT OR REPLACE INTO turns(turn,bot_id,from_state,to_state,action,action_ok,order_id,stalled,raw_json) VALUES(?,?,?,?,?,?,?,?,?)`)
	deleteRanks, _ := s.db.Prepare(`DELETE FROM rankings WHERE turn=?`)
	insertRank, _ := s.db.Prepare(`INSERT INTO rankings(turn,rank,order_id,score,turns_left,estimated_prep,slack,active) VALUES(?,?,?,?,?,?,?,?)`)
	insertCompletion, _ := s.db.Prepare(`INSERT OR REPLACE INTO completions(order_id,turn,reward,required_json) VALUES(?,?,?,?)`)
	defer func() {
		for _, st := range []*sql.Stmt{insertTurn, deleteRanks, insertRank, insertCompletion} {
			if st != nil {
				_ = st.Close()
			}
		}
	}()

	var (
		tx            *sql.Tx
		opCount       int
		lastCommit    = time.Now()
		commitEvery   = 500
		commitMaxWait = time.Second
	)

	begin := func() {
		if tx != nil {
			return
		}
		txx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			time.Sleep(50 * time.Millisecond)
			return
		}
		tx = txx
		opCount = 0
		lastCommit = time.Now()
	}
	commit := func() {
		if tx == nil {
			return
		}
		_ = tx.Commit()
		tx = nil
		opCount = 0
		lastCommit = time.Now()
	}
	rollback := func() {
		if tx == nil {
			return
		}
		_ = tx.Rollback()
		tx = nil
		opCount = 0
		lastCommit = time.Now()
	}
	flushIfNeeded := func() {
		if tx == nil {
			return
		}
		if opCount >= commitEvery || time.Since(lastCommit) >= commitMaxWait {
			commit()
		}
	}

	for r := range s.ch {
		begin()
		if tx == nil {
			continue
		}
		switch r.kind {
		case reqTurn:
			if !insertTurnRows(tx, insertTurn, deleteRanks, insertRank, r.turn, &opCount) {
				rollback()
				continue
			}

		case reqCompletion:
			o := r.completion
			foods, _ := json.Marshal(o.Required)
			if insertCompletion != nil {
				if _, err := tx.Stmt(insertCompletion).Exec(o.OrderID, *o.CompletedTurn, o.Reward, string(foods)); err != nil {
					rollback()
					continue
				}
				opCount++
			}
		}
		flushIfNeeded()
	}

	commit()
}

func insertTurnRows(tx *sql.Tx, insertTurn, deleteRanks, insertRank *sql.Stmt, rep workflow.TurnReport, opCount *int) bool {
	if insertTurn == nil {
		return true
	}
	raw, _ := json.Marshal(rep)
	var (
		action   sql.NullString
		actionOK sql.NullBool
		orderID  sql.NullInt64
	)
	if rep.Action != nil {
		action = sql.NullString{String: rep.Action.Kind, Valid: true}
		actionOK = sql.NullBool{Bool: rep.Action.OK, Valid: true}
	}
	if rep.OrderID != nil {
		orderID = sql.NullInt64{Int64: int64(*rep.OrderID), Valid: true}
	}
	if _, err := tx.Stmt(insertTurn).Exec(
		rep.Turn,
		rep.BotID,
		rep.From.String(),
		rep.To.String(),
		action,
		actionOK,
		orderID,
		rep.Stalled,
		string(raw),
	); err != nil {
		return false
	}
	*opCount++

	if deleteRanks == nil || insertRank == nil {
		return true
	}
	if _, err := tx.Stmt(deleteRanks).Exec(rep.Turn); err != nil {
		return false
	}
	for i, q := range rep.Queue {
		if _, err := tx.Stmt(insertRank).Exec(
			rep.Turn,
			i,
			q.OrderID,
			q.PriorityScore,
			q.TurnsLeft,
			q.EstimatedPrep,
			q.Slack,
			q.IsActive,
		); err != nil {
			return false
		}
		*opCount++
	}
	return true
}
