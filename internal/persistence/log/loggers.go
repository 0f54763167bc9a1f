package log

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"

	"kitchenbot.ai/internal/bot/workflow"
)

// JSONLZstdWriter writes JSON lines to zstd files, one file per segment key.
// A segment file is truncated the first time this writer opens it.
type JSONLZstdWriter struct {
	baseDir string
	prefix  string

	mu     sync.Mutex
	opened map[string]bool
	curSeg string
	f      *os.File
	enc    *zstd.Encoder
	w      *bufio.Writer
}

func NewJSONLZstdWriter(baseDir, prefix string) *JSONLZstdWriter {
	return &JSONLZstdWriter{
		baseDir: baseDir,
		prefix:  prefix,
		opened:  make(map[string]bool),
	}
}

func (w *JSONLZstdWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closeLocked()
}

func (w *JSONLZstdWriter) Write(seg string, v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if seg != w.curSeg || w.w == nil {
		if err := w.rotateLocked(seg); err != nil {
			return err
		}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Flush pushes buffered lines into the current zstd frame.
func (w *JSONLZstdWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return nil
	}
	if err := w.w.Flush(); err != nil {
		return err
	}
	return w.enc.Flush()
}

func (w *JSONLZstdWriter) rotateLocked(seg string) error {
	if err := w.closeLocked(); err != nil {
		return err
	}
	if err := os.MkdirAll(w.baseDir, 0o755); err != nil {
		return err
	}
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if !w.opened[seg] {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(w.pathForSegment(seg), flags, 0o644)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return err
	}
	w.f = f
	w.enc = enc
	w.w = bufio.NewWriterSize(enc, 128*1024)
	w.curSeg = seg
	w.opened[seg] = true
	return nil
}

func (w *JSONLZstdWriter) closeLocked() error {
	var err1 error
	if w.w != nil {
		_ = w.w.Flush()
	}
	if w.enc != nil {
		err1 = w.enc.Close()
		w.enc = nil
	}
	if w.f != nil {
		_ = w.f.Close()
		w.f = nil
	}
	w.w = nil
	return err1
}

func (w *JSONLZstdWriter) pathForSegment(seg string) string {
	return filepath.Join(w.baseDir, fmt.Sprintf("%s-%s.jsonl.zst", w.prefix, seg))
}

const DefaultSegmentTurns = 1000

// TurnLogger writes one JSONL entry per bot turn, in files of segmentTurns
// turns each. The first write replaces any trace already in the run dir.
type TurnLogger struct {
	dir          string
	w            *JSONLZstdWriter
	segmentTurns int
	started      bool
}

func NewTurnLogger(runDir string, segmentTurns int) *TurnLogger {
	if segmentTurns <= 0 {
		segmentTurns = DefaultSegmentTurns
	}
	return &TurnLogger{
		dir:          TurnsDir(runDir),
		w:            NewJSONLZstdWriter(TurnsDir(runDir), "turns"),
		segmentTurns: segmentTurns,
	}
}

func TurnsDir(runDir string) string { return filepath.Join(runDir, "turns") }

func (l *TurnLogger) WriteTurn(rep workflow.TurnReport) error {
	if !l.started {
		if err := removeTurnFiles(l.dir); err != nil {
			return err
		}
		l.started = true
	}
	start := rep.Turn / l.segmentTurns * l.segmentTurns
	return l.w.Write(fmt.Sprintf("%06d", start), rep)
}

func (l *TurnLogger) Flush() error { return l.w.Flush() }
func (l *TurnLogger) Close() error { return l.w.Close() }

// ListTurnFiles returns the turn segment files in dir, oldest first.
func ListTurnFiles(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(ents))
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, "turns-") && strings.HasSuffix(name, ".jsonl.zst") {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, filepath.Join(dir, name))
	}
	return out, nil
}

func removeTurnFiles(dir string) error {
	files, err := ListTurnFiles(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, path := range files {
		if err := os.Remove(path); err != nil {
			return err
		}
	}
	return nil
}

// ReadTurns decodes every turn report under dir in file order.
func ReadTurns(dir string) ([]workflow.TurnReport, error) {
	files, err := ListTurnFiles(dir)
	if err != nil {
		return nil, err
	}
	var out []workflow.TurnReport
	for _, path := range files {
		reps, err := readTurnFile(path)
		if err != nil {
			return nil, err
		}
		out = append(out, reps...)
	}
	return out, nil
}

func readTurnFile(path string) ([]workflow.TurnReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	var out []workflow.TurnReport
	for sc.Scan() {
		var rep workflow.TurnReport
		if err := json.Unmarshal(sc.Bytes(), &rep); err != nil {
			return nil, fmt.Errorf("%s: unmarshal: %w", filepath.Base(path), err)
		}
		out = append(out, rep)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return out, nil
}
