package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/preston-bernstein/mascot-madness/internal/domain/bracket"
	"github.com/preston-bernstein/mascot-madness/internal/domain/games"
	"github.com/preston-bernstein/mascot-madness/internal/tournament"
)

// Snapshot is the machine-readable form of a run.
type Snapshot struct {
	RunID         string                  `json:"runId"`
	GeneratedAt   time.Time               `json:"generatedAt"`
	Champion      bracket.Team            `json:"champion"`
	Finalists     [2]bracket.Team         `json:"finalists"`
	RegionWinners map[string]bracket.Team `json:"regionWinners"`
	Games         []games.Record          `json:"games"`
}

// Writer persists reports. Files are replaced atomically and left alone when
// their content would not change.
type Writer struct {
	now func() time.Time
}

// NewWriter constructs a report writer.
func NewWriter() *Writer {
	return &Writer{now: time.Now}
}

// WriteText renders res and writes it to path.
func (w *Writer) WriteText(path string, res tournament.Result) error {
	return w.write(path, []byte(RenderText(res)))
}

// WriteJSON writes a JSON snapshot of res to path.
func (w *Writer) WriteJSON(path string, res tournament.Result) error {
	snap := Snapshot{
		RunID:         res.RunID,
		GeneratedAt:   w.clock().UTC(),
		Champion:      res.Champion,
		Finalists:     res.Finalists,
		RegionWinners: res.RegionWinners,
		Games:         res.Games,
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return w.write(path, append(data, '\n'))
}

func (w *Writer) clock() time.Time {
	if w == nil || w.now == nil {
		return time.Now()
	}
	return w.now()
}

func (w *Writer) write(target string, data []byte) error {
	if w == nil {
		return fmt.Errorf("report writer not configured")
	}
	if target == "" {
		return fmt.Errorf("report path required")
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
