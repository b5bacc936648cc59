// Package session writes the one-row CSV summary of a completed play
// session.
package session

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/score"
)

// TimestampLayout is the layout of the session timestamp column and file
// name suffix.
const TimestampLayout = "02 - 01 - 2006 15-04-05"

// Columns is the fixed header of a session row.
var Columns = []string{
	"device", "timestamp", "grade", "elapsed", "score",
	"organic_before", "glass_before", "pbl_before", "pc_before",
	"organic_after", "glass_after", "pbl_after", "pc_after",
	"glass_attempts", "glass_hits",
	"organic_attempts", "organic_hits",
	"pc_attempts", "pc_hits",
	"pbl_attempts", "pbl_hits",
	"glass_attempts_total", "glass_hits_total",
	"organic_attempts_total", "organic_hits_total",
	"pc_attempts_total", "pc_hits_total",
	"pbl_attempts_total", "pbl_hits_total",
	"shots_fired", "shots_hit",
	"shots_fired_total", "shots_hit_total",
	"hurt", "deaths", "completed", "satisfaction",
}

// Record is everything persisted for one session.
type Record struct {
	Device       string
	Timestamp    time.Time
	Grade        float64
	Elapsed      time.Duration
	Score        int
	Survey       score.Survey
	Level        score.Tally
	Totals       score.Tally
	Hurt         int
	Deaths       int
	Completed    bool
	Satisfaction float64
}

// FromAccumulator snapshots acc into a record.
func FromAccumulator(device string, ts time.Time, acc *score.Accumulator) Record {
	return Record{
		Device:       device,
		Timestamp:    ts,
		Grade:        acc.FinalGrade(),
		Elapsed:      acc.Elapsed(),
		Score:        acc.Score(),
		Survey:       acc.Survey,
		Level:        acc.Level(),
		Totals:       acc.Totals(),
		Hurt:         acc.Hurt(),
		Deaths:       acc.Deaths(),
		Completed:    acc.Completed(),
		Satisfaction: acc.Satisfaction,
	}
}

// Row renders r in column order. Floats always use '.' as the decimal
// separator.
func (r Record) Row() []string {
	row := make([]string, 0, len(Columns))
	row = append(row,
		r.Device,
		r.Timestamp.Format(TimestampLayout),
		formatFloat(r.Grade),
		formatFloat(r.Elapsed.Seconds()),
		strconv.Itoa(r.Score),
	)
	for _, t := range score.Topics {
		row = append(row, strconv.Itoa(int(r.Survey.Before[t])))
	}
	for _, t := range score.Topics {
		row = append(row, strconv.Itoa(int(r.Survey.After[t])))
	}
	row = appendTally(row, r.Level)
	row = appendTally(row, r.Totals)
	row = append(row,
		strconv.Itoa(r.Level.ShotsFired), strconv.Itoa(r.Level.ShotsHit),
		strconv.Itoa(r.Totals.ShotsFired), strconv.Itoa(r.Totals.ShotsHit),
		strconv.Itoa(r.Hurt),
		strconv.Itoa(r.Deaths),
		formatBool(r.Completed),
		formatFloat(r.Satisfaction),
	)
	return row
}

func appendTally(row []string, t score.Tally) []string {
	for _, c := range combat.Categories {
		row = append(row, strconv.Itoa(t.Attempts[c]), strconv.Itoa(t.Hits[c]))
	}
	return row
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// Write writes r as a single CSV line.
func Write(w io.Writer, r Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(r.Row()); err != nil {
		return fmt.Errorf("session: write row: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("session: flush: %w", err)
	}
	return nil
}

// FileName is "<device>/<device> <timestamp>.csv".
func FileName(device string, ts time.Time) string {
	return filepath.Join(device, device+" "+ts.Format(TimestampLayout)+".csv")
}

// Save writes r under dir, creating the device folder. It returns the path
// written.
func Save(dir string, r Record) (string, error) {
	path := filepath.Join(dir, FileName(r.Device, r.Timestamp))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("session: create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("session: create %s: %w", path, err)
	}
	if err := Write(f, r); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("session: close %s: %w", path, err)
	}
	return path, nil
}
