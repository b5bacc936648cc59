package session

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/score"
)

func sampleRecord() Record {
	now := 0 * time.Second
	acc := score.New(score.DefaultRules(), func() time.Duration { return now })
	for i := 0; i < 10; i++ {
		acc.RecordShotFired()
	}
	for i := 0; i < 7; i++ {
		acc.RecordHit(combat.Organic, i%2 == 0)
	}
	acc.RecordMismatch(combat.Glass)
	acc.RecordHurt()
	acc.Survey.Record(score.BeforePlay, score.TopicGlass, score.Correct)
	acc.Survey.Skip(score.AfterPlay, score.TopicPaperCardboard)
	acc.Satisfaction = 4.5
	now = 62500 * time.Millisecond
	acc.MarkCompleted()

	ts := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
	return FromAccumulator("lab-pc", ts, acc)
}

func TestRowLayout(t *testing.T) {
	row := sampleRecord().Row()
	if len(row) != 37 || len(Columns) != 37 {
		t.Fatalf("expected 37 columns, got row=%d header=%d", len(row), len(Columns))
	}

	cases := []struct {
		col  string
		want string
	}{
		{"device", "lab-pc"},
		{"timestamp", "05 - 03 - 2024 14-07-09"},
		{"grade", "7"},
		{"elapsed", "62.5"},
		{"score", "850"},
		{"glass_before", "1"},
		{"pc_after", "2"},
		{"glass_attempts", "1"},
		{"glass_hits", "0"},
		{"organic_attempts", "7"},
		{"organic_hits", "7"},
		{"shots_fired", "10"},
		{"shots_hit", "7"},
		{"hurt", "1"},
		{"completed", "True"},
		{"satisfaction", "4.5"},
	}
	for _, c := range cases {
		t.Run(c.col, func(t *testing.T) {
			idx := -1
			for i, name := range Columns {
				if name == c.col {
					idx = i
				}
			}
			if idx < 0 {
				t.Fatalf("no column %s", c.col)
			}
			if row[idx] != c.want {
				t.Fatalf("%s: expected %q, got %q", c.col, c.want, row[idx])
			}
		})
	}
}

func TestWriteSingleLine(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleRecord()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected one line, got %q", out)
	}
	if strings.Count(out, ",") != 36 {
		t.Fatalf("expected 36 separators, got %d", strings.Count(out, ","))
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	r := sampleRecord()
	path, err := Save(dir, r)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "lab-pc", "lab-pc 05 - 03 - 2024 14-07-09.csv")
	if path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not written: %v", err)
	}
}
