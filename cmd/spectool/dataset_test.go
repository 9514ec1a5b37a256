package main

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadColumns(t *testing.T) {
	path := writeTemp(t, `# coordinate  channel
0.0  1.0
0.5  nan
1.0  3.0
`)
	d, err := loadColumns(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.x) != 3 || len(d.channels) != 1 {
		t.Fatalf("got %d rows, %d channels", len(d.x), len(d.channels))
	}
	if d.x[1] != 0.5 {
		t.Fatalf("x[1]: got %v, want 0.5", d.x[1])
	}
	if !math.IsNaN(d.channels[0][1]) {
		t.Fatalf("channel value: got %v, want NaN", d.channels[0][1])
	}
}

func TestLoadColumnsRejectsRaggedRows(t *testing.T) {
	path := writeTemp(t, "0 1\n2 3 4\n")
	if _, err := loadColumns(path); err == nil {
		t.Fatal("expected error for ragged rows")
	}
}

func TestLoadColumnsRejectsSingleColumn(t *testing.T) {
	path := writeTemp(t, "0\n1\n")
	if _, err := loadColumns(path); err == nil {
		t.Fatal("expected error for coordinate-only file")
	}
}

func TestLoadColumnsRejectsEmptyFile(t *testing.T) {
	path := writeTemp(t, "# only comments\n")
	if _, err := loadColumns(path); err == nil {
		t.Fatal("expected error for file without data rows")
	}
}

func TestChannelByFlag(t *testing.T) {
	d := &dataset{x: []float64{0}, channels: [][]float64{{1}, {2}}}
	ch, err := d.channelByFlag(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch[0] != 2 {
		t.Fatalf("got %v, want channel 2", ch)
	}
	if _, err := d.channelByFlag(3); err == nil {
		t.Fatal("expected error for out-of-range channel")
	}
}

func TestWriteColumns(t *testing.T) {
	var sb strings.Builder
	if err := writeColumns(&sb, []float64{0, 1}, []float64{2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "2") || !strings.Contains(out, "3") {
		t.Fatalf("unexpected output: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Fatalf("got %d lines, want 2", got)
	}
}
