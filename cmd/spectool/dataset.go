package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
)

// dataset holds one parsed column file: a coordinate axis plus channels.
type dataset struct {
	x        []float64
	channels [][]float64
}

// loadColumns reads a whitespace-separated column file. Blank lines and lines
// starting with '#' are skipped. Every data row must have the same number of
// columns; "nan" parses as NaN.
func loadColumns(path string) (*dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cols [][]float64
	lineNo := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if cols == nil {
			if len(fields) < 2 {
				return nil, fmt.Errorf("%s:%d: need at least a coordinate and one channel column", path, lineNo)
			}
			cols = make([][]float64, len(fields))
		}
		if len(fields) != len(cols) {
			return nil, fmt.Errorf("%s:%d: got %d columns, want %d", path, lineNo, len(fields), len(cols))
		}

		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: column %d: %w", path, lineNo, i+1, err)
			}
			cols[i] = append(cols[i], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if cols == nil {
		return nil, fmt.Errorf("%s: no data rows", path)
	}

	return &dataset{x: cols[0], channels: cols[1:]}, nil
}

// channelByFlag resolves the 1-based -channel flag into a channel slice.
func (d *dataset) channelByFlag(channel int) ([]float64, error) {
	if channel < 1 || channel > len(d.channels) {
		return nil, fmt.Errorf("channel %d out of range: file has %d channels", channel, len(d.channels))
	}
	return d.channels[channel-1], nil
}

// writeColumns prints equally sized columns in tab-aligned rows.
func writeColumns(w io.Writer, cols ...[]float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i := range cols[0] {
		for j, col := range cols {
			sep := "\t"
			if j == len(cols)-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(tw, "%.8g%s", col[i], sep); err != nil {
				return err
			}
		}
	}
	return tw.Flush()
}
