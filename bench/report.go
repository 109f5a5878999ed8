package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// SizeResult holds the average duration of each algorithm for one size.
type SizeResult struct {
	N       int                      `json:"n"`
	Average map[string]time.Duration `json:"average_ns"`
}

// Report is the outcome of Runner.Run.
type Report struct {
	RunID      string       `json:"run_id"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Algorithms []string     `json:"algorithms"`
	Runs       int          `json:"runs"`
	Seed       int64        `json:"seed"`
	Results    []SizeResult `json:"results"`
}

// WriteTable prints one row per size with the average time of each
// algorithm in milliseconds:
//
//	n       brute (ms)    dnc (ms)
//	10000   412.118503    3.920114
func WriteTable(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)

	header := []string{"n"}
	for _, name := range r.Algorithms {
		header = append(header, name+" (ms)")
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, res := range r.Results {
		row := []string{fmt.Sprintf("%d", res.N)}
		for _, name := range r.Algorithms {
			row = append(row, fmt.Sprintf("%.6f", milliseconds(res.Average[name])))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// WriteJSON encodes r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
