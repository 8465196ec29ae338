package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s", r.Suite.Name)
	if r.Suite.Version != "" {
		fmt.Fprintf(tw, " (v%s)", r.Suite.Version)
	}
	fmt.Fprintf(tw, " ===\n\n")

	writeRow(tw, "Case", "Expression", "Want", "Got", "Time", "Status")
	writeRow(tw, "---", "---", "---", "---", "---", "---")
	for _, c := range r.Cases {
		status := "PASS"
		if !c.Passed {
			status = "FAIL"
		}
		writeRow(tw, c.ID, c.Expression, c.Want, c.Got, fmtDuration(c.Duration), status)
	}
	fmt.Fprintln(tw)

	lat := r.Summary.Latency
	fmt.Fprintf(tw, "Passed %d/%d, failed %d\n", r.Summary.Passed, r.Summary.Total, r.Summary.Failed)
	fmt.Fprintf(tw, "Latency p50 %s, p90 %s, max %s\n", fmtDuration(lat.P50()), fmtDuration(lat.P90()), fmtDuration(lat.Max))

	if failures := r.Failures(); len(failures) > 0 {
		fmt.Fprintf(tw, "\nFailures\n\n")
		for _, c := range failures {
			fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Message)
		}
	}

	return tw.Flush()
}

func writeRow(tw *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
