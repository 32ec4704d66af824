package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/tidwall/pretty"

	"github.com/strfsim/strfsim/sim"
)

func formatTime(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// renderTable prints the per-job results with the average turnaround in the footer.
func renderTable(w io.Writer, res *sim.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Job", "Arrival", "Burst", "Start", "End", "Turnaround"})
	for _, j := range res.Jobs {
		table.Append([]string{
			j.ID,
			strconv.FormatFloat(j.ArrivalTime, 'g', -1, 64),
			strconv.FormatFloat(j.BurstTime, 'g', -1, 64),
			formatTime(j.StartTime),
			formatTime(j.CompletionTime),
			formatTime(j.TurnaroundTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "Average", fmt.Sprintf("%.2f", res.MeanTurnaround)})
	table.Render()
	_, _ = fmt.Fprintf(w, "Average Turnaround Time: %.2f\n", res.MeanTurnaround)
}

// renderTrace prints one line per dispatched chunk.
func renderTrace(w io.Writer, res *sim.Result) {
	_, _ = fmt.Fprintln(w, "\nDispatch trace")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Start", "CPU", "Job", "Duration"})
	for _, d := range res.Trace {
		table.Append([]string{formatTime(d.Start), d.ProcessorID, d.JobID, strconv.FormatFloat(d.Duration, 'g', -1, 64)})
	}
	table.Render()
}

// renderQueue prints the ready queue at each scheduling instant, front first.
func renderQueue(w io.Writer, res *sim.Result) {
	_, _ = fmt.Fprintln(w, "\nReady queue")
	for _, s := range res.Snapshots {
		parts := make([]string, len(s.Jobs))
		for i, q := range s.Jobs {
			parts[i] = fmt.Sprintf("%s = %s", q.JobID, strconv.FormatFloat(q.Remaining, 'g', -1, 64))
		}
		_, _ = fmt.Fprintf(w, "t=%-6s %s\n", formatTime(s.Time), strings.Join(parts, ", "))
	}
}

// renderJSON writes res as indented JSON.
func renderJSON(w io.Writer, res *sim.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	_, err = w.Write(pretty.Pretty(data))
	return err
}
