package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/ShettyBro/scheduling-simulator/internal/scheduler"
	"github.com/ShettyBro/scheduling-simulator/internal/stats"
)

// outputSchedule prints the title banner, gantt chart and timing table for
// one algorithm's run.
func outputSchedule(w io.Writer, alg scheduler.Algorithm, schedule *scheduler.Schedule) {
	outputTitle(w, alg.Title())
	outputGantt(w, schedule.Gantt)
	outputTable(w, schedule)
	if schedule.StarvationRisk != nil && *schedule.StarvationRisk {
		_, _ = fmt.Fprintln(w, "Warning: starvation risk detected")
	}
	_, _ = fmt.Fprintln(w)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []scheduler.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := fmt.Sprint(gantt[i].PID)
		padding := strings.Repeat(" ", (8-len(pid))/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputTable(w io.Writer, schedule *scheduler.Schedule) {
	rows := make([][]string, len(schedule.Results))
	for i, r := range schedule.Results {
		rows[i] = []string{
			fmt.Sprint(r.ProcessID),
			fmt.Sprint(r.Priority),
			fmt.Sprint(r.BurstDuration),
			fmt.Sprint(r.ArrivalTime),
			fmt.Sprint(r.WaitingTime),
			fmt.Sprint(r.TurnaroundTime),
			fmt.Sprint(r.ArrivalTime + r.TurnaroundTime),
		}
	}

	summary := stats.Summarize(schedule)

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", summary.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", summary.AverageTurnaroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", stats.Throughput(schedule))})
	table.Render()
}
