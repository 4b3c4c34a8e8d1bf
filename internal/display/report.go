package display

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/falleng0d/tscx/internal/tracking"
	"github.com/falleng0d/tscx/internal/utils"
)

// RunHistory executes the history (recorded check runs) command.
func RunHistory(tracker *tracking.Tracker, args []string) error {
	if tracker == nil {
		PrintError("no check history (run some checks first)")
		return nil
	}

	var (
		showDaily bool
		showJSON  bool
		showCSV   bool
		recentN   = 10
		days      = 7
	)

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--daily":
			showDaily = true
		case "--json":
			showJSON = true
		case "--csv":
			showCSV = true
		case "-n":
			if i+1 < len(args) {
				_, _ = fmt.Sscanf(args[i+1], "%d", &recentN)
				i++
			}
			if recentN <= 0 {
				recentN = 10
			}
		}
	}

	summary, err := tracker.GetSummary()
	if err != nil {
		return fmt.Errorf("get summary: %w", err)
	}

	if showJSON {
		return exportJSON(summary, tracker, days, recentN)
	}
	if showCSV {
		return exportCSV(tracker, recentN)
	}
	if showDaily {
		printSummary(summary)
		return showDailyReport(tracker, days)
	}

	printSummary(summary)
	return showRecent(tracker, recentN)
}

func printSummary(s *tracking.Summary) {
	tty := IsTerminal()

	fmt.Println()
	if tty {
		fmt.Println(HeaderStyle.Render("  tscx — Check History"))
		fmt.Println(DimStyle.Render("  " + FormatSeparator(30)))
	} else {
		fmt.Println("  tscx — Check History")
		fmt.Println("  " + FormatSeparator(30))
	}
	fmt.Println()

	printKPI := func(label, value string, styled bool) {
		if tty {
			styledValue := value
			if !styled {
				styledValue = StatStyle.Render(value)
			}
			fmt.Printf("  %s  %s\n", DimStyle.Render(fmt.Sprintf("%-16s", label)), styledValue)
		} else {
			fmt.Printf("  %-16s  %s\n", label, value)
		}
	}

	printKPI("Checks run", fmt.Sprintf("%d", s.TotalChecks), false)
	printKPI("Failed", colorFailed(s.FailedChecks), true)
	printKPI("Total time", utils.FormatMillis(s.TotalTimeMs), false)
	fmt.Println()
}

func colorFailed(n int64) string {
	if !IsTerminal() {
		return fmt.Sprintf("%d", n)
	}
	if n > 0 {
		return ErrorStyle.Render(fmt.Sprintf("%d", n))
	}
	return StatStyle.Render("0")
}

func showRecent(tracker *tracking.Tracker, n int) error {
	records, err := tracker.GetRecent(n)
	if err != nil {
		return err
	}

	headers := []string{"Time", "Project", "Filters", "Shown", "Status", "Duration"}
	var rows [][]string
	for _, r := range records {
		filters := r.Filters
		if filters == "" {
			filters = "(all)"
		}
		status := "ok"
		if r.Status != 0 {
			status = "fail"
		}
		rows = append(rows, []string{
			r.Timestamp,
			utils.Truncate(r.Project, 25),
			utils.Truncate(filters, 30),
			fmt.Sprintf("%d/%d", r.ShownLines, r.TotalLines),
			status,
			utils.FormatMillis(r.ExecTimeMs),
		})
	}

	fmt.Print(FormatTable(headers, rows))
	return nil
}

func showDailyReport(tracker *tracking.Tracker, days int) error {
	daily, err := tracker.GetDaily(days)
	if err != nil {
		return err
	}

	headers := []string{"Date", "Checks", "Failed", "Shown", "Time"}
	var rows [][]string
	for _, d := range daily {
		rows = append(rows, []string{
			d.Day,
			fmt.Sprintf("%d", d.Checks),
			fmt.Sprintf("%d", d.Failed),
			fmt.Sprintf("%d", d.ShownLines),
			utils.FormatMillis(d.TimeMs),
		})
	}

	fmt.Print(FormatTable(headers, rows))
	return nil
}

func exportJSON(summary *tracking.Summary, tracker *tracking.Tracker, days, n int) error {
	daily, _ := tracker.GetDaily(days)
	recent, _ := tracker.GetRecent(n)
	data := map[string]any{
		"summary": summary,
		"daily":   daily,
		"recent":  recent,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func exportCSV(tracker *tracking.Tracker, n int) error {
	records, err := tracker.GetRecent(n)
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	_ = w.Write([]string{"timestamp", "project", "filters", "shown_lines", "total_lines", "status", "exec_time_ms"})
	for _, r := range records {
		_ = w.Write([]string{
			r.Timestamp,
			r.Project,
			r.Filters,
			fmt.Sprintf("%d", r.ShownLines),
			fmt.Sprintf("%d", r.TotalLines),
			fmt.Sprintf("%d", r.Status),
			fmt.Sprintf("%d", r.ExecTimeMs),
		})
	}
	w.Flush()
	return w.Error()
}
