package cli

import (
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

func (a *App) heading(text string) {
	_, _ = color.New(color.FgHiCyan, color.Bold).Fprintln(a.Out, text)
}

func (a *App) notice(format string, args ...any) {
	_, _ = color.New(color.FgHiGreen).Fprintf(a.Out, format+"\n", args...)
}

func (a *App) renderTable(header []string, rows [][]string) error {
	table := tablewriter.NewWriter(a.Out)
	if err := table.Append(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
