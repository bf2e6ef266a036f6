package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/vmunix/monitorr/internal/reconcile"
)

// renderChanges lists the monitored flips of a pass, one row per movie.
func renderChanges(changes []reconcile.Change) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Title", "Path", "Downloaded", "Monitored"})

	for _, c := range changes {
		tw.AppendRow(table.Row{
			strconv.FormatInt(c.ID, 10),
			c.Title,
			c.Path,
			yesNo(c.Downloaded),
			yesNo(!c.Monitored) + " -> " + yesNo(c.Monitored),
		})
	}

	// Ids are numeric; keep them right-aligned under a left-aligned header.
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
