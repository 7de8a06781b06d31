// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dashboard

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	titleColor = color.New(color.FgYellow, color.Bold)
	errorColor = color.New(color.FgRed)
)

// WriteTables prints the three buckets as text tables, or the error banner
// when the load failed.
func (d *Dashboard) WriteTables(w io.Writer) error {
	if d.Error != "" {
		_, err := errorColor.Fprintln(w, d.Error)
		return err
	}

	for _, s := range d.Sections() {
		if _, err := titleColor.Fprintf(w, "\n%s\n", s.Title); err != nil {
			return err
		}

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Candidato", "Grupo", "Votos"})
		table.SetAutoFormatHeaders(false)
		table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

		var total int64
		for _, t := range s.Tallies {
			table.Append([]string{t.Name, t.Group.String(), humanize.Comma(t.Votes)})
			total += t.Votes
		}
		table.SetFooter([]string{"", "Total", humanize.Comma(total)})
		table.Render()

		if len(s.Tallies) == 0 {
			fmt.Fprintln(w, "Sin votos registrados.")
		}
	}
	return nil
}
