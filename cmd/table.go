package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCase = cases.Title(language.English)

// printTable renders rows to stdout. Columns listed in right are right aligned.
func printTable(headers []string, rows [][]string, right ...int) {
	columns := len(headers)
	if columns == 0 {
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range headers {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, len(right))
	for _, i := range right {
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	tw.Render()
}

func relativeTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return humanize.Time(*t)
}

func airDate(t *time.Time) string {
	if t == nil {
		return "TBA"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func episodeCode(season, number int32) string {
	return fmt.Sprintf("S%02dE%02d", season, number)
}
