package report

import (
	"io"
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Renderer writes the backlog table. Rows are sorted by unwatched count
// ascending (stable, ties keep fetch order), filtered by the threshold
// bounds and the optional show filter, then colored by severity.
type Renderer struct {
	Color         bool
	ShowMonitored bool
}

// NewRenderer creates a renderer
func NewRenderer(color, showMonitored bool) *Renderer {
	return &Renderer{
		Color:         color,
		ShowMonitored: showMonitored,
	}
}

var severityColors = map[Severity]text.Colors{
	SeverityWarning:  {text.FgYellow},
	SeverityCritical: {text.FgRed},
}

// Render writes the report table and returns the number of rows emitted
func (r *Renderer) Render(w io.Writer, items []Item, thresholds Thresholds, filter *ShowFilter) (int, error) {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Unwatched() < sorted[j].Unwatched()
	})

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)

	header := table.Row{"Title", "Status", "Unwatched"}
	if r.ShowMonitored {
		header = append(header, "Monitored")
	}
	tw.AppendHeader(header)

	var rows int
	for _, item := range sorted {
		unwatched := item.Unwatched()
		if !thresholds.InRange(unwatched) {
			continue
		}
		if filter != nil {
			match, err := filter.Evaluate(item)
			if err != nil {
				return 0, err
			}
			if !match {
				continue
			}
		}

		severity := thresholds.Classify(unwatched)
		row := table.Row{
			r.colorize(severity, item.Title),
			r.colorize(severity, item.Status()),
			r.colorize(severity, strconv.Itoa(unwatched)),
		}
		if r.ShowMonitored {
			row = append(row, monitoredLabel(item.Monitored))
		}
		tw.AppendRow(row)
		rows++
	}

	if rows == 0 {
		return 0, nil
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	tw.Render()
	return rows, nil
}

// colorize wraps a cell in the severity color, each cell resets itself
func (r *Renderer) colorize(severity Severity, value string) string {
	if !r.Color {
		return value
	}
	colors, ok := severityColors[severity]
	if !ok {
		return value
	}
	return colors.Sprint(value)
}

func monitoredLabel(monitored *bool) string {
	switch {
	case monitored == nil:
		return "-"
	case *monitored:
		return "yes"
	default:
		return "no"
	}
}
