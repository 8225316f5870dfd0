package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		thresholds Thresholds
		unwatched  int
		want       Severity
	}{
		{"no limits set", Unbounded(), 100, SeverityNormal},
		{"only red, below", Thresholds{Lower: -1, Upper: -1, Yellow: -1, Red: 20}, 19, SeverityNormal},
		{"only red, at limit", Thresholds{Lower: -1, Upper: -1, Yellow: -1, Red: 20}, 20, SeverityCritical},
		{"only red, above", Thresholds{Lower: -1, Upper: -1, Yellow: -1, Red: 20}, 35, SeverityCritical},
		{"both limits, below yellow", Thresholds{Lower: -1, Upper: -1, Yellow: 10, Red: 20}, 9, SeverityNormal},
		{"both limits, at yellow", Thresholds{Lower: -1, Upper: -1, Yellow: 10, Red: 20}, 10, SeverityWarning},
		{"both limits, between", Thresholds{Lower: -1, Upper: -1, Yellow: 10, Red: 20}, 19, SeverityWarning},
		{"both limits, at red", Thresholds{Lower: -1, Upper: -1, Yellow: 10, Red: 20}, 20, SeverityCritical},
		{"only yellow, at limit", Thresholds{Lower: -1, Upper: -1, Yellow: 10, Red: -1}, 10, SeverityWarning},
		{"zero count with limits", Thresholds{Lower: -1, Upper: -1, Yellow: 10, Red: 20}, 0, SeverityNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.thresholds.Classify(tt.unwatched))
		})
	}
}

func TestInRange(t *testing.T) {
	bounded := Thresholds{Lower: 10, Upper: 20, Yellow: -1, Red: -1}

	tests := []struct {
		name       string
		thresholds Thresholds
		unwatched  int
		want       bool
	}{
		{"open range includes everything", Unbounded(), 0, true},
		{"open range includes large counts", Unbounded(), 9999, true},
		{"below lower", bounded, 9, false},
		{"at lower", bounded, 10, true},
		{"inside", bounded, 15, true},
		{"at upper", bounded, 20, true},
		{"above upper", bounded, 21, false},
		{"only lower", Thresholds{Lower: 5, Upper: -1, Yellow: -1, Red: -1}, 4, false},
		{"only upper", Thresholds{Lower: -1, Upper: 5, Yellow: -1, Red: -1}, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.thresholds.InRange(tt.unwatched))
		})
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		total   int
		watched int
		want    string
	}{
		{0, 0, "No Episodes"},
		{10, 10, "Completed"},
		{10, 4, "Partially Watched"},
		{10, 0, "Unwatched"},
		{1, 1, "Completed"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusLabel(tt.total, tt.watched))
		})
	}
}

func TestRenderOrdering(t *testing.T) {
	items := []Item{
		{Title: "Five", TotalEpisodes: 10, WatchedEpisodes: 5},
		{Title: "One", TotalEpisodes: 10, WatchedEpisodes: 9},
		{Title: "Three", TotalEpisodes: 10, WatchedEpisodes: 7},
	}

	var buf bytes.Buffer
	renderer := NewRenderer(false, false)
	rows, err := renderer.Render(&buf, items, Unbounded(), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, rows)

	out := buf.String()
	one := strings.Index(out, "One")
	three := strings.Index(out, "Three")
	five := strings.Index(out, "Five")
	require.NotEqual(t, -1, one)
	require.NotEqual(t, -1, three)
	require.NotEqual(t, -1, five)
	assert.Less(t, one, three, "ascending order by unwatched count")
	assert.Less(t, three, five, "ascending order by unwatched count")
}

func TestRenderStableTies(t *testing.T) {
	// Equal unwatched counts keep fetch order
	items := []Item{
		{Title: "Alpha", TotalEpisodes: 10, WatchedEpisodes: 5},
		{Title: "Beta", TotalEpisodes: 20, WatchedEpisodes: 15},
		{Title: "Gamma", TotalEpisodes: 8, WatchedEpisodes: 3},
	}

	var buf bytes.Buffer
	renderer := NewRenderer(false, false)
	_, err := renderer.Render(&buf, items, Unbounded(), nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Less(t, strings.Index(out, "Alpha"), strings.Index(out, "Beta"))
	assert.Less(t, strings.Index(out, "Beta"), strings.Index(out, "Gamma"))
}

func TestRenderRangeFilter(t *testing.T) {
	items := []Item{
		{Title: "Small", TotalEpisodes: 10, WatchedEpisodes: 8},  // 2 unwatched
		{Title: "Medium", TotalEpisodes: 20, WatchedEpisodes: 5}, // 15 unwatched
		{Title: "Large", TotalEpisodes: 50, WatchedEpisodes: 10}, // 40 unwatched
	}

	var buf bytes.Buffer
	renderer := NewRenderer(false, false)
	rows, err := renderer.Render(&buf, items, Thresholds{Lower: 10, Upper: 20, Yellow: -1, Red: -1}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, rows)
	assert.Contains(t, buf.String(), "Medium")
	assert.NotContains(t, buf.String(), "Small")
	assert.NotContains(t, buf.String(), "Large")
}

func TestRenderEmptyResult(t *testing.T) {
	items := []Item{
		{Title: "Done", TotalEpisodes: 10, WatchedEpisodes: 10},
	}

	var buf bytes.Buffer
	renderer := NewRenderer(false, false)
	rows, err := renderer.Render(&buf, items, Thresholds{Lower: 5, Upper: -1, Yellow: -1, Red: -1}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, rows)
	assert.Empty(t, buf.String(), "no table for an empty report")
}

func TestRenderMonitoredColumn(t *testing.T) {
	yes, no := true, false
	items := []Item{
		{Title: "Tracked", TotalEpisodes: 10, WatchedEpisodes: 2, Monitored: &yes},
		{Title: "Dropped", TotalEpisodes: 10, WatchedEpisodes: 4, Monitored: &no},
		{Title: "Unknown", TotalEpisodes: 10, WatchedEpisodes: 6},
	}

	var buf bytes.Buffer
	renderer := NewRenderer(false, true)
	rows, err := renderer.Render(&buf, items, Unbounded(), nil)
	require.NoError(t, err)

	assert.Equal(t, 3, rows)
	assert.Contains(t, buf.String(), "Monitored")
	assert.Contains(t, buf.String(), "yes")
	assert.Contains(t, buf.String(), "no")
}

func TestRenderWithShowFilter(t *testing.T) {
	items := []Item{
		{Title: "Star Trek", TotalEpisodes: 30, WatchedEpisodes: 10},
		{Title: "The Wire", TotalEpisodes: 60, WatchedEpisodes: 10},
	}

	filter, err := CompileShowFilter(`contains(Title, "star")`)
	require.NoError(t, err)

	var buf bytes.Buffer
	renderer := NewRenderer(false, false)
	rows, err := renderer.Render(&buf, items, Unbounded(), filter)
	require.NoError(t, err)

	assert.Equal(t, 1, rows)
	assert.Contains(t, buf.String(), "Star Trek")
	assert.NotContains(t, buf.String(), "The Wire")
}
