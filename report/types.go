package report

// Item is one show row in the backlog report, an immutable snapshot of
// the episode counts at fetch time.
type Item struct {
	Title           string
	TotalEpisodes   int
	WatchedEpisodes int
	// Monitored is set only when Sonarr enrichment resolved the show,
	// nil means unknown.
	Monitored *bool
}

// Unwatched returns the backlog size for the item
func (i Item) Unwatched() int {
	if i.WatchedEpisodes >= i.TotalEpisodes {
		return 0
	}
	return i.TotalEpisodes - i.WatchedEpisodes
}

// Status returns the watch-status label for the item
func (i Item) Status() string {
	return StatusLabel(i.TotalEpisodes, i.WatchedEpisodes)
}

// StatusLabel maps episode counts to a watch-status label
func StatusLabel(total, watched int) string {
	switch {
	case total == 0:
		return "No Episodes"
	case watched == total:
		return "Completed"
	case watched > 0:
		return "Partially Watched"
	default:
		return "Unwatched"
	}
}
