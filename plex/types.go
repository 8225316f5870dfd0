package plex

// sectionsResponse represents the response from /library/sections
type sectionsResponse struct {
	MediaContainer sectionsContainer `json:"MediaContainer"`
}

type sectionsContainer struct {
	Size      int       `json:"size"`
	Directory []Section `json:"Directory"`
}

// Section represents a Plex library section
type Section struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// IsTV reports whether the section holds TV shows
func (s Section) IsTV() bool {
	return s.Type == "show"
}

// showsResponse represents the response from /library/sections/{key}/all
type showsResponse struct {
	MediaContainer showsContainer `json:"MediaContainer"`
}

type showsContainer struct {
	Size     int    `json:"size"`
	Metadata []Show `json:"Metadata"`
}

// Show represents a TV show entry within a section. LeafCount is the
// total episode count, ViewedLeafCount the watched episode count.
type Show struct {
	RatingKey       string `json:"ratingKey"`
	Title           string `json:"title"`
	Year            int    `json:"year"`
	LeafCount       int    `json:"leafCount"`
	ViewedLeafCount int    `json:"viewedLeafCount"`
}

// Unwatched returns the number of unwatched episodes. Servers have been
// seen reporting viewedLeafCount above leafCount after library edits, so
// the result is clamped at zero.
func (s Show) Unwatched() int {
	if s.ViewedLeafCount >= s.LeafCount {
		return 0
	}
	return s.LeafCount - s.ViewedLeafCount
}
