package report

// Severity classifies a backlog count against the configured color limits
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityWarning
	SeverityCritical
)

// String returns a human-readable severity name
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "normal"
	}
}

// Thresholds holds the inclusive [Lower, Upper] backlog bounds and the
// yellow/red color limits. A negative value means the threshold is unset
// and imposes no constraint.
type Thresholds struct {
	Lower  int
	Upper  int
	Yellow int
	Red    int
}

// Unbounded returns thresholds with everything unset
func Unbounded() Thresholds {
	return Thresholds{Lower: -1, Upper: -1, Yellow: -1, Red: -1}
}

// InRange reports whether an unwatched count falls inside the bounds.
// Unset bounds leave the range open on that side.
func (t Thresholds) InRange(unwatched int) bool {
	if t.Lower >= 0 && unwatched < t.Lower {
		return false
	}
	if t.Upper >= 0 && unwatched > t.Upper {
		return false
	}
	return true
}

// Classify maps an unwatched count to a severity, first match wins:
// red limit before yellow. With neither limit set everything is normal
// and the report renders uncolored.
func (t Thresholds) Classify(unwatched int) Severity {
	if t.Red >= 0 && unwatched >= t.Red {
		return SeverityCritical
	}
	if t.Yellow >= 0 && unwatched >= t.Yellow {
		return SeverityWarning
	}
	return SeverityNormal
}
