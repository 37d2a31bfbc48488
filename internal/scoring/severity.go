package scoring

// SeverityLevel is one of five ordered bands derived from a percentage
// score. Levels are totally ordered by ascending threshold.
type SeverityLevel int

const (
	LevelMinimal SeverityLevel = iota
	LevelLow
	LevelModerate
	LevelHigh
	LevelSignificant
)

// AllLevels returns all severity levels in ascending order.
func AllLevels() []SeverityLevel {
	return []SeverityLevel{LevelMinimal, LevelLow, LevelModerate, LevelHigh, LevelSignificant}
}

// String returns the canonical lowercase name of the level.
func (l SeverityLevel) String() string {
	switch l {
	case LevelMinimal:
		return "minimal"
	case LevelLow:
		return "low"
	case LevelModerate:
		return "moderate"
	case LevelHigh:
		return "high"
	case LevelSignificant:
		return "significant"
	default:
		return "unknown"
	}
}

// Label returns the display label for a level.
func (l SeverityLevel) Label() string {
	switch l {
	case LevelMinimal:
		return "Minimal"
	case LevelLow:
		return "Low"
	case LevelModerate:
		return "Moderate"
	case LevelHigh:
		return "High"
	case LevelSignificant:
		return "Significant"
	default:
		return "Unknown"
	}
}

// LevelForPercentage maps a 0-100 percentage onto a severity band.
// Boundaries are inclusive on the lower band: exactly 20 is minimal,
// exactly 40 is low, and so on.
func LevelForPercentage(pct float64) SeverityLevel {
	switch {
	case pct <= 20:
		return LevelMinimal
	case pct <= 40:
		return LevelLow
	case pct <= 60:
		return LevelModerate
	case pct <= 80:
		return LevelHigh
	default:
		return LevelSignificant
	}
}
