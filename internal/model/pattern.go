package model

import "time"

// PatternType identifies which detector produced a pattern.
type PatternType string

// Pattern type constants.
const (
	PatternDaily     PatternType = "DAILY"
	PatternWeekly    PatternType = "WEEKLY"
	PatternTimeBased PatternType = "TIME_BASED"
	PatternCategory  PatternType = "CATEGORY"
	PatternFrequent  PatternType = "FREQUENT"
)

// PatternStrength is an ordinal classification of how robust a pattern is.
type PatternStrength string

// Pattern strength constants, weakest first.
const (
	StrengthWeak       PatternStrength = "WEAK"
	StrengthModerate   PatternStrength = "MODERATE"
	StrengthStrong     PatternStrength = "STRONG"
	StrengthVeryStrong PatternStrength = "VERY_STRONG"
)

// Rank returns the ordinal position of the strength for comparisons.
func (s PatternStrength) Rank() int {
	switch s {
	case StrengthWeak:
		return 0
	case StrengthModerate:
		return 1
	case StrengthStrong:
		return 2
	case StrengthVeryStrong:
		return 3
	}
	return -1
}

// PriceRange summarizes the prices seen within a pattern's impulses.
// Invariant: Min <= Avg <= Max.
type PriceRange struct {
	Min float64
	Max float64
	Avg float64
}

// Pattern is a statistically recurring grouping of impulses sharing
// category, timing, or price characteristics. Patterns are created fresh
// on every detection call and never persisted.
type Pattern struct {
	FirstSeen         time.Time
	LastSeen          time.Time
	NextPredictedDate *time.Time
	PredictedPrice    *float64
	PriceRange        *PriceRange
	DayOfWeek         *int // 0 = Sunday
	TimeOfDay         *int // hour of day, 0-23
	ID                string
	Type              PatternType
	Strength          PatternStrength
	Category          Category
	Title             string // representative title of the group, may be empty
	Period            string // unit label for Frequency, e.g. "day" or "week"
	Insights          []string
	Suggestions       []string
	ImpulseIDs        []string
	Confidence        float64 // 0-100
	Frequency         float64 // occurrences per Period
	AvgInterval       float64 // days between occurrences
	TotalOccurrences  int
	TotalSpent        float64
	TotalRegretted    float64
	RegretRate        float64 // 0-100, over executed impulses only
	AvgPrice          float64
}

// PatternMatch pairs a detected pattern with how closely a new candidate
// impulse resembles it.
type PatternMatch struct {
	Pattern         Pattern
	MatchedImpulses []string
	MatchScore      float64 // 0-100
}
