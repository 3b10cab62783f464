package pattern

import (
	"math"
	"strings"
	"time"

	"github.com/sleeponit/sleep-on-it/internal/model"
)

// TitleSimilarity returns the token-overlap similarity of two titles on
// a 0-100 scale: titles are lowercased and whitespace-tokenized, and the
// score is |intersection| / |union| x 100. An empty union scores 0.
func TitleSimilarity(a, b string) float64 {
	tokensA := tokenize(a)
	tokensB := tokenize(b)

	union := make(map[string]bool, len(tokensA)+len(tokensB))
	for tok := range tokensA {
		union[tok] = true
	}
	for tok := range tokensB {
		union[tok] = true
	}
	if len(union) == 0 {
		return 0
	}

	intersection := 0
	for tok := range tokensA {
		if tokensB[tok] {
			intersection++
		}
	}

	return float64(intersection) / float64(len(union)) * 100
}

func tokenize(title string) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(title)) {
		tokens[tok] = true
	}
	return tokens
}

// priceSimilar reports whether two prices are within the configured
// relative tolerance. Both prices must be strictly positive.
func (e *Engine) priceSimilar(p1, p2 float64) bool {
	if p1 <= 0 || p2 <= 0 {
		return false
	}
	mean := (p1 + p2) / 2
	return math.Abs(p1-p2)/mean <= e.cfg.PriceTolerance
}

// weekdayOf extracts the calendar weekday (0 = Sunday) in local time.
func weekdayOf(t time.Time) int {
	return int(t.Weekday())
}

// hourOf extracts the hour of day (0-23) in local time.
func hourOf(t time.Time) int {
	return t.Hour()
}

// calendarDay truncates a timestamp to its local calendar day.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// titlePrefix returns the lowercased leading runes of a title, used as a
// crude grouping key for near-identical recurring purchases.
func titlePrefix(title string, n int) string {
	lowered := strings.ToLower(title)
	runes := []rune(lowered)
	if len(runes) <= n {
		return lowered
	}
	return string(runes[:n])
}

// representativeTitle picks the most common title in a group so the
// match scorer has something to compare candidate titles against.
func representativeTitle(impulses []model.Impulse) string {
	counts := make(map[string]int, len(impulses))
	best := ""
	bestCount := 0
	for _, imp := range impulses {
		key := strings.ToLower(imp.Title)
		if key == "" {
			continue
		}
		counts[key]++
		if counts[key] > bestCount || (counts[key] == bestCount && key < strings.ToLower(best)) {
			best = imp.Title
			bestCount = counts[key]
		}
	}
	return best
}
