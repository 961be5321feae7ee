package services

import (
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"villadash/models"
	"villadash/validator"
)

const minSimilarity = 0.6

// ScoredBooking is a search hit.
type ScoredBooking struct {
	models.Booking
	Score int `json:"score"`
}

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity is 1 - levenshtein distance / longer length.
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

func uniqueClientNames(bookings []models.Booking) []string {
	seen := make(map[string]bool)
	var names []string
	for _, b := range bookings {
		n := normalizeInput(b.ClientName)
		if n != "" && !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	return names
}

// SearchBookings ranks bookings against a free-text query: phone digits,
// client name, email and villa name, tolerating accents and typos in names.
func SearchBookings(bookings []models.Booking, query string, limit int) []ScoredBooking {
	q := normalizeInput(query)
	results := []ScoredBooking{}
	if q == "" {
		return results
	}

	var cm *closestmatch.ClosestMatch
	if names := uniqueClientNames(bookings); len(names) > 0 {
		cm = createMatcher(names)
	}
	closest := ""
	if cm != nil {
		closest = cm.Closest(q)
	}
	digits := validator.NormalizePhone(query)

	for _, b := range bookings {
		if score := scoreBooking(b, q, digits, closest); score > 0 {
			results = append(results, ScoredBooking{Booking: b, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].CheckIn.After(results[j].CheckIn)
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

func scoreBooking(b models.Booking, q, digits, closest string) int {
	score := 0
	name := normalizeInput(b.ClientName)

	if len(digits) >= 3 && strings.Contains(b.ClientPhone, digits) {
		score += 20
	}
	if name != "" && strings.Contains(name, q) {
		score += 15
	}
	if email := strings.ToLower(b.ClientEmail); email != "" && strings.Contains(email, q) {
		score += 10
	}
	if villa := normalizeInput(b.VillaName); villa != "" && strings.Contains(villa, q) {
		score += 8
	}
	if score == 0 && name != "" {
		if closest == name {
			score += 5
		}
		if sim := calculateSimilarity(q, name); sim >= minSimilarity {
			score += int(sim * 10)
		}
	}
	return score
}
