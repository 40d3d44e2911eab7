// Package aggregate computes the dashboard statistics and chart rows.
//
// Every function here is pure: the records are only read, never modified, and
// each call builds its output from scratch.
package aggregate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/artdash/internal/models"
)

// DefaultTypeLabels are the object types charted on the dashboard, in display order
var DefaultTypeLabels = []string{"Painting", "Print", "Sculpture", "Ceramic"}

var yearPattern = regexp.MustCompile(`\d{4}`)

// Summarize counts the records and the distinct type labels among them.
// A missing label is its own bucket, separate from an empty label.
func Summarize(records []models.ArtworkRecord) models.Summary {
	type typeKey struct {
		present bool
		label   string
	}

	seen := make(map[typeKey]struct{})
	for _, r := range records {
		key := typeKey{}
		if r.TypeLabel != nil {
			key = typeKey{present: true, label: *r.TypeLabel}
		}
		seen[key] = struct{}{}
	}

	return models.Summary{
		Total:         len(records),
		DistinctTypes: len(seen),
	}
}

// ByFixedTypes counts records per label using exact, case-sensitive matching.
// The output has one row per label in the order given, zero counts included.
func ByFixedTypes(records []models.ArtworkRecord, labels []string) []models.AggregateRow {
	rows := make([]models.AggregateRow, len(labels))
	for i, label := range labels {
		rows[i] = models.AggregateRow{Label: label}
		for _, r := range records {
			if r.TypeLabel != nil && *r.TypeLabel == label {
				rows[i].Count++
			}
		}
	}
	return rows
}

// ByCentury buckets records by the century of the first year found in their
// date text. Records without a year are skipped. Rows appear in the order their
// label is first seen.
func ByCentury(records []models.ArtworkRecord) []models.AggregateRow {
	rows := []models.AggregateRow{}
	index := make(map[string]int)

	for _, r := range records {
		year, ok := ExtractYear(models.Value(r.DateText))
		if !ok {
			continue
		}
		label := CenturyLabel(year)
		if i, exists := index[label]; exists {
			rows[i].Count++
			continue
		}
		index[label] = len(rows)
		rows = append(rows, models.AggregateRow{Label: label, Count: 1})
	}

	return rows
}

// ExtractYear returns the first four consecutive digits in text as a year.
func ExtractYear(text string) (int, bool) {
	match := yearPattern.FindString(text)
	if match == "" {
		return 0, false
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return year, true
}

// CenturyLabel names the bucket for a year as ceil(year/100) followed by "00s".
// A year of 1620 lands in "1700s"; this is the dashboard's established labelling.
func CenturyLabel(year int) string {
	century := (year + 99) / 100
	return fmt.Sprintf("%d00s", century)
}

// Filter keeps records whose title contains titleSearch and whose type equals
// typeFilter, both case-insensitively. Empty criteria match everything.
func Filter(records []models.ArtworkRecord, titleSearch, typeFilter string) []models.ArtworkRecord {
	search := strings.ToLower(titleSearch)
	filtered := make([]models.ArtworkRecord, 0, len(records))

	for _, r := range records {
		if search != "" {
			if r.Title == nil || !strings.Contains(strings.ToLower(*r.Title), search) {
				continue
			}
		}
		if typeFilter != "" {
			if r.TypeLabel == nil || !strings.EqualFold(*r.TypeLabel, typeFilter) {
				continue
			}
		}
		filtered = append(filtered, r)
	}

	return filtered
}
