package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/lehigh-university-libraries/artdash/internal/dashboard"
	"github.com/lehigh-university-libraries/artdash/internal/models"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// WriteOverview renders the dashboard overview in the given format
func WriteOverview(w io.Writer, overview dashboard.Overview, format string) error {
	switch format {
	case FormatText:
		return writeOverviewText(w, overview)
	case FormatJSON:
		return writeJSON(w, overview)
	case FormatCSV:
		return writeCardsCSV(w, overview.Items)
	case FormatYAML:
		return writeYAML(w, overview)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteDetail renders one artwork and its century comparison
func WriteDetail(w io.Writer, detail *models.Detail, format string) error {
	switch format {
	case FormatText:
		return writeDetailText(w, detail)
	case FormatJSON:
		return writeJSON(w, detail)
	case FormatCSV:
		return writeRowsCSV(w, detail.CenturyComparison)
	case FormatYAML:
		return writeYAML(w, detail)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeOverviewText(w io.Writer, o dashboard.Overview) error {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "The Met Art Dashboard")
	fmt.Fprintln(w, line)

	if o.Loading {
		fmt.Fprintln(w, "Loading artworks...")
		return nil
	}
	if o.NoData {
		fmt.Fprintln(w, "No artworks found. Try refreshing again in a few seconds.")
		return nil
	}

	fmt.Fprintf(w, "Total Artworks: %s\n", humanize.Comma(int64(o.Summary.Total)))
	fmt.Fprintf(w, "Unique Types:   %s\n", humanize.Comma(int64(o.Summary.DistinctTypes)))

	fmt.Fprintln(w, "\nArtwork Distribution by Type")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	writeBars(w, o.TypeChart)

	fmt.Fprintln(w, "\nArtwork by Century")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	writeBars(w, o.CenturyChart)

	fmt.Fprintf(w, "\nArtworks (%s matching", humanize.Comma(int64(o.Matched)))
	if o.Search != "" {
		fmt.Fprintf(w, ", title contains %q", o.Search)
	}
	if o.TypeFilter != "" {
		fmt.Fprintf(w, ", type %q", o.TypeFilter)
	}
	fmt.Fprintln(w, ")")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, c := range o.Items {
		fmt.Fprintf(w, "[%d] %s\n", c.ID, truncate(c.Title, 70))
		fmt.Fprintf(w, "  Type: %s | Artist: %s | Date: %s\n", c.Type, c.Artist, c.Date)
		fmt.Fprintf(w, "  Medium: %s\n", truncate(c.Medium, 70))
	}

	return nil
}

func writeDetailText(w io.Writer, d *models.Detail) error {
	fmt.Fprintf(w, "%s\n%s\n", d.Title, d.Artist)
	if d.ArtistBio != "" {
		fmt.Fprintf(w, "(%s)\n", d.ArtistBio)
	}
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "Type:        %s\n", d.Type)
	fmt.Fprintf(w, "Date:        %s\n", d.Date)
	fmt.Fprintf(w, "Medium:      %s\n", d.Medium)
	fmt.Fprintf(w, "Dimensions:  %s\n", d.Dimensions)
	fmt.Fprintf(w, "Credit Line: %s\n", d.CreditLine)
	fmt.Fprintf(w, "Repository:  %s\n", d.Repository)
	if d.ImageURL != "" {
		fmt.Fprintf(w, "Image:       %s\n", d.ImageURL)
	}

	fmt.Fprintln(w, "\nArtworks By Century (Comparison)")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	if len(d.CenturyComparison) == 0 {
		fmt.Fprintln(w, "  (no comparison data)")
		return nil
	}
	writeBars(w, d.CenturyComparison)
	return nil
}

// writeBars prints one row per label with a bar scaled to the largest count
func writeBars(w io.Writer, rows []models.AggregateRow) {
	const width = 30

	peak := 0
	for _, r := range rows {
		peak = max(peak, r.Count)
	}
	for _, r := range rows {
		n := 0
		if peak > 0 {
			n = r.Count * width / peak
		}
		fmt.Fprintf(w, "  %-12s %6s %s\n", r.Label, humanize.Comma(int64(r.Count)), strings.Repeat("#", n))
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return nil
}

func writeCardsCSV(w io.Writer, cards []models.Card) error {
	writer := csv.NewWriter(w)

	header := []string{"ID", "Title", "Type", "Artist", "Date", "Medium", "Thumbnail"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, c := range cards {
		row := []string{strconv.Itoa(c.ID), c.Title, c.Type, c.Artist, c.Date, c.Medium, c.ThumbnailURL}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeRowsCSV(w io.Writer, rows []models.AggregateRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Label", "Count"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := writer.Write([]string{r.Label, strconv.Itoa(r.Count)}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// truncate shortens s to at most maxLen runes, marking the cut with "..."
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}
