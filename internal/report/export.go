package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/artdash/internal/models"
	"github.com/parquet-go/parquet-go"
)

// FormatParquet is only available for exports
const FormatParquet = "parquet"

var exportFormats = map[string]bool{
	FormatParquet: true,
	FormatJSON:    true,
	FormatYAML:    true,
	FormatCSV:     true,
}

func unsupportedExport(format string) error {
	return fmt.Errorf("unsupported export format: %q (supported: parquet, json, yaml, csv)", format)
}

// FormatFromPath guesses the export format from a file extension
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return FormatParquet
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".csv":
		return FormatCSV
	default:
		return ""
	}
}

// ExportRecords writes the raw records to path
func ExportRecords(path, format string, records []models.ArtworkRecord) error {
	if format == "" {
		format = FormatFromPath(path)
	}
	if !exportFormats[format] {
		return unsupportedExport(format)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	if err := WriteRecords(file, format, records); err != nil {
		return err
	}
	return file.Close()
}

// WriteRecords encodes the raw records in the given format
func WriteRecords(w io.Writer, format string, records []models.ArtworkRecord) error {
	switch format {
	case FormatParquet:
		return writeParquet(w, records)
	case FormatJSON:
		return writeJSON(w, records)
	case FormatYAML:
		return writeYAML(w, records)
	case FormatCSV:
		return writeRecordsCSV(w, records)
	default:
		return unsupportedExport(format)
	}
}

func writeParquet(w io.Writer, records []models.ArtworkRecord) error {
	writer := parquet.NewGenericWriter[models.ArtworkRecord](w)
	if _, err := writer.Write(records); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

func writeRecordsCSV(w io.Writer, records []models.ArtworkRecord) error {
	writer := csv.NewWriter(w)

	header := []string{
		"objectID", "title", "objectName", "objectDate", "medium", "artistDisplayName",
		"artistDisplayBio", "dimensions", "creditLine", "repository", "primaryImageSmall", "primaryImage",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			models.Value(r.Title),
			models.Value(r.TypeLabel),
			models.Value(r.DateText),
			models.Value(r.Medium),
			models.Value(r.ArtistName),
			models.Value(r.ArtistBio),
			models.Value(r.Dimensions),
			models.Value(r.CreditLine),
			models.Value(r.RepositoryName),
			models.Value(r.ThumbnailURL),
			models.Value(r.FullImageURL),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
