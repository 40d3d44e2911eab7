package models

// ArtworkRecord represents a single object from the collection API.
// Optional fields are pointers so a missing field stays distinct from an empty one.
type ArtworkRecord struct {
	ID             int     `json:"objectID" yaml:"id" parquet:"object_id"`
	Title          *string `json:"title,omitempty" yaml:"title,omitempty" parquet:"title"`
	TypeLabel      *string `json:"objectName,omitempty" yaml:"type,omitempty" parquet:"object_name"`
	DateText       *string `json:"objectDate,omitempty" yaml:"date,omitempty" parquet:"object_date"`
	Medium         *string `json:"medium,omitempty" yaml:"medium,omitempty" parquet:"medium"`
	ArtistName     *string `json:"artistDisplayName,omitempty" yaml:"artist,omitempty" parquet:"artist_display_name"`
	ArtistBio      *string `json:"artistDisplayBio,omitempty" yaml:"artist_bio,omitempty" parquet:"artist_display_bio"`
	Dimensions     *string `json:"dimensions,omitempty" yaml:"dimensions,omitempty" parquet:"dimensions"`
	CreditLine     *string `json:"creditLine,omitempty" yaml:"credit_line,omitempty" parquet:"credit_line"`
	RepositoryName *string `json:"repository,omitempty" yaml:"repository,omitempty" parquet:"repository"`
	ThumbnailURL   *string `json:"primaryImageSmall,omitempty" yaml:"thumbnail_url,omitempty" parquet:"primary_image_small"`
	FullImageURL   *string `json:"primaryImage,omitempty" yaml:"image_url,omitempty" parquet:"primary_image"`
}

// AggregateRow is a (label, count) pair consumed by the charts
type AggregateRow struct {
	Label string `json:"name" yaml:"name"`
	Count int    `json:"value" yaml:"value"`
}

// Summary holds the headline statistics for a set of records
type Summary struct {
	Total         int `json:"total" yaml:"total"`
	DistinctTypes int `json:"unique_types" yaml:"unique_types"`
}

// Placeholders shown for absent fields
const (
	Untitled      = "Untitled"
	Unknown       = "Unknown"
	UnknownArtist = "Unknown Artist"
	NoValue       = "—"
)

// Or returns the field value, or the placeholder when the field is absent or empty.
func Or(field *string, placeholder string) string {
	if field == nil || *field == "" {
		return placeholder
	}
	return *field
}

// Value dereferences an optional field, returning "" when absent.
func Value(field *string) string {
	if field == nil {
		return ""
	}
	return *field
}

// Ptr returns a pointer to s. Handy for building records in tests and fixtures.
func Ptr(s string) *string {
	return &s
}

// Card is the display form of a record in the list view
type Card struct {
	ID           int    `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Type         string `json:"type" yaml:"type"`
	Artist       string `json:"artist" yaml:"artist"`
	Date         string `json:"date" yaml:"date"`
	Medium       string `json:"medium" yaml:"medium"`
	ThumbnailURL string `json:"thumbnail_url,omitempty" yaml:"thumbnail_url,omitempty"`
}

// NewCard fills placeholders for every absent display field
func NewCard(r ArtworkRecord) Card {
	return Card{
		ID:           r.ID,
		Title:        Or(r.Title, Untitled),
		Type:         Or(r.TypeLabel, Unknown),
		Artist:       Or(r.ArtistName, Unknown),
		Date:         Or(r.DateText, Unknown),
		Medium:       Or(r.Medium, Unknown),
		ThumbnailURL: Value(r.ThumbnailURL),
	}
}

// Detail is the display form of a record in the detail view
type Detail struct {
	ID                int            `json:"id" yaml:"id"`
	Title             string         `json:"title" yaml:"title"`
	Artist            string         `json:"artist" yaml:"artist"`
	ArtistBio         string         `json:"artist_bio,omitempty" yaml:"artist_bio,omitempty"`
	Type              string         `json:"type" yaml:"type"`
	Date              string         `json:"date" yaml:"date"`
	Medium            string         `json:"medium" yaml:"medium"`
	Dimensions        string         `json:"dimensions" yaml:"dimensions"`
	CreditLine        string         `json:"credit_line" yaml:"credit_line"`
	Repository        string         `json:"repository" yaml:"repository"`
	ImageURL          string         `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	CenturyComparison []AggregateRow `json:"century_comparison" yaml:"century_comparison"`
}

// NewDetail fills placeholders for the detail view. The comparison rows are left empty.
func NewDetail(r ArtworkRecord) Detail {
	return Detail{
		ID:                r.ID,
		Title:             Or(r.Title, Untitled),
		Artist:            Or(r.ArtistName, UnknownArtist),
		ArtistBio:         Value(r.ArtistBio),
		Type:              Or(r.TypeLabel, Unknown),
		Date:              Or(r.DateText, Unknown),
		Medium:            Or(r.Medium, Unknown),
		Dimensions:        Or(r.Dimensions, NoValue),
		CreditLine:        Or(r.CreditLine, NoValue),
		Repository:        Or(r.RepositoryName, NoValue),
		ImageURL:          Value(r.FullImageURL),
		CenturyComparison: []AggregateRow{},
	}
}
