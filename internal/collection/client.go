package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lehigh-university-libraries/artdash/internal/models"
)

// DefaultBaseURL is The Met Collection API
const DefaultBaseURL = "https://collectionapi.metmuseum.org/public/collection/v1"

// ErrMissingObject is returned when an object body lacks its identifier
var ErrMissingObject = errors.New("object response has no objectID")

// Client represents a collection API client
type Client struct {
	BaseURL    string
	httpClient *http.Client
}

// NewClient creates a new collection client. A zero timeout leaves requests unbounded.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// DepartmentObjectIDs lists the object identifiers belonging to a department.
// An absent objectIDs field decodes to a nil slice.
func (c *Client) DepartmentObjectIDs(ctx context.Context, departmentID int) ([]int, error) {
	params := url.Values{}
	params.Set("departmentIds", fmt.Sprintf("%d", departmentID))
	reqURL := fmt.Sprintf("%s/objects?%s", c.BaseURL, params.Encode())

	var listResp struct {
		Total     int   `json:"total"`
		ObjectIDs []int `json:"objectIDs"`
	}
	if err := c.getJSON(ctx, reqURL, &listResp); err != nil {
		return nil, fmt.Errorf("failed to list department %d: %w", departmentID, err)
	}

	return listResp.ObjectIDs, nil
}

// Object fetches the full record for one object
func (c *Client) Object(ctx context.Context, objectID int) (*models.ArtworkRecord, error) {
	reqURL := fmt.Sprintf("%s/objects/%d", c.BaseURL, objectID)

	var record models.ArtworkRecord
	if err := c.getJSON(ctx, reqURL, &record); err != nil {
		return nil, fmt.Errorf("failed to fetch object %d: %w", objectID, err)
	}
	if record.ID == 0 {
		return nil, fmt.Errorf("object %d: %w", objectID, ErrMissingObject)
	}

	return &record, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
