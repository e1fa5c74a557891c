// Package nominatim implements place-detail lookups with Nominatim reverse geocoding.
package nominatim

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"servicelocator/internal/domain/entity"
	"servicelocator/internal/domain/service"

	"github.com/pkg/errors"
)

// Extra tags copied into CentreDetails.
const (
	extraTagPhone        = "phone"
	extraTagOpeningHours = "opening_hours"
	extraTagWebsite      = "website"
	extraTagRating       = "rating"
)

type reverseResponse struct {
	DisplayName string            `json:"display_name"`
	ExtraTags   map[string]string `json:"extratags"`
	Error       string            `json:"error"`
}

type detailsProvider struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewDetailsProvider creates a PlaceDetailsProvider. Nominatim's usage policy
// requires an identifying User-Agent.
func NewDetailsProvider(baseURL, userAgent string, timeout time.Duration, httpClient *http.Client) service.PlaceDetailsProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &detailsProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: httpClient,
	}
}

// Details reverse-geocodes the coordinate. Fields missing upstream stay nil.
func (p *detailsProvider) Details(ctx context.Context, at entity.Coordinate) (*entity.CentreDetails, error) {
	params := url.Values{
		"lat":            {strconv.FormatFloat(at.Lat, 'f', -1, 64)},
		"lon":            {strconv.FormatFloat(at.Lon, 'f', -1, 64)},
		"format":         {"json"},
		"addressdetails": {"1"},
		"extratags":      {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build nominatim request")
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "nominatim request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("nominatim API returned status: %d", resp.StatusCode)
	}

	var decoded reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "failed to decode nominatim response")
	}
	if decoded.Error != "" {
		return nil, errors.Errorf("nominatim: %s", decoded.Error)
	}

	return &entity.CentreDetails{
		Address:      optional(decoded.DisplayName),
		Phone:        optional(decoded.ExtraTags[extraTagPhone]),
		OpeningHours: optional(decoded.ExtraTags[extraTagOpeningHours]),
		Website:      optional(decoded.ExtraTags[extraTagWebsite]),
		Rating:       optional(decoded.ExtraTags[extraTagRating]),
	}, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}

	return &v
}
