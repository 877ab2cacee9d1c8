// internal/pipeline/normalizer.go
package pipeline

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"market-intel/internal/common/errors"
	"market-intel/internal/common/logger"
	"market-intel/internal/common/metrics"
	"market-intel/internal/models"
)

// Per-source payload shapes. Each directory gets its own decode struct;
// nothing downstream of the normalizer touches raw payloads.

type googlePlacesPayload struct {
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	BusinessStatus   string   `json:"business_status"`
	Types            []string `json:"types"`
	Photos           []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
	Geometry struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

type yelpPayload struct {
	Name         string  `json:"name"`
	URL          string  `json:"url"`
	Phone        string  `json:"phone"`
	DisplayPhone string  `json:"display_phone"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"review_count"`
	IsClosed     bool    `json:"is_closed"`
	Categories   []struct {
		Alias string `json:"alias"`
		Title string `json:"title"`
	} `json:"categories"`
	Coordinates struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"coordinates"`
	Location struct {
		Address1       string   `json:"address1"`
		City           string   `json:"city"`
		State          string   `json:"state"`
		ZipCode        string   `json:"zip_code"`
		DisplayAddress []string `json:"display_address"`
	} `json:"location"`
}

type serpPayload struct {
	Title   string  `json:"title"`
	Address string  `json:"address"`
	Phone   string  `json:"phone"`
	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`
	Type    string  `json:"type"`
	Website string  `json:"website"`
	GPSCoordinates struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"gps_coordinates"`
}

type syntheticPayload struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Zip         string  `json:"zip"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Website     string  `json:"website"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	PhotoCount  int     `json:"photo_count"`
	Category    string  `json:"category"`
}

// Normalizer converts raw source records into BusinessRecords. Malformed
// records are dropped and reported as warnings, never as scan failures.
type Normalizer struct {
	logger logger.Logger
}

func NewNormalizer(log logger.Logger) *Normalizer {
	return &Normalizer{logger: log}
}

func (n *Normalizer) Normalize(records []models.RawRecord, collector *errors.Collector) []models.BusinessRecord {
	out := make([]models.BusinessRecord, 0, len(records))

	for _, raw := range records {
		record, err := n.normalizeOne(raw)
		if err != nil {
			metrics.RecordsDropped.WithLabelValues(raw.Source, "malformed").Inc()
			if collector != nil {
				collector.Collect(err)
			}
			continue
		}
		metrics.RecordsNormalized.WithLabelValues(raw.Source).Inc()
		out = append(out, record)
	}

	return out
}

func (n *Normalizer) normalizeOne(raw models.RawRecord) (models.BusinessRecord, error) {
	switch raw.Source {
	case models.SourceGooglePlaces:
		return normalizeGooglePlaces(raw.Payload)
	case models.SourceYelp:
		return normalizeYelp(raw.Payload)
	case models.SourceSerp:
		return normalizeSerp(raw.Payload)
	case models.SourceSynthetic:
		return normalizeSynthetic(raw.Payload)
	default:
		return models.BusinessRecord{}, errors.NewMalformedRecordError(raw.Source,
			fmt.Sprintf("unknown source %q", raw.Source))
	}
}

func normalizeGooglePlaces(payload json.RawMessage) (models.BusinessRecord, error) {
	var p googlePlacesPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return models.BusinessRecord{}, errors.NewMalformedRecordError(models.SourceGooglePlaces, err.Error())
	}
	if strings.TrimSpace(p.Name) == "" {
		return models.BusinessRecord{}, errors.NewMalformedRecordError(models.SourceGooglePlaces, "empty business name")
	}
	if p.BusinessStatus != "" && p.BusinessStatus != "OPERATIONAL" {
		return models.BusinessRecord{}, errors.NewMalformedRecordError(models.SourceGooglePlaces,
			fmt.Sprintf("non-operational status %q", p.BusinessStatus))
	}

	record := models.BusinessRecord{
		Name:        strings.TrimSpace(p.Name),
		Rating:      p.Rating,
		ReviewCount: p.UserRatingsTotal,
		PhotoCount:  len(p.Photos),
		Categories:  p.Types,
		Source:      models.SourceGooglePlaces,
	}
	record.Line1, record.City, record.State, record.Zip = parseAddress(p.FormattedAddress)
	if p.Geometry.Location.Lat != 0 || p.Geometry.Location.Lng != 0 {
		record.Coordinates = &models.Coordinates{Lat: p.Geometry.Location.Lat, Lng: p.Geometry.Location.Lng}
	}
	return record, nil
}

func normalizeYelp(payload json.RawMessage) (models.BusinessRecord, error) {
	var p yelpPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return models.BusinessRecord{}, errors.NewMalformedRecordError(models.SourceYelp, err.Error())
	}
	if strings.TrimSpace(p.Name) == "" {
		return models.BusinessRecord{}, errors.NewMalformedRecordError(models.SourceYelp, "empty business name")
	}
	if p.IsClosed {
		return models.BusinessRecord{}, errors.NewMalformedRecordError(models.SourceYelp, "business is closed")
	}

	phone := p.Phone
	if phone == "" {
		phone = p.DisplayPhone
	}

	categories := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		categories = append(categories, c.Title)
	}

	record := models.BusinessRecord{
		Name:        strings.TrimSpace(p.Name),
		Line1:       p.Location.Address1,
		City:        p.Location.City,
		State:       p.Location.State,
		Zip:         p.Location.ZipCode,
		Phone:       phone,
		Website:     normalizeWebsite(p.URL),
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Categories:  categories,
		Source:      models.SourceYelp,
	}
	if record.Line1 == "" && len(p.Location.DisplayAddress) > 0 {
		record.Line1, record.City, record.State, record.Zip = parseAddress(strings.Join(p.Location.DisplayAddress, ", "))
	}
	if p.Coordinates.Latitude != 0 || p.Coordinates.Longitude != 0 {
		record.Coordinates = &models.Coordinates{Lat: p.Coordinates.Latitude, Lng: p.Coordinates.Longitude}
	}
	return record, nil
}

func normalizeSerp(payload json.RawMessage) (models.BusinessRecord, error) {
	var p serpPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return models.BusinessRecord{}, errors.NewMalformedRecordError(models.SourceSerp, err.Error())
	}
	if strings.TrimSpace(p.Title) == "" {
		return models.BusinessRecord{}, errors.NewMalformedRecordError(models.SourceSerp, "empty business name")
	}

	record := models.BusinessRecord{
		Name:        strings.TrimSpace(p.Title),
		Phone:       p.Phone,
		Website:     normalizeWebsite(p.Website),
		Rating:      p.Rating,
		ReviewCount: p.Reviews,
		Source:      models.SourceSerp,
	}
	if p.Type != "" {
		record.Categories = []string{p.Type}
	}
	record.Line1, record.City, record.State, record.Zip = parseAddress(p.Address)
	if p.GPSCoordinates.Latitude != 0 || p.GPSCoordinates.Longitude != 0 {
		record.Coordinates = &models.Coordinates{Lat: p.GPSCoordinates.Latitude, Lng: p.GPSCoordinates.Longitude}
	}
	return record, nil
}

func normalizeSynthetic(payload json.RawMessage) (models.BusinessRecord, error) {
	var p syntheticPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return models.BusinessRecord{}, errors.NewMalformedRecordError(models.SourceSynthetic, err.Error())
	}
	if strings.TrimSpace(p.Name) == "" {
		return models.BusinessRecord{}, errors.NewMalformedRecordError(models.SourceSynthetic, "empty business name")
	}

	record := models.BusinessRecord{
		Name:        strings.TrimSpace(p.Name),
		Line1:       p.Address,
		City:        p.City,
		State:       p.State,
		Zip:         p.Zip,
		Phone:       p.Phone,
		Email:       p.Email,
		Website:     normalizeWebsite(p.Website),
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		PhotoCount:  p.PhotoCount,
		Source:      models.SourceSynthetic,
	}
	if p.Category != "" {
		record.Categories = []string{p.Category}
	}
	return record, nil
}

var stateZipPattern = regexp.MustCompile(`^([A-Za-z]{2})\s+(\d{5})(?:-\d{4})?$`)

// parseAddress splits "123 Main St, Springfield, IL 62704" style strings.
// Anything that doesn't fit the trailing "ST ZIP" shape stays in line1.
func parseAddress(full string) (line1, city, state, zip string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", "", "", ""
	}

	parts := strings.Split(full, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	// Google appends the country; drop a trailing "USA"/"United States".
	if len(parts) > 1 {
		last := strings.ToLower(parts[len(parts)-1])
		if last == "usa" || last == "united states" {
			parts = parts[:len(parts)-1]
		}
	}

	if len(parts) >= 3 {
		if m := stateZipPattern.FindStringSubmatch(parts[len(parts)-1]); m != nil {
			state = strings.ToUpper(m[1])
			zip = m[2]
			city = parts[len(parts)-2]
			line1 = strings.Join(parts[:len(parts)-2], ", ")
			return line1, city, state, zip
		}
	}
	if len(parts) == 2 {
		if m := stateZipPattern.FindStringSubmatch(parts[1]); m != nil {
			return "", parts[0], strings.ToUpper(m[1]), m[2]
		}
		return parts[0], parts[1], "", ""
	}

	return full, "", "", ""
}

// normalizeWebsite prefixes bare domains with https so the contact block
// always carries a usable URL.
func normalizeWebsite(site string) string {
	site = strings.TrimSpace(site)
	if site == "" {
		return ""
	}
	if strings.HasPrefix(site, "http://") || strings.HasPrefix(site, "https://") {
		return site
	}
	if strings.Contains(site, ".") {
		return "https://" + site
	}
	return site
}
