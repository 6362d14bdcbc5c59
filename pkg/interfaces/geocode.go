package interfaces

import "context"

// GeocodeResult is a single address match returned by a geocoding lookup.
type GeocodeResult struct {
	Lat         float64
	Lon         float64
	DisplayName string
}

// Geocoder resolves free-text addresses. Used by the map block editor.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]GeocodeResult, error)
}
