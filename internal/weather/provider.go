package weather

import (
	"context"
)

//go:generate mockgen -source=provider.go -destination=mock/mock.go Provider

// Provider abstracts the upstream meteorological data source (e.g. IMS).
// Implementations make a single attempt per call.
type Provider interface {
	FetchCurrent(ctx context.Context, locationID int, language string) (CurrentWeather, error)
	FetchForecast(ctx context.Context, locationID int, language string) (*Forecast, error)
}
