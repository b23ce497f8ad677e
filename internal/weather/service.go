package weather

import (
	"context"
	"time"

	"github.com/i474232898/ims-api/internal/locations"
	"github.com/i474232898/ims-api/internal/logger"
)

// DefaultLanguage is used when a request does not name one.
const DefaultLanguage = "he"

// Observer receives provider call timings. *metrics.Metrics satisfies it.
type Observer interface {
	ObserveProviderCall(operation, outcome string, d time.Duration)
}

// Service validates requests against the location registry, calls the
// provider once and normalizes the result. It holds no per-request state.
type Service struct {
	provider        Provider
	defaultLanguage string
	observer        Observer
}

// NewService creates a new Service. An empty defaultLanguage means
// DefaultLanguage; observer may be nil.
func NewService(provider Provider, defaultLanguage string, observer Observer) *Service {
	if defaultLanguage == "" {
		defaultLanguage = DefaultLanguage
	}
	return &Service{
		provider:        provider,
		defaultLanguage: defaultLanguage,
		observer:        observer,
	}
}

// DefaultLanguage returns the language used when a request names none.
func (s *Service) DefaultLanguage() string {
	return s.defaultLanguage
}

// Locations returns the full location registry.
func (s *Service) Locations() map[int]string {
	return locations.All()
}

// Current returns normalized current conditions for a location.
func (s *Service) Current(ctx context.Context, locationID int, language string) (map[string]any, error) {
	if !locations.Exists(locationID) {
		return nil, ErrInvalidLocation
	}
	language = s.language(language)

	logger.WithFields(logger.Fields{"location_id": locationID, "language": language}).
		Debug("fetching current analysis")

	start := time.Now()
	cw, err := s.provider.FetchCurrent(ctx, locationID, language)
	s.observe("current", start, err)
	if err != nil {
		return nil, &ProviderError{Op: "current", Err: err}
	}

	return NormalizeCurrent(cw)
}

// Forecast returns the normalized day list for a location.
func (s *Service) Forecast(ctx context.Context, locationID int, language string) ([]map[string]any, error) {
	if !locations.Exists(locationID) {
		return nil, ErrInvalidLocation
	}
	language = s.language(language)

	logger.WithFields(logger.Fields{"location_id": locationID, "language": language}).
		Debug("fetching forecast")

	start := time.Now()
	f, err := s.provider.FetchForecast(ctx, locationID, language)
	s.observe("forecast", start, err)
	if err != nil {
		return nil, &ProviderError{Op: "forecast", Err: err}
	}

	return NormalizeForecast(f)
}

func (s *Service) language(lang string) string {
	if lang == "" {
		return s.defaultLanguage
	}
	return lang
}

func (s *Service) observe(op string, start time.Time, err error) {
	if s.observer == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	s.observer.ObserveProviderCall(op, outcome, time.Since(start))
}
