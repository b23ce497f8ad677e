package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/i474232898/ims-api/internal/locations"
	"github.com/i474232898/ims-api/internal/weather"
)

const (
	// IMSBaseURL is the public Israel Meteorological Service site.
	IMSBaseURL   = "https://ims.gov.il"
	imsUserAgent = "ims-api/1.0"
)

// IMSProvider implements the weather.Provider interface for the Israel
// Meteorological Service JSON endpoints.
type IMSProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
}

func NewIMSProvider(client *http.Client, baseURL string) *IMSProvider {
	if baseURL == "" {
		baseURL = IMSBaseURL
	}
	return &IMSProvider{
		name:    "ims",
		baseURL: strings.TrimRight(baseURL, "/"),
		httpCfg: HTTPClientConfig{
			Client:    client,
			UserAgent: imsUserAgent,
		},
	}
}

func (p *IMSProvider) Name() string {
	return p.name
}

// imsEnvelope is the outer shape of every IMS JSON payload.
type imsEnvelope struct {
	Data json.RawMessage `json:"data"`
}

func (p *IMSProvider) fetchData(ctx context.Context, u string) (json.RawMessage, error) {
	body, err := doRequest(ctx, p.httpCfg, u)
	if err != nil {
		return nil, err
	}

	var env imsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("ims: decode response: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, fmt.Errorf("ims: response has no data")
	}
	return env.Data, nil
}

// FetchCurrent returns the current analysis for a location. Entries with the
// recognised IMS schema become a FullRecord; anything else a PartialRecord.
func (p *IMSProvider) FetchCurrent(ctx context.Context, locationID int, language string) (weather.CurrentWeather, error) {
	u := fmt.Sprintf("%s/%s/now_analysis", p.baseURL, url.PathEscape(language))

	data, err := p.fetchData(ctx, u)
	if err != nil {
		return nil, err
	}

	var byLocation map[string]json.RawMessage
	if err := json.Unmarshal(data, &byLocation); err != nil {
		return nil, fmt.Errorf("ims: decode current analysis: %w", err)
	}

	raw, ok := byLocation[strconv.Itoa(locationID)]
	if !ok {
		return nil, fmt.Errorf("ims: location %d not found in current analysis", locationID)
	}

	entry, err := decodeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("ims: decode location %d: %w", locationID, err)
	}

	name := firstOf(entry, "name", "location")
	if name == nil {
		if n, ok := locations.Name(locationID); ok {
			name = n
		}
	}

	if _, ok := entry["lid"]; !ok {
		return &weather.PartialRecord{
			Location:    name,
			Humidity:    firstOf(entry, "relative_humidity", "humidity"),
			Rain:        firstOf(entry, "rain"),
			Temperature: firstOf(entry, "temperature"),
			WindSpeed:   firstOf(entry, "wind_speed"),
			FeelsLike:   firstOf(entry, "feels_like"),
			UV:          firstOf(entry, "u_v_index", "uv"),
			Time:        firstOf(entry, "forecast_time", "time"),
			JSONResult:  entry,
		}, nil
	}

	attrs := map[string]weather.Value{
		weather.FieldLocation:    name,
		weather.FieldHumidity:    firstOf(entry, "relative_humidity", "humidity"),
		weather.FieldRain:        firstOf(entry, "rain"),
		weather.FieldTemperature: firstOf(entry, "temperature"),
		weather.FieldWindSpeed:   firstOf(entry, "wind_speed"),
		weather.FieldFeelsLike:   firstOf(entry, "feels_like"),
		weather.FieldUV:          firstOf(entry, "u_v_index", "uv"),
		weather.FieldTime:        firstOf(entry, "forecast_time", "time"),
		weather.FieldJSONResult:  entry,
		"lid":                    entry["lid"],
	}
	for k, v := range entry {
		if _, taken := attrs[k]; !taken {
			attrs[k] = v
		}
	}

	return &weather.FullRecord{Attributes: attrs}, nil
}

// FetchForecast returns the multi-day forecast for a location. Days and hours
// keep the order of the IMS payload.
func (p *IMSProvider) FetchForecast(ctx context.Context, locationID int, language string) (*weather.Forecast, error) {
	u := fmt.Sprintf("%s/%s/forecast_data/%d", p.baseURL, url.PathEscape(language), locationID)

	data, err := p.fetchData(ctx, u)
	if err != nil {
		return nil, err
	}

	days, err := orderedMembers(data)
	if err != nil {
		return nil, fmt.Errorf("ims: decode forecast: %w", err)
	}

	var locationName weather.Value
	if n, ok := locations.Name(locationID); ok {
		locationName = n
	}

	forecast := &weather.Forecast{Days: make([]weather.ForecastDay, 0, len(days))}
	for _, d := range days {
		day, err := parseIMSDay(d, locationName)
		if err != nil {
			return nil, fmt.Errorf("ims: decode forecast day %s: %w", d.Key, err)
		}
		forecast.Days = append(forecast.Days, day)
	}

	return forecast, nil
}

func parseIMSDay(d member, locationName weather.Value) (weather.ForecastDay, error) {
	var parts struct {
		Daily  json.RawMessage `json:"daily"`
		Hourly json.RawMessage `json:"hourly"`
	}
	if err := json.Unmarshal(d.Value, &parts); err != nil {
		return weather.ForecastDay{}, err
	}

	daily := map[string]any{}
	if len(parts.Daily) > 0 && string(parts.Daily) != "null" {
		var err error
		if daily, err = decodeObject(parts.Daily); err != nil {
			return weather.ForecastDay{}, fmt.Errorf("daily: %w", err)
		}
	}

	date := d.Key
	if s, ok := daily["forecast_date"].(string); ok && s != "" {
		date = s
	}

	location := firstOf(daily, "location", "location_name")
	if location == nil {
		location = locationName
	}

	day := weather.ForecastDay{
		Date:               weather.ParseDate(date),
		Location:           location,
		Day:                firstOf(daily, "day_name", "day"),
		Weather:            firstOf(daily, "weather_code", "weather"),
		MinimumTemperature: firstOf(daily, "minimum_temperature"),
		MaximumTemperature: firstOf(daily, "maximum_temperature"),
		MaximumUVI:         firstOf(daily, "maximum_uvi"),
		Description:        firstOf(daily, "description"),
		Hours:              []weather.ForecastHour{},
	}

	if len(parts.Hourly) == 0 || string(parts.Hourly) == "null" {
		return day, nil
	}

	hours, err := orderedMembers(parts.Hourly)
	if err != nil {
		return weather.ForecastDay{}, fmt.Errorf("hourly: %w", err)
	}
	for _, h := range hours {
		hourly, err := decodeObject(h.Value)
		if err != nil {
			return weather.ForecastDay{}, fmt.Errorf("hour %s: %w", h.Key, err)
		}

		hour := firstOf(hourly, "hour")
		if hour == nil {
			hour = h.Key
		}
		day.Hours = append(day.Hours, weather.ForecastHour{
			Hour:        hour,
			Weather:     firstOf(hourly, "weather_code", "weather"),
			Temperature: firstOf(hourly, "precise_temperature", "temperature"),
		})
	}

	return day, nil
}
