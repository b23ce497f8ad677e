package weather

import (
	"fmt"
)

// NormalizeCurrent flattens a current-conditions record into a plain map.
// Values are copied as-is; absent fallback fields become nil.
func NormalizeCurrent(cw CurrentWeather) (map[string]any, error) {
	switch r := cw.(type) {
	case *FullRecord:
		if r == nil {
			return nil, fmt.Errorf("no current weather record")
		}
		out := make(map[string]any, len(r.Attributes))
		for k, v := range r.Attributes {
			out[k] = unwrap(v)
		}
		return out, nil
	case *PartialRecord:
		if r == nil {
			return nil, fmt.Errorf("no current weather record")
		}
		return map[string]any{
			FieldLocation:    unwrap(r.Location),
			FieldHumidity:    unwrap(r.Humidity),
			FieldRain:        unwrap(r.Rain),
			FieldTemperature: unwrap(r.Temperature),
			FieldWindSpeed:   unwrap(r.WindSpeed),
			FieldFeelsLike:   unwrap(r.FeelsLike),
			FieldUV:          unwrap(r.UV),
			FieldTime:        unwrap(r.Time),
			FieldJSONResult:  unwrap(r.JSONResult),
		}, nil
	case nil:
		return nil, fmt.Errorf("no current weather record")
	default:
		return nil, fmt.Errorf("unsupported current weather record %T", cw)
	}
}

// NormalizeForecast flattens a forecast into one map per day, preserving
// day and hour order. Missing fields fail the whole forecast; fields sent as
// null come out as nil.
func NormalizeForecast(f *Forecast) ([]map[string]any, error) {
	if f == nil {
		return nil, fmt.Errorf("no forecast record")
	}

	days := make([]map[string]any, 0, len(f.Days))
	for i, day := range f.Days {
		d, err := normalizeDay(i, day)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

func normalizeDay(i int, day ForecastDay) (map[string]any, error) {
	if day.Date.IsZero() {
		return nil, &NormalizationError{Day: i, Hour: -1, Field: "date"}
	}

	fields := []struct {
		key string
		val Value
	}{
		{"location", day.Location},
		{"day", day.Day},
		{"weather", day.Weather},
		{"minimum_temperature", day.MinimumTemperature},
		{"maximum_temperature", day.MaximumTemperature},
		{"maximum_uvi", day.MaximumUVI},
		{"description", day.Description},
	}

	out := make(map[string]any, len(fields)+2)
	if iso, ok := day.Date.ISO(); ok {
		out["date"] = iso
	} else {
		out["date"] = day.Date.String()
	}
	for _, f := range fields {
		if f.val == nil {
			return nil, &NormalizationError{Day: i, Hour: -1, Field: f.key}
		}
		out[f.key] = unwrap(f.val)
	}

	hours := make([]map[string]any, 0, len(day.Hours))
	for j, h := range day.Hours {
		switch {
		case h.Hour == nil:
			return nil, &NormalizationError{Day: i, Hour: j, Field: "hour"}
		case h.Weather == nil:
			return nil, &NormalizationError{Day: i, Hour: j, Field: "weather"}
		case h.Temperature == nil:
			return nil, &NormalizationError{Day: i, Hour: j, Field: "temperature"}
		}
		hours = append(hours, map[string]any{
			"hour":        unwrap(h.Hour),
			"weather":     unwrap(h.Weather),
			"temperature": unwrap(h.Temperature),
		})
	}
	out["hours"] = hours

	return out, nil
}
