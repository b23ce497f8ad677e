package weather

import (
	"time"
)

// Value is a raw provider value (json.Number, string, bool, nested maps...).
// Values pass through normalization unchanged.
type Value = any

// Null marks a field the provider sent with an explicit null. It is present,
// unlike a nil Value, and normalizes to nil.
type Null struct{}

// MarshalJSON encodes Null as a JSON null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// IsNull reports whether v is an explicit null.
func IsNull(v Value) bool {
	_, ok := v.(Null)
	return ok
}

func unwrap(v Value) Value {
	if IsNull(v) {
		return nil
	}
	return v
}

// Known current-conditions fields extracted on the fallback path.
const (
	FieldLocation    = "location"
	FieldHumidity    = "humidity"
	FieldRain        = "rain"
	FieldTemperature = "temperature"
	FieldWindSpeed   = "wind_speed"
	FieldFeelsLike   = "feels_like"
	FieldUV          = "uv"
	FieldTime        = "time"
	FieldJSONResult  = "json_result"
)

// CurrentFields lists the fallback-path fields in output order.
var CurrentFields = []string{
	FieldLocation,
	FieldHumidity,
	FieldRain,
	FieldTemperature,
	FieldWindSpeed,
	FieldFeelsLike,
	FieldUV,
	FieldTime,
	FieldJSONResult,
}

// CurrentWeather is a current-conditions result from a Provider.
// It is either a *FullRecord or a *PartialRecord.
type CurrentWeather interface {
	isCurrentWeather()
}

// FullRecord carries every attribute the provider returned.
type FullRecord struct {
	Attributes map[string]Value
}

// PartialRecord carries the known fields only. A nil or Null field is absent
// from the output as nil.
type PartialRecord struct {
	Location    Value
	Humidity    Value
	Rain        Value
	Temperature Value
	WindSpeed   Value
	FeelsLike   Value
	UV          Value
	Time        Value
	JSONResult  Value
}

func (*FullRecord) isCurrentWeather()    {}
func (*PartialRecord) isCurrentWeather() {}

// Forecast is a multi-day forecast. Days are in the order the provider
// returned them.
type Forecast struct {
	Days []ForecastDay
}

// ForecastDay is a single forecast day. A nil Value field is missing; a field
// sent as null holds Null.
type ForecastDay struct {
	Date               Date
	Location           Value
	Day                Value
	Weather            Value
	MinimumTemperature Value
	MaximumTemperature Value
	MaximumUVI         Value
	Description        Value
	Hours              []ForecastHour
}

// ForecastHour is a single hourly entry within a ForecastDay.
type ForecastHour struct {
	Hour        Value
	Weather     Value
	Temperature Value
}

// Date is a date-like value. It holds either a calendar date or the raw text
// the provider sent when that text could not be parsed as one.
type Date struct {
	t   time.Time
	raw string
	ok  bool
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// NewDate wraps a calendar date.
func NewDate(t time.Time) Date {
	return Date{t: t, raw: t.Format("2006-01-02"), ok: true}
}

// RawDate wraps text that is not a calendar date.
func RawDate(s string) Date {
	return Date{raw: s}
}

// ParseDate parses s as a calendar date, falling back to RawDate.
func ParseDate(s string) Date {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t: t, raw: s, ok: true}
		}
	}
	return RawDate(s)
}

// ISO returns the ISO-8601 calendar date, if d holds one.
func (d Date) ISO() (string, bool) {
	if !d.ok {
		return "", false
	}
	return d.t.Format("2006-01-02"), true
}

// String returns the raw text of d.
func (d Date) String() string {
	return d.raw
}

// IsZero reports whether d carries no value at all.
func (d Date) IsZero() bool {
	return !d.ok && d.raw == ""
}
