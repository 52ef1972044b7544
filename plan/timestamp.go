package plan

import (
	"encoding/json"
	"time"
)

// Layout is the vendor's timestamp format: minute resolution, no zone.
const Layout = "2006-01-02T15:04"

// Timestamp is a point in time carried on the wire in the vendor's
// minute-resolution layout. The zero Timestamp means "unset".
type Timestamp struct {
	time.Time
}

// At wraps a time.Time as a vendor timestamp.
func At(t time.Time) Timestamp {
	return Timestamp{t}
}

// Date builds a Timestamp from calendar components, UTC.
func Date(year int, month time.Month, day, hour, minute int) Timestamp {
	return Timestamp{time.Date(year, month, day, hour, minute, 0, 0, time.UTC)}
}

func (t Timestamp) String() string {
	return t.Format(Layout)
}

// MarshalJSON emits the vendor layout so a Timestamp that reaches
// encoding/json directly still serializes correctly.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(Layout))
}

// UnmarshalJSON parses the vendor's minute-resolution layout.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(Layout, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
