package model

import "encoding/json"

// Average is an aggregate metric that may have no underlying data.
// An invalid Average means "not applicable" and is distinct from a
// real score of zero; it serializes as "N/A".
type Average struct {
	Value float64
	Valid bool
}

// SomeAverage returns a valid Average holding v
func SomeAverage(v float64) Average {
	return Average{Value: v, Valid: true}
}

// NoAverage returns the "no data" sentinel
func NoAverage() Average {
	return Average{}
}

// Or returns the value, or def when no data was available.
// Call sites that render a plain number must go through this
// so the sentinel can never be mistaken for a real zero.
func (a Average) Or(def float64) float64 {
	if !a.Valid {
		return def
	}
	return a.Value
}

// MarshalJSON emits the numeric value, or "N/A" for the sentinel
func (a Average) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte(`"N/A"`), nil
	}
	return json.Marshal(a.Value)
}

// UnmarshalJSON accepts either a number or the "N/A" sentinel
func (a *Average) UnmarshalJSON(data []byte) error {
	if string(data) == `"N/A"` {
		*a = NoAverage()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = SomeAverage(v)
	return nil
}
