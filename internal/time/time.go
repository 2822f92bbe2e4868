package time

import (
	"encoding/json"
	"errors"
	"time"
)

const (
	// DateLayout formats an instant as YYYYMMDD.
	DateLayout = "20060102"
	// DateTimeLayout formats an instant as YYYYMMDD_HHMMSS.
	DateTimeLayout = "20060102_150405"
)

// Clock returns the current instant.
type Clock func() time.Time

// Local is the system clock in the local time zone.
func Local() time.Time {
	return time.Now().Local()
}

// Fixed returns a clock that always reports the given instant.
func Fixed(t time.Time) Clock {
	return func() time.Time {
		return t
	}
}

// Date formats the given instant with the DateLayout.
func Date(t time.Time) string {
	return t.Format(DateLayout)
}

// DateTime formats the given instant with the DateTimeLayout.
func DateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// Duration is a json friendly duration
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		if err != nil {
			return err
		}
		return nil
	default:
		return errors.New("invalid duration")
	}
}
