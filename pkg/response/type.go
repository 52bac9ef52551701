package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date is a date rendered as DateFormat in local time.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateFormat))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := parseLocal(b, DateFormat)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

// DateTime is a timestamp rendered as DateTimeFormat in local time.
type DateTime time.Time

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	t, err := parseLocal(b, DateTimeFormat)
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}

func parseLocal(b []byte, layout string) (time.Time, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return time.Time{}, err
	}
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(layout, s, time.Local)
}
