// Package model holds the ERP master-data records the dashboard manages.
//
// Records mirror the ERP API JSON. Every record implements Entity so generic
// code can address it without knowing the name of its identifier field.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Entity is a record with an identifier.
type Entity interface {
	EntityID() string
}

// ID is an identifier the ERP API sends either as a JSON string or a number.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("model: id must be a string or a number, got %s", b)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Audit holds the timestamps most records carry.
type Audit struct {
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
