package actions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"erp-admin/pkg/apiclient"
)

// List is the generated action set of a small reference table.
type List[E any] struct {
	crud[E]
}

var _ ListActions[struct{}] = (*List[struct{}])(nil)

// NewList generates the list CRUD actions for basePath (e.g. "/onerp/states").
func NewList[E any](r apiclient.Requester, basePath string) *List[E] {
	return &List[E]{crud: newCRUD[E](r, basePath)}
}

// FindAll issues GET {base}. Both {"data": [...]} and a bare array are accepted.
func (l *List[E]) FindAll(ctx context.Context) ([]E, error) {
	var raw json.RawMessage
	if err := l.r.Request(ctx, l.basePath, apiclient.Options{Method: http.MethodGet}, &raw); err != nil {
		return nil, err
	}
	return decodeList[E](raw)
}

// BasePath returns the REST resource root.
func (l *List[E]) BasePath() string { return l.basePath }

func decodeList[E any](raw json.RawMessage) ([]E, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []E{}, nil
	}

	if trimmed[0] == '{' {
		var envelope struct {
			Data []E `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("actions: failed to decode list envelope: %w", err)
		}
		if envelope.Data == nil {
			return []E{}, nil
		}
		return envelope.Data, nil
	}

	var items []E
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("actions: failed to decode list: %w", err)
	}
	return items, nil
}
