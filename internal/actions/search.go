package actions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"erp-admin/pkg/apiclient"
	"erp-admin/pkg/log"
)

// SearchLimit is the fixed page size of autocomplete queries.
const SearchLimit = 20

type searchRequest struct {
	Limit  int    `json:"limit"`
	Search string `json:"search"`
}

// NewSearch generates the autocomplete action for basePath.
//
// It reuses POST {base}/pagination with {"limit": 20, "search": query}; the
// backend filters over mapping.SearchFields. The returned func always queries
// and always propagates errors. Use WithPolicy for short-query and
// degrade-on-error behavior.
//
// E only documents which entity the mapping targets: projection works on the
// raw JSON so that Meta can carry fields the Go type does not declare.
func NewSearch[E any](r apiclient.Requester, basePath string, mapping AutocompleteFieldMapping) (SearchFunc, error) {
	if mapping.Code == "" || mapping.Value == "" {
		return nil, errors.New("actions: search mapping needs both code and value fields")
	}
	path := strings.TrimSuffix(basePath, "/") + "/pagination"

	return func(ctx context.Context, query string) ([]AutocompleteOption, error) {
		page, err := apiclient.Do[PaginatedResponse[json.RawMessage]](ctx, r, path, apiclient.Options{
			Method: http.MethodPost,
			Body:   searchRequest{Limit: SearchLimit, Search: query},
		})
		if err != nil {
			return nil, err
		}

		options := make([]AutocompleteOption, 0, len(page.Data))
		for _, raw := range page.Data {
			options = append(options, Project(raw, mapping))
		}
		return options, nil
	}, nil
}

// Project maps one raw entity to an option.
func Project(raw json.RawMessage, mapping AutocompleteFieldMapping) AutocompleteOption {
	fields := map[string]gjson.Result{}
	var order []string
	gjson.ParseBytes(raw).ForEach(func(key, value gjson.Result) bool {
		fields[key.String()] = value
		order = append(order, key.String())
		return true
	})

	opt := AutocompleteOption{
		Code:  coerce(fields[mapping.Code]),
		Value: coerce(fields[mapping.Value]),
		Meta:  map[string]any{},
	}

	if mapping.MetaFields != nil {
		for _, name := range mapping.MetaFields {
			if v, ok := fields[name]; ok {
				opt.Meta[name] = v.Value()
			}
		}
		return opt
	}

	for _, name := range order {
		if name == mapping.Code || name == mapping.Value {
			continue
		}
		opt.Meta[name] = fields[name].Value()
	}
	return opt
}

// coerce renders a JSON scalar as text. Missing and null become "".
func coerce(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return v.Str
	default:
		return v.Raw
	}
}

// SearchPolicy is the call-site behavior layered over a strict SearchFunc.
type SearchPolicy struct {
	// MinQueryLength short-circuits shorter (trimmed) queries to an empty result with no network call.
	MinQueryLength int
	// DegradeOnError turns request failures into an empty result. Authentication
	// failures always propagate.
	DegradeOnError bool
}

// DefaultSearchPolicy is what the dashboard autocomplete inputs use.
var DefaultSearchPolicy = SearchPolicy{MinQueryLength: 2, DegradeOnError: true}

// WithPolicy wraps search with policy. l may be nil when DegradeOnError is false.
func WithPolicy(search SearchFunc, policy SearchPolicy, l log.Logger) SearchFunc {
	return func(ctx context.Context, query string) ([]AutocompleteOption, error) {
		if len([]rune(strings.TrimSpace(query))) < policy.MinQueryLength {
			return []AutocompleteOption{}, nil
		}

		options, err := search(ctx, query)
		if err == nil {
			return options, nil
		}
		if !policy.DegradeOnError || apiclient.IsAuthentication(err) {
			return nil, err
		}
		if l != nil {
			l.Warnf(ctx, "actions: search %q degraded to empty result: %v", query, err)
		}
		return []AutocompleteOption{}, nil
	}
}
