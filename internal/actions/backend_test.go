package actions_test

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"erp-admin/pkg/apiclient"
	"erp-admin/pkg/log"
	"erp-admin/pkg/session"
)

type bank struct {
	BankID   string `json:"bank_id"`
	Name     string `json:"name"`
	Code     string `json:"code,omitempty"`
	IsActive bool   `json:"is_active"`
}

func (b bank) EntityID() string { return b.BankID }

// fakeBackend is a tiny in-memory ERP resource speaking the REST shape the
// actions expect, with index-based opaque cursors.
type fakeBackend struct {
	mu       sync.Mutex
	items    []bank
	nextID   int
	hits     int32
	lastBody map[string]any
	envelope bool
}

func newFakeBackend(n int) *fakeBackend {
	b := &fakeBackend{}
	for i := 0; i < n; i++ {
		b.nextID++
		b.items = append(b.items, bank{BankID: strconv.Itoa(b.nextID), Name: fmt.Sprintf("Bank %02d", b.nextID), IsActive: true})
	}
	return b
}

func encodeCursor(i int) string {
	return base64.StdEncoding.EncodeToString([]byte("idx:" + strconv.Itoa(i)))
}

func decodeCursor(c string) int {
	raw, _ := base64.StdEncoding.DecodeString(c)
	i, _ := strconv.Atoi(strings.TrimPrefix(string(raw), "idx:"))
	return i
}

func (b *fakeBackend) server(t *testing.T, base string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.hits, 1)
		b.mu.Lock()
		defer b.mu.Unlock()

		path := strings.TrimPrefix(r.URL.Path, base)
		switch {
		case path == "/pagination" && r.Method == http.MethodPost:
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			b.lastBody = body
			b.page(w, body)
		case path == "" && r.Method == http.MethodGet:
			if b.envelope {
				json.NewEncoder(w).Encode(map[string]any{"data": b.items})
				return
			}
			json.NewEncoder(w).Encode(b.items)
		case path == "" && r.Method == http.MethodPost:
			var in bank
			json.NewDecoder(r.Body).Decode(&in)
			b.nextID++
			in.BankID = strconv.Itoa(b.nextID)
			in.IsActive = true
			b.items = append(b.items, in)
			json.NewEncoder(w).Encode(in)
		default:
			id := strings.TrimPrefix(path, "/")
			idx := b.indexOf(id)
			if idx < 0 {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"statusCode":404,"message":"Bank not found"}`))
				return
			}
			switch r.Method {
			case http.MethodGet:
				json.NewEncoder(w).Encode(b.items[idx])
			case http.MethodPatch:
				var patch map[string]any
				json.NewDecoder(r.Body).Decode(&patch)
				if name, ok := patch["name"].(string); ok {
					b.items[idx].Name = name
				}
				if active, ok := patch["is_active"].(bool); ok {
					b.items[idx].IsActive = active
				}
				json.NewEncoder(w).Encode(b.items[idx])
			case http.MethodDelete:
				b.items = append(b.items[:idx], b.items[idx+1:]...)
				w.WriteHeader(http.StatusNoContent)
			}
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func (b *fakeBackend) indexOf(id string) int {
	for i, it := range b.items {
		if it.BankID == id {
			return i
		}
	}
	return -1
}

func (b *fakeBackend) page(w http.ResponseWriter, body map[string]any) {
	limit := int(body["limit"].(float64))

	source := b.items
	if q, ok := body["search"].(string); ok && q != "" {
		source = nil
		for _, it := range b.items {
			if strings.Contains(strings.ToLower(it.Name), strings.ToLower(q)) {
				source = append(source, it)
			}
		}
	}

	start, end := 0, len(source)
	if after, ok := body["afterCursor"].(string); ok {
		start = decodeCursor(after) + 1
	}
	if before, ok := body["beforeCursor"].(string); ok {
		end = decodeCursor(before)
		start = end - limit
		if start < 0 {
			start = 0
		}
	}
	if start > len(source) {
		start = len(source)
	}
	if end > start+limit {
		end = start + limit
	}

	data := source[start:end]
	info := map[string]any{
		"limit":           limit,
		"hasNextPage":     end < len(source),
		"hasPreviousPage": start > 0,
		"startCursor":     nil,
		"endCursor":       nil,
	}
	if len(data) > 0 {
		info["startCursor"] = encodeCursor(start)
		info["endCursor"] = encodeCursor(end - 1)
	}
	json.NewEncoder(w).Encode(map[string]any{
		"data":      data,
		"pageCount": (len(source) + limit - 1) / limit,
		"rowCount":  len(source),
		"pageInfo":  info,
	})
}

func newTestClient(t *testing.T, url string, p session.Provider) *apiclient.Client {
	t.Helper()
	c, err := apiclient.New(apiclient.Config{BaseURL: url}, p, log.NewNop())
	require.NoError(t, err)
	return c
}
