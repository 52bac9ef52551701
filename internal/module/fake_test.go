package module_test

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"erp-admin/internal/actions"
)

type bank struct {
	BankID string `json:"bank_id"`
	Name   string `json:"name"`
}

func (b bank) EntityID() string { return b.BankID }

// fakeActions is an in-memory PaginatedActions and ListActions with cursors
// that are the index of the row as a string.
type fakeActions struct {
	mu       sync.Mutex
	rows     []bank
	nextID   int
	pageHits int
	listHits int
	failWith error
	lastReq  actions.CursorPaginationParams
}

var (
	_ actions.PaginatedActions[bank] = (*fakeActions)(nil)
	_ actions.ListActions[bank]      = (*fakeActions)(nil)
)

func newFakeActions(n int) *fakeActions {
	f := &fakeActions{}
	for i := 0; i < n; i++ {
		f.nextID++
		f.rows = append(f.rows, bank{BankID: strconv.Itoa(f.nextID), Name: "Bank " + strconv.Itoa(f.nextID)})
	}
	return f
}

func cursor(i int) *string {
	s := strconv.Itoa(i)
	return &s
}

func (f *fakeActions) FindAllPaginated(ctx context.Context, p actions.CursorPaginationParams) (actions.PaginatedResponse[bank], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pageHits++
	f.lastReq = p
	if f.failWith != nil {
		return actions.PaginatedResponse[bank]{}, f.failWith
	}

	start, end := 0, len(f.rows)
	if p.AfterCursor != nil {
		i, _ := strconv.Atoi(*p.AfterCursor)
		start = i + 1
	}
	if p.BeforeCursor != nil {
		end, _ = strconv.Atoi(*p.BeforeCursor)
		start = max(end-p.Limit, 0)
	}
	start = min(start, len(f.rows))
	end = min(end, start+p.Limit, len(f.rows))

	res := actions.PaginatedResponse[bank]{
		Data:     append([]bank{}, f.rows[start:end]...),
		RowCount: len(f.rows),
		PageInfo: actions.PageInfo{
			Limit:           p.Limit,
			HasNextPage:     end < len(f.rows),
			HasPreviousPage: start > 0,
		},
	}
	if end > start {
		res.PageInfo.StartCursor = cursor(start)
		res.PageInfo.EndCursor = cursor(end - 1)
	}
	return res, nil
}

func (f *fakeActions) FindAll(ctx context.Context) ([]bank, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listHits++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]bank{}, f.rows...), nil
}

func (f *fakeActions) FindByID(ctx context.Context, id string) (bank, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.BankID == id {
			return r, nil
		}
	}
	return bank{}, errors.New("Bank not found")
}

func (f *fakeActions) Create(ctx context.Context, data any) (bank, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return bank{}, f.failWith
	}
	in, _ := data.(map[string]any)
	name, _ := in["name"].(string)
	f.nextID++
	b := bank{BankID: strconv.Itoa(f.nextID), Name: name}
	f.rows = append(f.rows, b)
	return b, nil
}

func (f *fakeActions) Update(ctx context.Context, id string, data any) (bank, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	in, _ := data.(map[string]any)
	for i, r := range f.rows {
		if r.BankID == id {
			if name, ok := in["name"].(string); ok {
				f.rows[i].Name = name
			}
			return f.rows[i], nil
		}
	}
	return bank{}, errors.New("Bank not found")
}

func (f *fakeActions) Remove(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.rows {
		if r.BankID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return errors.New("Bank not found")
}

func (f *fakeActions) hits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pageHits
}
