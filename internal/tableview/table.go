// Package tableview holds the paginated list component shared by every
// entity screen. Pages come from the server; sorting, filtering, column
// visibility and selection only act on the loaded page.
package tableview

import (
	"context"
	"sort"

	"github.com/example/inhalebay/internal/repository"
)

// State of a table's data.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	default:
		return "idle"
	}
}

// Fetcher loads one page of rows.
type Fetcher[T any] func(ctx context.Context, page, pageSize int) repository.Result[[]T]

// Table is a paginated view over one entity.
type Table[T any] struct {
	fetch    Fetcher[T]
	columns  []Column[T]
	byKey    map[string]Column[T]
	rowKey   func(T) string
	pageSize int

	state   State
	page    int
	rows    []T
	status  repository.Status
	message string
	fetches int

	sorting  []Sort
	filters  map[string]string
	hidden   map[string]bool
	selected map[string]bool
}

// New builds an idle table. rowKey identifies rows for selection.
func New[T any](fetch Fetcher[T], columns []Column[T], rowKey func(T) string, pageSize int) *Table[T] {
	if pageSize < 1 {
		pageSize = repository.DefaultPageSize
	}
	byKey := make(map[string]Column[T], len(columns))
	for _, c := range columns {
		byKey[c.Key] = c
	}
	return &Table[T]{
		fetch:    fetch,
		columns:  columns,
		byKey:    byKey,
		rowKey:   rowKey,
		pageSize: pageSize,
		page:     1,
		filters:  map[string]string{},
		hidden:   map[string]bool{},
		selected: map[string]bool{},
	}
}

func (t *Table[T]) State() State  { return t.state }
func (t *Table[T]) Page() int     { return t.page }
func (t *Table[T]) PageSize() int { return t.pageSize }

// FetchCount reports how many fetches the table has issued.
func (t *Table[T]) FetchCount() int { return t.fetches }

// Rows returns the loaded page as fetched.
func (t *Table[T]) Rows() []T { return t.rows }

// Failed reports whether the last fetch failed. The table is still Loaded
// with no rows in that case.
func (t *Table[T]) Failed() bool {
	return t.state == StateLoaded && t.status != repository.StatusOK
}

// Message is the failure message of the last fetch.
func (t *Table[T]) Message() string { return t.message }

// Load fetches the current page.
func (t *Table[T]) Load(ctx context.Context) {
	t.state = StateLoading
	t.fetches++

	res := t.fetch(ctx, t.page, t.pageSize)
	t.status = res.Status
	t.message = res.Message
	if res.Success() && res.Data != nil {
		t.rows = res.Data
	} else {
		t.rows = []T{}
	}
	t.selected = map[string]bool{}
	t.state = StateLoaded
}

// GoTo loads page n. Pages below 1 load page 1.
func (t *Table[T]) GoTo(ctx context.Context, n int) {
	t.SetPage(n)
	t.Load(ctx)
}

// SetPage moves to page n without fetching. The next Load or Invalidate
// fetches it.
func (t *Table[T]) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	t.page = n
}

// NextPage always fetches: without a total count the table cannot know
// where the data ends.
func (t *Table[T]) NextPage(ctx context.Context) {
	t.GoTo(ctx, t.page+1)
}

// PrevPage is a no-op on page 1.
func (t *Table[T]) PrevPage(ctx context.Context) {
	if !t.CanPrev() {
		return
	}
	t.GoTo(ctx, t.page-1)
}

// Invalidate refetches the current page after a mutation.
func (t *Table[T]) Invalidate(ctx context.Context) {
	t.Load(ctx)
}

func (t *Table[T]) CanNext() bool { return true }
func (t *Table[T]) CanPrev() bool { return t.page > 1 }

// SetSorting replaces the sort keys. Unknown columns are dropped.
func (t *Table[T]) SetSorting(by ...Sort) {
	t.sorting = t.sorting[:0]
	for _, s := range by {
		if _, ok := t.byKey[s.Key]; ok {
			t.sorting = append(t.sorting, s)
		}
	}
}

// ToggleSort cycles a column through ascending, descending and unsorted,
// keeping the other sort keys.
func (t *Table[T]) ToggleSort(key string) {
	if _, ok := t.byKey[key]; !ok {
		return
	}
	for i, s := range t.sorting {
		if s.Key != key {
			continue
		}
		if !s.Desc {
			t.sorting[i].Desc = true
			return
		}
		t.sorting = append(t.sorting[:i], t.sorting[i+1:]...)
		return
	}
	t.sorting = append(t.sorting, Sort{Key: key})
}

func (t *Table[T]) Sorting() []Sort {
	return append([]Sort(nil), t.sorting...)
}

// SetFilter filters a column by query. An empty query clears the filter.
func (t *Table[T]) SetFilter(key, query string) {
	if _, ok := t.byKey[key]; !ok {
		return
	}
	if query == "" {
		delete(t.filters, key)
		return
	}
	t.filters[key] = query
}

func (t *Table[T]) ClearFilters() {
	t.filters = map[string]string{}
}

// SetHidden hides or shows a column. Fixed columns stay visible and the
// call reports false.
func (t *Table[T]) SetHidden(key string, hidden bool) bool {
	col, ok := t.byKey[key]
	if !ok || col.Fixed {
		return false
	}
	if hidden {
		t.hidden[key] = true
	} else {
		delete(t.hidden, key)
	}
	return true
}

// VisibleColumns returns the shown columns in declaration order.
func (t *Table[T]) VisibleColumns() []Column[T] {
	out := make([]Column[T], 0, len(t.columns))
	for _, c := range t.columns {
		if !t.hidden[c.Key] {
			out = append(out, c)
		}
	}
	return out
}

// Select marks the row with key as selected. Only rows on the loaded page
// can be selected.
func (t *Table[T]) Select(key string) bool {
	for _, row := range t.rows {
		if t.rowKey(row) == key {
			t.selected[key] = true
			return true
		}
	}
	return false
}

func (t *Table[T]) Deselect(key string) {
	delete(t.selected, key)
}

// ToggleSelect flips the selection of a row.
func (t *Table[T]) ToggleSelect(key string) {
	if t.selected[key] {
		t.Deselect(key)
		return
	}
	t.Select(key)
}

// SelectAll selects every row that passes the filters.
func (t *Table[T]) SelectAll() {
	for _, row := range t.View() {
		t.selected[t.rowKey(row)] = true
	}
}

// Selected returns the selected rows in page order.
func (t *Table[T]) Selected() []T {
	var out []T
	for _, row := range t.rows {
		if t.selected[t.rowKey(row)] {
			out = append(out, row)
		}
	}
	return out
}

// SelectedKeys returns the selected row keys, sorted.
func (t *Table[T]) SelectedKeys() []string {
	keys := make([]string, 0, len(t.selected))
	for k := range t.selected {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Find returns the loaded row with key.
func (t *Table[T]) Find(key string) (T, bool) {
	for _, row := range t.rows {
		if t.rowKey(row) == key {
			return row, true
		}
	}
	var zero T
	return zero, false
}

// View returns the loaded rows after filtering and sorting.
func (t *Table[T]) View() []T {
	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		if t.matches(row) {
			out = append(out, row)
		}
	}
	sortRows(out, t.sorting, t.byKey)
	return out
}

// Render projects View onto the visible columns.
func (t *Table[T]) Render() []map[string]any {
	cols := t.VisibleColumns()
	rows := t.View()
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		cells := make(map[string]any, len(cols))
		for _, c := range cols {
			cells[c.Key] = c.Value(row)
		}
		out = append(out, cells)
	}
	return out
}

func (t *Table[T]) matches(row T) bool {
	for key, query := range t.filters {
		col := t.byKey[key]
		match := col.Filter
		if match == nil {
			match = Contains
		}
		if !match(col.Value(row), query) {
			return false
		}
	}
	return true
}
