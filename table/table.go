// Package table implements the list-screen state shared by every dashboard
// page: a global free-text filter, single-column sorting and page-based
// navigation over an in-memory row set. Filtering is applied before
// sorting, sorting before pagination.
package table

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PageSizes are the selectable page sizes
var PageSizes = []int{10, 25, 50, 100}

// DefaultPageSize is used until SetPageSize is called
const DefaultPageSize = 10

// Column describes one displayable column of a row type
type Column[T any] struct {
	Key   string
	Value func(T) interface{}
}

// Table wraps an ordered row set with filter, sort and pagination state
type Table[T any] struct {
	rows    []T
	columns []Column[T]

	filter    string
	sortKey   string
	sortAsc   bool
	pageIndex int
	pageSize  int
}

// New creates a table over rows with the given column descriptors
func New[T any](rows []T, columns []Column[T]) *Table[T] {
	return &Table[T]{
		rows:     rows,
		columns:  columns,
		sortAsc:  true,
		pageSize: DefaultPageSize,
	}
}

// SetRows replaces the row set, keeping filter and sort state. The page
// index is clamped against the new filtered size.
func (t *Table[T]) SetRows(rows []T) {
	t.rows = rows
	t.clampPage()
}

// SetFilter sets the global case-insensitive substring filter and resets
// navigation to the first page
func (t *Table[T]) SetFilter(query string) {
	t.filter = strings.TrimSpace(query)
	t.pageIndex = 0
}

// Filter returns the current filter query
func (t *Table[T]) Filter() string {
	return t.filter
}

// ToggleSort sorts by the given column, flipping direction when the column
// is already the active sort. Unknown keys clear the sort.
func (t *Table[T]) ToggleSort(key string) {
	if !t.hasColumn(key) {
		t.sortKey = ""
		t.sortAsc = true
		return
	}
	if t.sortKey == key {
		t.sortAsc = !t.sortAsc
		return
	}
	t.sortKey = key
	t.sortAsc = true
}

// Sort returns the active sort column key ("" when unsorted) and direction
func (t *Table[T]) Sort() (key string, ascending bool) {
	return t.sortKey, t.sortAsc
}

// SetPageSize selects a page size from PageSizes; other values are ignored
func (t *Table[T]) SetPageSize(size int) {
	for _, allowed := range PageSizes {
		if size == allowed {
			t.pageSize = size
			t.clampPage()
			return
		}
	}
}

// PageSize returns the current page size
func (t *Table[T]) PageSize() int {
	return t.pageSize
}

// SetPage moves to the zero-based page index, clamped to the valid range
func (t *Table[T]) SetPage(index int) {
	t.pageIndex = index
	t.clampPage()
}

// PageIndex returns the current zero-based page index
func (t *Table[T]) PageIndex() int {
	return t.pageIndex
}

// NextPage advances one page when possible
func (t *Table[T]) NextPage() {
	t.SetPage(t.pageIndex + 1)
}

// PrevPage goes back one page when possible
func (t *Table[T]) PrevPage() {
	t.SetPage(t.pageIndex - 1)
}

// TotalCount returns the unfiltered row count
func (t *Table[T]) TotalCount() int {
	return len(t.rows)
}

// FilteredCount returns the row count after filtering, for the
// "showing N of M" summary
func (t *Table[T]) FilteredCount() int {
	return len(t.filtered())
}

// PageCount returns the number of pages after filtering; zero when the
// filter matches nothing
func (t *Table[T]) PageCount() int {
	filtered := len(t.filtered())
	if filtered == 0 {
		return 0
	}
	return (filtered + t.pageSize - 1) / t.pageSize
}

// Page returns the rows visible on the current page: filtered, then
// sorted, then sliced
func (t *Table[T]) Page() []T {
	rows := t.filtered()
	t.sortRows(rows)

	start := t.pageIndex * t.pageSize
	if start >= len(rows) {
		return nil
	}
	end := start + t.pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// hasColumn reports whether key names a known column
func (t *Table[T]) hasColumn(key string) bool {
	for _, col := range t.columns {
		if col.Key == key {
			return true
		}
	}
	return false
}

// filtered returns the rows matching the global filter, in input order
func (t *Table[T]) filtered() []T {
	if t.filter == "" {
		out := make([]T, len(t.rows))
		copy(out, t.rows)
		return out
	}

	needle := strings.ToLower(t.filter)
	var out []T
	for _, row := range t.rows {
		if t.rowMatches(row, needle) {
			out = append(out, row)
		}
	}
	return out
}

// rowMatches checks the needle against every stringified cell of the row
func (t *Table[T]) rowMatches(row T, needle string) bool {
	for _, col := range t.columns {
		cell := strings.ToLower(stringify(col.Value(row)))
		if strings.Contains(cell, needle) {
			return true
		}
	}
	return false
}

// sortRows sorts in place by the active sort column. The sort is stable so
// equal rows keep their input order.
func (t *Table[T]) sortRows(rows []T) {
	if t.sortKey == "" {
		return
	}
	var value func(T) interface{}
	for _, col := range t.columns {
		if col.Key == t.sortKey {
			value = col.Value
			break
		}
	}
	if value == nil {
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		less := compare(value(rows[i]), value(rows[j])) < 0
		if t.sortAsc {
			return less
		}
		return compare(value(rows[i]), value(rows[j])) > 0
	})
}

// clampPage keeps the page index within the filtered page range
func (t *Table[T]) clampPage() {
	last := t.PageCount() - 1
	if last < 0 {
		last = 0
	}
	if t.pageIndex > last {
		t.pageIndex = last
	}
	if t.pageIndex < 0 {
		t.pageIndex = 0
	}
}

// stringify renders a cell value for filtering
func stringify(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case decimal.Decimal:
		return value.String()
	case time.Time:
		return value.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// compare orders two cell values: numerically when both are numeric,
// chronologically for times, case-insensitively otherwise
func compare(a, b interface{}) int {
	if da, aok := toDecimal(a); aok {
		if db, bok := toDecimal(b); bok {
			return da.Cmp(db)
		}
	}
	if ta, aok := a.(time.Time); aok {
		if tb, bok := b.(time.Time); bok {
			return ta.Compare(tb)
		}
	}
	sa := strings.ToLower(stringify(a))
	sb := strings.ToLower(stringify(b))
	return strings.Compare(sa, sb)
}

// toDecimal converts numeric cell values to decimal for comparison
func toDecimal(v interface{}) (decimal.Decimal, bool) {
	switch value := v.(type) {
	case decimal.Decimal:
		return value, true
	case int:
		return decimal.NewFromInt(int64(value)), true
	case int64:
		return decimal.NewFromInt(value), true
	case uint:
		return decimal.NewFromInt(int64(value)), true
	case float64:
		return decimal.NewFromFloat(value), true
	}
	return decimal.Decimal{}, false
}
