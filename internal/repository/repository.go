package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Page size and page bounds applied to every list call.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxPage         = 1_000_000
)

// Naming holds the words used in log lines and user-facing messages.
type Naming struct {
	Singular string
	Plural   string
}

// Options configures a Repository.
type Options struct {
	Naming Naming
	// Descending orders lists newest first; otherwise oldest first.
	Descending bool
	// Columns lists the columns Update may write.
	Columns []string
	// Timestamps is false for tables without an updated_at column.
	Timestamps bool
	// GetFailure replaces the "Failed to fetch <singular> by ID." message.
	GetFailure string
}

// Repository wraps one table. Every method issues a single query and never
// returns a raw error: store failures are logged and reported as Failure.
type Repository[T any, K comparable] struct {
	db      *gorm.DB
	naming  Naming
	order   string
	columns map[string]bool
	stamped bool
	getFail string
	now     func() time.Time
}

// New builds a Repository for the table behind T.
func New[T any, K comparable](db *gorm.DB, opts Options) *Repository[T, K] {
	order := "created_at asc, id asc"
	if opts.Descending {
		order = "created_at desc, id desc"
	}
	columns := make(map[string]bool, len(opts.Columns))
	for _, c := range opts.Columns {
		columns[c] = true
	}
	return &Repository[T, K]{
		db:      db,
		naming:  opts.Naming,
		order:   order,
		columns: columns,
		stamped: opts.Timestamps,
		getFail: opts.GetFailure,
		now:     time.Now,
	}
}

// SetClock replaces the clock used to stamp updated_at.
func (r *Repository[T, K]) SetClock(now func() time.Time) {
	r.now = now
}

// DB exposes the underlying connection for entity specific queries.
func (r *Repository[T, K]) DB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Pagination clamps page to [1, MaxPage] and pageSize to [1, MaxPageSize]
// and returns the row offset.
func Pagination(page, pageSize int) (int, int, int) {
	page = min(max(page, 1), MaxPage)
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pageSize = min(pageSize, MaxPageSize)
	return page, pageSize, (page - 1) * pageSize
}

// List returns one page of rows in creation order.
func (r *Repository[T, K]) List(ctx context.Context, page, pageSize int) Result[[]T] {
	_, limit, offset := Pagination(page, pageSize)

	items := make([]T, 0)
	if err := r.db.WithContext(ctx).
		Order(r.order).
		Limit(limit).Offset(offset).
		Find(&items).Error; err != nil {
		r.logError("fetching "+r.naming.Plural, err)
		return Failure[[]T](fmt.Sprintf("Failed to fetch %s.", r.naming.Plural))
	}
	return OK(items)
}

// Get loads one row by primary key.
func (r *Repository[T, K]) Get(ctx context.Context, id K) Result[*T] {
	item := new(T)
	if err := r.db.WithContext(ctx).First(item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound[*T](r.notFoundMessage())
		}
		r.logError("fetching "+r.naming.Singular+" by ID", err)
		return Failure[*T](r.getFailureMessage())
	}
	return OK(item)
}

// Create inserts rec and returns it with generated columns filled in.
func (r *Repository[T, K]) Create(ctx context.Context, rec *T) Result[*T] {
	if rec == nil {
		return Failure[*T](fmt.Sprintf("Failed to create %s.", r.naming.Singular))
	}
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		r.logError("creating "+r.naming.Singular, err)
		return Failure[*T](fmt.Sprintf("Failed to create %s.", r.naming.Singular))
	}
	return OK(rec)
}

// Update writes exactly the given columns and returns the stored row.
// Column names must be in the repository whitelist.
func (r *Repository[T, K]) Update(ctx context.Context, id K, fields map[string]any) Result[*T] {
	if len(fields) == 0 {
		return Failure[*T]("No fields to update.")
	}
	if unknown := r.unknownColumns(fields); len(unknown) > 0 {
		return Failure[*T](fmt.Sprintf("Unknown %s field: %s.", r.naming.Singular, strings.Join(unknown, ", ")))
	}

	updates := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	if r.stamped {
		updates["updated_at"] = r.now()
	}

	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		r.logError("updating "+r.naming.Singular, res.Error)
		return Failure[*T](fmt.Sprintf("Failed to update %s.", r.naming.Singular))
	}
	if res.RowsAffected == 0 {
		return NotFound[*T](r.notFoundMessage())
	}

	item := new(T)
	if err := r.db.WithContext(ctx).First(item, "id = ?", id).Error; err != nil {
		r.logError("reloading "+r.naming.Singular, err)
		return Failure[*T](fmt.Sprintf("Failed to update %s.", r.naming.Singular))
	}
	return OK(item)
}

// Delete removes a row by primary key.
func (r *Repository[T, K]) Delete(ctx context.Context, id K) Result[struct{}] {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		r.logError("deleting "+r.naming.Singular, res.Error)
		return Failure[struct{}](fmt.Sprintf("Failed to delete %s.", r.naming.Singular))
	}
	if res.RowsAffected == 0 {
		return NotFound[struct{}](r.notFoundMessage())
	}
	return OK(struct{}{})
}

func (r *Repository[T, K]) unknownColumns(fields map[string]any) []string {
	var unknown []string
	for k := range fields {
		if !r.columns[k] {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func (r *Repository[T, K]) notFoundMessage() string {
	name := r.naming.Singular
	if name == "" {
		return "Record not found."
	}
	return strings.ToUpper(name[:1]) + name[1:] + " not found."
}

func (r *Repository[T, K]) getFailureMessage() string {
	if r.getFail != "" {
		return r.getFail
	}
	return fmt.Sprintf("Failed to fetch %s by ID.", r.naming.Singular)
}

func (r *Repository[T, K]) logError(action string, err error) {
	log.Printf("[Repository] Error %s: %v", action, err)
}
