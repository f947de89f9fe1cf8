// Package editor implements the shared create/edit panel and the delete
// confirmation used by every entity screen.
package editor

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/example/inhalebay/internal/repository"
)

// Form is the draft edited by a Panel. Numeric inputs are kept as text until
// Validate accepts them.
type Form[T any, K comparable] interface {
	Reset()
	Load(row T)
	// Key returns the id of the row being edited; ok is false for a new row.
	Key() (id K, ok bool)
	Validate() error
	// Fields lists the columns written on update.
	Fields() map[string]any
	// Record builds the row inserted on create.
	Record(storeID uuid.UUID) *T
}

// Writer is the part of a repository the panel writes through.
type Writer[T any, K comparable] interface {
	Create(ctx context.Context, rec *T) repository.Result[*T]
	Update(ctx context.Context, id K, fields map[string]any) repository.Result[*T]
}

// StoreResolver turns the configured store code into the owning store id.
type StoreResolver interface {
	StoreIDByCode(ctx context.Context, code int) repository.Result[uuid.UUID]
}

// Invalidator is refreshed after every write.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// Mode of an open panel.
type Mode int

const (
	ModeClosed Mode = iota
	ModeAdd
	ModeEdit
)

// Panel is the create/edit side sheet of one entity screen.
type Panel[T any, K comparable] struct {
	form      Form[T, K]
	repo      Writer[T, K]
	stores    StoreResolver
	storeCode int
	table     Invalidator
	mode      Mode
}

func NewPanel[T any, K comparable](form Form[T, K], repo Writer[T, K], stores StoreResolver, storeCode int, table Invalidator) *Panel[T, K] {
	return &Panel[T, K]{
		form:      form,
		repo:      repo,
		stores:    stores,
		storeCode: storeCode,
		table:     table,
	}
}

func (p *Panel[T, K]) Mode() Mode       { return p.mode }
func (p *Panel[T, K]) Form() Form[T, K] { return p.form }
func (p *Panel[T, K]) StoreCode() int   { return p.storeCode }
func (p *Panel[T, K]) IsOpen() bool     { return p.mode != ModeClosed }

// OpenAdd seeds an empty draft.
func (p *Panel[T, K]) OpenAdd() {
	p.form.Reset()
	p.mode = ModeAdd
}

// OpenEdit seeds the draft from row.
func (p *Panel[T, K]) OpenEdit(row T) {
	p.form.Reset()
	p.form.Load(row)
	p.mode = ModeEdit
}

func (p *Panel[T, K]) Close() {
	p.form.Reset()
	p.mode = ModeClosed
}

// Save updates the row when the draft has a key and creates it otherwise.
// The bound table is refreshed once the write path has run, whatever its
// outcome. A draft that fails validation writes nothing and keeps the panel
// open.
func (p *Panel[T, K]) Save(ctx context.Context) repository.Result[*T] {
	if err := p.form.Validate(); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return repository.Failure[*T](verr.Message)
		}
		return repository.Failure[*T](err.Error())
	}

	res := p.write(ctx)
	if p.table != nil {
		p.table.Invalidate(ctx)
	}
	if res.Success() {
		p.Close()
	}
	return res
}

func (p *Panel[T, K]) write(ctx context.Context) repository.Result[*T] {
	if id, ok := p.form.Key(); ok {
		return p.repo.Update(ctx, id, p.form.Fields())
	}

	store := p.stores.StoreIDByCode(ctx, p.storeCode)
	if !store.Success() {
		log.Printf("[Editor] Store lookup for code %d failed: %s", p.storeCode, store.Message)
		return repository.Result[*T]{Status: store.Status, Message: store.Message}
	}
	return p.repo.Create(ctx, p.form.Record(store.Data))
}
