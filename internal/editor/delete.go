package editor

import (
	"context"

	"github.com/example/inhalebay/internal/repository"
)

// Deleter removes rows by id.
type Deleter[K comparable] interface {
	Delete(ctx context.Context, id K) repository.Result[struct{}]
}

// DeleteDialog asks for confirmation before deleting one row.
type DeleteDialog[K comparable] struct {
	repo    Deleter[K]
	table   Invalidator
	pending K
	open    bool
}

func NewDeleteDialog[K comparable](repo Deleter[K], table Invalidator) *DeleteDialog[K] {
	return &DeleteDialog[K]{repo: repo, table: table}
}

// Request opens the dialog for id.
func (d *DeleteDialog[K]) Request(id K) {
	d.pending = id
	d.open = true
}

func (d *DeleteDialog[K]) Cancel() {
	var zero K
	d.pending = zero
	d.open = false
}

func (d *DeleteDialog[K]) IsOpen() bool { return d.open }

// Pending returns the id awaiting confirmation.
func (d *DeleteDialog[K]) Pending() (K, bool) { return d.pending, d.open }

// Confirm deletes the pending row and refreshes the table.
func (d *DeleteDialog[K]) Confirm(ctx context.Context) repository.Result[struct{}] {
	if !d.open {
		return repository.Failure[struct{}]("Nothing to delete.")
	}
	res := d.repo.Delete(ctx, d.pending)
	if d.table != nil {
		d.table.Invalidate(ctx)
	}
	d.Cancel()
	return res
}
