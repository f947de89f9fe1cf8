// Package dialogs renders the read-only detail dialogs of the customer and
// transaction screens.
package dialogs

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/inhalebay/internal/models"
	"github.com/example/inhalebay/internal/repository"
)

// LoadingText is shown until a record has been fetched.
const LoadingText = "Loading..."

// CustomerGetter loads one customer.
type CustomerGetter interface {
	Get(ctx context.Context, id uuid.UUID) repository.Result[*models.Customer]
}

// CustomerDialog shows one customer record.
type CustomerDialog struct {
	repo     CustomerGetter
	open     bool
	customer *models.Customer
	result   repository.Result[*models.Customer]
}

func NewCustomerDialog(repo CustomerGetter) *CustomerDialog {
	return &CustomerDialog{repo: repo}
}

// Open fetches the customer once. A failed fetch leaves the placeholder.
func (d *CustomerDialog) Open(ctx context.Context, id uuid.UUID) {
	d.open = true
	d.customer = nil
	d.result = d.repo.Get(ctx, id)
	if d.result.Success() {
		d.customer = d.result.Data
	}
}

func (d *CustomerDialog) Close() {
	d.open = false
	d.customer = nil
}

func (d *CustomerDialog) IsOpen() bool { return d.open }

// Customer is nil until loaded.
func (d *CustomerDialog) Customer() *models.Customer { return d.customer }

// Result is the outcome of the last fetch.
func (d *CustomerDialog) Result() repository.Result[*models.Customer] { return d.result }

// CustomerView is the rendered dialog body.
type CustomerView struct {
	Placeholder string           `json:"placeholder,omitempty"`
	Customer    *models.Customer `json:"customer,omitempty"`
}

func (d *CustomerDialog) View() CustomerView {
	if d.customer == nil {
		return CustomerView{Placeholder: LoadingText}
	}
	return CustomerView{Customer: d.customer}
}
