package dialogs

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/inhalebay/internal/ledger"
	"github.com/example/inhalebay/internal/models"
	"github.com/example/inhalebay/internal/repository"
)

// NoDetailsText is shown when the selected transaction is not on the loaded page.
const NoDetailsText = "No transaction details available."

// OthersLister loads the other transactions of a customer.
type OthersLister interface {
	OthersForCustomer(ctx context.Context, customerID uuid.UUID, excludeID int64, limit int) repository.Result[[]models.CustomerTransaction]
}

// LabeledTransaction is a transaction with its display label.
type LabeledTransaction struct {
	models.CustomerTransaction
	TransactionDisplay string `json:"transaction_display"`
}

// Labeled attaches the display label to tx.
func Labeled(tx models.CustomerTransaction) LabeledTransaction {
	return LabeledTransaction{CustomerTransaction: tx, TransactionDisplay: ledger.Label(tx)}
}

// TransactionDialog shows one transaction next to the customer's other
// transactions.
type TransactionDialog struct {
	repo   OthersLister
	main   *models.CustomerTransaction
	others []models.CustomerTransaction
	result repository.Result[[]models.CustomerTransaction]
}

func NewTransactionDialog(repo OthersLister) *TransactionDialog {
	return &TransactionDialog{repo: repo}
}

// Open takes the main record from the already loaded page and fetches up to
// repository.OtherTransactionsLimit other transactions of customerID.
func (d *TransactionDialog) Open(ctx context.Context, loaded []models.CustomerTransaction, txID int64, customerID uuid.UUID) {
	d.main = nil
	for i := range loaded {
		if loaded[i].ID == txID {
			tx := loaded[i]
			d.main = &tx
			break
		}
	}

	d.result = d.repo.OthersForCustomer(ctx, customerID, txID, repository.OtherTransactionsLimit)
	d.others = nil
	if d.result.Success() {
		d.others = d.result.Data
	}
}

func (d *TransactionDialog) Main() *models.CustomerTransaction { return d.main }

func (d *TransactionDialog) Others() []models.CustomerTransaction { return d.others }

// OthersResult is the outcome of the other transactions lookup.
func (d *TransactionDialog) OthersResult() repository.Result[[]models.CustomerTransaction] {
	return d.result
}

// TransactionView is the rendered dialog body.
type TransactionView struct {
	Message     string               `json:"message,omitempty"`
	Transaction *LabeledTransaction  `json:"transaction,omitempty"`
	Others      []LabeledTransaction `json:"others"`
}

func (d *TransactionDialog) View() TransactionView {
	others := make([]LabeledTransaction, 0, len(d.others))
	for _, tx := range d.others {
		others = append(others, Labeled(tx))
	}
	if d.main == nil {
		return TransactionView{Message: NoDetailsText, Others: others}
	}
	main := Labeled(*d.main)
	return TransactionView{Transaction: &main, Others: others}
}
