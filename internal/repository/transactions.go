package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/inhalebay/internal/models"
)

// OtherTransactionsLimit caps the "other transactions" lookup.
const OtherTransactionsLimit = 20

// TransactionRepository reads and writes the customer_transactions table.
// Rows are immutable once created.
type TransactionRepository struct {
	*Repository[models.CustomerTransaction, int64]
}

// NewTransactionRepository lists transactions newest first.
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{New[models.CustomerTransaction, int64](db, Options{
		Naming:     Naming{Singular: "transaction", Plural: "transactions"},
		Descending: true,
		GetFailure: "Failed to fetch transaction.",
	})}
}

// Update always fails: ledger rows are never edited.
func (r *TransactionRepository) Update(_ context.Context, _ int64, _ map[string]any) Result[*models.CustomerTransaction] {
	return Failure[*models.CustomerTransaction]("Transactions cannot be edited.")
}

// OthersForCustomer returns up to limit transactions of a customer, newest
// first, leaving out excludeID. limit is capped at OtherTransactionsLimit.
func (r *TransactionRepository) OthersForCustomer(ctx context.Context, customerID uuid.UUID, excludeID int64, limit int) Result[[]models.CustomerTransaction] {
	if limit < 1 || limit > OtherTransactionsLimit {
		limit = OtherTransactionsLimit
	}

	items := make([]models.CustomerTransaction, 0)
	if err := r.DB(ctx).
		Where("customer_id = ?", customerID).
		Where("id <> ?", excludeID).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&items).Error; err != nil {
		r.logError("fetching other transactions for customer", err)
		return Failure[[]models.CustomerTransaction]("Failed to fetch other transactions.")
	}
	return OK(items)
}
