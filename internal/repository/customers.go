package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/inhalebay/internal/models"
)

// CustomerRepository reads and writes the customers table.
type CustomerRepository struct {
	*Repository[models.Customer, uuid.UUID]
}

// NewCustomerRepository lists customers newest first.
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{New[models.Customer, uuid.UUID](db, Options{
		Naming:     Naming{Singular: "customer", Plural: "customers"},
		Descending: true,
		Columns: []string{
			"store_id", "phone_number", "name", "avatar_name",
			"current_points", "lifetime_points", "total_visits",
			"last_visit", "join_date", "membership_level", "is_active",
		},
		Timestamps: true,
	})}
}

// FindByPhone looks a customer up by phone number. An unknown number is
// NotFound, not a failure.
func (r *CustomerRepository) FindByPhone(ctx context.Context, phone string) Result[*models.Customer] {
	var customer models.Customer
	if err := r.DB(ctx).Where("phone_number = ?", phone).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound[*models.Customer]("No customer found with this phone number.")
		}
		r.logError("fetching customer by phone", err)
		return Failure[*models.Customer]("Failed to fetch customer by phone.")
	}
	return OK(&customer)
}
