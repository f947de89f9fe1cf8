// Package ledger projects stored transaction rows onto the labels shown to
// operators.
package ledger

import "github.com/example/inhalebay/internal/models"

const (
	LabelAll          = "All"
	LabelReturn       = "Return"
	LabelVisit        = "Visit"
	LabelRedeemReward = "Redeem Reward"
	LabelSignup       = "Signup"
	LabelUnknown      = "Unknown"
)

// DisplayLabel maps a transaction type and its point change to a label.
// A visit that earned nothing is a return.
func DisplayLabel(transactionType string, pointsChanged int) string {
	switch {
	case transactionType == models.TransactionVisit && pointsChanged == 0:
		return LabelReturn
	case transactionType == models.TransactionVisit:
		return LabelVisit
	case transactionType == models.TransactionRedeemReward:
		return LabelRedeemReward
	case transactionType == models.TransactionSignup:
		return LabelSignup
	default:
		return LabelUnknown
	}
}

// Label is DisplayLabel applied to a stored row.
func Label(tx models.CustomerTransaction) string {
	return DisplayLabel(tx.TransactionType, tx.PointsChanged)
}

// Labels lists the options offered by the transaction type filter.
func Labels() []string {
	return []string{LabelAll, LabelReturn, LabelVisit, LabelRedeemReward, LabelSignup}
}
