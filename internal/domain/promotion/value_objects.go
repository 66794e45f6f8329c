package promotion

import (
	"errors"

	"estaciona-api/internal/pkg/money"
)

var (
	ErrInvalidDiscountAmount  = errors.New("flat amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("discount percent must be between 0 and 100")
)

// Discount is informational; promotions are never applied to estimates.
type Discount struct {
	Percent    *float64
	FlatAmount *money.Amount
}

func NewDiscount(percent *float64, flat *money.Amount) (Discount, error) {
	if percent != nil && (*percent < 0 || *percent > 100) {
		return Discount{}, ErrInvalidDiscountPercent
	}
	if flat != nil && flat.IsNegative() {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{Percent: percent, FlatAmount: flat}, nil
}
