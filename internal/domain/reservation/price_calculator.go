package reservation

import (
	"estaciona-api/internal/pkg/errs"
	"estaciona-api/internal/pkg/money"
)

type Quote struct {
	Hours     int64
	UnitPrice money.Amount
	Total     money.Amount
}

type PriceCalculator interface {
	Quote(pricePerHour money.Amount, slot TimeSlot) (Quote, error)
}

type HourlyPriceCalculator struct{}

func NewHourlyPriceCalculator() *HourlyPriceCalculator {
	return &HourlyPriceCalculator{}
}

func (HourlyPriceCalculator) Quote(pricePerHour money.Amount, slot TimeSlot) (Quote, error) {
	hours := slot.BillableHours()
	total, err := pricePerHour.Mul(hours)
	if err != nil {
		return Quote{}, errs.Wrap(err, "failed to price the slot")
	}
	return Quote{
		Hours:     hours,
		UnitPrice: pricePerHour,
		Total:     total,
	}, nil
}
