package promotion

import (
	"errors"
	"strings"
	"time"

	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/patch"
	"estaciona-api/internal/pkg/ptr"

	"github.com/google/uuid"
)

var (
	ErrInvalidTitle  = errors.New("promotion title is required")
	ErrInvalidWindow = errors.New("end date must not be before start date")
)

type Promotion struct {
	id          uuid.UUID
	parkingID   uuid.UUID
	title       string
	description *string
	discount    Discount
	startDate   time.Time
	endDate     time.Time
	isActive    bool
	createdAt   time.Time
}

func NewPromotion(
	parkingID uuid.UUID,
	title string,
	description *string,
	discount Discount,
	startDate, endDate time.Time,
	isActive bool,
	now time.Time,
) (*Promotion, error) {
	p := &Promotion{
		id:          uuid.New(),
		parkingID:   parkingID,
		description: description,
		isActive:    isActive,
		createdAt:   now,
	}
	if err := p.set(title, discount, startDate, endDate); err != nil {
		return nil, err
	}
	return p, nil
}

func ReconstructPromotion(
	id, parkingID uuid.UUID,
	title string,
	description *string,
	discount Discount,
	startDate, endDate time.Time,
	isActive bool,
	createdAt time.Time,
) *Promotion {
	return &Promotion{
		id:          id,
		parkingID:   parkingID,
		title:       title,
		description: description,
		discount:    discount,
		startDate:   startDate,
		endDate:     endDate,
		isActive:    isActive,
		createdAt:   createdAt,
	}
}

func (p *Promotion) set(title string, discount Discount, start, end time.Time) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrInvalidTitle
	}
	if end.Before(start) {
		return ErrInvalidWindow
	}
	p.title = title
	p.discount = discount
	p.startDate = start
	p.endDate = end
	return nil
}

type Attributes struct {
	ParkingID       uuid.UUID
	Title           string
	Description     *string
	DiscountPercent *float64
	FlatAmount      *money.Amount
	StartDate       time.Time
	EndDate         time.Time
	IsActive        *bool
}

func (p *Promotion) Attributes() Attributes {
	active := p.isActive
	return Attributes{
		ParkingID:       p.parkingID,
		Title:           p.title,
		Description:     ptr.Clone(p.description),
		DiscountPercent: ptr.Clone(p.discount.Percent),
		FlatAmount:      ptr.Clone(p.discount.FlatAmount),
		StartDate:       p.startDate,
		EndDate:         p.endDate,
		IsActive:        &active,
	}
}

func (p *Promotion) Update(changes any) error {
	attrs := p.Attributes()
	if err := patch.Apply(&attrs, changes); err != nil {
		return err
	}
	discount, err := NewDiscount(attrs.DiscountPercent, attrs.FlatAmount)
	if err != nil {
		return err
	}
	if err := p.set(attrs.Title, discount, attrs.StartDate, attrs.EndDate); err != nil {
		return err
	}
	p.parkingID = attrs.ParkingID
	p.description = attrs.Description
	if attrs.IsActive != nil {
		p.isActive = *attrs.IsActive
	}
	return nil
}

// IsCurrent reports whether the promotion is listed for its parking at now.
func (p *Promotion) IsCurrent(now time.Time) bool {
	return p.isActive && !p.endDate.Before(now)
}

func (p *Promotion) ID() uuid.UUID        { return p.id }
func (p *Promotion) ParkingID() uuid.UUID { return p.parkingID }
func (p *Promotion) Title() string        { return p.title }
func (p *Promotion) Description() *string { return p.description }
func (p *Promotion) Discount() Discount   { return p.discount }
func (p *Promotion) StartDate() time.Time { return p.startDate }
func (p *Promotion) EndDate() time.Time   { return p.endDate }
func (p *Promotion) IsActive() bool       { return p.isActive }
func (p *Promotion) CreatedAt() time.Time { return p.createdAt }
