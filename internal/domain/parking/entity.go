package parking

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
	ErrInvalidName     = errors.New("parking name is required")
	ErrInvalidCapacity = errors.New("capacity must be between 0 and 2147483647")
	ErrInvalidPrice    = errors.New("price per hour cannot be negative")
	ErrInvalidLocation = errors.New("latitude must be within [-90, 90] and longitude within [-180, 180]")
)

type Location struct {
	Lat float64
	Lng float64
}

func NewLocation(lat, lng float64) (Location, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Location{}, ErrInvalidLocation
	}
	return Location{Lat: lat, Lng: lng}, nil
}

type Details struct {
	Address     *string
	District    *string
	Description *string
	Hours       *string
	ImageURL    *string
}

type Parking struct {
	id           uuid.UUID
	ownerID      *uuid.UUID
	name         string
	location     Location
	pricePerHour money.Amount
	capacity     int
	available    int
	details      Details
	createdAt    time.Time
}

// NewParking clamps available into [0, capacity].
func NewParking(
	ownerID *uuid.UUID,
	name string,
	location Location,
	pricePerHour money.Amount,
	capacity, available int,
	details Details,
	now time.Time,
) (*Parking, error) {
	p := &Parking{
		id:        uuid.New(),
		ownerID:   ownerID,
		details:   details,
		createdAt: now,
	}
	if err := p.set(name, location, pricePerHour, capacity, available); err != nil {
		return nil, err
	}
	return p, nil
}

func ReconstructParking(
	id uuid.UUID,
	ownerID *uuid.UUID,
	name string,
	location Location,
	pricePerHour money.Amount,
	capacity, available int,
	details Details,
	createdAt time.Time,
) *Parking {
	return &Parking{
		id:           id,
		ownerID:      ownerID,
		name:         name,
		location:     location,
		pricePerHour: pricePerHour,
		capacity:     capacity,
		available:    available,
		details:      details,
		createdAt:    createdAt,
	}
}

func (p *Parking) set(name string, location Location, price money.Amount, capacity, available int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	if capacity < 0 || capacity > MaxCapacity {
		return ErrInvalidCapacity
	}
	if price.IsNegative() {
		return ErrInvalidPrice
	}
	if _, err := NewLocation(location.Lat, location.Lng); err != nil {
		return err
	}
	p.name = name
	p.location = location
	p.pricePerHour = price
	p.capacity = capacity
	p.available = ClampAvailable(available, capacity)
	return nil
}

// Attributes is the editable surface of a parking.
type Attributes struct {
	OwnerID      *uuid.UUID
	Name         string
	Address      *string
	District     *string
	Lat          float64
	Lng          float64
	PricePerHour money.Amount
	Capacity     int
	Available    int
	Description  *string
	Hours        *string
	ImageURL     *string
}

func (p *Parking) Attributes() Attributes {
	return Attributes{
		OwnerID:      ptr.Clone(p.ownerID),
		Name:         p.name,
		Address:      ptr.Clone(p.details.Address),
		District:     ptr.Clone(p.details.District),
		Lat:          p.location.Lat,
		Lng:          p.location.Lng,
		PricePerHour: p.pricePerHour,
		Capacity:     p.capacity,
		Available:    p.available,
		Description:  ptr.Clone(p.details.Description),
		Hours:        ptr.Clone(p.details.Hours),
		ImageURL:     ptr.Clone(p.details.ImageURL),
	}
}

// Update merges changes and re-validates; available is clamped against the
// resulting capacity.
func (p *Parking) Update(changes any) error {
	attrs := p.Attributes()
	if err := patch.Apply(&attrs, changes); err != nil {
		return err
	}
	if err := p.set(attrs.Name, Location{Lat: attrs.Lat, Lng: attrs.Lng}, attrs.PricePerHour, attrs.Capacity, attrs.Available); err != nil {
		return err
	}
	p.ownerID = attrs.OwnerID
	p.details = Details{
		Address:     attrs.Address,
		District:    attrs.District,
		Description: attrs.Description,
		Hours:       attrs.Hours,
		ImageURL:    attrs.ImageURL,
	}
	return nil
}

func (p *Parking) HasAvailability() bool {
	return p.available > 0
}

func (p *Parking) ID() uuid.UUID              { return p.id }
func (p *Parking) OwnerID() *uuid.UUID        { return p.ownerID }
func (p *Parking) Name() string               { return p.name }
func (p *Parking) Location() Location         { return p.location }
func (p *Parking) PricePerHour() money.Amount { return p.pricePerHour }
func (p *Parking) Capacity() int              { return p.capacity }
func (p *Parking) Available() int             { return p.available }
func (p *Parking) Details() Details           { return p.details }
func (p *Parking) CreatedAt() time.Time       { return p.createdAt }
