//go:build unit || e2e

package builder

import (
	"time"

	"estaciona-api/internal/domain/parking"
	reqdto "estaciona-api/internal/handler/dto/request"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ParkingBuilder struct {
	ID           uuid.UUID
	OwnerID      *uuid.UUID
	Name         string
	District     *string
	Lat          float64
	Lng          float64
	PricePerHour money.Amount
	Capacity     int
	Available    int
	CreatedAt    time.Time
}

func NewParkingBuilder() *ParkingBuilder {
	district := "Miraflores"
	return &ParkingBuilder{
		ID:           uuid.New(),
		Name:         "Central Parking",
		District:     &district,
		Lat:          -12.1211,
		Lng:          -77.0297,
		PricePerHour: money.FromCents(500),
		Capacity:     10,
		Available:    10,
		CreatedAt:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (p *ParkingBuilder) With(mutate func(*ParkingBuilder)) *ParkingBuilder {
	mutate(p)
	return p
}

func (p *ParkingBuilder) BuildDomain() *parking.Parking {
	return parking.ReconstructParking(
		p.ID,
		p.OwnerID,
		p.Name,
		parking.Location{Lat: p.Lat, Lng: p.Lng},
		p.PricePerHour,
		p.Capacity,
		p.Available,
		parking.Details{District: p.District},
		p.CreatedAt,
	)
}

func (p *ParkingBuilder) BuildInfra() pgstore.Parkings {
	var owner pgtype.UUID
	if p.OwnerID != nil {
		owner = pgtype.UUID{Bytes: *p.OwnerID, Valid: true}
	}
	var district pgtype.Text
	if p.District != nil {
		district = pgtype.Text{String: *p.District, Valid: true}
	}
	return pgstore.Parkings{
		ID:                p.ID,
		OwnerID:           owner,
		Name:              p.Name,
		District:          district,
		Lat:               p.Lat,
		Lng:               p.Lng,
		PricePerHourCents: p.PricePerHour.Cents(),
		Capacity:          int32(p.Capacity),
		Available:         int32(p.Available),
		CreatedAt:         pgtype.Timestamptz{Time: p.CreatedAt, Valid: true},
	}
}

func (p *ParkingBuilder) BuildView() *queries.ParkingView {
	return &queries.ParkingView{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		Name:         p.Name,
		District:     p.District,
		Lat:          p.Lat,
		Lng:          p.Lng,
		PricePerHour: p.PricePerHour,
		Capacity:     p.Capacity,
		Available:    p.Available,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *ParkingBuilder) BuildCreateRequestDTO() reqdto.CreateParkingRequest {
	lat, lng := p.Lat, p.Lng
	price := p.PricePerHour
	capacity := p.Capacity
	return reqdto.CreateParkingRequest{
		OwnerID:      p.OwnerID,
		Name:         p.Name,
		District:     p.District,
		Lat:          &lat,
		Lng:          &lng,
		PricePerHour: &price,
		Capacity:     &capacity,
	}
}

func (p *ParkingBuilder) WithCapacity(capacity, available int) *ParkingBuilder {
	p.Capacity = capacity
	p.Available = available
	return p
}

func (p *ParkingBuilder) WithPrice(cents int64) *ParkingBuilder {
	p.PricePerHour = money.FromCents(cents)
	return p
}
