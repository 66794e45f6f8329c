package converter

import (
	"estaciona-api/internal/domain/parking"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/pgconv"
)

func ParkingFromRow(row pgstore.Parkings) *parking.Parking {
	return parking.ReconstructParking(
		row.ID,
		pgconv.UUIDPtrFromPgtype(row.OwnerID),
		row.Name,
		parking.Location{Lat: row.Lat, Lng: row.Lng},
		money.FromCents(row.PricePerHourCents),
		int(row.Capacity),
		int(row.Available),
		parking.Details{
			Address:     pgconv.StringPtrFromPgtype(row.Address),
			District:    pgconv.StringPtrFromPgtype(row.District),
			Description: pgconv.StringPtrFromPgtype(row.Description),
			Hours:       pgconv.StringPtrFromPgtype(row.Hours),
			ImageURL:    pgconv.StringPtrFromPgtype(row.ImageUrl),
		},
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func ParkingToCreateParams(p *parking.Parking) pgstore.CreateParkingParams {
	d := p.Details()
	return pgstore.CreateParkingParams{
		ID:                p.ID(),
		OwnerID:           pgconv.UUIDPtrToPgtype(p.OwnerID()),
		Name:              p.Name(),
		Address:           pgconv.StringPtrToPgtype(d.Address),
		District:          pgconv.StringPtrToPgtype(d.District),
		Lat:               p.Location().Lat,
		Lng:               p.Location().Lng,
		PricePerHourCents: p.PricePerHour().Cents(),
		Capacity:          int32(p.Capacity()),
		Available:         int32(p.Available()),
		Hours:             pgconv.StringPtrToPgtype(d.Hours),
		ImageUrl:          pgconv.StringPtrToPgtype(d.ImageURL),
		Description:       pgconv.StringPtrToPgtype(d.Description),
		CreatedAt:         pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func ParkingToUpdateParams(p *parking.Parking) pgstore.UpdateParkingParams {
	d := p.Details()
	return pgstore.UpdateParkingParams{
		ID:                p.ID(),
		OwnerID:           pgconv.UUIDPtrToPgtype(p.OwnerID()),
		Name:              p.Name(),
		Address:           pgconv.StringPtrToPgtype(d.Address),
		District:          pgconv.StringPtrToPgtype(d.District),
		Lat:               p.Location().Lat,
		Lng:               p.Location().Lng,
		PricePerHourCents: p.PricePerHour().Cents(),
		Capacity:          int32(p.Capacity()),
		Available:         int32(p.Available()),
		Hours:             pgconv.StringPtrToPgtype(d.Hours),
		ImageUrl:          pgconv.StringPtrToPgtype(d.ImageURL),
		Description:       pgconv.StringPtrToPgtype(d.Description),
	}
}
