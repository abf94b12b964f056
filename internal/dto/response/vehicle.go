package response

import (
	"time"

	"wheelio-backend/internal/data/entity"
)

type VehicleResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Brand        string               `json:"brand"`
	Type         entity.VehicleType   `json:"type"`
	PricePerDay  float64              `json:"price_per_day"`
	Location     string               `json:"location"`
	Status       entity.VehicleStatus `json:"status"`
	ImageURL     *string              `json:"image_url,omitempty"`
	Features     []string             `json:"features,omitempty"`
	Description  *string              `json:"description,omitempty"`
	FuelType     *string              `json:"fuel_type,omitempty"`
	Transmission *string              `json:"transmission,omitempty"`
	Seats        *int                 `json:"seats,omitempty"`
	Rating       *float64             `json:"rating,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

// Helper converters
func VehicleToResponse(vehicle *entity.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           vehicle.ID.String(),
		Name:         vehicle.Name,
		Brand:        vehicle.Brand,
		Type:         vehicle.Type,
		PricePerDay:  vehicle.PricePerDay,
		Location:     vehicle.Location,
		Status:       vehicle.Status,
		ImageURL:     vehicle.ImageURL,
		Features:     vehicle.Features,
		Description:  vehicle.Description,
		FuelType:     vehicle.FuelType,
		Transmission: vehicle.Transmission,
		Seats:        vehicle.Seats,
		Rating:       vehicle.Rating,
		CreatedAt:    vehicle.CreatedAt,
	}
}

func VehiclesToResponse(vehicles []*entity.Vehicle) []VehicleResponse {
	result := make([]VehicleResponse, 0, len(vehicles))
	for _, vehicle := range vehicles {
		result = append(result, VehicleToResponse(vehicle))
	}
	return result
}
