package request

type CreateVehicleRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=150"`
	Brand        string   `json:"brand" validate:"required,min=2,max=100"`
	Type         string   `json:"type" validate:"required,oneof=SUV SEDAN BIKE HATCHBACK MPV SCOOTER"`
	PricePerDay  float64  `json:"price_per_day" validate:"required,gt=0"`
	Location     string   `json:"location" validate:"required,max=150"`
	ImageURL     *string  `json:"image_url,omitempty" validate:"omitempty,max=500"`
	Features     []string `json:"features,omitempty"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	FuelType     *string  `json:"fuel_type,omitempty" validate:"omitempty,max=50"`
	Transmission *string  `json:"transmission,omitempty" validate:"omitempty,max=50"`
	Seats        *int     `json:"seats,omitempty" validate:"omitempty,min=1,max=60"`
}

type UpdateVehicleRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	Brand        *string  `json:"brand,omitempty" validate:"omitempty,min=2,max=100"`
	Type         *string  `json:"type,omitempty" validate:"omitempty,oneof=SUV SEDAN BIKE HATCHBACK MPV SCOOTER"`
	PricePerDay  *float64 `json:"price_per_day,omitempty" validate:"omitempty,gt=0"`
	Location     *string  `json:"location,omitempty" validate:"omitempty,max=150"`
	Status       *string  `json:"status,omitempty" validate:"omitempty,oneof=AVAILABLE BOOKED MAINTENANCE"`
	ImageURL     *string  `json:"image_url,omitempty" validate:"omitempty,max=500"`
	Features     []string `json:"features,omitempty"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	FuelType     *string  `json:"fuel_type,omitempty" validate:"omitempty,max=50"`
	Transmission *string  `json:"transmission,omitempty" validate:"omitempty,max=50"`
	Seats        *int     `json:"seats,omitempty" validate:"omitempty,min=1,max=60"`
	Rating       *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
}
