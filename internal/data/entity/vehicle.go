package entity

type VehicleType string

const (
	VehicleTypeSUV       VehicleType = "SUV"
	VehicleTypeSedan     VehicleType = "SEDAN"
	VehicleTypeBike      VehicleType = "BIKE"
	VehicleTypeHatchback VehicleType = "HATCHBACK"
	VehicleTypeMPV       VehicleType = "MPV"
	VehicleTypeScooter   VehicleType = "SCOOTER"
)

func ParseVehicleType(s string) (VehicleType, bool) {
	switch VehicleType(s) {
	case VehicleTypeSUV, VehicleTypeSedan, VehicleTypeBike,
		VehicleTypeHatchback, VehicleTypeMPV, VehicleTypeScooter:
		return VehicleType(s), true
	}
	return "", false
}

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusBooked      VehicleStatus = "BOOKED"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
)

func ParseVehicleStatus(s string) (VehicleStatus, bool) {
	switch VehicleStatus(s) {
	case VehicleStatusAvailable, VehicleStatusBooked, VehicleStatusMaintenance:
		return VehicleStatus(s), true
	}
	return "", false
}

type Vehicle struct {
	BaseSimple
	Name         string        `db:"name"`
	Brand        string        `db:"brand"`
	Type         VehicleType   `db:"type"`
	PricePerDay  float64       `db:"price_per_day"`
	Location     string        `db:"location"`
	Status       VehicleStatus `db:"status"`
	ImageURL     *string       `db:"image_url"`
	Features     []string      `db:"features"`
	Description  *string       `db:"description"`
	Seats        *int          `db:"seats"`
	FuelType     *string       `db:"fuel_type"`
	Transmission *string       `db:"transmission"`
	Rating       *float64      `db:"rating"`
}
