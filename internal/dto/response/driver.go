package response

import (
	"wheelio-backend/internal/data/entity"
)

type DriverResponse struct {
	UserID        string              `json:"user_id"`
	FullName      string              `json:"full_name"`
	Email         string              `json:"email"`
	Phone         *string             `json:"phone,omitempty"`
	City          *string             `json:"city,omitempty"`
	AvatarURL     *string             `json:"avatar_url,omitempty"`
	LicenseNumber string              `json:"license_number"`
	Rating        float64             `json:"rating"`
	Status        entity.DriverStatus `json:"status"`
	Documents     map[string]string   `json:"documents,omitempty"`
}

// Helper converters
func DriverToResponse(driver *entity.DriverProfile) DriverResponse {
	return DriverResponse{
		UserID:        driver.UserID.String(),
		FullName:      driver.FullName,
		Email:         driver.Email,
		Phone:         driver.Phone,
		City:          driver.City,
		AvatarURL:     driver.AvatarURL,
		LicenseNumber: driver.LicenseNumber,
		Rating:        driver.Rating,
		Status:        driver.Status,
		Documents:     driver.Documents,
	}
}

func DriversToResponse(drivers []*entity.DriverProfile) []DriverResponse {
	result := make([]DriverResponse, 0, len(drivers))
	for _, driver := range drivers {
		result = append(result, DriverToResponse(driver))
	}
	return result
}
