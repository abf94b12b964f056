package request

type CreateDriverRequest struct {
	FullName      string  `json:"full_name" validate:"required,min=2,max=100"`
	Email         string  `json:"email" validate:"required,email"`
	Password      *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	City          *string `json:"city,omitempty" validate:"omitempty,max=100"`
	LicenseNumber string  `json:"license_number" validate:"required,max=50"`
}

type UpdateDriverRequest struct {
	Phone         *string           `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	City          *string           `json:"city,omitempty" validate:"omitempty,max=100"`
	AvatarURL     *string           `json:"avatar_url,omitempty" validate:"omitempty,max=500"`
	LicenseNumber *string           `json:"license_number,omitempty" validate:"omitempty,max=50"`
	Status        *string           `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE ON_TRIP INACTIVE"`
	Rating        *float64          `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Documents     map[string]string `json:"documents,omitempty"`
}
