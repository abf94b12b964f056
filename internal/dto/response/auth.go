package response

import (
	"time"

	"wheelio-backend/internal/data/entity"
)

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID        string          `json:"id"`
	FullName  string          `json:"full_name"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
	Phone     *string         `json:"phone,omitempty"`
	City      *string         `json:"city,omitempty"`
	AvatarURL *string         `json:"avatar_url,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      user.Role,
		Phone:     user.Phone,
		City:      user.City,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, token string) AuthResponse {
	return AuthResponse{
		Token: token,
		User:  UserToResponse(user),
	}
}
