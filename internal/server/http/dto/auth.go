package dto

import "github.com/AlexisMGL/HappyCheese/internal/domain/model"

// RegisterRequest is the sign-up payload including profile metadata.
type RegisterRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	DisplayName      string `json:"display_name,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Company          string `json:"company,omitempty"`
	DeliveryLocation string `json:"delivery_location,omitempty"`
}

// Profile converts the request's metadata fields.
func (r RegisterRequest) Profile() model.Profile {
	return model.Profile{
		DisplayName:      r.DisplayName,
		Phone:            r.Phone,
		Company:          r.Company,
		DeliveryLocation: r.DeliveryLocation,
	}
}

// LoginRequest is the sign-in payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileRequest updates account metadata.
type ProfileRequest struct {
	DisplayName      string `json:"display_name"`
	Phone            string `json:"phone"`
	Company          string `json:"company"`
	DeliveryLocation string `json:"delivery_location"`
}

// PasswordChangeRequest re-authenticates before applying the new password.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UserResponse mirrors one account without credentials.
type UserResponse struct {
	ID               int64  `json:"id"`
	Email            string `json:"email"`
	DisplayName      string `json:"display_name,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Company          string `json:"company,omitempty"`
	DeliveryLocation string `json:"delivery_location,omitempty"`
	Admin            bool   `json:"admin"`
}

// NewUserResponse maps a model user.
func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		DisplayName:      u.Profile.DisplayName,
		Phone:            u.Profile.Phone,
		Company:          u.Profile.Company,
		DeliveryLocation: u.Profile.DeliveryLocation,
		Admin:            u.Admin,
	}
}
