package dto

import "github.com/WorkNestHQ/job_service/internal/domain"

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Role      string `json:"role" validate:"required,oneof=seeker employer admin"`

	// Required when role=employer.
	CompanyName string `json:"companyName,omitempty"`
}

type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// AuthClaims is what a verified bearer token resolves to.
type AuthClaims struct {
	UserID uint    `json:"user_id"`
	Role   string  `json:"role"`
	Iat    float64 `json:"iat"`
	Expiry float64 `json:"expiry"`
}

// UpdateUserProfile carries the allow-listed profile fields. Pointer fields
// distinguish "absent" from "set to zero value"; email and role are
// deliberately not representable here.
type UpdateUserProfile struct {
	FirstName          *string   `json:"firstName,omitempty"`
	LastName           *string   `json:"lastName,omitempty"`
	Phone              *string   `json:"phone,omitempty"`
	Location           *string   `json:"location,omitempty"`
	Bio                *string   `json:"bio,omitempty" validate:"omitempty,max=1000"`
	Skills             *[]string `json:"skills,omitempty"`
	Experience         *int      `json:"experience,omitempty"`
	Education          *string   `json:"education,omitempty"`
	CompanyName        *string   `json:"companyName,omitempty"`
	CompanySize        *string   `json:"companySize,omitempty"`
	CompanyWebsite     *string   `json:"companyWebsite,omitempty"`
	CompanyDescription *string   `json:"companyDescription,omitempty" validate:"omitempty,max=2000"`
}
