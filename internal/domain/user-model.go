package domain

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	RoleSeeker   = "seeker"
	RoleEmployer = "employer"
	RoleAdmin    = "admin"
)

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex:idx_users_email;not null" json:"email"`
	PasswordHash string `json:"-"`
	FirstName    string `gorm:"not null" json:"firstName"`
	LastName     string `gorm:"not null" json:"lastName"`
	Role         string `gorm:"type:varchar(20);not null" json:"role"`

	Avatar     string         `json:"avatar,omitempty"`
	Phone      string         `json:"phone,omitempty"`
	Location   string         `json:"location,omitempty"`
	Bio        string         `json:"bio,omitempty"`
	Skills     pq.StringArray `gorm:"type:text[]" json:"skills,omitempty"`
	Experience int            `json:"experience"`
	Education  string         `json:"education,omitempty"`
	Resume     string         `json:"resume,omitempty"`

	// Employer-only fields.
	CompanyName        string `json:"companyName,omitempty"`
	CompanySize        string `json:"companySize,omitempty"`
	CompanyWebsite     string `json:"companyWebsite,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`

	IsVerified bool       `gorm:"not null;default:false" json:"isVerified"`
	IsActive   bool       `gorm:"not null;default:true" json:"isActive"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
	gorm.Model `json:"-"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleSeeker, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}
