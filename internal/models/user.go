package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	Roles        pq.StringArray `gorm:"type:text[];not null" json:"roles"`
	PhoneNumber  *string        `gorm:"uniqueIndex" json:"phone_number,omitempty"`
	Language     string         `gorm:"type:varchar(20)" json:"language,omitempty"`
	BirthDate    *datatypes.Date `json:"birth_date,omitempty"`

	// Relations
	Cv            *Cv            `gorm:"foreignKey:OwnerID" json:"cv,omitempty"`
	BankCards     []BankCard     `gorm:"foreignKey:OwnerID" json:"-"`
	Passports     []Passport     `gorm:"foreignKey:OwnerID" json:"-"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

// HasRole is the single capability predicate; handlers and services must not
// inspect the roles slice directly.
func (u *User) HasRole(role UserRole) bool {
	for _, r := range u.Roles {
		if UserRole(r) == role {
			return true
		}
	}
	return false
}

func (u *User) IsAdmin() bool    { return u.HasRole(UserRoleAdmin) }
func (u *User) IsCustomer() bool { return u.HasRole(UserRoleCustomer) }
func (u *User) IsWorker() bool   { return u.HasRole(UserRoleWorker) }

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
