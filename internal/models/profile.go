package models

import "time"

// Cv is a user's worker/customer profile. Rating is derived from reviews and
// recomputed by the review service; review and appeal counts are looked up
// through relations, never stored.
type Cv struct {
	BaseModel
	OwnerID string `gorm:"type:uuid;not null;uniqueIndex" json:"owner_id"`
	Image   string `json:"image,omitempty"`
	Bio     string `json:"bio,omitempty"`
	Rating  int    `gorm:"not null;default:1;check:rating >= 1 AND rating <= 5" json:"rating"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
}

// BankCard belongs to users holding the Worker role.
type BankCard struct {
	BaseModel
	OwnerID    string `gorm:"type:uuid;not null;index" json:"owner_id"`
	HolderName string `gorm:"not null" json:"holder_name"`
	CardNumber int64  `gorm:"not null;index" json:"card_number"`
}

type Passport struct {
	BaseModel
	OwnerID          string    `gorm:"type:uuid;not null;index" json:"owner_id"`
	Series           string    `gorm:"type:varchar(2);index" json:"series"`
	Number           string    `gorm:"type:varchar(7);index" json:"number"`
	DateOfIssue      time.Time `json:"date_of_issue"`
	IssuingAuthority string    `json:"issuing_authority"`
	Pinfl            string    `gorm:"type:varchar(20)" json:"pinfl,omitempty"`
}
