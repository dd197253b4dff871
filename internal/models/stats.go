package models

import "time"

// Per-day aggregate counters maintained by the stats worker.

type UserStats struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	Date            time.Time `gorm:"type:date;uniqueIndex;not null" json:"date"`
	RegisteredUsers int       `gorm:"not null;default:0" json:"registered_users"`
}

type OrderStats struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	Date          time.Time `gorm:"type:date;uniqueIndex;not null" json:"date"`
	CreatedOrders int       `gorm:"not null;default:0" json:"created_orders"`
}

type ProposalStats struct {
	ID               uint      `gorm:"primaryKey" json:"-"`
	Date             time.Time `gorm:"type:date;uniqueIndex;not null" json:"date"`
	CreatedProposals int       `gorm:"not null;default:0" json:"created_proposals"`
}
