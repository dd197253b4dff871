package models

import "time"

// Job is the contracted engagement created once a proposal is approved.
// It is jointly owned by the order owner (customer) and the proposal owner
// (worker); both act on it with distinct permissions.
type Job struct {
	BaseModel
	OrderID    string `gorm:"type:uuid;not null;index" json:"order_id"`
	ProposalID string `gorm:"type:uuid;not null;uniqueIndex" json:"proposal_id"`
	AssigneeID string `gorm:"type:uuid;not null;index" json:"assignee_id"`
	Price      int64  `gorm:"not null" json:"price"`

	Status JobStatus `gorm:"type:varchar(15);not null;default:'in_progress';index" json:"status"`

	PaymentConfirmedByCustomer PaymentConfirmation `gorm:"type:varchar(10);not null;default:'default'" json:"payment_confirmed_by_customer"`
	PaymentConfirmedByWorker   PaymentConfirmation `gorm:"type:varchar(10);not null;default:'default'" json:"payment_confirmed_by_worker"`

	ReviewWrittenByCustomer bool `gorm:"not null;default:false" json:"review_written_by_customer"`
	ReviewWrittenByWorker   bool `gorm:"not null;default:false" json:"review_written_by_worker"`

	// Relations
	Order         *Order            `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Proposal      *Proposal         `gorm:"foreignKey:ProposalID" json:"-"`
	Assignee      *User             `gorm:"foreignKey:AssigneeID" json:"-"`
	StatusHistory []JobStatusChange `gorm:"foreignKey:JobID" json:"status_history,omitempty"`
}

// JobStatusChange is one entry of the append-only status audit trail. Rows
// are only ever inserted, in the same transaction as the status write.
type JobStatusChange struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	JobID      string    `gorm:"type:uuid;not null;index" json:"job_id"`
	FromStatus JobStatus `gorm:"type:varchar(15);not null" json:"from_status"`
	ToStatus   JobStatus `gorm:"type:varchar(15);not null" json:"to_status"`
	ChangedAt  time.Time `gorm:"not null;default:now()" json:"changed_at"`
}

// IsParty reports whether userID is the customer or the worker on the job.
// The order must be preloaded.
func (j *Job) IsParty(userID string) bool {
	return j.IsCustomer(userID) || j.IsWorker(userID)
}

func (j *Job) IsCustomer(userID string) bool {
	return j.Order != nil && j.Order.OwnerID == userID
}

func (j *Job) IsWorker(userID string) bool {
	return j.AssigneeID == userID
}
