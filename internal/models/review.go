package models

// Review is one party's rating of the counterparty for a finished job.
// One review per (owner, job).
type Review struct {
	BaseModel
	JobID   string `gorm:"type:uuid;not null;index;uniqueIndex:idx_review_owner_job" json:"job_id"`
	OwnerID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_review_owner_job" json:"owner_id"`
	WhomID  string `gorm:"type:uuid;not null;index" json:"whom_id"`
	Rating  int    `gorm:"not null;check:rating >= 1 AND rating <= 5;index" json:"rating"`
	Comment string `json:"comment,omitempty"`

	// Relations
	Job   *Job  `gorm:"foreignKey:JobID" json:"-"`
	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
	Whom  *Cv   `gorm:"foreignKey:WhomID" json:"-"`
}
