package models

// Appeal is a dispute raised by a job party against the counterparty's Cv.
type Appeal struct {
	BaseModel
	JobID   string     `gorm:"type:uuid;not null;index" json:"job_id"`
	OwnerID string     `gorm:"type:uuid;not null;index" json:"owner_id"`
	WhomID  string     `gorm:"type:uuid;not null;index" json:"whom_id"`
	Problem string     `gorm:"not null" json:"problem"`
	To      AppealType `gorm:"type:varchar(10);not null;index" json:"to"`

	// Relations
	Job   *Job  `gorm:"foreignKey:JobID" json:"-"`
	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
	Whom  *Cv   `gorm:"foreignKey:WhomID" json:"-"`
}
