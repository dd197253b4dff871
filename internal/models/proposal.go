package models

// Proposal is a worker's bid on an order. One proposal per (owner, order):
// the composite unique index backs the atomic check-and-insert in the
// repository.
type Proposal struct {
	BaseModel
	OwnerID string         `gorm:"type:uuid;not null;index;uniqueIndex:idx_proposal_owner_order" json:"owner_id"`
	OrderID string         `gorm:"type:uuid;not null;index;uniqueIndex:idx_proposal_owner_order" json:"order_id"`
	Message string         `gorm:"not null" json:"message"`
	Price   int64          `gorm:"not null" json:"price"`
	Status  ProposalStatus `gorm:"type:varchar(10);not null;default:'waiting';index" json:"status"`

	// Relations
	Owner *User  `gorm:"foreignKey:OwnerID" json:"-"`
	Order *Order `gorm:"foreignKey:OrderID" json:"-"`
}

// CanApprove reports whether the proposal may move to approved.
func (p *Proposal) CanApprove() bool {
	return p.Status == ProposalStatusWaiting || p.Status == ProposalStatusOffered
}
