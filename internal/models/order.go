package models

type Category struct {
	BaseModel
	Name string `gorm:"not null;index" json:"name"`
}

type Order struct {
	BaseModel
	OwnerID      string      `gorm:"type:uuid;not null;index" json:"owner_id"`
	CategoryID   string      `gorm:"type:uuid;not null;index" json:"category_id"`
	Description  string      `gorm:"not null" json:"description"`
	Image        string      `json:"image,omitempty"`
	Location     string      `json:"location,omitempty"`
	LocationLink *string     `json:"location_link,omitempty"`
	Price        int64       `gorm:"not null" json:"price"`
	Status       OrderStatus `gorm:"type:varchar(10);not null;default:'open';index" json:"status"`

	// Relations
	Owner     *User      `gorm:"foreignKey:OwnerID" json:"-"`
	Category  *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Proposals []Proposal `gorm:"foreignKey:OrderID" json:"proposals,omitempty"`
}

func (o *Order) IsOpen() bool {
	return o.Status == OrderStatusOpen
}
