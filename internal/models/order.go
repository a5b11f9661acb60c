package models

import "time"

// Order is the central entity. It is keyed by a generated human-readable
// order number rather than a sequential id.
type Order struct {
	OrderNo          string     `gorm:"primarykey" json:"order_no"`
	AgentID          int64      `gorm:"index;not null" json:"agent_id"`
	DeliveryUserID   *int64     `gorm:"index" json:"delivery_user_id,omitempty"`
	ProductID        uint       `gorm:"not null" json:"product_id"`
	PeriodID         uint       `gorm:"not null" json:"period_id"`
	PaymentMethodID  uint       `gorm:"not null" json:"payment_method_id"`
	PlatformID       uint       `gorm:"not null" json:"platform_id"`
	ContactInfo      string     `gorm:"not null" json:"contact_info"`
	Comments         *string    `gorm:"type:text" json:"comments,omitempty"`
	DeliveryComments *string    `gorm:"type:text" json:"delivery_comments,omitempty"`
	Status           string     `gorm:"index;not null" json:"status"`
	CreatedAt        time.Time  `gorm:"index" json:"created_at"`
	DeliveryStartedAt *time.Time `json:"delivery_started_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`

	Agent         User          `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
	DeliveryUser  *User         `gorm:"foreignKey:DeliveryUserID" json:"delivery_user,omitempty"`
	Product       Product       `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Period        Period        `gorm:"foreignKey:PeriodID" json:"period,omitempty"`
	PaymentMethod PaymentMethod `gorm:"foreignKey:PaymentMethodID" json:"payment_method,omitempty"`
	Platform      Platform      `gorm:"foreignKey:PlatformID" json:"platform,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
