package models

// Reference data: static named lookup sets seeded once and read-only at
// runtime. Orders reference them by id, never by free text.

// Product is a sellable subscription product.
type Product struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}

// Period is a subscription duration, e.g. "1 month".
type Period struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Duration string `gorm:"uniqueIndex;not null" json:"duration"`
}

// TableName sets the table name.
func (Period) TableName() string {
	return "periods"
}

// PaymentMethod is a supported payment channel.
type PaymentMethod struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// TableName sets the table name.
func (PaymentMethod) TableName() string {
	return "payment_methods"
}

// Platform is the customer-contact platform, e.g. "WhatsApp".
type Platform struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// TableName sets the table name.
func (Platform) TableName() string {
	return "platforms"
}
