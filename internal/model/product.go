package model

// Product maps to the products table.
type Product struct {
	ID       uint    `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name     string  `gorm:"type:varchar(100);not null" json:"name"`
	Quantity int     `gorm:"not null;default:0"         json:"quantity"`
	Price    float64 `gorm:"not null"                   json:"price"`
}

// TableName pins the table name.
func (Product) TableName() string { return "products" }

// Value is the stock value of this product line.
func (p Product) Value() float64 { return float64(p.Quantity) * p.Price }
