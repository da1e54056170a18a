package model

// Author maps to the authors table. Deleting an author cascades to its books.
type Author struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
	Bio  string `gorm:"type:text"                  json:"bio"`
	City string `gorm:"type:varchar(100)"          json:"city"`

	Books []Book `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName pins the table name.
func (Author) TableName() string { return "authors" }
