package model

import "time"

// Book maps to the books table. ISBN is unique when present; NULL ISBNs
// never collide.
type Book struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"   json:"id"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	AuthorID  uint      `gorm:"not null"                   json:"author_id"`
	Year      *int      `json:"year"`
	ISBN      *string   `gorm:"type:varchar(20);unique"    json:"isbn"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Author *Author `gorm:"foreignKey:AuthorID" json:"-"`
}

// TableName pins the table name.
func (Book) TableName() string { return "books" }
