package model

// Course maps to the courses table.
type Course struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:text"                  json:"description"`

	Students []Student `gorm:"foreignKey:CourseID" json:"-"`
	Teachers []Teacher `gorm:"foreignKey:CourseID" json:"-"`
}

// TableName pins the table name.
func (Course) TableName() string { return "courses" }
