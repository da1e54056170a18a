package model

// Student maps to the students table. Email is unique across all students.
type Student struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"          json:"id"`
	Name     string `gorm:"type:varchar(100);not null"        json:"name"`
	Email    string `gorm:"type:varchar(120);not null;unique" json:"email"`
	CourseID uint   `gorm:"not null"                          json:"course_id"`

	Course *Course `gorm:"foreignKey:CourseID" json:"-"`
}

// TableName pins the table name.
func (Student) TableName() string { return "students" }
