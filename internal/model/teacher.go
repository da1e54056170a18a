package model

// Teacher maps to the teachers table. One teacher teaches one course.
type Teacher struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"          json:"id"`
	Name           string `gorm:"type:varchar(100);not null"        json:"name"`
	Email          string `gorm:"type:varchar(120);not null;unique" json:"email"`
	Specialization string `gorm:"type:varchar(100)"                 json:"specialization"`
	CourseID       uint   `gorm:"not null"                          json:"course_id"`

	Course *Course `gorm:"foreignKey:CourseID" json:"-"`
}

// TableName pins the table name.
func (Teacher) TableName() string { return "teachers" }
