package model

// Course 课程表 — 对应 courses
type Course struct {
	CourseID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`
	DisplayName string `gorm:"type:varchar(200);not null"                     json:"display_name"`
	Subject     string `gorm:"type:varchar(200);not null"                     json:"subject"`
	BaseModel
}

func (Course) TableName() string { return "courses" }
