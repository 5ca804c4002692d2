package dto

import "time"

// ── 日历事件模块 DTO ──

// CreateCalendarEventRequest 创建事件请求（严格创建路径）
// duration 采用 min=1：零时长与缺失一律拒绝。
type CreateCalendarEventRequest struct {
	BelongsTo   string    `json:"belongsTo"   binding:"required"`
	DisplayName string    `json:"displayName" binding:"omitempty,max=200"`
	Start       time.Time `json:"start"       binding:"required"`
	End         time.Time `json:"end"         binding:"required"`
	Duration    int       `json:"duration"    binding:"required,min=1"`
	Type        *string   `json:"type"        binding:"omitempty"`
	Course      *string   `json:"course"      binding:"omitempty"`
	Teachers    []string  `json:"teachers"    binding:"required,min=1"`
	Groups      []string  `json:"groups"      binding:"required,min=1"`
	Locations   []string  `json:"locations"   binding:"required,min=1"`
	Color       *string   `json:"color"       binding:"omitempty,max=7"`
}

// UpdateCalendarEventRequest 更新事件请求（部分更新：缺省字段保持不变）
type UpdateCalendarEventRequest struct {
	DisplayName *string    `json:"displayName" binding:"omitempty,max=200"`
	Start       *time.Time `json:"start"`
	End         *time.Time `json:"end"`
	Duration    *int       `json:"duration"`
	Type        *string    `json:"type"`
	Course      *string    `json:"course"`
	Teachers    []string   `json:"teachers"`
	Groups      []string   `json:"groups"`
	Locations   []string   `json:"locations"`
	Color       *string    `json:"color"       binding:"omitempty,max=7"`
	Cancelled   *bool      `json:"cancelled"`
}

// WeekQueryRequest 周窗口事件查询参数
// week 必填；三个关系过滤器至少给出一个（由 Service 层校验组合）。
type WeekQueryRequest struct {
	Week        string `form:"week"`
	InLocations string `form:"inLocations"`
	Teachers    string `form:"teachers"`
	Groups      string `form:"groups"`
}

// CalendarEventResponse 事件可展示形态（关联已解析）
type CalendarEventResponse struct {
	ID          string           `json:"id"`
	BelongsTo   EntityResponse   `json:"belongsTo"`
	DisplayName string           `json:"displayName"`
	Start       time.Time        `json:"start"`
	End         time.Time        `json:"end"`
	Duration    int              `json:"duration"`
	Type        *string          `json:"type,omitempty"`
	Course      *CourseResponse  `json:"course,omitempty"`
	InLocations []EntityResponse `json:"inLocations"`
	Teachers    []EntityResponse `json:"teachers"`
	Groups      []EntityResponse `json:"groups"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Color       string           `json:"color"`
	Cancelled   bool             `json:"cancelled"`
}
