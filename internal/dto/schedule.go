package dto

// ── 课表模块 DTO ──
// 对外 JSON 采用前端约定的 camelCase 命名。

// CreateScheduleRequest 创建课表请求
type CreateScheduleRequest struct {
	DisplayName string `json:"displayName" binding:"required,min=1,max=200"`
}

// IDResponse 创建成功响应（仅返回新标识符）
type IDResponse struct {
	ID string `json:"id"`
}

// ScheduleListItem 课表列表项
type ScheduleListItem struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// ScheduleDetailResponse 课表详情（成员列表已解析为可展示形态）
type ScheduleDetailResponse struct {
	ID          string           `json:"id"`
	DisplayName string           `json:"displayName"`
	Teachers    []EntityResponse `json:"teachers"`
	Groups      []EntityResponse `json:"groups"`
	Locations   []EntityResponse `json:"locations"`
	Courses     []CourseResponse `json:"courses"`
}
