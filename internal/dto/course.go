package dto

// ── 课程模块 DTO ──

// CourseResponse 课程可展示形态
type CourseResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Subject     string `json:"subject"`
}

// CreateCourseRequest 创建课程请求
// schedule 可选：给出时走课表作用域路径（创建后追加到课表成员列表）。
type CreateCourseRequest struct {
	DisplayName string `json:"displayName" binding:"required,min=1,max=200"`
	Subject     string `json:"subject"     binding:"required,min=1,max=200"`
	Schedule    string `json:"schedule"    binding:"omitempty"`
}

// DeleteCourseRequest 删除课程查询参数（schedule 可选，同步摘除成员关系）
type DeleteCourseRequest struct {
	ID       string `form:"id"       binding:"required"`
	Schedule string `form:"schedule"`
}

// DeleteManyCoursesRequest 批量删除课程请求
type DeleteManyCoursesRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}
