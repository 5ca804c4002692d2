package dto

// ── 叶子实体模块 DTO ──

// EntityResponse 叶子实体可展示形态
type EntityResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// CreateEntityRequest 创建叶子实体请求（课表作用域：创建后追加到课表成员列表）
type CreateEntityRequest struct {
	Category    string `json:"category"    binding:"required"`
	DisplayName string `json:"displayName" binding:"required,min=1,max=200"`
	Schedule    string `json:"schedule"    binding:"required"`
}

// ListEntitiesRequest 实体列表查询参数（category 为空时返回三类并集）
type ListEntitiesRequest struct {
	Category string `form:"category"`
}

// DeleteEntityRequest 删除叶子实体查询参数
type DeleteEntityRequest struct {
	ID       string `form:"id"       binding:"required"`
	Category string `form:"category" binding:"required"`
	Schedule string `form:"schedule" binding:"required"`
}
