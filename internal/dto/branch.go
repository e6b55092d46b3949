package dto

// ── 门店模块 DTO ──

// CreateBranchRequest 创建门店请求
type CreateBranchRequest struct {
	Name        string `json:"name"         binding:"required,min=2,max=200"`
	ManagerName string `json:"manager_name" binding:"omitempty,max=200"`
}

// UpdateBranchRequest 更新门店请求
type UpdateBranchRequest struct {
	Name        *string `json:"name"         binding:"omitempty,min=2,max=200"`
	ManagerName *string `json:"manager_name" binding:"omitempty,max=200"`
}

// BranchResponse 门店信息响应
type BranchResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ManagerName string `json:"manager_name"`
	CreatedAt   string `json:"created_at"`
}
