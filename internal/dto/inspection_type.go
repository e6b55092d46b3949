package dto

// ── 检查项模块 DTO ──

// CreateInspectionTypeRequest 创建检查项请求
// number 不可指定：服务端按 max(现有)+1 顺延
type CreateInspectionTypeRequest struct {
	Category    string `json:"category"    binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"required"`
	Weight      int    `json:"weight"      binding:"required,oneof=1 2"`
}

// UpdateInspectionTypeRequest 更新检查项请求
// active=false 即软删除：不再参与计分与默认列表
type UpdateInspectionTypeRequest struct {
	Category    *string `json:"category"    binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty"`
	Weight      *int    `json:"weight"      binding:"omitempty,oneof=1 2"`
	Active      *bool   `json:"active"`
}

// InspectionTypeListRequest 检查项列表查询参数
type InspectionTypeListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// InspectionTypeResponse 检查项响应
type InspectionTypeResponse struct {
	ID          string `json:"id"`
	Number      int    `json:"number"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`
	Active      bool   `json:"active"`
}
