package dto

// ── 访店模块 DTO ──

// CreateVisitRequest 创建访店请求
// visit_date 缺省为当天
type CreateVisitRequest struct {
	BranchID  string `json:"branch_id"  binding:"required,uuid"`
	VisitDate string `json:"visit_date" binding:"omitempty,datetime=2006-01-02"`
}

// VisitListRequest 访店列表查询参数
type VisitListRequest struct {
	BranchID string `form:"branch_id" binding:"omitempty,uuid"`
}

// LatestVisitRequest 最近访店查询参数
type LatestVisitRequest struct {
	BranchID string `form:"branch_id" binding:"required,uuid"`
}

// UpsertResultRequest 检查结果写入请求
// observations 仅对 irregular 保留；ok 时服务端清空
type UpsertResultRequest struct {
	InspectionTypeID string `json:"inspection_type_id" binding:"required,uuid"`
	Status           string `json:"status"             binding:"required,oneof=ok irregular"`
	Observations     string `json:"observations"       binding:"omitempty,max=2000"`
}

// VisitResponse 访店信息响应（含计分快照）
type VisitResponse struct {
	ID          string `json:"id"`
	BranchID    string `json:"branch_id"`
	BranchName  string `json:"branch_name,omitempty"`
	InspectorID string `json:"inspector_id"`
	VisitDate   string `json:"visit_date"`
	TotalScore  int    `json:"total_score"`
	MaxScore    int    `json:"max_score"`
	Percentage  int    `json:"percentage"`
	Evaluation  string `json:"evaluation"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// InspectionResultResponse 检查结果响应
type InspectionResultResponse struct {
	ID               string `json:"id"`
	VisitID          string `json:"visit_id"`
	InspectionTypeID string `json:"inspection_type_id"`
	Status           string `json:"status"`
	Observations     string `json:"observations"`
}

// VisitDetailResponse 访店详情（访店 + 结果清单）
type VisitDetailResponse struct {
	Visit   VisitResponse              `json:"visit"`
	Results []InspectionResultResponse `json:"results"`
}

// MonthlyStatsRequest 月度统计查询参数
type MonthlyStatsRequest struct {
	Year     int    `form:"year"      binding:"required,min=2000,max=2100"`
	BranchID string `form:"branch_id" binding:"omitempty,uuid"`
}

// ExportVisitsRequest 访店历史导出查询参数
type ExportVisitsRequest struct {
	Year     int    `form:"year"      binding:"required,min=2000,max=2100"`
	BranchID string `form:"branch_id" binding:"omitempty,uuid"`
}

// MonthlyStatPoint 单月统计点（无访店的月份 percentage=0）
type MonthlyStatPoint struct {
	Month      int `json:"month"`
	Percentage int `json:"percentage"`
	VisitCount int `json:"visit_count"`
}
