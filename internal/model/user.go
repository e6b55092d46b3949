package model

import "time"

// User 用户表 — 对应 users（身份存储，仅凭证）
type User struct {
	UserID       string    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"type:varchar(255);not null"                               json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"                               json:"-"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                       json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                       json:"updated_at"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go
