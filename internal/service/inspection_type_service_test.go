package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/dto"
	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/model"
)

func newTestInspectionTypeService() (InspectionTypeService, *testRepos) {
	repo, tr := newTestRepository()
	return NewInspectionTypeService(repo, zap.NewNop()), tr
}

func TestInspectionTypeSequentialNumbers(t *testing.T) {
	svc, _ := newTestInspectionTypeService()
	ctx := context.Background()

	for i, category := range []string{"Higiene", "Armazenamento", "Uniformes"} {
		created, err := svc.Create(ctx, &dto.CreateInspectionTypeRequest{
			Category:    category,
			Description: "Verificação de " + category,
			Weight:      model.WeightLight,
		})
		if err != nil {
			t.Fatalf("创建检查项失败: %v", err)
		}
		if created.Number != i+1 {
			t.Errorf("期望编号 %d，实际=%d", i+1, created.Number)
		}
		if !created.Active {
			t.Error("新建检查项应默认启用")
		}
	}
}

func TestInspectionTypeNumberAfterDelete(t *testing.T) {
	svc, _ := newTestInspectionTypeService()
	ctx := context.Background()

	first, _ := svc.Create(ctx, &dto.CreateInspectionTypeRequest{Category: "Higiene", Description: "a", Weight: 1})
	second, _ := svc.Create(ctx, &dto.CreateInspectionTypeRequest{Category: "Pragas", Description: "b", Weight: 2})

	// 删除编号最大的项后，新项复用该编号（max+1 不是全局自增）
	if err := svc.Delete(ctx, second.ID); err != nil {
		t.Fatalf("删除检查项失败: %v", err)
	}
	third, err := svc.Create(ctx, &dto.CreateInspectionTypeRequest{Category: "Validade", Description: "c", Weight: 1})
	if err != nil {
		t.Fatalf("创建检查项失败: %v", err)
	}
	if third.Number != first.Number+1 {
		t.Errorf("期望编号 %d，实际=%d", first.Number+1, third.Number)
	}
}

func TestInspectionTypeListActiveOnly(t *testing.T) {
	svc, _ := newTestInspectionTypeService()
	ctx := context.Background()

	a, _ := svc.Create(ctx, &dto.CreateInspectionTypeRequest{Category: "Higiene", Description: "a", Weight: 1})
	svc.Create(ctx, &dto.CreateInspectionTypeRequest{Category: "Pragas", Description: "b", Weight: 2})

	// 停用第一项
	inactive := false
	if _, err := svc.Update(ctx, a.ID, &dto.UpdateInspectionTypeRequest{Active: &inactive}); err != nil {
		t.Fatalf("停用检查项失败: %v", err)
	}

	active, err := svc.List(ctx, false)
	if err != nil {
		t.Fatalf("查询启用列表失败: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("期望 1 个启用项，实际=%d", len(active))
	}
	if active[0].Category != "Pragas" {
		t.Errorf("启用列表内容不符: %+v", active)
	}

	all, err := svc.List(ctx, true)
	if err != nil {
		t.Fatalf("查询全量列表失败: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("期望全量 2 项，实际=%d", len(all))
	}
}

func TestInspectionTypeUpdatePartial(t *testing.T) {
	svc, _ := newTestInspectionTypeService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, &dto.CreateInspectionTypeRequest{Category: "Higiene", Description: "a", Weight: 1})

	weight := model.WeightHeavy
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateInspectionTypeRequest{Weight: &weight})
	if err != nil {
		t.Fatalf("更新检查项失败: %v", err)
	}
	if updated.Weight != model.WeightHeavy {
		t.Errorf("期望权重 2，实际=%d", updated.Weight)
	}
	if updated.Category != "Higiene" || updated.Number != created.Number {
		t.Errorf("未指定字段不应改变: %+v", updated)
	}
}

func TestInspectionTypeNotFound(t *testing.T) {
	svc, _ := newTestInspectionTypeService()
	ctx := context.Background()

	desc := "x"
	if _, err := svc.Update(ctx, "inexistente", &dto.UpdateInspectionTypeRequest{Description: &desc}); !errors.Is(err, ErrInspectionTypeNotFound) {
		t.Errorf("期望 ErrInspectionTypeNotFound，实际=%v", err)
	}
	if err := svc.Delete(ctx, "inexistente"); !errors.Is(err, ErrInspectionTypeNotFound) {
		t.Errorf("期望 ErrInspectionTypeNotFound，实际=%v", err)
	}
}
