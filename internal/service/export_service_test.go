package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/model"
)

func newTestExportService() (ExportService, *testRepos) {
	repo, tr := newTestRepository()
	return NewExportService(repo, zap.NewNop()), tr
}

func TestExportVisitsEmpty(t *testing.T) {
	svc, _ := newTestExportService()

	_, _, err := svc.ExportVisits(context.Background(), 2026, "")
	if !errors.Is(err, ErrNoVisitsToExport) {
		t.Errorf("期望 ErrNoVisitsToExport，实际=%v", err)
	}
}

func TestExportVisitsXLSX(t *testing.T) {
	svc, tr := newTestExportService()
	ctx := context.Background()

	branch := &model.Branch{Name: "Filial Centro"}
	tr.branches.Create(ctx, branch)
	tr.visits.Create(ctx, &model.Visit{
		BranchID:    branch.BranchID,
		InspectorID: "inspector-1",
		VisitDate:   time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
		TotalScore:  100,
		MaxScore:    150,
		Percentage:  67,
		Evaluation:  "INSUFICIENTE",
		Branch:      branch,
	})

	data, filename, err := svc.ExportVisits(ctx, 2026, "")
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}
	if filename != "inspecoes_2026.xlsx" {
		t.Errorf("期望文件名 inspecoes_2026.xlsx，实际=%s", filename)
	}
	if len(data) == 0 {
		t.Fatal("导出内容为空")
	}

	// 回读校验表头与数据行
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("导出文件无法解析: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Inspeções")
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("期望表头+1 行数据，实际=%d 行", len(rows))
	}
	if rows[0][0] != "Data" || rows[0][5] != "Avaliação" {
		t.Errorf("表头不符: %v", rows[0])
	}
	if rows[1][0] != "2026-02-10" || rows[1][1] != "Filial Centro" || rows[1][4] != "67%" {
		t.Errorf("数据行不符: %v", rows[1])
	}
}

func TestExportVisitsBranchFilter(t *testing.T) {
	svc, tr := newTestExportService()
	ctx := context.Background()

	a := &model.Branch{Name: "Filial A"}
	b := &model.Branch{Name: "Filial B"}
	tr.branches.Create(ctx, a)
	tr.branches.Create(ctx, b)

	date := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	tr.visits.Create(ctx, &model.Visit{BranchID: a.BranchID, InspectorID: "i", VisitDate: date, Branch: a})
	tr.visits.Create(ctx, &model.Visit{BranchID: b.BranchID, InspectorID: "i", VisitDate: date, Branch: b})

	data, _, err := svc.ExportVisits(ctx, 2026, a.BranchID)
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("导出文件无法解析: %v", err)
	}
	defer f.Close()

	rows, _ := f.GetRows("Inspeções")
	if len(rows) != 2 {
		t.Errorf("期望仅 1 行数据，实际=%d 行", len(rows)-1)
	}
	if rows[1][1] != "Filial A" {
		t.Errorf("期望 Filial A，实际=%s", rows[1][1])
	}
}
