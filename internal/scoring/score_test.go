package scoring

import (
	"testing"

	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/model"
)

func activeType(id string, weight int) model.InspectionType {
	return model.InspectionType{
		InspectionTypeID: id,
		Number:           1,
		Category:         "HIGIENE PESSOAL",
		Description:      "item de teste",
		Weight:           weight,
		Active:           true,
	}
}

func result(typeID, status string) model.InspectionResult {
	return model.InspectionResult{
		InspectionResultID: "res-" + typeID,
		VisitID:            "visit-1",
		InspectionTypeID:   typeID,
		Status:             status,
	}
}

func TestCalculate_Empty(t *testing.T) {
	got := Calculate(nil, nil)

	if got.TotalScore != 0 || got.MaxScore != 0 || got.Percentage != 0 {
		t.Errorf("期望全 0，实际=%+v", got)
	}
	if got.Evaluation != EvalPoor {
		t.Errorf("期望 INSUFICIENTE，实际=%s", got.Evaluation)
	}
}

func TestCalculate_SingleWeight1_OK(t *testing.T) {
	types := []model.InspectionType{activeType("t1", 1)}
	results := []model.InspectionResult{result("t1", model.StatusOK)}

	got := Calculate(results, types)

	if got.TotalScore != 50 {
		t.Errorf("期望 TotalScore=50，实际=%d", got.TotalScore)
	}
	if got.MaxScore != 50 {
		t.Errorf("期望 MaxScore=50，实际=%d", got.MaxScore)
	}
	if got.Percentage != 100 {
		t.Errorf("期望 Percentage=100，实际=%d", got.Percentage)
	}
	if got.Evaluation != EvalExcellent {
		t.Errorf("期望 EXCELENTE，实际=%s", got.Evaluation)
	}
}

func TestCalculate_SingleWeight1_Irregular(t *testing.T) {
	types := []model.InspectionType{activeType("t1", 1)}
	results := []model.InspectionResult{result("t1", model.StatusIrregular)}

	got := Calculate(results, types)

	if got.TotalScore != -100 {
		t.Errorf("期望 TotalScore=-100，实际=%d", got.TotalScore)
	}
	if got.MaxScore != 50 {
		t.Errorf("期望 MaxScore=50，实际=%d", got.MaxScore)
	}
	// 负分钳位到 0
	if got.Percentage != 0 {
		t.Errorf("期望 Percentage=0，实际=%d", got.Percentage)
	}
	if got.Evaluation != EvalPoor {
		t.Errorf("期望 INSUFICIENTE，实际=%s", got.Evaluation)
	}
}

func TestCalculate_TwoWeights_AllOK(t *testing.T) {
	types := []model.InspectionType{activeType("t1", 1), activeType("t2", 2)}
	results := []model.InspectionResult{
		result("t1", model.StatusOK),
		result("t2", model.StatusOK),
	}

	got := Calculate(results, types)

	if got.MaxScore != 150 {
		t.Errorf("期望 MaxScore=150，实际=%d", got.MaxScore)
	}
	if got.TotalScore != 150 {
		t.Errorf("期望 TotalScore=150，实际=%d", got.TotalScore)
	}
	if got.Percentage != 100 {
		t.Errorf("期望 Percentage=100，实际=%d", got.Percentage)
	}
}

func TestCalculate_PendingContributesZero(t *testing.T) {
	// t2 无结果：计入 maxScore 但不计 totalScore
	types := []model.InspectionType{activeType("t1", 2), activeType("t2", 2)}
	results := []model.InspectionResult{result("t1", model.StatusOK)}

	got := Calculate(results, types)

	if got.TotalScore != 100 {
		t.Errorf("期望 TotalScore=100，实际=%d", got.TotalScore)
	}
	if got.MaxScore != 200 {
		t.Errorf("期望 MaxScore=200，实际=%d", got.MaxScore)
	}
	if got.Percentage != 50 {
		t.Errorf("期望 Percentage=50，实际=%d", got.Percentage)
	}
}

func TestCalculate_InactiveTypeIgnored(t *testing.T) {
	inactive := activeType("t2", 2)
	inactive.Active = false

	types := []model.InspectionType{activeType("t1", 1), inactive}
	// 停用项即便有结果也不参与（含被删除项的孤儿结果同理）
	results := []model.InspectionResult{
		result("t1", model.StatusOK),
		result("t2", model.StatusOK),
		result("t3", model.StatusIrregular), // 悬空类型
	}

	got := Calculate(results, types)

	if got.TotalScore != 50 || got.MaxScore != 50 {
		t.Errorf("期望 50/50，实际=%d/%d", got.TotalScore, got.MaxScore)
	}
	if got.Percentage != 100 {
		t.Errorf("期望 Percentage=100，实际=%d", got.Percentage)
	}
}

func TestEvaluation_Boundaries(t *testing.T) {
	cases := []struct {
		percentage int
		want       string
	}{
		{100, EvalExcellent},
		{99, EvalGreat},
		{93, EvalGreat},
		{92, EvalSatisfactory},
		{80, EvalSatisfactory},
		{79, EvalRegular},
		{70, EvalRegular},
		{69, EvalPoor},
		{0, EvalPoor},
	}

	for _, c := range cases {
		if got := Evaluation(c.percentage); got != c.want {
			t.Errorf("Evaluation(%d): 期望 %s，实际=%s", c.percentage, c.want, got)
		}
	}
}

func TestCalculate_PercentageAlwaysInRange(t *testing.T) {
	// 遍历各种 ok/irregular/pending 组合，percentage 必须落在 [0,100]
	statuses := []string{model.StatusOK, model.StatusIrregular, ""} // "" = pending（无结果）

	types := []model.InspectionType{
		activeType("t1", 1),
		activeType("t2", 2),
		activeType("t3", 1),
	}

	for _, s1 := range statuses {
		for _, s2 := range statuses {
			for _, s3 := range statuses {
				var results []model.InspectionResult
				for i, s := range []string{s1, s2, s3} {
					if s == "" {
						continue
					}
					results = append(results, result(types[i].InspectionTypeID, s))
				}

				got := Calculate(results, types)
				if got.Percentage < 0 || got.Percentage > 100 {
					t.Errorf("组合 %q/%q/%q: percentage=%d 超出 [0,100]", s1, s2, s3, got.Percentage)
				}
			}
		}
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	types := []model.InspectionType{activeType("t1", 1), activeType("t2", 2)}
	results := []model.InspectionResult{
		result("t1", model.StatusIrregular),
		result("t2", model.StatusOK),
	}

	first := Calculate(results, types)
	second := Calculate(results, types)

	if first != second {
		t.Errorf("同输入结果不一致: %+v vs %+v", first, second)
	}
}
