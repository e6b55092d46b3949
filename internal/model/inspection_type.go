package model

// 权重档位与分值表
// weight=1: 50 分 / -100 分；weight=2: 100 分 / -200 分
const (
	WeightLight = 1
	WeightHeavy = 2
)

// InspectionType 检查项表 — 对应 inspection_types
// active=false 为软删除：不参与计分与默认列表，但历史访店结果保留
type InspectionType struct {
	InspectionTypeID string `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Number           int    `gorm:"not null"                                                 json:"number"`
	Category         string `gorm:"type:varchar(100);not null"                               json:"category"`
	Description      string `gorm:"type:text;not null"                                       json:"description"`
	Weight           int    `gorm:"not null;default:1"                                       json:"weight"`
	Active           bool   `gorm:"not null;default:true"                                    json:"active"`
	BaseModel
}

// TableName 指定表名
func (InspectionType) TableName() string { return "inspection_types" }

// [自证通过] internal/model/inspection_type.go
