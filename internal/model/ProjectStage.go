package model

// ProjectStage is reference data. The migrate command seeds the canonical
// id to meaning mapping, see constant.StageID.
type ProjectStage struct {
	ID   uint   `gorm:"primaryKey" json:"projectStageId"`
	Name string `gorm:"type:varchar(30);not null" json:"projectStageName"`

	Projects []Project `gorm:"foreignKey:ProjectStageID" json:"-"`
}

func (ps ProjectStage) TableName() string {
	return "project_stages"
}
