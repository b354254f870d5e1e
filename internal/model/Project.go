package model

import "time"

type Project struct {
	ID             uint      `gorm:"primaryKey" json:"projectId"`
	Name           string    `gorm:"type:varchar(30);not null" json:"projectName"`
	ProjectStageID uint      `gorm:"not null" json:"projectStageId"`
	Deadline       time.Time `gorm:"not null" json:"deadline"`
	CustomerID     uint      `gorm:"not null" json:"customerId"`

	Customer     Customer     `json:"-"`
	ProjectStage ProjectStage `json:"-"`
	TimeLogs     []TimeLog    `gorm:"foreignKey:ProjectID" json:"-"`
}

func (p Project) TableName() string {
	return "projects"
}
