package model

import "time"

type TimeLog struct {
	ID          uint      `gorm:"primaryKey" json:"timeLogId"`
	ProjectID   uint      `gorm:"not null" json:"projectId"`
	DeveloperID uint      `gorm:"not null" json:"developerId"`
	LogDate     time.Time `gorm:"not null" json:"logDate"`
	// TimeSpent is in minutes.
	TimeSpent   int    `gorm:"not null" json:"timeSpent"`
	Description string `gorm:"type:varchar(120)" json:"description"`

	Project   Project   `json:"-"`
	Developer Developer `json:"-"`
}

func (t TimeLog) TableName() string {
	return "time_logs"
}
