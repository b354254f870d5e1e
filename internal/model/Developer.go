package model

type Developer struct {
	ID   uint   `gorm:"primaryKey" json:"developerId"`
	Name string `gorm:"type:varchar(30);not null" json:"developerName"`

	TimeLogs []TimeLog `gorm:"foreignKey:DeveloperID" json:"-"`
}

func (d Developer) TableName() string {
	return "developers"
}
