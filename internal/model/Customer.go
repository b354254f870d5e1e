package model

type Customer struct {
	ID   uint   `gorm:"primaryKey" json:"customerId"`
	Name string `gorm:"type:varchar(30);not null" json:"customerName"`

	Projects []Project `gorm:"foreignKey:CustomerID" json:"-"`
}

func (c Customer) TableName() string {
	return "customers"
}
