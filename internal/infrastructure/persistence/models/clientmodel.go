package models

type ClientModel struct {
	ID          string `gorm:"primaryKey;size:32"`
	CompanyName string `gorm:"size:200"`
	ContactName string `gorm:"size:200;not null"`
	Email       string `gorm:"size:255;not null;index"`
	Phone       string `gorm:"size:50"`
	Address     string `gorm:"type:text"`
	Siret       string `gorm:"size:50"`
	IBAN        string `gorm:"size:50"`
	BIC         string `gorm:"size:20"`
	Active      bool   `gorm:"not null;default:true;index"`
	Position    int64  `gorm:"autoIncrement;uniqueIndex"`

	// Note: no foreign key constraints. Tickets and users reference clients
	// by id only and may outlive the client record.
}

func (ClientModel) TableName() string {
	return "clients"
}
