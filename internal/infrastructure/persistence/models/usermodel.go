package models

type UserModel struct {
	ID           string `gorm:"primaryKey;size:32"`
	Username     string `gorm:"size:100;not null"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:100;not null"`
	Role         string `gorm:"size:20;not null;index"`
	ClientID     string `gorm:"size:32;index"`
	Active       bool   `gorm:"not null;default:true;index"`
	Position     int64  `gorm:"autoIncrement;uniqueIndex"`
}

func (UserModel) TableName() string {
	return "users"
}
