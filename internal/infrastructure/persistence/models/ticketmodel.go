package models

type TicketModel struct {
	ID          string `gorm:"primaryKey;size:32"`
	Reference   string `gorm:"uniqueIndex;size:20;not null"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"size:20;not null;index"`
	Priority    string `gorm:"size:20;not null;index"`
	ClientID    string `gorm:"size:32;index"`
	CreatedAt   int64  `gorm:"not null"`
	UpdatedAt   int64  `gorm:"not null"`
	Position    int64  `gorm:"autoIncrement;uniqueIndex"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID         string `gorm:"primaryKey;size:32"`
	TicketID   string `gorm:"size:32;not null;index"`
	UserID     string `gorm:"size:32;not null;index"`
	Content    string `gorm:"type:text;not null"`
	IsInternal bool   `gorm:"not null;default:false"`
	CreatedAt  int64  `gorm:"not null;index"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}

type AttachmentModel struct {
	ID        string `gorm:"primaryKey;size:32"`
	TicketID  string `gorm:"size:32;not null;index"`
	Name      string `gorm:"size:255;not null"`
	Size      int64  `gorm:"not null"`
	MimeType  string `gorm:"size:100"`
	URL       string `gorm:"size:500;not null"`
	CreatedAt int64  `gorm:"not null;index"`
}

func (AttachmentModel) TableName() string {
	return "ticket_attachments"
}
