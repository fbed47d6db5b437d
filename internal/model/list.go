package model

// List — список покупок пользователя.
type List struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ServerID      string    `gorm:"uniqueIndex;not null" json:"server_id"`
	Name          string    `gorm:"not null" json:"name"`
	OwnerID       string    `gorm:"not null;index" json:"owner_id"`
	MembersEmails EmailList `json:"members_emails"`

	// Время в миллисекундах Unix, выставляется репозиторием, а не gorm
	CreatedAt int64 `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt int64 `gorm:"autoUpdateTime:false" json:"updated_at"`
}
