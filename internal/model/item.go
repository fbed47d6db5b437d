package model

// Item — позиция в списке покупок.
type Item struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ServerID string `gorm:"uniqueIndex;not null" json:"server_id"`

	// Логическая ссылка на lists.server_id, без внешнего ключа
	ListServerID string `gorm:"index" json:"list_server_id"`

	Name           string   `gorm:"not null" json:"name"`
	InShoppingList bool     `json:"in_shopping_list"`
	Quantity       int      `json:"quantity"`
	ImageURL       *string  `json:"image_url"`
	Price          *float64 `json:"price"`
	PreviousPrice  *float64 `json:"previous_price"`
	AddedByUID     *string  `gorm:"column:added_by_uid" json:"added_by_uid"`

	CreatedAt int64 `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt int64 `gorm:"autoUpdateTime:false" json:"updated_at"`
}

// ItemUpdate изменяемые поля Item. list_server_id и added_by_uid после создания не меняются.
type ItemUpdate struct {
	Name           string
	InShoppingList bool
	Quantity       int
	ImageURL       *string
	Price          *float64
	PreviousPrice  *float64
}
