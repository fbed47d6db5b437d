package repo

import (
	"ShoppingList/internal/model"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemRepository контракт доступа к позициям списков.
type ItemRepository interface {
	// ListAll возвращает все позиции; непустой listServerID фильтрует по list_server_id.
	ListAll(ctx context.Context, listServerID string) ([]model.Item, error)

	// Create присваивает server_id и метки времени и вставляет запись.
	Create(ctx context.Context, it *model.Item) error

	// Update перезаписывает изменяемые поля позиции. Возвращает число затронутых строк.
	Update(ctx context.Context, id int64, upd model.ItemUpdate) (int64, error)

	// Delete удаляет позицию по числовому id.
	Delete(ctx context.Context, id int64) (int64, error)
}

type itemRepo struct {
	db  *gorm.DB
	now func() time.Time
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db, now: time.Now}
}

func (r *itemRepo) ListAll(ctx context.Context, listServerID string) ([]model.Item, error) {
	q := r.db.WithContext(ctx).Model(&model.Item{})
	if listServerID != "" {
		q = q.Where("list_server_id = ?", listServerID)
	}
	items := []model.Item{}
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) Create(ctx context.Context, it *model.Item) error {
	now := r.now().UnixMilli()
	it.ID = 0
	it.ServerID = uuid.NewString()
	it.CreatedAt = now
	it.UpdatedAt = now
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *itemRepo) Update(ctx context.Context, id int64, upd model.ItemUpdate) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Item{}).Where("id = ?", id).Updates(map[string]any{
		"name":             upd.Name,
		"in_shopping_list": upd.InShoppingList,
		"quantity":         upd.Quantity,
		"image_url":        upd.ImageURL,
		"price":            upd.Price,
		"previous_price":   upd.PreviousPrice,
		"updated_at":       r.now().UnixMilli(),
	})
	return tx.RowsAffected, tx.Error
}

func (r *itemRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Item{})
	return tx.RowsAffected, tx.Error
}
