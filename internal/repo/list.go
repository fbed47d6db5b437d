package repo

import (
	"ShoppingList/internal/model"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListRepository контракт доступа к спискам покупок.
type ListRepository interface {
	// ListAll возвращает все списки; непустой ownerID фильтрует по owner_id.
	ListAll(ctx context.Context, ownerID string) ([]model.List, error)

	// Create присваивает server_id и метки времени и вставляет запись.
	Create(ctx context.Context, l *model.List) error

	// Update меняет name, members_emails и updated_at. Возвращает число затронутых строк.
	Update(ctx context.Context, id int64, name string, members []string) (int64, error)

	// Delete удаляет список по числовому id. Позиции списка не трогаются.
	Delete(ctx context.Context, id int64) (int64, error)
}

type listRepo struct {
	db  *gorm.DB
	now func() time.Time
}

// NewListRepository создаёт реализацию репозитория для List.
func NewListRepository(db *gorm.DB) ListRepository {
	return &listRepo{db: db, now: time.Now}
}

func (r *listRepo) ListAll(ctx context.Context, ownerID string) ([]model.List, error) {
	q := r.db.WithContext(ctx).Model(&model.List{})
	if ownerID != "" {
		q = q.Where("owner_id = ?", ownerID)
	}
	lists := []model.List{}
	if err := q.Order("id ASC").Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *listRepo) Create(ctx context.Context, l *model.List) error {
	now := r.now().UnixMilli()
	l.ID = 0
	l.ServerID = uuid.NewString()
	l.CreatedAt = now
	l.UpdatedAt = now
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *listRepo) Update(ctx context.Context, id int64, name string, members []string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.List{}).Where("id = ?", id).Updates(map[string]any{
		"name":           name,
		"members_emails": model.EmailList(members),
		"updated_at":     r.now().UnixMilli(),
	})
	return tx.RowsAffected, tx.Error
}

func (r *listRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.List{})
	return tx.RowsAffected, tx.Error
}
