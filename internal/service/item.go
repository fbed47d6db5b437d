package service

import (
	"ShoppingList/internal/model"
	"ShoppingList/internal/repo"
	"context"
	"fmt"

	"go.uber.org/zap"
)

const defaultQuantity = 1

// ItemService инкапсулирует работу с позициями списков.
type ItemService struct {
	repo   repo.ItemRepository
	logger *zap.SugaredLogger
}

func NewItemService(r repo.ItemRepository, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{repo: r, logger: logger}
}

// ItemInput поля позиции от клиента. nil в InShoppingList/Quantity — значение не передано.
type ItemInput struct {
	ListServerID   string
	Name           string
	InShoppingList *bool
	Quantity       *int
	ImageURL       *string
	Price          *float64
	PreviousPrice  *float64
	AddedByUID     *string
}

func (in ItemInput) inShoppingList() bool {
	if in.InShoppingList == nil {
		return true
	}
	return *in.InShoppingList
}

func (in ItemInput) quantity() int {
	if in.Quantity == nil {
		return defaultQuantity
	}
	return *in.Quantity
}

// List возвращает позиции; пустой listServerID — все позиции.
func (s *ItemService) List(ctx context.Context, listServerID string) ([]model.Item, error) {
	items, err := s.repo.ListAll(ctx, listServerID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Create создаёт позицию, подставляя in_shopping_list=true и quantity=1 по умолчанию.
func (s *ItemService) Create(ctx context.Context, in ItemInput) (*model.Item, error) {
	it := &model.Item{
		ListServerID:   in.ListServerID,
		Name:           in.Name,
		InShoppingList: in.inShoppingList(),
		Quantity:       in.quantity(),
		ImageURL:       in.ImageURL,
		Price:          in.Price,
		PreviousPrice:  in.PreviousPrice,
		AddedByUID:     in.AddedByUID,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return it, nil
}

// Update перезаписывает изменяемые поля с теми же значениями по умолчанию, что и Create:
// не переданный quantity становится 1, а не остаётся прежним.
func (s *ItemService) Update(ctx context.Context, id int64, in ItemInput) error {
	n, err := s.repo.Update(ctx, id, model.ItemUpdate{
		Name:           in.Name,
		InShoppingList: in.inShoppingList(),
		Quantity:       in.quantity(),
		ImageURL:       in.ImageURL,
		Price:          in.Price,
		PreviousPrice:  in.PreviousPrice,
	})
	if err != nil {
		return fmt.Errorf("update item %d: %w", id, err)
	}
	if n == 0 {
		s.logger.Debugw("Update item: no rows matched", "id", id)
	}
	return nil
}

// Delete удаляет позицию; повторное удаление не ошибка.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	if n == 0 {
		s.logger.Debugw("Delete item: no rows matched", "id", id)
	}
	return nil
}
