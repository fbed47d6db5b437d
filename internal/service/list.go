package service

import (
	"ShoppingList/internal/model"
	"ShoppingList/internal/repo"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ListService инкапсулирует работу со списками покупок.
type ListService struct {
	repo   repo.ListRepository
	logger *zap.SugaredLogger
}

func NewListService(r repo.ListRepository, logger *zap.SugaredLogger) *ListService {
	return &ListService{repo: r, logger: logger}
}

// ListInput поля, которые клиент передаёт при создании и изменении списка.
type ListInput struct {
	Name          string
	OwnerID       string
	MembersEmails []string
}

// List возвращает списки пользователя; пустой userID — все списки.
func (s *ListService) List(ctx context.Context, userID string) ([]model.List, error) {
	lists, err := s.repo.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	return lists, nil
}

// Create создаёт список; server_id и метки времени назначает репозиторий.
func (s *ListService) Create(ctx context.Context, in ListInput) (*model.List, error) {
	l := &model.List{
		Name:          in.Name,
		OwnerID:       in.OwnerID,
		MembersEmails: membersOrEmpty(in.MembersEmails),
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}
	return l, nil
}

// Update меняет имя и участников. owner_id не меняется никогда.
// Отсутствующий id не считается ошибкой.
func (s *ListService) Update(ctx context.Context, id int64, in ListInput) error {
	n, err := s.repo.Update(ctx, id, in.Name, membersOrEmpty(in.MembersEmails))
	if err != nil {
		return fmt.Errorf("update list %d: %w", id, err)
	}
	if n == 0 {
		s.logger.Debugw("Update list: no rows matched", "id", id)
	}
	return nil
}

// Delete удаляет список. Позиции списка остаются; повторное удаление не ошибка.
func (s *ListService) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete list %d: %w", id, err)
	}
	if n == 0 {
		s.logger.Debugw("Delete list: no rows matched", "id", id)
	}
	return nil
}

func membersOrEmpty(m []string) []string {
	if m == nil {
		return []string{}
	}
	return m
}
