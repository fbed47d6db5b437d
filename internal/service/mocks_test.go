package service

import (
	"ShoppingList/internal/model"
	"ShoppingList/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// Моки для ListRepository и ItemRepository
type mockListRepo struct{ mock.Mock }

func (m *mockListRepo) ListAll(ctx context.Context, ownerID string) ([]model.List, error) {
	args := m.Called(ctx, ownerID)
	if v, ok := args.Get(0).([]model.List); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockListRepo) Create(ctx context.Context, l *model.List) error {
	return m.Called(ctx, l).Error(0)
}
func (m *mockListRepo) Update(ctx context.Context, id int64, name string, members []string) (int64, error) {
	args := m.Called(ctx, id, name, members)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockListRepo) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.ListRepository = (*mockListRepo)(nil)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) ListAll(ctx context.Context, listServerID string) ([]model.Item, error) {
	args := m.Called(ctx, listServerID)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) Create(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}
func (m *mockItemRepo) Update(ctx context.Context, id int64, upd model.ItemUpdate) (int64, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockItemRepo) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)
