package handlers_test

import (
	"ShoppingList/internal/handlers"
	"ShoppingList/internal/model"
	"ShoppingList/internal/repo"
	"ShoppingList/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Local light mocks
type hMockListRepo struct{ mock.Mock }

func (m *hMockListRepo) ListAll(ctx context.Context, ownerID string) ([]model.List, error) {
	args := m.Called(ctx, ownerID)
	if v, ok := args.Get(0).([]model.List); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockListRepo) Create(ctx context.Context, l *model.List) error {
	return m.Called(ctx, l).Error(0)
}
func (m *hMockListRepo) Update(ctx context.Context, id int64, name string, members []string) (int64, error) {
	args := m.Called(ctx, id, name, members)
	return args.Get(0).(int64), args.Error(1)
}
func (m *hMockListRepo) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.ListRepository = (*hMockListRepo)(nil)

type hMockItemRepo struct{ mock.Mock }

func (m *hMockItemRepo) ListAll(ctx context.Context, listServerID string) ([]model.Item, error) {
	args := m.Called(ctx, listServerID)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) Create(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}
func (m *hMockItemRepo) Update(ctx context.Context, id int64, upd model.ItemUpdate) (int64, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(int64), args.Error(1)
}
func (m *hMockItemRepo) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.ItemRepository = (*hMockItemRepo)(nil)

// newMockRouter роутер поверх моков репозиториев
func newMockRouter(t *testing.T) (http.Handler, *hMockListRepo, *hMockItemRepo) {
	t.Helper()
	logger := zap.NewNop().Sugar()
	lr := &hMockListRepo{}
	ir := &hMockItemRepo{}

	h := handlers.NewHandler(service.NewListService(lr, logger), service.NewItemService(ir, logger), logger)
	return h.Router, lr, ir
}

// newDBRouter роутер поверх настоящей in-memory SQLite
func newDBRouter(t *testing.T) http.Handler {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repo.InitDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.CloseDB(db) })

	logger := zap.NewNop().Sugar()
	h := handlers.NewHandler(
		service.NewListService(repo.NewListRepository(db), logger),
		service.NewItemService(repo.NewItemRepository(db), logger),
		logger,
	)
	return h.Router
}

// do выполняет запрос и возвращает рекордер
func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&v), rr.Body.String())
	return v
}
