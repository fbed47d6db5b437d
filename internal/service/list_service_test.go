package service

import (
	"ShoppingList/internal/model"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestListService_CreateNormalizesMembers(t *testing.T) {
	lr := new(mockListRepo)
	svc := NewListService(lr, zap.NewNop().Sugar())

	lr.On("Create", mock.Anything, mock.MatchedBy(func(l *model.List) bool {
		return l.Name == "Groceries" && l.OwnerID == "u1" && l.MembersEmails != nil && len(l.MembersEmails) == 0
	})).Run(func(args mock.Arguments) {
		l := args.Get(1).(*model.List)
		l.ID = 1
		l.ServerID = "sid"
	}).Return(nil).Once()

	l, err := svc.Create(context.Background(), ListInput{Name: "Groceries", OwnerID: "u1"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), l.ID)
	assert.Equal(t, "sid", l.ServerID)
	lr.AssertExpectations(t)
}

func TestListService_CreateError(t *testing.T) {
	lr := new(mockListRepo)
	svc := NewListService(lr, zap.NewNop().Sugar())
	dbErr := errors.New("db down")

	lr.On("Create", mock.Anything, mock.Anything).Return(dbErr).Once()
	l, err := svc.Create(context.Background(), ListInput{Name: "n", OwnerID: "u"})
	assert.Nil(t, l)
	assert.ErrorIs(t, err, dbErr)
}

func TestListService_UpdateIgnoresMissingRow(t *testing.T) {
	lr := new(mockListRepo)
	svc := NewListService(lr, zap.NewNop().Sugar())
	ctx := context.Background()

	lr.On("Update", mock.Anything, int64(5), "New", []string{}).Return(int64(0), nil).Once()
	assert.NoError(t, svc.Update(ctx, 5, ListInput{Name: "New", OwnerID: "ignored"}))

	lr.On("Update", mock.Anything, int64(6), "New", []string{"a@x.com"}).Return(int64(0), errors.New("db")).Once()
	assert.Error(t, svc.Update(ctx, 6, ListInput{Name: "New", MembersEmails: []string{"a@x.com"}}))
	lr.AssertExpectations(t)
}

func TestListService_DeleteIdempotent(t *testing.T) {
	lr := new(mockListRepo)
	svc := NewListService(lr, zap.NewNop().Sugar())
	ctx := context.Background()

	lr.On("Delete", mock.Anything, int64(3)).Return(int64(1), nil).Once()
	lr.On("Delete", mock.Anything, int64(3)).Return(int64(0), nil).Once()

	assert.NoError(t, svc.Delete(ctx, 3))
	assert.NoError(t, svc.Delete(ctx, 3))
	lr.AssertExpectations(t)
}

func TestListService_ListPassesFilter(t *testing.T) {
	lr := new(mockListRepo)
	svc := NewListService(lr, zap.NewNop().Sugar())

	lr.On("ListAll", mock.Anything, "u1").Return([]model.List{{ID: 1, OwnerID: "u1"}}, nil).Once()
	lr.On("ListAll", mock.Anything, "").Return(nil, errors.New("db")).Once()

	got, err := svc.List(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.List(context.Background(), "")
	assert.Error(t, err)
}
