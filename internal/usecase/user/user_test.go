package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/meeting-scheduler/internal/domain/appointment/mocks"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
	"github.com/BruksfildServices01/meeting-scheduler/internal/models"
)

func TestGetUserByPhone(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.Store)
	uc := NewGetUserByPhone(store)

	store.On("GetUserByPhone", ctx, "+919800000001").Return(&models.User{ID: 1, FirstName: "Asha"}, nil).Once()
	store.On("GetUserByPhone", ctx, "+919800000002").Return(nil, nil).Once()
	store.On("GetUserByPhone", ctx, "+919800000003").Return(nil, errors.New("db down")).Once()

	u, err := uc.Execute(ctx, "+919800000001")
	require.NoError(t, err)
	assert.Equal(t, "Asha", u.FirstName)

	u, err = uc.Execute(ctx, "+919800000002")
	require.NoError(t, err)
	assert.Nil(t, u)

	_, err = uc.Execute(ctx, "+919800000003")
	assert.Equal(t, httperr.KindStore, httperr.KindOf(err))

	_, err = uc.Execute(ctx, "")
	assert.Equal(t, CodeMissingPhone, httperr.CodeOf(err))
}

func TestAddUser(t *testing.T) {
	ctx := context.Background()

	t.Run("created", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("InsertUser", ctx, "+919800000001", "Asha", "Rao").Return(uint(7), nil).Once()

		id, err := NewAddUser(store, nil).Execute(ctx, AddUserInput{
			Phone:     " +919800000001 ",
			FirstName: "Asha",
			LastName:  "Rao",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(7), id)
	})

	t.Run("duplicate phone", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("InsertUser", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(uint(0), httperr.ErrBusiness(httperr.KindConflict, "duplicate")).Once()

		_, err := NewAddUser(store, nil).Execute(ctx, AddUserInput{Phone: "+919800000001", FirstName: "Asha"})
		assert.Equal(t, httperr.KindConflict, httperr.KindOf(err))
		assert.Equal(t, CodeUserAlreadyExists, httperr.CodeOf(err))
	})

	t.Run("missing fields", func(t *testing.T) {
		store := new(mocks.Store)
		uc := NewAddUser(store, nil)

		_, err := uc.Execute(ctx, AddUserInput{FirstName: "Asha"})
		assert.Equal(t, CodeMissingPhone, httperr.CodeOf(err))
		_, err = uc.Execute(ctx, AddUserInput{Phone: "+919800000001"})
		assert.Equal(t, CodeMissingName, httperr.CodeOf(err))
		store.AssertNotCalled(t, "InsertUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
