package user

import (
	"context"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
	"github.com/BruksfildServices01/meeting-scheduler/internal/models"
)

const (
	CodeMissingPhone      = "missing_phone"
	CodeMissingName       = "missing_first_name"
	CodeUserNotFound      = "user_not_found"
	CodeUserAlreadyExists = "user_already_exists"
	CodeStoreFailure      = "store_failure"
)

type GetUserByPhone struct {
	store domain.Store
}

func NewGetUserByPhone(store domain.Store) *GetUserByPhone {
	return &GetUserByPhone{store: store}
}

// Execute returns nil without error when no user has the phone number.
func (uc *GetUserByPhone) Execute(
	ctx context.Context,
	phone string,
) (*models.User, error) {

	if phone == "" {
		return nil, httperr.InvalidInput(CodeMissingPhone)
	}

	u, err := uc.store.GetUserByPhone(ctx, phone)
	if err != nil {
		return nil, httperr.Wrap(httperr.KindStore, CodeStoreFailure, err)
	}
	return u, nil
}
