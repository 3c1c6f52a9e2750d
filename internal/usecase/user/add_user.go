package user

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/meeting-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
)

type AddUserInput struct {
	Phone     string
	FirstName string
	LastName  string
}

type AddUser struct {
	store domain.Store
	audit *audit.Dispatcher
}

func NewAddUser(
	store domain.Store,
	audit *audit.Dispatcher,
) *AddUser {
	return &AddUser{
		store: store,
		audit: audit,
	}
}

func (uc *AddUser) Execute(
	ctx context.Context,
	in AddUserInput,
) (uint, error) {

	in.Phone = strings.TrimSpace(in.Phone)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if in.Phone == "" {
		return 0, httperr.InvalidInput(CodeMissingPhone)
	}
	if in.FirstName == "" {
		return 0, httperr.InvalidInput(CodeMissingName)
	}

	id, err := uc.store.InsertUser(ctx, in.Phone, in.FirstName, in.LastName)
	if err != nil {
		if httperr.IsKind(err, httperr.KindConflict) {
			return 0, httperr.Wrap(httperr.KindConflict, CodeUserAlreadyExists, err)
		}
		return 0, httperr.Wrap(httperr.KindStore, CodeStoreFailure, err)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "user_created",
		Entity:   "user",
		EntityID: &id,
	})

	return id, nil
}
