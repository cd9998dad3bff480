package uowmock

import (
	"context"

	"perfectbank-backend/internal/domain/uow"
)

// UoW runs fn directly against the provided repos, with no transaction
// semantics. Pair it with the repo mocks to test usecases that need a
// unit of work.
type UoW struct{ Repos uow.Repos }

func (u *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return fn(u.Repos)
}
