package access

import (
	"context"

	"github.com/waron-hospital/hr-backend-go/internal/domain/user"
)

type AccessService interface {
	// UpdateAccess applies the grant/update/revoke described by req and
	// returns the resulting account directory.
	UpdateAccess(ctx context.Context, req UpdateAccessRequest) ([]user.UserResponse, error)
	// ListAccounts returns the full account directory.
	ListAccounts(ctx context.Context) ([]user.UserResponse, error)
	// Profile returns the session account and its linked employee record,
	// when one exists.
	Profile(ctx context.Context) (ProfileResponse, error)
}
