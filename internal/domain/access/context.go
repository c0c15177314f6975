package access

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/waron-hospital/hr-backend-go/internal/domain/user"
)

// CurrentUser resolves the session account from the JWT claims in ctx. The
// directory is authoritative: role changes granted after the token was issued
// take effect on the next request, not the next login.
func CurrentUser(ctx context.Context, users user.UserRepository) (user.User, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.User{}, fmt.Errorf("user_id not found in token")
	}

	return users.GetByID(ctx, userID)
}
