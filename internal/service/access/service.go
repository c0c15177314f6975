package access

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/waron-hospital/hr-backend-go/internal/domain/access"
	"github.com/waron-hospital/hr-backend-go/internal/domain/employee"
	"github.com/waron-hospital/hr-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type accessServiceImpl struct {
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
}

func NewAccessService(userRepo user.UserRepository, employeeRepo employee.EmployeeRepository) access.AccessService {
	return &accessServiceImpl{
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
	}
}

// UpdateAccess implements access.AccessService.
//
// Three branches, all keeping the one-account-per-employee invariant:
//   - nil role revokes the linked account if one exists, else no-op
//   - an existing linked account gets its role updated in place
//   - otherwise a new account is minted from the employee record
func (s *accessServiceImpl) UpdateAccess(ctx context.Context, req access.UpdateAccessRequest) ([]user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmployeeID(ctx, req.EmployeeID)
	found := err == nil
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up linked account: %w", err)
	}

	switch {
	case req.Role == nil:
		// Revoke. Only employee-linked accounts are reachable here; the
		// unlinked seed admin cannot be revoked through this path.
		if found {
			if err := s.userRepo.Delete(ctx, existing.ID); err != nil {
				return nil, fmt.Errorf("failed to revoke account: %w", err)
			}
		}

	case found:
		if err := s.userRepo.UpdateRole(ctx, existing.ID, user.Role(*req.Role)); err != nil {
			return nil, fmt.Errorf("failed to update role: %w", err)
		}

	default:
		emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			// Granting access to an unknown employee is a caller bug;
			// surface it rather than silently skipping the grant.
			return nil, err
		}

		username := usernameFor(emp)
		// Minted accounts follow the demo credential policy: the initial
		// password is the username.
		hash, err := bcrypt.GenerateFromPassword([]byte(username), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash initial password: %w", err)
		}
		passwordHash := string(hash)

		newUser := user.User{
			ID:           "USR-" + uuid.NewString(),
			Username:     username,
			FullName:     emp.FullName(),
			Role:         user.Role(*req.Role),
			AvatarURL:    emp.AvatarURL,
			EmployeeID:   &emp.ID,
			PasswordHash: &passwordHash,
		}
		if _, err := s.userRepo.Create(ctx, newUser); err != nil {
			return nil, fmt.Errorf("failed to create account: %w", err)
		}
	}

	return s.ListAccounts(ctx)
}

// ListAccounts implements access.AccessService.
func (s *accessServiceImpl) ListAccounts(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return user.ToResponses(users), nil
}

// Profile implements access.AccessService.
func (s *accessServiceImpl) Profile(ctx context.Context) (access.ProfileResponse, error) {
	viewer, err := access.CurrentUser(ctx, s.userRepo)
	if err != nil {
		return access.ProfileResponse{}, fmt.Errorf("failed to resolve session user: %w", err)
	}

	profile := access.ProfileResponse{User: user.ToResponse(viewer)}
	if viewer.Linked() {
		emp, err := s.employeeRepo.GetByID(ctx, *viewer.EmployeeID)
		if err == nil {
			profile.Employee = &emp
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return access.ProfileResponse{}, fmt.Errorf("failed to load linked employee: %w", err)
		}
		// A dangling link renders as an unlinked profile.
	}
	return profile, nil
}

// usernameFor derives the login name from the employee's first name,
// lower-cased with whitespace stripped. Two employees sharing a first name
// produce the same username; resolving that collision is an open product
// decision and not handled here.
func usernameFor(emp employee.Employee) string {
	return strings.Join(strings.Fields(strings.ToLower(emp.FirstName)), "")
}
