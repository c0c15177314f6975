package access

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waron-hospital/hr-backend-go/internal/domain/access"
	"github.com/waron-hospital/hr-backend-go/internal/domain/employee"
	"github.com/waron-hospital/hr-backend-go/internal/domain/user"
	"github.com/waron-hospital/hr-backend-go/internal/fixtures"
	"github.com/waron-hospital/hr-backend-go/internal/repository/memory"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func newAccessTestService() (access.AccessService, *memory.UserRepository) {
	userRepo := memory.NewUserRepository(fixtures.Users())
	employeeRepo := memory.NewEmployeeRepository(fixtures.Employees())
	return NewAccessService(userRepo, employeeRepo), userRepo
}

// linkedAccounts counts accounts referencing the given employee
func linkedAccounts(t *testing.T, userRepo *memory.UserRepository, employeeID string) int {
	users, err := userRepo.List(context.Background())
	require.NoError(t, err)

	count := 0
	for _, u := range users {
		if u.Linked() && *u.EmployeeID == employeeID {
			count++
		}
	}
	return count
}

// Test UpdateAccess granting access to an unlinked employee - a new account
// is minted from the directory record
func TestAccessService_UpdateAccess_GrantNew(t *testing.T) {
	ctx := context.Background()
	svc, userRepo := newAccessTestService()

	// EMP-002 "Budi Santoso" has no seed account
	users, err := svc.UpdateAccess(ctx, access.UpdateAccessRequest{
		EmployeeID: "EMP-002",
		Role:       strPtr("STAFF"),
	})

	require.NoError(t, err)
	assert.Len(t, users, 4)

	created, err := userRepo.GetByEmployeeID(ctx, "EMP-002")
	require.NoError(t, err)
	assert.Equal(t, "budi", created.Username)
	assert.Equal(t, "Budi Santoso", created.FullName)
	assert.Equal(t, user.RoleStaff, created.Role)
	assert.NotEmpty(t, created.ID)

	// The initial password follows the demo policy: username as password
	require.NotNil(t, created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*created.PasswordHash), []byte("budi")))
}

// Test username derivation for a multi-word first name - lower-cased with
// whitespace stripped
func TestAccessService_UpdateAccess_UsernameStripsWhitespace(t *testing.T) {
	ctx := context.Background()
	svc, userRepo := newAccessTestService()

	// EMP-006 first name is "Dr. Ryan"
	_, err := svc.UpdateAccess(ctx, access.UpdateAccessRequest{
		EmployeeID: "EMP-006",
		Role:       strPtr("STAFF"),
	})

	require.NoError(t, err)
	created, err := userRepo.GetByEmployeeID(ctx, "EMP-006")
	require.NoError(t, err)
	assert.Equal(t, "dr.ryan", created.Username)
}

// Test UpdateAccess on an already-linked employee - the role changes in
// place, no second account appears
func TestAccessService_UpdateAccess_UpdateInPlace(t *testing.T) {
	ctx := context.Background()
	svc, userRepo := newAccessTestService()

	// EMP-001 is linked to the seed staff account USR-003
	users, err := svc.UpdateAccess(ctx, access.UpdateAccessRequest{
		EmployeeID: "EMP-001",
		Role:       strPtr("HR_MANAGER"),
	})

	require.NoError(t, err)
	assert.Len(t, users, 3)
	assert.Equal(t, 1, linkedAccounts(t, userRepo, "EMP-001"))

	updated, err := userRepo.GetByID(ctx, "USR-003")
	require.NoError(t, err)
	assert.Equal(t, user.RoleHRManager, updated.Role)
	assert.Equal(t, "staff", updated.Username)
}

// Test UpdateAccess revoking a linked account
func TestAccessService_UpdateAccess_Revoke(t *testing.T) {
	ctx := context.Background()
	svc, userRepo := newAccessTestService()

	users, err := svc.UpdateAccess(ctx, access.UpdateAccessRequest{
		EmployeeID: "EMP-001",
		Role:       nil,
	})

	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, 0, linkedAccounts(t, userRepo, "EMP-001"))

	_, err = userRepo.GetByID(ctx, "USR-003")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

// Test that revoking an employee with no account is a no-op, not an error
func TestAccessService_UpdateAccess_RevokeUnlinked(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccessTestService()

	users, err := svc.UpdateAccess(ctx, access.UpdateAccessRequest{
		EmployeeID: "EMP-002",
		Role:       nil,
	})

	require.NoError(t, err)
	assert.Len(t, users, 3)
}

// Test granting access to an employee ID not in the directory
func TestAccessService_UpdateAccess_EmployeeNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccessTestService()

	_, err := svc.UpdateAccess(ctx, access.UpdateAccessRequest{
		EmployeeID: "EMP-999",
		Role:       strPtr("STAFF"),
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

// Test request validation - unknown roles are rejected before any mutation
func TestAccessService_UpdateAccess_InvalidRole(t *testing.T) {
	ctx := context.Background()
	svc, userRepo := newAccessTestService()

	_, err := svc.UpdateAccess(ctx, access.UpdateAccessRequest{
		EmployeeID: "EMP-002",
		Role:       strPtr("SUPERUSER"),
	})

	assert.Error(t, err)
	assert.Equal(t, 0, linkedAccounts(t, userRepo, "EMP-002"))
}

// Test the one-account-per-employee invariant across grant then re-grant
func TestAccessService_UpdateAccess_OneAccountPerEmployee(t *testing.T) {
	ctx := context.Background()
	svc, userRepo := newAccessTestService()

	_, err := svc.UpdateAccess(ctx, access.UpdateAccessRequest{EmployeeID: "EMP-003", Role: strPtr("STAFF")})
	require.NoError(t, err)
	_, err = svc.UpdateAccess(ctx, access.UpdateAccessRequest{EmployeeID: "EMP-003", Role: strPtr("ADMIN")})
	require.NoError(t, err)

	assert.Equal(t, 1, linkedAccounts(t, userRepo, "EMP-003"))
	linked, err := userRepo.GetByEmployeeID(ctx, "EMP-003")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, linked.Role)
}

// sessionContext builds a ctx carrying verified claims for the given account
func sessionContext(t *testing.T, userID string) context.Context {
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": userID, "type": "access"})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// Test Profile for a linked account - the employee record rides along
func TestAccessService_Profile_Linked(t *testing.T) {
	svc, _ := newAccessTestService()

	profile, err := svc.Profile(sessionContext(t, "USR-003"))

	require.NoError(t, err)
	assert.Equal(t, "staff", profile.User.Username)
	require.NotNil(t, profile.Employee)
	assert.Equal(t, "EMP-001", profile.Employee.ID)
	assert.Equal(t, "Sarah Wijaya", profile.Employee.FullName())
}

// Test Profile for the unlinked admin account
func TestAccessService_Profile_Unlinked(t *testing.T) {
	svc, _ := newAccessTestService()

	profile, err := svc.Profile(sessionContext(t, "USR-001"))

	require.NoError(t, err)
	assert.Equal(t, "admin", profile.User.Username)
	assert.Nil(t, profile.Employee)
}

// Test Profile with no claims in the context
func TestAccessService_Profile_NoSession(t *testing.T) {
	svc, _ := newAccessTestService()

	_, err := svc.Profile(context.Background())

	assert.Error(t, err)
}

// Test ListAccounts returns the directory without password material
func TestAccessService_ListAccounts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccessTestService()

	users, err := svc.ListAccounts(ctx)

	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "USR-001", users[0].ID)
	assert.Equal(t, "admin", users[0].Username)
}
