package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Garimajunejaa/jobportall/internal/common"
	"github.com/Garimajunejaa/jobportall/internal/dtos"
	"github.com/Garimajunejaa/jobportall/internal/models"
)

func newUserService(t *testing.T) (*UserService, *fakeUploader) {
	t.Helper()
	uploader := &fakeUploader{}
	return NewUserService(newTestDB(t), testTokens(), uploader, quietLogger()), uploader
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dtos.RegisterRequest{
		Fullname: "Asha Rao",
		Email:    "a@x.com",
		Password: "pw123456",
		Role:     "student",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEqual(t, "pw123456", user.Password, "password must be stored hashed")

	token, loggedIn, err := svc.Login(ctx, &dtos.LoginRequest{
		Email:    "a@x.com",
		Password: "pw123456",
		Role:     "student",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)

	// The serialized user never carries the password hash.
	payload, err := json.Marshal(loggedIn)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "password")
	assert.NotContains(t, string(payload), loggedIn.Password)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dtos.RegisterRequest{
		Fullname: "First", Email: "dup@x.com", Password: "pw123456", Role: "student",
	}, nil)
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dtos.RegisterRequest{
		Fullname: "Second", Email: "DUP@X.com", Password: "pw123456", Role: "recruiter",
	}, nil)
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeConflict))
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Register(context.Background(), &dtos.RegisterRequest{
		Fullname: "X", Email: "x@x.com", Password: "pw123456", Role: "admin",
	}, nil)
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeValidation))
}

func TestLoginFailures(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dtos.RegisterRequest{
		Fullname: "Asha", Email: "a@x.com", Password: "pw123456", Role: "student",
	}, nil)
	require.NoError(t, err)

	cases := []struct {
		name string
		req  dtos.LoginRequest
	}{
		{"unknown email", dtos.LoginRequest{Email: "nobody@x.com", Password: "pw123456", Role: "student"}},
		{"wrong password", dtos.LoginRequest{Email: "a@x.com", Password: "wrong-pw", Role: "student"}},
		{"role mismatch", dtos.LoginRequest{Email: "a@x.com", Password: "pw123456", Role: "recruiter"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, &tc.req)
			require.Error(t, err)
			assert.True(t, common.Is(err, common.CodeUnauthorized))
		})
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	user := createUser(t, svc.DB, "p@x.com", models.RoleStudent)

	updated, err := svc.UpdateProfile(ctx, user.ID, &dtos.UpdateProfileRequest{
		Bio:    "Backend engineer",
		Skills: "go, postgres , docker",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Backend engineer", updated.Profile.Bio)
	assert.Equal(t, []string{"go", "postgres", "docker"}, []string(updated.Profile.Skills))
	// Untouched fields survive.
	assert.Equal(t, "Test User", updated.Fullname)
	assert.Equal(t, "p@x.com", updated.Email)
	assert.Equal(t, models.RoleStudent, updated.Role)
}

func TestUpdateProfileUserNotFound(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.UpdateProfile(context.Background(), 9999, &dtos.UpdateProfileRequest{Bio: "x"}, nil)
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeNotFound))
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	createUser(t, svc.DB, "taken@x.com", models.RoleStudent)
	user := createUser(t, svc.DB, "mine@x.com", models.RoleStudent)

	_, err := svc.UpdateProfile(ctx, user.ID, &dtos.UpdateProfileRequest{Email: "Taken@x.com"}, nil)
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeConflict))
}

func TestUpdateProfileEmailCheckSurfacesDBError(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	user := createUser(t, svc.DB, "mine@x.com", models.RoleStudent)

	// Fail the second query of the update, the free-email lookup. A broken
	// lookup must be reported, not read as "email free".
	var queries int
	require.NoError(t, svc.DB.Callback().Query().Before("gorm:query").Register("fail_email_lookup", func(tx *gorm.DB) {
		queries++
		if queries == 2 {
			tx.AddError(errors.New("connection reset"))
		}
	}))
	_, err := svc.UpdateProfile(ctx, user.ID, &dtos.UpdateProfileRequest{Email: "new@x.com"}, nil)
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeInternal))

	require.NoError(t, svc.DB.Callback().Query().Remove("fail_email_lookup"))
	var reloaded models.User
	require.NoError(t, svc.DB.First(&reloaded, user.ID).Error)
	assert.Equal(t, "mine@x.com", reloaded.Email, "the email must stay untouched")
}
