package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securities_account/internal/models"
	"github.com/securities_account/internal/repositories"
)

func validRegistration(username string) RegisterInput {
	return RegisterInput{
		Username:        username,
		Email:           username + "@example.com",
		FullName:        "王小明",
		Password:        "s3cret-pass",
		PasswordConfirm: "s3cret-pass",
	}
}

func TestRegister_CreatesApplicant(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.accounts.Register(ctx, validRegistration("newbie"))
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleApplicant, user.Role)
	assert.False(t, user.IsReviewer())
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

	authed, err := env.accounts.Authenticate(ctx, "newbie", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	_, err = env.accounts.Authenticate(ctx, "newbie", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.accounts.Authenticate(ctx, "nobody", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_CollectsFieldErrors(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.accounts.Register(context.Background(), RegisterInput{
		Username:        "ab",
		Email:           "not-an-email",
		FullName:        strings.Repeat("名", 31),
		Password:        "12345678",
		PasswordConfirm: "87654321",
	})
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))

	fields := verrs.Fields()
	assert.Contains(t, fields, FieldUsername)
	assert.Contains(t, fields, FieldEmail)
	assert.Contains(t, fields, FieldFullName)
	assert.Contains(t, fields, FieldPassword)
	assert.Contains(t, fields, FieldPassword2)
}

func TestRegister_PasswordMinimumCountsCharacters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// 三个汉字加两个字母共 11 字节，但只有 5 个字符
	input := validRegistration("short_pw")
	input.Password = "密碼密ab"
	input.PasswordConfirm = input.Password
	_, err := env.accounts.Register(ctx, input)
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.Fields(), FieldPassword)

	input = validRegistration("long_pw")
	input.Password = "密碼密碼密碼密碼"
	input.PasswordConfirm = input.Password
	_, err = env.accounts.Register(ctx, input)
	assert.NoError(t, err)
}

func TestRegister_DuplicateUsernameAndEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.accounts.Register(ctx, validRegistration("taken"))
	require.NoError(t, err)

	input := validRegistration("taken")
	_, err = env.accounts.Register(ctx, input)
	assert.ErrorIs(t, err, ErrUniqueness)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.Fields(), FieldUsername)
	assert.Contains(t, verrs.Fields(), FieldEmail)
}

func TestCreateReviewer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	reviewer, err := env.accounts.CreateReviewer(ctx, "admin", "admin@example.com", "admin123")
	require.NoError(t, err)
	assert.True(t, reviewer.IsReviewer())

	_, err = env.accounts.CreateReviewer(ctx, "admin", "other@example.com", "admin123")
	assert.ErrorIs(t, err, repositories.ErrUsernameExists)
}

func TestDeleteUser_ReviewerReferenceCleared(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	applicant := env.createUser(t, "alice", models.RoleApplicant)
	reviewer := env.createUser(t, "reviewer1", models.RoleReviewer)

	app, err := env.service.Create(ctx, applicant.ID, validFields("alice_acct"))
	require.NoError(t, err)
	_, err = env.service.SetStatus(ctx, app.ID, models.StatusApproved, reviewer.ID, models.ReviewOptions{})
	require.NoError(t, err)

	require.NoError(t, env.accounts.DeleteUser(ctx, reviewer.ID))

	stored, err := env.service.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ReviewedByID)
	assert.NotNil(t, stored.ReviewedAt, "审核时间保留")
	assert.Equal(t, models.StatusApproved, stored.Status)

	err = env.accounts.DeleteUser(ctx, reviewer.ID)
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
}

func TestDeleteUser_ApplicantApplicationRemoved(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	applicant := env.createUser(t, "alice", models.RoleApplicant)

	app, err := env.service.Create(ctx, applicant.ID, validFields("alice_acct"))
	require.NoError(t, err)

	require.NoError(t, env.accounts.DeleteUser(ctx, applicant.ID))

	_, err = env.service.GetByID(ctx, app.ID)
	assert.ErrorIs(t, err, ErrApplicationNotFound)

	// 名称随申请一起释放
	_, err = env.service.Validator().ValidateAccountName(ctx, "alice_acct", nil)
	assert.NoError(t, err)
}
