package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securities_account/internal/models"
	"github.com/securities_account/pkg/db"
)

func newTestApplicationRepo(t *testing.T) ApplicationRepository {
	t.Helper()
	conn, err := db.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewGormApplicationRepository(conn)
}

func newApplication(userID int64, accountName string) *models.Application {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return &models.Application{
		UserID:      userID,
		AccountName: accountName,
		PhoneNumber: "0912345678",
		Address:     "台北市信義區市府路1號",
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestApplicationRepository_UniqueConstraints(t *testing.T) {
	repo := newTestApplicationRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newApplication(1, "first")))

	err := repo.Create(ctx, newApplication(1, "second"))
	assert.ErrorIs(t, err, ErrApplicationUserConflict)

	err = repo.Create(ctx, newApplication(2, "first"))
	assert.ErrorIs(t, err, ErrAccountNameConflict)

	require.NoError(t, repo.Create(ctx, newApplication(2, "second")))
}

func TestApplicationRepository_AccountNameTaken(t *testing.T) {
	repo := newTestApplicationRepo(t)
	ctx := context.Background()

	app := newApplication(1, "owned")
	require.NoError(t, repo.Create(ctx, app))

	taken, err := repo.AccountNameTaken(ctx, "owned", nil)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.AccountNameTaken(ctx, "owned", &app.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.AccountNameTaken(ctx, "free", nil)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestApplicationRepository_Mutate(t *testing.T) {
	repo := newTestApplicationRepo(t)
	ctx := context.Background()

	app := newApplication(1, "mutable")
	require.NoError(t, repo.Create(ctx, app))

	updated, err := repo.Mutate(ctx, app.ID, func(a *models.Application) error {
		a.Status = models.StatusApproved
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)

	stored, err := repo.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)
	assert.True(t, stored.CreatedAt.Equal(app.CreatedAt))

	// 回调出错时不写入
	sentinel := errors.New("stop")
	_, err = repo.Mutate(ctx, app.ID, func(a *models.Application) error {
		a.Status = models.StatusRejected
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	stored, err = repo.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)

	_, err = repo.Mutate(ctx, 999, func(a *models.Application) error { return nil })
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestApplicationRepository_MutateAccountNameConflict(t *testing.T) {
	repo := newTestApplicationRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newApplication(1, "alpha")))
	beta := newApplication(2, "beta")
	require.NoError(t, repo.Create(ctx, beta))

	_, err := repo.Mutate(ctx, beta.ID, func(a *models.Application) error {
		a.AccountName = "alpha"
		return nil
	})
	assert.ErrorIs(t, err, ErrAccountNameConflict)
}

func TestApplicationRepository_FindByIDsAndStatus(t *testing.T) {
	repo := newTestApplicationRepo(t)
	ctx := context.Background()

	pending := newApplication(1, "pending_one")
	approved := newApplication(2, "approved_one")
	approved.Status = models.StatusApproved
	require.NoError(t, repo.Create(ctx, pending))
	require.NoError(t, repo.Create(ctx, approved))

	apps, err := repo.FindByIDsAndStatus(ctx, []int64{pending.ID, approved.ID, 999}, models.StatusPending)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, pending.ID, apps[0].ID)

	apps, err = repo.FindByIDsAndStatus(ctx, nil, models.StatusPending)
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestApplicationRepository_GetByUserID(t *testing.T) {
	repo := newTestApplicationRepo(t)
	ctx := context.Background()

	app := newApplication(7, "by_user")
	require.NoError(t, repo.Create(ctx, app))

	found, err := repo.GetByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, app.ID, found.ID)

	_, err = repo.GetByUserID(ctx, 8)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
