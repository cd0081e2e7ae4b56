package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/securities_account/internal/models"
	"github.com/securities_account/internal/repositories"
	"github.com/securities_account/pkg/db"
)

// fakeClock 每次调用前进一分钟，便于断言时间戳先后
type fakeClock struct {
	mu      sync.Mutex
	current time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(time.Minute)
	return c.current
}

type testEnv struct {
	db       *gorm.DB
	appRepo  repositories.ApplicationRepository
	userRepo repositories.UserRepository
	service  *applicationService
	accounts AccountService
	clock    *fakeClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	conn, err := db.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	clock := newFakeClock()
	appRepo := repositories.NewGormApplicationRepository(conn)
	userRepo := repositories.NewGormUserRepository(conn)
	return &testEnv{
		db:       conn,
		appRepo:  appRepo,
		userRepo: userRepo,
		service:  newApplicationService(appRepo, zap.NewNop(), clock.Now),
		accounts: NewAccountService(userRepo, zap.NewNop()),
		clock:    clock,
	}
}

func (e *testEnv) createUser(t *testing.T, username, role string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		FullName:     username,
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, e.userRepo.Create(context.Background(), user))
	return user
}

func validFields(accountName string) models.ApplicationFields {
	return models.ApplicationFields{
		AccountName: accountName,
		PhoneNumber: "0912-345-678",
		Address:     "台北市信義區市府路1號",
	}
}
