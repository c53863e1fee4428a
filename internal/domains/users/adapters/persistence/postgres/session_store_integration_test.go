//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/amrutdhara/orders-api/internal/domains/users/domain"
	"github.com/amrutdhara/orders-api/internal/domains/users/ports"
	"github.com/amrutdhara/orders-api/internal/platform/migrations"
)

func setupUsersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("users_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestRepository_SaveAndLookup(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupUsersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	user, err := domain.NewUser("user-1", "owner@acme.test", "secret1")
	require.NoError(t, err)
	user.CompanyName = "Acme Traders"

	saved, err := repo.Save(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "user-1", saved.ID)

	byID, err := repo.GetByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "owner@acme.test", byID.Email)
	assert.Equal(t, "Acme Traders", byID.CompanyName)

	byEmail, err := repo.GetByEmail(ctx, "owner@acme.test")
	require.NoError(t, err)
	assert.Equal(t, "user-1", byEmail.ID)

	_, err = repo.GetByEmail(ctx, "nobody@acme.test")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestSessionStore_SaveGetDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupUsersPostgresContainer(t)
	defer cleanup()

	store := NewSessionStore(db, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "token-1", "user-1"))

	userID, err := store.Get(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	require.NoError(t, store.Delete(ctx, "token-1"))
	_, err = store.Get(ctx, "token-1")
	assert.ErrorIs(t, err, ports.ErrNoSession)
}

func TestSessionStore_ExpiredSessionsAreInvisible(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupUsersPostgresContainer(t)
	defer cleanup()

	store := NewSessionStore(db, time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "token-1", "user-1"))
	time.Sleep(20 * time.Millisecond)

	_, err := store.Get(ctx, "token-1")
	assert.ErrorIs(t, err, ports.ErrNoSession)

	require.NoError(t, store.PurgeExpired(ctx))
	var count int64
	require.NoError(t, db.Table("user_sessions").Count(&count).Error)
	assert.Zero(t, count)
}
