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

	"github.com/amrutdhara/orders-api/internal/domains/orders/domain"
	"github.com/amrutdhara/orders-api/internal/domains/orders/ports"
	"github.com/amrutdhara/orders-api/internal/platform/migrations"
)

func setupOrdersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("orders_test"),
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

func testOrder(ownerID string) *domain.Order {
	return &domain.Order{
		OwnerID:         ownerID,
		CompanyName:     "Acme Traders",
		ContactName:     "Ravi Kumar",
		MobileNumber:    "9876543210",
		BottleType:      "500ml",
		Quantity:        25,
		DeliveryAddress: "14 MG Road, Pune",
		City:            "Pune",
		State:           "Maharashtra",
		Pincode:         "411001",
		DeliveryDate:    "2026-09-15",
		Status:          domain.StatusPending,
	}
}

func TestRepository_CreateAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Create(ctx, testOrder("owner-1"))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, domain.StatusPending, saved.Status)
	assert.False(t, saved.CreatedAt.IsZero())

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, fetched.ID)
	assert.Equal(t, "Acme Traders", fetched.CompanyName)
	assert.Equal(t, "2026-09-15", fetched.DeliveryDate)
	assert.Equal(t, "411001", fetched.Pincode)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	_, err := repo.GetByID(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_ListByOwner(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, testOrder("owner-1"))
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := repo.Create(ctx, testOrder("owner-1"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testOrder("owner-2"))
	require.NoError(t, err)

	list, err := repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	empty, err := repo.ListByOwner(ctx, "owner-3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
