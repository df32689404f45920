package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lexintake/intake-service/internal/domain/entities"
)

// newTestDB opens an isolated in-memory sqlite database with just the tables
// the upsert paths touch.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	stmts := []string{
		`CREATE TABLE law_firms (
			id text PRIMARY KEY, name text NOT NULL, address text, phone text,
			email text, website text, created_at datetime, updated_at datetime)`,
		`CREATE TABLE clients (
			id text PRIMARY KEY, law_firm_id text NOT NULL, first_name text,
			last_name text, date_of_birth datetime, phone text, email text,
			address text, ssn_last_four text, created_at datetime, updated_at datetime)`,
		`CREATE TABLE other_parties (
			id text PRIMARY KEY, case_id text NOT NULL, first_name text,
			last_name text, company_name text, role text, phone text, email text,
			address text, created_at datetime, updated_at datetime)`,
	}
	for _, stmt := range stmts {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func TestLawFirmGetOrCreateByNameIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewLawFirmRepository(db)
	ctx := context.Background()

	first, err := repo.GetOrCreateByName(ctx, "Henderson & Associates")
	require.NoError(t, err)
	second, err := repo.GetOrCreateByName(ctx, "Henderson & Associates")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&entities.LawFirm{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestClientGetOrCreateIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()
	firmID := uuid.New()

	first, created, err := repo.GetOrCreate(ctx, firmID, "Jane", "Smith")
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := repo.GetOrCreate(ctx, firmID, "Jane", "Smith")
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&entities.Client{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestOtherPartyGetOrCreateIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewOtherPartyRepository(db)
	ctx := context.Background()
	caseID := uuid.New()

	party := func() *entities.OtherParty {
		return &entities.OtherParty{
			ID:        uuid.New(),
			CaseID:    caseID,
			FirstName: "John",
			LastName:  "Doe",
			Role:      "defendant",
		}
	}

	first := party()
	created, err := repo.GetOrCreate(ctx, first)
	require.NoError(t, err)
	require.True(t, created)

	second := party()
	created, err = repo.GetOrCreate(ctx, second)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&entities.OtherParty{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	other := party()
	other.LastName = "Roe"
	created, err = repo.GetOrCreate(ctx, other)
	require.NoError(t, err)
	require.True(t, created)

	require.NoError(t, db.Model(&entities.OtherParty{}).Count(&count).Error)
	require.EqualValues(t, 2, count)
}
