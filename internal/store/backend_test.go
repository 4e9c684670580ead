package store_test

import (
	"context"
	"testing"
	"time"

	"hometasks/internal/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func TestDBBackend_Load(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	backend := store.NewDBBackend(gormDB)

	rows := sqlmock.NewRows([]string{"key", "value", "updated_at"}).
		AddRow("sections", `[{"id":"sec-1","name":"Cocina"}]`, time.Now())
	mock.ExpectQuery(`SELECT \* FROM "kv_entries"`).
		WithArgs("sections", 1).
		WillReturnRows(rows)

	// Act
	value, found, err := backend.Load(context.Background(), "sections")

	// Assert
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"sec-1","name":"Cocina"}]`, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBBackend_Load_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	backend := store.NewDBBackend(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "kv_entries"`).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}))

	// Act
	_, found, err := backend.Load(context.Background(), "missing")

	// Assert: отсутствие ключа не является ошибкой
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBBackend_Save(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	backend := store.NewDBBackend(gormDB)

	// Ожидаем upsert по первичному ключу
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "kv_entries"`).
		WithArgs("sections", `[]`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := backend.Save(context.Background(), "sections", `[]`)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
