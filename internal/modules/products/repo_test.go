package products

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sqliteProductsTable = `
CREATE TABLE products (
  id TEXT NOT NULL PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price REAL NOT NULL DEFAULT 0,
  image_url TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  created_at DATETIME NOT NULL
)`

// newSQLiteRepo opens a private in-memory database with the products table.
func newSQLiteRepo(t *testing.T) (*Repo, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec(sqliteProductsTable).Error)
	return NewRepo(db), db
}

func seedRow(t *testing.T, db *gorm.DB, id, name string, at time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&Product{ID: id, Name: name, Category: "Katı Ürünler", Price: 1, CreatedAt: at}).Error)
}

func TestRepo_ListNewestFirst(t *testing.T) {
	r, db := newSQLiteRepo(t)
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	seedRow(t, db, "a", "A", base)
	seedRow(t, db, "c", "C", base.Add(2*time.Minute))
	seedRow(t, db, "b", "B", base.Add(time.Minute))

	items, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, ids(items))
}

func TestRepo_InsertAssignsIDAndTime(t *testing.T) {
	ctx := context.Background()
	r, _ := newSQLiteRepo(t)

	p, err := r.Insert(ctx, Fields{Name: "Gübre A", Description: "yaprak", Price: 12.5, Category: "Katı Ürünler"})
	require.NoError(t, err)
	assert.Len(t, p.ID, 36)
	assert.False(t, p.CreatedAt.IsZero())

	got, err := r.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Fields(), got.Fields())
}

func TestRepo_UpdateRoundTrip(t *testing.T) {
	ctx := context.Background()
	r, db := newSQLiteRepo(t)
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	seedRow(t, db, "1", "Eski İsim", at)
	seedRow(t, db, "2", "Komşu", at.Add(time.Minute))

	want := Fields{Name: "Yeni İsim", Description: "d", Price: 99.9, ImageURL: "https://img/x.png", Category: "Sıvı Ürünler"}
	got, err := r.Update(ctx, "1", want)
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)
	assert.Equal(t, want, got.Fields())
	assert.True(t, got.CreatedAt.Equal(at))

	other, err := r.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Komşu", other.Name)

	// unchanged values still report the record
	again, err := r.Update(ctx, "1", want)
	require.NoError(t, err)
	assert.Equal(t, want, again.Fields())
}

func TestRepo_UpdateMissing(t *testing.T) {
	r, _ := newSQLiteRepo(t)

	_, err := r.Update(context.Background(), "nope", Fields{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.Update(context.Background(), "", Fields{Name: "x"})
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestRepo_Delete(t *testing.T) {
	ctx := context.Background()
	r, db := newSQLiteRepo(t)
	seedRow(t, db, "1", "A", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))

	require.NoError(t, r.Delete(ctx, "1"))
	assert.ErrorIs(t, r.Delete(ctx, "1"), ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, "missing"), ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, ""), ErrMissingID)

	items, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMapSQLError(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1' for key 'PRIMARY'"}
	tooLong := &mysql.MySQLError{Number: 1406, Message: "Data too long for column 'name'"}

	err := mapSQLError("insert", fmt.Errorf("exec: %w", dup))
	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "insert", se.Op)
	assert.Equal(t, 1062, se.Status)
	assert.Equal(t, "Bu ürün zaten kayıtlı.", Message(err))
	assert.True(t, IsDuplicateKey(err))

	err = mapSQLError("update", tooLong)
	assert.Equal(t, "Data too long for column 'name'", Message(err))
	assert.False(t, IsDuplicateKey(err))

	plain := errors.New("driver: bad connection")
	err = mapSQLError("list", plain)
	assert.ErrorIs(t, err, plain)
	assert.Equal(t, "driver: bad connection", Message(err))
}
