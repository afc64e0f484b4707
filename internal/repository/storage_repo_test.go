package repository_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"training_briefing/internal/repository"
	"training_briefing/internal/repository/db"

	"github.com/DATA-DOG/go-sqlmock"
)

// sqlmockArgumentFunc adapts a predicate to sqlmock.Argument.
type sqlmockArgumentFunc func(v driver.Value) bool

func (f sqlmockArgumentFunc) Match(v driver.Value) bool { return f(v) }

func TestStorageSQLite_SetItem_UpsertsWithUTCTimestamp(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer sqlDB.Close()

	repo := repository.NewStorageSQLite(sqlDB)

	isUTCRecent := sqlmockArgumentFunc(func(v driver.Value) bool {
		tm, ok := v.(time.Time)
		if !ok || tm.Location() != time.UTC {
			return false
		}
		now := time.Now().UTC()
		return !tm.Before(now.Add(-5*time.Second)) && !tm.After(now.Add(5*time.Second))
	})

	value := `{"name":"홍길동","menu":"김치찌개","timestamp":"2025-10-20T01:02:03.000Z"}`
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO local_storage")).
		WithArgs("leadership_lunch", value, isUTCRecent).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SetItem(context.Background(), " leadership_lunch ", value); err != nil {
		t.Fatalf("SetItem() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStorageSQLite_SetItem_ExecErrorIsWrapped(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer sqlDB.Close()

	repo := repository.NewStorageSQLite(sqlDB)
	boom := errors.New("disk full")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO local_storage")).WillReturnError(boom)

	err = repo.SetItem(context.Background(), "k", "v")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped %v, got %v", boom, err)
	}
}

func TestStorageSQLite_EmptyKeyRejected(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer sqlDB.Close()

	repo := repository.NewStorageSQLite(sqlDB)
	if err := repo.SetItem(context.Background(), "  ", "v"); err == nil {
		t.Fatalf("expected error for blank key")
	}
	if _, _, err := repo.GetItem(context.Background(), ""); err == nil {
		t.Fatalf("expected error for blank key")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no SQL expected: %v", err)
	}
}

func TestStorageSQLite_GetItem(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer sqlDB.Close()

	repo := repository.NewStorageSQLite(sqlDB)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM local_storage WHERE key=?")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM local_storage WHERE key=?")).
		WithArgs("present").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("stored"))

	v, ok, err := repo.GetItem(context.Background(), "missing")
	if err != nil || ok || v != "" {
		t.Fatalf("missing key: got (%q,%v,%v)", v, ok, err)
	}
	v, ok, err = repo.GetItem(context.Background(), "present")
	if err != nil || !ok || v != "stored" {
		t.Fatalf("present key: got (%q,%v,%v)", v, ok, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStorageSQLite_SingleSlotOverwrite_RealSQLite(t *testing.T) {
	sqlDB, err := db.InitDB(filepath.Join(t.TempDir(), "slot.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer sqlDB.Close()

	repo := repository.NewStorageSQLite(sqlDB)
	ctx := context.Background()

	if err := repo.SetItem(ctx, "leadership_lunch", "first"); err != nil {
		t.Fatalf("first SetItem: %v", err)
	}
	if err := repo.SetItem(ctx, "leadership_lunch", "second"); err != nil {
		t.Fatalf("second SetItem: %v", err)
	}

	v, ok, err := repo.GetItem(ctx, "leadership_lunch")
	if err != nil || !ok {
		t.Fatalf("GetItem: ok=%v err=%v", ok, err)
	}
	if v != "second" {
		t.Fatalf("expected last write to win, got %q", v)
	}

	var rows int
	if err := sqlDB.QueryRow(`SELECT COUNT(*) FROM local_storage`).Scan(&rows); err != nil {
		t.Fatalf("count: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected a single row, got %d", rows)
	}
}
