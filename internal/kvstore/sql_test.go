package kvstore

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestSQLGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT v FROM portal_state WHERE k=\\? LIMIT 1").
		WithArgs("bookingHistory").
		WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow([]byte(`[]`)))

	s := SQL{DB: db}
	got, err := s.Get("bookingHistory")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "[]" {
		t.Fatalf("Get returned %q", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLGetMissingKeyIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT v FROM portal_state WHERE k=\\? LIMIT 1").
		WithArgs("agentName").
		WillReturnRows(sqlmock.NewRows([]string{"v"}))

	s := SQL{DB: db}
	if _, err := s.Get("agentName"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLSetUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO portal_state").
		WithArgs("bookingHistory", []byte(`[{"guestName":"a"}]`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := SQL{DB: db}
	if err := s.Set("bookingHistory", []byte(`[{"guestName":"a"}]`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM portal_state WHERE k=\\?").
		WithArgs("bookingHistory").
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := SQL{DB: db}
	if err := s.Delete("bookingHistory"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
}

func TestSQLCustomTableName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM desk_state WHERE k=\\?").
		WithArgs("agentName").
		WillReturnResult(sqlmock.NewResult(0, 0))

	s := SQL{DB: db, Table: "desk_state"}
	if err := s.Delete("agentName"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
}
