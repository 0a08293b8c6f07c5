package pg

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/feedboard-dev/feedboard/internal/domain"
	internal_errors "github.com/feedboard-dev/feedboard/internal/errors"
	"github.com/feedboard-dev/feedboard/internal/utils"
)

func newMockStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewWithDB(db), mock
}

func inviteRow(mock sqlmock.Sqlmock, uses int, maxUses any, expiresAt any, active bool) *sqlmock.Rows {
	return mock.NewRows([]string{"id", "board_id", "created_by", "created_at", "expires_at", "max_uses", "uses", "active", "note"}).
		AddRow(1, 2, 10, time.Now(), expiresAt, maxUses, uses, active, "")
}

func TestCreateInvite(t *testing.T) {
	t.Run("persists the digest, returns the raw token once", func(t *testing.T) {
		s, mock := newMockStorage(t)

		mock.ExpectQuery("INSERT INTO board_invites").
			WithArgs(int64(2), utils.HashSHA256("tok"), int64(10), nil, nil, "").
			WillReturnRows(mock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))

		inv, err := s.CreateInvite(domain.InviteCreationData{Board: 2}, "tok", 10)
		if err != nil {
			t.Fatalf("CreateInvite: %v", err)
		}
		if inv.Token != "tok" {
			t.Errorf("Token = %q, want the raw token back", inv.Token)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})
}

func TestGetInviteByToken(t *testing.T) {
	t.Run("looks up by digest", func(t *testing.T) {
		s, mock := newMockStorage(t)

		mock.ExpectQuery("SELECT (.+) FROM board_invites WHERE token_hash = \\$1").
			WithArgs(utils.HashSHA256("tok")).
			WillReturnRows(inviteRow(mock, 0, nil, nil, true))

		inv, err := s.GetInviteByToken("tok")
		if err != nil {
			t.Fatalf("GetInviteByToken: %v", err)
		}
		if inv.Token != "" {
			t.Errorf("Token = %q, stored invites must not expose a token", inv.Token)
		}
	})

	t.Run("unknown token not found", func(t *testing.T) {
		s, mock := newMockStorage(t)

		mock.ExpectQuery("SELECT (.+) FROM board_invites WHERE token_hash = \\$1").
			WithArgs(utils.HashSHA256("zzz")).
			WillReturnRows(mock.NewRows([]string{"id", "board_id", "created_by", "created_at", "expires_at", "max_uses", "uses", "active", "note"}))

		_, err := s.GetInviteByToken("zzz")
		assertStatus(t, err, 404)
	})
}

func TestAcceptInvite(t *testing.T) {
	now := time.Now()

	t.Run("joins and increments uses", func(t *testing.T) {
		s, mock := newMockStorage(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM board_invites WHERE token_hash = \\$1 FOR UPDATE").
			WithArgs(utils.HashSHA256("tok")).
			WillReturnRows(inviteRow(mock, 0, 5, nil, true))
		mock.ExpectExec("INSERT INTO board_members").
			WithArgs(int64(2), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE board_invites SET uses = uses \\+ 1").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		inv, err := s.AcceptInvite("tok", 7, now)
		if err != nil {
			t.Fatalf("AcceptInvite: %v", err)
		}
		if inv.Uses != 1 {
			t.Errorf("Uses = %d, want 1", inv.Uses)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})

	t.Run("exhausted invite conflicts", func(t *testing.T) {
		s, mock := newMockStorage(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM board_invites WHERE token_hash = \\$1 FOR UPDATE").
			WithArgs(utils.HashSHA256("tok")).
			WillReturnRows(inviteRow(mock, 1, 1, nil, true))
		mock.ExpectRollback()

		_, err := s.AcceptInvite("tok", 7, now)
		assertStatus(t, err, 409)
	})

	t.Run("expired invite conflicts", func(t *testing.T) {
		s, mock := newMockStorage(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM board_invites WHERE token_hash = \\$1 FOR UPDATE").
			WithArgs(utils.HashSHA256("tok")).
			WillReturnRows(inviteRow(mock, 0, nil, now.Add(-time.Hour), true))
		mock.ExpectRollback()

		_, err := s.AcceptInvite("tok", 7, now)
		assertStatus(t, err, 409)
	})

	t.Run("revoked invite conflicts", func(t *testing.T) {
		s, mock := newMockStorage(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM board_invites WHERE token_hash = \\$1 FOR UPDATE").
			WithArgs(utils.HashSHA256("tok")).
			WillReturnRows(inviteRow(mock, 0, nil, nil, false))
		mock.ExpectRollback()

		_, err := s.AcceptInvite("tok", 7, now)
		assertStatus(t, err, 409)
	})

	t.Run("existing member conflicts without consuming a use", func(t *testing.T) {
		s, mock := newMockStorage(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM board_invites WHERE token_hash = \\$1 FOR UPDATE").
			WithArgs(utils.HashSHA256("tok")).
			WillReturnRows(inviteRow(mock, 0, 5, nil, true))
		mock.ExpectExec("INSERT INTO board_members").
			WithArgs(int64(2), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := s.AcceptInvite("tok", 7, now)
		assertStatus(t, err, 409)
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})

	t.Run("unknown token not found", func(t *testing.T) {
		s, mock := newMockStorage(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM board_invites WHERE token_hash = \\$1 FOR UPDATE").
			WithArgs(utils.HashSHA256("zzz")).
			WillReturnRows(mock.NewRows([]string{"id", "board_id", "created_by", "created_at", "expires_at", "max_uses", "uses", "active", "note"}))
		mock.ExpectRollback()

		_, err := s.AcceptInvite("zzz", 7, now)
		assertStatus(t, err, 404)
	})
}

func TestRevokeInvite(t *testing.T) {
	t.Run("revokes", func(t *testing.T) {
		s, mock := newMockStorage(t)
		mock.ExpectExec("UPDATE board_invites SET active = FALSE").
			WithArgs(utils.HashSHA256("tok")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := s.RevokeInvite("tok"); err != nil {
			t.Fatalf("RevokeInvite: %v", err)
		}
	})

	t.Run("unknown token not found", func(t *testing.T) {
		s, mock := newMockStorage(t)
		mock.ExpectExec("UPDATE board_invites SET active = FALSE").
			WithArgs(utils.HashSHA256("zzz")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assertStatus(t, s.RevokeInvite("zzz"), 404)
	})
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	sc, ok := err.(*internal_errors.ErrorWithStatusCode)
	if !ok {
		t.Fatalf("expected ErrorWithStatusCode, got %T: %v", err, err)
	}
	if sc.StatusCode != status {
		t.Errorf("status = %d, want %d", sc.StatusCode, status)
	}
}
