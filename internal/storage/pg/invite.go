package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/feedboard-dev/feedboard/internal/domain"
	internal_errors "github.com/feedboard-dev/feedboard/internal/errors"
	"github.com/feedboard-dev/feedboard/internal/utils"
)

// Tokens are stored as SHA-256 digests. The raw token leaves the
// system exactly once, in the creation response; every lookup hashes
// the presented token first.
const inviteColumns = `id, board_id, created_by, created_at, expires_at, max_uses, uses, active, note`

func scanInvite(row interface{ Scan(...any) error }) (*domain.BoardInvite, error) {
	var inv domain.BoardInvite
	var expiresAt sql.NullTime
	var maxUses sql.NullInt64
	err := row.Scan(&inv.Id, &inv.Board, &inv.CreatedBy, &inv.CreatedAt, &expiresAt, &maxUses, &inv.Uses, &inv.Active, &inv.Note)
	if err != nil {
		return nil, err
	}
	if expiresAt.Valid {
		t := expiresAt.Time
		inv.ExpiresAt = &t
	}
	if maxUses.Valid {
		m := int(maxUses.Int64)
		inv.MaxUses = &m
	}
	return &inv, nil
}

func (s *Storage) CreateInvite(data domain.InviteCreationData, token domain.InviteToken, createdBy domain.UserId) (*domain.BoardInvite, error) {
	inv := domain.BoardInvite{
		Board:     data.Board,
		Token:     token,
		CreatedBy: createdBy,
		ExpiresAt: data.ExpiresAt,
		MaxUses:   data.MaxUses,
		Active:    true,
		Note:      data.Note,
	}
	err := s.db.QueryRow(`
		INSERT INTO board_invites (board_id, token_hash, created_by, expires_at, max_uses, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, data.Board, utils.HashSHA256(token), createdBy, data.ExpiresAt, data.MaxUses, data.Note).Scan(&inv.Id, &inv.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert invite: %w", err)
	}
	return &inv, nil
}

func (s *Storage) ListInvites(board domain.BoardId) ([]domain.BoardInvite, error) {
	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT %s FROM board_invites WHERE board_id = $1 ORDER BY created_at DESC
	`, inviteColumns), board)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	defer rows.Close()

	invites := []domain.BoardInvite{}
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		invites = append(invites, *inv)
	}
	return invites, rows.Err()
}

func (s *Storage) GetInviteByToken(token domain.InviteToken) (*domain.BoardInvite, error) {
	inv, err := scanInvite(s.db.QueryRow(fmt.Sprintf(`
		SELECT %s FROM board_invites WHERE token_hash = $1
	`, inviteColumns), utils.HashSHA256(token)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal_errors.NotFound("Invite")
		}
		return nil, fmt.Errorf("failed to fetch invite: %w", err)
	}
	return inv, nil
}

// AcceptInvite consumes one use of the invite and adds the actor to
// the board's member set as a single unit. The row lock serializes
// concurrent accepts per token: with max_uses 1 only the first caller
// observes a valid invite, the loser gets the no-longer-valid outcome.
func (s *Storage) AcceptInvite(token domain.InviteToken, user domain.UserId, now time.Time) (*domain.BoardInvite, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	inv, err := scanInvite(tx.QueryRow(fmt.Sprintf(`
		SELECT %s FROM board_invites WHERE token_hash = $1 FOR UPDATE
	`, inviteColumns), utils.HashSHA256(token)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal_errors.NotFound("Invite")
		}
		return nil, fmt.Errorf("failed to lock invite: %w", err)
	}

	if !inv.ValidAt(now) {
		return nil, internal_errors.Conflict("Invite no longer valid")
	}

	result, err := tx.Exec(`
		INSERT INTO board_members (board_id, user_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, inv.Board, user)
	if err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	added, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if added == 0 {
		return nil, internal_errors.Conflict("Already a member of this board")
	}

	if _, err := tx.Exec(`
		UPDATE board_invites SET uses = uses + 1 WHERE id = $1
	`, inv.Id); err != nil {
		return nil, fmt.Errorf("failed to increment invite uses: %w", err)
	}
	inv.Uses++

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return inv, nil
}

// RevokeInvite deactivates the invite. Idempotent: revoking an
// already-revoked invite succeeds.
func (s *Storage) RevokeInvite(token domain.InviteToken) error {
	result, err := s.db.Exec("UPDATE board_invites SET active = FALSE WHERE token_hash = $1", utils.HashSHA256(token))
	if err != nil {
		return fmt.Errorf("failed to revoke invite: %w", err)
	}
	return requireRow(result, "Invite")
}
