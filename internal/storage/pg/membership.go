package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/feedboard-dev/feedboard/internal/domain"
	internal_errors "github.com/feedboard-dev/feedboard/internal/errors"
)

func (s *Storage) CreateMembershipRequest(board domain.BoardId, user domain.UserId, message string) (*domain.MembershipRequest, error) {
	req := domain.MembershipRequest{
		Board:   board,
		User:    user,
		Status:  domain.RequestPending,
		Message: message,
	}
	err := s.db.QueryRow(`
		INSERT INTO membership_requests (board_id, user_id, message)
		VALUES ($1, $2, $3)
		RETURNING id, status, requested_at
	`, board, user, message).Scan(&req.Id, &req.Status, &req.RequestedAt)
	if err != nil {
		// partial unique index on (board_id, user_id) WHERE pending
		if isUniqueViolation(err) {
			return nil, internal_errors.Conflict("A membership request for this board is already pending")
		}
		return nil, fmt.Errorf("failed to insert membership request: %w", err)
	}
	return &req, nil
}

func (s *Storage) ListMembershipRequests(board domain.BoardId) ([]domain.MembershipRequest, error) {
	rows, err := s.db.Query(`
		SELECT id, board_id, user_id, status, message, requested_at, handled_by, handled_at
		FROM membership_requests
		WHERE board_id = $1
		ORDER BY requested_at DESC
	`, board)
	if err != nil {
		return nil, fmt.Errorf("failed to list membership requests: %w", err)
	}
	defer rows.Close()

	requests := []domain.MembershipRequest{}
	for rows.Next() {
		var req domain.MembershipRequest
		if err := rows.Scan(&req.Id, &req.Board, &req.User, &req.Status, &req.Message, &req.RequestedAt, &req.HandledBy, &req.HandledAt); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// ResolveMembershipRequest transitions a pending request to approved
// or rejected. The row lock makes the check-then-transition atomic: a
// second handler arriving concurrently blocks on the lock, then sees
// the non-pending state and fails with a conflict.
func (s *Storage) ResolveMembershipRequest(id domain.RequestId, handler domain.UserId, approve bool) (*domain.MembershipRequest, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var req domain.MembershipRequest
	err = tx.QueryRow(`
		SELECT id, board_id, user_id, status, message, requested_at
		FROM membership_requests
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(&req.Id, &req.Board, &req.User, &req.Status, &req.Message, &req.RequestedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal_errors.NotFound("Membership request")
		}
		return nil, fmt.Errorf("failed to lock membership request: %w", err)
	}

	if req.Status != domain.RequestPending {
		return nil, internal_errors.Conflict(fmt.Sprintf("Membership request already %s", req.Status))
	}

	newStatus := domain.RequestRejected
	if approve {
		newStatus = domain.RequestApproved
	}

	var handledAt sql.NullTime
	err = tx.QueryRow(`
		UPDATE membership_requests
		SET status = $2, handled_by = $3, handled_at = now()
		WHERE id = $1
		RETURNING handled_at
	`, id, newStatus, handler).Scan(&handledAt)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve membership request: %w", err)
	}
	req.Status = newStatus
	req.HandledBy = &handler
	if handledAt.Valid {
		t := handledAt.Time
		req.HandledAt = &t
	}

	if approve {
		if _, err := tx.Exec(`
			INSERT INTO board_members (board_id, user_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, req.Board, req.User); err != nil {
			return nil, fmt.Errorf("failed to add member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &req, nil
}
