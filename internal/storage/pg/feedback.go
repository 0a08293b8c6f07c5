package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/feedboard-dev/feedboard/internal/access"
	"github.com/feedboard-dev/feedboard/internal/domain"
	internal_errors "github.com/feedboard-dev/feedboard/internal/errors"
)

const feedbackColumns = `
	f.id, f.board_id, f.title, f.body, f.status, f.created_by, f.created_at, f.updated_at,
	(SELECT COUNT(*) FROM feedback_upvotes u WHERE u.feedback_id = f.id) AS upvotes
`

func scanFeedback(row interface{ Scan(...any) error }) (*domain.Feedback, error) {
	var f domain.Feedback
	err := row.Scan(&f.Id, &f.Board, &f.Title, &f.Body, &f.Status, &f.CreatedBy, &f.CreatedAt, &f.UpdatedAt, &f.Upvotes)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Storage) CreateFeedback(data domain.FeedbackCreationData, createdBy domain.UserId) (*domain.Feedback, error) {
	f := domain.Feedback{
		Board:     data.Board,
		Title:     data.Title,
		Body:      data.Body,
		Status:    domain.StatusOpen,
		CreatedBy: createdBy,
	}
	err := s.db.QueryRow(`
		INSERT INTO feedbacks (board_id, title, body, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status, created_at, updated_at
	`, data.Board, data.Title, data.Body, createdBy).Scan(&f.Id, &f.Status, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert feedback: %w", err)
	}
	return &f, nil
}

func (s *Storage) ListFeedback(scope access.BoardScope, filter domain.FeedbackFilter) ([]domain.Feedback, error) {
	var args []any
	cond, args := boardScopeSQL(scope, "b", args)

	// Collection filters compose with the visibility predicate
	if filter.Board != nil {
		args = append(args, *filter.Board)
		cond += fmt.Sprintf(" AND f.board_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		cond += fmt.Sprintf(" AND f.status = $%d", len(args))
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM feedbacks f
		JOIN boards b ON b.id = f.board_id
		WHERE %s
		ORDER BY f.created_at DESC
	`, feedbackColumns, cond)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	feedbacks := []domain.Feedback{}
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, *f)
	}
	return feedbacks, rows.Err()
}

func (s *Storage) GetFeedback(scope access.BoardScope, id domain.FeedbackId) (*domain.Feedback, error) {
	args := []any{id}
	cond, args := boardScopeSQL(scope, "b", args)
	query := fmt.Sprintf(`
		SELECT %s
		FROM feedbacks f
		JOIN boards b ON b.id = f.board_id
		WHERE f.id = $1 AND %s
	`, feedbackColumns, cond)

	f, err := scanFeedback(s.db.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal_errors.NotFound("Feedback")
		}
		return nil, fmt.Errorf("failed to fetch feedback: %w", err)
	}
	return f, nil
}

// GetFeedbackFacts loads the authorization facts for a feedback item
// within the actor's visibility scope.
func (s *Storage) GetFeedbackFacts(scope access.BoardScope, id domain.FeedbackId, actorId domain.UserId) (access.ObjectFacts, error) {
	args := []any{id, actorId}
	cond, args := boardScopeSQL(scope, "b", args)
	query := fmt.Sprintf(`
		SELECT f.created_by, b.created_by, b.is_public,
			EXISTS (SELECT 1 FROM board_members m WHERE m.board_id = b.id AND m.user_id = $2)
		FROM feedbacks f
		JOIN boards b ON b.id = f.board_id
		WHERE f.id = $1 AND %s
	`, cond)

	var f access.ObjectFacts
	err := s.db.QueryRow(query, args...).Scan(&f.CreatedBy, &f.BoardCreatedBy, &f.BoardIsPublic, &f.IsBoardMember)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return access.ObjectFacts{}, internal_errors.NotFound("Feedback")
		}
		return access.ObjectFacts{}, fmt.Errorf("failed to fetch feedback facts: %w", err)
	}
	return f, nil
}

func (s *Storage) UpdateFeedback(id domain.FeedbackId, data domain.FeedbackUpdateData) error {
	result, err := s.db.Exec(`
		UPDATE feedbacks SET title = $2, body = $3, updated_at = now() WHERE id = $1
	`, id, data.Title, data.Body)
	if err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}
	return requireRow(result, "Feedback")
}

func (s *Storage) DeleteFeedback(id domain.FeedbackId) error {
	result, err := s.db.Exec("DELETE FROM feedbacks WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	return requireRow(result, "Feedback")
}

// SetFeedbackStatus is the only write path for the status column; the
// generic update never touches it.
func (s *Storage) SetFeedbackStatus(id domain.FeedbackId, status domain.FeedbackStatus) error {
	result, err := s.db.Exec(`
		UPDATE feedbacks SET status = $2, updated_at = now() WHERE id = $1
	`, id, status)
	if err != nil {
		return fmt.Errorf("failed to set feedback status: %w", err)
	}
	return requireRow(result, "Feedback")
}

// ToggleUpvote removes the actor from the upvote set if present,
// otherwise adds them. Returns the post-mutation membership and count.
func (s *Storage) ToggleUpvote(id domain.FeedbackId, userId domain.UserId) (bool, int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		DELETE FROM feedback_upvotes WHERE feedback_id = $1 AND user_id = $2
	`, id, userId)
	if err != nil {
		return false, 0, fmt.Errorf("failed to remove upvote: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return false, 0, err
	}

	upvoted := false
	if removed == 0 {
		if _, err := tx.Exec(`
			INSERT INTO feedback_upvotes (feedback_id, user_id) VALUES ($1, $2)
		`, id, userId); err != nil {
			return false, 0, fmt.Errorf("failed to add upvote: %w", err)
		}
		upvoted = true
	}

	var count int
	if err := tx.QueryRow(`
		SELECT COUNT(*) FROM feedback_upvotes WHERE feedback_id = $1
	`, id).Scan(&count); err != nil {
		return false, 0, fmt.Errorf("failed to count upvotes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return upvoted, count, nil
}

func requireRow(result sql.Result, what string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return internal_errors.NotFound(what)
	}
	return nil
}
