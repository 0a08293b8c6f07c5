package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/feedboard-dev/feedboard/internal/access"
	"github.com/feedboard-dev/feedboard/internal/domain"
	internal_errors "github.com/feedboard-dev/feedboard/internal/errors"
)

func (s *Storage) CreateComment(data domain.CommentCreationData, createdBy domain.UserId) (*domain.Comment, error) {
	c := domain.Comment{
		Feedback:  data.Feedback,
		Body:      data.Body,
		CreatedBy: createdBy,
	}
	err := s.db.QueryRow(`
		INSERT INTO comments (feedback_id, body, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, data.Feedback, data.Body, createdBy).Scan(&c.Id, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}
	return &c, nil
}

func (s *Storage) ListComments(scope access.BoardScope, feedback *domain.FeedbackId) ([]domain.Comment, error) {
	var args []any
	cond, args := boardScopeSQL(scope, "b", args)
	if feedback != nil {
		args = append(args, *feedback)
		cond += fmt.Sprintf(" AND c.feedback_id = $%d", len(args))
	}

	// Comment visibility is feedback visibility is board visibility
	query := fmt.Sprintf(`
		SELECT c.id, c.feedback_id, c.body, c.created_by, c.created_at
		FROM comments c
		JOIN feedbacks f ON f.id = c.feedback_id
		JOIN boards b ON b.id = f.board_id
		WHERE %s
		ORDER BY c.created_at DESC
	`, cond)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.Id, &c.Feedback, &c.Body, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (s *Storage) GetComment(scope access.BoardScope, id domain.CommentId) (*domain.Comment, error) {
	args := []any{id}
	cond, args := boardScopeSQL(scope, "b", args)
	query := fmt.Sprintf(`
		SELECT c.id, c.feedback_id, c.body, c.created_by, c.created_at
		FROM comments c
		JOIN feedbacks f ON f.id = c.feedback_id
		JOIN boards b ON b.id = f.board_id
		WHERE c.id = $1 AND %s
	`, cond)

	var c domain.Comment
	err := s.db.QueryRow(query, args...).Scan(&c.Id, &c.Feedback, &c.Body, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal_errors.NotFound("Comment")
		}
		return nil, fmt.Errorf("failed to fetch comment: %w", err)
	}
	return &c, nil
}

func (s *Storage) GetCommentFacts(scope access.BoardScope, id domain.CommentId, actorId domain.UserId) (access.ObjectFacts, error) {
	args := []any{id, actorId}
	cond, args := boardScopeSQL(scope, "b", args)
	query := fmt.Sprintf(`
		SELECT c.created_by, b.created_by, b.is_public,
			EXISTS (SELECT 1 FROM board_members m WHERE m.board_id = b.id AND m.user_id = $2)
		FROM comments c
		JOIN feedbacks f ON f.id = c.feedback_id
		JOIN boards b ON b.id = f.board_id
		WHERE c.id = $1 AND %s
	`, cond)

	var f access.ObjectFacts
	err := s.db.QueryRow(query, args...).Scan(&f.CreatedBy, &f.BoardCreatedBy, &f.BoardIsPublic, &f.IsBoardMember)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return access.ObjectFacts{}, internal_errors.NotFound("Comment")
		}
		return access.ObjectFacts{}, fmt.Errorf("failed to fetch comment facts: %w", err)
	}
	return f, nil
}

func (s *Storage) UpdateComment(id domain.CommentId, body string) error {
	result, err := s.db.Exec("UPDATE comments SET body = $2 WHERE id = $1", id, body)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	return requireRow(result, "Comment")
}

func (s *Storage) DeleteComment(id domain.CommentId) error {
	result, err := s.db.Exec("DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return requireRow(result, "Comment")
}
