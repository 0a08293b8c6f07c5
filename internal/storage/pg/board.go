package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/feedboard-dev/feedboard/internal/access"
	"github.com/feedboard-dev/feedboard/internal/domain"
	internal_errors "github.com/feedboard-dev/feedboard/internal/errors"
)

func (s *Storage) CreateBoard(data domain.BoardCreationData, createdBy domain.UserId) (*domain.Board, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // The rollback will be ignored if the tx has been committed later in the function.

	board := domain.Board{
		Name:        data.Name,
		Description: data.Description,
		IsPublic:    data.IsPublic,
		CreatedBy:   createdBy,
	}
	err = tx.QueryRow(`
		INSERT INTO boards (name, description, is_public, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, data.Name, data.Description, data.IsPublic, createdBy).Scan(&board.Id, &board.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert board: %w", err)
	}

	// Creator joins the member set immediately
	if _, err := tx.Exec(`
		INSERT INTO board_members (board_id, user_id) VALUES ($1, $2)
	`, board.Id, createdBy); err != nil {
		return nil, fmt.Errorf("failed to add creator membership: %w", err)
	}
	board.Members = []domain.UserId{createdBy}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &board, nil
}

const boardColumns = `
	b.id, b.name, b.description, b.is_public, b.created_by, b.created_at,
	COALESCE(ARRAY_AGG(m.user_id) FILTER (WHERE m.user_id IS NOT NULL), '{}') AS members
`

func scanBoard(row interface{ Scan(...any) error }) (*domain.Board, error) {
	var b domain.Board
	var members pq.Int64Array
	if err := row.Scan(&b.Id, &b.Name, &b.Description, &b.IsPublic, &b.CreatedBy, &b.CreatedAt, &members); err != nil {
		return nil, err
	}
	b.Members = []domain.UserId(members)
	return &b, nil
}

func (s *Storage) ListBoards(scope access.BoardScope) ([]domain.Board, error) {
	var args []any
	cond, args := boardScopeSQL(scope, "b", args)
	query := fmt.Sprintf(`
		SELECT %s
		FROM boards b
		LEFT JOIN board_members m ON m.board_id = b.id
		WHERE %s
		GROUP BY b.id
		ORDER BY b.created_at DESC
	`, boardColumns, cond)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	defer rows.Close()

	boards := []domain.Board{}
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, err
		}
		boards = append(boards, *b)
	}
	return boards, rows.Err()
}

func (s *Storage) GetBoard(scope access.BoardScope, id domain.BoardId) (*domain.Board, error) {
	args := []any{id}
	cond, args := boardScopeSQL(scope, "b", args)
	query := fmt.Sprintf(`
		SELECT %s
		FROM boards b
		LEFT JOIN board_members m ON m.board_id = b.id
		WHERE b.id = $1 AND %s
		GROUP BY b.id
	`, boardColumns, cond)

	board, err := scanBoard(s.db.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal_errors.NotFound("Board")
		}
		return nil, fmt.Errorf("failed to fetch board: %w", err)
	}
	return board, nil
}

// GetBoardFacts loads the authorization facts for a board within the
// actor's visibility scope. Out-of-scope boards report not found.
func (s *Storage) GetBoardFacts(scope access.BoardScope, id domain.BoardId, actorId domain.UserId) (access.ObjectFacts, error) {
	args := []any{id, actorId}
	cond, args := boardScopeSQL(scope, "b", args)
	query := fmt.Sprintf(`
		SELECT b.created_by, b.is_public,
			EXISTS (SELECT 1 FROM board_members m WHERE m.board_id = b.id AND m.user_id = $2)
		FROM boards b
		WHERE b.id = $1 AND %s
	`, cond)

	var f access.ObjectFacts
	err := s.db.QueryRow(query, args...).Scan(&f.BoardCreatedBy, &f.BoardIsPublic, &f.IsBoardMember)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return access.ObjectFacts{}, internal_errors.NotFound("Board")
		}
		return access.ObjectFacts{}, fmt.Errorf("failed to fetch board facts: %w", err)
	}
	f.CreatedBy = f.BoardCreatedBy
	return f, nil
}

func (s *Storage) UpdateBoard(id domain.BoardId, data domain.BoardUpdateData) error {
	result, err := s.db.Exec(`
		UPDATE boards SET name = $2, description = $3, is_public = $4 WHERE id = $1
	`, id, data.Name, data.Description, data.IsPublic)
	if err != nil {
		return fmt.Errorf("failed to update board: %w", err)
	}
	updated, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if updated == 0 {
		return internal_errors.NotFound("Board")
	}
	return nil
}

func (s *Storage) DeleteBoard(id domain.BoardId) error {
	// Feedback, comments, members, requests and invites cascade
	result, err := s.db.Exec("DELETE FROM boards WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return internal_errors.NotFound("Board")
	}
	return nil
}
