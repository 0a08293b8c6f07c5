package pg

import (
	"fmt"
	"time"

	"github.com/feedboard-dev/feedboard/internal/api"
	"github.com/feedboard-dev/feedboard/internal/domain"
)

// Analytics queries are reachable by elevated actors only, so they
// run unscoped.

func (s *Storage) FeedbackSummary(board *domain.BoardId, from, to time.Time) (*api.AnalyticsSummaryResponse, error) {
	args := []any{from, to}
	cond := "f.created_at >= $1 AND f.created_at <= $2"
	if board != nil {
		args = append(args, *board)
		cond += fmt.Sprintf(" AND f.board_id = $%d", len(args))
	}

	query := fmt.Sprintf(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE f.status = 'open'),
			COUNT(*) FILTER (WHERE f.status = 'in_progress'),
			COUNT(*) FILTER (WHERE f.status = 'completed')
		FROM feedbacks f
		WHERE %s
	`, cond)

	var summary api.AnalyticsSummaryResponse
	err := s.db.QueryRow(query, args...).Scan(&summary.Total, &summary.Open, &summary.InProgress, &summary.Completed)
	if err != nil {
		return nil, fmt.Errorf("failed to compute feedback summary: %w", err)
	}
	return &summary, nil
}

func (s *Storage) FeedbackCreatedPerDay(board *domain.BoardId, from, to time.Time) ([]api.StatusOverTimePoint, error) {
	args := []any{from, to}
	cond := "f.created_at >= $1 AND f.created_at <= $2"
	if board != nil {
		args = append(args, *board)
		cond += fmt.Sprintf(" AND f.board_id = $%d", len(args))
	}

	query := fmt.Sprintf(`
		SELECT date_trunc('day', f.created_at) AS day, COUNT(*)
		FROM feedbacks f
		WHERE %s
		GROUP BY day
		ORDER BY day
	`, cond)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to compute feedback trend: %w", err)
	}
	defer rows.Close()

	points := []api.StatusOverTimePoint{}
	for rows.Next() {
		var p api.StatusOverTimePoint
		if err := rows.Scan(&p.Day, &p.Count); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (s *Storage) TopVotedFeedback(board *domain.BoardId, limit int) ([]domain.Feedback, error) {
	var args []any
	cond := "TRUE"
	if board != nil {
		args = append(args, *board)
		cond = fmt.Sprintf("f.board_id = $%d", len(args))
	}

	args = append(args, limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM feedbacks f
		WHERE %s
		ORDER BY upvotes DESC, f.created_at DESC
		LIMIT $%d
	`, feedbackColumns, cond, len(args))

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top voted feedback: %w", err)
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
