package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/vidquiz/internal/domain"
	"github.com/abhisek/vidquiz/internal/quizgen"
)

// QuestionRepo persists generated questions. Each question row holds
// the full item JSON so the tagged union round-trips without per-type
// columns.
type QuestionRepo struct {
	db *sql.DB
}

// Replace atomically swaps a video's question set for items.
func (r *QuestionRepo) Replace(ctx context.Context, videoID string, items []quizgen.Item) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE video_id = ?`, videoID); err != nil {
		return fmt.Errorf("clear questions: %w", err)
	}

	for _, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("marshal question: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO questions (question_id, video_id, payload) VALUES (?, ?, ?)`,
			item.Meta().QuestionID, videoID, string(payload)); err != nil {
			return fmt.Errorf("save question %s: %w", item.Meta().QuestionID, err)
		}
	}

	return tx.Commit()
}

// Get returns a question by ID, or domain.ErrQuestionNotFound.
func (r *QuestionRepo) Get(ctx context.Context, questionID string) (quizgen.Item, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM questions WHERE question_id = ?`, questionID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("load question: %w", err)
	}
	return quizgen.UnmarshalItem([]byte(payload))
}

// ForVideo returns all questions for a video in insertion order.
func (r *QuestionRepo) ForVideo(ctx context.Context, videoID string) ([]quizgen.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT payload FROM questions WHERE video_id = ? ORDER BY rowid`, videoID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var items []quizgen.Item
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		item, err := quizgen.UnmarshalItem([]byte(payload))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// CountForVideo returns the number of stored questions for a video.
func (r *QuestionRepo) CountForVideo(ctx context.Context, videoID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM questions WHERE video_id = ?`, videoID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}
