package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/vidquiz/internal/domain"
	"github.com/abhisek/vidquiz/internal/transcript"
)

// VideoRepo persists videos. Transcript segments and chunks are stored
// as JSON columns; they are read and written as a unit with the video.
type VideoRepo struct {
	db *sql.DB
}

// Put inserts or replaces a video.
func (r *VideoRepo) Put(ctx context.Context, v *domain.Video) error {
	segments, err := json.Marshal(emptyIfNilSegments(v.Segments))
	if err != nil {
		return fmt.Errorf("marshal segments: %w", err)
	}
	chunks, err := json.Marshal(emptyIfNilChunks(v.Chunks))
	if err != nil {
		return fmt.Errorf("marshal chunks: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO videos (video_id, title, file_path, subtitle_path, duration, created_at, segments, chunks)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (video_id) DO UPDATE SET
			title = excluded.title,
			file_path = excluded.file_path,
			subtitle_path = excluded.subtitle_path,
			duration = excluded.duration,
			segments = excluded.segments,
			chunks = excluded.chunks`,
		v.VideoID, v.Title, v.FilePath, v.SubtitlePath, v.Duration,
		v.CreatedAt.UTC().Format(time.RFC3339), string(segments), string(chunks))
	if err != nil {
		return fmt.Errorf("save video: %w", err)
	}
	return nil
}

// Get returns a video by ID, or domain.ErrVideoNotFound.
func (r *VideoRepo) Get(ctx context.Context, videoID string) (*domain.Video, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT video_id, title, file_path, subtitle_path, duration, created_at, segments, chunks
		FROM videos WHERE video_id = ?`, videoID)

	v, err := scanVideo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, fmt.Errorf("load video: %w", err)
	}
	return v, nil
}

// List returns all videos ordered by creation time.
func (r *VideoRepo) List(ctx context.Context) ([]*domain.Video, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT video_id, title, file_path, subtitle_path, duration, created_at, segments, chunks
		FROM videos ORDER BY created_at, video_id`)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer rows.Close()

	var videos []*domain.Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// Delete removes a video and, via the foreign key cascade, its
// questions. Returns domain.ErrVideoNotFound for unknown IDs.
func (r *VideoRepo) Delete(ctx context.Context, videoID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE video_id = ?`, videoID)
	if err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVideo(row rowScanner) (*domain.Video, error) {
	var (
		v         domain.Video
		createdAt string
		segments  string
		chunks    string
	)
	if err := row.Scan(&v.VideoID, &v.Title, &v.FilePath, &v.SubtitlePath,
		&v.Duration, &createdAt, &segments, &chunks); err != nil {
		return nil, err
	}

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	v.CreatedAt = ts

	if err := json.Unmarshal([]byte(segments), &v.Segments); err != nil {
		return nil, fmt.Errorf("decode segments: %w", err)
	}
	if err := json.Unmarshal([]byte(chunks), &v.Chunks); err != nil {
		return nil, fmt.Errorf("decode chunks: %w", err)
	}
	return &v, nil
}

func emptyIfNilSegments(s []transcript.Segment) []transcript.Segment {
	if s == nil {
		return []transcript.Segment{}
	}
	return s
}

func emptyIfNilChunks(c []transcript.Chunk) []transcript.Chunk {
	if c == nil {
		return []transcript.Chunk{}
	}
	return c
}
