package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/abhisek/vidquiz/internal/domain"
	"github.com/abhisek/vidquiz/internal/subtitle"
	"github.com/abhisek/vidquiz/internal/transcript"
	"github.com/abhisek/vidquiz/internal/youtube"
)

func (s *Server) handleListVideos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	videos, err := s.store.Videos().List(ctx)
	if err != nil {
		s.log.Error("list videos", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to list videos")
		return
	}

	summaries := make([]domain.VideoSummary, 0, len(videos))
	for _, v := range videos {
		n, err := s.store.Questions().CountForVideo(ctx, v.VideoID)
		if err != nil {
			s.log.Error("count questions", "video_id", v.VideoID, "error", err)
			s.writeError(w, http.StatusInternalServerError, "failed to list videos")
			return
		}
		summaries = append(summaries, v.Summary(n))
	}
	s.writeJSON(w, http.StatusOK, summaries)
}

type createVideoRequest struct {
	Title        string  `json:"title"`
	FilePath     string  `json:"file_path"`
	SubtitlePath string  `json:"subtitle_path"`
	Duration     float64 `json:"duration"`
}

func (s *Server) handleCreateVideo(w http.ResponseWriter, r *http.Request) {
	var req createVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		req.Title = "Untitled Video"
	}

	video := &domain.Video{
		VideoID:      uuid.NewString(),
		Title:        req.Title,
		FilePath:     req.FilePath,
		SubtitlePath: req.SubtitlePath,
		Duration:     req.Duration,
		CreatedAt:    time.Now().UTC(),
	}

	// YouTube transcripts are fetched on demand; local subtitle files
	// are parsed and chunked once at registration.
	if req.SubtitlePath != "" && !youtube.IsVideoURL(req.FilePath) {
		if _, err := os.Stat(req.SubtitlePath); err == nil {
			segments, err := subtitle.Parse(req.SubtitlePath)
			if err != nil {
				s.writeError(w, http.StatusBadRequest,
					fmt.Sprintf("error parsing subtitles: %v", err))
				return
			}
			video.Segments = segments
			video.Chunks = transcript.Group(segments, s.cfg.Quiz.WindowSize)
		}
	}

	if err := s.store.Videos().Put(r.Context(), video); err != nil {
		s.log.Error("save video", "video_id", video.VideoID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to save video")
		return
	}

	s.log.Info("video registered",
		"video_id", video.VideoID,
		"segments", len(video.Segments),
		"chunks", len(video.Chunks))
	s.writeJSON(w, http.StatusCreated, video.Summary(0))
}

func (s *Server) handleGetVideo(w http.ResponseWriter, r *http.Request) {
	video, err := s.store.Videos().Get(r.Context(), chi.URLParam(r, "videoID"))
	if err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			s.writeError(w, http.StatusNotFound, "Video not found")
			return
		}
		s.log.Error("load video", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to load video")
		return
	}

	n, err := s.store.Questions().CountForVideo(r.Context(), video.VideoID)
	if err != nil {
		s.log.Error("count questions", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to load video")
		return
	}
	s.writeJSON(w, http.StatusOK, video.Summary(n))
}

func (s *Server) handleDeleteVideo(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")

	if err := s.store.Videos().Delete(r.Context(), videoID); err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			s.writeError(w, http.StatusNotFound, "Video not found")
			return
		}
		s.log.Error("delete video", "video_id", videoID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to delete video")
		return
	}

	s.log.Info("video deleted", "video_id", videoID)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Video deleted successfully",
	})
}

func (s *Server) handleGetSubtitles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	video, err := s.store.Videos().Get(ctx, chi.URLParam(r, "videoID"))
	if err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			s.writeError(w, http.StatusNotFound, "Video not found")
			return
		}
		s.log.Error("load video", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to load video")
		return
	}

	if youtube.IsVideoURL(video.FilePath) {
		ytID := youtube.ExtractVideoID(video.FilePath)
		if ytID == "" {
			s.writeError(w, http.StatusBadRequest, "Could not extract YouTube video ID")
			return
		}
		segments, err := s.yt.Transcript(ctx, ytID)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError,
				fmt.Sprintf("error fetching YouTube transcript: %v", err))
			return
		}
		s.writeJSON(w, http.StatusOK, segments)
		return
	}

	if video.SubtitlePath == "" {
		s.writeError(w, http.StatusNotFound, "No subtitles available for this video")
		return
	}

	if len(video.Segments) > 0 {
		s.writeJSON(w, http.StatusOK, video.Segments)
		return
	}

	segments, err := subtitle.Parse(video.SubtitlePath)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError,
			fmt.Sprintf("error parsing subtitles: %v", err))
		return
	}
	s.writeJSON(w, http.StatusOK, segments)
}
