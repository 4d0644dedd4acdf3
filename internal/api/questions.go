package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/vidquiz/internal/domain"
	"github.com/abhisek/vidquiz/internal/evaluate"
	"github.com/abhisek/vidquiz/internal/quizgen"
	"github.com/abhisek/vidquiz/internal/transcript"
	"github.com/abhisek/vidquiz/internal/youtube"
)

type generateRequest struct {
	QuestionType  quizgen.ItemType `json:"question_type"`
	QuestionCount int              `json:"question_count"`
}

func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	videoID := chi.URLParam(r, "videoID")

	video, err := s.store.Videos().Get(ctx, videoID)
	if err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			s.writeError(w, http.StatusNotFound, "Video not found")
			return
		}
		s.log.Error("load video", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to load video")
		return
	}

	req := generateRequest{
		QuestionType:  quizgen.TypeMultipleChoice,
		QuestionCount: s.cfg.Quiz.DefaultCount,
	}
	if r.Body != nil {
		// A missing or malformed body falls back to the defaults.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if !quizgen.ValidType(req.QuestionType) {
		req.QuestionType = quizgen.TypeMultipleChoice
	}
	if req.QuestionCount < s.cfg.Quiz.MinCount {
		req.QuestionCount = s.cfg.Quiz.MinCount
	} else if req.QuestionCount > s.cfg.Quiz.MaxCount {
		req.QuestionCount = s.cfg.Quiz.MaxCount
	}

	chunks := video.Chunks

	if youtube.IsVideoURL(video.FilePath) {
		segments, err := s.fetchYouTubeSegments(r, video)
		if err != nil {
			// No transcript to work from. Serve generic questions
			// keyed off the title rather than failing the quiz.
			s.log.Warn("youtube transcript unavailable, using generic questions",
				"video_id", videoID, "error", err)

			items, _ := quizgen.DummyItems(videoID, video.Title, req.QuestionCount, req.QuestionType, 0)
			if err := s.store.Questions().Replace(ctx, videoID, items); err != nil {
				s.log.Error("save questions", "video_id", videoID, "error", err)
				s.writeError(w, http.StatusInternalServerError, "failed to save questions")
				return
			}
			s.writeGenerated(w, items)
			return
		}
		chunks = transcript.Group(segments, s.cfg.Quiz.WindowSize)
	}

	if len(chunks) == 0 {
		s.writeError(w, http.StatusBadRequest, "No content chunks available for this video")
		return
	}

	source := make([]quizgen.SourceChunk, len(chunks))
	for i, c := range chunks {
		source[i] = quizgen.SourceChunk{
			Text:      c.Text,
			StartTime: c.StartTime,
			EndTime:   c.EndTime,
		}
	}

	result := s.assembler.Assemble(ctx, quizgen.AssembleInput{
		Chunks:      source,
		VideoID:     videoID,
		TargetCount: req.QuestionCount,
		Type:        req.QuestionType,
		Counter:     0,
	})

	if err := s.store.Questions().Replace(ctx, videoID, result.Items); err != nil {
		s.log.Error("save questions", "video_id", videoID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to save questions")
		return
	}

	s.log.Info("questions generated",
		"video_id", videoID,
		"type", req.QuestionType,
		"count", len(result.Items))
	s.writeGenerated(w, result.Items)
}

func (s *Server) writeGenerated(w http.ResponseWriter, items []quizgen.Item) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":             true,
		"questions_generated": len(items),
		"questions":           items,
	})
}

// fetchYouTubeSegments loads the live caption track for a YouTube
// video.
func (s *Server) fetchYouTubeSegments(r *http.Request, video *domain.Video) ([]transcript.Segment, error) {
	ytID := youtube.ExtractVideoID(video.FilePath)
	if ytID == "" {
		return nil, errors.New("could not extract YouTube video ID")
	}
	return s.yt.Transcript(r.Context(), ytID)
}

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.Questions().ForVideo(r.Context(), chi.URLParam(r, "videoID"))
	if err != nil {
		s.log.Error("list questions", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to list questions")
		return
	}
	if items == nil {
		items = []quizgen.Item{}
	}
	s.writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	item, err := s.store.Questions().Get(r.Context(), chi.URLParam(r, "questionID"))
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			s.writeError(w, http.StatusNotFound, "Question not found")
			return
		}
		s.log.Error("load question", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to load question")
		return
	}
	s.writeJSON(w, http.StatusOK, item)
}

type verifyRequest struct {
	// Answer is a pointer so an empty string still counts as an
	// answer while a missing field does not.
	Answer *string `json:"answer"`
}

func (s *Server) handleVerifyAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Answer == nil {
		s.writeError(w, http.StatusBadRequest, "No answer provided")
		return
	}

	item, err := s.store.Questions().Get(ctx, chi.URLParam(r, "questionID"))
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			s.writeError(w, http.StatusNotFound, "Question not found")
			return
		}
		s.log.Error("load question", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to load question")
		return
	}

	meta := item.Meta()
	contextText := ""
	if video, err := s.store.Videos().Get(ctx, meta.VideoID); err == nil {
		contextText = transcript.Overlapping(video.Segments, meta.TimestampStart, meta.TimestampEnd)
	}

	result := s.evaluator.Evaluate(ctx, item, *req.Answer, contextText)
	s.writeJSON(w, http.StatusOK, result)
}

type askRequest struct {
	Question  string  `json:"question"`
	Timestamp float64 `json:"timestamp"`
}

func (s *Server) handleAskQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Question == "" {
		s.writeError(w, http.StatusBadRequest, "Question is required")
		return
	}

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

	segments := video.Segments
	if youtube.IsVideoURL(video.FilePath) {
		if fetched, err := s.fetchYouTubeSegments(r, video); err == nil {
			segments = fetched
		} else {
			s.log.Warn("youtube transcript unavailable for context",
				"video_id", video.VideoID, "error", err)
		}
	}

	answer, err := s.evaluator.Ask(ctx, evaluate.AskInput{
		VideoTitle: video.Title,
		Question:   req.Question,
		Timestamp:  req.Timestamp,
		Context:    transcript.ContextAround(segments, req.Timestamp),
	})
	if err != nil {
		s.log.Error("answer question", "video_id", video.VideoID, "error", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}
