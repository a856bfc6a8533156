package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tastapp/tast-backend/internal/app/models/dto"
	"github.com/tastapp/tast-backend/internal/app/repositories"
	"github.com/tastapp/tast-backend/internal/pkg/apperrors"
	"github.com/tastapp/tast-backend/internal/quizgen"
)

// QuizService grades quiz submissions
type QuizService struct {
	courseRepo repositories.ICourseRepository
	logger     zerolog.Logger
}

// NewQuizService creates a new QuizService
func NewQuizService(courseRepo repositories.ICourseRepository, logger zerolog.Logger) *QuizService {
	return &QuizService{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// Submit grades a quiz submission. answers maps question index to the
// submitted answer text. The claimed total is the denominator as
// submitted; only a missing or non-positive claim falls back to the
// stored question count.
func (s *QuizService) Submit(ctx context.Context, courseID int64, total int, answers map[int]string) (*dto.QuizResult, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	if total <= 0 {
		total = course.NumQuestions
	}

	result := quizgen.Score(total, answers)

	s.logger.Info().
		Int64("courseID", courseID).
		Int("answered", result.Answered).
		Int("total", result.Total).
		Str("score", result.String()).
		Msg("Quiz submitted")

	return &dto.QuizResult{
		CourseID: courseID,
		Answered: result.Answered,
		Total:    result.Total,
		Score:    result.String(),
	}, nil
}
