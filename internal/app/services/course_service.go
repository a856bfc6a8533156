package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/tastapp/tast-backend/internal/app/models"
	"github.com/tastapp/tast-backend/internal/app/models/dto"
	"github.com/tastapp/tast-backend/internal/app/repositories"
	"github.com/tastapp/tast-backend/internal/db"
	"github.com/tastapp/tast-backend/internal/pkg/apperrors"
	"github.com/tastapp/tast-backend/internal/pkg/extract"
	"github.com/tastapp/tast-backend/internal/pkg/filestorage"
	"github.com/tastapp/tast-backend/internal/pkg/validation"
	"github.com/tastapp/tast-backend/internal/quizgen"
)

// CourseService handles course creation and retrieval. Creating a course
// runs the whole pipeline: store the uploaded PDFs, extract their text,
// generate the quiz questions and persist everything atomically.
type CourseService struct {
	courseRepo *repositories.CourseRepository
	storage    *filestorage.LocalStorage
	pool       *pgxpool.Pool
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	storage *filestorage.LocalStorage,
	pool *pgxpool.Pool,
	logger zerolog.Logger,
) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		storage:    storage,
		pool:       pool,
		logger:     logger,
	}
}

// Create stores the uploaded PDFs, generates the quiz and persists the
// course. Saved files are removed again if any later step fails.
func (s *CourseService) Create(
	ctx context.Context,
	req *dto.CreateCourseRequest,
	pdfFile *multipart.FileHeader,
	additionalFiles []*multipart.FileHeader,
) (*dto.CourseDetails, error) {
	if !validation.ValidCourseName(req.CourseName) {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "course name must be between 2 and 255 characters")
	}
	if !validation.ValidQuestionCount(req.NumQuestions) {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("number of questions must be between 1 and %d", validation.MaxQuestionsPerCourse))
	}

	questionType, err := quizgen.ParseType(req.QuestionType)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	if pdfFile == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "course PDF file is required")
	}

	pdfData, err := readUpload(pdfFile)
	if err != nil {
		return nil, err
	}
	if !extract.IsPDF(pdfData) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidFormat, "uploaded course file is not a PDF")
	}

	text, err := extract.Text(pdfFile.Filename, pdfData)
	if err != nil {
		return nil, err
	}

	questions, questionsJSON, err := buildQuestions(text, req.NumQuestions, questionType)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode generated questions")
		return nil, fmt.Errorf("failed to encode questions: %w", err)
	}
	if len(questions) == 0 {
		s.logger.Warn().Str("course", req.CourseName).Msg("PDF yielded no usable sentences, creating course with empty quiz")
	}

	savedPDF, err := s.storage.SaveCourseFile(pdfFile, req.CourseName)
	if err != nil {
		return nil, err
	}
	savedFiles := []string{savedPDF}

	cleanup := func() {
		for _, f := range savedFiles {
			if delErr := s.storage.DeleteFile(f); delErr != nil {
				s.logger.Warn().Err(delErr).Str("file", f).Msg("Failed to clean up saved file")
			}
		}
	}

	additionalSaved := make([]string, 0, len(additionalFiles))
	for i, fh := range additionalFiles {
		saved, err := s.storage.SaveAdditionalFile(fh, req.CourseName, i)
		if err != nil {
			cleanup()
			return nil, err
		}
		savedFiles = append(savedFiles, saved)
		additionalSaved = append(additionalSaved, saved)
	}

	course := &models.Course{
		Name:         req.CourseName,
		PDFFile:      savedPDF,
		NumQuestions: len(questions),
		QuestionType: questionType.String(),
		Language:     req.Language,
		Questions:    string(questionsJSON),
	}

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		return s.courseRepo.CreateTx(ctx, tx, course)
	})
	if err != nil {
		cleanup()
		return nil, err
	}

	s.logger.Info().
		Int64("courseID", course.ID).
		Str("name", course.Name).
		Int("questions", len(questions)).
		Str("type", course.QuestionType).
		Msg("Course created")

	return &dto.CourseDetails{
		ID:              course.ID,
		Name:            course.Name,
		PDFFile:         course.PDFFile,
		NumQuestions:    course.NumQuestions,
		QuestionType:    course.QuestionType,
		Language:        course.Language,
		AdditionalFiles: additionalSaved,
		Questions:       questions,
	}, nil
}

// GetByID returns a course with its decoded questions.
func (s *CourseService) GetByID(ctx context.Context, id int64) (*dto.CourseWithQuestions, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	questions, err := decodeQuestions(course.Questions)
	if err != nil {
		s.logger.Error().Err(err).Int64("courseID", id).Msg("Failed to decode stored questions")
		return nil, fmt.Errorf("failed to decode stored questions: %w", err)
	}

	return &dto.CourseWithQuestions{
		ID:           course.ID,
		Name:         course.Name,
		NumQuestions: course.NumQuestions,
		QuestionType: course.QuestionType,
		Language:     course.Language,
		Questions:    questions,
	}, nil
}

// GetAll returns all courses as summaries, without their questions.
func (s *CourseService) GetAll(ctx context.Context) ([]dto.CourseSummary, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.CourseSummary, 0, len(courses))
	for _, c := range courses {
		summaries = append(summaries, dto.CourseSummary{
			ID:           c.ID,
			Name:         c.Name,
			NumQuestions: c.NumQuestions,
			QuestionType: c.QuestionType,
			Language:     c.Language,
			CreatedAt:    c.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return summaries, nil
}

// buildQuestions generates at most n questions of the given type from
// extracted text and serializes them for storage. A text with no usable
// sentences yields an empty list, never an error; the stored count may
// end up below the requested one.
func buildQuestions(text string, n int, qt quizgen.Type) ([]quizgen.Question, []byte, error) {
	questions := quizgen.Generate(quizgen.Sentences(text), n, qt)
	if questions == nil {
		questions = []quizgen.Question{}
	}

	encoded, err := encodeQuestions(questions)
	if err != nil {
		return nil, nil, err
	}
	return questions, encoded, nil
}

// readUpload reads the full content of a multipart upload.
func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	return buf.Bytes(), nil
}

// encodeQuestions marshals questions without HTML escaping so the Arabic
// text is stored as-is.
func encodeQuestions(questions []quizgen.Question) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(questions); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func decodeQuestions(stored string) ([]quizgen.Question, error) {
	var questions []quizgen.Question
	if err := json.Unmarshal([]byte(stored), &questions); err != nil {
		return nil, err
	}
	return questions, nil
}
