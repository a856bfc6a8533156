package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tastapp/tast-backend/internal/app/models"
	"github.com/tastapp/tast-backend/internal/pkg/logger"
)

// ICourseRepository defines course-related database operations
type ICourseRepository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateTx inserts a new course inside an existing transaction and sets
// its ID. Course creation is transactional so a failed insert never
// leaves orphaned question data.
func (r *CourseRepository) CreateTx(ctx context.Context, tx pgx.Tx, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("name", "pdf_file", "num_questions", "question_type", "language", "questions").
		Values(course.Name, course.PDFFile, course.NumQuestions, course.QuestionType, course.Language, course.Questions).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	err = tx.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Str("name", course.Name).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID. Returns (nil, nil) when not found.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select("id", "name", "pdf_file", "num_questions", "question_type", "language", "questions", "created_at", "updated_at").
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course := &models.Course{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&course.ID,
		&course.Name,
		&course.PDFFile,
		&course.NumQuestions,
		&course.QuestionType,
		&course.Language,
		&course.Questions,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// GetAll retrieves all courses ordered by creation time, newest first.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.sb.Select("id", "name", "pdf_file", "num_questions", "question_type", "language", "questions", "created_at", "updated_at").
		From("courses").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all courses SQL")
		return nil, fmt.Errorf("failed to build get all courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.PDFFile,
			&course.NumQuestions,
			&course.QuestionType,
			&course.Language,
			&course.Questions,
			&course.CreatedAt,
			&course.UpdatedAt,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning course row")
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}
