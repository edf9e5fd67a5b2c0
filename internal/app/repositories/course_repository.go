package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"schoolapi/internal/app/models"
	"schoolapi/internal/pkg/apperrors"
	"schoolapi/internal/pkg/dberrors"
	"schoolapi/internal/pkg/helpers"
)

// ICourseRepository defines course data access operations
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	List(ctx context.Context, search string, page, pageSize int) ([]models.CourseWithEnrollments, int64, error)
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course and fills in the generated id and timestamp
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (title, description)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, course.Title, course.Description).Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_title_key") {
			return apperrors.ErrCourseTitleExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by id
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	query := `
		SELECT id, title, description, created_at
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// List returns one page of courses with their enrollment counts plus the
// total number of courses matching the search filter before pagination.
// The count is a left-join aggregate so courses without enrollments show
// zero, and total comes from a window over the grouped rows.
func (r *CourseRepository) List(ctx context.Context, search string, page, pageSize int) ([]models.CourseWithEnrollments, int64, error) {
	query := `
		SELECT
			c.id, c.title,
			COUNT(e.user_id) AS enrollments,
			COUNT(*) OVER() AS total_count
		FROM courses c
		LEFT JOIN enrollments e ON e.course_id = c.id
		WHERE 1=1
	`

	args := []interface{}{}
	argIndex := 1

	if search != "" {
		query += fmt.Sprintf(" AND c.title ILIKE $%d", argIndex)
		args = append(args, "%"+search+"%")
		argIndex++
	}

	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	query += " GROUP BY c.id, c.title, c.created_at"
	query += " ORDER BY c.created_at, c.id"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses := []models.CourseWithEnrollments{}
	var total int64

	for rows.Next() {
		var course models.CourseWithEnrollments
		if err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Enrollments,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// A page past the end returns no rows and therefore no window total;
	// fall back to a plain count so total stays correct.
	if len(courses) == 0 {
		total, err = r.countMatching(ctx, search)
		if err != nil {
			return nil, 0, err
		}
	}

	return courses, total, nil
}

func (r *CourseRepository) countMatching(ctx context.Context, search string) (int64, error) {
	var total int64

	if search != "" {
		err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses WHERE title ILIKE $1`, "%"+search+"%").Scan(&total)
		if err != nil {
			return 0, fmt.Errorf("error counting courses: %w", err)
		}
		return total, nil
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return total, nil
}
