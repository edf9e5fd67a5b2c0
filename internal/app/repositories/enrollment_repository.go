package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"schoolapi/internal/app/models"
	"schoolapi/internal/pkg/apperrors"
	"schoolapi/internal/pkg/dberrors"
	"schoolapi/internal/pkg/helpers"
)

// IEnrollmentRepository defines enrollment data access operations
type IEnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	ListByCourse(ctx context.Context, courseID uuid.UUID, page, pageSize int) ([]models.EnrolledUser, int64, error)
}

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Create inserts an enrollment. The (user_id, course_id) pair is unique,
// so enrolling twice surfaces as a conflict.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (user_id, course_id)
		VALUES ($1, $2)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query, enrollment.UserID, enrollment.CourseID).Scan(&enrollment.CreatedAt)
	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "enrollments_user_id_course_id_key"):
			return apperrors.ErrAlreadyEnrolled
		case dberrors.IsForeignKeyViolation(err, "enrollments_course_id_fkey"):
			return apperrors.ErrCourseNotFound
		case dberrors.IsForeignKeyViolation(err, "enrollments_user_id_fkey"):
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// ListByCourse returns one page of a course's enrolled users plus the
// total enrollment count for the course.
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID uuid.UUID, page, pageSize int) ([]models.EnrolledUser, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	query := `
		SELECT u.id, u.name, u.email, e.created_at,
			COUNT(*) OVER() AS total_count
		FROM enrollments e
		JOIN users u ON u.id = e.user_id
		WHERE e.course_id = $1
		ORDER BY e.created_at, u.id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, courseID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	enrolled := []models.EnrolledUser{}
	var total int64

	for rows.Next() {
		var user models.EnrolledUser
		if err := rows.Scan(
			&user.UserID,
			&user.Name,
			&user.Email,
			&user.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrolled = append(enrolled, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(enrolled) == 0 {
		err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM enrollments WHERE course_id = $1`, courseID).Scan(&total)
		if err != nil {
			return nil, 0, fmt.Errorf("error counting enrollments: %w", err)
		}
	}

	return enrolled, total, nil
}
