package services

import (
	"context"

	"github.com/google/uuid"

	"schoolapi/internal/app/models"
	"schoolapi/internal/app/models/dto"
	"schoolapi/internal/app/repositories"
	"schoolapi/internal/pkg/apperrors"
)

// EnrollmentService handles enrollment operations
type EnrollmentService struct {
	enrollmentRepo repositories.IEnrollmentRepository
	courseRepo     repositories.ICourseRepository
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(enrollmentRepo repositories.IEnrollmentRepository, courseRepo repositories.ICourseRepository) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
	}
}

// Enroll adds the user to the course
func (s *EnrollmentService) Enroll(ctx context.Context, userID uuid.UUID, courseID string) error {
	id, err := uuid.Parse(courseID)
	if err != nil {
		return apperrors.NewValidationError("Identificador de curso inválido")
	}

	enrollment := &models.Enrollment{
		UserID:   userID,
		CourseID: id,
	}

	return s.enrollmentRepo.Create(ctx, enrollment)
}

// ListByCourse returns one page of the course's enrolled users
func (s *EnrollmentService) ListByCourse(ctx context.Context, courseID string, page, pageSize int) (*dto.EnrollmentListResponse, error) {
	id, err := uuid.Parse(courseID)
	if err != nil {
		return nil, apperrors.NewValidationError("Identificador de curso inválido")
	}

	// Distinguish an unknown course from a course without enrollments
	if _, err := s.courseRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	enrolled, total, err := s.enrollmentRepo.ListByCourse(ctx, id, page, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]dto.EnrolledUserItem, 0, len(enrolled))
	for _, user := range enrolled {
		items = append(items, dto.EnrolledUserItem{
			UserID:    user.UserID.String(),
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		})
	}

	return &dto.EnrollmentListResponse{
		Total:       total,
		Enrollments: items,
	}, nil
}
