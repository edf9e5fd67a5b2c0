package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"schoolapi/internal/app/models"
	"schoolapi/internal/app/models/dto"
	"schoolapi/internal/app/repositories"
	"schoolapi/internal/pkg/apperrors"
)

// CourseService handles course operations
type CourseService struct {
	courseRepo repositories.ICourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repositories.ICourseRepository) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
	}
}

// Create persists a new course and returns its generated id
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CreateCourseResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("Título é obrigatório")
	}

	var description *string
	if req.Description != nil && strings.TrimSpace(*req.Description) != "" {
		description = req.Description
	}

	course := &models.Course{
		Title:       title,
		Description: description,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return &dto.CreateCourseResponse{CourseID: course.ID.String()}, nil
}

// GetByID fetches a single course by its id string
func (s *CourseService) GetByID(ctx context.Context, id string) (*dto.CourseResponse, error) {
	courseID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NewValidationError("Identificador de curso inválido")
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	return &dto.CourseResponse{
		Course: dto.CourseDetail{
			ID:          course.ID.String(),
			Title:       course.Title,
			Description: course.Description,
		},
	}, nil
}

// List returns one page of courses filtered by an optional
// case-insensitive title search, each with its enrollment count. Total
// reflects the matches before pagination.
func (s *CourseService) List(ctx context.Context, search string, page, pageSize int) (*dto.CourseListResponse, error) {
	courses, total, err := s.courseRepo.List(ctx, strings.TrimSpace(search), page, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CourseListItem, 0, len(courses))
	for _, course := range courses {
		items = append(items, dto.CourseListItem{
			ID:          course.ID.String(),
			Title:       course.Title,
			Enrollments: course.Enrollments,
		})
	}

	return &dto.CourseListResponse{
		Total:   total,
		Courses: items,
	}, nil
}
