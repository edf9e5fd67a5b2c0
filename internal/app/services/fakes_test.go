package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolapi/internal/app/models"
	"schoolapi/internal/pkg/apperrors"
	"schoolapi/internal/pkg/helpers"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			found := *user
			return &found, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeCourseRepo struct {
	courses []*models.Course
}

func (f *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	for _, existing := range f.courses {
		if existing.Title == course.Title {
			return apperrors.ErrCourseTitleExists
		}
	}
	course.ID = uuid.New()
	course.CreatedAt = time.Now()
	stored := *course
	f.courses = append(f.courses, &stored)
	return nil
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	for _, course := range f.courses {
		if course.ID == id {
			found := *course
			return &found, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (f *fakeCourseRepo) List(_ context.Context, search string, page, pageSize int) ([]models.CourseWithEnrollments, int64, error) {
	matches := []models.CourseWithEnrollments{}
	for _, course := range f.courses {
		if search != "" && !strings.Contains(strings.ToLower(course.Title), strings.ToLower(search)) {
			continue
		}
		matches = append(matches, models.CourseWithEnrollments{
			ID:    course.ID,
			Title: course.Title,
		})
	}

	total := int64(len(matches))
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	if offset >= len(matches) {
		return []models.CourseWithEnrollments{}, total, nil
	}
	end := offset + limit
	if end > len(matches) {
		end = len(matches)
	}
	return matches[offset:end], total, nil
}

type fakeEnrollmentRepo struct {
	courses     *fakeCourseRepo
	enrollments []models.Enrollment
}

func (f *fakeEnrollmentRepo) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if _, err := f.courses.GetByID(ctx, enrollment.CourseID); err != nil {
		return apperrors.ErrCourseNotFound
	}
	for _, existing := range f.enrollments {
		if existing.UserID == enrollment.UserID && existing.CourseID == enrollment.CourseID {
			return apperrors.ErrAlreadyEnrolled
		}
	}
	enrollment.CreatedAt = time.Now()
	f.enrollments = append(f.enrollments, *enrollment)
	return nil
}

func (f *fakeEnrollmentRepo) ListByCourse(_ context.Context, courseID uuid.UUID, page, pageSize int) ([]models.EnrolledUser, int64, error) {
	matches := []models.EnrolledUser{}
	for _, enrollment := range f.enrollments {
		if enrollment.CourseID == courseID {
			matches = append(matches, models.EnrolledUser{
				UserID:    enrollment.UserID,
				CreatedAt: enrollment.CreatedAt,
			})
		}
	}

	total := int64(len(matches))
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	if offset >= len(matches) {
		return []models.EnrolledUser{}, total, nil
	}
	end := offset + limit
	if end > len(matches) {
		end = len(matches)
	}
	return matches[offset:end], total, nil
}
