package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"schoolapi/internal/pkg/apperrors"
)

func testEnrollmentService() (*EnrollmentService, *fakeCourseRepo, *fakeEnrollmentRepo) {
	courseRepo := &fakeCourseRepo{}
	enrollmentRepo := &fakeEnrollmentRepo{courses: courseRepo}
	return NewEnrollmentService(enrollmentRepo, courseRepo), courseRepo, enrollmentRepo
}

func TestEnroll(t *testing.T) {
	svc, courseRepo, enrollmentRepo := testEnrollmentService()
	course := seedCourse(t, courseRepo, "Introdução a Go", nil)
	userID := uuid.New()

	if err := svc.Enroll(context.Background(), userID, course.ID.String()); err != nil {
		t.Fatalf("Enroll error: %v", err)
	}
	if len(enrollmentRepo.enrollments) != 1 {
		t.Fatalf("expected 1 enrollment, got %d", len(enrollmentRepo.enrollments))
	}
	if enrollmentRepo.enrollments[0].UserID != userID {
		t.Fatal("enrollment stored with wrong user id")
	}
}

func TestEnrollTwice(t *testing.T) {
	svc, courseRepo, _ := testEnrollmentService()
	course := seedCourse(t, courseRepo, "Introdução a Go", nil)
	userID := uuid.New()

	if err := svc.Enroll(context.Background(), userID, course.ID.String()); err != nil {
		t.Fatalf("Enroll error: %v", err)
	}
	err := svc.Enroll(context.Background(), userID, course.ID.String())
	if !errors.Is(err, apperrors.ErrAlreadyEnrolled) {
		t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
	}
}

func TestEnrollUnknownCourse(t *testing.T) {
	svc, _, _ := testEnrollmentService()

	err := svc.Enroll(context.Background(), uuid.New(), uuid.NewString())
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestEnrollMalformedCourseID(t *testing.T) {
	svc, _, _ := testEnrollmentService()

	err := svc.Enroll(context.Background(), uuid.New(), "not-a-uuid")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListByCourse(t *testing.T) {
	svc, courseRepo, _ := testEnrollmentService()
	course := seedCourse(t, courseRepo, "Introdução a Go", nil)

	first := uuid.New()
	second := uuid.New()
	if err := svc.Enroll(context.Background(), first, course.ID.String()); err != nil {
		t.Fatalf("Enroll error: %v", err)
	}
	if err := svc.Enroll(context.Background(), second, course.ID.String()); err != nil {
		t.Fatalf("Enroll error: %v", err)
	}

	resp, err := svc.ListByCourse(context.Background(), course.ID.String(), 1, 20)
	if err != nil {
		t.Fatalf("ListByCourse error: %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("expected total 2, got %d", resp.Total)
	}
	if len(resp.Enrollments) != 2 {
		t.Fatalf("expected 2 enrollments, got %d", len(resp.Enrollments))
	}
}

func TestListByCourseEmpty(t *testing.T) {
	svc, courseRepo, _ := testEnrollmentService()
	course := seedCourse(t, courseRepo, "Introdução a Go", nil)

	resp, err := svc.ListByCourse(context.Background(), course.ID.String(), 1, 20)
	if err != nil {
		t.Fatalf("ListByCourse error: %v", err)
	}
	if resp.Total != 0 || len(resp.Enrollments) != 0 {
		t.Fatalf("expected empty listing, got total=%d len=%d", resp.Total, len(resp.Enrollments))
	}
}

func TestListByCourseUnknownCourse(t *testing.T) {
	svc, _, _ := testEnrollmentService()

	_, err := svc.ListByCourse(context.Background(), uuid.NewString(), 1, 20)
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}
