package controllers_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"schoolapi/internal/app/controllers"
	"schoolapi/internal/app/models"
	"schoolapi/internal/app/routes"
	"schoolapi/internal/app/services"
	"schoolapi/internal/middleware"
	"schoolapi/internal/pkg/apperrors"
	"schoolapi/internal/pkg/auth"
	"schoolapi/internal/pkg/helpers"
)

// apiTest spins up the real router over in-memory repositories so the
// tests exercise routing, middleware, controllers and services together.
type apiTest struct {
	t           *testing.T
	router      *gin.Engine
	users       *fakeUserRepo
	courses     *fakeCourseRepo
	enrollments *fakeEnrollmentRepo
	jwtService  *auth.JWTService
}

func newAPITest(t *testing.T) *apiTest {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &fakeUserRepo{}
	courses := &fakeCourseRepo{}
	enrollments := &fakeEnrollmentRepo{courses: courses, users: users}
	courses.enrollments = enrollments

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "schoolapi-test",
	})

	logger := zerolog.Nop()
	authService := services.NewAuthService(users, jwtService)
	courseService := services.NewCourseService(courses)
	enrollmentService := services.NewEnrollmentService(enrollments, courses)

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewAuthController(authService, logger),
		controllers.NewCourseController(courseService, logger),
		controllers.NewEnrollmentController(enrollmentService, logger),
		middleware.NewAuthMiddleware(jwtService),
	)

	return &apiTest{
		t:           t,
		router:      router,
		users:       users,
		courses:     courses,
		enrollments: enrollments,
		jwtService:  jwtService,
	}
}

func (a *apiTest) request(method, path, token, body string) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	a.router.ServeHTTP(recorder, req)
	return recorder
}

func (a *apiTest) createUser(email, password string, role models.Role) *models.User {
	a.t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		a.t.Fatalf("HashPassword error: %v", err)
	}
	user := &models.User{
		Name:     "Ana Souza",
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if err := a.users.CreateUser(context.Background(), user); err != nil {
		a.t.Fatalf("CreateUser error: %v", err)
	}
	return user
}

func (a *apiTest) tokenFor(user *models.User) string {
	a.t.Helper()

	token, _, err := a.jwtService.GenerateToken(user)
	if err != nil {
		a.t.Fatalf("GenerateToken error: %v", err)
	}
	return token
}

func (a *apiTest) createCourse(title string, description *string) *models.Course {
	a.t.Helper()

	course := &models.Course{Title: title, Description: description}
	if err := a.courses.Create(context.Background(), course); err != nil {
		a.t.Fatalf("Create course error: %v", err)
	}
	return course
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", recorder.Body.String(), err)
	}
	return body
}

func requireStatus(t *testing.T, recorder *httptest.ResponseRecorder, want int) {
	t.Helper()

	if recorder.Code != want {
		t.Fatalf("expected status %d, got %d (body: %s)", want, recorder.Code, recorder.Body.String())
	}
}

// --- In-memory repository fakes ---

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
	courses     []*models.Course
	enrollments *fakeEnrollmentRepo
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
			ID:          course.ID,
			Title:       course.Title,
			Enrollments: f.enrollments.countByCourse(course.ID),
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
	courses *fakeCourseRepo
	users   *fakeUserRepo
	rows    []models.Enrollment
}

func (f *fakeEnrollmentRepo) countByCourse(courseID uuid.UUID) int64 {
	var count int64
	for _, row := range f.rows {
		if row.CourseID == courseID {
			count++
		}
	}
	return count
}

func (f *fakeEnrollmentRepo) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if _, err := f.courses.GetByID(ctx, enrollment.CourseID); err != nil {
		return apperrors.ErrCourseNotFound
	}
	for _, existing := range f.rows {
		if existing.UserID == enrollment.UserID && existing.CourseID == enrollment.CourseID {
			return apperrors.ErrAlreadyEnrolled
		}
	}
	enrollment.CreatedAt = time.Now()
	f.rows = append(f.rows, *enrollment)
	return nil
}

func (f *fakeEnrollmentRepo) ListByCourse(ctx context.Context, courseID uuid.UUID, page, pageSize int) ([]models.EnrolledUser, int64, error) {
	matches := []models.EnrolledUser{}
	for _, row := range f.rows {
		if row.CourseID != courseID {
			continue
		}
		enrolled := models.EnrolledUser{UserID: row.UserID, CreatedAt: row.CreatedAt}
		if user, err := f.users.GetUserByID(ctx, row.UserID); err == nil {
			enrolled.Name = user.Name
			enrolled.Email = user.Email
		}
		matches = append(matches, enrolled)
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
