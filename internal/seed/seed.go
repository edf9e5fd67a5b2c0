package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "schoolapi/internal/app/models"
	appRepos "schoolapi/internal/app/repositories"
	"schoolapi/internal/pkg/apperrors"
	"schoolapi/internal/pkg/auth"
)

// CreateDefaultData creates a default manager account and sample courses
// if they don't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default manager account --- //
	exists, err := userRepo.EmailExists(ctx, "gerente@schoolapi.dev")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if manager user exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Msg("Creating default manager user...")

		hashedPassword, err := auth.HashPassword("gerente123")
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing manager password")
			finalErr = errors.Join(finalErr, err)
		} else {
			manager := &appModels.User{
				Name:     "Gerente",
				Email:    "gerente@schoolapi.dev",
				Password: hashedPassword,
				Role:     appModels.RoleManager,
			}

			if err := userRepo.CreateUser(ctx, manager); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				lgr.Error().Err(err).Msg("Error creating manager user")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Str("userID", manager.ID.String()).Msg("Default manager user created")
			}
		}
	} else {
		lgr.Info().Msg("Manager user already exists, skipping creation")
	}

	// --- Sample courses --- //
	sampleDescription := "Curso introdutório"
	sampleCourses := []*appModels.Course{
		{Title: "Node.js Basics", Description: &sampleDescription},
		{Title: "Advanced JavaScript"},
		{Title: "Web Development with React"},
	}

	for _, course := range sampleCourses {
		if err := courseRepo.Create(ctx, course); err != nil && !errors.Is(err, apperrors.ErrCourseTitleExists) {
			lgr.Error().Err(err).Str("title", course.Title).Msg("Error creating sample course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
