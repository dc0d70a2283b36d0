package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/placement-go-api/internal/models"
	"github.com/noah-isme/placement-go-api/internal/repository"
)

func newResumeServiceForTest(t *testing.T, users *userRepoStub, profiles *profileRepoStub) ResumeService {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Project{},
		&models.Experience{},
		&models.Accomplishment{},
		&models.Certificate{},
	))

	return NewResumeService(users, profiles, repository.NewPortfolioRepository(db), testLogger())
}

func TestResumeServiceGenerateStudentsOnly(t *testing.T) {
	svc := newResumeServiceForTest(t, newUserRepoStub(), newProfileRepoStub())

	_, _, err := svc.Generate(context.Background(), adminActor)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestResumeServiceGeneratePrefersProfileName(t *testing.T) {
	users := newUserRepoStub(models.User{
		ID:    10,
		Name:  "asha",
		Email: "asha@example.com",
		Role:  models.RoleStudent,
	})
	profiles := newProfileRepoStub(models.Profile{
		ID:     1,
		UserID: 10,
		BasicDetails: datatypes.NewJSONType(models.BasicDetails{
			FullName: "Asha Rao",
		}),
	})
	svc := newResumeServiceForTest(t, users, profiles)

	content, filename, err := svc.Generate(context.Background(), studentActor)
	require.NoError(t, err)
	require.Equal(t, "resume-asha-rao.pdf", filename)
	require.Equal(t, "%PDF", string(content[:4]))
}

func TestResumeServiceGenerateWithoutProfile(t *testing.T) {
	users := newUserRepoStub(models.User{
		ID:    10,
		Name:  "Asha Rao",
		Email: "asha@example.com",
		Role:  models.RoleStudent,
	})
	svc := newResumeServiceForTest(t, users, newProfileRepoStub())

	content, filename, err := svc.Generate(context.Background(), studentActor)
	require.NoError(t, err)
	require.Equal(t, "resume-asha-rao.pdf", filename)
	require.NotEmpty(t, content)
}

func TestResumeServiceGenerateMissingUser(t *testing.T) {
	svc := newResumeServiceForTest(t, newUserRepoStub(), newProfileRepoStub())

	_, _, err := svc.Generate(context.Background(), studentActor)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBuildEducationOrdersSchoolRecords(t *testing.T) {
	rows := buildEducation(models.Education{
		Current:  models.CurrentEducation{InstitutionName: "NIT Trichy", Program: "B.Tech", Branch: "CSE", PassoutBatch: "2026", CGPA: floatPtr(8.251)},
		ClassX:   models.SchoolRecord{Institution: "DAV School", Board: "CBSE", Percentage: floatPtr(91.4)},
		ClassXII: models.SchoolRecord{Institution: "DAV Senior School", Board: "CBSE", Percentage: floatPtr(88.0)},
	})

	require.Len(t, rows, 3)
	require.Equal(t, "NIT Trichy", rows[0].Institution)
	require.Equal(t, "B.Tech CSE", rows[0].Degree)
	require.Equal(t, "CGPA 8.25", rows[0].Score)
	require.Equal(t, "Class XII", rows[1].Degree)
	require.Equal(t, "88.0%", rows[1].Score)
	require.Equal(t, "Class X", rows[2].Degree)
}

func TestSlugify(t *testing.T) {
	require.Equal(t, "asha-rao", slugify("  Asha   Rao "))
	require.Equal(t, "student", slugify("   "))
}
