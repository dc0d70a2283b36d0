package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/placement-go-api/internal/dto"
	"github.com/noah-isme/placement-go-api/internal/models"
	"github.com/noah-isme/placement-go-api/internal/repository"
)

func newPortfolioServiceForTest(t *testing.T) PortfolioService {
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

	return NewPortfolioService(repository.NewPortfolioRepository(db), testLogger())
}

func TestPortfolioServiceProjectCRUD(t *testing.T) {
	svc := newPortfolioServiceForTest(t)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, studentActor, dto.ProjectRequest{
		Title:     "Campus Portal",
		TechStack: "Go, Postgres",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, studentActor.ID, created.UserID)

	updated, err := svc.UpdateProject(ctx, studentActor, created.ID, dto.ProjectRequest{
		Title:     "Campus Portal v2",
		TechStack: "Go, Postgres, Redis",
	})
	require.NoError(t, err)
	require.Equal(t, "Campus Portal v2", updated.Title)

	listed, err := svc.ListProjects(ctx, studentActor)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.NoError(t, svc.DeleteProject(ctx, studentActor, created.ID))

	listed, err = svc.ListProjects(ctx, studentActor)
	require.NoError(t, err)
	require.Empty(t, listed)
}

func TestPortfolioServiceHidesOtherStudentsEntries(t *testing.T) {
	svc := newPortfolioServiceForTest(t)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, studentActor, dto.ProjectRequest{Title: "Campus Portal"})
	require.NoError(t, err)

	other := Actor{ID: 11, Role: models.RoleStudent}

	// Someone else's entry looks exactly like a missing one.
	_, err = svc.UpdateProject(ctx, other, created.ID, dto.ProjectRequest{Title: "Hijacked"})
	require.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteProject(ctx, other, created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	listed, err := svc.ListProjects(ctx, other)
	require.NoError(t, err)
	require.Empty(t, listed)
}

func TestPortfolioServiceRejectsNonStudents(t *testing.T) {
	svc := newPortfolioServiceForTest(t)
	ctx := context.Background()

	_, err := svc.CreateProject(ctx, adminActor, dto.ProjectRequest{Title: "x"})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.CreateCertificate(ctx, coordinatorActor, dto.CertificateRequest{Name: "x"})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestPortfolioServiceExperienceDateValidation(t *testing.T) {
	svc := newPortfolioServiceForTest(t)
	ctx := context.Background()

	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	before := start.AddDate(0, -2, 0)
	after := start.AddDate(0, 4, 0)

	_, err := svc.CreateExperience(ctx, studentActor, dto.ExperienceRequest{
		JobTitle:         "Intern",
		CompanyName:      "Acme",
		StartDate:        start,
		EndDate:          &after,
		CurrentlyWorking: true,
	})
	require.ErrorIs(t, err, ErrInvalid)

	_, err = svc.CreateExperience(ctx, studentActor, dto.ExperienceRequest{
		JobTitle:    "Intern",
		CompanyName: "Acme",
		StartDate:   start,
		EndDate:     &before,
	})
	require.ErrorIs(t, err, ErrInvalid)

	created, err := svc.CreateExperience(ctx, studentActor, dto.ExperienceRequest{
		JobTitle:    "Intern",
		CompanyName: "Acme",
		StartDate:   start,
		EndDate:     &after,
	})
	require.NoError(t, err)
	require.Equal(t, "Acme", created.CompanyName)
}

func TestPortfolioServiceAccomplishmentAndCertificate(t *testing.T) {
	svc := newPortfolioServiceForTest(t)
	ctx := context.Background()

	accomplishment, err := svc.CreateAccomplishment(ctx, studentActor, dto.AccomplishmentRequest{
		Title:  "Hackathon winner",
		Issuer: "Smart India Hackathon",
	})
	require.NoError(t, err)

	updatedAcc, err := svc.UpdateAccomplishment(ctx, studentActor, accomplishment.ID, dto.AccomplishmentRequest{
		Title: "Hackathon finalist",
	})
	require.NoError(t, err)
	require.Equal(t, "Hackathon finalist", updatedAcc.Title)

	certificate, err := svc.CreateCertificate(ctx, studentActor, dto.CertificateRequest{
		Name:         "AWS Cloud Practitioner",
		Organization: "AWS",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCertificate(ctx, studentActor, certificate.ID))
	err = svc.DeleteCertificate(ctx, studentActor, certificate.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
