package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/noah-isme/placement-go-api/internal/dto"
	"github.com/noah-isme/placement-go-api/internal/models"
)

var (
	adminActor       = Actor{ID: 1, Role: models.RoleAdmin}
	studentActor     = Actor{ID: 10, Role: models.RoleStudent, Department: "CSE"}
	coordinatorActor = Actor{ID: 20, Role: models.RoleCoordinator, Department: "CSE"}
)

func newDriveServiceForTest(drives *driveRepoStub, users *userRepoStub, profiles *profileRepoStub) (DriveService, *notifierStub, *mailerStub) {
	notifier := &notifierStub{}
	mail := &mailerStub{}
	svc := NewDriveService(drives, users, profiles, notifier, mail, testLogger())
	return svc, notifier, mail
}

func TestDriveServiceCreateRequiresAdmin(t *testing.T) {
	svc, _, _ := newDriveServiceForTest(newDriveRepoStub(), newUserRepoStub(), newProfileRepoStub())

	_, err := svc.Create(context.Background(), coordinatorActor, dto.DriveCreateRequest{
		CompanyName:    "Acme",
		JobRole:        "Engineer",
		JobDescription: "Build things",
		Location:       "Mumbai",
	})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestDriveServiceCreateDefaultsToDraft(t *testing.T) {
	svc, _, _ := newDriveServiceForTest(newDriveRepoStub(), newUserRepoStub(), newProfileRepoStub())

	resp, err := svc.Create(context.Background(), adminActor, dto.DriveCreateRequest{
		CompanyName:    "Acme",
		JobRole:        "Engineer",
		JobDescription: "Build things",
		Location:       "Mumbai",
	})
	require.NoError(t, err)
	require.Equal(t, models.DriveStatusDraft, resp.Status)
	require.Equal(t, adminActor.ID, resp.CreatedBy)
}

func TestDriveServiceGetHidesUnsharedDrivesFromStudents(t *testing.T) {
	drives := newDriveRepoStub(activeDrive(1))
	svc, _, _ := newDriveServiceForTest(drives, newUserRepoStub(), newProfileRepoStub())

	_, err := svc.Get(context.Background(), studentActor, 1)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = drives.AddShares(context.Background(), []models.DriveShare{
		{DriveID: 1, StudentID: studentActor.ID, SharedAt: time.Now()},
	})
	require.NoError(t, err)

	resp, err := svc.Get(context.Background(), studentActor, 1)
	require.NoError(t, err)
	require.Equal(t, uint(1), resp.ID)
}

func TestDriveServiceAssignRepeatIsNoOp(t *testing.T) {
	drives := newDriveRepoStub(activeDrive(1))
	users := newUserRepoStub(models.User{
		ID:         20,
		Name:       "Priya",
		Email:      "priya@example.com",
		Role:       models.RoleCoordinator,
		Department: "CSE",
	})
	svc, notifier, mail := newDriveServiceForTest(drives, users, newProfileRepoStub())

	first, err := svc.Assign(context.Background(), adminActor, 1, dto.DriveAssignRequest{CoordinatorID: 20})
	require.NoError(t, err)
	require.Len(t, first.AssignedTo, 1)
	require.Equal(t, "CSE", first.AssignedTo[0].Department)

	second, err := svc.Assign(context.Background(), adminActor, 1, dto.DriveAssignRequest{CoordinatorID: 20})
	require.NoError(t, err)
	require.Len(t, second.AssignedTo, 1)

	// Only the first assignment notifies and emails.
	require.Equal(t, []uint{20}, notifier.notified)
	require.Equal(t, []string{"New Drive Assigned"}, notifier.titles)
	require.Len(t, mail.sent, 1)
	require.Equal(t, "priya@example.com", mail.sent[0].To)
}

func TestDriveServiceAssignFailsWhenNotificationWriteFails(t *testing.T) {
	drives := newDriveRepoStub(activeDrive(1))
	users := newUserRepoStub(models.User{ID: 20, Role: models.RoleCoordinator, Department: "CSE"})
	notifier := &notifierStub{failWith: io.ErrUnexpectedEOF}
	svc := NewDriveService(drives, users, newProfileRepoStub(), notifier, &mailerStub{}, testLogger())

	_, err := svc.Assign(context.Background(), adminActor, 1, dto.DriveAssignRequest{CoordinatorID: 20})
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDriveServiceAssignRejectsNonCoordinators(t *testing.T) {
	drives := newDriveRepoStub(activeDrive(1))
	users := newUserRepoStub(models.User{ID: 10, Role: models.RoleStudent})
	svc, _, _ := newDriveServiceForTest(drives, users, newProfileRepoStub())

	_, err := svc.Assign(context.Background(), adminActor, 1, dto.DriveAssignRequest{CoordinatorID: 10})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestDriveServiceShareExplicitSkipsExistingShares(t *testing.T) {
	drive := activeDrive(1)
	drive.Shares = []models.DriveShare{{DriveID: 1, StudentID: 2, SharedAt: time.Now()}}
	drives := newDriveRepoStub(drive)
	users := newUserRepoStub(
		models.User{ID: 2, Role: models.RoleStudent},
		models.User{ID: 3, Role: models.RoleStudent},
	)
	svc, notifier, _ := newDriveServiceForTest(drives, users, newProfileRepoStub())

	resp, err := svc.Share(context.Background(), adminActor, 1, dto.DriveShareRequest{StudentIDs: []uint{2, 3}})
	require.NoError(t, err)

	// Only the newly added student counts and gets notified.
	require.Equal(t, 1, resp.SharedCount)
	require.Len(t, resp.Drive.SharedWith, 2)
	require.Equal(t, []uint{3}, notifier.notified)
	require.Equal(t, []string{"New Drive Shared"}, notifier.titles)
}

func TestDriveServiceShareFailsWhenNotificationWriteFails(t *testing.T) {
	drives := newDriveRepoStub(activeDrive(1))
	users := newUserRepoStub(models.User{ID: 2, Role: models.RoleStudent})
	notifier := &notifierStub{failWith: io.ErrUnexpectedEOF}
	svc := NewDriveService(drives, users, newProfileRepoStub(), notifier, &mailerStub{}, testLogger())

	_, err := svc.Share(context.Background(), adminActor, 1, dto.DriveShareRequest{StudentIDs: []uint{2}})
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDriveServiceShareByCriteriaPersistsCriteria(t *testing.T) {
	drives := newDriveRepoStub(activeDrive(1))
	users := newUserRepoStub(
		models.User{ID: 2, Role: models.RoleStudent},
		models.User{ID: 3, Role: models.RoleStudent},
	)
	profiles := newProfileRepoStub(
		models.Profile{ID: 1, UserID: 2, Education: datatypes.NewJSONType(models.Education{
			Current: models.CurrentEducation{CGPA: floatPtr(8.5), Branch: "CSE"},
		})},
		models.Profile{ID: 2, UserID: 3, Education: datatypes.NewJSONType(models.Education{
			Current: models.CurrentEducation{CGPA: floatPtr(6.1), Branch: "CSE"},
		})},
	)
	svc, notifier, _ := newDriveServiceForTest(drives, users, profiles)

	criteria := models.ShareCriteria{MinCGPA: floatPtr(7.0)}
	resp, err := svc.Share(context.Background(), adminActor, 1, dto.DriveShareRequest{Criteria: &criteria})
	require.NoError(t, err)

	require.Equal(t, 1, resp.SharedCount)
	require.Equal(t, []uint{2}, notifier.notified)
	require.NotNil(t, resp.Drive.ShareCriteria)
	require.Equal(t, criteria, *resp.Drive.ShareCriteria)

	stored, err := drives.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, criteria, stored.ShareCriteria.Data())
}

func TestDriveServiceShareRequiresAssignmentForCoordinators(t *testing.T) {
	drives := newDriveRepoStub(activeDrive(1))
	users := newUserRepoStub(models.User{ID: 2, Role: models.RoleStudent})
	svc, _, _ := newDriveServiceForTest(drives, users, newProfileRepoStub())

	outsider := Actor{ID: 30, Role: models.RoleCoordinator, Department: "MECH"}
	_, err := svc.Share(context.Background(), outsider, 1, dto.DriveShareRequest{StudentIDs: []uint{2}})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = drives.AddAssignment(context.Background(), &models.DriveAssignment{
		DriveID: 1, CoordinatorID: 30, Department: "MECH", AssignedAt: time.Now(),
	})
	require.NoError(t, err)

	resp, err := svc.Share(context.Background(), outsider, 1, dto.DriveShareRequest{StudentIDs: []uint{2}})
	require.NoError(t, err)
	require.Equal(t, 1, resp.SharedCount)
}

func TestDriveServiceShareWithoutTargetsIsNoOp(t *testing.T) {
	drives := newDriveRepoStub(activeDrive(1))
	svc, notifier, _ := newDriveServiceForTest(drives, newUserRepoStub(), newProfileRepoStub())

	resp, err := svc.Share(context.Background(), adminActor, 1, dto.DriveShareRequest{})
	require.NoError(t, err)
	require.Zero(t, resp.SharedCount)
	require.Equal(t, uint(1), resp.Drive.ID)
	// Never shared by criteria, so the drive serializes without one.
	require.Nil(t, resp.Drive.ShareCriteria)
	require.Empty(t, notifier.notified)
}

func TestDriveServiceShareRejectsNonStudentIDs(t *testing.T) {
	drives := newDriveRepoStub(activeDrive(1))
	users := newUserRepoStub(models.User{ID: 20, Role: models.RoleCoordinator})
	svc, _, _ := newDriveServiceForTest(drives, users, newProfileRepoStub())

	_, err := svc.Share(context.Background(), adminActor, 1, dto.DriveShareRequest{StudentIDs: []uint{20}})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestDriveServiceUpdatePatchesOnlyGivenFields(t *testing.T) {
	drives := newDriveRepoStub(activeDrive(1))
	svc, _, _ := newDriveServiceForTest(drives, newUserRepoStub(), newProfileRepoStub())

	location := "Remote"
	status := string(models.DriveStatusClosed)
	resp, err := svc.Update(context.Background(), adminActor, 1, dto.DriveUpdateRequest{
		Location: &location,
		Status:   &status,
	})
	require.NoError(t, err)
	require.Equal(t, "Remote", resp.Location)
	require.Equal(t, models.DriveStatusClosed, resp.Status)
	require.Equal(t, "Streamline Systems", resp.CompanyName)
}

func TestDriveServiceDeleteMissingDrive(t *testing.T) {
	svc, _, _ := newDriveServiceForTest(newDriveRepoStub(), newUserRepoStub(), newProfileRepoStub())

	err := svc.Delete(context.Background(), adminActor, 404)
	require.ErrorIs(t, err, ErrNotFound)
}
