package service

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/noah-isme/placement-go-api/internal/dto"
	"github.com/noah-isme/placement-go-api/internal/models"
)

type applicationRepoStub struct {
	applications map[uint]models.Application
	nextID       uint
}

func newApplicationRepoStub(applications ...models.Application) *applicationRepoStub {
	stub := &applicationRepoStub{applications: make(map[uint]models.Application)}
	for _, application := range applications {
		stub.applications[application.ID] = application
		if application.ID > stub.nextID {
			stub.nextID = application.ID
		}
	}
	return stub
}

func (r *applicationRepoStub) Create(_ context.Context, application *models.Application) error {
	r.nextID++
	application.ID = r.nextID
	r.applications[application.ID] = *application
	return nil
}

func (r *applicationRepoStub) FindByID(_ context.Context, id uint) (models.Application, error) {
	application, ok := r.applications[id]
	if !ok {
		return models.Application{}, gorm.ErrRecordNotFound
	}
	return application, nil
}

func (r *applicationRepoStub) FindByStudentAndDrive(_ context.Context, studentID, driveID uint) (models.Application, error) {
	for _, application := range r.applications {
		if application.StudentID == studentID && application.DriveID == driveID {
			return application, nil
		}
	}
	return models.Application{}, gorm.ErrRecordNotFound
}

func (r *applicationRepoStub) ListByStudent(_ context.Context, studentID uint) ([]models.Application, error) {
	var out []models.Application
	for _, application := range r.applications {
		if application.StudentID == studentID {
			out = append(out, application)
		}
	}
	return out, nil
}

func (r *applicationRepoStub) ListByDriveIDs(_ context.Context, driveIDs []uint) ([]models.Application, error) {
	var out []models.Application
	for _, id := range driveIDs {
		for _, application := range r.applications {
			if application.DriveID == id {
				out = append(out, application)
			}
		}
	}
	return out, nil
}

func (r *applicationRepoStub) ListAll(_ context.Context) ([]models.Application, error) {
	var out []models.Application
	for _, application := range r.applications {
		out = append(out, application)
	}
	return out, nil
}

func (r *applicationRepoStub) Save(_ context.Context, application *models.Application) error {
	r.applications[application.ID] = *application
	return nil
}

func newApplicationServiceForTest(applications *applicationRepoStub, drives *driveRepoStub) (ApplicationService, *notifierStub) {
	notifier := &notifierStub{}
	svc := NewApplicationService(applications, drives, notifier, testLogger())
	return svc, notifier
}

func TestApplicationServiceApplyRejectsNonStudents(t *testing.T) {
	svc, _ := newApplicationServiceForTest(newApplicationRepoStub(), newDriveRepoStub(activeDrive(1)))

	_, err := svc.Apply(context.Background(), coordinatorActor, dto.ApplicationCreateRequest{DriveID: 1})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestApplicationServiceApplyRequiresActiveDrive(t *testing.T) {
	drive := activeDrive(1)
	drive.Status = models.DriveStatusDraft
	svc, _ := newApplicationServiceForTest(newApplicationRepoStub(), newDriveRepoStub(drive))

	_, err := svc.Apply(context.Background(), studentActor, dto.ApplicationCreateRequest{DriveID: 1})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestApplicationServiceApplyRejectsDuplicate(t *testing.T) {
	svc, notifier := newApplicationServiceForTest(newApplicationRepoStub(), newDriveRepoStub(activeDrive(1)))

	first, err := svc.Apply(context.Background(), studentActor, dto.ApplicationCreateRequest{DriveID: 1})
	require.NoError(t, err)
	require.Equal(t, models.ApplicationStatusApplied, first.Status)
	require.Equal(t, []uint{studentActor.ID}, notifier.notified)

	_, err = svc.Apply(context.Background(), studentActor, dto.ApplicationCreateRequest{DriveID: 1})
	require.ErrorIs(t, err, ErrInvalid)
	require.Len(t, notifier.notified, 1)
}

func TestApplicationServiceApplyNotifiesAssignedCoordinators(t *testing.T) {
	drives := newDriveRepoStub(activeDrive(1))
	_, err := drives.AddAssignment(context.Background(), &models.DriveAssignment{DriveID: 1, CoordinatorID: 20})
	require.NoError(t, err)
	svc, notifier := newApplicationServiceForTest(newApplicationRepoStub(), drives)

	_, err = svc.Apply(context.Background(), studentActor, dto.ApplicationCreateRequest{DriveID: 1})
	require.NoError(t, err)
	require.Equal(t, []uint{studentActor.ID, 20}, notifier.notified)
	require.Equal(t, []string{"Application Submitted", "New Application"}, notifier.titles)
}

func TestApplicationServiceApplyFailsWhenNotificationWriteFails(t *testing.T) {
	notifier := &notifierStub{failWith: io.ErrUnexpectedEOF}
	svc := NewApplicationService(newApplicationRepoStub(), newDriveRepoStub(activeDrive(1)), notifier, testLogger())

	_, err := svc.Apply(context.Background(), studentActor, dto.ApplicationCreateRequest{DriveID: 1})
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestApplicationServiceUpdateStatusAlwaysNotifies(t *testing.T) {
	applications := newApplicationRepoStub(models.Application{
		ID:        1,
		StudentID: studentActor.ID,
		DriveID:   1,
		Status:    models.ApplicationStatusApplied,
	})
	svc, notifier := newApplicationServiceForTest(applications, newDriveRepoStub(activeDrive(1)))

	// Writing the same status back still notifies the student.
	same, err := svc.UpdateStatus(context.Background(), adminActor, 1, dto.ApplicationStatusRequest{Status: "Applied"})
	require.NoError(t, err)
	require.Equal(t, models.ApplicationStatusApplied, same.Status)
	require.Equal(t, []uint{studentActor.ID}, notifier.notified)

	changed, err := svc.UpdateStatus(context.Background(), adminActor, 1, dto.ApplicationStatusRequest{Status: "Shortlisted"})
	require.NoError(t, err)
	require.Equal(t, models.ApplicationStatusShortlisted, changed.Status)
	require.Equal(t, []uint{studentActor.ID, studentActor.ID}, notifier.notified)
}

func TestApplicationServiceUpdateStatusFailsWhenNotificationWriteFails(t *testing.T) {
	applications := newApplicationRepoStub(models.Application{
		ID:        1,
		StudentID: studentActor.ID,
		DriveID:   1,
		Status:    models.ApplicationStatusApplied,
	})
	notifier := &notifierStub{failWith: io.ErrUnexpectedEOF}
	svc := NewApplicationService(applications, newDriveRepoStub(activeDrive(1)), notifier, testLogger())

	_, err := svc.UpdateStatus(context.Background(), adminActor, 1, dto.ApplicationStatusRequest{Status: "Shortlisted"})
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestApplicationServiceUpdateStatusRejectsUnknownStatus(t *testing.T) {
	applications := newApplicationRepoStub(models.Application{ID: 1, StudentID: 2, DriveID: 1})
	svc, _ := newApplicationServiceForTest(applications, newDriveRepoStub(activeDrive(1)))

	_, err := svc.UpdateStatus(context.Background(), adminActor, 1, dto.ApplicationStatusRequest{Status: "Hired"})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestApplicationServiceUpdateStatusChecksAssignment(t *testing.T) {
	applications := newApplicationRepoStub(models.Application{
		ID:        1,
		StudentID: 2,
		DriveID:   1,
		Status:    models.ApplicationStatusApplied,
	})
	drives := newDriveRepoStub(activeDrive(1))
	svc, _ := newApplicationServiceForTest(applications, drives)

	outsider := Actor{ID: 30, Role: models.RoleCoordinator, Department: "MECH"}
	_, err := svc.UpdateStatus(context.Background(), outsider, 1, dto.ApplicationStatusRequest{Status: "Shortlisted"})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestApplicationServiceUpdateStatusDeniesUnassignedSameDepartment(t *testing.T) {
	applications := newApplicationRepoStub(models.Application{
		ID:        1,
		StudentID: 2,
		DriveID:   1,
		Status:    models.ApplicationStatusApplied,
	})
	drive := activeDrive(1)
	drive.Department = coordinatorActor.Department
	svc, _ := newApplicationServiceForTest(applications, newDriveRepoStub(drive))

	// Sharing a department with the drive is not enough; only an explicit
	// assignment grants review access.
	_, err := svc.UpdateStatus(context.Background(), coordinatorActor, 1, dto.ApplicationStatusRequest{Status: "Shortlisted"})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestApplicationServiceListForReviewScopedToAssignments(t *testing.T) {
	applications := newApplicationRepoStub(
		models.Application{ID: 1, StudentID: 2, DriveID: 1, Status: models.ApplicationStatusApplied},
		models.Application{ID: 2, StudentID: 3, DriveID: 2, Status: models.ApplicationStatusApplied},
	)
	second := activeDrive(2)
	drives := newDriveRepoStub(activeDrive(1), second)
	_, err := drives.AddAssignment(context.Background(), &models.DriveAssignment{DriveID: 1, CoordinatorID: 20})
	require.NoError(t, err)

	svc, _ := newApplicationServiceForTest(applications, drives)

	listed, err := svc.ListForReview(context.Background(), coordinatorActor, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, uint(1), listed[0].DriveID)

	all, err := svc.ListForReview(context.Background(), adminActor, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
}
