package service

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/placement-go-api/internal/dto"
	"github.com/noah-isme/placement-go-api/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

// userRepoStub is an in-memory UserRepository shared by the service tests.
type userRepoStub struct {
	users  map[uint]models.User
	nextID uint
}

func newUserRepoStub(users ...models.User) *userRepoStub {
	stub := &userRepoStub{users: make(map[uint]models.User)}
	for _, user := range users {
		stub.users[user.ID] = user
		if user.ID > stub.nextID {
			stub.nextID = user.ID
		}
	}
	return stub
}

func (r *userRepoStub) Create(_ context.Context, user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = *user
	return nil
}

func (r *userRepoStub) FindByID(_ context.Context, id uint) (models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *userRepoStub) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (r *userRepoStub) FindByIDs(_ context.Context, ids []uint, role models.Role) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		if user, ok := r.users[id]; ok && user.Role == role {
			out = append(out, user)
		}
	}
	return out, nil
}

func (r *userRepoStub) ListByRole(_ context.Context, role models.Role) ([]models.User, error) {
	var out []models.User
	for _, user := range r.users {
		if user.Role == role {
			out = append(out, user)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *userRepoStub) ListAll(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, user := range r.users {
		out = append(out, user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *userRepoStub) Update(_ context.Context, user *models.User) error {
	r.users[user.ID] = *user
	return nil
}

func (r *userRepoStub) Delete(_ context.Context, id uint) error {
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

// profileRepoStub is an in-memory ProfileRepository keyed by user id.
type profileRepoStub struct {
	profiles map[uint]models.Profile
	nextID   uint
}

func newProfileRepoStub(profiles ...models.Profile) *profileRepoStub {
	stub := &profileRepoStub{profiles: make(map[uint]models.Profile)}
	for _, profile := range profiles {
		stub.profiles[profile.UserID] = profile
		if profile.ID > stub.nextID {
			stub.nextID = profile.ID
		}
	}
	return stub
}

func (r *profileRepoStub) Create(_ context.Context, profile *models.Profile) error {
	r.nextID++
	profile.ID = r.nextID
	r.profiles[profile.UserID] = *profile
	return nil
}

func (r *profileRepoStub) FindByUserID(_ context.Context, userID uint) (models.Profile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return models.Profile{}, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func (r *profileRepoStub) ListByUserIDs(_ context.Context, userIDs []uint) ([]models.Profile, error) {
	var out []models.Profile
	for _, id := range userIDs {
		if profile, ok := r.profiles[id]; ok {
			out = append(out, profile)
		}
	}
	return out, nil
}

func (r *profileRepoStub) ListAll(_ context.Context) ([]models.Profile, error) {
	var out []models.Profile
	for _, profile := range r.profiles {
		out = append(out, profile)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (r *profileRepoStub) Save(_ context.Context, profile *models.Profile) error {
	r.profiles[profile.UserID] = *profile
	return nil
}

// driveRepoStub is an in-memory DriveRepository with the same dedup semantics
// as the real store.
type driveRepoStub struct {
	drives      map[uint]models.Drive
	assignments []models.DriveAssignment
	shares      []models.DriveShare
	nextID      uint
}

func newDriveRepoStub(drives ...models.Drive) *driveRepoStub {
	stub := &driveRepoStub{drives: make(map[uint]models.Drive)}
	for _, drive := range drives {
		stub.assignments = append(stub.assignments, drive.Assignments...)
		stub.shares = append(stub.shares, drive.Shares...)
		drive.Assignments = nil
		drive.Shares = nil
		stub.drives[drive.ID] = drive
		if drive.ID > stub.nextID {
			stub.nextID = drive.ID
		}
	}
	return stub
}

func (r *driveRepoStub) Create(_ context.Context, drive *models.Drive) error {
	r.nextID++
	drive.ID = r.nextID
	r.drives[drive.ID] = *drive
	return nil
}

func (r *driveRepoStub) FindByID(_ context.Context, id uint) (models.Drive, error) {
	drive, ok := r.drives[id]
	if !ok {
		return models.Drive{}, gorm.ErrRecordNotFound
	}
	for _, assignment := range r.assignments {
		if assignment.DriveID == id {
			drive.Assignments = append(drive.Assignments, assignment)
		}
	}
	for _, share := range r.shares {
		if share.DriveID == id {
			drive.Shares = append(drive.Shares, share)
		}
	}
	return drive, nil
}

func (r *driveRepoStub) ListAll(ctx context.Context) ([]models.Drive, error) {
	var out []models.Drive
	for id := range r.drives {
		drive, _ := r.FindByID(ctx, id)
		out = append(out, drive)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *driveRepoStub) ListForStudent(ctx context.Context, studentID uint, department string) ([]models.Drive, error) {
	all, _ := r.ListAll(ctx)
	var out []models.Drive
	for _, drive := range all {
		if drive.Status != models.DriveStatusActive {
			continue
		}
		visible := false
		for _, share := range drive.Shares {
			if share.StudentID == studentID {
				visible = true
			}
		}
		for _, assignment := range drive.Assignments {
			if assignment.Department != "" && assignment.Department == department {
				visible = true
			}
		}
		if visible {
			out = append(out, drive)
		}
	}
	return out, nil
}

func (r *driveRepoStub) ListForCoordinator(ctx context.Context, coordinatorID uint, department string) ([]models.Drive, error) {
	all, _ := r.ListAll(ctx)
	var out []models.Drive
	for _, drive := range all {
		visible := drive.Department == department
		for _, assignment := range drive.Assignments {
			if assignment.CoordinatorID == coordinatorID {
				visible = true
			}
		}
		if visible {
			out = append(out, drive)
		}
	}
	return out, nil
}

func (r *driveRepoStub) ListIDsAssignedTo(_ context.Context, coordinatorID uint) ([]uint, error) {
	var ids []uint
	for _, assignment := range r.assignments {
		if assignment.CoordinatorID == coordinatorID {
			ids = append(ids, assignment.DriveID)
		}
	}
	return ids, nil
}

func (r *driveRepoStub) Update(_ context.Context, drive *models.Drive) error {
	stored := *drive
	stored.Assignments = nil
	stored.Shares = nil
	r.drives[drive.ID] = stored
	return nil
}

func (r *driveRepoStub) Delete(_ context.Context, id uint) error {
	if _, ok := r.drives[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.drives, id)
	return nil
}

func (r *driveRepoStub) AddAssignment(_ context.Context, assignment *models.DriveAssignment) (bool, error) {
	for _, existing := range r.assignments {
		if existing.DriveID == assignment.DriveID && existing.CoordinatorID == assignment.CoordinatorID {
			return false, nil
		}
	}
	r.assignments = append(r.assignments, *assignment)
	return true, nil
}

func (r *driveRepoStub) AddShares(_ context.Context, shares []models.DriveShare) (int64, error) {
	var added int64
	for _, share := range shares {
		duplicate := false
		for _, existing := range r.shares {
			if existing.DriveID == share.DriveID && existing.StudentID == share.StudentID {
				duplicate = true
				break
			}
		}
		if !duplicate {
			r.shares = append(r.shares, share)
			added++
		}
	}
	return added, nil
}

// notifierStub records Notify calls so tests can assert the fan-out delta.
// Setting failWith makes every Notify call fail with that error.
type notifierStub struct {
	notified []uint
	titles   []string
	failWith error
}

func (n *notifierStub) Notify(_ context.Context, userID uint, title, message, notificationType, link string) (dto.NotificationResponse, error) {
	if n.failWith != nil {
		return dto.NotificationResponse{}, n.failWith
	}
	n.notified = append(n.notified, userID)
	n.titles = append(n.titles, title)
	return dto.NotificationResponse{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notificationType,
		Link:    link,
	}, nil
}

func (n *notifierStub) List(context.Context, uint, int) ([]dto.NotificationResponse, error) {
	return nil, nil
}

func (n *notifierStub) MarkRead(context.Context, uint, uint) (dto.NotificationResponse, error) {
	return dto.NotificationResponse{}, nil
}

func (n *notifierStub) MarkAllRead(context.Context, uint) error { return nil }

func (n *notifierStub) UnreadCount(context.Context, uint) (int64, error) { return 0, nil }

func (n *notifierStub) Subscribe(uint) (<-chan dto.NotificationResponse, func()) {
	ch := make(chan dto.NotificationResponse)
	return ch, func() {}
}

func (n *notifierStub) Start(context.Context) {}

// mailerStub records outgoing mail.
type sentMail struct {
	To      string
	Subject string
	Body    string
}

type mailerStub struct {
	sent []sentMail
}

func (m *mailerStub) Send(_ context.Context, to, subject, body string) error {
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func activeDrive(id uint) models.Drive {
	return models.Drive{
		ID:             id,
		CompanyName:    "Streamline Systems",
		JobRole:        "Backend Engineer",
		JobDescription: "Build data pipelines.",
		Location:       "Pune",
		Status:         models.DriveStatusActive,
		CreatedByID:    1,
		CreatedAt:      time.Now(),
	}
}
