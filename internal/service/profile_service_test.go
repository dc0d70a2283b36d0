package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/placement-go-api/internal/dto"
	"github.com/noah-isme/placement-go-api/internal/models"
)

// pngHeader is enough of a PNG for content sniffing to call it an image.
var pngHeader = []byte("\x89PNG\r\n\x1a\n")

type photoStoreStub struct {
	uploads int
	deleted []string
	fail    bool
}

func (p *photoStoreStub) Upload(_ context.Context, filename string, _ io.Reader) (string, string, error) {
	if p.fail {
		return "", "", io.ErrUnexpectedEOF
	}
	p.uploads++
	return "https://cdn.example.com/" + filename, "photos/" + filename, nil
}

func (p *photoStoreStub) Delete(_ context.Context, publicID string) error {
	p.deleted = append(p.deleted, publicID)
	return nil
}

type rosterCacheStub struct {
	invalidations int
}

func (r *rosterCacheStub) Invalidate(context.Context) { r.invalidations++ }

func TestProfileServiceCompletionProgression(t *testing.T) {
	profiles := newProfileRepoStub()
	roster := &rosterCacheStub{}
	svc := NewProfileService(profiles, nil, roster, testLogger())
	ctx := context.Background()

	initial, err := svc.Get(ctx, studentActor, 0)
	require.NoError(t, err)
	require.Equal(t, 0, initial.Completion.Overall)

	withBasics, err := svc.UpdateBasicDetails(ctx, studentActor, dto.BasicDetailsUpdateRequest{FullName: "Asha Rao"})
	require.NoError(t, err)
	require.Equal(t, 33, withBasics.Completion.Overall)
	require.True(t, withBasics.Completion.BasicDetails)

	withEducation, err := svc.UpdateEducation(ctx, studentActor, dto.EducationUpdateRequest{
		Current: models.CurrentEducation{InstitutionName: "NIT Trichy", Program: "B.Tech", Branch: "CSE", CGPA: floatPtr(8.2)},
	})
	require.NoError(t, err)
	require.Equal(t, 67, withEducation.Completion.Overall)

	complete, err := svc.UpdateSkills(ctx, studentActor, dto.SkillsUpdateRequest{
		Sections: []dto.SkillSectionPayload{{Name: "Technical", Items: []string{"Go", "SQL"}}},
	})
	require.NoError(t, err)
	require.Equal(t, 100, complete.Completion.Overall)

	// Every write invalidates the roster export.
	require.Equal(t, 3, roster.invalidations)
}

func TestProfileServiceEmptySkillsDoNotCount(t *testing.T) {
	svc := NewProfileService(newProfileRepoStub(), nil, nil, testLogger())

	resp, err := svc.UpdateSkills(context.Background(), studentActor, dto.SkillsUpdateRequest{
		Sections: []dto.SkillSectionPayload{{Name: "Technical", Items: nil}},
	})
	require.NoError(t, err)
	require.False(t, resp.Completion.Skills)
	require.Equal(t, 0, resp.Completion.Overall)
}

func TestProfileServiceStudentsOnlySeeOwnProfile(t *testing.T) {
	profiles := newProfileRepoStub()
	svc := NewProfileService(profiles, nil, nil, testLogger())

	resp, err := svc.Get(context.Background(), studentActor, 99)
	require.NoError(t, err)
	require.Equal(t, studentActor.ID, resp.UserID)
}

func TestProfileServiceStaffCannotEditProfiles(t *testing.T) {
	svc := NewProfileService(newProfileRepoStub(), nil, nil, testLogger())

	_, err := svc.UpdateBasicDetails(context.Background(), adminActor, dto.BasicDetailsUpdateRequest{FullName: "x"})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateSkills(context.Background(), coordinatorActor, dto.SkillsUpdateRequest{})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestProfileServiceUploadPhotoReplacesPrevious(t *testing.T) {
	photos := &photoStoreStub{}
	svc := NewProfileService(newProfileRepoStub(), photos, nil, testLogger())
	ctx := context.Background()

	first, err := svc.UploadPhoto(ctx, studentActor, "one.jpg", bytes.NewReader(pngHeader))
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/one.jpg", first.PhotoURL)
	require.Empty(t, photos.deleted)

	second, err := svc.UploadPhoto(ctx, studentActor, "two.jpg", bytes.NewReader(pngHeader))
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/two.jpg", second.PhotoURL)
	require.Equal(t, []string{"photos/one.jpg"}, photos.deleted)
}

func TestProfileServiceUploadPhotoWithoutStore(t *testing.T) {
	svc := NewProfileService(newProfileRepoStub(), nil, nil, testLogger())

	_, err := svc.UploadPhoto(context.Background(), studentActor, "one.jpg", bytes.NewReader(pngHeader))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestProfileServiceUploadPhotoRejectsNonImages(t *testing.T) {
	photos := &photoStoreStub{}
	svc := NewProfileService(newProfileRepoStub(), photos, nil, testLogger())

	_, err := svc.UploadPhoto(context.Background(), studentActor, "notes.txt", strings.NewReader("plain text, not a picture"))
	require.ErrorIs(t, err, ErrInvalid)
	require.Zero(t, photos.uploads)
}

func TestProfileServiceDeletePhotoClearsFields(t *testing.T) {
	photos := &photoStoreStub{}
	svc := NewProfileService(newProfileRepoStub(), photos, nil, testLogger())
	ctx := context.Background()

	_, err := svc.UploadPhoto(ctx, studentActor, "one.jpg", bytes.NewReader(pngHeader))
	require.NoError(t, err)

	resp, err := svc.DeletePhoto(ctx, studentActor)
	require.NoError(t, err)
	require.Empty(t, resp.PhotoURL)
	require.Contains(t, photos.deleted, "photos/one.jpg")
}
