package service

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/noah-isme/placement-go-api/internal/dto"
	"github.com/noah-isme/placement-go-api/internal/models"
	"github.com/noah-isme/placement-go-api/internal/repository"
)

// PhotoStore uploads and removes profile photos on external storage.
type PhotoStore interface {
	Upload(ctx context.Context, filename string, content io.Reader) (url, publicID string, err error)
	Delete(ctx context.Context, publicID string) error
}

// RosterCache invalidates cached roster exports when profile data changes.
type RosterCache interface {
	Invalidate(ctx context.Context)
}

// ProfileService manages the per-student profile document and its sections.
type ProfileService interface {
	Get(ctx context.Context, actor Actor, userID uint) (dto.ProfileResponse, error)
	UpdateBasicDetails(ctx context.Context, actor Actor, req dto.BasicDetailsUpdateRequest) (dto.ProfileResponse, error)
	UpdateEducation(ctx context.Context, actor Actor, req dto.EducationUpdateRequest) (dto.ProfileResponse, error)
	UpdateSkills(ctx context.Context, actor Actor, req dto.SkillsUpdateRequest) (dto.ProfileResponse, error)
	UploadPhoto(ctx context.Context, actor Actor, filename string, content io.Reader) (dto.ProfileResponse, error)
	DeletePhoto(ctx context.Context, actor Actor) (dto.ProfileResponse, error)
}

type profileService struct {
	profiles repository.ProfileRepository
	photos   PhotoStore
	roster   RosterCache
	logger   zerolog.Logger
}

// NewProfileService constructs the profile service. The photo store and
// roster cache may be nil when the respective backends are not configured.
func NewProfileService(profiles repository.ProfileRepository, photos PhotoStore, roster RosterCache, logger zerolog.Logger) ProfileService {
	return &profileService{
		profiles: profiles,
		photos:   photos,
		roster:   roster,
		logger:   logger.With().Str("component", "profile_service").Logger(),
	}
}

// Get returns a profile. Students only ever see their own; staff can look up
// any student's profile.
func (s *profileService) Get(ctx context.Context, actor Actor, userID uint) (dto.ProfileResponse, error) {
	if userID == 0 || actor.IsStudent() {
		userID = actor.ID
	}

	profile, err := s.findOrInit(ctx, userID)
	if err != nil {
		return dto.ProfileResponse{}, err
	}
	return dto.NewProfileResponse(profile), nil
}

func (s *profileService) UpdateBasicDetails(ctx context.Context, actor Actor, req dto.BasicDetailsUpdateRequest) (dto.ProfileResponse, error) {
	if !actor.IsStudent() {
		return dto.ProfileResponse{}, ForbiddenError("only students maintain profiles")
	}

	profile, err := s.findOrInit(ctx, actor.ID)
	if err != nil {
		return dto.ProfileResponse{}, err
	}

	profile.BasicDetails = datatypes.NewJSONType(models.BasicDetails{
		FullName:         req.FullName,
		DateOfBirth:      req.DateOfBirth,
		Gender:           req.Gender,
		CurrentCollege:   req.CurrentCollege,
		PermanentAddress: req.PermanentAddress,
		CurrentAddress:   req.CurrentAddress,
	})

	return s.persist(ctx, profile)
}

func (s *profileService) UpdateEducation(ctx context.Context, actor Actor, req dto.EducationUpdateRequest) (dto.ProfileResponse, error) {
	if !actor.IsStudent() {
		return dto.ProfileResponse{}, ForbiddenError("only students maintain profiles")
	}

	profile, err := s.findOrInit(ctx, actor.ID)
	if err != nil {
		return dto.ProfileResponse{}, err
	}

	profile.Education = datatypes.NewJSONType(models.Education{
		Current:  req.Current,
		ClassX:   req.ClassX,
		ClassXII: req.ClassXII,
	})

	return s.persist(ctx, profile)
}

func (s *profileService) UpdateSkills(ctx context.Context, actor Actor, req dto.SkillsUpdateRequest) (dto.ProfileResponse, error) {
	if !actor.IsStudent() {
		return dto.ProfileResponse{}, ForbiddenError("only students maintain profiles")
	}

	profile, err := s.findOrInit(ctx, actor.ID)
	if err != nil {
		return dto.ProfileResponse{}, err
	}

	sections := make([]models.SkillSection, 0, len(req.Sections))
	for _, section := range req.Sections {
		sections = append(sections, models.SkillSection{
			Name:  section.Name,
			Items: section.Items,
		})
	}
	profile.Skills = datatypes.NewJSONType(models.SkillSet{Sections: sections})

	return s.persist(ctx, profile)
}

func (s *profileService) UploadPhoto(ctx context.Context, actor Actor, filename string, content io.Reader) (dto.ProfileResponse, error) {
	if !actor.IsStudent() {
		return dto.ProfileResponse{}, ForbiddenError("only students maintain profiles")
	}
	if s.photos == nil {
		return dto.ProfileResponse{}, ValidationError("photo storage is not configured")
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return dto.ProfileResponse{}, err
	}
	if mtype := mimetype.Detect(data); !strings.HasPrefix(mtype.String(), "image/") {
		return dto.ProfileResponse{}, ValidationError("unsupported photo type %s", mtype.String())
	}

	profile, err := s.findOrInit(ctx, actor.ID)
	if err != nil {
		return dto.ProfileResponse{}, err
	}

	url, publicID, err := s.photos.Upload(ctx, filename, bytes.NewReader(data))
	if err != nil {
		return dto.ProfileResponse{}, err
	}

	// Drop the previous upload so orphans don't pile up in storage.
	if profile.PhotoPublicID != "" {
		if err := s.photos.Delete(ctx, profile.PhotoPublicID); err != nil {
			s.logger.Warn().Err(err).Str("public_id", profile.PhotoPublicID).Msg("failed to delete previous photo")
		}
	}

	profile.PhotoURL = url
	profile.PhotoPublicID = publicID

	return s.persist(ctx, profile)
}

func (s *profileService) DeletePhoto(ctx context.Context, actor Actor) (dto.ProfileResponse, error) {
	if !actor.IsStudent() {
		return dto.ProfileResponse{}, ForbiddenError("only students maintain profiles")
	}

	profile, err := s.findOrInit(ctx, actor.ID)
	if err != nil {
		return dto.ProfileResponse{}, err
	}

	if profile.PhotoPublicID != "" && s.photos != nil {
		if err := s.photos.Delete(ctx, profile.PhotoPublicID); err != nil {
			s.logger.Warn().Err(err).Str("public_id", profile.PhotoPublicID).Msg("failed to delete photo")
		}
	}

	profile.PhotoURL = ""
	profile.PhotoPublicID = ""

	return s.persist(ctx, profile)
}

// findOrInit loads the profile row, creating an empty one on first touch for
// accounts registered before profiles were auto-created.
func (s *profileService) findOrInit(ctx context.Context, userID uint) (models.Profile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !isRecordNotFound(err) {
		return models.Profile{}, err
	}

	profile = models.Profile{
		UserID:     userID,
		Completion: datatypes.NewJSONType(models.ProfileCompletion{}),
	}
	if err := s.profiles.Create(ctx, &profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// persist recomputes completion, saves and invalidates the roster export.
func (s *profileService) persist(ctx context.Context, profile models.Profile) (dto.ProfileResponse, error) {
	completion := models.ProfileCompletion{
		BasicDetails: profile.BasicDetails.Data().FullName != "",
		Education:    educationFilled(profile.Education.Data()),
		Skills:       len(profile.Skills.Data().Flatten()) > 0,
	}
	completion.Recompute()
	profile.Completion = datatypes.NewJSONType(completion)

	if err := s.profiles.Save(ctx, &profile); err != nil {
		return dto.ProfileResponse{}, err
	}

	if s.roster != nil {
		s.roster.Invalidate(ctx)
	}

	return dto.NewProfileResponse(profile), nil
}

func educationFilled(education models.Education) bool {
	current := education.Current
	return current.InstitutionName != "" || current.Program != "" ||
		current.Branch != "" || current.CGPA != nil
}
