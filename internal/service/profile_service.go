package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"devconnector/internal/models"
	"devconnector/internal/repository"
	"devconnector/internal/validation"

	"github.com/google/uuid"
)

const noProfileMsg = "There is no profile for this user"

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// MyProfile returns the requester's profile with the owner populated.
func (s *ProfileService) MyProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return s.load(ctx, userID, noProfileMsg)
}

// ProfileByUser is the public lookup by owner id.
func (s *ProfileService) ProfileByUser(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return s.load(ctx, userID, "Profile not found")
}

func (s *ProfileService) load(ctx context.Context, userID uuid.UUID, missingMsg string) (*models.Profile, error) {
	p, err := s.profileRepo.GetByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, models.NewBadRequestError(missingMsg)
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return p, nil
}

func (s *ProfileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

// SaveProfile creates the requester's profile or updates it in place.
func (s *ProfileService) SaveProfile(ctx context.Context, userID uuid.UUID, in models.ProfileRequest) (*models.Profile, error) {
	if err := validation.Profile.Validate(in).Err(); err != nil {
		return nil, err
	}

	p := &models.Profile{
		UserID:         userID,
		Company:        strings.TrimSpace(in.Company),
		Website:        strings.TrimSpace(in.Website),
		Location:       strings.TrimSpace(in.Location),
		Status:         strings.TrimSpace(in.Status),
		Skills:         validation.SplitSkills(string(in.Skills)),
		Bio:            in.Bio,
		GithubUsername: strings.TrimSpace(in.GithubUsername),
		Social: models.Social{
			Youtube:   strings.TrimSpace(in.Youtube),
			Twitter:   strings.TrimSpace(in.Twitter),
			Facebook:  strings.TrimSpace(in.Facebook),
			Linkedin:  strings.TrimSpace(in.Linkedin),
			Instagram: strings.TrimSpace(in.Instagram),
		},
	}
	if err := s.profileRepo.Upsert(ctx, p); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.MyProfile(ctx, userID)
}

// period parses the from and to dates of an entry. to is dropped for
// current entries and must not precede from.
func period(from, to string, current bool) (time.Time, *time.Time, error) {
	start, err := validation.ParseDate(from)
	if err != nil {
		return time.Time{}, nil, models.NewValidationError("From date is invalid",
			models.FieldError{Msg: "From date is invalid", Param: "from", Location: "body"})
	}
	if current || strings.TrimSpace(to) == "" {
		return start, nil, nil
	}
	end, err := validation.ParseDate(to)
	if err != nil {
		return time.Time{}, nil, models.NewValidationError("To date is invalid",
			models.FieldError{Msg: "To date is invalid", Param: "to", Location: "body"})
	}
	if end.Before(start) {
		return time.Time{}, nil, models.NewValidationError("To date must not be before From date",
			models.FieldError{Msg: "To date must not be before From date", Param: "to", Location: "body"})
	}
	return start, &end, nil
}

// AddExperience puts a job entry at the top of the requester's profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID uuid.UUID, in models.ExperienceRequest) (*models.Profile, error) {
	if err := validation.Experience.Validate(in).Err(); err != nil {
		return nil, err
	}
	from, to, err := period(in.From, in.To, in.Current)
	if err != nil {
		return nil, err
	}

	exp := &models.Experience{
		Title:       strings.TrimSpace(in.Title),
		Company:     strings.TrimSpace(in.Company),
		Location:    strings.TrimSpace(in.Location),
		From:        from,
		To:          to,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.profileRepo.AddExperience(ctx, userID, exp); err != nil {
		return nil, s.entryError(err, "")
	}
	return s.MyProfile(ctx, userID)
}

func (s *ProfileService) DeleteExperience(ctx context.Context, userID, expID uuid.UUID) (*models.Profile, error) {
	if _, err := s.MyProfile(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.profileRepo.DeleteExperience(ctx, userID, expID); err != nil {
		return nil, s.entryError(err, "Experience not found")
	}
	return s.MyProfile(ctx, userID)
}

// AddEducation puts a school entry at the top of the requester's profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID uuid.UUID, in models.EducationRequest) (*models.Profile, error) {
	if err := validation.Education.Validate(in).Err(); err != nil {
		return nil, err
	}
	from, to, err := period(in.From, in.To, in.Current)
	if err != nil {
		return nil, err
	}

	edu := &models.Education{
		School:       strings.TrimSpace(in.School),
		Degree:       strings.TrimSpace(in.Degree),
		FieldOfStudy: strings.TrimSpace(in.FieldOfStudy),
		From:         from,
		To:           to,
		Current:      in.Current,
		Description:  in.Description,
	}
	if err := s.profileRepo.AddEducation(ctx, userID, edu); err != nil {
		return nil, s.entryError(err, "")
	}
	return s.MyProfile(ctx, userID)
}

func (s *ProfileService) DeleteEducation(ctx context.Context, userID, eduID uuid.UUID) (*models.Profile, error) {
	if _, err := s.MyProfile(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.profileRepo.DeleteEducation(ctx, userID, eduID); err != nil {
		return nil, s.entryError(err, "Education not found")
	}
	return s.MyProfile(ctx, userID)
}

// entryError maps a missing row onto a 404 with entryMsg, or onto the
// missing-profile 400 when entryMsg is empty.
func (s *ProfileService) entryError(err error, entryMsg string) error {
	if !errors.Is(err, repository.ErrNotFound) {
		return models.NewInternalError(err)
	}
	if entryMsg == "" {
		return models.NewBadRequestError(noProfileMsg)
	}
	return models.NewNotFoundError(entryMsg)
}
