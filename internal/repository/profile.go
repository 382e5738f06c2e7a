package repository

import (
	"context"
	"errors"

	"devconnector/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for profiles and their
// experience and education entries.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	// Upsert creates the profile of p.UserID or overwrites its editable fields.
	Upsert(ctx context.Context, p *models.Profile) error
	AddExperience(ctx context.Context, userID uuid.UUID, exp *models.Experience) error
	DeleteExperience(ctx context.Context, userID, expID uuid.UUID) error
	AddEducation(ctx context.Context, userID uuid.UUID, edu *models.Education) error
	DeleteEducation(ctx context.Context, userID, eduID uuid.UUID) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func byCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

// populated loads the owner as {_id, name, avatar} and the entries newest first.
func populated(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name", "avatar") }).
		Preload("Experience", byCreatedDesc).
		Preload("Education", byCreatedDesc)
}

func normalizeProfile(p *models.Profile) {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []models.Experience{}
	}
	if p.Education == nil {
		p.Education = []models.Education{}
	}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	if err := populated(r.db.WithContext(ctx)).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	normalizeProfile(&p)
	return &p, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	profiles := []models.Profile{}
	if err := populated(r.db.WithContext(ctx)).Order("date DESC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	for i := range profiles {
		normalizeProfile(&profiles[i])
	}
	return profiles, nil
}

func (r *profileRepository) Upsert(ctx context.Context, p *models.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Profile
		err := tx.Where("user_id = ?", p.UserID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return translate(tx.Omit("User", "Experience", "Education").Create(p).Error)
		case err != nil:
			return err
		}

		p.ID = existing.ID
		p.Date = existing.Date
		return tx.Model(&existing).Select(updatedColumns(p)).Updates(p).Error
	})
}

// updatedColumns lists the columns an update writes: status, skills and the
// social links always, the other text fields only when set.
func updatedColumns(p *models.Profile) []string {
	cols := []string{"status", "skills",
		"social_youtube", "social_twitter", "social_facebook", "social_linkedin", "social_instagram"}
	optional := []struct {
		col string
		val string
	}{
		{"company", p.Company},
		{"website", p.Website},
		{"location", p.Location},
		{"bio", p.Bio},
		{"github_username", p.GithubUsername},
	}
	for _, o := range optional {
		if o.val != "" {
			cols = append(cols, o.col)
		}
	}
	return cols
}

func (r *profileRepository) profileID(tx *gorm.DB, userID uuid.UUID) (uuid.UUID, error) {
	var p models.Profile
	if err := tx.Select("id").Where("user_id = ?", userID).First(&p).Error; err != nil {
		return uuid.Nil, translate(err)
	}
	return p.ID, nil
}

func (r *profileRepository) AddExperience(ctx context.Context, userID uuid.UUID, exp *models.Experience) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := r.profileID(tx, userID)
		if err != nil {
			return err
		}
		exp.ProfileID = id
		return tx.Create(exp).Error
	})
}

func (r *profileRepository) DeleteExperience(ctx context.Context, userID, expID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := r.profileID(tx, userID)
		if err != nil {
			return err
		}
		res := tx.Where("id = ? AND profile_id = ?", expID, id).Delete(&models.Experience{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *profileRepository) AddEducation(ctx context.Context, userID uuid.UUID, edu *models.Education) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := r.profileID(tx, userID)
		if err != nil {
			return err
		}
		edu.ProfileID = id
		return tx.Create(edu).Error
	})
}

func (r *profileRepository) DeleteEducation(ctx context.Context, userID, eduID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := r.profileID(tx, userID)
		if err != nil {
			return err
		}
		res := tx.Where("id = ? AND profile_id = ?", eduID, id).Delete(&models.Education{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// deleteProfileOf removes the profile of userID and its entries inside tx.
func deleteProfileOf(tx *gorm.DB, userID uuid.UUID) error {
	var p models.Profile
	err := tx.Select("id").Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := tx.Where("profile_id = ?", p.ID).Delete(&models.Experience{}).Error; err != nil {
		return err
	}
	if err := tx.Where("profile_id = ?", p.ID).Delete(&models.Education{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Profile{}, "id = ?", p.ID).Error
}
