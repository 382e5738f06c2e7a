// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"strings"
	"time"

	"devconnector/internal/auth"
	"devconnector/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DemoPassword is the password of every seeded user.
const DemoPassword = "password123"

var statuses = []string{
	"Developer", "Junior Developer", "Senior Developer", "Manager",
	"Student or Learning", "Instructor or Teacher", "Intern", "Other",
}

var degrees = []string{"BSc", "BA", "MSc", "MEng", "PhD", "Bootcamp Certificate"}

// Factory builds domain entities and persists them to the database.
// In DryRun mode nothing is written and ids are assigned locally.
type Factory struct {
	db       *gorm.DB
	opts     Options
	fake     *gofakeit.Faker
	password string
}

// NewFactory creates a new Factory bound to the provided Gorm DB. A zero
// opts.RandSeed picks a random seed.
func NewFactory(db *gorm.DB, opts Options) (*Factory, error) {
	f := &Factory{db: db, opts: opts, fake: gofakeit.New(opts.RandSeed)}

	if opts.SkipBcrypt {
		f.password = DemoPassword
		return f, nil
	}
	hash, err := auth.NewHasher(opts.BcryptCost).Hash(DemoPassword)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}
	f.password = hash
	return f, nil
}

// pastDate returns a timestamp within the last MaxDays days.
func (f *Factory) pastDate() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	now := time.Now().UTC()
	return f.fake.DateRange(now.AddDate(0, 0, -maxDays), now)
}

func (f *Factory) create(v any) error {
	if f.opts.DryRun {
		return nil
	}
	return f.db.Create(v).Error
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	name := f.fake.Name()
	user := &models.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    strings.ToLower(f.fake.Username()) + "." + f.fake.LetterN(6) + "@example.com",
		Password: f.password,
		Date:     f.pastDate(),
	}
	for _, override := range overrides {
		override(user)
	}
	user.Avatar = auth.Gravatar(user.Email)

	if err := f.create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile constructs and persists a profile with a few experience and
// education entries for user.
func (f *Factory) CreateProfile(user *models.User, overrides ...func(*models.Profile)) (*models.Profile, error) {
	handle := strings.ToLower(strings.ReplaceAll(user.Name, " ", ""))
	profile := &models.Profile{
		ID:             uuid.New(),
		UserID:         user.ID,
		Company:        f.fake.Company(),
		Website:        f.fake.URL(),
		Location:       f.fake.City(),
		Status:         f.fake.RandomString(statuses),
		Skills:         f.skills(),
		Bio:            f.fake.Sentence(12),
		GithubUsername: handle,
		Social: models.Social{
			Twitter:  "https://twitter.com/" + handle,
			Linkedin: "https://linkedin.com/in/" + handle,
		},
	}

	for i := f.fake.Number(1, 3); i > 0; i-- {
		profile.Experience = append(profile.Experience, f.experience(profile.ID, i == 1))
	}
	profile.Education = append(profile.Education, f.education(profile.ID))

	for _, override := range overrides {
		override(profile)
	}

	if err := f.create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (f *Factory) skills() []string {
	n := f.fake.Number(2, 5)
	seen := make(map[string]bool, n)
	out := make([]string, 0, n)
	for len(out) < n {
		s := f.fake.ProgrammingLanguage()
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func (f *Factory) experience(profileID uuid.UUID, current bool) models.Experience {
	from := f.fake.DateRange(time.Now().AddDate(-10, 0, 0), time.Now().AddDate(-1, 0, 0)).UTC()
	exp := models.Experience{
		ID:          uuid.New(),
		ProfileID:   profileID,
		Title:       f.fake.JobTitle(),
		Company:     f.fake.Company(),
		Location:    f.fake.City(),
		From:        from,
		Current:     current,
		Description: f.fake.Sentence(10),
	}
	if !current {
		to := from.AddDate(0, f.fake.Number(3, 36), 0)
		exp.To = &to
	}
	return exp
}

func (f *Factory) education(profileID uuid.UUID) models.Education {
	from := f.fake.DateRange(time.Now().AddDate(-15, 0, 0), time.Now().AddDate(-4, 0, 0)).UTC()
	to := from.AddDate(f.fake.Number(1, 4), 0, 0)
	return models.Education{
		ID:           uuid.New(),
		ProfileID:    profileID,
		School:       f.fake.City() + " University",
		Degree:       f.fake.RandomString(degrees),
		FieldOfStudy: "Computer Science",
		From:         from,
		To:           &to,
	}
}

// CreatePost constructs and persists a sample post authored by user.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		ID:             uuid.New(),
		UserID:         user.ID,
		Text:           f.fake.Paragraph(1, f.fake.Number(1, 4), 12, " "),
		AuthorSnapshot: models.SnapshotOf(user),
		Likes:          []models.Like{},
		Comments:       []models.Comment{},
		Date:           f.pastDate(),
	}
	for _, override := range overrides {
		override(post)
	}

	if err := f.create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a comment from user on post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		ID:             uuid.New(),
		PostID:         post.ID,
		UserID:         user.ID,
		Text:           f.fake.Sentence(f.fake.Number(4, 14)),
		AuthorSnapshot: models.SnapshotOf(user),
		Date:           f.fake.DateRange(post.Date, time.Now().UTC()),
	}
	if err := f.create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from user on post.
func (f *Factory) CreateLike(user *models.User, post *models.Post) (*models.Like, error) {
	like := &models.Like{
		ID:     uuid.New(),
		PostID: post.ID,
		UserID: user.ID,
	}
	if err := f.create(like); err != nil {
		return nil, err
	}
	return like, nil
}
