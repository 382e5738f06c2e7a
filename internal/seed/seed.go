package seed

import (
	"fmt"
	"log/slog"

	"devconnector/internal/middleware"
	"devconnector/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers     int
	PostsPerUser int
	// MaxLikes and MaxComments cap the engagement generated per post.
	MaxLikes    int
	MaxComments int
	ShouldClean bool
	SkipBcrypt  bool
	BcryptCost  int
	DryRun      bool
	MaxDays     int
	RandSeed    int64
}

// Summary counts what a seeding run created.
type Summary struct {
	Users    int
	Profiles int
	Posts    int
	Likes    int
	Comments int
}

// Seed populates the database with users, profiles, posts, likes and
// comments. Every user gets a profile; likes on a post come from distinct
// users.
func Seed(db *gorm.DB, opts Options) (Summary, error) {
	var sum Summary
	logger := middleware.Logger

	f, err := NewFactory(db, opts)
	if err != nil {
		return sum, err
	}

	if opts.ShouldClean && !opts.DryRun {
		if err := ClearAll(db); err != nil {
			return sum, fmt.Errorf("clear existing data: %w", err)
		}
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		u, err := f.CreateUser()
		if err != nil {
			return sum, fmt.Errorf("create user: %w", err)
		}
		users = append(users, u)
		if _, err := f.CreateProfile(u); err != nil {
			return sum, fmt.Errorf("create profile: %w", err)
		}
		sum.Users++
		sum.Profiles++
	}
	logger.Info("seeded users", slog.Int("count", sum.Users))

	if len(users) == 0 {
		return sum, nil
	}

	for _, author := range users {
		for j := 0; j < opts.PostsPerUser; j++ {
			post, err := f.CreatePost(author)
			if err != nil {
				return sum, fmt.Errorf("create post: %w", err)
			}
			sum.Posts++

			likes, comments, err := engage(f, users, post, opts)
			if err != nil {
				return sum, err
			}
			sum.Likes += likes
			sum.Comments += comments
		}
	}

	logger.Info("seeding complete",
		slog.Int("users", sum.Users),
		slog.Int("posts", sum.Posts),
		slog.Int("likes", sum.Likes),
		slog.Int("comments", sum.Comments),
		slog.Bool("dry_run", opts.DryRun))
	return sum, nil
}

func engage(f *Factory, users []*models.User, post *models.Post, opts Options) (int, int, error) {
	likes := 0
	if opts.MaxLikes > 0 {
		n := min(f.fake.Number(0, opts.MaxLikes), len(users))
		for _, idx := range f.fake.Rand.Perm(len(users))[:n] {
			if _, err := f.CreateLike(users[idx], post); err != nil {
				return likes, 0, fmt.Errorf("create like: %w", err)
			}
			likes++
		}
	}

	comments := 0
	if opts.MaxComments > 0 {
		for i := f.fake.Number(0, opts.MaxComments); i > 0; i-- {
			commenter := users[f.fake.Number(0, len(users)-1)]
			if _, err := f.CreateComment(commenter, post); err != nil {
				return likes, comments, fmt.Errorf("create comment: %w", err)
			}
			comments++
		}
	}
	return likes, comments, nil
}

// ClearAll deletes every seeded table, children first.
func ClearAll(db *gorm.DB) error {
	middleware.Logger.Info("clearing existing data")
	return db.Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{
			&models.Like{}, &models.Comment{}, &models.Post{},
			&models.Experience{}, &models.Education{}, &models.Profile{},
			&models.User{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
