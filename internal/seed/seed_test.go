package seed

import (
	"path/filepath"
	"testing"

	"devconnector/internal/config"
	"devconnector/internal/database"
	"devconnector/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		DBDriver:    config.DriverSQLite,
		DatabaseURL: filepath.Join(t.TempDir(), "seed.db"),
	}
	db, err := database.Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSeed_PopulatesEveryTable(t *testing.T) {
	db := newTestDB(t)

	sum, err := Seed(db, Options{
		NumUsers:     6,
		PostsPerUser: 2,
		MaxLikes:     4,
		MaxComments:  3,
		SkipBcrypt:   true,
		RandSeed:     42,
	})
	require.NoError(t, err)

	assert.Equal(t, 6, sum.Users)
	assert.Equal(t, 6, sum.Profiles)
	assert.Equal(t, 12, sum.Posts)

	assert.EqualValues(t, sum.Users, count(t, db, &models.User{}))
	assert.EqualValues(t, sum.Profiles, count(t, db, &models.Profile{}))
	assert.EqualValues(t, sum.Posts, count(t, db, &models.Post{}))
	assert.EqualValues(t, sum.Likes, count(t, db, &models.Like{}))
	assert.EqualValues(t, sum.Comments, count(t, db, &models.Comment{}))
	assert.Positive(t, count(t, db, &models.Experience{}))
	assert.EqualValues(t, sum.Profiles, count(t, db, &models.Education{}))
}

func TestSeed_CleanReplacesData(t *testing.T) {
	db := newTestDB(t)
	opts := Options{NumUsers: 3, PostsPerUser: 1, SkipBcrypt: true}

	_, err := Seed(db, opts)
	require.NoError(t, err)

	opts.ShouldClean = true
	_, err = Seed(db, opts)
	require.NoError(t, err)

	assert.EqualValues(t, 3, count(t, db, &models.User{}))
	assert.EqualValues(t, 3, count(t, db, &models.Post{}))
}

func TestSeed_DryRunWritesNothing(t *testing.T) {
	db := newTestDB(t)

	sum, err := Seed(db, Options{NumUsers: 4, PostsPerUser: 2, MaxLikes: 2, MaxComments: 2, SkipBcrypt: true, DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 8, sum.Posts)
	assert.Zero(t, count(t, db, &models.User{}))
	assert.Zero(t, count(t, db, &models.Post{}))
}

func TestSeed_NoUsers(t *testing.T) {
	sum, err := Seed(newTestDB(t), Options{PostsPerUser: 5, SkipBcrypt: true})
	require.NoError(t, err)
	assert.Zero(t, sum.Posts)
}
