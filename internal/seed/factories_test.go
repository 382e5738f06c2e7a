package seed

import (
	"strings"
	"testing"
	"time"

	"devconnector/internal/auth"
	"devconnector/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_DryRunBuildsConsistentEntities(t *testing.T) {
	f, err := NewFactory(nil, Options{DryRun: true, SkipBcrypt: true, MaxDays: 30, RandSeed: 7})
	require.NoError(t, err)

	user, err := f.CreateUser(func(u *models.User) { u.Email = "ann@example.com" })
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Equal(t, auth.Gravatar("ann@example.com"), user.Avatar)
	assert.Equal(t, DemoPassword, user.Password)

	profile, err := f.CreateProfile(user)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)
	assert.NotEmpty(t, profile.Status)
	assert.GreaterOrEqual(t, len(profile.Skills), 2)
	require.NotEmpty(t, profile.Experience)
	for _, exp := range profile.Experience {
		if exp.Current {
			assert.Nil(t, exp.To)
		} else {
			require.NotNil(t, exp.To)
			assert.False(t, exp.To.Before(exp.From))
		}
	}

	post, err := f.CreatePost(user)
	require.NoError(t, err)
	assert.Equal(t, user.Name, post.Name)
	assert.NotEmpty(t, strings.TrimSpace(post.Text))
	assert.WithinDuration(t, time.Now(), post.Date, 31*24*time.Hour)

	comment, err := f.CreateComment(user, post)
	require.NoError(t, err)
	assert.Equal(t, post.ID, comment.PostID)
	assert.False(t, comment.Date.Before(post.Date))
}

func TestFactory_HashesPassword(t *testing.T) {
	f, err := NewFactory(nil, Options{DryRun: true, BcryptCost: 4})
	require.NoError(t, err)

	user, err := f.CreateUser()
	require.NoError(t, err)
	ok, err := auth.NewHasher(4).Compare(user.Password, DemoPassword)
	require.NoError(t, err)
	assert.True(t, ok)
}
