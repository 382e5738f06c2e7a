package state

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"devconnector/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAlertExpires(t *testing.T) {
	store := NewStore(InitialState(""), WithAlertTimeout(20*time.Millisecond))
	defer store.Close()

	id := store.SetAlert("Profile updated", "success")
	alerts := store.State().Alerts
	require.Len(t, alerts, 1)
	assert.Equal(t, id, alerts[0].ID)
	assert.Equal(t, "success", alerts[0].AlertType)

	assert.Eventually(t, func() bool {
		return len(store.State().Alerts) == 0
	}, time.Second, 5*time.Millisecond)
	assert.Zero(t, store.PendingAlerts())
}

func TestCloseCancelsAlertTimers(t *testing.T) {
	store := NewStore(InitialState(""), WithAlertTimeout(20*time.Millisecond))
	store.SetAlert("one", "danger")
	store.SetAlert("two", "danger")
	require.Equal(t, 2, store.PendingAlerts())

	store.Close()
	assert.Zero(t, store.PendingAlerts())
	assert.Never(t, func() bool {
		return len(store.State().Alerts) != 2
	}, 80*time.Millisecond, 10*time.Millisecond)

	store.SetAlert("after close", "danger")
	assert.Zero(t, store.PendingAlerts())
}

func TestDefaultAlertTimeout(t *testing.T) {
	store := NewStore(InitialState(""), WithAlertTimeout(0))
	assert.Equal(t, DefaultAlertTimeout, store.alertTimeout)
}

func TestSubscribe(t *testing.T) {
	store := NewStore(InitialState(""))
	var (
		mu   sync.Mutex
		seen []string
	)
	unsubscribe := store.Subscribe(func(s State) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, s.Auth.Token)
	})

	store.Dispatch(Action{Type: LoginSuccess, Payload: models.AuthResponse{Token: "a"}})
	unsubscribe()
	store.Dispatch(Action{Type: LoginSuccess, Payload: models.AuthResponse{Token: "b"}})

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"a"}, seen)
	assert.Equal(t, "b", store.State().Auth.Token)
}

func TestConcurrentDispatch(t *testing.T) {
	store := NewStore(InitialState(""), WithAlertTimeout(time.Hour))
	defer store.Close()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.SetAlert("x", "danger")
		}()
	}
	wg.Wait()
	assert.Len(t, store.State().Alerts, 50)
	assert.Equal(t, 50, store.PendingAlerts())
}

func TestTokenStores(t *testing.T) {
	stores := map[string]TokenStore{
		"Memory": &MemoryTokenStore{},
		"File":   FileTokenStore{Path: filepath.Join(t.TempDir(), "nested", "token")},
	}
	for name, ts := range stores {
		t.Run(name, func(t *testing.T) {
			tok, err := ts.Load()
			require.NoError(t, err)
			assert.Empty(t, tok)

			require.NoError(t, PersistToken(ts, Action{Type: RegisterSuccess, Payload: models.AuthResponse{Token: "tok-1"}}))
			tok, err = ts.Load()
			require.NoError(t, err)
			assert.Equal(t, "tok-1", tok)

			require.NoError(t, PersistToken(ts, Action{Type: GetPosts}))
			tok, _ = ts.Load()
			assert.Equal(t, "tok-1", tok, "unrelated actions leave the token alone")

			require.NoError(t, PersistToken(ts, Action{Type: LoginFail}))
			tok, err = ts.Load()
			require.NoError(t, err)
			assert.Empty(t, tok)

			require.NoError(t, ts.Clear(), "clearing twice is fine")
		})
	}
}

func TestPersistTokenRejectsBadPayload(t *testing.T) {
	err := PersistToken(&MemoryTokenStore{}, Action{Type: LoginSuccess, Payload: "tok"})
	assert.Error(t, err)
}
