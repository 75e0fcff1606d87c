package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobtrack/internal/credentials"
	"github.com/jonathan/jobtrack/internal/types"
)

func newTestManager(t *testing.T) (*Manager, *credentials.Store) {
	t.Helper()
	store, err := credentials.NewStore(t.TempDir())
	require.NoError(t, err)
	return NewManager(store), store
}

func TestManager_StartsAnonymous(t *testing.T) {
	m, _ := newTestManager(t)
	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, m.Token())

	_, ok := m.Identity()
	assert.False(t, ok)
}

func TestManager_LoginLogoutStateMachine(t *testing.T) {
	m, store := newTestManager(t)
	identity := types.Identity{ID: 1, Username: "operative", Email: "op@example.com"}

	require.NoError(t, m.Login("tok-abc", identity))
	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, "tok-abc", m.Token())

	got, ok := m.Identity()
	require.True(t, ok)
	assert.Equal(t, identity, got)

	// Store and memory agree after login.
	storedToken, storedIdentity, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "tok-abc", storedToken)
	assert.Equal(t, identity, storedIdentity)

	require.NoError(t, m.Logout())
	assert.False(t, m.IsAuthenticated())

	// Store and memory agree after logout too.
	_, _, ok = store.Load()
	assert.False(t, ok)
}

func TestManager_ReloginReplaces(t *testing.T) {
	m, store := newTestManager(t)

	require.NoError(t, m.Login("tok-one", types.Identity{ID: 1, Username: "first"}))
	require.NoError(t, m.Login("tok-two", types.Identity{ID: 2, Username: "second"}))

	assert.Equal(t, "tok-two", m.Token())
	identity, ok := m.Identity()
	require.True(t, ok)
	assert.Equal(t, "second", identity.Username)

	storedToken, _, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "tok-two", storedToken)
}

func TestManager_LogoutIdempotent(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Login("tok-abc", types.Identity{ID: 1}))

	require.NoError(t, m.Logout())
	require.NoError(t, m.Logout())
	assert.False(t, m.IsAuthenticated())
}

func TestManager_LogoutWhileAnonymousIsNoOp(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Logout())
	assert.False(t, m.IsAuthenticated())
}

func TestManager_RestartRestoresSession(t *testing.T) {
	store, err := credentials.NewStore(t.TempDir())
	require.NoError(t, err)

	first := NewManager(store)
	identity := types.Identity{ID: 9, Username: "operative", Email: "op@example.com"}
	require.NoError(t, first.Login("tok-abc", identity))

	// A fresh manager over the same store simulates a process restart.
	second := NewManager(store)
	assert.True(t, second.IsAuthenticated())
	assert.Equal(t, "tok-abc", second.Token())

	restored, ok := second.Identity()
	require.True(t, ok)
	assert.Equal(t, identity, restored)
}

func TestManager_LoginRequiresToken(t *testing.T) {
	m, _ := newTestManager(t)
	assert.Error(t, m.Login("", types.Identity{ID: 1}))
	assert.False(t, m.IsAuthenticated())
}

// failingStore rejects every save so persistence failures can be observed.
type failingStore struct{}

func (failingStore) Save(string, types.Identity) error    { return fmt.Errorf("disk full") }
func (failingStore) Load() (string, types.Identity, bool) { return "", types.Identity{}, false }
func (failingStore) Clear() error                         { return nil }

func TestManager_SaveFailureLeavesAnonymous(t *testing.T) {
	m := NewManager(failingStore{})

	err := m.Login("tok-abc", types.Identity{ID: 1})
	require.Error(t, err)

	// The pair was not committed, so memory must not claim it was.
	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, m.Token())
}

func TestManager_TokenExpiresAt_JWT(t *testing.T) {
	expiry := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiry),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	m, _ := newTestManager(t)
	require.NoError(t, m.Login(signed, types.Identity{ID: 1}))

	at, ok := m.TokenExpiresAt()
	require.True(t, ok)
	assert.True(t, at.Equal(expiry))
}

func TestManager_TokenExpiresAt_OpaqueToken(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Login("opaque-token-without-claims", types.Identity{ID: 1}))

	_, ok := m.TokenExpiresAt()
	assert.False(t, ok)
}

func TestManager_TokenExpiresAt_Anonymous(t *testing.T) {
	m, _ := newTestManager(t)
	_, ok := m.TokenExpiresAt()
	assert.False(t, ok)
}
