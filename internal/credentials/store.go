// Package credentials provides durable on-disk persistence of the current
// session token and identity. It is the only state in the client that
// survives a process restart.
package credentials

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/jobtrack/internal/types"
)

// fileName is the single file holding both credential keys.
const fileName = "credentials.json"

// Store persists the (token, identity) pair under a directory.
// The pair is written atomically: a failed save leaves the previous
// contents intact rather than a half-written pair.
type Store struct {
	dir string
}

// stored is the on-disk layout: the token and the identity blob.
type stored struct {
	Token    string          `json:"token"`
	Identity *types.Identity `json:"identity"`
}

// NewStore creates a store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("credentials directory is empty")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create credentials directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Path returns the location of the credentials file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, fileName)
}

// Save writes the token and identity together. It writes to a temporary
// file and renames it into place so a crash mid-write cannot commit a
// partial pair.
func (s *Store) Save(token string, identity types.Identity) error {
	if token == "" {
		return fmt.Errorf("refusing to save empty token")
	}

	data, err := json.MarshalIndent(stored{Token: token, Identity: &identity}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, fileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary credentials file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set credentials file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temporary credentials file: %w", err)
	}

	if err := os.Rename(tmpPath, s.Path()); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to commit credentials: %w", err)
	}
	return nil
}

// Load reads the persisted pair. Any malformed state (missing file,
// unreadable file, corrupt JSON, or a pair with only one half present)
// reports ok=false: the caller degrades to logged-out, never to a
// partially populated session.
func (s *Store) Load() (token string, identity types.Identity, ok bool) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return "", types.Identity{}, false
	}

	var st stored
	if err := json.Unmarshal(data, &st); err != nil {
		return "", types.Identity{}, false
	}
	if st.Token == "" || st.Identity == nil {
		return "", types.Identity{}, false
	}
	return st.Token, *st.Identity, true
}

// Clear removes both keys. Clearing an empty store is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.Path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
