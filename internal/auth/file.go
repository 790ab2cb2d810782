package auth

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/go-authgate/authsync/internal/core"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

const BackendFile = "file"

// FileUser is one entry of the YAML user database.
type FileUser struct {
	Username     string      `yaml:"username"`
	PasswordHash string      `yaml:"password_hash"`
	Groups       []FileGroup `yaml:"groups,omitempty"`
}

// FileGroup is a named group and its member names.
type FileGroup struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

type fileDatabase struct {
	Users []FileUser `yaml:"users"`
}

// FileBackend verifies credentials against a YAML user database with
// bcrypt password hashes.
type FileBackend struct {
	mu    sync.RWMutex
	path  string
	users map[string]FileUser
}

// NewFileBackend loads the user database at path.
func NewFileBackend(path string) (*FileBackend, error) {
	b := &FileBackend{path: path}
	if err := b.Reload(); err != nil {
		return nil, err
	}
	return b, nil
}

// NewFileBackendFromUsers builds a backend from in-memory entries.
func NewFileBackendFromUsers(users []FileUser) (*FileBackend, error) {
	b := &FileBackend{}
	if err := b.load(users); err != nil {
		return nil, err
	}
	return b, nil
}

// Reload re-reads the user database from disk.
func (b *FileBackend) Reload() error {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUserDatabase, err)
	}
	var db fileDatabase
	if err := yaml.Unmarshal(data, &db); err != nil {
		return fmt.Errorf("%w: %v", ErrUserDatabase, err)
	}
	return b.load(db.Users)
}

func (b *FileBackend) load(entries []FileUser) error {
	users := make(map[string]FileUser, len(entries))
	for i, u := range entries {
		if u.Username == "" {
			return fmt.Errorf("%w: entry %d has no username", ErrUserDatabase, i)
		}
		if _, dup := users[u.Username]; dup {
			return fmt.Errorf("%w: duplicate username %q", ErrUserDatabase, u.Username)
		}
		users[u.Username] = u
	}

	b.mu.Lock()
	b.users = users
	b.mu.Unlock()
	return nil
}

// Login asks for name and password, then verifies them. The user's groups
// become group principals of the subject.
func (b *FileBackend) Login(ctx context.Context, handler core.CallbackHandler) (*core.Subject, error) {
	banner := &TextOutputCallback{Message: "file user database"}
	nameCB := NewNameCallback("username")
	passCB := NewPasswordCallback("password")
	defer passCB.ClearPassword()

	if err := handler.Handle(ctx, []core.Callback{banner, nameCB, passCB}); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrLoginFailed, err)
	}

	username, ok := nameCB.Name()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingCallbackValue, nameCB.Prompt())
	}
	password := passCB.Password()
	if password == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingCallbackValue, passCB.Prompt())
	}

	b.mu.RLock()
	user, found := b.users[username]
	b.mu.RUnlock()
	if !found {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), password); err != nil {
		return nil, ErrInvalidCredentials
	}

	subject := &core.Subject{Principals: []core.Principal{UserPrincipal(user.Username)}}
	for _, g := range user.Groups {
		subject.Principals = append(subject.Principals, NewGroupPrincipal(g.Name, g.Members...))
	}
	return subject, nil
}

// Name returns backend name for logging
func (b *FileBackend) Name() string {
	return BackendFile
}
