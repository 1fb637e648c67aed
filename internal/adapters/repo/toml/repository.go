package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/hksl/internal/domain"
	"github.com/bnema/hksl/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	PathKey          = "store.path"
	identitiesFile   = "identities.toml"
	configDir        = ".config/hksl"
	fileMode         = 0o600
	dirMode          = 0o700
	tempFilePattern  = ".identities-*.toml.tmp"
	secretRefPattern = "hksl/identities/%s/password"
)

// Repository stores identities in a TOML file and their passwords in a
// secret store.
type Repository struct {
	path    string
	secrets ports.SecretStore
	clock   ports.Clock
	mu      *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLocks      = map[string]*sync.RWMutex{}
)

var _ ports.IdentityRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper, secrets ports.SecretStore) (*Repository, error) {
	if secrets == nil {
		return nil, errors.New("secret store is required")
	}
	if cfg == nil {
		cfg = viper.New()
	}

	if !cfg.IsSet(PathKey) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.SetDefault(PathKey, filepath.Join(homeDir, configDir, identitiesFile))
	}

	path := cfg.GetString(PathKey)
	if path == "" {
		return nil, errors.New("identities path is empty")
	}
	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Repository{path: path, secrets: secrets, clock: ports.SystemClock{}, mu: lockForPath(path)}, nil
}

func SecretRef(id domain.UserID) string {
	return fmt.Sprintf(secretRefPattern, id)
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) GetByUserID(ctx context.Context, id domain.UserID) (domain.Identity, error) {
	entry, err := r.find(ctx, func(entry identitySchema) bool { return entry.SlackID == string(id) })
	if err != nil {
		return domain.Identity{}, err
	}

	return r.hydrate(ctx, entry)
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (domain.Identity, error) {
	entry, err := r.find(ctx, func(entry identitySchema) bool { return entry.Username == username })
	if err != nil {
		return domain.Identity{}, err
	}

	return r.hydrate(ctx, entry)
}

// Create writes the password first and rolls it back if the file update
// fails, so the file never points at a missing secret.
func (r *Repository) Create(ctx context.Context, identity domain.Identity) error {
	if identity.UserID == "" {
		return errors.New("identity user id is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	ref := SecretRef(identity.UserID)
	previous, hadPrevious := "", false
	if index := indexOf(file, identity.UserID); index >= 0 {
		if value, err := r.secrets.Get(ctx, file.Identities[index].SecretRef); err == nil {
			previous, hadPrevious = value, true
		}
	}

	if err := r.secrets.Put(ctx, ref, identity.Password); err != nil {
		return fmt.Errorf("store password for %s: %w", identity.UserID, err)
	}

	entry := identitySchema{
		SlackID:    string(identity.UserID),
		Username:   identity.Username,
		SecretRef:  ref,
		LastSentTo: identity.LastSentTo,
		LinkedAt:   r.clock.Now().UTC().Format(time.RFC3339),
	}
	if index := indexOf(file, identity.UserID); index >= 0 {
		file.Identities[index] = entry
	} else {
		file.Identities = append(file.Identities, entry)
	}

	if err := r.writeSchema(file); err != nil {
		var rollbackErr error
		if hadPrevious {
			rollbackErr = r.secrets.Put(ctx, ref, previous)
		} else {
			rollbackErr = r.secrets.Delete(ctx, ref)
		}
		if rollbackErr != nil {
			return fmt.Errorf("save identity and roll back password: %w", errors.Join(err, rollbackErr))
		}
		return fmt.Errorf("save identity: %w", err)
	}

	return nil
}

func (r *Repository) UpdateLastSentTo(ctx context.Context, id domain.UserID, recipient string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	index := indexOf(file, id)
	if index < 0 {
		return fmt.Errorf("identity %s: %w", id, domain.ErrIdentityNotFound)
	}
	file.Identities[index].LastSentTo = recipient

	return r.writeSchema(file)
}

func (r *Repository) find(ctx context.Context, match func(identitySchema) bool) (identitySchema, error) {
	if err := ctx.Err(); err != nil {
		return identitySchema{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return identitySchema{}, err
	}

	for _, entry := range file.Identities {
		if match(entry) {
			return entry, nil
		}
	}

	return identitySchema{}, domain.ErrIdentityNotFound
}

func (r *Repository) hydrate(ctx context.Context, entry identitySchema) (domain.Identity, error) {
	ref := entry.SecretRef
	if ref == "" {
		ref = SecretRef(domain.UserID(entry.SlackID))
	}

	password, err := r.secrets.Get(ctx, ref)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("load password for %s: %w", entry.SlackID, err)
	}

	return domain.Identity{
		UserID:     domain.UserID(entry.SlackID),
		Username:   entry.Username,
		Password:   password,
		LastSentTo: entry.LastSentTo,
	}, nil
}

func indexOf(file fileSchema, id domain.UserID) int {
	for i, entry := range file.Identities {
		if entry.SlackID == string(id) {
			return i
		}
	}
	return -1
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read identities file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode identities file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), dirMode); err != nil {
		return fmt.Errorf("create identities directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode identities file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp identities file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp identities file: %w", err)
	}
	if err := tempFile.Chmod(fileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp identities file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp identities file: %w", err)
	}
	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace identities file: %w", err)
	}
	cleanup = false

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve identities path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

// lockForPath shares one mutex between repositories opened on the same file.
func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLocks[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLocks[path] = mu
	return mu
}
