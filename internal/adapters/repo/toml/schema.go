package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version    int              `toml:"version"`
	Identities []identitySchema `toml:"identities"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported identities schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// identitySchema never holds the password itself, only the key it is
// stored under in the secret store.
type identitySchema struct {
	SlackID    string `toml:"slack_id"`
	Username   string `toml:"username"`
	SecretRef  string `toml:"secret_ref"`
	LastSentTo string `toml:"last_sent_to,omitempty"`
	LinkedAt   string `toml:"linked_at,omitempty"`
}
