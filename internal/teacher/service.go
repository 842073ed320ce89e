package teacher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidCredentials is returned for any login mismatch. The message
// never says whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credential is one record from the teachers file.
type Credential struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

type credentialFile struct {
	Teachers []Credential `json:"teachers"`
}

// Service authenticates teachers against the credential file. The file
// is re-read on every attempt so edits take effect without a restart.
type Service struct {
	path string
}

func NewService(path string) *Service {
	return &Service{path: path}
}

// Load reads and parses the credential file. Called once at startup to
// fail fast on a broken file, and again on each Authenticate.
func (s *Service) Load() ([]Credential, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("teacher: read credentials file: %w", err)
	}

	var file credentialFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("teacher: parse credentials file: %w", err)
	}

	return file.Teachers, nil
}

// Authenticate scans the freshly-loaded credential set for an exact
// match of both fields and returns the matched username.
func (s *Service) Authenticate(
	_ context.Context,
	username string,
	password string,
) (string, error) {

	teachers, err := s.Load()
	if err != nil {
		return "", err
	}

	for _, t := range teachers {
		if t.Username == username && t.Password == password {
			return t.Username, nil
		}
	}

	return "", ErrInvalidCredentials
}
