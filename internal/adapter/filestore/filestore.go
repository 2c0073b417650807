package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"gopkg.in/yaml.v3"
)

const DefaultProfile = "default"

type File struct {
	CurrentProfile string              `yaml:"current_profile"`
	Profiles       map[string]*Profile `yaml:"profiles"`
}

type Profile struct {
	APIURL string            `yaml:"api_url,omitempty"`
	Values map[string]string `yaml:"values,omitempty"`
}

// Store is a session backend over a YAML file, one value map per profile.
// TTLs are not enforced: the file lives until logout.
type Store struct {
	mu      sync.Mutex
	path    string
	profile string
}

func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".goride", "session.yaml"), nil
}

// New opens the store at path; an empty path means DefaultPath and an empty
// profile means the file's current profile.
func New(path, profile string) (*Store, error) {
	const op = "filestore.New"

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %v", op, domain.ErrBackendUnavailable, err)
		}
		path = p
	}
	s := &Store{path: path, profile: profile}
	if s.profile == "" {
		f, err := s.load()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		s.profile = f.CurrentProfile
	}
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Profile() string {
	return s.profile
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return nil, err
	}
	p, ok := f.Profiles[s.profile]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	v, ok := p.Values[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return []byte(v), nil
}

func (s *Store) Set(ctx context.Context, values map[string][]byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return err
	}
	p := f.profile(s.profile)
	for k, v := range values {
		p.Values[k] = string(v)
	}
	f.CurrentProfile = s.profile
	return s.save(f)
}

func (s *Store) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return err
	}
	p, ok := f.Profiles[s.profile]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(p.Values, k)
	}
	return s.save(f)
}

// APIURL returns the base URL remembered for the profile, if any.
func (s *Store) APIURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return ""
	}
	if p, ok := f.Profiles[s.profile]; ok {
		return p.APIURL
	}
	return ""
}

func (s *Store) SetAPIURL(url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return err
	}
	f.profile(s.profile).APIURL = url
	return s.save(f)
}

func (s *Store) load() (*File, error) {
	f := &File{
		CurrentProfile: DefaultProfile,
		Profiles:       make(map[string]*Profile),
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if f.Profiles == nil {
		f.Profiles = make(map[string]*Profile)
	}
	if f.CurrentProfile == "" {
		f.CurrentProfile = DefaultProfile
	}
	return f, nil
}

func (s *Store) save(f *File) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

func (f *File) profile(name string) *Profile {
	p, ok := f.Profiles[name]
	if !ok {
		p = &Profile{}
		f.Profiles[name] = p
	}
	if p.Values == nil {
		p.Values = make(map[string]string)
	}
	return p
}
