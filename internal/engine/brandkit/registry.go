package brandkit

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

var ErrKitNotFound = errors.New("brand kit not found")

// Registry holds the default kit plus any user kits. Safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	kits map[string]BrandKit
}

func NewRegistry() *Registry {
	return &Registry{kits: map[string]BrandKit{DefaultID: Default()}}
}

// Register validates and adds a user kit. The default kit cannot be replaced.
func (r *Registry) Register(k BrandKit) error {
	if k.ID == DefaultID {
		return fmt.Errorf("brand kit id %q is reserved", DefaultID)
	}
	if err := Validate(k); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.kits[k.ID] = k.Clone()
	return nil
}

// Get returns a copy of the kit with the given id.
func (r *Registry) Get(id string) (BrandKit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k, ok := r.kits[id]
	if !ok {
		return BrandKit{}, fmt.Errorf("%w: %s", ErrKitNotFound, id)
	}
	return k.Clone(), nil
}

func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.kits))
	for id := range r.kits {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadFile registers every kit in a YAML or JSON file and returns how many were
// added. It stops at the first invalid kit.
func (r *Registry) LoadFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	kits, err := Decode(data)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	for i, k := range kits {
		if err := r.Register(k); err != nil {
			return i, fmt.Errorf("%s: kit %s: %w", path, k.ID, err)
		}
	}
	return len(kits), nil
}

type kitFile struct {
	Kits []BrandKit `yaml:"kits"`
}

// Decode reads kits from YAML or JSON. It accepts a document with a top-level
// "kits" list or a single kit.
func Decode(data []byte) ([]BrandKit, error) {
	var file kitFile
	if err := yaml.Unmarshal(data, &file); err == nil && len(file.Kits) > 0 {
		return file.Kits, nil
	}

	var single BrandKit
	if err := yaml.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("decode brand kit: %w", err)
	}
	if single.ID == "" {
		return nil, errors.New("decode brand kit: no kits found")
	}
	return []BrandKit{single}, nil
}
