package binding

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Loader loads binding sets from TOML files.
type Loader struct {
	// searchPaths are directories to search for binding files.
	searchPaths []string
}

// NewLoader creates a new binding loader.
func NewLoader() *Loader {
	return &Loader{
		searchPaths: make([]string, 0),
	}
}

// AddSearchPath adds a directory to search for binding files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// LoadFile loads a binding set from a TOML file. The file path becomes
// the set's Source, and the file name (without extension) its Name if
// the file does not declare one.
func (l *Loader) LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening binding file: %w", err)
	}
	defer f.Close()

	s, err := l.LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	s.Source = path
	if s.Name == "" {
		base := filepath.Base(path)
		s.Name = base[:len(base)-len(filepath.Ext(base))]
	}
	return s, nil
}

// LoadReader loads a binding set from a reader.
func (l *Loader) LoadReader(r io.Reader) (*Set, error) {
	var config setConfig
	if err := toml.NewDecoder(r).Decode(&config); err != nil {
		return nil, fmt.Errorf("decoding bindings: %w", err)
	}

	s := &Set{
		Name:     config.Name,
		Priority: config.Priority,
		Bindings: make([]Binding, 0, len(config.Bindings)),
	}
	for _, bc := range config.Bindings {
		s.Bindings = append(s.Bindings, Binding(bc))
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadAll loads every *.toml binding file found in the search paths.
// Files that fail to load are skipped.
func (l *Loader) LoadAll() []*Set {
	sets := make([]*Set, 0)

	for _, dir := range l.searchPaths {
		matches, err := filepath.Glob(filepath.Join(dir, "*.toml"))
		if err != nil {
			continue
		}
		for _, path := range matches {
			s, err := l.LoadFile(path)
			if err != nil {
				continue
			}
			sets = append(sets, s)
		}
	}

	return sets
}

// LoadAndRegister loads all binding files from the search paths and
// registers them.
func (l *Loader) LoadAndRegister(reg *Registry) error {
	for _, s := range l.LoadAll() {
		if err := reg.Register(s); err != nil {
			return err
		}
	}
	return nil
}

// setConfig is the TOML structure for binding files.
type setConfig struct {
	Name     string          `toml:"name,omitempty"`
	Priority int             `toml:"priority,omitempty"`
	Bindings []bindingConfig `toml:"bindings"`
}

type bindingConfig struct {
	Key         string `toml:"key"`
	Action      string `toml:"action"`
	Description string `toml:"description,omitempty"`
	Category    string `toml:"category,omitempty"`
}

// Marshal converts a set to TOML.
func (s *Set) Marshal() ([]byte, error) {
	config := setConfig{
		Name:     s.Name,
		Priority: s.Priority,
		Bindings: make([]bindingConfig, 0, len(s.Bindings)),
	}
	for _, b := range s.Bindings {
		config.Bindings = append(config.Bindings, bindingConfig(b))
	}
	return toml.Marshal(config)
}

// SaveFile saves a binding set to a TOML file.
func (s *Set) SaveFile(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return fmt.Errorf("marshaling bindings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing binding file: %w", err)
	}
	return nil
}
