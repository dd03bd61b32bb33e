package fonts

import (
	"fmt"
	"io/fs"
	"sort"
)

// FontLoadError reports a font resource that could not be loaded.
type FontLoadError struct {
	Name string
	Path string
	Err  error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("loading font %s from %s: %v", e.Name, e.Path, e.Err)
}

func (e *FontLoadError) Unwrap() error { return e.Err }

// Registry holds loaded fonts by the name they were requested under.
type Registry struct {
	fonts map[string]*Font
}

// Get returns the named font.
func (r *Registry) Get(name string) (*Font, bool) {
	if r == nil {
		return nil, false
	}
	f, ok := r.fonts[name]
	return f, ok
}

// Apply renders s in the named font, or returns s unchanged when the
// font was not loaded. A nil registry is valid.
func (r *Registry) Apply(name, s string) string {
	f, ok := r.Get(name)
	if !ok {
		return s
	}
	return f.Apply(s)
}

// Len returns the number of loaded fonts.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.fonts)
}

// Loader reads font resources from a file system.
type Loader struct {
	fsys fs.FS
}

// NewLoader returns a loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load reads every resource in resources (font name → path) and
// returns them as a registry. The first failure aborts the load.
func (l *Loader) Load(resources map[string]string) (*Registry, error) {
	names := make([]string, 0, len(resources))
	for name := range resources {
		names = append(names, name)
	}
	sort.Strings(names)

	reg := &Registry{fonts: make(map[string]*Font, len(resources))}
	for _, name := range names {
		p := resources[name]
		f, err := l.loadOne(p)
		if err != nil {
			return nil, &FontLoadError{Name: name, Path: p, Err: err}
		}
		reg.fonts[name] = f
	}
	return reg, nil
}

func (l *Loader) loadOne(p string) (*Font, error) {
	file, err := l.fsys.Open(p)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}
