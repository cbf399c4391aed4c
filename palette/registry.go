package palette

import (
	"errors"
	"fmt"
	"sort"
)

// Registry holds the named zone palettes available to a generation run.
// Palettes are validated on the way in and copied on the way in and out,
// so concurrent zone workers only ever see immutable data.
type Registry struct {
	palettes map[string]Palette
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		palettes: make(map[string]Palette),
	}
}

// Register stores a palette under the given zone name. It fails if the
// palette is missing any role. Re-registering a name replaces the previous
// palette.
func (r *Registry) Register(name string, p Palette) error {
	if name == "" {
		return errors.New("palette: empty zone name")
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("zone %q: %w", name, err)
	}
	r.palettes[name] = p.Clone()
	return nil
}

// Lookup returns the palette registered under name, or an error wrapping
// ErrNotFound.
func (r *Registry) Lookup(name string) (Palette, error) {
	p, ok := r.palettes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p.Clone(), nil
}

// Names returns the registered zone names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.palettes))
	for name := range r.palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered palettes.
func (r *Registry) Len() int {
	return len(r.palettes)
}
