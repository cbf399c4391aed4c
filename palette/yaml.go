package palette

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes an RGB triple from a YAML flow sequence such as
// [45, 42, 50], rejecting components outside [0,255].
func (c *RGB) UnmarshalYAML(value *yaml.Node) error {
	var parts []int
	if err := value.Decode(&parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return fmt.Errorf("palette: color needs 3 components, got %d", len(parts))
	}
	for _, v := range parts {
		if v < 0 || v > 255 {
			return fmt.Errorf("palette: color component %d out of range", v)
		}
	}
	*c = RGB{uint8(parts[0]), uint8(parts[1]), uint8(parts[2])}
	return nil
}

type paletteFile struct {
	Zones map[string]map[Role]RGB `yaml:"zones"`
}

// LoadFile merges zone palettes from a YAML file into the registry,
// replacing any same-named entries. Every palette in the file must be
// complete and may only use known role names.
func (r *Registry) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var f paletteFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("palette: parsing %s: %w", path, err)
	}

	known := make(map[Role]struct{}, len(Roles))
	for _, role := range Roles {
		known[role] = struct{}{}
	}

	for name, colors := range f.Zones {
		for role := range colors {
			if _, ok := known[role]; !ok {
				return fmt.Errorf("palette: zone %q: unknown role %q", name, role)
			}
		}
		if err := r.Register(name, Palette(colors)); err != nil {
			return err
		}
	}

	return nil
}
