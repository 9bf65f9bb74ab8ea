package scene

import (
	"fmt"
	"image/color"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"turtleworks/turtle"
)

// File is the YAML layout for scene overrides:
//
//	scenes:
//	  galaxy:
//	    arms: 7
//	    background: "#101020"
type File struct {
	Scenes map[string]map[string]any `yaml:"scenes"`
}

// Load reads overrides from path and applies them to the defaults.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}
	return Parse(data)
}

// Parse applies YAML overrides to the defaults.
func Parse(data []byte) (*Registry, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}
	r := Defaults()
	for name, values := range f.Scenes {
		s, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		if err := decode(values, s); err != nil {
			return nil, fmt.Errorf("scene %q: %w", name, err)
		}
	}
	return r, nil
}

func decode(values map[string]any, into Scene) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       colorHook,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           into,
	})
	if err != nil {
		return err
	}
	return dec.Decode(values)
}

var rgbaType = reflect.TypeOf(color.RGBA{})

// colorHook turns palette names and hex strings into color.RGBA.
func colorHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != rgbaType || from.Kind() != reflect.String {
		return data, nil
	}
	return turtle.ParseColor(data.(string))
}
