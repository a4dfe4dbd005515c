// Package driver wires evaluation sessions together: it loads the YAML
// manifest describing the initial environment a run starts from.
package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"eddy/interpreter-go/pkg/interpreter"
	"eddy/interpreter-go/pkg/runtime"
)

// Manifest models a session manifest: the bindings preloaded into the
// outermost scope before any expression runs.
type Manifest struct {
	Path     string
	Bindings map[string]any
}

type manifestDisk struct {
	Bindings map[string]any `yaml:"bindings"`
}

// LoadManifest parses a session manifest from disk.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var raw manifestDisk
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", abs, err)
	}

	return &Manifest{Path: abs, Bindings: raw.Bindings}, nil
}

// Environment builds the outermost scope from the manifest bindings.
// Numbers bind as number values and booleans as 0/1. Strings bind as text,
// unless the string names a registered operator symbol, in which case the
// binding is that primitive's function value.
func (m *Manifest) Environment() (*runtime.Environment, error) {
	env := runtime.NewEnvironment(nil)
	if m == nil {
		return env, nil
	}
	names := make([]string, 0, len(m.Bindings))
	for name := range m.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		value, err := bindingValue(m.Bindings[name])
		if err != nil {
			return nil, fmt.Errorf("manifest: binding %s: %w", name, err)
		}
		env.Define(name, value)
	}
	return env, nil
}

func bindingValue(raw any) (runtime.Value, error) {
	switch v := raw.(type) {
	case int:
		return runtime.NumberValue{Val: float64(v)}, nil
	case int64:
		return runtime.NumberValue{Val: float64(v)}, nil
	case float64:
		return runtime.NumberValue{Val: v}, nil
	case bool:
		if v {
			return runtime.NumberValue{Val: 1}, nil
		}
		return runtime.NumberValue{Val: 0}, nil
	case string:
		if prim, ok := interpreter.LookupPrim(v); ok {
			return runtime.FunValue{Node: prim}, nil
		}
		return runtime.StrValue{Val: v}, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", raw)
	}
}
