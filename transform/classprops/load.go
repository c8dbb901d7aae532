package classprops

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidOptions marks an options document that cannot be decoded
	// into Options.
	ErrInvalidOptions = errors.New("invalid classprops options")

	// ErrUnknownFormat is returned for an options format other than yaml,
	// json or toml.
	ErrUnknownFormat = errors.New("unknown options format")
)

// Format names an options document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatOf returns the format implied by a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.WithHint(
		errors.Wrapf(ErrUnknownFormat, "options file %s", path),
		"use a .yaml, .yml, .json or .toml file")
}

// LoadFile reads and decodes the options file at path.
func LoadFile(path string) (*Options, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read options file %s", path)
	}
	opts, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "options file %s", path)
	}
	return opts, nil
}

// Parse decodes an options document. JSON documents are read with the YAML
// decoder.
func Parse(data []byte, format Format) (*Options, error) {
	raw := map[string]any{}
	switch format {
	case FormatYAML, FormatJSON:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s options", format)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, errors.Wrap(err, "failed to parse toml options")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", string(format))
	}
	return Decode(raw)
}

// Decode interprets a loosely typed options object. Apart from a member's
// value, every recognized option must have the expected type; unknown keys
// are ignored. A string value becomes a Snippet, a missing or null value
// leaves the member without an initializer and any other value becomes
// Unsupported.
func Decode(raw map[string]any) (*Options, error) {
	opts := &Options{}
	if raw == nil {
		return opts, nil
	}

	var err error
	if opts.All, err = optionalBool(raw, "all"); err != nil {
		return nil, err
	}
	if opts.Classes, err = stringList(raw, "classes"); err != nil {
		return nil, err
	}
	if opts.SuperClasses, err = stringList(raw, "superClasses"); err != nil {
		return nil, err
	}

	props, err := mapList(raw, "props")
	if err != nil {
		return nil, err
	}
	for i, prop := range props {
		spec, err := decodeMember(prop)
		if err != nil {
			return nil, errors.Wrapf(err, "props[%d]", i)
		}
		opts.Props = append(opts.Props, spec)
	}
	return opts, nil
}

func decodeMember(raw map[string]any) (MemberSpec, error) {
	var spec MemberSpec

	key, ok := raw["key"]
	if !ok || key == nil {
		return spec, errors.WithHint(
			errors.Wrap(ErrInvalidOptions, "missing key"),
			"every prop needs a key naming the field")
	}
	if spec.Key, ok = key.(string); !ok {
		return spec, errors.Wrapf(ErrInvalidOptions, "key must be a string, got %T", key)
	}

	var err error
	if spec.Static, err = optionalBool(raw, "static"); err != nil {
		return spec, err
	}

	if value, ok := raw["value"]; ok && value != nil {
		if text, isText := value.(string); isText {
			spec.Value = Snippet(text)
		} else {
			spec.Value = Unsupported{Raw: value}
		}
	}
	return spec, nil
}

func optionalBool(raw map[string]any, name string) (bool, error) {
	v, ok := raw[name]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.Wrapf(ErrInvalidOptions, "%s must be a boolean, got %T", name, v)
	}
	return b, nil
}

// stringList accepts a list of strings or a single string.
func stringList(raw map[string]any, name string) ([]string, error) {
	v, ok := raw[name]
	if !ok || v == nil {
		return nil, nil
	}
	switch v := v.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.Wrapf(ErrInvalidOptions, "%s[%d] must be a string, got %T", name, i, item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, errors.Wrapf(ErrInvalidOptions, "%s must be a list of strings, got %T", name, v)
}

// mapList accepts a list of mappings, as decoded from YAML ([]any) or from
// a TOML array of tables ([]map[string]any).
func mapList(raw map[string]any, name string) ([]map[string]any, error) {
	v, ok := raw[name]
	if !ok || v == nil {
		return nil, nil
	}
	switch v := v.(type) {
	case []map[string]any:
		return v, nil
	case []any:
		out := make([]map[string]any, 0, len(v))
		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, errors.Wrapf(ErrInvalidOptions, "%s[%d] must be a mapping, got %T", name, i, item)
			}
			out = append(out, m)
		}
		return out, nil
	}
	return nil, errors.Wrapf(ErrInvalidOptions, "%s must be a list, got %T", name, v)
}
