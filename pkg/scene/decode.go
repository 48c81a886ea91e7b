package scene

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/labelrepel/pkg/errors"
)

// Supported scene formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// FormatFromFilename returns the scene format implied by the file extension.
func FormatFromFilename(name string) (string, error) {
	if err := errors.ValidateSceneFilename(name); err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatJSON, nil
	}
}

// Parse decodes, normalizes and validates a scene.
func Parse(data []byte, format string) (*Scene, error) {
	var s Scene
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &s)
	case FormatTOML:
		err = toml.Unmarshal(data, &s)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err = dec.Decode(&s); err == io.EOF {
			err = nil
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported scene format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode %s scene", format)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.Normalize()
	return &s, nil
}

// Read decodes a scene of the given format from r.
func Read(r io.Reader, format string) (*Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data, format)
}

// ReadFile reads a scene, picking the format from the extension.
func ReadFile(path string) (*Scene, error) {
	format, err := FormatFromFilename(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene %s", path)
		}
		return nil, err
	}
	return Parse(data, format)
}

// Marshal encodes a scene as indented JSON. The encoding is stable, so its
// hash identifies the scene for caching.
func Marshal(s *Scene) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
