package charm

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type contextFile struct {
	CharmClass   string             `json:"charm_class" yaml:"charm_class"`
	Metadata     Metadata           `json:"metadata" yaml:"metadata"`
	FlatPackage  string             `json:"metadata.package" yaml:"metadata.package"`
	Release      string             `json:"release" yaml:"release"`
	Packages     []string           `json:"packages" yaml:"packages"`
	Capabilities []CapabilityModule `json:"capabilities" yaml:"capabilities"`
}

// LoadContextFile reads a JSON or YAML render context from disk.
func LoadContextFile(path string) (RenderContext, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return RenderContext{}, errors.New("charm: context path is required")
	}
	return LoadContext(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// LoadContext reads a JSON or YAML render context from fsys. Fields absent
// from the document stay empty; no defaults are applied.
func LoadContext(fsys fs.FS, path string) (RenderContext, error) {
	if fsys == nil {
		return RenderContext{}, errors.New("charm: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return RenderContext{}, fmt.Errorf("charm: read context %s: %w", path, err)
	}
	return ParseContext(data, path)
}

// ParseContext decodes a render context document. source is only used in
// error messages.
func ParseContext(data []byte, source string) (RenderContext, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return RenderContext{}, fmt.Errorf("charm: context %s is empty", source)
	}

	var doc contextFile
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = contextFile{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return RenderContext{}, fmt.Errorf("charm: parse context %s: invalid JSON or YAML: %w", source, err)
		}
	}

	rc := RenderContext{
		CharmClass:   doc.CharmClass,
		Metadata:     doc.Metadata,
		Release:      doc.Release,
		Packages:     doc.Packages,
		Capabilities: doc.Capabilities,
	}
	if rc.Metadata.Package == "" {
		rc.Metadata.Package = doc.FlatPackage
	}
	return rc, nil
}

type metadataFile struct {
	Name        string   `yaml:"name"`
	Summary     string   `yaml:"summary"`
	Description string   `yaml:"description"`
	Series      []string `yaml:"series"`
	Subordinate bool     `yaml:"subordinate"`
}

// ReadMetadata reads a charm metadata.yaml and returns the package name it
// declares.
func ReadMetadata(r io.Reader) (Metadata, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Metadata{}, fmt.Errorf("charm: read metadata: %w", err)
	}
	var raw metadataFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Metadata{}, fmt.Errorf("charm: parse metadata: %w", err)
	}
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return Metadata{}, &MissingFieldError{Field: "metadata.name"}
	}
	return Metadata{Package: name}, nil
}

// ReadMetadataFile opens path and delegates to ReadMetadata.
func ReadMetadataFile(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("charm: open metadata: %w", err)
	}
	defer f.Close()
	return ReadMetadata(f)
}
