// Package dataset supplies the static IPC and CPC section lists and the
// sample FIR records, baked into the binary as YAML.
//
// A data directory may carry replacement files under datasets/<kind>.yaml;
// they are read once when the Provider is built.
package dataset

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driven"
	"github.com/nyayvidhi/nyaya/internal/logger"
)

//go:embed data/*.yaml
var embedded embed.FS

// Verify interface compliance.
var _ driven.DatasetProvider = (*Provider)(nil)

// Provider serves parsed datasets from memory.
type Provider struct {
	sections map[domain.DatasetKind][]domain.RawSection
}

// New parses the embedded datasets, replacing any kind for which
// overrideDir holds a <kind>.yaml file. An empty overrideDir disables
// overrides.
func New(overrideDir string) (*Provider, error) {
	p := &Provider{sections: make(map[domain.DatasetKind][]domain.RawSection)}

	for _, kind := range domain.DatasetKinds() {
		name := kind.String() + ".yaml"

		data, source, err := readOverride(overrideDir, name)
		if err != nil {
			return nil, err
		}
		if data == nil {
			data, err = embedded.ReadFile("data/" + name)
			if err != nil {
				return nil, fmt.Errorf("reading embedded %s: %w", name, err)
			}
			source = "embedded"
		}

		sections, err := parseSections(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s dataset (%s): %w", kind, source, err)
		}
		logger.Debug("dataset %s: %d sections from %s", kind, len(sections), source)
		p.sections[kind] = sections
	}

	return p, nil
}

// Load returns a copy of the dataset for kind.
func (p *Provider) Load(_ context.Context, kind domain.DatasetKind) ([]domain.RawSection, error) {
	sections, ok := p.sections[kind]
	if !ok {
		return nil, fmt.Errorf("%w: dataset %q", domain.ErrUnsupportedType, kind)
	}
	return append([]domain.RawSection(nil), sections...), nil
}

// FIRs returns the sample FIR records used to seed an empty store.
func FIRs() ([]domain.FIR, error) {
	data, err := embedded.ReadFile("data/firs.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded firs.yaml: %w", err)
	}
	var firs []domain.FIR
	if err := yaml.Unmarshal(data, &firs); err != nil {
		return nil, fmt.Errorf("parsing firs.yaml: %w", err)
	}
	return firs, nil
}

// readOverride returns nil data when no override file exists.
func readOverride(dir, name string) ([]byte, string, error) {
	if dir == "" {
		return nil, "", nil
	}
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("reading dataset override: %w", err)
	}
	return data, path, nil
}

func parseSections(data []byte) ([]domain.RawSection, error) {
	var sections []domain.RawSection
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return nil, err
	}
	seen := make(map[int]bool, len(sections))
	for _, s := range sections {
		if s.Number <= 0 {
			return nil, fmt.Errorf("%w: section number must be positive, got %d", domain.ErrInvalidInput, s.Number)
		}
		if seen[s.Number] {
			return nil, fmt.Errorf("%w: duplicate section %d", domain.ErrInvalidInput, s.Number)
		}
		seen[s.Number] = true
	}
	if sections == nil {
		sections = []domain.RawSection{}
	}
	return sections, nil
}
