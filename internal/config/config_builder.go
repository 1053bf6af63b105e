package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects config layers in priority order. Errors from every
// layer are joined and reported once by build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*StructuredConfig, 0, 4)}
}

// add records a layer, or its error when loading it failed. A nil layer
// with no error is skipped.
func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	switch {
	case err != nil:
		b.err = errors.Join(b.err, err)
	case cfg != nil:
		b.configs = append(b.configs, cfg)
	}
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(defaultConfig(), nil)
}

func (b *configBuilder) withDotEnv(path string) *configBuilder {
	return b.add(nil, loadDotEnv(path))
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := new(StructuredConfig)
	return b.add(cfg, parseEnv(cfg))
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add(ParseFlags(args))
}

// withJSON loads the file named by the most recent layer that set
// JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}
	return b.add(parseJSON(path))
}

func (b *configBuilder) jsonPath() string {
	for i := len(b.configs) - 1; i >= 0; i-- {
		if p := b.configs[i].JSONFilePath; p != "" {
			return p
		}
	}
	return ""
}

// build merges the layers so that non-zero fields of later layers win, then
// validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("loading config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.configs {
		if err := mergo.Merge(merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging config layers: %w", err)
		}
	}

	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}
