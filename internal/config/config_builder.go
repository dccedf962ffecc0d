// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	// explicit holds values applied right after the layer with the same
	// index is merged, for flags whose zero value is meaningful.
	explicit map[int][]func(*StructuredConfig)
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:  make([]*StructuredConfig, 0, 4),
		explicit: make(map[int][]func(*StructuredConfig)),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for i, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
		for _, apply := range b.explicit[i] {
			apply(config)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

// withDotEnv loads the .env file named by -env-file, DOTENV, or the default
// path. It must run before withEnv.
func (b *configBuilder) withDotEnv(args []string) *configBuilder {
	path, explicit := DefaultDotEnvPath, false

	if envPath := lookupEnv("DOTENV"); envPath != "" {
		path, explicit = envPath, true
	}
	// flag errors are reported by withFlags
	if flagsCfg, err := parseFlags(args, io.Discard); err == nil && flagsCfg.DotEnvPath != "" {
		path, explicit = flagsCfg.DotEnvPath, true
	}

	if err := loadDotEnv(path, explicit); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, explicit, err := parseFlagLayer(args, os.Stderr)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.explicit[len(b.configs)] = explicit
	b.configs = append(b.configs, flagsCfg)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}
