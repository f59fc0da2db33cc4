package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error

	flagSet *flag.FlagSet
	args    []string
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 5),
		flagSet: flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ContinueOnError),
		args:    os.Args[1:],
	}
}

// withArgs replaces the command-line arguments parsed by withFlags.
func (b *configBuilder) withArgs(args []string) *configBuilder {
	b.args = args
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

// withDotEnv loads the dotenv file into the process environment so that the
// following withEnv picks it up. The path comes from the DOTENV variable or,
// when unset, from the configs collected so far.
func (b *configBuilder) withDotEnv() *configBuilder {
	path := os.Getenv("DOTENV")
	if path == "" {
		for _, cfg := range b.configs {
			if cfg.DotEnvPath != "" {
				path = cfg.DotEnvPath
			}
		}
	}

	if err := loadDotEnv(path); err != nil {
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

func (b *configBuilder) withFlags() *configBuilder {
	flagsCfg, err := parseFlags(b.flagSet, b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

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
