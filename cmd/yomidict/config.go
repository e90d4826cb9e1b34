// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/ianlewis/go-yomitan/termbank"
)

// Source kinds.
const (
	SourceGlossary = "glossary"
	SourceJMdict   = "jmdict"
	SourceSQL      = "sql"
)

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"FORMAT" env-default:"text"`
}

// IndexConfig holds optional index.json metadata.
type IndexConfig struct {
	Revision    string `yaml:"revision"    env:"REVISION"`
	Author      string `yaml:"author"      env:"AUTHOR"`
	URL         string `yaml:"url"         env:"URL"`
	Description string `yaml:"description" env:"DESCRIPTION"`
	Attribution string `yaml:"attribution" env:"ATTRIBUTION"`
}

// Config holds yomidict settings.
type Config struct {
	// Name is the dictionary name.
	Name string `yaml:"name" env:"YOMIDICT_NAME"`

	// Source is the kind of input: glossary, jmdict, or sql.
	Source string `yaml:"source" env:"YOMIDICT_SOURCE" env-default:"glossary"`

	// Input is the input file path. "-" reads glossary input from stdin.
	Input string `yaml:"input" env:"YOMIDICT_INPUT"`

	// Query is the SQL query for the sql source.
	Query string `yaml:"query" env:"YOMIDICT_QUERY"`

	// OutputDir is the directory the dictionary is exported to.
	OutputDir string `yaml:"output_dir" env:"YOMIDICT_OUTPUT_DIR" env-default:"."`

	BatchSize  int    `yaml:"batch_size"  env:"YOMIDICT_BATCH_SIZE"  env-default:"10000"`
	NoPackage  bool   `yaml:"no_package"  env:"YOMIDICT_NO_PACKAGE"`
	HTML       bool   `yaml:"html"        env:"YOMIDICT_HTML"`
	Readings   bool   `yaml:"readings"    env:"YOMIDICT_READINGS"`
	Lang       string `yaml:"lang"        env:"YOMIDICT_LANG"        env-default:"eng"`
	CommonOnly bool   `yaml:"common_only" env:"YOMIDICT_COMMON_ONLY"`

	Index IndexConfig `yaml:"index" env-prefix:"YOMIDICT_INDEX_"`
	Log   LogConfig   `yaml:"log"   env-prefix:"YOMIDICT_LOG_"`
}

// LoadConfig reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		return &cfg, cfg.validate()
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch c.Source {
	case SourceGlossary, SourceJMdict, SourceSQL:
	default:
		return fmt.Errorf("%w: unknown source %q", ErrConfig, c.Source)
	}
	if c.BatchSize <= 0 {
		c.BatchSize = termbank.DefaultBatchSize
	}
	return nil
}
