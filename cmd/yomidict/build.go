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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-yomitan"
	"github.com/ianlewis/go-yomitan/glossary"
	"github.com/ianlewis/go-yomitan/index"
	"github.com/ianlewis/go-yomitan/jmdict"
	"github.com/ianlewis/go-yomitan/sqldict"
)

func (a *app) buildCommand() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "Build a dictionary package",
		ArgsUsage: "[INPUT]",
		Description: "Read entries from INPUT, export them to a dictionary directory,\n" +
			"and package the directory as a zip archive.",
		OnUsageError: onUsageError,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "dictionary `NAME`"},
			&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Usage: "input `KIND` (glossary, jmdict, sql)"},
			&cli.StringFlag{Name: "query", Usage: "SQL `QUERY` for the sql source"},
			&cli.StringFlag{Name: "output-dir", Aliases: []string{"o"}, Usage: "write the dictionary to `DIR`"},
			&cli.IntFlag{Name: "batch-size", Usage: "maximum `N` rows per term bank file"},
			&cli.BoolFlag{Name: "html", Usage: "convert HTML glossary definitions to text"},
			&cli.BoolFlag{Name: "readings", Usage: "fill in missing glossary readings"},
			&cli.StringFlag{Name: "lang", Usage: "JMdict gloss `LANG`"},
			&cli.BoolFlag{Name: "common-only", Usage: "only include common JMdict words"},
			&cli.BoolFlag{Name: "no-package", Usage: "do not create the zip archive"},
			&cli.StringFlag{Name: "revision", Usage: "dictionary `REVISION`"},
			&cli.StringFlag{Name: "author", Usage: "dictionary `AUTHOR`"},
			&cli.StringFlag{Name: "url", Usage: "dictionary `URL`"},
			&cli.StringFlag{Name: "description", Usage: "dictionary `DESCRIPTION`"},
			&cli.StringFlag{Name: "attribution", Usage: "dictionary `ATTRIBUTION`"},
		},
		Action: a.build,
	}
}

// applyFlags overrides configuration with the flags that were set.
func applyFlags(c *cli.Context, cfg *Config) {
	strs := map[string]*string{
		"name":        &cfg.Name,
		"source":      &cfg.Source,
		"query":       &cfg.Query,
		"output-dir":  &cfg.OutputDir,
		"lang":        &cfg.Lang,
		"revision":    &cfg.Index.Revision,
		"author":      &cfg.Index.Author,
		"url":         &cfg.Index.URL,
		"description": &cfg.Index.Description,
		"attribution": &cfg.Index.Attribution,
	}
	for name, p := range strs {
		if c.IsSet(name) {
			*p = c.String(name)
		}
	}

	bools := map[string]*bool{
		"html":        &cfg.HTML,
		"readings":    &cfg.Readings,
		"common-only": &cfg.CommonOnly,
		"no-package":  &cfg.NoPackage,
	}
	for name, p := range bools {
		if c.IsSet(name) {
			*p = c.Bool(name)
		}
	}

	if c.IsSet("batch-size") {
		cfg.BatchSize = c.Int("batch-size")
	}
	if c.Args().Present() {
		cfg.Input = c.Args().First()
	}
}

func (a *app) build(c *cli.Context) error {
	if c.Args().Len() > 1 {
		return fmt.Errorf("%w: unexpected arguments: %v", ErrFlagParse, c.Args().Tail())
	}

	cfg := *a.cfg
	applyFlags(c, &cfg)
	if err := cfg.validate(); err != nil {
		return err
	}
	if cfg.Name == "" {
		return fmt.Errorf("%w: missing dictionary name", ErrFlagParse)
	}
	if cfg.Input == "" {
		return fmt.Errorf("%w: missing input", ErrFlagParse)
	}

	entries, err := loadEntries(c.Context, c.App.Reader, &cfg)
	if err != nil {
		return err
	}
	a.log.Info("loaded entries", "source", cfg.Source, "input", cfg.Input, "entries", len(entries))

	d := yomitan.New(cfg.Name,
		yomitan.WithBaseDir(cfg.OutputDir),
		yomitan.WithBatchSize(cfg.BatchSize),
		yomitan.WithIndex(index.Index{
			Revision:    cfg.Index.Revision,
			Author:      cfg.Index.Author,
			URL:         cfg.Index.URL,
			Description: cfg.Index.Description,
			Attribution: cfg.Index.Attribution,
		}),
	)
	for _, e := range entries {
		d.AddEntry(e)
	}

	if err := d.Export(); err != nil {
		return fmt.Errorf("exporting %q: %w", cfg.Name, err)
	}
	a.log.Info("exported dictionary", "name", cfg.Name, "dir", d.Dir(), "entries", d.Len())

	if cfg.NoPackage {
		return nil
	}
	if err := d.Package(); err != nil {
		return fmt.Errorf("packaging %q: %w", cfg.Name, err)
	}
	a.log.Info("packaged dictionary", "name", cfg.Name, "archive", d.ArchivePath())
	return nil
}

func loadEntries(ctx context.Context, stdin io.Reader, cfg *Config) ([]*yomitan.Entry, error) {
	switch cfg.Source {
	case SourceJMdict:
		words, err := jmdict.LoadFile(cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", cfg.Input, err)
		}
		//nolint:wrapcheck // errors include the word id
		return jmdict.Convert(words, &jmdict.Options{
			Lang:       cfg.Lang,
			CommonOnly: cfg.CommonOnly,
		})

	case SourceSQL:
		db, err := sqldict.Open(cfg.Input)
		if err != nil {
			//nolint:wrapcheck // error includes the path
			return nil, err
		}
		defer db.Close()
		//nolint:wrapcheck // errors include the row number
		return sqldict.Query(ctx, db, cfg.Query)

	default:
		r := stdin
		if cfg.Input != "-" {
			f, err := os.Open(cfg.Input)
			if err != nil {
				//nolint:wrapcheck // the path error has enough context
				return nil, err
			}
			defer f.Close()
			r = f
		}
		entries, err := glossary.ReadAll(r, &glossary.Options{
			HTML:     cfg.HTML,
			Readings: cfg.Readings,
		})
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", cfg.Input, err)
		}
		return entries, nil
	}
}
