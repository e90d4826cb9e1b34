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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-yomitan"
)

func (a *app) inspectCommand() *cli.Command {
	return &cli.Command{
		Name:         "inspect",
		Usage:        "Print a summary of a dictionary",
		ArgsUsage:    "PATH",
		Description:  "Print the index and term bank files of an exported dictionary directory or zip archive.",
		OnUsageError: onUsageError,
		Action:       a.inspect,
	}
}

func (a *app) inspect(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("%w: expected a single PATH argument", ErrFlagParse)
	}
	p := c.Args().First()

	pkg, err := yomitan.Open(p)
	if err != nil {
		//nolint:wrapcheck // error includes the path
		return err
	}
	a.log.Debug("opened dictionary", "path", p, "rows", len(pkg.Rows()))

	w := c.App.Writer
	idx := pkg.Index()
	fmt.Fprintf(w, "Title:        %s\n", idx.Title)
	fmt.Fprintf(w, "Format:       %d\n", idx.Format)
	fmt.Fprintf(w, "Revision:     %s\n", idx.Revision)
	for _, field := range []struct{ name, value string }{
		{"Author:", idx.Author},
		{"URL:", idx.URL},
		{"Description:", idx.Description},
		{"Attribution:", idx.Attribution},
	} {
		if field.value != "" {
			fmt.Fprintf(w, "%-13s %s\n", field.name, field.value)
		}
	}
	fmt.Fprintln(w)

	tbl := table.New("File", "Rows").WithWriter(w)
	total := 0
	for _, b := range pkg.Banks() {
		tbl.AddRow(b.Name, b.Rows)
		total += b.Rows
	}
	tbl.AddRow("total", total)
	tbl.Print()
	return nil
}
