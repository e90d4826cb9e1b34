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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-yomitan"
)

func (a *app) lookupCommand() *cli.Command {
	return &cli.Command{
		Name:         "lookup",
		Usage:        "Look up words in a dictionary",
		ArgsUsage:    "PATH QUERY",
		Description:  "Print the entries whose headword or reading matches QUERY.",
		OnUsageError: onUsageError,
		Action:       a.lookup,
	}
}

func (a *app) lookup(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("%w: expected PATH and QUERY arguments", ErrFlagParse)
	}
	p, query := c.Args().Get(0), c.Args().Get(1)

	pkg, err := yomitan.Open(p)
	if err != nil {
		//nolint:wrapcheck // error includes the path
		return err
	}

	rows, err := pkg.Search(query)
	if err != nil {
		//nolint:wrapcheck // error should not be wrapped
		return err
	}
	a.log.Debug("searched dictionary", "path", p, "query", query, "results", len(rows))

	w := c.App.Writer
	for i, r := range rows {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, yomitan.RowString(r))
	}
	return nil
}
