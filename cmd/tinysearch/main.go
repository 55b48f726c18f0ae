// Copyright 2026 Leon Matthews
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/leon-matthews/tinysearch/config"
)

func main() {
	app := &cli.App{
		Name:  "tinysearch",
		Usage: "Brute-force text search over small document collections",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to database directory (overrides config)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "add",
				Usage:  "Add a single document",
				Action: addCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Document title",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "body",
						Usage:    "Document body text",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "meta",
						Usage: "Metadata entry as key=value (repeatable)",
					},
				},
			},
			{
				Name:      "import",
				Usage:     "Bulk import documents from a YAML file",
				ArgsUsage: "FILE",
				Action:    importCommand,
			},
			{
				Name:      "search",
				Usage:     "Search for documents",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results to print",
						Value:   10,
					},
					&cli.BoolFlag{
						Name:  "all",
						Usage: "Require every search token to match",
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List the most recently updated documents",
				Action: listCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of documents to print",
						Value:   20,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// setupLogger installs a text handler at the requested level.
func setupLogger(c *cli.Context) error {
	var level slog.Level
	switch strings.ToLower(c.String("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("unknown log level: %s", c.String("log-level"))
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
	return nil
}

// loadConfig reads the configuration file if one was given, then applies
// command-line overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if db := c.String("db"); db != "" {
		cfg.Database = db
	}
	return cfg, nil
}
