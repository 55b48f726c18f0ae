package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/leon-matthews/tinysearch/config"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"WARN", false},
		{"verbose", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			app := &cli.App{
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "log-level", Value: tt.level},
				},
				Action: func(c *cli.Context) error {
					return setupLogger(c)
				},
			}
			err := app.Run([]string{"tinysearch"})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: /tmp/from_file\n"), 0644))

	var got *config.Config
	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config"},
			&cli.StringFlag{Name: "db"},
		},
		Action: func(c *cli.Context) error {
			var err error
			got, err = loadConfig(c)
			return err
		},
	}

	t.Run("defaults", func(t *testing.T) {
		require.NoError(t, app.Run([]string{"tinysearch"}))
		assert.Equal(t, config.DefaultConfig().Database, got.Database)
	})

	t.Run("from file", func(t *testing.T) {
		require.NoError(t, app.Run([]string{"tinysearch", "--config", path}))
		assert.Equal(t, "/tmp/from_file", got.Database)
	})

	t.Run("flag overrides file", func(t *testing.T) {
		require.NoError(t, app.Run([]string{"tinysearch", "--config", path, "--db", "/tmp/from_flag"}))
		assert.Equal(t, "/tmp/from_flag", got.Database)
	})
}

func TestDocumentsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "produce.yaml")
	contents := `
- title: Apple
  body: An apple is greater than a banana!
- title: Banana
  body: An banana is better than an apple!
  metadata:
    category: produce
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	source, err := documentsFromFile(path)
	require.NoError(t, err)

	var titles []string
	for doc := range source {
		titles = append(titles, doc.Title)
		if doc.Title == "Banana" {
			assert.Equal(t, "produce", doc.Metadata["category"])
		}
	}
	assert.Equal(t, []string{"Apple", "Banana"}, titles)
}

func TestDocumentsFromFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: [unclosed"), 0644))

	_, err := documentsFromFile(path)
	assert.Error(t, err)
}
