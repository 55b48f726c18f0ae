package main

import (
	"fmt"
	"iter"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/leon-matthews/tinysearch"
	"github.com/leon-matthews/tinysearch/core"
	"github.com/leon-matthews/tinysearch/ingest"
	"github.com/leon-matthews/tinysearch/search"
)

// importedDocument is the YAML shape of one document in an import file.
type importedDocument struct {
	Title    string            `yaml:"title"`
	Body     string            `yaml:"body"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

func addCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	metadata := make(map[string]string)
	for _, entry := range c.StringSlice("meta") {
		key, value, found := strings.Cut(entry, "=")
		if !found {
			return fmt.Errorf("malformed metadata entry: %q", entry)
		}
		metadata[key] = value
	}
	if len(metadata) == 0 {
		metadata = nil
	}

	doc := &core.Document{
		Title:    c.String("title"),
		Body:     c.String("body"),
		Metadata: metadata,
	}
	if err := core.ValidateDocument(doc); err != nil {
		return err
	}

	db, err := tinysearch.NewDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	added, err := db.Documents().AddDocuments(c.Context, doc)
	if err != nil {
		return err
	}

	fmt.Printf("Added document %d: %s\n", added[0].Id, added[0].Title)
	return nil
}

func importCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one import file, got %d arguments", c.NArg())
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	source, err := documentsFromFile(c.Args().First())
	if err != nil {
		return err
	}

	db, err := tinysearch.NewDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	opts := []ingest.Option{ingest.WithBatchSize(cfg.BatchSize)}
	if cfg.PoolSize > 0 {
		opts = append(opts, ingest.WithPoolSize(cfg.PoolSize))
	}
	loader, err := db.NewLoader(opts...)
	if err != nil {
		return err
	}
	defer loader.Release()

	count, err := loader.Load(c.Context, source)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d documents\n", count)
	return nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no search query given")
	}
	query := strings.Join(c.Args().Slice(), " ")

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	allowPartial := cfg.AllowPartial
	if c.Bool("all") {
		allowPartial = false
	}

	db, err := tinysearch.NewDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	searcher, err := db.NewSearcher(
		search.FieldWeights(cfg.Fields),
		search.WithAllowPartial(allowPartial),
		search.WithMinTokenLength(cfg.MinTokenLength),
		search.WithMaxTokens(cfg.MaxTokens),
	)
	if err != nil {
		return err
	}

	board, err := searcher.Search(c.Context, query)
	if err != nil {
		return err
	}

	hits := board.Ranked()
	if limit := c.Int("limit"); len(hits) > limit {
		hits = hits[:limit]
	}

	fmt.Printf("Found %d hits\n", board.Len())
	for i, hit := range hits {
		fmt.Printf("%d: %s (%d)[%d]\n", i+1, hit.Document.Title, hit.Document.Id, hit.Score)
	}
	return nil
}

func listCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	db, err := tinysearch.NewDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	docs, err := db.Documents().GetRecentDocuments(c.Context, c.Int("limit"))
	if err != nil {
		return err
	}

	for _, doc := range docs {
		fmt.Printf("%d: %s\n", doc.Id, doc.Title)
	}
	return nil
}

// documentsFromFile reads an import file: a YAML list of documents with
// title, body, and optional metadata keys.
func documentsFromFile(filename string) (iter.Seq[*core.Document], error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var imported []importedDocument
	if err := yaml.Unmarshal(data, &imported); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	return func(yield func(*core.Document) bool) {
		for _, entry := range imported {
			doc := &core.Document{
				Title:    entry.Title,
				Body:     entry.Body,
				Metadata: entry.Metadata,
			}
			if !yield(doc) {
				return
			}
		}
	}, nil
}
