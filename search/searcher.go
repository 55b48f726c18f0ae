package search

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/leon-matthews/tinysearch/core"
)

const (
	// DefaultMinTokenLength drops single-character query tokens.
	DefaultMinTokenLength = 2

	// DefaultMaxTokens caps how many query tokens are searched for.
	DefaultMaxTokens = 4
)

// FieldWeights maps dotted document field paths to positive score
// weightings, eg. {"title": 5, "body": 1}. Weights are supplied by the
// integrator, never by end users.
type FieldWeights map[string]int

// Store is the backing collection capability the searcher depends on.
//
// Given field paths and tokens, it returns every document whose fields
// loosely (case-insensitive substring) contain at least one token, each
// document at most once. The loose filter is expected to over-match;
// scoring culls the false positives.
type Store interface {
	FindContaining(ctx context.Context, fields []string, tokens []string) ([]*core.Document, error)
}

// Searcher scores documents from a backing store against free-text
// queries.
//
// Each call to Search is independent and stateless, so a single Searcher
// may be used concurrently as long as the store's read path is
// thread-safe.
type Searcher struct {
	store        Store
	weights      FieldWeights
	fields       []string // weight keys, sorted
	allowPartial bool
	minLength    int
	maxTokens    int
	logger       *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithAllowPartial controls multi-token semantics.
// True (the default) keeps documents matching any token (OR); false keeps
// only documents where every token matched somewhere (AND).
func WithAllowPartial(allow bool) Option {
	return func(s *Searcher) error {
		s.allowPartial = allow
		return nil
	}
}

// WithMinTokenLength sets the minimum query token length.
// Default is DefaultMinTokenLength.
func WithMinTokenLength(length int) Option {
	return func(s *Searcher) error {
		if length < 1 {
			length = 1
		}
		s.minLength = length
		return nil
	}
}

// WithMaxTokens sets the maximum number of query tokens searched for.
// Default is DefaultMaxTokens.
func WithMaxTokens(count int) Option {
	return func(s *Searcher) error {
		if count < 1 {
			count = 1
		}
		s.maxTokens = count
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher over the given store.
func NewSearcher(store Store, weights FieldWeights, opts ...Option) (*Searcher, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if len(weights) == 0 {
		return nil, ErrNoFields
	}

	fields := make([]string, 0, len(weights))
	for field, weight := range weights {
		if weight <= 0 {
			return nil, fmt.Errorf("%w: %q has weight %d", ErrInvalidWeight, field, weight)
		}
		fields = append(fields, field)
	}
	sort.Strings(fields)

	s := &Searcher{
		store:        store,
		weights:      weights,
		fields:       fields,
		allowPartial: true,
		minLength:    DefaultMinTokenLength,
		maxTokens:    DefaultMaxTokens,
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search runs a query against the backing store.
//
// Queries of only stop words or too-short tokens produce an empty board
// without touching the store. Regex metacharacters in the query, including
// a trailing backslash, are treated as literal text.
func (s *Searcher) Search(ctx context.Context, query string) (*ScoreBoard, error) {
	return s.SearchWithMonitor(ctx, query, nil)
}

// SearchWithMonitor runs a query, invoking the monitor at each stage.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, monitor SearchMonitor) (*ScoreBoard, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query)

	tokens := tokenize(query, s.minLength, s.maxTokens)
	monitor.AfterTokenize(tokens)

	board := NewScoreBoard()
	if len(tokens) == 0 {
		monitor.Finish(board)
		return board, nil
	}

	candidates, err := s.store.FindContaining(ctx, s.fields, tokens)
	if err != nil {
		s.logger.Error("error fetching search candidates", "query", query, "err", err)
		return nil, err
	}
	monitor.AfterFetch(candidates)

	if err := s.score(board, candidates, tokens, monitor); err != nil {
		s.logger.Error("error scoring search candidates", "query", query, "err", err)
		return nil, err
	}

	monitor.Finish(board)
	return board, nil
}

// score tallies weighted regex matches for each candidate document.
//
// A single alternation matches any token at a word-prefix boundary. That
// second pass eliminates the bad matches the loose database filter lets
// through: 'against' is fetched as a candidate for 'gain' but scores zero,
// because 'gain' never starts a word.
func (s *Searcher) score(board *ScoreBoard, candidates []*core.Document, tokens []string, monitor SearchMonitor) error {
	pattern, err := compileTokenPattern(tokens)
	if err != nil {
		return err
	}

	seen := make(map[core.ID]bool, len(candidates))
	for _, doc := range candidates {
		// Stores should not return duplicates, but do not rely on it.
		if seen[doc.Id] {
			continue
		}
		seen[doc.Id] = true

		score := 0
		matched := make(map[string]bool)

		for _, field := range s.fields {
			value, err := core.FieldString(doc, field)
			if err != nil {
				return err
			}

			hits := pattern.FindAllString(strings.ToLower(value), -1)
			score += len(hits) * s.weights[field]
			for _, hit := range hits {
				matched[hit] = true
			}
		}

		// AND or OR multi-token search?
		if len(matched) == 0 || !(s.allowPartial || len(matched) == len(tokens)) {
			monitor.DocumentRejected(doc)
			continue
		}

		board.Add(doc, score)
		monitor.DocumentScored(doc, score, sortedTokens(matched))
	}
	return nil
}

// compileTokenPattern builds a single alternation matching any token at a
// word-prefix boundary. Tokens are escaped first so metacharacters in the
// raw query, including a trailing backslash, cannot break compilation.
func compileTokenPattern(tokens []string) (*regexp.Regexp, error) {
	quoted := make([]string, len(tokens))
	for i, token := range tokens {
		quoted[i] = regexp.QuoteMeta(token)
	}
	return regexp.Compile(`\b(?:` + strings.Join(quoted, "|") + `)`)
}

// sortedTokens returns set members in ascending order.
func sortedTokens(set map[string]bool) []string {
	tokens := make([]string, 0, len(set))
	for token := range set {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
