package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leon-matthews/tinysearch/core"
	"github.com/leon-matthews/tinysearch/storage"
)

// newTestRepository returns an in-memory repository seeded with the given
// documents, closed automatically when the test finishes.
func newTestRepository(t *testing.T, docs ...*core.Document) storage.DocumentRepository {
	t.Helper()

	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	if len(docs) > 0 {
		_, err = repo.AddDocuments(context.Background(), docs...)
		require.NoError(t, err)
	}
	return repo
}

func produceDocuments() []*core.Document {
	return []*core.Document{
		{Title: "Apple", Body: "An apple is greater than a banana!"},
		{Title: "Banana", Body: "An banana is better than an apple!"},
		{Title: "Carrot", Body: "Does anybody still think carrots are sweet?"},
		{Title: "Durian", Body: "I have always been too scared to eat it, for its smell is terrible."},
		{Title: "Egg Plant", Body: "串 句 is not another name for aubergines."},
	}
}

func TestAddDocuments(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	added, err := repo.AddDocuments(ctx, produceDocuments()...)
	require.NoError(t, err)
	require.Len(t, added, 5)

	for _, doc := range added {
		assert.NotZero(t, doc.Id)
		assert.False(t, doc.InsertedAt.IsZero())
		assert.False(t, doc.UpdatedAt.IsZero())
	}

	count, err := repo.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestAddDocuments_Idempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.AddDocuments(ctx, &core.Document{Title: "Apple", Body: "A fruit."})
	require.NoError(t, err)
	inserted := first[0].InsertedAt

	// Same content again: same ID, single record, InsertedAt preserved.
	second, err := repo.AddDocuments(ctx, &core.Document{Title: "Apple", Body: "A fruit."})
	require.NoError(t, err)
	assert.Equal(t, first[0].Id, second[0].Id)
	assert.Equal(t, inserted, second[0].InsertedAt)

	count, err := repo.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetDocument(t *testing.T) {
	repo := newTestRepository(t, produceDocuments()...)
	ctx := context.Background()

	added, err := repo.GetRecentDocuments(ctx, 10)
	require.NoError(t, err)
	require.Len(t, added, 5)

	t.Run("found", func(t *testing.T) {
		doc, err := repo.GetDocument(ctx, added[0].Id)
		require.NoError(t, err)
		assert.Equal(t, added[0].Id, doc.Id)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetDocument(ctx, core.ID(12345))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestGetDocuments_SkipsMissing(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	added, err := repo.AddDocuments(ctx, &core.Document{Title: "Apple", Body: "A fruit."})
	require.NoError(t, err)

	docs, err := repo.GetDocuments(ctx, added[0].Id, core.ID(999))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Apple", docs[0].Title)
}

func TestUpdateDocuments(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	added, err := repo.AddDocuments(ctx, &core.Document{Title: "Apple", Body: "A fruit."})
	require.NoError(t, err)

	doc := added[0]
	doc.Body = "The most boring of fruit."
	updated, err := repo.UpdateDocuments(ctx, doc)
	require.NoError(t, err)
	assert.True(t, !updated[0].UpdatedAt.Before(updated[0].InsertedAt))

	fetched, err := repo.GetDocument(ctx, doc.Id)
	require.NoError(t, err)
	assert.Equal(t, "The most boring of fruit.", fetched.Body)

	t.Run("missing document", func(t *testing.T) {
		_, err := repo.UpdateDocuments(ctx, &core.Document{Id: core.ID(999), Body: "Nope."})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestDeleteDocuments(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	added, err := repo.AddDocuments(ctx, produceDocuments()[:2]...)
	require.NoError(t, err)

	err = repo.DeleteDocuments(ctx, added[0].Id)
	require.NoError(t, err)

	count, err := repo.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	t.Run("missing document", func(t *testing.T) {
		err := repo.DeleteDocuments(ctx, core.ID(999))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestGetRecentDocuments(t *testing.T) {
	repo := newTestRepository(t, produceDocuments()...)
	ctx := context.Background()

	docs, err := repo.GetRecentDocuments(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, docs, 3)

	all, err := repo.GetRecentDocuments(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i-1].UpdatedAt.Before(all[i].UpdatedAt))
	}
}

func TestFindContaining(t *testing.T) {
	repo := newTestRepository(t, produceDocuments()...)
	ctx := context.Background()
	fields := []string{"title", "body"}

	titles := func(docs []*core.Document) []string {
		names := make([]string, len(docs))
		for i, doc := range docs {
			names[i] = doc.Title
		}
		return names
	}

	t.Run("matches all fields", func(t *testing.T) {
		docs, err := repo.FindContaining(ctx, fields, []string{"apple"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Apple", "Banana"}, titles(docs))
	})

	t.Run("no duplicate results", func(t *testing.T) {
		docs, err := repo.FindContaining(ctx, fields, []string{"apple", "banana"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Apple", "Banana"}, titles(docs))
	})

	t.Run("single result", func(t *testing.T) {
		docs, err := repo.FindContaining(ctx, fields, []string{"carrot"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Carrot"}, titles(docs))
	})

	t.Run("substring match", func(t *testing.T) {
		// LIKE-style pre-filter is loose on purpose; the scorer culls
		// non-prefix matches later.
		docs, err := repo.FindContaining(ctx, fields, []string{"rot"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Carrot"}, titles(docs))
	})

	t.Run("case insensitive", func(t *testing.T) {
		docs, err := repo.FindContaining(ctx, fields, []string{"DURIAN"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Durian"}, titles(docs))
	})

	t.Run("empty tokens", func(t *testing.T) {
		docs, err := repo.FindContaining(ctx, fields, nil)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("metadata field", func(t *testing.T) {
		meta := newTestRepository(t, &core.Document{
			Title:    "Feijoa",
			Body:     "Tastes of spring.",
			Metadata: map[string]string{"category": "orchard"},
		})
		docs, err := meta.FindContaining(ctx, []string{"metadata.category"}, []string{"orchard"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Feijoa"}, titles(docs))
	})

	t.Run("bad field path", func(t *testing.T) {
		_, err := repo.FindContaining(ctx, []string{"nope"}, []string{"apple"})
		assert.ErrorIs(t, err, core.ErrFieldNotFound)
	})
}
