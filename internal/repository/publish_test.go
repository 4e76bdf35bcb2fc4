package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yichuanzhang/booktracker/config"
	"github.com/yichuanzhang/booktracker/internal/model"
	"github.com/yichuanzhang/booktracker/migrations"
)

// A client may disconnect right after its write commits. The snapshot
// re-read must still run and reach observers, otherwise the stream goes
// stale until an unrelated write.
func TestRepository_PublishSurvivesCancelledWriterContext(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db, err := NewDB(ctx, &config.Database{
		Path: filepath.Join(t.TempDir(), "books.db"),
	}, migrations.MigrationFiles)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := NewRepository(db, zap.NewNop())
	require.NoError(t, err)

	id, err := repo.Insert(ctx, model.Book{
		Name:       "Dune",
		Author:     "Frank Herbert",
		Category:   "Science Fiction",
		TotalPages: 412,
	})
	require.NoError(t, err)

	ch := repo.ObserveAll(ctx)
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("no initial snapshot")
	}

	book, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	book.ReadPages = 200
	book.Progress = model.DeriveProgress(book.ReadPages, book.TotalPages)

	gone, cancel := context.WithCancel(ctx)
	cancel()

	repo.mu.Lock()
	repo.publishLocked(gone, &book)
	repo.mu.Unlock()

	select {
	case snapshot := <-ch:
		require.Len(t, snapshot, 1)
	case <-time.After(time.Second):
		t.Fatal("no snapshot after publish with cancelled writer context")
	}
}
