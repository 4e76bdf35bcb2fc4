package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yichuanzhang/booktracker/config"
	"github.com/yichuanzhang/booktracker/internal/errs"
	"github.com/yichuanzhang/booktracker/internal/model"
	"github.com/yichuanzhang/booktracker/internal/repository"
	"github.com/yichuanzhang/booktracker/internal/service"
	"github.com/yichuanzhang/booktracker/migrations"
)

type stubFetcher struct {
	recs []model.Recommendation
	err  error
}

func (f stubFetcher) FetchAll(_ context.Context) ([]model.Recommendation, error) {
	return f.recs, f.err
}

func newTestService(t *testing.T, fetcher service.Fetcher) (*service.Service, repository.Repository) {
	t.Helper()
	ctx := context.Background()

	db, err := repository.NewDB(ctx, &config.Database{
		Path: filepath.Join(t.TempDir(), "books.db"),
	}, migrations.MigrationFiles)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := repository.NewRepository(db, zap.NewNop())
	require.NoError(t, err)

	return service.NewService(repo, fetcher, zap.NewNop()), repo
}

func addBook(t *testing.T, svc *service.Service, name string, totalPages int) int {
	t.Helper()
	id, err := svc.AddBook(context.Background(), model.Book{
		Name:       name,
		Author:     "Author",
		Category:   "Category",
		TotalPages: totalPages,
	})
	require.NoError(t, err)
	return id
}

func TestService_StartStates(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc, _ := newTestService(t, stubFetcher{
		recs: []model.Recommendation{{ID: 1, Name: "Dune"}},
	})
	require.Equal(t, model.StatusLoading, svc.Books().Status)
	require.Equal(t, model.StatusLoading, svc.Recommendations().Status)

	svc.Start(ctx)

	require.Eventually(t, func() bool {
		return svc.Books().Status == model.StatusReady
	}, time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		return svc.Recommendations().Status == model.StatusReady
	}, time.Second, 10*time.Millisecond)
	require.Len(t, svc.Recommendations().Recommendations, 1)
}

func TestService_NetworkFailureYieldsEmptyList(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc, _ := newTestService(t, stubFetcher{err: errors.New("host unreachable")})
	svc.Start(ctx)

	require.Eventually(t, func() bool {
		return svc.Recommendations().Status == model.StatusFailed
	}, time.Second, 10*time.Millisecond)

	st := svc.Recommendations()
	require.Empty(t, st.Recommendations)
	require.Contains(t, st.Err, "host unreachable")

	// the database state keeps working independently
	require.Eventually(t, func() bool {
		return svc.Books().Status == model.StatusReady
	}, time.Second, 10*time.Millisecond)
}

func TestService_MutationVisibleThroughStream(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc, _ := newTestService(t, stubFetcher{})
	svc.Start(ctx)

	id := addBook(t, svc, "Dune", 412)

	require.Eventually(t, func() bool {
		st := svc.Books()
		return st.Status == model.StatusReady && len(st.Books) == 1 && st.Books[0].ID == id
	}, time.Second, 10*time.Millisecond)
}

func TestService_UpdateReadPagesDerivesProgress(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := newTestService(t, stubFetcher{})
	id := addBook(t, svc, "Dune", 168)

	require.NoError(t, svc.UpdateReadPages(ctx, id, 93))
	got, err := svc.GetBook(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 93, got.ReadPages)
	require.Equal(t, 55, got.Progress)

	// clamped to the page count
	require.NoError(t, svc.UpdateReadPages(ctx, id, 1000))
	got, err = svc.GetBook(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 168, got.ReadPages)
	require.Equal(t, 100, got.Progress)
}

func TestService_MutationsOnMissingIDAreSilent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := newTestService(t, stubFetcher{})

	require.NoError(t, svc.UpdateReadPages(ctx, 999, 10))
	require.NoError(t, svc.UpdateRating(ctx, 999, 8))
	require.NoError(t, svc.UpdateReview(ctx, 999, "fine"))
	require.NoError(t, svc.AddCriticalPoint(ctx, 999, "lost", 1))
	require.NoError(t, svc.DeleteCriticalPoint(ctx, 999, 1))
	require.NoError(t, svc.DeleteBook(ctx, 999))
}

func TestService_AddBookValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := newTestService(t, stubFetcher{})
	_, err := svc.AddBook(ctx, model.Book{Name: "Dune", Author: "a", Category: "c", TotalPages: 0})
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestService_CriticalPointIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := newTestService(t, stubFetcher{})
	id := addBook(t, svc, "Dune", 412)

	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, svc.AddCriticalPoint(ctx, id, "note", i+1))
	}

	got, err := svc.GetBook(ctx, id)
	require.NoError(t, err)
	require.Len(t, got.CriticalPoints, n)
	for i, p := range got.CriticalPoints {
		require.Equal(t, i+1, p.ID)
	}

	// ids stay unique after a deletion in the middle
	require.NoError(t, svc.DeleteCriticalPoint(ctx, id, 3))
	require.NoError(t, svc.AddCriticalPoint(ctx, id, "another", 7))

	got, err = svc.GetBook(ctx, id)
	require.NoError(t, err)
	require.Len(t, got.CriticalPoints, n)
	require.Equal(t, 6, got.CriticalPoints[n-1].ID)
}

func TestService_CriticalPointPageValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := newTestService(t, stubFetcher{})
	id := addBook(t, svc, "Dune", 100)

	require.ErrorIs(t, svc.AddCriticalPoint(ctx, id, "too far", 101), errs.ErrValidation)
	require.ErrorIs(t, svc.AddCriticalPoint(ctx, id, "zero", 0), errs.ErrValidation)
}

func TestService_UpdateAndDeleteCriticalPoint(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := newTestService(t, stubFetcher{})
	id := addBook(t, svc, "Dune", 412)

	require.NoError(t, svc.AddCriticalPoint(ctx, id, "first", 10))
	require.NoError(t, svc.UpdateCriticalPoint(ctx, id, model.CriticalPoint{ID: 1, Text: "first, revised", Page: 12}))

	got, err := svc.GetBook(ctx, id)
	require.NoError(t, err)
	require.Equal(t, model.CriticalPoints{{ID: 1, Text: "first, revised", Page: 12}}, got.CriticalPoints)

	// updating a removed annotation is a no-op
	require.NoError(t, svc.UpdateCriticalPoint(ctx, id, model.CriticalPoint{ID: 9, Text: "ghost", Page: 5}))

	require.NoError(t, svc.DeleteCriticalPoint(ctx, id, 1))
	got, err = svc.GetBook(ctx, id)
	require.NoError(t, err)
	require.Empty(t, got.CriticalPoints)
}

func TestService_UpdateRatingAndReview(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := newTestService(t, stubFetcher{})
	id := addBook(t, svc, "Dune", 412)

	require.NoError(t, svc.UpdateRating(ctx, id, 9))
	require.NoError(t, svc.UpdateReview(ctx, id, "a classic"))
	require.ErrorIs(t, svc.UpdateRating(ctx, id, 11), errs.ErrValidation)

	got, err := svc.GetBook(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.Rating)
	require.Equal(t, 9, *got.Rating)
	require.NotNil(t, got.Review)
	require.Equal(t, "a classic", *got.Review)
}

func TestService_ImportRecommendation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc, _ := newTestService(t, stubFetcher{
		recs: []model.Recommendation{{
			ID:         3,
			Name:       "Gone Girl",
			Author:     "Gillian Flynn",
			Category:   "Mystery",
			Image:      "https://example.com/gone-girl.jpg",
			Rate:       "8.9",
			TotalPages: 432,
		}},
	})
	svc.Start(ctx)
	require.Eventually(t, func() bool {
		return svc.Recommendations().Status == model.StatusReady
	}, time.Second, 10*time.Millisecond)

	id, err := svc.ImportRecommendation(ctx, 3)
	require.NoError(t, err)

	got, err := svc.GetBook(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Gone Girl", got.Name)
	require.Equal(t, 432, got.TotalPages)
	require.Equal(t, 0, got.ReadPages)
	require.Nil(t, got.Rating)
	require.Nil(t, got.Review)

	_, err = svc.ImportRecommendation(ctx, 404)
	require.ErrorIs(t, err, errs.ErrNotFound)
}
