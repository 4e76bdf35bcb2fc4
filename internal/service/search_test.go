package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yichuanzhang/booktracker/internal/model"
	"github.com/yichuanzhang/booktracker/internal/service"
)

func book(id int, name, author, category string, progress int, points ...model.CriticalPoint) model.Book {
	return model.Book{
		ID:             id,
		Name:           name,
		Author:         author,
		Category:       category,
		TotalPages:     100,
		ReadPages:      progress,
		Progress:       progress,
		CriticalPoints: points,
	}
}

func names(books []model.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Name)
	}
	return out
}

func ids(books []model.Book) []int {
	out := make([]int, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}

func TestFilterBooks_SubstringMatch(t *testing.T) {
	t.Parallel()
	books := []model.Book{
		book(1, "Dune", "Frank Herbert", "Science Fiction", 50),
		book(2, "Gone Girl", "Gillian Flynn", "Mystery", 0),
	}

	require.Equal(t, []string{"Dune"}, names(service.FilterBooks(books, "dune")))
	require.Equal(t, []string{"Dune"}, names(service.FilterBooks(books, "  DUNE ")))
	require.Equal(t, []string{"Gone Girl"}, names(service.FilterBooks(books, "flynn")))
	require.Equal(t, []string{"Gone Girl"}, names(service.FilterBooks(books, "myst")))
}

func TestFilterBooks_CriticalPointMatch(t *testing.T) {
	t.Parallel()
	books := []model.Book{
		book(1, "Dune", "Frank Herbert", "Science Fiction", 50,
			model.CriticalPoint{ID: 1, Text: "Fear is the mind-killer", Page: 8}),
		book(2, "Gone Girl", "Gillian Flynn", "Mystery", 0),
	}

	require.Equal(t, []string{"Dune"}, names(service.FilterBooks(books, "mind-killer")))
}

func TestFilterBooks_RecentAdded(t *testing.T) {
	t.Parallel()
	books := make([]model.Book, 0, 7)
	for i := 1; i <= 7; i++ {
		books = append(books, book(i, "Book", "Author", "Category", 0))
	}

	require.Equal(t, []int{7, 6, 5, 4, 3}, ids(service.FilterBooks(books, "recent added")))
}

func TestFilterBooks_StatusTagFallback(t *testing.T) {
	t.Parallel()
	books := []model.Book{
		book(1, "Dune", "Frank Herbert", "Science Fiction", 55),
		book(2, "Gone Girl", "Gillian Flynn", "Mystery", 0),
		book(3, "Homeseeking", "Chanel Miller", "Historical Fiction", 0),
		book(4, "The Note", "Unknown", "Mystery", 100),
	}

	require.Equal(t, []int{2, 3}, ids(service.FilterBooks(books, "unread")))
	require.Equal(t, []int{1}, ids(service.FilterBooks(books, "unfinished books")))
	require.Equal(t, []int{4}, ids(service.FilterBooks(books, "finished")))
	// "unfinish" wins over "finish" because it is checked first
	require.Equal(t, []int{1}, ids(service.FilterBooks(books, "finished but unfinished")))
}

func TestFilterBooks_SubstringBeatsTagFallback(t *testing.T) {
	t.Parallel()
	books := []model.Book{
		book(1, "Unfinished Tales", "J.R.R. Tolkien", "Fantasy", 100),
		book(2, "Dune", "Frank Herbert", "Science Fiction", 50),
	}

	// "unfinish" matches a title by substring, so the tag branch never runs
	require.Equal(t, []int{1}, ids(service.FilterBooks(books, "unfinish")))
}

func TestFilterBooks_NoMatch(t *testing.T) {
	t.Parallel()
	books := []model.Book{
		book(1, "Dune", "Frank Herbert", "Science Fiction", 50),
	}

	require.Empty(t, service.FilterBooks(books, "zzz_no_match"))
	require.Empty(t, service.FilterBooks(books, ""))
	require.Empty(t, service.FilterBooks(nil, "dune"))
}
