package service

import (
	"sort"
	"strings"

	"github.com/yichuanzhang/booktracker/internal/model"
)

const (
	recentAddedTag   = "recent added"
	recentAddedLimit = 5
)

// FilterBooks returns the subset of books matching a free-text query.
// The rule cascade, first matching branch wins:
//  1. the reserved tag "recent added" returns up to 5 most recently
//     inserted books (descending id);
//  2. a case-insensitive substring match over name, author, category
//     and critical-point texts;
//  3. status-tag fallback: "unfinish" (progress 1..99) is checked
//     before "unread" (0) and "finish" (100);
//  4. otherwise an empty result. An empty query means no results, not
//     the whole collection.
func FilterBooks(books []model.Book, query string) []model.Book {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []model.Book{}
	}

	if q == recentAddedTag {
		recent := make([]model.Book, len(books))
		copy(recent, books)
		sort.Slice(recent, func(i, j int) bool { return recent[i].ID > recent[j].ID })
		if len(recent) > recentAddedLimit {
			recent = recent[:recentAddedLimit]
		}
		return recent
	}

	matched := make([]model.Book, 0)
	for _, book := range books {
		if matchesQuery(book, q) {
			matched = append(matched, book)
		}
	}
	if len(matched) > 0 {
		return matched
	}

	switch {
	case strings.Contains(q, "unfinish"):
		return filterByProgress(books, func(p int) bool { return p >= 1 && p <= 99 })
	case strings.Contains(q, "unread"):
		return filterByProgress(books, func(p int) bool { return p == 0 })
	case strings.Contains(q, "finish"):
		return filterByProgress(books, func(p int) bool { return p == 100 })
	}
	return []model.Book{}
}

func matchesQuery(book model.Book, q string) bool {
	if strings.Contains(strings.ToLower(book.Name), q) ||
		strings.Contains(strings.ToLower(book.Author), q) ||
		strings.Contains(strings.ToLower(book.Category), q) {
		return true
	}
	for _, p := range book.CriticalPoints {
		if strings.Contains(strings.ToLower(p.Text), q) {
			return true
		}
	}
	return false
}

func filterByProgress(books []model.Book, match func(int) bool) []model.Book {
	out := make([]model.Book, 0)
	for _, book := range books {
		if match(book.Progress) {
			out = append(out, book)
		}
	}
	return out
}
