package service

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yichuanzhang/booktracker/internal/errs"
	"github.com/yichuanzhang/booktracker/internal/model"
	"github.com/yichuanzhang/booktracker/internal/repository"
)

// Fetcher is the one-shot recommendation source.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]model.Recommendation, error)
}

// Service mediates between the repository/fetcher and the outer
// surface: it keeps the latest observed snapshots as state and exposes
// the mutation operations. Mutations write through to the store; the
// book state is refreshed only by the observed stream, never by the
// mutation paths themselves.
type Service struct {
	log     *zap.Logger
	repo    repository.Repository
	fetcher Fetcher

	mu        sync.RWMutex
	bookState model.BookState
	recState  model.RecommendationState
}

func NewService(repo repository.Repository, fetcher Fetcher, log *zap.Logger) *Service {
	return &Service{
		log:     log.Named("service"),
		repo:    repo,
		fetcher: fetcher,
		bookState: model.BookState{
			Status: model.StatusLoading,
			Books:  []model.Book{},
		},
		recState: model.RecommendationState{
			Status:          model.StatusLoading,
			Recommendations: []model.Recommendation{},
		},
	}
}

// Start launches the book-stream subscription and the startup
// recommendation fetch. Both stop when ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		s.watchBooks(ctx)
		return nil
	})
	gg.Go(func() error {
		s.Refresh(ctx)
		return nil
	})
	go func() {
		_ = gg.Wait() //nolint:errcheck
	}()
}

func (s *Service) watchBooks(ctx context.Context) {
	books, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Error("initial book snapshot", zap.Error(err))
		s.setBookState(model.BookState{
			Status: model.StatusFailed,
			Books:  []model.Book{},
			Err:    err.Error(),
		})
	} else {
		s.setBookState(model.BookState{Status: model.StatusReady, Books: books})
	}

	for snapshot := range s.repo.ObserveAll(ctx) {
		s.setBookState(model.BookState{Status: model.StatusReady, Books: snapshot})
	}
}

// Refresh performs the one-shot recommendation fetch. On failure the
// state carries an empty list plus the reason; it never panics through.
func (s *Service) Refresh(ctx context.Context) {
	recs, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		s.setRecState(model.RecommendationState{
			Status:          model.StatusFailed,
			Recommendations: []model.Recommendation{},
			Err:             err.Error(),
		})
		return
	}
	if recs == nil {
		recs = []model.Recommendation{}
	}
	s.setRecState(model.RecommendationState{Status: model.StatusReady, Recommendations: recs})
}

func (s *Service) setBookState(st model.BookState) {
	s.mu.Lock()
	s.bookState = st
	s.mu.Unlock()
}

func (s *Service) setRecState(st model.RecommendationState) {
	s.mu.Lock()
	s.recState = st
	s.mu.Unlock()
}

// Books returns the last observed database state.
func (s *Service) Books() model.BookState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookState
}

// Recommendations returns the last observed network state.
func (s *Service) Recommendations() model.RecommendationState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recState
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetBook(ctx context.Context, id int) (model.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) SearchBooks(ctx context.Context, query string) ([]model.Book, error) {
	books, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterBooks(books, query), nil
}

func (s *Service) AddBook(ctx context.Context, book model.Book) (int, error) {
	if book.TotalPages <= 0 {
		return 0, errors.Wrap(errs.ErrValidation, "totalPages must be positive")
	}
	book.ID = 0
	book.ReadPages = clamp(book.ReadPages, 0, book.TotalPages)
	book.Progress = model.DeriveProgress(book.ReadPages, book.TotalPages)
	return s.repo.Insert(ctx, book)
}

func (s *Service) DeleteBook(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// UpdateReadPages clamps the page count into [0, totalPages] and
// derives progress. A missing id is a silent no-op: the book may have
// been deleted concurrently.
func (s *Service) UpdateReadPages(ctx context.Context, id, readPages int) error {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ignoreNotFound(err)
	}
	book.ReadPages = clamp(readPages, 0, book.TotalPages)
	book.Progress = model.DeriveProgress(book.ReadPages, book.TotalPages)
	return s.repo.Update(ctx, book)
}

func (s *Service) UpdateRating(ctx context.Context, id, rating int) error {
	if rating < 0 || rating > 10 {
		return errors.Wrap(errs.ErrValidation, "rating must be within 0..10")
	}
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ignoreNotFound(err)
	}
	book.Rating = &rating
	return s.repo.Update(ctx, book)
}

func (s *Service) UpdateReview(ctx context.Context, id int, review string) error {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ignoreNotFound(err)
	}
	book.Review = &review
	return s.repo.Update(ctx, book)
}

// AddCriticalPoint appends an annotation with the next per-book id.
func (s *Service) AddCriticalPoint(ctx context.Context, id int, text string, page int) error {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ignoreNotFound(err)
	}
	if page < 1 || page > book.TotalPages {
		return errors.Wrapf(errs.ErrValidation, "page must be within 1..%d", book.TotalPages)
	}
	book.CriticalPoints = append(book.CriticalPoints, model.CriticalPoint{
		ID:   model.NextPointID(book.CriticalPoints),
		Text: text,
		Page: page,
	})
	return s.repo.Update(ctx, book)
}

func (s *Service) UpdateCriticalPoint(ctx context.Context, id int, point model.CriticalPoint) error {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ignoreNotFound(err)
	}
	if point.Page < 1 || point.Page > book.TotalPages {
		return errors.Wrapf(errs.ErrValidation, "page must be within 1..%d", book.TotalPages)
	}
	for i, p := range book.CriticalPoints {
		if p.ID == point.ID {
			book.CriticalPoints[i] = point
			return s.repo.Update(ctx, book)
		}
	}
	// annotation already removed
	return nil
}

func (s *Service) DeleteCriticalPoint(ctx context.Context, id, pointID int) error {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ignoreNotFound(err)
	}
	points := book.CriticalPoints[:0]
	for _, p := range book.CriticalPoints {
		if p.ID != pointID {
			points = append(points, p)
		}
	}
	book.CriticalPoints = points
	return s.repo.Update(ctx, book)
}

// RecommendationByID looks the id up in the in-memory fetched list.
func (s *Service) RecommendationByID(id int) (model.Recommendation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.recState.Recommendations {
		if int(rec.ID) == id {
			return rec, true
		}
	}
	return model.Recommendation{}, false
}

// ImportRecommendation creates an independent library record from a
// fetched recommendation, with pages, rating and review reset.
func (s *Service) ImportRecommendation(ctx context.Context, id int) (int, error) {
	rec, ok := s.RecommendationByID(id)
	if !ok {
		return 0, errs.ErrNotFound
	}
	totalPages := int(rec.TotalPages)
	if totalPages <= 0 {
		totalPages = 1
	}
	return s.AddBook(ctx, model.Book{
		Image:      rec.Image,
		Name:       rec.Name,
		Author:     rec.Author,
		Category:   rec.Category,
		TotalPages: totalPages,
	})
}

func ignoreNotFound(err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return nil
	}
	return err
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
