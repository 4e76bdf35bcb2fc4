package handler

import (
	"context"

	"github.com/yichuanzhang/booktracker/internal/model"
	"github.com/yichuanzhang/booktracker/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookService interface {
	Books() model.BookState
	Recommendations() model.RecommendationState

	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	SearchBooks(ctx context.Context, query string) ([]model.Book, error)

	AddBook(ctx context.Context, book model.Book) (int, error)
	DeleteBook(ctx context.Context, id int) error
	UpdateReadPages(ctx context.Context, id, readPages int) error
	UpdateRating(ctx context.Context, id, rating int) error
	UpdateReview(ctx context.Context, id int, review string) error
	AddCriticalPoint(ctx context.Context, id int, text string, page int) error
	UpdateCriticalPoint(ctx context.Context, id int, point model.CriticalPoint) error
	DeleteCriticalPoint(ctx context.Context, id, pointID int) error

	RecommendationByID(id int) (model.Recommendation, bool)
	ImportRecommendation(ctx context.Context, id int) (int, error)
	Refresh(ctx context.Context)
}

var _ BookService = (*service.Service)(nil)
