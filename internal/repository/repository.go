package repository

import (
	"context"
	"database/sql"
	"sync"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/yichuanzhang/booktracker/internal/errs"
	"github.com/yichuanzhang/booktracker/internal/model"
	"github.com/yichuanzhang/booktracker/pkg/watch"
)

type Repository interface {
	Insert(ctx context.Context, book model.Book) (int, error)
	Update(ctx context.Context, book model.Book) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (model.Book, error)
	GetAll(ctx context.Context) ([]model.Book, error)
	ObserveAll(ctx context.Context) <-chan []model.Book
	ObserveLatest(ctx context.Context) <-chan model.Book
	Seed(ctx context.Context, books []model.Book) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger

	// mu serializes writers so concurrent read-modify-write on the same
	// id resolves last-write-wins, and keeps snapshot publication in
	// write order.
	mu     sync.Mutex
	all    *watch.Source[[]model.Book]
	latest *watch.Source[model.Book]
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:     db,
		log:    log.Named("repo"),
		all:    watch.NewSource[[]model.Book](),
		latest: watch.NewSource[model.Book](),
	}, nil
}

const booksTableName = `books`

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var bookColumns = []string{
	"id", "image", "name", "author", "category",
	"read_pages", "total_pages", "progress", "rating", "critical_points", "review",
}

func (r *repository) Insert(ctx context.Context, book model.Book) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	query, args, err := qb.Insert(booksTableName).
		Columns(bookColumns[1:]...).
		Values(book.Image, book.Name, book.Author, book.Category,
			book.ReadPages, book.TotalPages, book.Progress, book.Rating, book.CriticalPoints, book.Review).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("Insert", zap.String("name", book.Name), zap.Error(err))
		return 0, errors.Wrap(err, "insert book")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "insert book id")
	}

	book.ID = int(id)
	r.publishLocked(ctx, &book)
	return book.ID, nil
}

func (r *repository) Update(ctx context.Context, book model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	query, args, err := qb.Update(booksTableName).
		Set("image", book.Image).
		Set("name", book.Name).
		Set("author", book.Author).
		Set("category", book.Category).
		Set("read_pages", book.ReadPages).
		Set("total_pages", book.TotalPages).
		Set("progress", book.Progress).
		Set("rating", book.Rating).
		Set("critical_points", book.CriticalPoints).
		Set("review", book.Review).
		Where(sq.Eq{"id": book.ID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("Update", zap.Int("id", book.ID), zap.Error(err))
		return errors.Wrap(err, "update book")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "update book rows")
	}
	if n == 0 {
		// missing id is a normal outcome, not an error
		r.log.Debug("Update: no such book", zap.Int("id", book.ID))
		return nil
	}

	r.publishLocked(ctx, &book)
	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	query, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("Delete", zap.Int("id", id), zap.Error(err))
		return errors.Wrap(err, "delete book")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete book rows")
	}
	if n == 0 {
		return nil
	}

	r.publishLocked(ctx, nil)
	return nil
}

func (r *repository) GetByID(ctx context.Context, id int) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, errors.Wrap(err, "get book")
	}
	return book, nil
}

func (r *repository) GetAll(ctx context.Context) ([]model.Book, error) {
	return r.getAll(ctx)
}

func (r *repository) getAll(ctx context.Context) ([]model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, errors.Wrap(err, "select books")
	}
	return books, nil
}

// ObserveAll emits the current snapshot immediately and a fresh one
// after every committed write. Intermediate snapshots may be coalesced;
// the delivered state is always at-least-as-new as the triggering write.
// If the initial read fails the returned channel is already closed, so
// subscribers see a terminated stream instead of hanging.
func (r *repository) ObserveAll(ctx context.Context) <-chan []model.Book {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.all.Primed() {
		books, err := r.getAll(ctx)
		if err != nil {
			r.log.Error("ObserveAll initial snapshot", zap.Error(err))
			ch := make(chan []model.Book)
			close(ch)
			return ch
		}
		r.all.Publish(books)
	}
	return r.all.Subscribe(ctx)
}

// ObserveLatest emits the most recently inserted-or-updated record.
func (r *repository) ObserveLatest(ctx context.Context) <-chan model.Book {
	return r.latest.Subscribe(ctx)
}

// Seed loads the preset catalogue on first-ever startup. It is a no-op
// whenever the store already holds any book.
func (r *repository) Seed(ctx context.Context, books []model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT count(*) FROM `+booksTableName); err != nil {
		return errors.Wrap(err, "seed count")
	}
	if count > 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "seed begin")
	}
	for _, book := range books {
		query, args, err := qb.Insert(booksTableName).
			Columns(bookColumns[1:]...).
			Values(book.Image, book.Name, book.Author, book.Category,
				book.ReadPages, book.TotalPages, book.Progress, book.Rating, book.CriticalPoints, book.Review).
			ToSql()
		if err != nil {
			_ = tx.Rollback()
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "seed insert %q", book.Name)
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "seed commit")
	}
	r.log.Info("seeded preset books", zap.Int("count", len(books)))

	r.publishLocked(ctx, nil)
	return nil
}

// publishLocked re-reads the snapshot and pushes it to observers. The
// re-read is detached from the caller's context: once a write has
// committed, observers must see it even if the request that issued it
// is already gone. Callers must hold r.mu.
func (r *repository) publishLocked(ctx context.Context, last *model.Book) {
	books, err := r.getAll(context.WithoutCancel(ctx))
	if err != nil {
		r.log.Error("snapshot after write", zap.Error(err))
		return
	}
	r.all.Publish(books)
	if last != nil {
		r.latest.Publish(*last)
	}
}
