package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/yichuanzhang/booktracker/internal/errs"
	"github.com/yichuanzhang/booktracker/internal/model"
	md "github.com/yichuanzhang/booktracker/pkg/middleware"
	"github.com/yichuanzhang/booktracker/pkg/validate"
)

type Handler struct {
	bookSvc BookService
	log     *zap.Logger
}

func New(bookSvc BookService, log *zap.Logger) *Handler {
	return &Handler{
		bookSvc: bookSvc,
		log:     log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/books", h.ListBooks)
	api.GET("/books/search", h.SearchBooks)
	api.GET("/books/:id", h.GetBook)
	api.POST("/books", h.AddBook)
	api.DELETE("/books/:id", h.DeleteBook)

	api.PATCH("/books/:id/pages", h.UpdateReadPages)
	api.PATCH("/books/:id/rating", h.UpdateRating)
	api.PATCH("/books/:id/review", h.UpdateReview)

	api.POST("/books/:id/points", h.AddCriticalPoint)
	api.PUT("/books/:id/points/:pointId", h.UpdateCriticalPoint)
	api.DELETE("/books/:id/points/:pointId", h.DeleteCriticalPoint)

	api.GET("/state", h.GetState)

	api.GET("/recommendations", h.GetRecommendations)
	api.POST("/recommendations/refresh", h.RefreshRecommendations)
	api.GET("/recommendations/:id", h.GetRecommendation)
	api.POST("/recommendations/:id/import", h.ImportRecommendation)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, errors.Errorf("%s is invalid", name)
	}
	return id, nil
}

func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.bookSvc.ListBooks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.ListBooks{
		TotalElements: len(books),
		Items:         books,
	})
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.bookSvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) SearchBooks(c echo.Context) error {
	books, err := h.bookSvc.SearchBooks(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.ListBooks{
		TotalElements: len(books),
		Items:         books,
	})
}

func (h *Handler) AddBook(c echo.Context) error {
	type Req struct {
		Image      string  `json:"image"`
		Name       string  `json:"name" validate:"required"`
		Author     string  `json:"author" validate:"required"`
		Category   string  `json:"category" validate:"required"`
		ReadPages  int     `json:"readPages" validate:"gte=0"`
		TotalPages int     `json:"totalPages" validate:"required,gt=0"`
		Rating     *int    `json:"rating,omitempty" validate:"omitempty,gte=0,lte=10"`
		Review     *string `json:"review,omitempty"`
	}
	var req Req
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.bookSvc.AddBook(c.Request().Context(), model.Book{
		Image:      req.Image,
		Name:       req.Name,
		Author:     req.Author,
		Category:   req.Category,
		ReadPages:  req.ReadPages,
		TotalPages: req.TotalPages,
		Rating:     req.Rating,
		Review:     req.Review,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.bookSvc.DeleteBook(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) UpdateReadPages(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	type Req struct {
		ReadPages int `json:"readPages" validate:"gte=0"`
	}
	var req Req
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := h.bookSvc.UpdateReadPages(c.Request().Context(), id, req.ReadPages); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) UpdateRating(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	type Req struct {
		Rating int `json:"rating" validate:"gte=0,lte=10"`
	}
	var req Req
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := h.bookSvc.UpdateRating(c.Request().Context(), id, req.Rating); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) UpdateReview(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	type Req struct {
		Review string `json:"review"`
	}
	var req Req
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.bookSvc.UpdateReview(c.Request().Context(), id, req.Review); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) AddCriticalPoint(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	type Req struct {
		Text string `json:"text" validate:"required"`
		Page int    `json:"page" validate:"required,gte=1"`
	}
	var req Req
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := h.bookSvc.AddCriticalPoint(c.Request().Context(), id, req.Text, req.Page); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *Handler) UpdateCriticalPoint(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	pointID, err := pathID(c, "pointId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	type Req struct {
		Text string `json:"text" validate:"required"`
		Page int    `json:"page" validate:"required,gte=1"`
	}
	var req Req
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	point := model.CriticalPoint{ID: pointID, Text: req.Text, Page: req.Page}
	if err := h.bookSvc.UpdateCriticalPoint(c.Request().Context(), id, point); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) DeleteCriticalPoint(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	pointID, err := pathID(c, "pointId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.bookSvc.DeleteCriticalPoint(c.Request().Context(), id, pointID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetState exposes both observed snapshots in one response, the shape
// a screen renders from.
func (h *Handler) GetState(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"database": h.bookSvc.Books(),
		"network":  h.bookSvc.Recommendations(),
	})
}

func (h *Handler) RefreshRecommendations(c echo.Context) error {
	h.bookSvc.Refresh(c.Request().Context())
	return c.JSON(http.StatusOK, h.bookSvc.Recommendations())
}

func (h *Handler) GetRecommendations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.bookSvc.Recommendations())
}

func (h *Handler) GetRecommendation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rec, ok := h.bookSvc.RecommendationByID(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) ImportRecommendation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bookID, err := h.bookSvc.ImportRecommendation(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": bookID})
}
