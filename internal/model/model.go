package model

import (
	"database/sql/driver"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CriticalPoint is a user-authored annotation tied to a page of a book.
type CriticalPoint struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Page int    `json:"page"`
}

// CriticalPoints is stored as a JSON-encoded TEXT column.
type CriticalPoints []CriticalPoint

func (c CriticalPoints) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "marshal critical points")
	}
	return string(data), nil
}

func (c *CriticalPoints) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = nil
		return nil
	case []byte:
		return errors.Wrap(json.Unmarshal(v, c), "unmarshal critical points")
	case string:
		return errors.Wrap(json.Unmarshal([]byte(v), c), "unmarshal critical points")
	default:
		return errors.Errorf("unsupported critical points type %T", src)
	}
}

// NextPointID returns the id for a newly added critical point:
// max(existing ids) + 1, starting at 1 for an empty list.
func NextPointID(points CriticalPoints) int {
	next := 1
	for _, p := range points {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

// Book is the persisted library record.
type Book struct {
	ID             int            `json:"id" db:"id"`
	Image          string         `json:"image" db:"image"`
	Name           string         `json:"name" db:"name"`
	Author         string         `json:"author" db:"author"`
	Category       string         `json:"category" db:"category"`
	ReadPages      int            `json:"readPages" db:"read_pages"`
	TotalPages     int            `json:"totalPages" db:"total_pages"`
	Progress       int            `json:"progress" db:"progress"`
	Rating         *int           `json:"rating,omitempty" db:"rating"`
	CriticalPoints CriticalPoints `json:"criticalPoints" db:"critical_points"`
	Review         *string        `json:"review,omitempty" db:"review"`
}

type ListBooks struct {
	TotalElements int    `json:"totalElements"`
	Items         []Book `json:"items"`
}

// DeriveProgress computes the percentage of a book read. A non-positive
// total is treated as 1 to guard the division.
func DeriveProgress(readPages, totalPages int) int {
	if totalPages <= 0 {
		totalPages = 1
	}
	return int(math.Round(float64(readPages) / float64(totalPages) * 100))
}

// FlexInt decodes from either a JSON number or a string-encoded number.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(str)
		if err != nil {
			return errors.Wrapf(err, "parse %q as int", str)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// Recommendation is a server-supplied suggestion, held only in memory.
type Recommendation struct {
	ID         FlexInt `json:"id"`
	Name       string  `json:"name"`
	Author     string  `json:"author"`
	Category   string  `json:"category"`
	Image      string  `json:"image"`
	Rate       string  `json:"rate"`
	Reason     string  `json:"reason"`
	Baseon     string  `json:"baseon"`
	TotalPages FlexInt `json:"totalPages"`
}

type Status string

const (
	StatusLoading Status = "LOADING"
	StatusReady   Status = "READY"
	StatusFailed  Status = "FAILED"
)

// BookState is the observed snapshot of the local library.
type BookState struct {
	Status Status `json:"status"`
	Books  []Book `json:"books"`
	Err    string `json:"error,omitempty"`
}

// RecommendationState is the observed result of the one-shot network fetch.
// On failure Recommendations stays an empty list.
type RecommendationState struct {
	Status          Status           `json:"status"`
	Recommendations []Recommendation `json:"recommendations"`
	Err             string           `json:"error,omitempty"`
}
