package service

import (
	"github.com/timelogger/timelogger/internal/apperror"
	"github.com/timelogger/timelogger/internal/util"
)

const ErrPageValues = "page values must not be negative"

// PaginatedList is the envelope every list endpoint returns.
type PaginatedList[T any] struct {
	Items      []T `json:"items"`
	PageIndex  int `json:"pageIndex"`
	TotalPages int `json:"totalPages"`
}

// ValidatePageValues rejects negative page values and a zero page size, the
// latter so totalPages never divides by zero. pageIndex 0 is accepted and
// behaves like page 1.
func ValidatePageValues(pageIndex, pageSize int) error {
	if pageIndex < 0 || pageSize <= 0 {
		return apperror.New(ErrPageValues)
	}
	return nil
}

// Paginate slices one page out of the full collection. Items must already be
// in their final order; relative order inside the page is preserved.
func Paginate[T any](items []T, pageIndex, pageSize int) (*PaginatedList[T], error) {
	if err := ValidatePageValues(pageIndex, pageSize); err != nil {
		return nil, err
	}

	offset := (pageIndex - 1) * pageSize
	if offset < 0 {
		offset = 0
	}

	page := make([]T, 0, pageSize)
	if offset < len(items) {
		end := offset + pageSize
		if end > len(items) {
			end = len(items)
		}
		page = append(page, items[offset:end]...)
	}

	return &PaginatedList[T]{
		Items:      page,
		PageIndex:  pageIndex,
		TotalPages: util.CalculateTotalPage(int64(len(items)), pageSize),
	}, nil
}

// MapPage projects a page of entities into a page of responses. Projection
// runs after slicing so discarded rows are never mapped.
func MapPage[T, U any](page *PaginatedList[T], project func(T) U) *PaginatedList[U] {
	items := make([]U, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, project(item))
	}

	return &PaginatedList[U]{
		Items:      items,
		PageIndex:  page.PageIndex,
		TotalPages: page.TotalPages,
	}
}
