package paginationutils

import (
	"errors"
	"fmt"
	"math"
	"net/url"
)

var ErrInvalidPage = errors.New("invalid page")

type PaginationView struct {
	// Pages shown on each side of the current page.
	// With cursorPadding = 2 on page 5 of 10: 3 4 [5] 6 7.
	cursorPadding      int
	itemsPerPage       int
	itemsCount         int
	pageQueryParamName string
	url                url.URL
}

type PaginationLink struct {
	Link        string `json:"link"`
	PageNumber  string `json:"page_number"`
	Placeholder bool   `json:"placeholder"`
}

func (p *PaginationView) TotalPages() int {
	if p.itemsPerPage <= 0 {
		return 0
	}
	return int(math.Ceil(float64(p.itemsCount) / float64(p.itemsPerPage)))
}

// PagesLinks builds the link row around the current page: the first and last
// pages stay visible, gaps collapse into a placeholder.
func (p *PaginationView) PagesLinks(page int) ([]PaginationLink, error) {
	totalPages := p.TotalPages()
	if totalPages == 0 {
		return nil, nil
	}

	if page > totalPages || page < 1 {
		return nil, errors.Join(ErrInvalidPage, fmt.Errorf("total pages: %d, page: %d", totalPages, page))
	}

	left := page - p.cursorPadding
	right := page + p.cursorPadding

	if left <= 2 {
		left = 1
	}
	if right >= totalPages-1 {
		right = totalPages
	}

	var result []PaginationLink

	if left > 1 {
		result = append(result, p.makeLinkFromUrl(1), p.makeLinkPlaceholder())
	}
	for i := left; i <= right; i++ {
		result = append(result, p.makeLinkFromUrl(i))
	}
	if right < totalPages {
		result = append(result, p.makeLinkPlaceholder(), p.makeLinkFromUrl(totalPages))
	}

	return result, nil
}

func (p *PaginationView) makeLinkFromUrl(page int) PaginationLink {
	queryValues := p.url.Query()
	queryValues.Set(p.pageQueryParamName, fmt.Sprint(page))

	p.url.RawQuery = queryValues.Encode()

	return PaginationLink{
		Link:       p.url.String(),
		PageNumber: fmt.Sprint(page),
	}
}

func (p *PaginationView) makeLinkPlaceholder() PaginationLink {
	return PaginationLink{
		Link:        "...",
		PageNumber:  "...",
		Placeholder: true,
	}
}

type NewPaginationViewParams struct {
	ItemsPerPage       int
	ItemsCount         int
	PageQueryParamName string
}

func NewPaginationView(url url.URL, params NewPaginationViewParams) *PaginationView {
	return &PaginationView{
		url:                url,
		cursorPadding:      1,
		itemsPerPage:       params.ItemsPerPage,
		itemsCount:         params.ItemsCount,
		pageQueryParamName: params.PageQueryParamName,
	}
}
