package utils

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/inhalebay/internal/repository"
	"github.com/example/inhalebay/internal/tableview"
)

// Pagination holds pagination parameters.
type Pagination struct {
	Page  int
	Limit int
}

// ParsePagination reads page and limit query params with sane defaults.
// Limit is capped at repository.MaxPageSize and page at repository.MaxPage.
func ParsePagination(c *fiber.Ctx, defaultLimit int) Pagination {
	if defaultLimit <= 0 {
		defaultLimit = repository.DefaultPageSize
	}
	page := parseInt(c.Query("page", "1"), 1)
	limit := parseInt(c.Query("limit", strconv.Itoa(defaultLimit)), defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	page, limit, _ = repository.Pagination(page, limit)

	return Pagination{
		Page:  page,
		Limit: limit,
	}
}

// ListParams are the query parameters of a table endpoint.
type ListParams struct {
	Pagination
	Sort    []tableview.Sort
	Filters map[string]string
	Hide    []string
	Select  []string
}

// ParseListParams reads page, limit, sort=col:desc,col2, repeated
// filter=col:value, hide=a,b and select=k1,k2.
func ParseListParams(c *fiber.Ctx, defaultLimit int) ListParams {
	params := ListParams{
		Pagination: ParsePagination(c, defaultLimit),
		Filters:    map[string]string{},
		Hide:       splitList(c.Query("hide")),
		Select:     splitList(c.Query("select")),
	}

	for _, item := range splitList(c.Query("sort")) {
		key, dir, _ := strings.Cut(item, ":")
		params.Sort = append(params.Sort, tableview.Sort{
			Key:  key,
			Desc: strings.EqualFold(dir, "desc"),
		})
	}

	for _, raw := range c.Context().QueryArgs().PeekMulti("filter") {
		key, value, ok := strings.Cut(string(raw), ":")
		if !ok || key == "" {
			continue
		}
		params.Filters[key] = value
	}

	return params
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseInt(value string, fallback int) int {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed
	}
	return fallback
}
