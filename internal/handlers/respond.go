package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/example/inhalebay/internal/repository"
	"github.com/example/inhalebay/internal/tableview"
	"github.com/example/inhalebay/internal/utils"
)

// ErrorHandler renders every error as a {success:false, message} envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		log.Printf("[HTTP] %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(repository.Envelope{Success: false, Message: message})
}

// resultError turns a failed repository result into an HTTP error.
func resultError(status repository.Status, message string) error {
	if status == repository.StatusNotFound {
		return fiber.NewError(fiber.StatusNotFound, message)
	}
	return fiber.NewError(fiber.StatusInternalServerError, message)
}

// applyParams configures the client-side state of tbl from the query.
func applyParams[T any](tbl *tableview.Table[T], params utils.ListParams) {
	tbl.SetSorting(params.Sort...)
	for key, query := range params.Filters {
		tbl.SetFilter(key, query)
	}
	for _, key := range params.Hide {
		tbl.SetHidden(key, true)
	}
}

// selectRows marks the requested rows once a page is loaded.
func selectRows[T any](tbl *tableview.Table[T], keys []string) {
	for _, key := range keys {
		tbl.Select(key)
	}
}

type columnInfo struct {
	Key    string `json:"key"`
	Header string `json:"header"`
	Fixed  bool   `json:"fixed"`
}

// tablePayload is the body of a list response.
func tablePayload[T any](tbl *tableview.Table[T]) fiber.Map {
	cols := tbl.VisibleColumns()
	columns := make([]columnInfo, 0, len(cols))
	for _, col := range cols {
		columns = append(columns, columnInfo{Key: col.Key, Header: col.Header, Fixed: col.Fixed})
	}

	return fiber.Map{
		"success":  true,
		"data":     tbl.Render(),
		"columns":  columns,
		"selected": tbl.SelectedKeys(),
		"pagination": fiber.Map{
			"current_page":   tbl.Page(),
			"items_per_page": tbl.PageSize(),
			"has_next":       tbl.CanNext(),
			"has_prev":       tbl.CanPrev(),
		},
	}
}

// listResponse loads the requested page and renders it.
func listResponse[T any](c *fiber.Ctx, tbl *tableview.Table[T], params utils.ListParams) error {
	applyParams(tbl, params)
	tbl.GoTo(c.UserContext(), params.Page)
	if tbl.Failed() {
		return fiber.NewError(fiber.StatusInternalServerError, tbl.Message())
	}
	selectRows(tbl, params.Select)
	return c.JSON(tablePayload(tbl))
}

// mutationResponse reports a write together with the refetched page.
func mutationResponse[T any, D any](c *fiber.Ctx, status int, res repository.Result[D], tbl *tableview.Table[T]) error {
	if !res.Success() {
		return resultError(res.Status, res.Message)
	}
	body := fiber.Map{
		"success": true,
		"data":    res.Data,
		"rows":    tbl.Render(),
	}
	if tbl.Failed() {
		body["message"] = tbl.Message()
	}
	return c.Status(status).JSON(body)
}
