// Package apperr holds the error kinds shared by the tabel readers, the
// reconciler and the roster. Low-level parse problems are usually absorbed
// by the caller (skip + warn); structure and lookup errors always reach the
// HTTP layer, which maps them with HTTPStatus.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrSheetExists is returned when a month sheet is created twice.
var ErrSheetExists = errors.New("аркуш вже існує")

// ParseError - текст, який не вдалося розібрати (дата, назва аркуша).
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("неможливо розпарсити %q: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("неможливо розпарсити %q", e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// TypeError - значення комірки непідтримуваного типу.
type TypeError struct {
	Value any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("невідомий тип даних для дати: %T", e.Value)
}

// StructureError - відсутній обов'язковий структурний маркер (рядок заголовків тощо).
type StructureError struct {
	What  string
	Where string
}

func (e *StructureError) Error() string {
	if e.Where == "" {
		return "не знайдено " + e.What
	}
	return fmt.Sprintf("не знайдено %s (%s)", e.What, e.Where)
}

// LookupError - місяць, аркуш, файл або роль відсутні.
type LookupError struct {
	Kind string
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s '%s' не знайдено", e.Kind, e.Name)
}

func NewParse(text string, err error) error {
	return &ParseError{Text: text, Err: err}
}

func NewStructure(what, where string) error {
	return &StructureError{What: what, Where: where}
}

func NewLookup(kind, name string) error {
	return &LookupError{Kind: kind, Name: name}
}

// HTTPStatus maps an error chain onto a response status.
func HTTPStatus(err error) int {
	var (
		parseErr     *ParseError
		typeErr      *TypeError
		structureErr *StructureError
		lookupErr    *LookupError
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &parseErr), errors.As(err, &typeErr):
		return http.StatusBadRequest
	case errors.As(err, &lookupErr):
		return http.StatusNotFound
	case errors.As(err, &structureErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrSheetExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
