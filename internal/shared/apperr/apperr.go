package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	NotFound Kind = "not_found"
	Internal Kind = "internal"
)

// fallbackMsg is shown whenever an error carries nothing safe to display.
const fallbackMsg = "Beklenmeyen bir hata oluştu."

func (e *AppError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }

// NotFoundErr reports a missing page or record; msg is shown to the user.
func NotFoundErr(msg string) *AppError {
	return &AppError{Kind: NotFound, PublicMsg: msg}
}

// Wrap marks err as internal. Its text stays in the logs and the user sees
// the fallback message.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Kind: Internal, PublicMsg: fallbackMsg, Err: err}
}

func As(err error) (*AppError, bool) {
	var ae *AppError
	ok := errors.As(err, &ae)
	return ae, ok
}

func HTTPStatus(err error) int {
	if ae, ok := As(err); ok && ae.Kind == NotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func PublicMessage(err error) string {
	ae, ok := As(err)
	if !ok || ae.PublicMsg == "" {
		return fallbackMsg
	}
	return ae.PublicMsg
}
