// File: internal/service/errors.go
package service

import "errors"

// Kind 錯誤分類，handler 依此決定 HTTP 狀態碼
type Kind uint8

const (
	Internal Kind = iota
	Validation
	Unauthenticated
	Forbidden
	NotFound
	Conflict
	InvalidCategory
	InvalidCredentials
	AlreadyAdmin
)

var kindNames = map[Kind]string{
	Internal:           "internal",
	Validation:         "validation",
	Unauthenticated:    "unauthenticated",
	Forbidden:          "forbidden",
	NotFound:           "not found",
	Conflict:           "conflict",
	InvalidCategory:    "invalid category",
	InvalidCredentials: "invalid credentials",
	AlreadyAdmin:       "already admin",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error 讓 Kind 本身可作為 errors.Is 的比對目標
func (k Kind) Error() string { return k.String() }

// Error 服務層錯誤；Msg 可直接回給使用者，Err 為內部原因不外洩
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is 以 Kind 比對，例如 errors.Is(err, service.NotFound)
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func internalError(msg string, err error) *Error {
	return &Error{Kind: Internal, Msg: msg, Err: err}
}

// KindOf 取出錯誤分類，非 *Error 一律視為 Internal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// MessageOf 取出可回給使用者的訊息
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Internal {
		return e.Msg
	}
	return "Server error"
}
