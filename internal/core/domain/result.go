package domain

// Result is the outcome of a call the server answered: either a value or the
// server's failure message. Transport failures travel as Go errors instead.
type Result[T any] struct {
	value   T
	message string
	ok      bool
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

func Err[T any](message string) Result[T] {
	return Result[T]{message: message}
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) Get() (T, bool) {
	return r.value, r.ok
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Message() string {
	return r.message
}

type Empty struct{}

// Page is the normalised shape of every list response.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func NewPage[T any](items []T, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	if total < len(items) {
		total = len(items)
	}
	return Page[T]{Items: items, Total: total}
}
