package practicum

import "errors"

var (
	// ErrRequest возвращается при сетевой ошибке запроса к API
	ErrRequest = errors.New("practicum client: request failed")

	// ErrBadStatus возвращается при ответе с HTTP-статусом, отличным от 200
	ErrBadStatus = errors.New("practicum client: unexpected status code")

	// ErrDecodeResponse возвращается, когда тело ответа не является корректным JSON
	ErrDecodeResponse = errors.New("practicum client: failed to decode response")

	// ErrNoFormDate возвращается, когда в теле ответа нет числового поля form_date
	ErrNoFormDate = errors.New(`practicum client: response has no "form_date" field`)
)
