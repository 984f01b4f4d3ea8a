package sheetstore

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("sheetstore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе хранилища
	ErrInvalidResponse = errors.New("sheetstore client: invalid response")

	// ErrRemoteFailure возвращается, когда хранилище явно сообщило об ошибке
	ErrRemoteFailure = errors.New("sheetstore client: remote reported failure")
)
