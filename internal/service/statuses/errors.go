package statuses

import "errors"

var (
	// ErrUnexpectedType возвращается, когда тело ответа не является JSON-объектом
	ErrUnexpectedType = errors.New("service.statuses: server response is not an object")

	// ErrNoHomeworksKey возвращается, когда в ответе нет ключа homeworks
	ErrNoHomeworksKey = errors.New(`service.statuses: response has no "homeworks" key`)

	// ErrHomeworksNotList возвращается, когда значение под ключом homeworks не список
	ErrHomeworksNotList = errors.New(`service.statuses: "homeworks" value is not a list`)

	// ErrNoHomeworkName возвращается, когда в записи о работе нет ключа homework_name
	ErrNoHomeworkName = errors.New(`service.statuses: homework has no "homework_name" key`)

	// ErrNoStatus возвращается, когда в записи о работе нет ключа status
	ErrNoStatus = errors.New(`service.statuses: homework has no "status" key`)

	// ErrUnknownStatus возвращается при недокументированном статусе работы
	ErrUnknownStatus = errors.New("service.statuses: undocumented homework status")
)
