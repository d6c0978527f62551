package domain

import "fmt"

// HomeworkStatus представляет статус проверки домашней работы
type HomeworkStatus string

const (
	StatusApproved  HomeworkStatus = "approved"  // Проверена, замечаний нет
	StatusReviewing HomeworkStatus = "reviewing" // Взята на проверку
	StatusRejected  HomeworkStatus = "rejected"  // Проверена, есть замечания
)

// Ключи записи о домашней работе в JSON-ответе API
const (
	KeyHomeworkName = "homework_name"
	KeyStatus       = "status"
)

// Verdicts сопоставляет каждому документированному статусу текст вердикта.
// Статус вне этого словаря считается недокументированным и является ошибкой.
var Verdicts = map[HomeworkStatus]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Homework представляет одну запись о домашней работе из ответа API.
// API не гарантирует состав полей, поэтому запись хранится как декодированный
// JSON-объект, а обязательные ключи проверяются при разборе статуса.
type Homework map[string]any

// Has проверяет наличие ключа в записи. Безопасен для nil-записи.
func (h Homework) Has(key string) bool {
	_, ok := h[key]
	return ok
}

// Status возвращает значение поля статуса (пустая строка, если поле
// отсутствует или имеет не строковый тип)
func (h Homework) Status() HomeworkStatus {
	s, _ := h[KeyStatus].(string)
	return HomeworkStatus(s)
}

// StatusChangedMessage формирует текст уведомления об изменении статуса работы
func StatusChangedMessage(name any, verdict string) string {
	return fmt.Sprintf(`Изменился статус проверки работы "%v". %s`, name, verdict)
}
