package practicum

// FormDateKey ключ курсора в теле ответа API.
// Именно form_date: API отдаёт курсор под этим именем, не current_date.
const FormDateKey = "form_date"

// Answer ответ API статусов домашних работ.
// Body хранится декодированным JSON-значением без приведения к структуре:
// состав полей проверяет сервис валидации, а не клиент.
type Answer struct {
	Body     any   // декодированное тело ответа
	FormDate int64 // курсор "изменения с этого момента" из form_date
}
