package statuses

import (
	"fmt"

	"github.com/m04kA/Practicum-HomeworkBot/internal/domain"
)

// Service сервис валидации ответа API и формирования текста уведомления
type Service struct{}

// NewService создает новый экземпляр сервиса статусов
func NewService() *Service {
	return &Service{}
}

// CheckResponse проверяет ответ API на соответствие документации.
// Проверки идут по порядку, каждая со своей ошибкой: тело должно быть
// объектом, содержать ключ homeworks, и значение под ним должно быть списком.
// Пустой список — корректный ответ, возвращается пустой срез.
func (s *Service) CheckResponse(response any) ([]domain.Homework, error) {
	m, ok := response.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrUnexpectedType, response)
	}

	raw, ok := m["homeworks"]
	if !ok {
		return nil, ErrNoHomeworksKey
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrHomeworksNotList, raw)
	}

	homeworks := make([]domain.Homework, 0, len(list))
	for _, item := range list {
		// Элемент-не-объект превращается в nil-запись: отсутствие
		// обязательных ключей всплывёт при разборе статуса
		hw, _ := item.(map[string]any)
		homeworks = append(homeworks, domain.Homework(hw))
	}

	return homeworks, nil
}

// ParseStatus извлекает из записи о домашней работе её статус и возвращает
// готовый текст уведомления с вердиктом. Запись без имени, без статуса или
// с недокументированным статусом — ошибка.
func (s *Service) ParseStatus(homework domain.Homework) (string, error) {
	if !homework.Has(domain.KeyHomeworkName) {
		return "", ErrNoHomeworkName
	}

	if !homework.Has(domain.KeyStatus) {
		return "", ErrNoStatus
	}

	verdict, ok := domain.Verdicts[homework.Status()]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, homework[domain.KeyStatus])
	}

	return domain.StatusChangedMessage(homework[domain.KeyHomeworkName], verdict), nil
}
