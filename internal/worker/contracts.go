package worker

import (
	"context"

	"github.com/m04kA/Practicum-HomeworkBot/internal/domain"
	"github.com/m04kA/Practicum-HomeworkBot/internal/integrations/practicum"
)

// PracticumClient интерфейс клиента API статусов домашних работ
type PracticumClient interface {
	// HomeworkStatuses запрашивает изменения статусов после временной метки fromDate
	HomeworkStatuses(ctx context.Context, fromDate int64) (*practicum.Answer, error)
}

// StatusService интерфейс валидации ответа и формирования текста уведомления
type StatusService interface {
	// CheckResponse проверяет форму ответа API и возвращает список записей о работах
	CheckResponse(response any) ([]domain.Homework, error)

	// ParseStatus формирует текст уведомления по одной записи о работе
	ParseStatus(homework domain.Homework) (string, error)
}

// TelegramService интерфейс для отправки сообщений через Telegram Bot API
type TelegramService interface {
	// SendMessage отправляет текстовое сообщение в чат
	SendMessage(chatID int64, text string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
