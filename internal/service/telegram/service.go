package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Service сервис для отправки сообщений через Telegram Bot API
type Service struct {
	bot BotAPI
}

// NewService создает новый экземпляр Telegram сервиса
func NewService(bot BotAPI) *Service {
	return &Service{
		bot: bot,
	}
}

// SendMessage отправляет текстовое уведомление в указанный чат.
// Без форматирования: вердикты — обычный текст, разметка не нужна.
func (s *Service) SendMessage(chatID int64, text string) error {
	if chatID == 0 {
		return ErrInvalidChatID
	}

	if text == "" {
		return ErrEmptyMessage
	}

	msg := tgbotapi.NewMessage(chatID, text)

	_, err := s.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendMessage, err)
	}

	return nil
}
