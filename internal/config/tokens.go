package config

import "os"

// CriticalLogger минимальный интерфейс логгера для проверки секретов
type CriticalLogger interface {
	Debug(format string, v ...interface{})
	Critical(format string, v ...interface{})
}

// MustCheckTokens проверяет наличие всех обязательных переменных окружения.
// Если отсутствует хотя бы одна — логирует каждую отдельной critical-записью
// и немедленно завершает процесс. Функция ничего не возвращает вызывающему:
// единственный механизм сигнализации об ошибке — остановка процесса,
// до каких-либо сетевых вызовов.
func MustCheckTokens(cfg *Config, log CriticalLogger) {
	missing := cfg.MissingTokens()
	if len(missing) == 0 {
		log.Debug("Проверка обязательных переменных окружения закончилась успешно")
		return
	}

	for _, name := range missing {
		log.Critical("Отсутствует обязательная переменная окружения %s", name)
	}
	os.Exit(1)
}
