package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"

	"github.com/m04kA/Practicum-HomeworkBot/internal/domain"
	"github.com/m04kA/Practicum-HomeworkBot/pkg/metrics"
)

// cycleTimeout предельная длительность одного цикла опроса
const cycleTimeout = time.Minute

// failureMessageFormat текст сообщения о сбое в работе бота
const failureMessageFormat = "Сбой в работе программы: %v"

// Poller периодически опрашивает API статусов домашних работ и отправляет
// уведомления об изменениях в один Telegram-чат.
//
// Состояние цикла — курсор последней проверки и кеш последней ошибки —
// живёт только в памяти и не разделяется с другими задачами: опрос строго
// последовательный, gocron работает в singleton-режиме.
type Poller struct {
	client    PracticumClient
	statuses  StatusService
	telegram  TelegramService
	logger    Logger
	metrics   *metrics.Metrics // может быть nil, если метрики выключены
	chatID    int64
	interval  time.Duration
	scheduler *gocron.Scheduler
	ctx       context.Context
	cancel    context.CancelFunc

	cursor    int64  // временная метка "изменения с этого момента"
	lastError string // текст последней отправленной ошибки (дедупликация)
}

// NewPoller создает новый экземпляр опросчика.
// Курсор инициализируется текущим временем: интересны только изменения,
// произошедшие после запуска бота.
func NewPoller(
	client PracticumClient,
	statuses StatusService,
	telegram TelegramService,
	logger Logger,
	m *metrics.Metrics,
	chatID int64,
	interval time.Duration,
) *Poller {
	ctx, cancel := context.WithCancel(context.Background())

	return &Poller{
		client:    client,
		statuses:  statuses,
		telegram:  telegram,
		logger:    logger,
		metrics:   m,
		chatID:    chatID,
		interval:  interval,
		scheduler: gocron.NewScheduler(time.UTC),
		ctx:       ctx,
		cancel:    cancel,
		cursor:    time.Now().Unix(),
	}
}

// Start запускает периодический опрос. Первый цикл выполняется сразу,
// далее — строго раз в интервал независимо от исхода предыдущего цикла.
func (p *Poller) Start() error {
	p.logger.Info("Starting homework status poller (interval: %s, chat: %d)", p.interval, p.chatID)

	_, err := p.scheduler.Every(p.interval).SingletonMode().StartImmediately().Do(p.runCycle)
	if err != nil {
		return fmt.Errorf("failed to schedule poll job: %w", err)
	}

	p.scheduler.StartAsync()
	return nil
}

// Stop останавливает опрос
func (p *Poller) Stop() {
	p.logger.Info("Stopping homework status poller")
	p.cancel()
	p.scheduler.Stop()
	p.logger.Info("Homework status poller stopped")
}

// runCycle выполняет один цикл опроса: запрос → валидация → разбор статуса →
// отправка уведомления → сдвиг курсора. Любая ошибка шага превращается
// в одно дедуплицированное сообщение о сбое, курсор при этом не сдвигается.
func (p *Poller) runCycle() {
	ctx, cancel := context.WithTimeout(p.ctx, cycleTimeout)
	defer cancel()

	// Идентификатор цикла для сквозного поиска по логам
	cycleID := uuid.New().String()

	if p.metrics != nil {
		p.metrics.PollCycles.Inc()
	}

	start := time.Now()
	answer, err := p.client.HomeworkStatuses(ctx, p.cursor)
	if p.metrics != nil {
		p.metrics.APIRequestDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		p.reportFailure(cycleID, err)
		return
	}
	p.logger.Debug("[%s] Ответ от сервера получен (from_date=%d)", cycleID, p.cursor)

	homeworks, err := p.statuses.CheckResponse(answer.Body)
	if err != nil {
		p.reportFailure(cycleID, err)
		return
	}

	// Обрабатывается только первая запись батча; остальные придут в следующих
	// циклах, пока курсор не сдвинется за них. Пустой батч неотличим от записи
	// без обязательных ключей и проходит тот же путь разбора с ошибкой.
	var first domain.Homework
	if len(homeworks) > 0 {
		first = homeworks[0]
	}

	message, err := p.statuses.ParseStatus(first)
	if err != nil {
		p.reportFailure(cycleID, err)
		return
	}

	p.send(cycleID, message)
	p.cursor = answer.FormDate
	p.logger.Debug("[%s] Курсор сдвинут на %d", cycleID, p.cursor)
}

// reportFailure логирует ошибку цикла и отправляет в чат сообщение о сбое.
// Повтор с тем же текстом не отправляется; новый текст сбрасывает подавление.
func (p *Poller) reportFailure(cycleID string, err error) {
	if p.metrics != nil {
		p.metrics.PollFailures.Inc()
	}
	p.logger.Error("[%s] Сбой в работе программы: %v", cycleID, err)

	message := fmt.Sprintf(failureMessageFormat, err)
	if message == p.lastError {
		p.logger.Debug("[%s] Повтор ошибки, уведомление подавлено", cycleID)
		return
	}

	p.send(cycleID, message)
	p.lastError = message
}

// send отправляет сообщение в чат. Ошибка отправки логируется и глотается:
// сбой уведомления никогда не прерывает цикл опроса.
func (p *Poller) send(cycleID, text string) {
	if err := p.telegram.SendMessage(p.chatID, text); err != nil {
		if p.metrics != nil {
			p.metrics.SendFailures.Inc()
		}
		p.logger.Error("[%s] Сбой при отправке сообщения: %v", cycleID, err)
		return
	}

	if p.metrics != nil {
		p.metrics.MessagesSent.Inc()
	}
	p.logger.Debug("[%s] Сообщение отправлено", cycleID)
}
