package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик бота.
// Регистрируется в глобальном реестре, поэтому New следует вызывать
// один раз за время жизни процесса.
type Metrics struct {
	// PollCycles количество запущенных циклов опроса
	PollCycles prometheus.Counter

	// PollFailures количество циклов, завершившихся ошибкой
	PollFailures prometheus.Counter

	// MessagesSent количество успешно отправленных сообщений в чат
	MessagesSent prometheus.Counter

	// SendFailures количество проглоченных ошибок отправки
	SendFailures prometheus.Counter

	// APIRequestDuration длительность запросов к API статусов
	APIRequestDuration prometheus.Histogram

	// HTTPRequestDuration длительность обработки входящих HTTP-запросов
	HTTPRequestDuration *prometheus.HistogramVec
}

// New создает и регистрирует метрики с меткой сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		PollCycles: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "homework_poll_cycles_total",
			Help:        "Total number of poll cycles started",
			ConstLabels: constLabels,
		}),
		PollFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "homework_poll_failures_total",
			Help:        "Total number of poll cycles that ended with an error",
			ConstLabels: constLabels,
		}),
		MessagesSent: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "homework_messages_sent_total",
			Help:        "Total number of messages delivered to the chat",
			ConstLabels: constLabels,
		}),
		SendFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "homework_send_failures_total",
			Help:        "Total number of swallowed message send failures",
			ConstLabels: constLabels,
		}),
		APIRequestDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:        "homework_api_request_duration_seconds",
			Help:        "Duration of homework statuses API requests",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duration of handled HTTP requests",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}
