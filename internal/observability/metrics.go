package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups all Prometheus instruments used by the bot.
type Metrics struct {
	MessagesProcessed  prometheus.Counter
	RateLimited        prometheus.Counter
	MemoriesExtracted  prometheus.Counter
	LLMErrors          *prometheus.CounterVec
	SweptConversations prometheus.Counter
	SweptMemories      prometheus.Counter
	ResponseLatency    prometheus.Histogram
}

func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		MessagesProcessed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_processed_total",
			Help:      "Chat messages fully processed (admitted, answered, recorded).",
		}),
		RateLimited: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Messages denied by the per-user rate limiter.",
		}),
		MemoriesExtracted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memories_extracted_total",
			Help:      "Memory candidates accepted into user profiles.",
		}),
		LLMErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_errors_total",
			Help:      "LLM call failures by operation.",
		}, []string{"op"}),
		SweptConversations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swept_conversations_total",
			Help:      "Conversation logs removed by the inactivity sweep.",
		}),
		SweptMemories: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swept_memories_total",
			Help:      "Memories removed by the periodic age sweep.",
		}),
		ResponseLatency: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "response_latency_seconds",
			Help:      "Latency from admitted message to generated response.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16},
		}),
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
