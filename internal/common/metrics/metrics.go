package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	Namespace = "guild_backup"
)

// Общие метрики HTTP API.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// Метрики рабочего процесса резервного копирования.
var (
	BackupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "backups_total",
			Help:      "Total number of backup runs by trigger and outcome",
		},
		[]string{"trigger", "status"},
	)

	BackupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "backup_duration_seconds",
			Help:      "Backup run duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
		},
	)

	InvitesCollected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "invites_collected_total",
			Help:      "Total number of invite codes collected by strategy",
		},
		[]string{"strategy"},
	)

	DiscordRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "discord_requests_total",
			Help:      "Total number of Discord API requests",
		},
		[]string{"method", "status"},
	)

	StoredBackups = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "stored_backups_count",
			Help:      "Number of backup records stored in the database",
		},
	)
)

// Стратегии сбора приглашений.
const (
	StrategyInviteCreate = "invite_create"
	StrategyVanity       = "vanity"
	StrategyMessageScan  = "message_scan"
)

func RecordHTTPRequest(method, endpoint string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func RecordBackup(trigger, status string, duration time.Duration) {
	BackupsTotal.WithLabelValues(trigger, status).Inc()
	BackupDuration.Observe(duration.Seconds())
}

func RecordInvites(strategy string, count int) {
	if count > 0 {
		InvitesCollected.WithLabelValues(strategy).Add(float64(count))
	}
}

func RecordDiscordRequest(method string, status int) {
	DiscordRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
}
