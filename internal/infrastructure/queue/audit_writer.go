package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/multirole/auth-api/internal/api/metrics"
	"github.com/multirole/auth-api/internal/core/domain"
	"github.com/multirole/auth-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

// AsyncAuditWriter decorates an AuditRepository so inserts happen off the
// request path. Entries are routed to a fixed set of workers by hashing the
// username, preserving per-user ordering of the audit trail. The queue is
// best-effort to match the audit contract: when a worker channel is full the
// entry is dropped and counted, never blocking the caller.
type AsyncAuditWriter struct {
	inner   ports.AuditRepository
	workers []chan domain.AuditLog
	log     zerolog.Logger
}

// NewAsyncAuditWriter creates an AsyncAuditWriter with numWorkers sharded
// workers. If numWorkers <= 0, defaultWorkers is used.
func NewAsyncAuditWriter(inner ports.AuditRepository, numWorkers int, log zerolog.Logger) *AsyncAuditWriter {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	w := &AsyncAuditWriter{
		inner:   inner,
		workers: make([]chan domain.AuditLog, numWorkers),
		log:     log,
	}
	for i := range w.workers {
		w.workers[i] = make(chan domain.AuditLog, channelBuffer)
	}
	return w
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (w *AsyncAuditWriter) Start(ctx context.Context) {
	for i, ch := range w.workers {
		go w.runWorker(ctx, i, ch)
	}
}

// Insert enqueues the entry for background persistence. It never returns an
// error: the write either lands on a worker or is dropped and counted.
func (w *AsyncAuditWriter) Insert(_ context.Context, entry *domain.AuditLog) error {
	select {
	case w.workers[w.shardIndex(entry.Username)] <- *entry:
	default:
		metrics.AuditWriteFailuresTotal.Inc()
		w.log.Warn().
			Str("username", entry.Username).
			Str("action", entry.Action).
			Msg("audit queue full, entry dropped")
	}
	return nil
}

func (w *AsyncAuditWriter) FindRecent(ctx context.Context, limit, offset int) ([]domain.AuditLog, error) {
	return w.inner.FindRecent(ctx, limit, offset)
}

func (w *AsyncAuditWriter) FindByUsername(ctx context.Context, username string) ([]domain.AuditLog, error) {
	return w.inner.FindByUsername(ctx, username)
}

func (w *AsyncAuditWriter) CountActionSince(ctx context.Context, action string, status domain.AuditStatus, since time.Time) (int64, error) {
	return w.inner.CountActionSince(ctx, action, status, since)
}

// shardIndex maps a username deterministically to a worker index.
func (w *AsyncAuditWriter) shardIndex(username string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(username))
	return int(h.Sum32()) % len(w.workers)
}

func (w *AsyncAuditWriter) runWorker(ctx context.Context, id int, ch <-chan domain.AuditLog) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			if err := w.inner.Insert(writeCtx, &entry); err != nil {
				metrics.AuditWriteFailuresTotal.Inc()
				w.log.Error().Err(err).
					Str("username", entry.Username).
					Str("action", entry.Action).
					Int("worker_id", id).
					Msg("async audit write failed")
			}
			cancel()
		}
	}
}
