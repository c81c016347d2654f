package worker

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
	"github.com/AlexisMGL/HappyCheese/internal/usecase"
)

// LedgerSource exposes the subset of application functionality the
// reconciler needs.
type LedgerSource interface {
	MovementLog(ctx context.Context) ([]model.ConsignMovement, error)
	ConsignTotals() []model.ConsignTotal
	ReplaceConsignTotals(totals []model.ConsignTotal)
}

// LedgerReconciler periodically re-folds the consign movement log and
// replaces the store's incremental balance cache when the two disagree.
// A disagreement normally means a client/type removal cascade failed
// partway; the authoritative fold restores consistency.
type LedgerReconciler struct {
	source   LedgerSource
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewLedgerReconciler constructs the reconciler.
func NewLedgerReconciler(source LedgerSource, interval time.Duration, logger *slog.Logger) *LedgerReconciler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &LedgerReconciler{source: source, interval: interval, logger: logger}
}

// Start launches the background loop.
func (r *LedgerReconciler) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.run(runCtx)
}

// Stop waits for the loop to finish.
func (r *LedgerReconciler) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *LedgerReconciler) run(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Reconcile(ctx)
		}
	}
}

// Reconcile performs one pass: fold the log, compare, repair on divergence.
func (r *LedgerReconciler) Reconcile(ctx context.Context) {
	movements, err := r.source.MovementLog(ctx)
	if err != nil {
		r.logger.Error("ledger reload failed", slog.String("error", err.Error()))
		return
	}

	authoritative := usecase.BuildConsignTotals(movements)
	cached := r.source.ConsignTotals()
	if totalsEqual(authoritative, cached) {
		return
	}

	r.logger.Warn("consign totals cache diverged from movement log",
		slog.Int("cached", len(cached)),
		slog.Int("authoritative", len(authoritative)),
	)
	r.source.ReplaceConsignTotals(authoritative)
}

func totalsEqual(a, b []model.ConsignTotal) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]model.ConsignTotal(nil), a...)
	bs := append([]model.ConsignTotal(nil), b...)
	byKey := func(s []model.ConsignTotal) {
		sort.Slice(s, func(i, j int) bool {
			if s[i].ClientID != s[j].ClientID {
				return s[i].ClientID < s[j].ClientID
			}
			return s[i].TypeID < s[j].TypeID
		})
	}
	byKey(as)
	byKey(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
