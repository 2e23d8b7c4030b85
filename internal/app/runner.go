package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Adda-Baaj/swapi-client/internal/config"
	"github.com/Adda-Baaj/swapi-client/internal/domain"
	"github.com/Adda-Baaj/swapi-client/internal/logger"
	"github.com/Adda-Baaj/swapi-client/internal/report"
	"github.com/Adda-Baaj/swapi-client/internal/storage"
	"github.com/Adda-Baaj/swapi-client/pkg/httpclient"
	"github.com/Adda-Baaj/swapi-client/pkg/sinks"
	"github.com/Adda-Baaj/swapi-client/pkg/swapi"
)

// Runner fetches each roster character in order and reports it. A failed
// fetch is printed to the error stream and the next character still runs.
type Runner struct {
	fetcher    CharacterFetcher
	roster     []swapi.Entry
	reporter   *report.Reporter
	errOut     io.Writer
	dispatcher Dispatcher
	ledger     Ledger
	log        logger.Logger
}

// Option customises a Runner.
type Option func(*Runner)

// WithOutput redirects the report and error streams.
func WithOutput(out, errOut io.Writer) Option {
	return func(r *Runner) {
		r.reporter = report.New(out)
		r.errOut = errOut
	}
}

// WithDispatcher forwards each fetched record to the dispatcher's sinks.
func WithDispatcher(d Dispatcher) Option {
	return func(r *Runner) { r.dispatcher = d }
}

// WithLedger skips sinks that already received a record version.
func WithLedger(l Ledger) Option {
	return func(r *Runner) { r.ledger = l }
}

// NewRunner builds a Runner over the fixed roster.
func NewRunner(fetcher CharacterFetcher, log logger.Logger, opts ...Option) *Runner {
	if log == nil {
		log = &logger.NopLogger{}
	}
	r := &Runner{
		fetcher:  fetcher,
		roster:   swapi.Roster(),
		reporter: report.New(os.Stdout),
		errOut:   os.Stderr,
		log:      log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFromConfig wires the API client, sinks and ledger described by cfg.
func NewFromConfig(ctx context.Context, cfg *config.Config, log logger.Logger, opts ...Option) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	transport := httpclient.NewRestyClient(httpclient.Options{
		Timeout:   cfg.HTTPTimeout,
		UserAgent: cfg.UserAgent,
	})
	client := swapi.NewClient(cfg.BaseURL, transport)
	log.DebugObj("swapi client configured", "swapi_config", map[string]any{
		"base_url":        cfg.BaseURL,
		"timeout_seconds": int(cfg.HTTPTimeout.Seconds()),
	})

	if cfg.SinksFile == "" {
		return NewRunner(client, log, opts...), nil
	}

	sinkCfgs, err := sinks.Load(cfg.SinksFile)
	if err != nil {
		return nil, fmt.Errorf("load sinks: %w", err)
	}
	dispatcher, err := sinks.OpenAll(ctx, sinkCfgs)
	if err != nil {
		return nil, fmt.Errorf("open sinks: %w", err)
	}
	names := make([]string, 0, len(sinkCfgs))
	for _, sc := range sinkCfgs {
		names = append(names, sc.Name+":"+sc.Kind())
	}
	log.InfoObj("sinks opened", "sinks", names)

	ledger, err := storage.NewLedger(cfg.StorageType, cfg.BBoltPath, cfg.StorageTTL)
	if err != nil {
		_ = dispatcher.Close()
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":        cfg.StorageType,
		"path":        cfg.BBoltPath,
		"ttl_seconds": int(cfg.StorageTTL.Seconds()),
	})

	opts = append([]Option{WithDispatcher(dispatcher), WithLedger(ledger)}, opts...)
	return NewRunner(client, log, opts...), nil
}

// Run prints the banner and processes every roster entry in order.
// Fetch failures are reported, never returned.
func (r *Runner) Run(ctx context.Context) error {
	if r == nil || r.fetcher == nil {
		return fmt.Errorf("runner is not initialized")
	}
	defer r.close()

	r.reporter.Banner()
	for _, entry := range r.roster {
		if err := ctx.Err(); err != nil {
			r.log.InfoObj("run interrupted", "reason", err.Error())
			return nil
		}
		r.runEntry(ctx, entry)
	}
	return nil
}

func (r *Runner) runEntry(ctx context.Context, entry swapi.Entry) {
	character, err := r.fetcher.Fetch(ctx, entry)
	if err != nil {
		report.Error(r.errOut, entry.Name, err)
		r.log.InfoObj("character fetch failed", "fetch_error", fetchErrorFields(entry, err))
		return
	}

	r.reporter.Report(entry.Name, character)
	r.dispatch(ctx, entry, character)
}

func fetchErrorFields(entry swapi.Entry, err error) map[string]any {
	fields := map[string]any{
		"character": entry.Name,
		"error":     err.Error(),
	}
	var reqErr *swapi.RequestError
	var parseErr *swapi.ParseError
	switch {
	case errors.As(err, &reqErr):
		fields["kind"] = "request"
		fields["url"] = reqErr.URL
		if reqErr.StatusCode != 0 {
			fields["status"] = reqErr.StatusCode
		}
	case errors.As(err, &parseErr):
		fields["kind"] = "parse"
		fields["url"] = parseErr.URL
		if parseErr.Field != "" {
			fields["field"] = parseErr.Field
		}
	}
	return fields
}

// dispatch delivers the record to every sink the ledger has not seen it on.
// Only successful deliveries are recorded, so a failing sink is retried next run.
func (r *Runner) dispatch(ctx context.Context, entry swapi.Entry, character domain.Character) {
	if r.dispatcher == nil || r.dispatcher.Len() == 0 {
		return
	}

	key := storage.RecordKey(entry.Name, character)
	skip := func(sink string) bool {
		if r.ledger == nil {
			return false
		}
		delivered, err := r.ledger.Delivered(sink, key)
		if err != nil {
			r.log.WarnObj("delivery ledger lookup failed", "ledger_error", map[string]any{
				"character": entry.Name,
				"sink":      sink,
				"error":     err.Error(),
			})
			return false
		}
		return delivered
	}

	for _, d := range r.dispatcher.Deliver(ctx, sinks.NewEvent(entry.Name, character, key), skip) {
		switch {
		case d.Skipped:
			r.log.DebugObj("character already delivered", "delivery", map[string]any{
				"character": entry.Name,
				"sink":      d.Sink,
			})
		case d.Err != nil:
			r.log.WarnObj("character delivery failed", "delivery_error", map[string]any{
				"character": entry.Name,
				"sink":      d.Sink,
				"error":     d.Err.Error(),
			})
		case r.ledger != nil:
			if err := r.ledger.MarkDelivered(d.Sink, key); err != nil {
				r.log.WarnObj("delivery ledger update failed", "ledger_error", map[string]any{
					"character": entry.Name,
					"sink":      d.Sink,
					"error":     err.Error(),
				})
			}
		}
	}
}

func (r *Runner) close() {
	if r.dispatcher != nil {
		if err := r.dispatcher.Close(); err != nil {
			r.log.ErrorObj("sinks close failed", "error", err.Error())
		}
	}
	if r.ledger != nil {
		if err := r.ledger.Close(); err != nil {
			r.log.ErrorObj("storage close failed", "error", err.Error())
		}
	}
}
