// Package search validates a username, runs the profile and repository
// lookups concurrently and drives the render pipeline with the outcome.
package search

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/ghexplorer/internal/ghclient"
	"github.com/inovacc/ghexplorer/internal/metrics"
	"github.com/inovacc/ghexplorer/internal/model"
	"golang.org/x/sync/errgroup"
)

// Fetcher performs the two GitHub lookups. *ghclient.Client implements it.
type Fetcher interface {
	FetchUser(ctx context.Context, login string) (*model.User, error)
	FetchRepositories(ctx context.Context, login string) ([]model.Repository, error)
}

// Renderer receives view transitions. *render.Controller implements it.
type Renderer interface {
	EnterLoading() error
	EnterError(message string) error
	EnterResults(user model.User, repos []model.Repository) error
}

// Prompter shows a blocking validation message to the user.
type Prompter interface {
	Prompt(message string)
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(message string)

func (f PrompterFunc) Prompt(message string) { f(message) }

// Options configures an Orchestrator. All fields are optional.
type Options struct {
	Prompter Prompter
	Logger   *slog.Logger
	Metrics  *metrics.Collector
}

// Orchestrator runs searches. It is safe for concurrent use: each search
// gets a generation number, starting a search cancels the previous one, and
// only the latest generation may paint its outcome.
type Orchestrator struct {
	fetcher  Fetcher
	renderer Renderer
	prompter Prompter
	logger   *slog.Logger
	metrics  *metrics.Collector

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

// New creates an Orchestrator.
func New(fetcher Fetcher, renderer Renderer, opts Options) *Orchestrator {
	o := &Orchestrator{
		fetcher:  fetcher,
		renderer: renderer,
		prompter: opts.Prompter,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
	}

	if o.prompter == nil {
		o.prompter = PrompterFunc(func(string) {})
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}

// HandleSearch runs one search for raw, which is trimmed first. Empty input
// prompts the user and returns a *ValidationError without touching the view
// or the network. Otherwise the view enters loading, both lookups run
// concurrently, and the view ends in the error or results state. The fetch
// error, if any, is returned after it has been rendered. ErrSuperseded is
// returned when a newer search started first; nothing is rendered then.
func (o *Orchestrator) HandleSearch(ctx context.Context, raw string) error {
	login := strings.TrimSpace(raw)
	if login == "" {
		o.metrics.RecordSearch(metrics.OutcomeInvalid)
		o.prompter.Prompt(PromptMessage)

		return &ValidationError{Input: raw, Message: PromptMessage}
	}

	logger := o.logger.With(
		slog.String("search_id", uuid.NewString()),
		slog.String("login", login),
	)

	searchCtx, gen := o.begin(ctx, logger)

	user, repos, err := o.fetch(searchCtx, login)

	return o.finish(gen, logger, user, repos, err)
}

// Cancel aborts the search in flight, if any. Its outcome is not rendered.
func (o *Orchestrator) Cancel() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.generation++

	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
}

func (o *Orchestrator) begin(ctx context.Context, logger *slog.Logger) (context.Context, uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.cancel != nil {
		o.cancel()
	}

	searchCtx, cancel := context.WithCancel(ctx)

	o.generation++
	o.cancel = cancel

	logger.Debug("search started", slog.Uint64("generation", o.generation))

	if err := o.renderer.EnterLoading(); err != nil {
		logger.Error("failed to enter loading state", slog.Any("error", err))
	}

	return searchCtx, o.generation
}

func (o *Orchestrator) fetch(ctx context.Context, login string) (*model.User, []model.Repository, error) {
	var (
		g        errgroup.Group
		user     *model.User
		repos    []model.Repository
		userErr  error
		reposErr error
	)

	g.Go(func() error {
		start := time.Now()
		user, userErr = o.fetcher.FetchUser(ctx, login)
		o.metrics.ObserveFetch(ghclient.OpProfile, time.Since(start), userErr)

		return userErr
	})

	g.Go(func() error {
		start := time.Now()
		repos, reposErr = o.fetcher.FetchRepositories(ctx, login)
		o.metrics.ObserveFetch(ghclient.OpRepositories, time.Since(start), reposErr)

		return reposErr
	})

	// Both lookups settle before anything is reported. The profile error
	// wins so a missing user always reads "User not found".
	if err := g.Wait(); err != nil {
		return nil, nil, firstNonNil(userErr, reposErr)
	}

	if user == nil {
		user = &model.User{Login: login}
	}

	return user, repos, nil
}

func (o *Orchestrator) finish(gen uint64, logger *slog.Logger, user *model.User, repos []model.Repository, err error) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.generation {
		logger.Debug("dropping stale search result", slog.Uint64("generation", gen))
		o.metrics.RecordSearch(metrics.OutcomeStale)

		return ErrSuperseded
	}

	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}

	if err != nil {
		logger.Error("search failed", slog.Any("error", err))

		if errors.Is(err, ghclient.ErrNotFound) {
			o.metrics.RecordSearch(metrics.OutcomeNotFound)
		} else {
			o.metrics.RecordSearch(metrics.OutcomeError)
		}

		if rerr := o.renderer.EnterError(Message(err)); rerr != nil {
			logger.Error("failed to enter error state", slog.Any("error", rerr))
		}

		return err
	}

	logger.Info("search finished", slog.Int("repositories", len(repos)))
	o.metrics.RecordSearch(metrics.OutcomeResults)

	if rerr := o.renderer.EnterResults(*user, repos); rerr != nil {
		logger.Error("failed to enter results state", slog.Any("error", rerr))
	}

	return nil
}

func firstNonNil(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
