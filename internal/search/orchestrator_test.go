package search

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/inovacc/ghexplorer/internal/ghclient"
	"github.com/inovacc/ghexplorer/internal/logger"
	"github.com/inovacc/ghexplorer/internal/metrics"
	"github.com/inovacc/ghexplorer/internal/model"
	"github.com/inovacc/ghexplorer/internal/render"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	user     func(ctx context.Context, login string) (*model.User, error)
	repos    func(ctx context.Context, login string) ([]model.Repository, error)
	userHits atomic.Int32
	repoHits atomic.Int32
}

func (f *fakeFetcher) FetchUser(ctx context.Context, login string) (*model.User, error) {
	f.userHits.Add(1)

	if f.user == nil {
		return &model.User{Login: login}, nil
	}

	return f.user(ctx, login)
}

func (f *fakeFetcher) FetchRepositories(ctx context.Context, login string) ([]model.Repository, error) {
	f.repoHits.Add(1)

	if f.repos == nil {
		return []model.Repository{}, nil
	}

	return f.repos(ctx, login)
}

type call struct {
	kind    string
	message string
	user    model.User
	repos   []model.Repository
}

type fakeRenderer struct {
	mu    sync.Mutex
	calls []call
}

func (r *fakeRenderer) EnterLoading() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, call{kind: "loading"})

	return nil
}

func (r *fakeRenderer) EnterError(message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, call{kind: "error", message: message})

	return nil
}

func (r *fakeRenderer) EnterResults(user model.User, repos []model.Repository) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, call{kind: "results", user: user, repos: repos})

	return nil
}

func (r *fakeRenderer) kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		out = append(out, c.kind)
	}

	return out
}

func (r *fakeRenderer) last() call {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.calls[len(r.calls)-1]
}

func newOrchestrator(f Fetcher, r Renderer, p Prompter) *Orchestrator {
	return New(f, r, Options{Prompter: p, Logger: logger.Discard()})
}

func TestHandleSearch_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		t.Run(strings.ReplaceAll(input, "\n", `\n`), func(t *testing.T) {
			f := &fakeFetcher{}
			r := &fakeRenderer{}

			var prompts []string

			o := newOrchestrator(f, r, PrompterFunc(func(msg string) { prompts = append(prompts, msg) }))

			err := o.HandleSearch(context.Background(), input)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, []string{PromptMessage}, prompts)
			require.Empty(t, r.kinds())
			require.Zero(t, f.userHits.Load())
			require.Zero(t, f.repoHits.Load())
		})
	}
}

func TestHandleSearch_Results(t *testing.T) {
	var gotLogins []string
	var mu sync.Mutex

	f := &fakeFetcher{
		user: func(_ context.Context, login string) (*model.User, error) {
			mu.Lock()
			gotLogins = append(gotLogins, login)
			mu.Unlock()

			return &model.User{Login: login, Name: "The Octocat"}, nil
		},
		repos: func(_ context.Context, login string) ([]model.Repository, error) {
			return []model.Repository{{Name: "Hello-World", Stars: 3}}, nil
		},
	}
	r := &fakeRenderer{}

	err := newOrchestrator(f, r, nil).HandleSearch(context.Background(), "  octocat  ")
	require.NoError(t, err)

	require.Equal(t, []string{"loading", "results"}, r.kinds())
	require.Equal(t, []string{"octocat"}, gotLogins)
	require.Equal(t, "The Octocat", r.last().user.Name)
	require.Len(t, r.last().repos, 1)
}

func TestHandleSearch_ZeroRepositories(t *testing.T) {
	r := &fakeRenderer{}

	err := newOrchestrator(&fakeFetcher{}, r, nil).HandleSearch(context.Background(), "newbie")
	require.NoError(t, err)
	require.Equal(t, []string{"loading", "results"}, r.kinds())
	require.Empty(t, r.last().repos)
}

func TestHandleSearch_NotFoundWinsOverRepositoryError(t *testing.T) {
	f := &fakeFetcher{
		user: func(context.Context, string) (*model.User, error) {
			time.Sleep(20 * time.Millisecond)

			return nil, &ghclient.NotFoundError{Login: "doesnotexist12345"}
		},
		repos: func(context.Context, string) ([]model.Repository, error) {
			return nil, &ghclient.RemoteError{Op: ghclient.OpRepositories, Status: http.StatusNotFound}
		},
	}
	r := &fakeRenderer{}

	err := newOrchestrator(f, r, nil).HandleSearch(context.Background(), "doesnotexist12345")
	require.ErrorIs(t, err, ghclient.ErrNotFound)
	require.Equal(t, []string{"loading", "error"}, r.kinds())
	require.Equal(t, "User not found", r.last().message)
}

func TestHandleSearch_RemoteError(t *testing.T) {
	f := &fakeFetcher{
		repos: func(context.Context, string) ([]model.Repository, error) {
			return nil, &ghclient.RemoteError{Op: ghclient.OpRepositories, Status: http.StatusBadGateway}
		},
	}
	r := &fakeRenderer{}

	err := newOrchestrator(f, r, nil).HandleSearch(context.Background(), "octocat")
	require.Error(t, err)
	require.Equal(t, "Error: failed to fetch repositories: 502", r.last().message)
}

func TestHandleSearch_FetchesConcurrently(t *testing.T) {
	var started sync.WaitGroup
	started.Add(2)

	bothStarted := make(chan struct{})
	go func() {
		started.Wait()
		close(bothStarted)
	}()

	wait := func(ctx context.Context) error {
		started.Done()

		select {
		case <-bothStarted:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("fetches ran sequentially")
		}
	}

	f := &fakeFetcher{
		user: func(ctx context.Context, login string) (*model.User, error) {
			return &model.User{Login: login}, wait(ctx)
		},
		repos: func(ctx context.Context, _ string) ([]model.Repository, error) {
			return nil, wait(ctx)
		},
	}
	r := &fakeRenderer{}

	require.NoError(t, newOrchestrator(f, r, nil).HandleSearch(context.Background(), "octocat"))
}

func TestHandleSearch_StaleResultIsDropped(t *testing.T) {
	firstStarted := make(chan struct{})
	var firstCtxErr error

	f := &fakeFetcher{
		user: func(ctx context.Context, login string) (*model.User, error) {
			if login == "slow" {
				close(firstStarted)
				<-ctx.Done()
				firstCtxErr = ctx.Err()

				return &model.User{Login: login}, nil
			}

			return &model.User{Login: login}, nil
		},
	}
	r := &fakeRenderer{}
	o := newOrchestrator(f, r, nil)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- o.HandleSearch(context.Background(), "slow")
	}()

	<-firstStarted
	require.NoError(t, o.HandleSearch(context.Background(), "fast"))

	require.ErrorIs(t, <-firstDone, ErrSuperseded)
	require.ErrorIs(t, firstCtxErr, context.Canceled)

	require.Equal(t, []string{"loading", "loading", "results"}, r.kinds())
	require.Equal(t, "fast", r.last().user.Login)
}

func TestCancel_DropsInFlightSearch(t *testing.T) {
	started := make(chan struct{})

	f := &fakeFetcher{
		user: func(ctx context.Context, login string) (*model.User, error) {
			close(started)
			<-ctx.Done()

			return nil, &ghclient.NetworkError{Op: ghclient.OpProfile, Err: ctx.Err()}
		},
	}
	r := &fakeRenderer{}
	o := newOrchestrator(f, r, nil)

	done := make(chan error, 1)
	go func() { done <- o.HandleSearch(context.Background(), "octocat") }()

	<-started
	o.Cancel()

	require.ErrorIs(t, <-done, ErrSuperseded)
	require.Equal(t, []string{"loading"}, r.kinds())
}

func TestHandleSearch_RecordsMetrics(t *testing.T) {
	m := metrics.NewCollector()
	f := &fakeFetcher{
		user: func(context.Context, string) (*model.User, error) {
			return nil, &ghclient.NotFoundError{Login: "x"}
		},
	}

	o := New(f, &fakeRenderer{}, Options{Logger: logger.Discard(), Metrics: m})

	_ = o.HandleSearch(context.Background(), "x")
	_ = o.HandleSearch(context.Background(), " ")

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	require.Contains(t, buf.String(), `ghexplorer_searches_total{outcome="not_found"} 1`)
	require.Contains(t, buf.String(), `ghexplorer_searches_total{outcome="invalid"} 1`)
}

func TestMessage(t *testing.T) {
	require.Equal(t, "User not found", Message(&ghclient.NotFoundError{Login: "x"}))
	require.Equal(t, "Error: API error: 500", Message(&ghclient.RemoteError{Op: ghclient.OpProfile, Status: 500}))
	require.True(t, strings.HasPrefix(Message(&ghclient.NetworkError{Op: "profile", Err: errors.New("dial tcp")}), "Error: network error"))
}

// Wires the real client, controller and search together against a fake API.
func TestHandleSearch_EndToEndNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := ghclient.New(ghclient.Options{BaseURL: srv.URL})
	require.NoError(t, err)

	surface := &stateSurface{}
	ctrl := render.NewController(surface)

	err = newOrchestrator(client, ctrl, nil).HandleSearch(context.Background(), "doesnotexist12345")
	require.ErrorIs(t, err, ghclient.ErrNotFound)
	require.Equal(t, render.StateError, ctrl.State())
	require.Equal(t, "User not found", surface.errorText)
}

type stateSurface struct {
	errorText string
}

func (s *stateSurface) Show(render.Panel)               {}
func (s *stateSurface) Hide(render.Panel)               {}
func (s *stateSurface) SetErrorText(text string)        { s.errorText = text }
func (s *stateSurface) PaintProfile(render.Profile)     {}
func (s *stateSurface) PaintRepositories([]render.Card) {}
func (s *stateSurface) PaintEmptyRepositories()         {}
