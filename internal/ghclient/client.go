package ghclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v82/github"
	"github.com/inovacc/ghexplorer/internal/common"
	"github.com/inovacc/ghexplorer/internal/model"
	"golang.org/x/time/rate"
)

// Operation names used in errors and metrics.
const (
	OpProfile      = "profile"
	OpRepositories = "repositories"
)

// Options configures a Client.
type Options struct {
	// BaseURL is the REST API root; empty means api.github.com
	BaseURL string

	// Timeout bounds each request; zero means no timeout
	Timeout time.Duration

	// RequestsPerSecond paces outgoing calls; zero disables pacing
	RequestsPerSecond float64
	Burst             int

	UserAgent string

	// HTTPClient overrides the transport; Timeout is ignored when set
	HTTPClient *http.Client
}

// Client issues read-only, unauthenticated GitHub API requests.
type Client struct {
	gh      *github.Client
	limiter *rate.Limiter
}

// New creates a Client from opts.
func New(opts Options) (*Client, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	gh := github.NewClient(httpClient)

	if opts.BaseURL != "" {
		base := opts.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}

		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("invalid API URL %q", common.RedactURL(opts.BaseURL))
		}

		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, fmt.Errorf("invalid API URL %q: scheme must be http or https", common.RedactURL(opts.BaseURL))
		}

		gh.BaseURL = u
	}

	if opts.UserAgent != "" {
		gh.UserAgent = opts.UserAgent
	}

	c := &Client{gh: gh}

	if opts.RequestsPerSecond > 0 {
		burst := max(opts.Burst, 1)
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	return c, nil
}

// NewFromConfig creates a Client from the github section of the config.
func NewFromConfig(cfg model.GitHubConfig, userAgent string) (*Client, error) {
	return New(Options{
		BaseURL:           cfg.APIURL,
		Timeout:           cfg.Timeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
		UserAgent:         userAgent,
	})
}

// FetchUser retrieves the profile for login. A missing user yields an error
// matching ErrNotFound.
func (c *Client) FetchUser(ctx context.Context, login string) (*model.User, error) {
	if err := c.wait(ctx, OpProfile); err != nil {
		return nil, err
	}

	u, resp, err := c.gh.Users.Get(ctx, url.PathEscape(login))
	if err != nil {
		return nil, classify(OpProfile, login, resp, err)
	}

	user := toUser(u)

	return &user, nil
}

// FetchRepositories retrieves the first page of public repositories owned
// by login, asking the API to sort them by stars. A user without
// repositories yields an empty slice.
func (c *Client) FetchRepositories(ctx context.Context, login string) ([]model.Repository, error) {
	if err := c.wait(ctx, OpRepositories); err != nil {
		return nil, err
	}

	opts := &github.RepositoryListByUserOptions{
		Sort:      "stars",
		Direction: "desc",
	}

	repos, resp, err := c.gh.Repositories.ListByUser(ctx, url.PathEscape(login), opts)
	if err != nil {
		return nil, classify(OpRepositories, login, resp, err)
	}

	out := make([]model.Repository, 0, len(repos))
	for _, r := range repos {
		if r == nil {
			continue
		}

		out = append(out, toRepository(r))
	}

	return out, nil
}

func (c *Client) wait(ctx context.Context, op string) error {
	if c.limiter == nil {
		return nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	return nil
}

// classify maps a go-github error onto NotFoundError, RemoteError or
// NetworkError. A response is only present when the server answered.
func classify(op, login string, resp *github.Response, err error) error {
	status := 0
	if resp != nil && resp.Response != nil {
		status = resp.StatusCode
	}

	switch {
	case status == 0:
		return &NetworkError{Op: op, Err: err}
	case status == http.StatusNotFound && op == OpProfile:
		return &NotFoundError{Login: login}
	case status >= 200 && status < 300:
		return &RemoteError{Op: op, Status: status, Decode: true, Err: err}
	default:
		return &RemoteError{Op: op, Status: status, Err: err}
	}
}

func toUser(u *github.User) model.User {
	return model.User{
		Login:     u.GetLogin(),
		Name:      u.GetName(),
		Bio:       u.GetBio(),
		Location:  u.GetLocation(),
		AvatarURL: u.GetAvatarURL(),
		HTMLURL:   u.GetHTMLURL(),
		Followers: max(u.GetFollowers(), 0),
		Following: max(u.GetFollowing(), 0),
	}
}

func toRepository(r *github.Repository) model.Repository {
	return model.Repository{
		Name:        r.GetName(),
		Description: r.GetDescription(),
		HTMLURL:     r.GetHTMLURL(),
		Stars:       max(r.GetStargazersCount(), 0),
	}
}
