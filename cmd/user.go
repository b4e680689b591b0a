package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/inovacc/ghexplorer/internal/cli"
	"github.com/inovacc/ghexplorer/internal/metrics"
	"github.com/inovacc/ghexplorer/internal/model"
	"github.com/inovacc/ghexplorer/internal/render"
	"github.com/inovacc/ghexplorer/internal/render/htmlview"
	"github.com/inovacc/ghexplorer/internal/search"
	"github.com/inovacc/ghexplorer/internal/theme"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultWidth = 80

var userCmd = &cobra.Command{
	Use:   "user <login>",
	Short: "Look up one GitHub user",
	Long: `Fetch a GitHub profile and its public repositories, sorted by stars.

The result is printed with the saved theme, or written as JSON or as an
HTML page.

Examples:
  ghexplorer user octocat
  ghexplorer user octocat --json
  ghexplorer user octocat --html octocat.html
  ghexplorer user octocat --metrics`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runUser,
}

func init() {
	rootCmd.AddCommand(userCmd)

	userCmd.Flags().Bool("json", false, "Output as JSON")
	userCmd.Flags().String("html", "", "Write the result as an HTML page to `FILE`")
	userCmd.Flags().Bool("metrics", false, "Print search metrics after the result")
}

// UserResult is the JSON form of a successful lookup.
type UserResult struct {
	User         model.User         `json:"user"`
	Repositories []model.Repository `json:"repositories"`
}

// recorder keeps the outcome handed to the render controller.
type recorder struct {
	*render.Controller
	result *UserResult
}

func (r *recorder) EnterResults(user model.User, repos []model.Repository) error {
	r.result = &UserResult{User: user, Repositories: model.SortByStars(repos)}

	return r.Controller.EnterResults(user, repos)
}

func runUser(cmd *cobra.Command, args []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	htmlFile, _ := cmd.Flags().GetString("html")
	showMetrics, _ := cmd.Flags().GetBool("metrics")

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	err := lookupUser(cmd, args[0], jsonOut, htmlFile, showMetrics, out, errOut)
	if err == nil {
		return nil
	}

	var (
		failed     *searchError
		validation *search.ValidationError
	)

	switch {
	case errors.As(err, &validation):
	case errors.As(err, &failed):
		if !failed.shown {
			_, _ = fmt.Fprintln(errOut, failed.message)
		}
	default:
		_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
	}

	return err
}

// searchError is a failed lookup, carrying the message of the error view.
// shown is set when the view was already printed.
type searchError struct {
	message string
	shown   bool
	err     error
}

func (e *searchError) Error() string { return e.message }
func (e *searchError) Unwrap() error { return e.err }

func lookupUser(cmd *cobra.Command, login string, jsonOut bool, htmlFile string, showMetrics bool, out, errOut io.Writer) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := newCLILogger(cfg, jsonOut)

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	store := openStore(cfg, log)
	defer func() { _ = store.Close() }()

	var (
		surface render.Surface
		doc     theme.Document
		page    *htmlview.Document
		screen  *cli.Screen
	)

	if htmlFile != "" {
		page = htmlview.New()
		surface, doc = page, page
	} else {
		screen = cli.NewScreen()
		surface, doc = screen, screen
	}

	current := theme.New(store, doc, log).Init()

	rec := &recorder{Controller: render.NewController(surface)}
	collector := metrics.NewCollector()

	orchestrator := search.New(client, rec, search.Options{
		Prompter: search.PrompterFunc(func(message string) {
			_, _ = fmt.Fprintln(errOut, message)
		}),
		Logger:  log,
		Metrics: collector,
	})

	searchErr := orchestrator.HandleSearch(cmd.Context(), login)

	var validation *search.ValidationError
	if errors.As(searchErr, &validation) {
		return searchErr
	}

	switch {
	case page != nil:
		if err := writePage(htmlFile, page); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(errOut, "Wrote %s\n", htmlFile)
	case jsonOut:
		if searchErr == nil {
			if err := outputJSON(out, rec.result); err != nil {
				return err
			}
		}
	default:
		_, _ = fmt.Fprintln(out, screen.Render(cli.NewStyles(current), terminalWidth(), ""))
	}

	if showMetrics {
		if err := collector.WriteText(out); err != nil {
			return err
		}
	}

	if searchErr != nil {
		return &searchError{
			message: search.Message(searchErr),
			shown:   page == nil && !jsonOut,
			err:     searchErr,
		}
	}

	return nil
}

func writePage(path string, page *htmlview.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := page.WritePage(f); err != nil {
		_ = f.Close()

		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return f.Close()
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}

	return width
}
