package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/goride_admin_dashboard/internal/adapter/apiclient"
	"github.com/sm8ta/goride_admin_dashboard/internal/adapter/filestore"
	"github.com/sm8ta/goride_admin_dashboard/internal/adapter/logger"
	"github.com/sm8ta/goride_admin_dashboard/internal/adapter/resources"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/services"
	"github.com/spf13/cobra"
)

const apiURLEnv = "GORIDE_API_URL"

var errNotLoggedIn = errors.New("not logged in, run 'goridectl auth login'")

type options struct {
	configPath string
	profile    string
	apiURL     string
	output     string
	timeout    time.Duration
	verbose    bool
}

// session is everything a command needs to talk to the rental API with the
// tokens of the selected profile.
type session struct {
	file    *filestore.Store
	store   *services.SessionStore
	clients ports.Clients
	auth    *services.AuthService
	logger  ports.LoggerPort
	apiURL  string
}

func (o *options) open(errOut io.Writer) (*session, error) {
	const op = "cli.open"

	file, err := filestore.New(o.configPath, o.profile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var log ports.LoggerPort = logger.NewNop()
	if o.verbose {
		log = logger.NewLoggerAdapterWithWriter(errOut, "development")
	}

	apiURL := o.apiURL
	if apiURL == "" {
		apiURL = file.APIURL()
	}
	if apiURL == "" {
		apiURL = os.Getenv(apiURLEnv)
	}
	if apiURL == "" {
		apiURL = apiclient.DefaultBaseURL
	}

	store := services.NewSessionStore(file, "", 0, log)
	api, err := apiclient.New(apiURL, store, log, apiclient.WithHTTPClient(&http.Client{Timeout: o.timeout}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &session{
		file:    file,
		store:   store,
		clients: resources.NewClients(api),
		auth:    services.NewAuthService(log, validator.New()),
		logger:  log,
		apiURL:  apiURL,
	}, nil
}

func (s *session) requireLogin(ctx context.Context) error {
	if !s.store.IsLoggedIn(ctx) {
		return errNotLoggedIn
	}
	return nil
}

// NewRootCommand builds the goridectl command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &options{}
	p := newPrinter(out, errOut)

	root := &cobra.Command{
		Use:   "goridectl",
		Short: "GoRide admin CLI",
		Long: `goridectl manages the GoRide motorbike rental back office from the terminal.

Sign in with an administrator account, then list and update motorbikes,
rentals, users, blog posts and promotions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "session file (default: $HOME/.goride/session.yaml)")
	flags.StringVar(&opts.profile, "profile", "", "profile to use (default: the last one signed in)")
	flags.StringVar(&opts.apiURL, "api-url", "", "rental API base URL (default: profile, $"+apiURLEnv+", then "+apiclient.DefaultBaseURL+")")
	flags.StringVarP(&opts.output, "output", "o", "table", "output format: table, json")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "API request timeout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log API calls to stderr")

	root.AddCommand(
		newAuthCommand(opts, p),
		newMotorbikesCommand(opts, p),
		newRentalsCommand(opts, p),
		newUsersCommand(opts, p),
		newBlogsCommand(opts, p),
		newPromotionsCommand(opts, p),
		newDashboardCommand(opts, p),
	)
	return root
}

// Execute runs goridectl and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCommand(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		newPrinter(os.Stdout, os.Stderr).Error("%s", describe(err))
		return 1
	}
	return 0
}

// describe turns an error into the text shown to the user.
func describe(err error) string {
	var loginErr *services.LoginError
	if errors.As(err, &loginErr) {
		return loginErr.Message
	}
	var serverErr *domain.ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Message
	}
	switch {
	case errors.Is(err, errNotLoggedIn):
		return errNotLoggedIn.Error()
	case errors.Is(err, domain.ErrUnreachable):
		return domain.MsgUnreachable
	case errors.Is(err, domain.ErrBackendUnavailable):
		return "session file unavailable: " + err.Error()
	}
	return err.Error()
}

const msgRequestFailed = "Request failed"

// unwrap returns the value of res, or a ServerError carrying the server's
// message when it failed.
func unwrap[T any](res domain.Result[T], err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	v, ok := res.Get()
	if !ok {
		msg := res.Message()
		if msg == "" {
			msg = msgRequestFailed
		}
		return v, &domain.ServerError{Message: msg}
	}
	return v, nil
}
