package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/clients/pkg/clientsdk"
)

// Exit codes for scripting.
const (
	ExitCodeSuccess      = 0
	ExitCodeError        = 1
	ExitCodeUnauthorized = 2
	ExitCodeNotFound     = 3
)

// version is replaced at build time via ldflags.
var version = "dev"

type options struct {
	baseURL  string
	username string
	password string
	output   string
}

func (o *options) client() (*clientsdk.SDKClient, error) {
	if o.baseURL == "" {
		return nil, errors.New("no service URL: set --url or CLIENTS_URL")
	}
	return clientsdk.NewSDKClient(o.baseURL, o.username, o.password), nil
}

// authClient is client for commands that act on behalf of a user.
func (o *options) authClient() (*clientsdk.SDKClient, error) {
	if o.username == "" || o.password == "" {
		return nil, errors.New("no credentials: set --user and --password or CLIENTS_USERNAME and CLIENTS_PASSWORD")
	}
	return o.client()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "clientsctl",
		Short: "Manage OAuth clients and their API subscriptions",
		Long: `clientsctl talks to the clients service to create, inspect and delete
OAuth client applications and to manage the APIs they are subscribed to.
Credentials are those of your API manager account.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate(`{{printf "clientsctl version %s\n" .Version}}`)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.baseURL, "url", envOr("CLIENTS_URL", "http://localhost:8080"), "clients service base URL")
	flags.StringVarP(&opts.username, "user", "u", os.Getenv("CLIENTS_USERNAME"), "API manager username")
	flags.StringVarP(&opts.password, "password", "p", os.Getenv("CLIENTS_PASSWORD"), "API manager password")
	flags.StringVarP(&opts.output, "output", "o", "table", "output format: table or json")

	cmd.AddCommand(
		newListCmd(opts),
		newCreateCmd(opts),
		newGetCmd(opts),
		newDeleteCmd(opts),
		newSubscriptionsCmd(opts),
		newHealthCmd(opts),
	)
	return cmd
}

// execute runs the command line and maps the outcome to an exit code.
func execute(ctx context.Context, args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitCodeSuccess
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case clientsdk.IsUnauthorized(err):
		return ExitCodeUnauthorized
	case clientsdk.IsNotFound(err):
		return ExitCodeNotFound
	default:
		return ExitCodeError
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
