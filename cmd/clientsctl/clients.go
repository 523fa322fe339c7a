package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/clients/pkg/clientsdk"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List your clients",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.authClient()
			if err != nil {
				return err
			}
			clients, err := client.ListClients(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, clients, func(w io.Writer) {
				clientsTable(w, clients)
			})
		},
	}
}

func newCreateCmd(opts *options) *cobra.Command {
	var req clientsdk.CreateClientRequest

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a client subscribed to the default APIs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.authClient()
			if err != nil {
				return err
			}
			req.ClientName = args[0]

			created, err := client.CreateClient(cmd.Context(), req)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, created, func(w io.Writer) {
				clientDetail(w, *created)
			})
		},
	}

	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "client description")
	cmd.Flags().StringVarP(&req.Tier, "tier", "t", "", "throttling tier: Bronze, Silver, Gold or Unlimited")
	cmd.Flags().StringVar(&req.CallbackURL, "callback-url", "", "OAuth callback URL")
	return cmd
}

func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Show a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.authClient()
			if err != nil {
				return err
			}
			c, err := client.GetClient(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, c, func(w io.Writer) {
				clientDetail(w, *c)
			})
		},
	}
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "delete NAME",
		Aliases: []string{"rm"},
		Short:   "Delete a client and its subscriptions",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.authClient()
			if err != nil {
				return err
			}
			if err := client.DeleteClient(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Client %s removed.\n", args[0])
			return nil
		},
	}
}
