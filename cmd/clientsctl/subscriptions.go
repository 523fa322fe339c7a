package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/clients/pkg/clientsdk"
)

func newSubscriptionsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subs"},
		Short:   "Manage the APIs a client is subscribed to",
	}
	cmd.AddCommand(
		newSubscriptionsListCmd(opts),
		newSubscriptionsAddCmd(opts),
		newSubscriptionsRemoveCmd(opts),
	)
	return cmd
}

func newSubscriptionsListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list CLIENT",
		Short: "List a client's subscriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.authClient()
			if err != nil {
				return err
			}
			subs, err := client.ListSubscriptions(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, subs, func(w io.Writer) {
				subscriptionsTable(w, subs)
			})
		},
	}
}

func subscriptionFlags(cmd *cobra.Command, req *clientsdk.SubscriptionRequest) {
	cmd.Flags().StringVar(&req.APIVersion, "api-version", "", "API version, defaults to the platform version")
	cmd.Flags().StringVar(&req.APIProvider, "provider", "", "API provider, defaults to the platform provider")
}

func newSubscriptionsAddCmd(opts *options) *cobra.Command {
	var req clientsdk.SubscriptionRequest

	cmd := &cobra.Command{
		Use:   "add CLIENT API",
		Short: `Subscribe a client to an API, or to every default API with "*"`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.authClient()
			if err != nil {
				return err
			}
			req.APIName = args[1]
			if err := client.Subscribe(cmd.Context(), args[0], req); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Client %s subscribed to %s.\n", args[0], describeAPI(req.APIName))
			return nil
		},
	}
	subscriptionFlags(cmd, &req)
	cmd.Flags().StringVarP(&req.Tier, "tier", "t", "", "subscription tier")
	return cmd
}

func newSubscriptionsRemoveCmd(opts *options) *cobra.Command {
	var req clientsdk.SubscriptionRequest

	cmd := &cobra.Command{
		Use:     "remove CLIENT API",
		Aliases: []string{"rm"},
		Short:   `Unsubscribe a client from an API, or from all of them with "*"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.authClient()
			if err != nil {
				return err
			}
			req.APIName = args[1]
			if err := client.Unsubscribe(cmd.Context(), args[0], req); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s removed from client %s.\n", describeAPI(req.APIName), args[0])
			return nil
		},
	}
	subscriptionFlags(cmd, &req)
	return cmd
}

func describeAPI(name string) string {
	if name == clientsdk.AllAPIs {
		return "all APIs"
	}
	return name
}
