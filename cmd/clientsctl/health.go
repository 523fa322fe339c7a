package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/clients/pkg/clientsdk"
)

func newHealthCmd(opts *options) *cobra.Command {
	var live bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check whether the service and its dependencies are ready",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			var h *clientsdk.HealthResponse
			if live {
				h, err = client.GetLiveness(cmd.Context())
			} else {
				h, err = client.GetReadiness(cmd.Context())
			}
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, h, func(w io.Writer) {
				healthTable(w, *h)
			})
		},
	}
	cmd.Flags().BoolVar(&live, "live", false, "only check liveness")
	return cmd
}
