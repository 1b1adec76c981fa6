package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var urlExpires time.Duration

// urlCmd represents the url command
var urlCmd = &cobra.Command{
	Use:   "url <key>",
	Short: "Print a presigned download URL for an object",
	Long:  `Generates a time-limited download URL. Without --expires the configured default expiry (OBJECTS_DEFAULT_EXPIRY seconds) is used.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, logg, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()
		defer logg.Sync()

		var u string
		if cmd.Flags().Changed("expires") {
			u, err = client.DownloadURLWithExpiry(cmd.Context(), args[0], urlExpires)
		} else {
			u, err = client.DownloadURL(cmd.Context(), args[0])
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(urlCmd)

	urlCmd.Flags().DurationVar(&urlExpires, "expires", 0, "URL validity, e.g. 1h or 15m")
}
