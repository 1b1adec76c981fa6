package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete <key>...",
	Aliases: []string{"rm"},
	Short:   "Delete objects from the bucket",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, logg, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()
		defer logg.Sync()

		for _, key := range args {
			if err := client.Delete(cmd.Context(), key); err != nil {
				return err
			}
			logg.Info("Deleted object", zap.String("key", key), zap.String("bucket", client.Bucket()))
		}
		return nil
	},
}

// existsCmd represents the exists command
var existsCmd = &cobra.Command{
	Use:   "exists <key>",
	Short: "Check whether an object exists",
	Long:  `Prints true or false. Errors other than "not found" fail the command.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, logg, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()
		defer logg.Sync()

		ok, err := client.Exists(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ok)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deleteCmd, existsCmd)
}
