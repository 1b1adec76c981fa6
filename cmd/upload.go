package cmd

import (
	"fmt"

	"github.com/azztche/ate-dme-obst/core/objects"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	uploadKey          string
	uploadContentType  string
	uploadCacheControl string
	uploadACL          string
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Upload a local file to the bucket",
	Long:  `Uploads a file. The object key defaults to the file name unless --key is given.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, logg, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()
		defer logg.Sync()

		opts := &objects.UploadOptions{
			ContentType:  uploadContentType,
			CacheControl: uploadCacheControl,
			ACL:          uploadACL,
		}

		key, err := client.Upload(cmd.Context(), args[0], uploadKey, opts)
		if err != nil {
			return err
		}

		logg.Info("Uploaded object", zap.String("path", args[0]), zap.String("key", key), zap.String("bucket", client.Bucket()))
		fmt.Fprintln(cmd.OutOrStdout(), key)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().StringVar(&uploadKey, "key", "", "Destination object key (default: file name)")
	uploadCmd.Flags().StringVar(&uploadContentType, "content-type", "", "Content-Type of the object")
	uploadCmd.Flags().StringVar(&uploadCacheControl, "cache-control", "", "Cache-Control header of the object")
	uploadCmd.Flags().StringVar(&uploadACL, "acl", "", "Canned ACL, e.g. public-read")
}
