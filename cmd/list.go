package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/azztche/ate-dme-obst/core/objects"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	listPrefix   string
	listMaxKeys  int
	listKeysOnly bool
	listJSON     bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List objects in the bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, logg, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()
		defer logg.Sync()

		if listKeysOnly {
			keys, err := client.ListKeys(cmd.Context(), listPrefix)
			if err != nil {
				return err
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		}

		infos, err := client.List(cmd.Context(), listPrefix, listMaxKeys)
		if err != nil {
			return err
		}

		if listJSON {
			return writeObjectsJSON(cmd.OutOrStdout(), infos)
		}
		return writeObjectsTable(cmd.OutOrStdout(), infos)
	},
}

func init() {
	RootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listPrefix, "prefix", "", "Only list keys starting with this prefix")
	listCmd.Flags().IntVar(&listMaxKeys, "max-keys", objects.DefaultMaxKeys, "Maximum number of objects to list")
	listCmd.Flags().BoolVar(&listKeysOnly, "keys", false, "Print keys only")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output JSON")
}

type objectJSON struct {
	Key          string `json:"key"`
	Size         int64  `json:"size"`
	LastModified string `json:"last_modified"`
	ETag         string `json:"etag"`
}

func writeObjectsJSON(w io.Writer, infos []objects.ObjectInfo) error {
	out := make([]objectJSON, 0, len(infos))
	for _, info := range infos {
		out = append(out, objectJSON(info))
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeObjectsTable(w io.Writer, infos []objects.ObjectInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tSIZE\tLAST MODIFIED")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Key, humanize.IBytes(uint64(info.Size)), info.LastModified)
	}
	return tw.Flush()
}
