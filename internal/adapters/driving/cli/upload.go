package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsearch-cli/internal/adapters/driven/localfs"
	"github.com/custodia-labs/docsearch-cli/internal/adapters/driving/watch"
	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
)

var uploadWatchDir string

var uploadCmd = &cobra.Command{
	Use:   "upload [files...]",
	Short: "Upload plain-text documents",
	Long: `Upload one or more plain-text files to the retrieval service.

With --watch, the directory is monitored and new or modified .txt files are
uploaded in debounced batches until interrupted.`,
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 && uploadWatchDir == "" {
			return errors.New("requires at least one file or --watch DIR")
		}
		return nil
	},
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadWatchDir, "watch", "w", "", "watch a directory and upload .txt files as they change")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if controller == nil {
		return errors.New("controller not configured")
	}
	ctx := cmd.Context()

	if len(args) > 0 {
		files, err := localfs.ReadFiles(ctx, args)
		if err != nil {
			return fmt.Errorf("reading files: %w", err)
		}
		if _, err := controller.Upload(ctx, files); err != nil {
			var partial *domain.PartialFailureError
			if !errors.As(err, &partial) {
				return errors.New(controller.Snapshot().Error)
			}
		}
		printMessages(cmd)
	}

	if uploadWatchDir == "" {
		return nil
	}

	results := make(chan watch.Result)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for res := range results {
			if res.Err != nil && res.Outcome == nil {
				cmd.PrintErrf("Upload of %d files failed: %v\n", len(res.Paths), res.Err)
				continue
			}
			printMessages(cmd)
		}
	}()

	cmd.Printf("Watching %s for .txt files (Ctrl+C to stop)\n", uploadWatchDir)
	err := watch.New(uploadWatchDir, controller).Run(ctx, results)
	<-done
	return err
}

// printMessages prints the controller's current success and error banners.
func printMessages(cmd *cobra.Command) {
	snap := controller.Snapshot()
	if snap.Success != "" {
		cmd.Println(snap.Success)
	}
	if snap.Error != "" {
		cmd.PrintErrln(snap.Error)
	}
}
