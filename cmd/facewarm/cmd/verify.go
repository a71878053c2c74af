package cmd

import (
	"fmt"
	"log/slog"

	"github.com/MeKo-Tech/facewarm/internal/weights"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Inspect the weights cache",
	Long: `Inspect the weights cache directory and print a bounded summary: the file
count and the first few filenames. A missing cache is reported as a warning,
not an error.`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	out := cmd.OutOrStdout()

	report, err := weights.Verify(cfg.WeightsDir)
	if err != nil {
		fmt.Fprintf(out, "⚠️  Could not verify weights: %v\n", err)
		slog.Warn("weights verification failed", "error", err)
		return nil
	}

	report.Write(out)
	return nil
}
