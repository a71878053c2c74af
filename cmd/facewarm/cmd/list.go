package cmd

import (
	"fmt"
	"strconv"

	"github.com/MeKo-Tech/facewarm/internal/models"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the model and detector catalog",
	Long: `List all recognition models and detector backends known to facewarm,
including whether each model's weights are already cached locally.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().String("manifest", "", "YAML manifest extending the model catalog")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	out := cmd.OutOrStdout()

	registry := models.Default()
	if manifest, _ := cmd.Flags().GetString("manifest"); manifest != "" {
		if err := registry.LoadManifest(manifest); err != nil {
			return err
		}
	}

	weightsDir := models.GetWeightsDir(cfg.WeightsDir)
	fmt.Fprintf(out, "Weights directory: %s\n\n", weightsDir)

	fmt.Fprintln(out, "Recognition models:")
	tbl := tablewriter.NewWriter(out)
	tbl.Header("Model", "File", "Embedding", "Cached", "Description")
	for _, m := range registry.Models() {
		cached := "no"
		if models.ValidateWeightExists(models.WeightPath(cfg.WeightsDir, m.Filename)) == nil {
			cached = "yes"
		}
		embedding := "-"
		if m.Embedding > 0 {
			embedding = strconv.Itoa(m.Embedding)
		}
		tbl.Append([]string{m.Name, m.Filename, embedding, cached, m.Description})
	}
	if err := tbl.Render(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nDetector backends:")
	dtbl := tablewriter.NewWriter(out)
	dtbl.Header("Detector", "Description")
	for _, d := range registry.Detectors() {
		dtbl.Append([]string{d.Name, d.Description})
	}
	return dtbl.Render()
}
