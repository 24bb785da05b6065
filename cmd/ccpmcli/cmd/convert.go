package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ccpm/ccpm"
	"github.com/katalvlaran/ccpm/ccpm/config"
	"github.com/katalvlaran/ccpm/ccpm/diag"
)

var (
	inputFile   string
	outputFile  string
	diagnostics bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an Activity-on-Node network to Activity-on-Arc",
	Example: `  ccpmcli convert --in network.json --out aoa.json
  ccpmcli convert --in network.json --out aoa.json --diagnostics`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&inputFile, "in", "", "input AoN network JSON file (required)")
	convertCmd.Flags().StringVar(&outputFile, "out", "", "output AoA network JSON file (required)")
	convertCmd.Flags().BoolVar(&diagnostics, "diagnostics", false, "trace engine stages to stderr")
	convertCmd.MarkFlagRequired("in")
	convertCmd.MarkFlagRequired("out")
}

func runConvert(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if diagnostics {
		cfg.Diagnostics = true
	}

	raw, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("convert: read %s: %w", inputFile, err)
	}

	var in network
	if err := json.Unmarshal(raw, &in); err != nil {
		return fmt.Errorf("convert: parse %s: %w", inputFile, err)
	}

	sink := diag.Disabled()
	if cfg.Diagnostics {
		sink = diag.New(cfg.DiagnosticsWriter(), true)
	}

	lnkSrc, lnkDst := in.linkSlices()
	result, err := ccpm.MakeAoA(in.Activities, lnkSrc, lnkDst, ccpm.WithDiagnostics(sink))
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	out, err := json.MarshalIndent(toAoANetwork(result), "", "  ")
	if err != nil {
		return fmt.Errorf("convert: encode result: %w", err)
	}
	if err := os.WriteFile(outputFile, out, 0644); err != nil {
		return fmt.Errorf("convert: write %s: %w", outputFile, err)
	}

	return nil
}
