package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssunify"
	"github.com/yacobolo/cssunify/internal/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the consolidation pipeline against the generated site",
	Long: `Scan the matched pages for stylesheet links, run the CSS usage
analyzer over the whole page set, write the consolidated stylesheet, and
rewrite every page to reference it. Intended to run once per site build,
from the generator's post-write hook.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.String("root", ".", "Output root directory of the generated site")
	f.StringSlice("files", nil, "Glob patterns for pages to scan, relative to root")
	f.StringSlice("exclude", nil, "Gitignore-style patterns removing matched pages")
	f.String("destination", "", "Root-relative path for the consolidated stylesheet")
	f.StringSlice("media", nil, "CSS media types passed through to the analyzer")
	f.Int("timeout", 0, "Analyzer timeout in milliseconds (0 = analyzer default)")
	f.String("tool", "", "CSS usage analyzer executable")
	f.Int("concurrency", 0, "Parallel page workers (0 = default)")
}

func runRun(_ *cobra.Command, _ []string) error {
	cfg := buildRunConfig()

	result, err := cssunify.Run(cfg)
	if err != nil {
		return err
	}

	if getBool("quiet", false) {
		return nil
	}

	savings := report.CollectSavings(cfg.OutputRoot, result.Stylesheets)
	report.PrintSummary(os.Stdout, result, savings, report.Options{
		UseColors: report.ShouldUseColors(getBool("color", false)),
		Verbose:   cfg.Verbose,
	})

	return nil
}
