// Package main provides the CLI entry point for csv2xlsx-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/csv2xlsx-go/pkg/csv2xlsx"
	"github.com/ukaji3/csv2xlsx-go/pkg/csv2xlsx/models"
)

var (
	outputPath   string
	manifestPath string
	names        []string
	colors       []string
	quiet        bool
	verbose      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csv2xlsx [file.csv...]",
		Short: "Combine CSV files into one Excel workbook",
		Long: `csv2xlsx-go writes each CSV file to its own worksheet of a single xlsx
workbook. The first record of every file becomes the header row; numeric
fields are stored as numbers and everything else as text.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output xlsx path (required unless set by the manifest)")
	rootCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "TOML manifest listing sheets")
	rootCmd.Flags().StringSliceVarP(&names, "name", "n", nil, "Sheet name for each file, in order (default: file name)")
	rootCmd.Flags().StringSliceVarP(&colors, "color", "c", nil, "Tab color for each file, in order (name or RRGGBB)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only report warnings and errors")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.MarkFlagsMutuallyExclusive("quiet", "verbose")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	opts := csv2xlsx.DefaultOptions()
	switch {
	case quiet:
		opts.Mode = csv2xlsx.ModeQuiet
	case verbose:
		opts.Mode = csv2xlsx.ModeVerbose
	}
	opts.Logger = csv2xlsx.NewLogger(cmd.OutOrStdout(), opts.Level())

	var descriptors []models.SheetDescriptor
	output := outputPath
	if manifestPath != "" {
		m, err := csv2xlsx.LoadManifest(manifestPath)
		if err != nil {
			return err
		}
		descriptors = m.Descriptors()
		if output == "" {
			output = m.Output
		}
	}

	fileSheets, err := descriptorsFromArgs(args, names, colors)
	if err != nil {
		return err
	}
	descriptors = append(descriptors, fileSheets...)

	if len(descriptors) == 0 {
		return fmt.Errorf("no CSV files given")
	}
	if output == "" {
		return fmt.Errorf("output path required (-o)")
	}

	_, err = csv2xlsx.Build(descriptors, output, opts)
	return err
}

// descriptorsFromArgs pairs each CSV path with the name and color at the same position.
func descriptorsFromArgs(paths, names, colors []string) ([]models.SheetDescriptor, error) {
	if len(names) > len(paths) {
		return nil, fmt.Errorf("%d sheet names given for %d files", len(names), len(paths))
	}
	if len(colors) > len(paths) {
		return nil, fmt.Errorf("%d tab colors given for %d files", len(colors), len(paths))
	}

	descriptors := make([]models.SheetDescriptor, len(paths))
	for i, path := range paths {
		d := models.SheetDescriptor{Path: path, Name: csv2xlsx.DefaultSheetName(path)}
		if i < len(names) && names[i] != "" {
			d.Name = names[i]
		}
		if i < len(colors) {
			d.TabColor = colors[i]
		}
		descriptors[i] = d
	}
	return descriptors, nil
}
