package cli

import (
	"fmt"
	"strings"

	"resumeforge/internal/common"
	"resumeforge/internal/export"
	"resumeforge/internal/utils"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [resume-file]",
	Short: "Export resume text to txt, html, docx, or pdf",
	Long: `Export rendered resume text to a document file. The format is taken
from --format, or inferred from the output file extension when --format is
omitted. If the requested format's backend is unavailable the export degrades
to plain text instead of failing.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var (
	exportOutput   string
	exportFormat   string
	exportDarkMode bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (default: resume.<format>)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Export format: txt, html, docx, or pdf")
	exportCmd.Flags().BoolVar(&exportDarkMode, "dark", false, "Use the dark color scheme for HTML export")

	_ = exportCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		formats := export.Formats()
		names := make([]string, len(formats))
		for i, f := range formats {
			names[i] = string(f)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	fileProcessor := common.NewFileProcessor(logger, cfg.App.MaxFileSize)
	contents, err := fileProcessor.ValidateAndReadFiles(args[0])
	if err != nil {
		return err
	}

	formatName := exportFormat
	if formatName == "" && exportOutput != "" {
		formatName = strings.TrimPrefix(utils.GetFileExtension(exportOutput), ".")
	}
	if formatName == "" {
		formatName = "txt"
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	logger.Info("Starting resume export",
		"format", string(format),
		"output", exportOutput)

	exporter := export.New(logger)
	path, written, err := exporter.ExportWithFallback(contents[0], export.Options{
		Format:   format,
		Path:     exportOutput,
		DarkMode: exportDarkMode,
	})
	if err != nil {
		return fmt.Errorf("failed to export resume: %w", err)
	}

	if written != format {
		fmt.Printf("Export format %s unavailable, wrote plain text instead\n", format)
	}
	fmt.Printf("Resume exported to %s\n", path)
	logger.Info("Resume export completed successfully",
		"path", path, "format", string(written))
	return nil
}
