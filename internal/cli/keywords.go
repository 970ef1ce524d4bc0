package cli

import (
	"context"
	"fmt"

	"resumeforge/internal/common"
	"resumeforge/internal/keywords"
	"resumeforge/internal/types"

	"github.com/spf13/cobra"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords [job-description-file]",
	Short: "Extract keywords from a job description",
	Long: `Extract the most relevant keywords from a job description. When an AI
provider is configured the extraction is AI-backed; otherwise a deterministic
frequency-based heuristic is used. The heuristic also serves as the fallback
whenever the AI call fails.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if keywordsConfig.OutputFormat == "" {
			keywordsConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(keywordsConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runKeywords,
}

var keywordsConfig common.CommandConfig

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	keywordsCmd.Flags().StringVar(&keywordsConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = keywordsCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runKeywords(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	provider := aiProviderFor(cfg.GetKeywordsConfig(), "keywords", logger)
	extractor := keywords.NewExtractor(provider, logger)

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(input string, cfg common.CommandConfig) {
		logger.Info("Starting keyword extraction",
			"job_chars", len(input),
			"output_format", cfg.OutputFormat)
	}

	keywordsOperation := func(ctx context.Context, jobDescription string) (types.SuggestKeywordsOutput, error) {
		extracted := extractor.Extract(ctx, jobDescription)
		return types.SuggestKeywordsOutput{Keywords: extracted}, nil
	}

	keywordsConfig.MaxFileSize = cfg.App.MaxFileSize
	err := common.RunFileCommand(
		cmd.Context(),
		logger,
		keywordsConfig,
		args,
		createInput,
		keywordsOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to extract keywords: %w", err)
	}
	logger.Info("Keyword extraction completed successfully")
	return nil
}
