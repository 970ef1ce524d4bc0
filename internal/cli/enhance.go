package cli

import (
	"context"
	"fmt"

	"resumeforge/internal/ai"
	"resumeforge/internal/common"
	"resumeforge/internal/enhance"

	"github.com/spf13/cobra"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance [content-file]",
	Short: "Fix spelling, weak phrasing, and cliches in resume content",
	Long: `Enhance resume content by correcting common misspellings, replacing
weak words and cliches with stronger alternatives, and upgrading bullet
points to start with action verbs.

With --ai, the corrected text is additionally rewritten by the configured AI
provider for the given job role. When no AI is configured the deterministic
result is returned unchanged.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if enhanceConfig.OutputFormat == "" {
			enhanceConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(enhanceConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runEnhance,
}

var (
	enhanceConfig common.CommandConfig
	enhanceUseAI  bool
	enhanceRole   string
)

func init() {
	enhanceCmd.Flags().StringVarP(&enhanceConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	enhanceCmd.Flags().StringVar(&enhanceConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	enhanceCmd.Flags().BoolVar(&enhanceUseAI, "ai", false, "Rewrite the corrected text with the configured AI provider")
	enhanceCmd.Flags().StringVar(&enhanceRole, "role", "", "Target job role for AI enhancement")

	// Add completion for format flag
	_ = enhanceCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runEnhance(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	var provider ai.AIProvider
	if enhanceUseAI {
		provider = aiProviderFor(cfg.GetEnhanceConfig(), "enhance", logger)
	}
	enhancer := enhance.NewEnhancer(provider, logger)

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(input string, cfg common.CommandConfig) {
		logger.Info("Starting content enhancement",
			"content_chars", len(input),
			"use_ai", enhanceUseAI,
			"output_format", cfg.OutputFormat)
	}

	enhanceOperation := func(ctx context.Context, content string) (enhance.Result, error) {
		return enhancer.Run(ctx, content, enhanceRole, enhanceUseAI), nil
	}

	enhanceConfig.MaxFileSize = cfg.App.MaxFileSize
	err := common.RunFileCommand(
		cmd.Context(),
		logger,
		enhanceConfig,
		args,
		createInput,
		enhanceOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to enhance content: %w", err)
	}
	logger.Info("Content enhancement completed successfully")
	return nil
}
