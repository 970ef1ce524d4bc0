package cli

import (
	"context"
	"fmt"

	"resumeforge/internal/ats"
	"resumeforge/internal/common"
	"resumeforge/internal/keywords"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume-file]",
	Short: "Score a resume against ATS heuristics",
	Long: `Score a resume the way an applicant tracking system would: length,
formatting signals, section coverage, and contact details each contribute to
an overall score out of 100, with suggestions for anything that falls short.

With --keywords-file, keywords are extracted from the given job description
and the resume is additionally scored on keyword coverage.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var (
	scoreConfig       common.CommandConfig
	scoreKeywordsFile string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	scoreCmd.Flags().StringVar(&scoreKeywordsFile, "keywords-file", "", "Job description file for keyword coverage scoring")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	var jobKeywords []string
	if scoreKeywordsFile != "" {
		fileProcessor := common.NewFileProcessor(logger, cfg.App.MaxFileSize)
		contents, err := fileProcessor.ValidateAndReadFiles(scoreKeywordsFile)
		if err != nil {
			return err
		}
		jobKeywords = keywords.ExtractHeuristic(contents[0])
	}

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(input string, cfg common.CommandConfig) {
		logger.Info("Starting resume scoring",
			"resume_chars", len(input),
			"job_keywords", len(jobKeywords),
			"output_format", cfg.OutputFormat)
	}

	scoreOperation := func(ctx context.Context, resumeText string) (ats.ScoreReport, error) {
		return ats.Score(resumeText, jobKeywords), nil
	}

	scoreConfig.MaxFileSize = cfg.App.MaxFileSize
	err := common.RunFileCommand(
		cmd.Context(),
		logger,
		scoreConfig,
		args,
		createInput,
		scoreOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	logger.Info("Resume scoring completed successfully")
	return nil
}
