package cli

import (
	"fmt"

	"resumeforge/internal/common"
	"resumeforge/internal/suggest"
	"resumeforge/internal/types"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest skills, a summary, and experience bullets for a job role",
	Long: `Suggest resume content for a job role: a skills list, a professional
summary, and experience bullet points. When an AI provider is configured the
suggestions are generated; otherwise curated role-specific tables are used.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if suggestConfig.OutputFormat == "" {
			suggestConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(suggestConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runSuggest,
}

var (
	suggestConfig  common.CommandConfig
	suggestRole    string
	suggestCompany string
	suggestYears   int
	suggestBullets int
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	suggestCmd.Flags().StringVar(&suggestConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	suggestCmd.Flags().StringVar(&suggestRole, "role", "", "Target job role (required)")
	suggestCmd.Flags().StringVar(&suggestCompany, "company", "", "Target company name")
	suggestCmd.Flags().IntVar(&suggestYears, "years", 0, "Years of experience")
	suggestCmd.Flags().IntVar(&suggestBullets, "bullets", 0, "Number of experience bullet points")
	_ = suggestCmd.MarkFlagRequired("role")

	// Add completion for format flag
	_ = suggestCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	provider := aiProviderFor(cfg.GetSuggestConfig(), "suggest", logger)
	suggester := suggest.NewSuggester(provider, logger)

	logger.Info("Starting content suggestion",
		"job_role", suggestRole,
		"output_format", suggestConfig.OutputFormat)

	result := suggester.Suggest(cmd.Context(), types.SuggestContentInput{
		JobRole:         suggestRole,
		Company:         suggestCompany,
		YearsExperience: suggestYears,
		BulletCount:     suggestBullets,
	})

	outputHandler := common.NewOutputHandler(logger)
	if err := outputHandler.HandleOutput(result, suggestConfig); err != nil {
		return fmt.Errorf("failed to produce suggestions: %w", err)
	}
	logger.Info("Content suggestion completed successfully")
	return nil
}
