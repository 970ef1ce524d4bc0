package cli

import (
	"context"

	"resumeforge/internal/ai"
	"resumeforge/internal/config"
	"resumeforge/internal/errors"

	"github.com/spf13/cobra"
)

// Define custom private types for context keys.
type configKeyType struct{}
type loggerKeyType struct{}

// Use variables of these types as the keys.
var configKey = configKeyType{}
var loggerKey = loggerKeyType{}

var rootCmd = &cobra.Command{
	Use:   "resumeforge",
	Short: "A CLI toolkit for authoring and polishing resumes",
	Long: `Resumeforge renders resumes from templates, fixes spelling and weak
phrasing, scores resumes against ATS heuristics, extracts keywords from job
descriptions, and exports the result to text, HTML, DOCX, or PDF. AI-backed
enhancement and suggestions are optional; every AI path degrades to a
deterministic fallback when no API key is configured.`,
}

func Execute(ctx context.Context, cfg *config.Config, logger *errors.Logger) error {
	// Attach the config and logger to the context, making them available to all subcommands
	ctx = context.WithValue(ctx, configKey, cfg)
	ctx = context.WithValue(ctx, loggerKey, logger)
	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

// getConfigFromContext is a helper function to get config from context
func getConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	panic("config not found in context") // Should not happen if properly initialized
}

// getLoggerFromContext is a helper function to get logger from context
func getLoggerFromContext(ctx context.Context) *errors.Logger {
	if logger, ok := ctx.Value(loggerKey).(*errors.Logger); ok {
		return logger
	}
	panic("logger not found in context") // Should not happen if properly initialized
}

// aiProviderFor builds the AI provider for one operation. A missing key or
// provider failure returns nil; the operation packages treat a nil provider
// as "use the deterministic fallback".
func aiProviderFor(opCfg config.OperationAIConfig, operation string, logger *errors.Logger) ai.AIProvider {
	service, err := ai.NewService(&opCfg, operation, logger)
	if err != nil {
		logger.Debug("AI unavailable, operation will use fallback",
			"operation", operation, "error", err)
		return nil
	}
	return service.Provider
}

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(enhanceCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}
