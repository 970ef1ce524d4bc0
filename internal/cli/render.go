package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumeforge/internal/common"
	"resumeforge/internal/errors"
	"resumeforge/internal/history"
	"resumeforge/internal/templates"
	"resumeforge/internal/types"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [fields-file]",
	Short: "Render a resume from a template and a JSON fields file",
	Long: `Render a resume by merging field values into a named template.
The fields file is a JSON object with keys like name, jobRole, summary,
skills, experience, education, email, phone, location, and links. Missing
fields render as empty strings.

Available templates: ` + strings.Join(templates.Names(), ", ") + `.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var (
	renderOutput   string
	renderTemplate string
	renderDarkMode bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file path (default: stdout)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "modern", "Template name")
	renderCmd.Flags().BoolVar(&renderDarkMode, "dark", false, "Use the dark color scheme")

	_ = renderCmd.RegisterFlagCompletionFunc("template", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return templates.Names(), cobra.ShellCompDirectiveNoFileComp
	})
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	fileProcessor := common.NewFileProcessor(logger, cfg.App.MaxFileSize)
	contents, err := fileProcessor.ValidateAndReadFiles(args[0])
	if err != nil {
		return err
	}

	var fields types.ResumeFields
	if err := json.Unmarshal([]byte(contents[0]), &fields); err != nil {
		return errors.NewValidationError(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("fields file %s is not a valid JSON object", args[0]), err)
	}

	logger.Info("Rendering resume",
		"template", renderTemplate,
		"dark_mode", renderDarkMode)

	resumeText, err := templates.Render(renderTemplate, fields, renderDarkMode)
	if err != nil {
		return err
	}

	history.NewLog(cfg.History, logger).Append(fields, renderTemplate, resumeText)

	if renderOutput != "" {
		if err := fileProcessor.WriteFile(renderOutput, resumeText); err != nil {
			return err
		}
		logger.Info("Resume written", "file", renderOutput)
		return nil
	}

	fmt.Print(resumeText)
	if !strings.HasSuffix(resumeText, "\n") {
		fmt.Println()
	}
	return nil
}
