package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qiushiyan/hop/internal/config"
	"github.com/qiushiyan/hop/internal/output"
)

var validateStrict bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config file for errors",
	Long: `Parse the config file and report problems.

A file that does not parse is an error. Duplicate URLs, unsupported keys
and colliding hotkeys are reported as warnings; with --strict they fail
the command too.

Examples:
  hop validate
  hop validate --strict --json`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Treat warnings as errors")

	rootCmd.AddCommand(validateCmd)
}

// validateResult is the JSON form of a validation run.
type validateResult struct {
	Valid  bool           `json:"valid"`
	Path   string         `json:"path"`
	Error  string         `json:"error,omitempty"`
	Issues []config.Issue `json:"issues"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	result := validateResult{Path: s.Path(), Issues: []config.Issue{}}

	cfg, loadErr := s.Load()
	if loadErr != nil {
		result.Error = loadErr.Error()
	} else {
		result.Issues = append(result.Issues, config.Validate(cfg)...)
	}
	result.Valid = loadErr == nil && (!validateStrict || len(result.Issues) == 0)

	if jsonOutput {
		if err := output.JSON(result); err != nil {
			return err
		}
	} else {
		for _, issue := range result.Issues {
			output.Warn("%s", issue)
		}
		if result.Valid {
			output.Success("%s is valid", config.CollapseHome(s.Path()))
		}
	}

	switch {
	case loadErr != nil:
		return fmt.Errorf("%s: %w", s.Path(), loadErr)
	case !result.Valid:
		return fmt.Errorf("%d validation issue(s)", len(result.Issues))
	}
	return nil
}
