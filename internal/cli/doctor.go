package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qiushiyan/hop/internal/config"
	"github.com/qiushiyan/hop/internal/output"
	"github.com/qiushiyan/hop/internal/platform"
	"github.com/qiushiyan/hop/internal/watcher"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the config file and system integration",
	Long: `Run diagnostic checks on the hop configuration and the system.

Checks:
  - Config directory is writable
  - Config file exists, parses and validates
  - URL opener is installed
  - A default https handler is set (Linux and BSD)
  - Config directory can be watched for live reload

Doctor never creates or rewrites the config file.

Examples:
  hop doctor
  hop doctor --json`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// CheckResult represents a single diagnostic check result
type CheckResult struct {
	Status  string `json:"status"` // "success", "warning", "error"
	Message string `json:"message"`
}

// DoctorReport contains all diagnostic results
type DoctorReport struct {
	Platform      string         `json:"platform"`
	Path          string         `json:"path"`
	System        []CheckResult  `json:"system"`
	Configuration []CheckResult  `json:"configuration"`
	Issues        []config.Issue `json:"issues"`
}

// Healthy reports whether no check failed.
func (r *DoctorReport) Healthy() bool {
	for _, checks := range [][]CheckResult{r.System, r.Configuration} {
		for _, c := range checks {
			if c.Status == output.StatusError {
				return false
			}
		}
	}
	return true
}

func runDoctor(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	report := &DoctorReport{
		Platform: platform.Platform(),
		Path:     s.Path(),
		Issues:   []config.Issue{},
	}
	report.System = checkSystem(s.Path())
	report.Configuration, report.Issues = checkConfiguration(s)

	if jsonOutput {
		return output.JSON(report)
	}

	displayDoctorResults(report)
	return nil
}

func checkSystem(path string) []CheckResult {
	results := []CheckResult{}
	dir := filepath.Dir(path)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		results = append(results, CheckResult{
			Status:  output.StatusWarning,
			Message: fmt.Sprintf("Config directory %s does not exist yet (created on first run)", config.CollapseHome(dir)),
		})
	} else if platform.DirWritable(dir) {
		results = append(results, CheckResult{
			Status:  output.StatusSuccess,
			Message: fmt.Sprintf("Config directory writable (%s)", config.CollapseHome(dir)),
		})
	} else {
		results = append(results, CheckResult{
			Status:  output.StatusError,
			Message: fmt.Sprintf("Config directory not writable (%s)", config.CollapseHome(dir)),
		})
	}

	if op, err := platform.DetectOpener(); err != nil {
		results = append(results, CheckResult{
			Status:  output.StatusError,
			Message: err.Error(),
		})
	} else if _, err := deps.Executor.LookPath(op.Name); err != nil {
		results = append(results, CheckResult{
			Status:  output.StatusError,
			Message: fmt.Sprintf("URL opener %s not found", op.Name),
		})
	} else {
		results = append(results, CheckResult{
			Status:  output.StatusSuccess,
			Message: fmt.Sprintf("URL opener %s installed", op.Name),
		})
	}

	if name, qargs, ok := platform.HandlerQuery(runtime.GOOS); ok {
		out, err := deps.Executor.Execute(name, qargs...)
		handler := strings.TrimSpace(string(out))
		if err != nil || handler == "" {
			results = append(results, CheckResult{
				Status:  output.StatusWarning,
				Message: "No default handler for https links, opening URLs may fail",
			})
		} else {
			results = append(results, CheckResult{
				Status:  output.StatusSuccess,
				Message: fmt.Sprintf("Default https handler: %s", handler),
			})
		}
	}

	if _, err := os.Stat(dir); err == nil {
		w := watcher.New(path, func() {})
		if err := w.Start(); err != nil {
			results = append(results, CheckResult{
				Status:  output.StatusWarning,
				Message: fmt.Sprintf("Live reload unavailable: %v", err),
			})
		} else {
			_ = w.Close()
			results = append(results, CheckResult{
				Status:  output.StatusSuccess,
				Message: "Live reload available",
			})
		}
	}

	return results
}

func checkConfiguration(s ConfigStore) ([]CheckResult, []config.Issue) {
	results := []CheckResult{}
	issues := []config.Issue{}
	display := config.CollapseHome(s.Path())

	if _, err := os.Stat(s.Path()); err != nil {
		results = append(results, CheckResult{
			Status:  output.StatusWarning,
			Message: fmt.Sprintf("Config file not found (%s), run 'hop init'", display),
		})
		return results, issues
	}
	results = append(results, CheckResult{
		Status:  output.StatusSuccess,
		Message: fmt.Sprintf("Config file exists (%s)", display),
	})

	cfg, err := s.Load()
	if err != nil {
		results = append(results, CheckResult{
			Status:  output.StatusError,
			Message: err.Error(),
		})
		return results, issues
	}

	results = append(results, CheckResult{
		Status:  output.StatusSuccess,
		Message: fmt.Sprintf("Config parsed (%d categories, %d links)", len(cfg.Categories), len(cfg.AllLinks())),
	})

	if cfg.GlobalHotkey == nil {
		results = append(results, CheckResult{
			Status:  output.StatusWarning,
			Message: "No global hotkey, the panel can only be opened from the menu",
		})
	}

	issues = append(issues, config.Validate(cfg)...)
	if len(issues) == 0 {
		results = append(results, CheckResult{
			Status:  output.StatusSuccess,
			Message: "No validation issues",
		})
	} else {
		results = append(results, CheckResult{
			Status:  output.StatusWarning,
			Message: fmt.Sprintf("%d validation issue(s)", len(issues)),
		})
	}

	return results, issues
}

func displayDoctorResults(report *DoctorReport) {
	output.Header("Checking system (%s)...", report.Platform)
	for _, check := range report.System {
		output.Check(check.Status, "%s", check.Message)
	}
	output.Print("")

	output.Header("Checking configuration...")
	for _, check := range report.Configuration {
		output.Check(check.Status, "%s", check.Message)
	}
	for _, issue := range report.Issues {
		output.Print("    %s", issue)
	}
}
