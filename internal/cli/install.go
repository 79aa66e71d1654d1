package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/csn-tools/etiqsetup/internal/engine"
	"github.com/csn-tools/etiqsetup/internal/i18n"
)

var (
	installRoot    string
	installPackage string
	installSilent  bool
	installTasks   []string
	installLocale  string
	installDryRun  bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install or upgrade Etiquettes CSN for the current user",
	Long: `Install (or upgrade) the packaged application into the per-user install
root.

The run provisions the required directories, deletes the previous
install's local database so the new version regenerates it, stages the
executable and template assets, and optionally creates a desktop
shortcut. Unless --silent is given, the application is launched at the
end of a successful run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		msgs := i18n.NewCatalog(installLocale)

		pkgDir, err := resolvePackageDir(installPackage)
		if err != nil {
			return err
		}

		release, err := acquireLock()
		if err != nil {
			return err
		}
		defer release()

		eng := newEngine()
		req := &engine.InstallRequest{
			PackageDir:    pkgDir,
			RootOverride:  installRoot,
			Silent:        installSilent,
			SelectedTasks: installTasks,
			DryRun:        installDryRun,
		}

		result, err := eng.Install(context.Background(), req)
		if err != nil {
			if result != nil && result.FailedStep != "" {
				step := msgs.Get("step." + result.FailedStep)
				if errors.Is(err, engine.ErrDestinationLocked) {
					PrintWarning("Close the running application and retry.")
				}
				return errors.New(msgs.Getf("install.failed_step", step, err))
			}
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if installDryRun {
			PrintSection("Dry Run")
			PrintInfo(msgs.Getf("install.dry_run", len(result.Plan.Operations)))
			ops := make([]string, 0, len(result.Plan.Operations))
			for _, op := range result.Plan.Operations {
				ops = append(ops, fmt.Sprintf("%s: %s", op.Type, op.RelPath))
			}
			PrintList(ops, 1)
			return nil
		}

		PrintSuccess(msgs.Getf("install.success", result.Receipt.AppName, result.Root))
		PrintLabelValue("Staged", PrintCount(len(result.Staged), "file", "files"))
		if len(result.Skipped) > 0 {
			PrintLabelValue("Skipped", PrintCount(len(result.Skipped), "file", "files"))
		}
		if result.Launched {
			PrintInfo(msgs.Get("install.launching"))
		}
		if len(result.Warnings) > 0 {
			PrintWarning(msgs.Get("install.warnings"))
			PrintList(result.Warnings, 1)
		}
		return nil
	},
}

// resolvePackageDir defaults the package directory to the directory the
// installer binary runs from, which is where the payload ships.
func resolvePackageDir(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	exe, err := os.Executable()
	if err != nil {
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			return "", fmt.Errorf("failed to resolve package directory: %w", err)
		}
		return cwd, nil
	}
	return filepath.Dir(exe), nil
}

func init() {
	installCmd.Flags().StringVar(&installRoot, "root", "", "Override the install root (default: per-user data directory)")
	installCmd.Flags().StringVar(&installPackage, "package", "", "Package directory holding the payload (default: installer directory)")
	installCmd.Flags().BoolVar(&installSilent, "silent", false, "Non-interactive run: no post-install launch")
	installCmd.Flags().StringSliceVar(&installTasks, "tasks", nil, "Optional tasks to enable (e.g. desktopicon)")
	installCmd.Flags().StringVar(&installLocale, "locale", i18n.DefaultLocale, "Message locale")
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "Show what would be done without doing it")
}
