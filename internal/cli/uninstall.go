package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/csn-tools/etiqsetup/internal/engine"
	"github.com/csn-tools/etiqsetup/internal/i18n"
)

var (
	uninstallRoot    string
	uninstallPackage string
	uninstallLocale  string
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the current user's Etiquettes CSN install",
	Long: `Remove the install root, including the application, its templates, and
any local data, along with the desktop shortcut if one was created.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		msgs := i18n.NewCatalog(uninstallLocale)

		pkgDir, err := resolvePackageDir(uninstallPackage)
		if err != nil {
			return err
		}

		release, err := acquireLock()
		if err != nil {
			return err
		}
		defer release()

		eng := newEngine()
		result, err := eng.Uninstall(context.Background(), &engine.UninstallRequest{
			PackageDir:   pkgDir,
			RootOverride: uninstallRoot,
		})
		if err != nil {
			if errors.Is(err, engine.ErrNotInstalled) {
				return errors.New(msgs.Get("uninstall.not_found"))
			}
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(msgs.Getf("uninstall.success", "Etiquettes CSN"))
		PrintLabelValue("Removed", result.Root)
		return nil
	},
}

func init() {
	uninstallCmd.Flags().StringVar(&uninstallRoot, "root", "", "Override the install root")
	uninstallCmd.Flags().StringVar(&uninstallPackage, "package", "", "Package directory holding the manifest")
	uninstallCmd.Flags().StringVar(&uninstallLocale, "locale", i18n.DefaultLocale, "Message locale")
}
