package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/csn-tools/etiqsetup/internal/engine"
	"github.com/csn-tools/etiqsetup/internal/i18n"
)

var (
	statusRoot    string
	statusPackage string
	statusLocale  string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the installed version and staged files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		msgs := i18n.NewCatalog(statusLocale)

		pkgDir, err := resolvePackageDir(statusPackage)
		if err != nil {
			return err
		}

		eng := newEngine()
		result, err := eng.Status(context.Background(), &engine.StatusRequest{
			PackageDir:   pkgDir,
			RootOverride: statusRoot,
		})
		if err != nil {
			if errors.Is(err, engine.ErrNotInstalled) {
				return errors.New(msgs.Getf("status.not_installed", "Etiquettes CSN"))
			}
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		rec := result.Receipt
		PrintInfo(msgs.Getf("status.installed", rec.AppName, rec.Version, rec.InstalledAt.Format("2006-01-02")))
		PrintLabelValue("Root", result.Root)
		PrintLabelValue("Publisher", rec.Publisher)
		PrintLabelValue("Files", PrintCount(len(rec.Files), "entry", "entries"))
		if rec.ShortcutCreated {
			PrintLabelValue("Shortcut", "desktop")
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().StringVar(&statusRoot, "root", "", "Override the install root")
	statusCmd.Flags().StringVar(&statusPackage, "package", "", "Package directory holding the manifest")
	statusCmd.Flags().StringVar(&statusLocale, "locale", i18n.DefaultLocale, "Message locale")
}
