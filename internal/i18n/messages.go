// Package i18n provides the localized installer messages.
//
// The shipped configuration is French-only; an English table exists as
// the fallback for unknown locales and missing keys. This is a plain
// lookup table rather than a translation framework: the catalog is tiny
// and fixed at build time.
package i18n

import "fmt"

// DefaultLocale is the locale shipped with the Etiquettes CSN package.
const DefaultLocale = "fr"

// Catalog resolves message keys for one locale.
type Catalog struct {
	locale string
}

// NewCatalog creates a catalog for the given locale. Unknown locales fall
// back to English.
func NewCatalog(locale string) *Catalog {
	if _, ok := messages[locale]; !ok {
		locale = "en"
	}
	return &Catalog{locale: locale}
}

// Locale returns the resolved locale.
func (c *Catalog) Locale() string {
	return c.locale
}

// Get returns the message for key, falling back to English and finally to
// the key itself.
func (c *Catalog) Get(key string) string {
	if msg, ok := messages[c.locale][key]; ok {
		return msg
	}
	if msg, ok := messages["en"][key]; ok {
		return msg
	}
	return key
}

// Getf returns the formatted message for key.
func (c *Catalog) Getf(key string, args ...interface{}) string {
	return fmt.Sprintf(c.Get(key), args...)
}

var messages = map[string]map[string]string{
	"fr": {
		"install.start":        "Installation de %s %s...",
		"install.success":      "%s a été installé dans %s",
		"install.dry_run":      "Simulation : %d opérations seraient exécutées",
		"install.failed_step":  "L'installation a échoué à l'étape « %s » : %v",
		"install.launching":    "Lancement de l'application...",
		"install.warnings":     "Installation terminée avec des avertissements :",
		"uninstall.success":    "%s a été désinstallé",
		"uninstall.not_found":  "Aucune installation trouvée",
		"status.not_installed": "%s n'est pas installé",
		"status.installed":     "%s %s installé le %s",
		"step.directories":     "préparation des répertoires",
		"step.migrate":         "suppression des données obsolètes",
		"step.stage":           "copie des fichiers",
		"step.shortcut":        "création du raccourci",
		"step.receipt":         "enregistrement de l'installation",
		"step.launch":          "lancement",
	},
	"en": {
		"install.start":        "Installing %s %s...",
		"install.success":      "%s has been installed to %s",
		"install.dry_run":      "Dry run: %d operations would be executed",
		"install.failed_step":  "Install failed during step %q: %v",
		"install.launching":    "Launching the application...",
		"install.warnings":     "Install completed with warnings:",
		"uninstall.success":    "%s has been uninstalled",
		"uninstall.not_found":  "No existing install found",
		"status.not_installed": "%s is not installed",
		"status.installed":     "%s %s installed on %s",
		"step.directories":     "provisioning directories",
		"step.migrate":         "purging stale state",
		"step.stage":           "staging files",
		"step.shortcut":        "creating shortcut",
		"step.receipt":         "recording the install",
		"step.launch":          "launching",
	},
}
