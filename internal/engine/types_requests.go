package engine

// InstallRequest represents a request to install or upgrade the
// application.
type InstallRequest struct {
	// PackageDir is the directory holding the payload and its manifest
	PackageDir string

	// RootOverride forces the install root (normally resolved to the
	// per-user data directory)
	RootOverride string

	// Silent marks the run as non-interactive: no post-install launch
	Silent bool

	// SelectedTasks is the set of optional task IDs selected for this run
	SelectedTasks []string

	// DryRun performs planning only without making changes
	DryRun bool
}

// UninstallRequest represents a request to remove an existing install.
type UninstallRequest struct {
	// PackageDir is the directory holding the manifest (for the app
	// identity); empty uses the built-in manifest
	PackageDir string

	// RootOverride forces the install root
	RootOverride string
}

// StatusRequest represents a request for the state of an install root.
type StatusRequest struct {
	// PackageDir is the directory holding the manifest (for the app
	// identity); empty uses the built-in manifest
	PackageDir string

	// RootOverride forces the install root
	RootOverride string
}
