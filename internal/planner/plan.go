package planner

// InstallPlan represents the ordered work of a single install or upgrade
// run. Operations are executed strictly in order; directories are
// provisioned first, stale state is purged before any file is staged, and
// the shortcut is resolved last.
type InstallPlan struct {
	// Operations is the ordered list of operations to execute
	Operations []Operation
}

// Operation represents a single step to execute.
type Operation struct {
	// Type is the operation type
	Type string

	// SourcePath is the packaged source path (absolute, staging only)
	SourcePath string

	// DestPath is the destination path (absolute, under the install root)
	DestPath string

	// RelPath is the path relative to the install root (for reporting
	// and receipt tracking)
	RelPath string

	// Policy is the overwrite policy for staging operations
	Policy string

	// DisplayName is the shortcut display name (shortcut operations only)
	DisplayName string
}

// Operation type constants
const (
	OpEnsureDir      = "ensure_dir"
	OpPurge          = "purge"
	OpStageFile      = "stage_file"
	OpStageTree      = "stage_tree"
	OpCreateShortcut = "create_shortcut"
)

// NewInstallPlan creates a new empty InstallPlan.
func NewInstallPlan() *InstallPlan {
	return &InstallPlan{
		Operations: []Operation{},
	}
}

// AddOperation appends an operation to the plan.
func (p *InstallPlan) AddOperation(op Operation) {
	p.Operations = append(p.Operations, op)
}

// CountByType returns the number of operations of the given type.
func (p *InstallPlan) CountByType(opType string) int {
	count := 0
	for _, op := range p.Operations {
		if op.Type == opType {
			count++
		}
	}
	return count
}
