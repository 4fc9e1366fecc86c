package ports

import "alias-profiles/internal/types"

// ProjectConfigPort loads a project configuration and splits it into the
// main, root and subrepo dependency sets.
type ProjectConfigPort interface {
	// LoadProject reads the root deps file at path. mainPath selects the
	// subrepo acting as main deps; the default path selects the root.
	LoadProject(path string, mainPath types.ProfilePath) (types.ProcessedDeps, error)
}
