package types

// ProfileKey identifies a profile declared under the root profiles mapping.
type ProfileKey string

// ProfilePath identifies the dependency set a profile matches against.
type ProfilePath string

const (
	// DefaultProfilePath selects the main dependency set.
	DefaultProfilePath ProfilePath = ":default"
	// ProfilePathUnset marks a profile definition that does not supply a path.
	ProfilePathUnset ProfilePath = ""
)
