package types

// ProfileDefinition is a named filter and options bundle declared under the
// root profiles mapping. Every field is optional.
type ProfileDefinition struct {
	Path      ProfilePath    `yaml:"path,omitempty"`
	AliasNS   []string       `yaml:"alias_ns,omitempty"`
	AliasName []string       `yaml:"alias_name,omitempty"`
	ExtraOpts map[string]any `yaml:"extra_opts,omitempty"`
}

// DepsSet is one dependency configuration. Keys other than aliases and
// profiles are carried through untouched.
type DepsSet struct {
	Aliases  Aliases                          `yaml:"aliases"`
	Profiles map[ProfileKey]ProfileDefinition `yaml:"profiles,omitempty"`
	Extra    map[string]any                   `yaml:",inline"`
}

// CombinedProfile accumulates the requested profiles into a single filter.
type CombinedProfile struct {
	Path      ProfilePath
	AliasNS   []string
	AliasName []string
	ExtraOpts map[string]any
}

// NewCombinedProfile returns the starting accumulator: default path, no
// matchers and no extra options.
func NewCombinedProfile() CombinedProfile {
	return CombinedProfile{
		Path:      DefaultProfilePath,
		AliasNS:   []string{},
		AliasName: []string{},
		ExtraOpts: map[string]any{},
	}
}

// HasMatcher reports whether at least one matcher dimension narrows the
// alias selection.
func (p CombinedProfile) HasMatcher() bool {
	return len(p.AliasNS) > 0 || len(p.AliasName) > 0
}

// ProcessedDeps is the configuration produced by the upstream loading pass,
// annotated by profile resolution with the matched aliases and merged
// extra options.
type ProcessedDeps struct {
	MainDeps       DepsSet                 `yaml:"main_deps"`
	RootDeps       DepsSet                 `yaml:"root_deps"`
	SubrepoDeps    map[ProfilePath]DepsSet `yaml:"subrepo_deps,omitempty"`
	SelectedPath   ProfilePath             `yaml:"selected_path,omitempty"`
	MatchedAliases []AliasKey              `yaml:"matched_aliases"`
	ExtraOpts      map[string]any          `yaml:"extra_opts"`
}
