package types

// Invocation is what a caller applies after resolution: the matched alias
// option groups merged in order, with the profiles' extra options on top.
type Invocation struct {
	Aliases []AliasKey     `yaml:"aliases"`
	Options map[string]any `yaml:"options"`
}

// ResolutionOutput is the document written by the resolve command.
type ResolutionOutput struct {
	Profiles   []ProfileKey  `yaml:"profiles"`
	Processed  ProcessedDeps `yaml:"processed"`
	Invocation Invocation    `yaml:"invocation"`
}

// ProfileSummary describes one declared profile.
type ProfileSummary struct {
	Key       ProfileKey
	Path      ProfilePath
	AliasNS   []string
	AliasName []string
	ExtraOpts []string
}
