package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"alias-profiles/internal/ports"
	"alias-profiles/internal/shared"
	"alias-profiles/internal/types"
)

const subreposKey = "subrepos"

type DepsFileAdapter struct{}

func NewDepsFileAdapter() DepsFileAdapter {
	return DepsFileAdapter{}
}

type subreposSection struct {
	Subrepos map[string]string `yaml:"subrepos"`
}

func (a DepsFileAdapter) LoadProject(path string, mainPath types.ProfilePath) (types.ProcessedDeps, error) {
	if strings.TrimSpace(path) == "" {
		return types.ProcessedDeps{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("deps file path is required")
	}
	data, err := readDepsFile(path)
	if err != nil {
		return types.ProcessedDeps{}, err
	}
	root, err := decodeDepsSet(path, data)
	if err != nil {
		return types.ProcessedDeps{}, err
	}
	var section subreposSection
	if err := yaml.Unmarshal(data, &section); err != nil {
		return types.ProcessedDeps{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse subrepos in %s", path)).
			WithCause(err)
	}
	delete(root.Extra, subreposKey)

	subrepos, err := a.loadSubrepos(filepath.Dir(path), section.Subrepos)
	if err != nil {
		return types.ProcessedDeps{}, err
	}

	main := root
	mainPath = shared.NormalizeProfilePath(string(mainPath))
	if mainPath != types.ProfilePathUnset && mainPath != types.DefaultProfilePath {
		selected, ok := subrepos[mainPath]
		if !ok {
			return types.ProcessedDeps{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("unknown main path: %s", mainPath))
		}
		main = selected
	}

	log.Debug().
		Str("path", path).
		Int("aliases", root.Aliases.Len()).
		Int("profiles", len(root.Profiles)).
		Int("subrepos", len(subrepos)).
		Msg("project loaded")
	return types.ProcessedDeps{
		MainDeps:    main,
		RootDeps:    root,
		SubrepoDeps: subrepos,
	}, nil
}

func (a DepsFileAdapter) loadSubrepos(baseDir string, entries map[string]string) (map[types.ProfilePath]types.DepsSet, error) {
	subrepos := map[types.ProfilePath]types.DepsSet{}
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		key := shared.NormalizeProfilePath(name)
		if key == types.ProfilePathUnset {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("subrepo name must not be empty")
		}
		if key == types.DefaultProfilePath {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("subrepo name %s is reserved for the main deps", name))
		}
		if _, dup := subrepos[key]; dup {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("duplicate subrepo: %s", key))
		}
		file := strings.TrimSpace(entries[name])
		if file == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("subrepo %s has no deps file", key))
		}
		if !filepath.IsAbs(file) {
			file = filepath.Join(baseDir, file)
		}
		data, err := readDepsFile(file)
		if err != nil {
			return nil, err
		}
		deps, err := decodeDepsSet(file, data)
		if err != nil {
			return nil, err
		}
		subrepos[key] = deps
	}
	return subrepos, nil
}

func readDepsFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("deps file not found: %s", path)).
			WithCause(err)
	}
	return data, nil
}

func decodeDepsSet(path string, data []byte) (types.DepsSet, error) {
	var deps types.DepsSet
	if err := yaml.Unmarshal(data, &deps); err != nil {
		return types.DepsSet{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse deps yaml: %s", path)).
			WithCause(err)
	}
	profiles, err := normalizeProfiles(deps.Profiles)
	if err != nil {
		return types.DepsSet{}, err
	}
	deps.Profiles = profiles
	return deps, nil
}

func normalizeProfiles(profiles map[types.ProfileKey]types.ProfileDefinition) (map[types.ProfileKey]types.ProfileDefinition, error) {
	if profiles == nil {
		return nil, nil
	}
	out := make(map[types.ProfileKey]types.ProfileDefinition, len(profiles))
	for key, profile := range profiles {
		normalized := types.ProfileKey(shared.NormalizeKeyword(string(key)))
		if normalized == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("profile key must not be empty")
		}
		if _, dup := out[normalized]; dup {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("duplicate profile: %s", normalized))
		}
		out[normalized] = normalizeProfile(profile)
	}
	return out, nil
}

func normalizeProfile(profile types.ProfileDefinition) types.ProfileDefinition {
	return types.ProfileDefinition{
		Path:      shared.NormalizeProfilePath(string(profile.Path)),
		AliasNS:   shared.NormalizeMatchers(profile.AliasNS),
		AliasName: shared.NormalizeMatchers(profile.AliasName),
		ExtraOpts: profile.ExtraOpts,
	}
}

var _ ports.ProjectConfigPort = DepsFileAdapter{}
