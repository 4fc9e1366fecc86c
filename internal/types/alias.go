package types

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// AliasKey addresses an alias by an optional namespace and a required name.
// The textual form is "ns/name", or just "name" for a bare alias.
type AliasKey struct {
	Namespace string
	Name      string
}

// ParseAliasKey splits a textual alias key at its first slash. A leading
// keyword colon is tolerated.
func ParseAliasKey(value string) (AliasKey, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(value), ":")
	ns, name, found := strings.Cut(trimmed, "/")
	if !found {
		ns, name = "", trimmed
	}
	if name == "" {
		return AliasKey{}, fmt.Errorf("alias key %q has no name", value)
	}
	return AliasKey{Namespace: ns, Name: name}, nil
}

// MustAliasKey is ParseAliasKey for literals known to be valid.
func MustAliasKey(value string) AliasKey {
	key, err := ParseAliasKey(value)
	if err != nil {
		panic(err)
	}
	return key
}

func (k AliasKey) String() string {
	if k.Namespace == "" {
		return k.Name
	}
	return k.Namespace + "/" + k.Name
}

func (k AliasKey) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

func (k *AliasKey) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseAliasKey(raw)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// AliasDefinition is the option group an alias contributes.
type AliasDefinition map[string]any

// AliasEntry is a single key/definition pair of an Aliases mapping.
type AliasEntry struct {
	Key        AliasKey
	Definition AliasDefinition
}

// Aliases is an ordered alias mapping. Iteration follows declaration order.
type Aliases struct {
	keys []AliasKey
	defs map[AliasKey]AliasDefinition
}

// NewAliases builds an ordered mapping. A repeated key keeps its first
// position and takes the last definition.
func NewAliases(entries ...AliasEntry) Aliases {
	aliases := Aliases{}
	for _, entry := range entries {
		aliases = aliases.With(entry.Key, entry.Definition)
	}
	return aliases
}

// With returns a copy of the mapping with key set to def.
func (a Aliases) With(key AliasKey, def AliasDefinition) Aliases {
	out := Aliases{
		keys: append([]AliasKey(nil), a.keys...),
		defs: make(map[AliasKey]AliasDefinition, len(a.defs)+1),
	}
	for k, v := range a.defs {
		out.defs[k] = v
	}
	if _, ok := out.defs[key]; !ok {
		out.keys = append(out.keys, key)
	}
	out.defs[key] = def
	return out
}

func (a Aliases) Len() int {
	return len(a.keys)
}

// Keys returns the alias keys in declaration order.
func (a Aliases) Keys() []AliasKey {
	return append([]AliasKey(nil), a.keys...)
}

func (a Aliases) Get(key AliasKey) (AliasDefinition, bool) {
	def, ok := a.defs[key]
	return def, ok
}

// Entries returns the key/definition pairs in declaration order.
func (a Aliases) Entries() []AliasEntry {
	entries := make([]AliasEntry, 0, len(a.keys))
	for _, key := range a.keys {
		entries = append(entries, AliasEntry{Key: key, Definition: a.defs[key]})
	}
	return entries
}

func (a Aliases) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, entry := range a.Entries() {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Key.String()}
		valueNode := &yaml.Node{}
		def := entry.Definition
		if def == nil {
			def = AliasDefinition{}
		}
		if err := valueNode.Encode(def); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

func (a *Aliases) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*a = Aliases{}
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: aliases must be a mapping", node.Line)
	}
	parsed := Aliases{defs: map[AliasKey]AliasDefinition{}}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		key, err := ParseAliasKey(keyNode.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", keyNode.Line, err)
		}
		if _, dup := parsed.defs[key]; dup {
			return fmt.Errorf("line %d: duplicate alias %s", keyNode.Line, key)
		}
		def := AliasDefinition{}
		if err := valueNode.Decode(&def); err != nil {
			return fmt.Errorf("line %d: alias %s: %w", valueNode.Line, key, err)
		}
		if def == nil {
			def = AliasDefinition{}
		}
		parsed.keys = append(parsed.keys, key)
		parsed.defs[key] = def
	}
	*a = parsed
	return nil
}
