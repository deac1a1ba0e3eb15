package sequences

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencode-ai/choreo/internal/logging"
)

// ErrSequenceNotFound is returned when no sequence matches a name.
var ErrSequenceNotFound = errors.New("sequence not found")

// SequenceSearchPaths returns sequence search directories in precedence order.
func SequenceSearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".choreo", "sequences"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "choreo", "sequences"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "choreo", "sequences"))
	return paths
}

// LoadSequencesFromSearchPaths loads sequences from search paths with
// first-hit precedence, followed by any builtins not already shadowed.
func LoadSequencesFromSearchPaths(projectDir string) ([]*Sequence, error) {
	logger := logging.Component("sequences")
	seen := make(map[string]*Sequence)
	order := make([]string, 0)

	add := func(seq *Sequence) {
		if prev, exists := seen[seq.Name]; exists {
			logger.Debug().Str("sequence", seq.Name).Str("shadowed", seq.Source).Str("by", prev.Source).Msg("sequence shadowed")
			return
		}
		seen[seq.Name] = seq
		order = append(order, seq.Name)
	}

	for _, path := range SequenceSearchPaths(projectDir) {
		sequences, err := LoadSequencesFromDir(path)
		if err != nil {
			return nil, err
		}
		for _, seq := range sequences {
			add(seq)
		}
	}

	builtins, err := LoadBuiltinSequences()
	if err != nil {
		return nil, err
	}
	for _, seq := range builtins {
		add(seq)
	}

	resolved := make([]*Sequence, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}
	return resolved, nil
}

// Find returns the sequence named name, case-insensitively, or nil.
func Find(items []*Sequence, name string) *Sequence {
	name = strings.TrimSpace(name)
	for _, seq := range items {
		if strings.EqualFold(seq.Name, name) {
			return seq
		}
	}
	return nil
}

// Resolve loads ref as a file when it names a YAML file, otherwise looks it
// up by name across the search paths and builtins.
func Resolve(projectDir, ref string) (*Sequence, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("sequence name or path is required")
	}

	if isSequenceFile(ref) {
		return LoadSequence(ref)
	}

	all, err := LoadSequencesFromSearchPaths(projectDir)
	if err != nil {
		return nil, err
	}
	if seq := Find(all, ref); seq != nil {
		return seq, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrSequenceNotFound, ref)
}
