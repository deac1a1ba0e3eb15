package sequences

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadSequence reads a single sequence from disk.
func LoadSequence(path string) (*Sequence, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sequence path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sequence %s: %w", path, err)
	}

	seq, err := parseSequence(data)
	if err != nil {
		return nil, fmt.Errorf("parse sequence %s: %w", path, err)
	}
	seq.Source = path
	return seq, nil
}

// LoadSequencesFromDir loads all .yaml/.yml sequences in dir, sorted by name.
// A missing directory yields no sequences.
func LoadSequencesFromDir(dir string) ([]*Sequence, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Sequence{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Sequence{}, nil
		}
		return nil, fmt.Errorf("read sequences dir %s: %w", dir, err)
	}

	sequences := make([]*Sequence, 0)
	for _, entry := range entries {
		if entry.IsDir() || !isSequenceFile(entry.Name()) {
			continue
		}
		seq, err := LoadSequence(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		sequences = append(sequences, seq)
	}

	sort.Slice(sequences, func(i, j int) bool {
		return sequences[i].Name < sequences[j].Name
	})

	return sequences, nil
}

func isSequenceFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func parseSequence(data []byte) (*Sequence, error) {
	var seq Sequence
	if err := yaml.Unmarshal(data, &seq); err != nil {
		return nil, err
	}

	seq.Name = strings.TrimSpace(seq.Name)
	if seq.Name == "" {
		return nil, fmt.Errorf("sequence name is required")
	}
	seq.Description = strings.TrimSpace(seq.Description)

	if len(seq.Steps) == 0 {
		return nil, fmt.Errorf("sequence steps are required")
	}

	for i := range seq.Tags {
		seq.Tags[i] = strings.ToLower(strings.TrimSpace(seq.Tags[i]))
	}

	for i := range seq.Steps {
		if err := normalizeStep(&seq.Steps[i]); err != nil {
			return nil, fmt.Errorf("sequence step %d: %w", i+1, err)
		}
	}

	return &seq, nil
}

func normalizeStep(step *SequenceStep) error {
	raw := strings.ToLower(strings.TrimSpace(string(step.Type)))
	stepType, ok := stepTypeAliases[raw]
	if !ok {
		return fmt.Errorf("unknown step type %q", step.Type)
	}
	step.Type = stepType

	step.Duration = strings.TrimSpace(step.Duration)
	step.Target = strings.TrimSpace(step.Target)
	step.Note = strings.TrimSpace(step.Note)

	if _, err := parseStepDuration(step.Duration); err != nil {
		return fmt.Errorf("%s %w", step.Type, err)
	}

	switch step.Type {
	case StepTypeWait:
		if step.Target != "" {
			return fmt.Errorf("wait steps take no target")
		}
	case StepTypeTransition:
		if step.Target == "" {
			return fmt.Errorf("transition target is required")
		}
	}

	return nil
}

func parseStepDuration(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, fmt.Errorf("duration is required")
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}
