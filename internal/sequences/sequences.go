// Package sequences loads declarative animation sequences from YAML.
package sequences

// Sequence is a named, ordered list of animation steps.
type Sequence struct {
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description,omitempty"`
	Steps       []SequenceStep `yaml:"steps" json:"steps"`
	Tags        []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
	Source      string         `yaml:"-" json:"source"` // file path or "builtin"
}

// SequenceStep is a single wait or transition.
type SequenceStep struct {
	Type     StepType `yaml:"type" json:"type"`
	Duration string   `yaml:"duration" json:"duration"`
	Target   string   `yaml:"target,omitempty" json:"target,omitempty"`
	Note     string   `yaml:"note,omitempty" json:"note,omitempty"`
}

// StepType defines the kind of sequence step.
type StepType string

const (
	StepTypeWait       StepType = "wait"
	StepTypeTransition StepType = "transition"
)

// stepTypeAliases maps accepted spellings onto canonical step types.
var stepTypeAliases = map[string]StepType{
	"wait":       StepTypeWait,
	"hold":       StepTypeWait,
	"pause":      StepTypeWait,
	"transition": StepTypeTransition,
	"to":         StepTypeTransition,
}
