package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan describes a set of stack changes to apply in order: optionally clear
// the stack first, then queue each listed class id.
type Plan struct {
	Clear   bool     `yaml:"clear"`
	Classes []string `yaml:"classes"`
}

// Load reads and validates a yaml plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if len(p.Classes) == 0 && !p.Clear {
		return nil, fmt.Errorf("plan has no classes and does not clear")
	}
	return &p, nil
}

// Print writes a human-readable preview of the plan.
func (p *Plan) Print() {
	if p.Clear {
		fmt.Println("clear stack first")
	}
	for i, id := range p.Classes {
		fmt.Printf("[%d] stack class %s\n", i+1, id)
	}
}
