package plan

import (
	"gopkg.in/yaml.v3"
)

// PlanFile is the YAML document produced by the plan command.
type PlanFile struct {
	Version string       `yaml:"version"`
	Targets []TargetPlan `yaml:"targets"`
}

// TargetPlan is the YAML view of one plan.
type TargetPlan struct {
	Target       string       `yaml:"target"`
	Artifact     string       `yaml:"artifact"`
	File         string       `yaml:"file"`
	Mode         Mode         `yaml:"mode"`
	Capabilities Capabilities `yaml:"capabilities"`
	Kind         string       `yaml:"kind,omitempty"`
	Fields       []FieldPlan  `yaml:"fields"`
	Members      []string     `yaml:"members"`
	Imports      []string     `yaml:"imports,omitempty"`
	Arithmetic   []string     `yaml:"arithmetic,omitempty"`
}

// FieldPlan is the YAML view of one planned field.
type FieldPlan struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Param    string `yaml:"param"`
	Equality string `yaml:"equality"`
	Ordering string `yaml:"ordering"`
}

// Export converts plans to their YAML view, in the given order.
func Export(plans []*Plan) *PlanFile {
	pf := &PlanFile{
		Version: "1",
		Targets: make([]TargetPlan, 0, len(plans)),
	}

	for _, p := range plans {
		pf.Targets = append(pf.Targets, exportPlan(p))
	}

	return pf
}

// ExportYAML renders plans as a YAML document.
func ExportYAML(plans []*Plan) ([]byte, error) {
	return yaml.Marshal(Export(plans))
}

func exportPlan(p *Plan) TargetPlan {
	tp := TargetPlan{
		Target:       p.Target.String(),
		Artifact:     p.Artifact,
		File:         p.FileName,
		Mode:         p.Mode,
		Capabilities: p.Capabilities,
		Members:      p.Members,
	}

	if p.Capabilities.Kind != 0 {
		tp.Kind = p.Capabilities.Kind.String()
	}

	for _, f := range p.Fields {
		tp.Fields = append(tp.Fields, FieldPlan{
			Name:     f.Name,
			Type:     f.Ref.String(),
			Param:    f.Param,
			Equality: f.Equality.String(),
			Ordering: f.Ordering.String(),
		})
	}

	for _, imp := range p.Imports {
		if imp.Name != "" {
			tp.Imports = append(tp.Imports, imp.Name+" "+imp.Path)
			continue
		}

		tp.Imports = append(tp.Imports, imp.Path)
	}

	for _, m := range p.Arithmetic {
		tp.Arithmetic = append(tp.Arithmetic, m.Method)
	}

	return tp
}
