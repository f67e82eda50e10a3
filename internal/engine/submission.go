package engine

// SupportingMaterials holds optional evidence attached to a submission.
type SupportingMaterials struct {
	Screenshots     []string `json:"screenshots" yaml:"screenshots"`
	DemoLink        string   `json:"demo_link,omitempty" yaml:"demoLink"`
	AdditionalNotes string   `json:"additional_notes,omitempty" yaml:"additionalNotes"`
}

// HasVisuals reports whether the materials include at least one screenshot
// or a demo link.
func (m *SupportingMaterials) HasVisuals() bool {
	if m == nil {
		return false
	}
	return len(m.Screenshots) > 0 || m.DemoLink != ""
}

// Submission is a free-text hackathon project entry. KiroUsage and
// Materials may be empty; the scorers treat missing fields as "no bonus",
// never as errors.
type Submission struct {
	Description string               `json:"description" yaml:"description"`
	KiroUsage   string               `json:"kiro_usage,omitempty" yaml:"kiroUsage"`
	Materials   *SupportingMaterials `json:"supporting_materials,omitempty" yaml:"supportingMaterials"`
}

func (s Submission) screenshots() int {
	if s.Materials == nil {
		return 0
	}
	return len(s.Materials.Screenshots)
}

func (s Submission) demoLink() string {
	if s.Materials == nil {
		return ""
	}
	return s.Materials.DemoLink
}
