package assembler

// NodeResult records the outcome for one node of the tree.
type NodeResult struct {
	Name  string   `yaml:"name" json:"name"`
	Kind  string   `yaml:"kind" json:"kind"`
	Files []string `yaml:"files,omitempty" json:"files,omitempty"`
	Error string   `yaml:"error,omitempty" json:"error,omitempty"`

	// NoTextures flags a node assembled with a defaults-only material
	// because its textures directory was absent or empty.
	NoTextures bool `yaml:"noTextures,omitempty" json:"noTextures,omitempty"`
}

// RunReport is the result of one assembly run. Generated files and
// warnings keep their discovery order so consecutive runs over the same
// tree compare equal.
type RunReport struct {
	Assembly        string       `yaml:"assembly" json:"assembly"`
	GeneratedFiles  []string     `yaml:"generatedFiles" json:"generatedFiles"`
	Warnings        []string     `yaml:"warnings" json:"warnings"`
	ComponentsFound int          `yaml:"componentsFound" json:"componentsFound"`
	VariantsFound   int          `yaml:"variantsFound" json:"variantsFound"`
	Nodes           []NodeResult `yaml:"nodes" json:"nodes"`
}

// Failed returns the nodes whose files could not be written.
func (r *RunReport) Failed() []NodeResult {
	var failed []NodeResult
	for _, n := range r.Nodes {
		if n.Error != "" {
			failed = append(failed, n)
		}
	}
	return failed
}
