package model

// Building is one top-level group placed on the city spiral.
type Building struct {
	PlacedEntity `yaml:",inline"`
	Group        GroupKind `yaml:"group" json:"group"`
	View         ViewKind  `yaml:"view,omitempty" json:"view,omitempty"`
	Height       float32   `yaml:"height" json:"height"`
	Color        RGB       `yaml:"color" json:"color"`
}

// CityReport summarizes a laid-out trace.
type CityReport struct {
	Source    Path          `yaml:"source" json:"source"`
	Events    int           `yaml:"events" json:"events"`
	Buildings []Building    `yaml:"buildings" json:"buildings"`
	Addresses []AddressNode `yaml:"addresses,omitempty" json:"addresses,omitempty"`
	Fountains int           `yaml:"fountains" json:"fountains"`
}

// Convergences returns the address nodes shared by two or more variables.
func (r CityReport) Convergences() []AddressNode {
	var out []AddressNode

	for _, n := range r.Addresses {
		if n.Convergent() {
			out = append(out, n)
		}
	}

	return out
}

// ExportSummary describes a written scene document.
type ExportSummary struct {
	ID       string   `yaml:"id" json:"id"`
	Output   Path     `yaml:"output" json:"output"`
	Source   Path     `yaml:"source" json:"source"`
	Nodes    int      `yaml:"nodes" json:"nodes"`
	OpenView string   `yaml:"openView,omitempty" json:"openView,omitempty"`
	ViewKind ViewKind `yaml:"viewKind,omitempty" json:"viewKind,omitempty"`
}
