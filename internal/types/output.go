package types

// DepFields is the serializable projection of a parsed specifier used
// for structured CLI output and boundary accessors. All values are
// detached copies of the record's fields.
type DepFields struct {
	Dep      string   `yaml:"dep"`
	Blocker  string   `yaml:"blocker,omitempty"`
	Category string   `yaml:"category"`
	Package  string   `yaml:"package"`
	Version  string   `yaml:"version,omitempty"`
	Revision string   `yaml:"revision,omitempty"`
	Slot     string   `yaml:"slot,omitempty"`
	SubSlot  string   `yaml:"subslot,omitempty"`
	SlotOp   string   `yaml:"slot_operator,omitempty"`
	Use      []string `yaml:"use,omitempty"`
	Repo     string   `yaml:"repository,omitempty"`
}
