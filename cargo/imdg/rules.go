package imdg

// Rule describes one IMDG hazard class and the classes it must not share a
// container or groupage with. The table is process-wide configuration, loaded
// once and never mutated at runtime.
type Rule struct {
	Class            string   `json:"class"`
	IncompatibleWith []string `json:"incompatible_with"`
	Description      string   `json:"description"`
}

// Segregation table derived from the IMDG general segregation requirements.
// Some entries are deliberately one-sided (see AreCompatible, which checks
// both directions); do not symmetrize the data here.
var rules = map[string]Rule{
	"Classe 1": {
		Class:            "Classe 1",
		Description:      "Matières et objets explosibles",
		IncompatibleWith: []string{"Classe 2.1", "Classe 3", "Classe 4.1", "Classe 4.2", "Classe 4.3", "Classe 5.1", "Classe 5.2", "Classe 8"},
	},
	"Classe 2.1": {
		Class:            "Classe 2.1",
		Description:      "Gaz inflammables",
		IncompatibleWith: []string{"Classe 1", "Classe 3", "Classe 5.1", "Classe 5.2"},
	},
	"Classe 2.2": {
		Class:            "Classe 2.2",
		Description:      "Gaz non inflammables, non toxiques",
		IncompatibleWith: []string{},
	},
	"Classe 2.3": {
		Class:            "Classe 2.3",
		Description:      "Gaz toxiques",
		IncompatibleWith: []string{"Classe 1"},
	},
	"Classe 3": {
		Class:            "Classe 3",
		Description:      "Liquides inflammables",
		IncompatibleWith: []string{"Classe 1", "Classe 2.1", "Classe 5.1", "Classe 5.2"},
	},
	"Classe 4.1": {
		Class:            "Classe 4.1",
		Description:      "Solides inflammables",
		IncompatibleWith: []string{"Classe 1", "Classe 5.2"},
	},
	"Classe 4.2": {
		Class:            "Classe 4.2",
		Description:      "Matières sujettes à l'inflammation spontanée",
		IncompatibleWith: []string{"Classe 1", "Classe 5.1", "Classe 5.2"},
	},
	"Classe 4.3": {
		Class:            "Classe 4.3",
		Description:      "Matières dégageant des gaz inflammables au contact de l'eau",
		IncompatibleWith: []string{"Classe 1", "Classe 5.2"},
	},
	"Classe 5.1": {
		Class:            "Classe 5.1",
		Description:      "Matières comburantes",
		IncompatibleWith: []string{"Classe 1", "Classe 2.1", "Classe 3", "Classe 4.2", "Classe 8"},
	},
	"Classe 5.2": {
		Class:            "Classe 5.2",
		Description:      "Peroxydes organiques",
		IncompatibleWith: []string{"Classe 1", "Classe 2.1", "Classe 3", "Classe 4.1", "Classe 4.2", "Classe 4.3", "Classe 8"},
	},
	"Classe 6.1": {
		Class:            "Classe 6.1",
		Description:      "Matières toxiques",
		IncompatibleWith: []string{},
	},
	"Classe 6.2": {
		Class:            "Classe 6.2",
		Description:      "Matières infectieuses",
		IncompatibleWith: []string{},
	},
	"Classe 7": {
		Class:            "Classe 7",
		Description:      "Matières radioactives",
		IncompatibleWith: []string{"Classe 1"},
	},
	"Classe 8": {
		Class:            "Classe 8",
		Description:      "Matières corrosives",
		IncompatibleWith: []string{"Classe 1", "Classe 4.3", "Classe 5.1", "Classe 5.2"},
	},
	"Classe 9": {
		Class:            "Classe 9",
		Description:      "Matières et objets dangereux divers",
		IncompatibleWith: []string{},
	},
}
