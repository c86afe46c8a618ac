package concept

// Concept and its learning modules are immutable reference data loaded once at
// startup, so they carry no invariants beyond a non-empty identifier and are
// modeled as plain records rather than encapsulated entities.

type ModuleResource struct {
	Type  string
	Title string
	URL   string
}

type LearningModule struct {
	ID             string
	ConceptID      string
	Title          string
	Objectives     []string
	ContentSummary string
	Resources      []ModuleResource
}

type Concept struct {
	ID           string
	Title        string
	Summary      string
	WhyItMatters string
	Modules      []LearningModule
}
