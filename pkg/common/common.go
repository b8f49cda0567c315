package common

// ConceptType classifies a concept extracted from a document.
type ConceptType string

const (
	ConceptTypeObject     ConceptType = "object"
	ConceptTypeTheorem    ConceptType = "theorem"
	ConceptTypeConjecture ConceptType = "conjecture"
	ConceptTypeTechnique  ConceptType = "technique"
	ConceptTypeIdentity   ConceptType = "identity"
	ConceptTypeFormula    ConceptType = "formula"
	ConceptTypePerson     ConceptType = "person"
	ConceptTypeDefinition ConceptType = "definition"
)

// RelationType classifies how two concepts relate to each other.
type RelationType string

const (
	RelationProves        RelationType = "proves"
	RelationGeneralizes   RelationType = "generalizes"
	RelationUses          RelationType = "uses"
	RelationImplies       RelationType = "implies"
	RelationIsInstanceOf  RelationType = "is_instance_of"
	RelationConjecturedBy RelationType = "conjectured_by"
	RelationRelatedTo     RelationType = "related_to"
	RelationEquivalentTo  RelationType = "equivalent_to"
	RelationSpecializesTo RelationType = "specializes_to"
	RelationDefinedIn     RelationType = "defined_in"
)

// Page is a single page or section of extracted document text,
// numbered by its locator within the source file.
type Page struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// TextWindow is a contiguous, possibly overlapping slice of a document's
// concatenated pages. Windows are the unit of input for concept extraction
// and are never persisted.
//
// Locators lists the page/section numbers the window spans, in ascending
// order.
type TextWindow struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Locators []int  `json:"locators"`
}

// RawConcept is a single concept sighting inside one document, as returned
// by the extraction collaborator. Missing fields are tolerated and replaced
// with defaults during the merge.
type RawConcept struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// RawRelationship is a single relationship observation inside one document.
// Source and Target refer to concept names from the same extraction; names
// that do not resolve against the merged concept table are dropped.
type RawRelationship struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Relation string `json:"relation"`
	Detail   string `json:"detail"`
}

// Extraction is the per-document output of the concept extraction
// collaborator. A failed extraction is represented by empty slices,
// never by an error.
type Extraction struct {
	Concepts      []RawConcept      `json:"concepts"`
	Relationships []RawRelationship `json:"relationships"`
}

// Concept is a merged, canonical node of the graph. Its identity is
// CanonicalName; DisplayName preserves the surface form of the first
// sighting.
//
// SourceDocuments lists every document the concept was seen in, in
// first-seen order.
type Concept struct {
	CanonicalName   string      `json:"name"`
	DisplayName     string      `json:"display_name"`
	Type            ConceptType `json:"type"`
	Description     string      `json:"description"`
	SourceDocuments []string    `json:"source_documents"`
}

// EdgeCandidate is a single surviving relationship observation emitted by
// the merge, before deduplication into final edges. Several candidates may
// share the same (source, target, relation) triple.
type EdgeCandidate struct {
	Source   string       `json:"source"`
	Target   string       `json:"target"`
	Relation RelationType `json:"relation"`
	Detail   string       `json:"detail"`
	Document string       `json:"document"`
}

// Edge is a deduplicated, directed edge of the graph. Its identity is the
// (Source, Target, Relation) triple. Details collects each distinct
// non-empty detail string in first-seen order.
type Edge struct {
	Source          string       `json:"source"`
	Target          string       `json:"target"`
	Relation        RelationType `json:"relation"`
	Details         []string     `json:"details"`
	SourceDocuments []string     `json:"source_documents"`
}

// GraphMetadata summarizes a built graph artifact.
type GraphMetadata struct {
	Created        string `json:"created"`
	TotalConcepts  int    `json:"total_concepts"`
	TotalEdges     int    `json:"total_edges"`
	TotalDocuments int    `json:"total_documents"`
}

// Graph is the durable artifact of a pipeline run: metadata, the merged
// concept list, and the deduplicated edge list. It is written once per run
// and read back by the visualization projection and any downstream tool.
type Graph struct {
	Metadata GraphMetadata `json:"metadata"`
	Concepts []Concept     `json:"concepts"`
	Edges    []Edge        `json:"edges"`
}

// VizNode is a renderable projection of a Concept, restricted to the
// visibility-filtered node set. It is derived data, recomputed on demand.
type VizNode struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Documents   int    `json:"documents"`
	Degree      int    `json:"degree"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// VizLink is a renderable projection of an Edge between two visible nodes.
type VizLink struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Relation string `json:"relation"`
	Detail   string `json:"detail"`
}

// VizData is the complete payload handed to the rendering collaborator.
type VizData struct {
	Nodes []VizNode `json:"nodes"`
	Links []VizLink `json:"links"`
}
