package graph

import (
	"context"
	"fmt"

	"conceptgraph/pkg/ai"
	"conceptgraph/pkg/common"
)

type extractConcept struct {
	Name        string `json:"name" jsonschema_description:"Short canonical name of the concept (e.g., 'Rogers-Ramanujan identities')"`
	Type        string `json:"type" jsonschema_description:"One of: object, theorem, conjecture, technique, identity, formula, person, definition"`
	Description string `json:"description" jsonschema_description:"One sentence description if clear from context"`
}

type extractRelationship struct {
	Source   string `json:"source" jsonschema_description:"Concept name, must match a concept above"`
	Target   string `json:"target" jsonschema_description:"Concept name, must match a concept above"`
	Relation string `json:"relation" jsonschema_description:"One of: proves, generalizes, uses, implies, is_instance_of, conjectured_by, related_to, equivalent_to, specializes_to, defined_in"`
	Detail   string `json:"detail" jsonschema_description:"Brief explanation of the relationship"`
}

type extractResponse struct {
	Concepts      []extractConcept      `json:"concepts" jsonschema_description:"Mathematical concepts identified in the passage"`
	Relationships []extractRelationship `json:"relationships" jsonschema_description:"Relationships between the identified concepts"`
}

func extractFromDocument(
	ctx context.Context,
	docName string,
	text string,
	client ai.GraphAIClient,
) (common.Extraction, error) {
	prompt := fmt.Sprintf("Paper: %s\n\n%s", docName, text)

	var res extractResponse
	err := client.GenerateCompletionWithFormat(
		ctx,
		"extract_concepts_and_relationships",
		"Extract mathematical concepts and their relationships from a research paper passage.",
		prompt,
		&res,
		ai.WithSystemPrompts(ai.ExtractionPrompt),
	)
	if err != nil {
		return common.Extraction{}, err
	}

	extraction := common.Extraction{
		Concepts:      make([]common.RawConcept, 0, len(res.Concepts)),
		Relationships: make([]common.RawRelationship, 0, len(res.Relationships)),
	}
	for _, c := range res.Concepts {
		extraction.Concepts = append(extraction.Concepts, common.RawConcept{
			Name:        c.Name,
			Type:        c.Type,
			Description: c.Description,
		})
	}
	for _, r := range res.Relationships {
		extraction.Relationships = append(extraction.Relationships, common.RawRelationship{
			Source:   r.Source,
			Target:   r.Target,
			Relation: r.Relation,
			Detail:   r.Detail,
		})
	}
	return extraction, nil
}
