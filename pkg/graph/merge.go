package graph

import (
	"sort"
	"strings"

	"conceptgraph/pkg/common"
	"conceptgraph/pkg/normalize"
)

// Merge combines per-document extractions into a unified concept table and
// a list of edge candidates. Documents are folded in sorted ID order, so
// the result is independent of the map's iteration order and of the order
// documents were extracted in.
//
// Concepts with an empty name are skipped. The first sighting of a
// canonical name seeds the concept, keeping its raw surface form as the
// display name; later sightings append their document and replace the
// description only when the new one is strictly longer.
// Relationships survive only when both normalized endpoints exist in the
// concept table and differ from each other; self-loops and unmatched
// references are dropped silently. Missing fields fall back to defaults
// (type "object", relation "related_to").
//
// Deduplication of candidates into final edges is Build's job; the
// returned slice may contain several candidates with the same
// (source, target, relation) triple.
func Merge(
	extractions map[string]common.Extraction,
	normalizer *normalize.Normalizer,
) (map[string]common.Concept, []common.EdgeCandidate) {
	concepts := make(map[string]common.Concept)
	candidates := make([]common.EdgeCandidate, 0)

	docIDs := make([]string, 0, len(extractions))
	for id := range extractions {
		docIDs = append(docIDs, id)
	}
	sort.Strings(docIDs)

	for _, docID := range docIDs {
		extraction := extractions[docID]

		for _, raw := range extraction.Concepts {
			name := strings.TrimSpace(raw.Name)
			if name == "" {
				continue
			}
			canonical := normalizer.Name(name)

			existing, ok := concepts[canonical]
			if !ok {
				concepts[canonical] = common.Concept{
					CanonicalName:   canonical,
					DisplayName:     raw.Name,
					Type:            conceptTypeOrDefault(raw.Type),
					Description:     raw.Description,
					SourceDocuments: []string{docID},
				}
				continue
			}

			if !containsString(existing.SourceDocuments, docID) {
				existing.SourceDocuments = append(existing.SourceDocuments, docID)
			}
			// Richer description wins: strictly longer replaces, ties keep
			// the stored value.
			if len(raw.Description) > len(existing.Description) {
				existing.Description = raw.Description
			}
			concepts[canonical] = existing
		}

		for _, rel := range extraction.Relationships {
			src := normalizer.Name(rel.Source)
			tgt := normalizer.Name(rel.Target)

			if _, ok := concepts[src]; !ok {
				continue
			}
			if _, ok := concepts[tgt]; !ok {
				continue
			}
			if src == tgt {
				continue
			}

			candidates = append(candidates, common.EdgeCandidate{
				Source:   src,
				Target:   tgt,
				Relation: relationOrDefault(rel.Relation),
				Detail:   rel.Detail,
				Document: docID,
			})
		}
	}

	return concepts, candidates
}

func conceptTypeOrDefault(raw string) common.ConceptType {
	t := strings.TrimSpace(raw)
	if t == "" {
		return common.ConceptTypeObject
	}
	return common.ConceptType(t)
}

func relationOrDefault(raw string) common.RelationType {
	r := strings.TrimSpace(raw)
	if r == "" {
		return common.RelationRelatedTo
	}
	return common.RelationType(r)
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
