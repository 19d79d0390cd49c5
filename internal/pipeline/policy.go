// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"strings"

	"github.com/pdiddy/pdf-binder/pkg/types"
)

// GroupPolicy assigns an item to one of the two output buckets. The two
// implementations are mutually exclusive within one invocation.
type GroupPolicy func(*types.Item) types.GroupLabel

// ManualPolicy routes by the item's stored group tag. Anything not
// explicitly tagged A lands in B.
func ManualPolicy() GroupPolicy {
	return func(it *types.Item) types.GroupLabel {
		if it.Group == types.GroupA {
			return types.GroupA
		}
		return types.GroupB
	}
}

// KeywordPolicy routes by substring match of the item name against the
// comma-separated A-list: any hit sends the item to A, everything else
// to B. B is the unconditional default bucket, not evidence-based: the
// B-list is accepted for symmetry but never consulted, so an item that
// matches a B token and no A token routes to B for absence from A
// alone. (Routing on the B-list would be a behavior change; callers
// rely on B catching everything unmatched.)
func KeywordPolicy(keywordsA, keywordsB string, caseSensitive bool) GroupPolicy {
	tokensA := splitKeywords(keywordsA, caseSensitive)

	return func(it *types.Item) types.GroupLabel {
		name := it.Name
		if !caseSensitive {
			name = strings.ToLower(name)
		}
		for _, tok := range tokensA {
			if strings.Contains(name, tok) {
				return types.GroupA
			}
		}
		return types.GroupB
	}
}

// splitKeywords turns a comma-separated list into trimmed, non-empty
// tokens, lowercased unless matching is case-sensitive.
func splitKeywords(list string, caseSensitive bool) []string {
	var tokens []string
	for _, tok := range strings.Split(list, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if !caseSensitive {
			tok = strings.ToLower(tok)
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
