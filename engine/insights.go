package engine

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ============================================================================
// NEGATIVE INSIGHTS — Slice → Sort → Tokenize → Rank
// ============================================================================
// The pipeline runs over the negative slice: records passing the full
// predicate set including rating <= threshold. Every stage is pure; an
// empty slice short-circuits each stage to an empty result, never an error.
// ============================================================================

const (
	defaultKeywordLimit = 15
	defaultMinTokenLen  = 2 // tokens of length <= 2 are dropped
)

// defaultStopWords filters common English function words and contractions.
// Fixed design constant, not user-configurable at the presentation layer.
var defaultStopWords = toSet(strings.Fields(`
	a an the and or but if then this that to of in on for from with by as is are was were be been being
	i you he she it we they my your our their me us them not no yes very more most less least so too
	it's i'm i've you're we'll can't won't didn't don't does do did could would should
`))

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// ============================================================================
// SLICE + SORT
// ============================================================================

// NegativeSlice applies the full predicate set and orders the result by the
// spec's sort mode. The returned view is a reordered SubView of the input.
func NegativeSlice(view RecordView, spec FilterSpec) RecordView {
	return SortRecords(ApplyNegativeFilters(view, spec), spec.SortMode)
}

// SortRecords returns a view reordered by the given sort mode. All four
// orderings are total: the secondary key removes residual nondeterminism,
// and the underlying sort is stable.
func SortRecords(view RecordView, mode SortMode) RecordView {
	n := view.Len()
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	less := lessFor(view, mode)
	sort.SliceStable(indices, func(a, b int) bool {
		return less(indices[a], indices[b])
	})

	return newSubView(view, indices)
}

func lessFor(view RecordView, mode SortMode) func(i, j int) bool {
	switch mode {
	case SortLowestRating:
		// rating ascending, earliest first on ties
		return func(i, j int) bool {
			a, b := view.At(i), view.At(j)
			if a.Rating != b.Rating {
				return a.Rating < b.Rating
			}
			return a.CreatedAt.Before(b.CreatedAt)
		}
	case SortLongestComment:
		// text length descending, most recent first on ties
		return func(i, j int) bool {
			a, b := view.At(i), view.At(j)
			la, lb := len(a.ReviewText), len(b.ReviewText)
			if la != lb {
				return la > lb
			}
			return a.CreatedAt.After(b.CreatedAt)
		}
	case SortHighestRating:
		return func(i, j int) bool {
			a, b := view.At(i), view.At(j)
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			return a.CreatedAt.After(b.CreatedAt)
		}
	default: // SortMostRecent
		return func(i, j int) bool {
			return view.At(i).CreatedAt.After(view.At(j).CreatedAt)
		}
	}
}

// ============================================================================
// TOKENIZATION
// ============================================================================

var tokenPattern = regexp.MustCompile(`[a-z']+`)

// Tokenize lowercases a comment and extracts maximal runs of Latin letters
// and apostrophes, dropping short tokens and stop words. Input is NFC
// normalized first so composed and decomposed forms tokenize identically.
func Tokenize(s string, opts ...Option) []string {
	return tokenize(s, applyOptions(opts))
}

func tokenize(s string, cfg *config) []string {
	lowered := strings.ToLower(norm.NFC.String(s))
	raw := tokenPattern.FindAllString(lowered, -1)

	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if len(tok) <= cfg.MinTokenLen || cfg.StopWords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// ============================================================================
// KEYWORD RANKING
// ============================================================================

// Keywords tokenizes every comment in the (already negative) view, ranks
// the top keywords by raw mention count, and attaches the per-keyword
// average rating computed over per-comment presence.
//
// Mentions count every occurrence, including duplicates within a comment.
// The rating association deduplicates tokens within each comment first, so
// a keyword repeated in one comment pairs with that comment's rating once.
// The merge keeps only the top-N mention keywords; rating stats for other
// keywords are discarded.
//
// Result order: mentions descending, then average rating ascending — lower
// ratings among equally-frequent keywords surface pain points first.
func Keywords(view RecordView, opts ...Option) []KeywordStat {
	cfg := applyOptions(opts)

	n := view.Len()
	if n == 0 {
		return nil
	}

	mentions := make(map[string]int)
	order := make([]string, 0) // first-encounter order, the deterministic tiebreak
	ratingSum := make(map[string]float64)
	ratingCount := make(map[string]int)

	for i := 0; i < n; i++ {
		rec := view.At(i)
		tokens := tokenize(rec.ReviewText, cfg)

		seen := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			if _, exists := mentions[tok]; !exists {
				order = append(order, tok)
			}
			mentions[tok]++
			if !seen[tok] {
				seen[tok] = true
				ratingSum[tok] += rec.Rating
				ratingCount[tok]++
			}
		}
	}

	if len(order) == 0 {
		return nil
	}

	// Top-N by mention count; ties keep first-encounter order.
	sort.SliceStable(order, func(i, j int) bool {
		return mentions[order[i]] > mentions[order[j]]
	})
	if len(order) > cfg.KeywordLimit {
		order = order[:cfg.KeywordLimit]
	}

	stats := make([]KeywordStat, 0, len(order))
	for _, kw := range order {
		stats = append(stats, KeywordStat{
			Keyword:   kw,
			Mentions:  mentions[kw],
			Comments:  ratingCount[kw],
			AvgRating: RoundTo2(ratingSum[kw] / float64(ratingCount[kw])),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Mentions != stats[j].Mentions {
			return stats[i].Mentions > stats[j].Mentions
		}
		return stats[i].AvgRating < stats[j].AvgRating
	})
	return stats
}
