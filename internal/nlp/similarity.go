package nlp

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// Weights of the composite similarity. A single string metric is brittle
// against word reordering, partial phrasing and substring containment, so
// three complementary views are blended.
const (
	weightTokenSort = 0.4
	weightTokenSet  = 0.4
	weightPartial   = 0.2
)

// Similarity scores how close two texts are on a 0-100 scale. Both inputs
// are normalized first; an input that normalizes to empty scores 0.
func Similarity(a, b string) float64 {
	na := Normalize(a)
	nb := Normalize(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 100
	}

	return weightTokenSort*tokenSortRatio(na, nb) +
		weightTokenSet*tokenSetRatio(na, nb) +
		weightPartial*partialRatio(na, nb)
}

// ratio is the base 0-100 string similarity. Jaro-Winkler tolerates the
// length imbalance of a short query against a full question far better
// than a plain edit-distance ratio.
func ratio(a, b string) float64 {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	score, err := edlib.StringsSimilarity(a, b, edlib.JaroWinkler)
	if err != nil {
		return 0
	}
	return float64(score) * 100
}

// tokenSortRatio compares the two texts with their words sorted, which
// makes the score insensitive to word order.
func tokenSortRatio(a, b string) float64 {
	return ratio(sortedTokens(a), sortedTokens(b))
}

// tokenSetRatio compares the shared words against each side's remainder,
// so a query fully contained in a longer question still scores high.
func tokenSetRatio(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	var common, onlyA, onlyB []string
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			common = append(common, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range setB {
		if _, ok := setA[tok]; !ok {
			onlyB = append(onlyB, tok)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(common, " ")
	left := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	right := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	best := ratio(base, left)
	if s := ratio(base, right); s > best {
		best = s
	}
	if s := ratio(left, right); s > best {
		best = s
	}
	return best
}

// partialRatio scores the best-aligning window of the longer text against
// the shorter one.
func partialRatio(a, b string) float64 {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if strings.Contains(string(longer), string(shorter)) {
		return 100
	}

	best := 0.0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		window := string(longer[i : i+len(shorter)])
		if s := ratio(string(shorter), window); s > best {
			best = s
		}
	}
	return best
}

func sortedTokens(s string) string {
	tokens := strings.Split(s, " ")
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Split(s, " ") {
		set[tok] = struct{}{}
	}
	return set
}
