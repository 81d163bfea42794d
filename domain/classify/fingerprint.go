package classify

import (
	"fmt"
	"sort"
	"strings"

	"classbench/domain/core"
)

// Fingerprint hashes the canonical form of the sample multiset. Two
// sets with the same samples in any order produce the same hash, which
// lets stored experiments be audited for reproducibility.
func (s SampleSet) Fingerprint() core.Hash {
	canonical := make(SampleSet, len(s))
	copy(canonical, s)
	sort.Slice(canonical, func(i, j int) bool {
		if canonical[i].Feature != canonical[j].Feature {
			return canonical[i].Feature < canonical[j].Feature
		}
		return canonical[i].Label < canonical[j].Label
	})

	var data strings.Builder
	for _, sample := range canonical {
		fmt.Fprintf(&data, "%x:%d;", sample.Feature, sample.Label)
	}
	return core.NewHash([]byte(data.String()))
}
