package domain

import "sort"

// itemPair identifies one output row of the resolution.
type itemPair struct {
	companyCode string
	itemID      string
}

// ResolveMappings joins the two record sets on their composite line key and
// selects one canonical product label per (company, item) pair by majority
// vote over the joined occurrences.
//
// The join is a pure key-equality lookup: an order line with no labeled
// counterpart, or whose counterpart carries an empty label, contributes no
// evidence. Order lines missing any key field or the item identifier are
// treated as unmatchable and skipped rather than failing the computation.
//
// If several labels tie for the highest count, the label encountered first
// in order-line input order wins, so results are reproducible for a fixed
// input ordering. The labeled source is treated as a simple key-to-label
// mapping; when it is internally inconsistent and repeats a key, the first
// record for that key wins.
//
// Output rows are sorted ascending by (company, item). Empty inputs and
// fully disjoint key spaces yield an empty, non-nil result.
func ResolveMappings(orderLines []OrderLineRecord, labeled []LabeledRecord) []ResolvedMapping {
	labelByKey := make(map[LineKey]string, len(labeled))
	for _, lr := range labeled {
		if lr.ProductLabel == "" {
			continue
		}
		key := lr.Key()
		if _, ok := labelByKey[key]; !ok {
			labelByKey[key] = lr.ProductLabel
		}
	}

	// counts[pair][label] is the number of joined occurrences of label for
	// pair; labelOrder preserves first-encounter order for the tie-break.
	counts := make(map[itemPair]map[string]int)
	labelOrder := make(map[itemPair][]string)

	for _, ol := range orderLines {
		if ol.CompanyCode == "" || ol.OrderNumber == "" || ol.ItemID == "" {
			continue
		}
		label, ok := labelByKey[ol.Key()]
		if !ok {
			continue
		}

		pair := itemPair{companyCode: ol.CompanyCode, itemID: ol.ItemID}
		byLabel := counts[pair]
		if byLabel == nil {
			byLabel = make(map[string]int)
			counts[pair] = byLabel
		}
		if _, seen := byLabel[label]; !seen {
			labelOrder[pair] = append(labelOrder[pair], label)
		}
		byLabel[label]++
	}

	out := make([]ResolvedMapping, 0, len(counts))
	for pair, byLabel := range counts {
		var winner string
		best := 0
		for _, label := range labelOrder[pair] {
			if n := byLabel[label]; n > best {
				winner = label
				best = n
			}
		}
		out = append(out, ResolvedMapping{
			CompanyCode:  pair.companyCode,
			ItemID:       pair.itemID,
			ProductLabel: winner,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CompanyCode != out[j].CompanyCode {
			return out[i].CompanyCode < out[j].CompanyCode
		}
		return out[i].ItemID < out[j].ItemID
	})

	return out
}
