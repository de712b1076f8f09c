package repo

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"sort"

	"github.com/light-bringer/prodmap-service/internal/app/mapping/contracts"
	"github.com/light-bringer/prodmap-service/internal/app/mapping/domain"
)

// Synthetic data shape: a handful of companies, items with one dominant
// label each, and a noise rate that flips some labeled lines to a different
// label to simulate the ambiguity the resolver exists to settle.
const (
	syntheticLineCount = 3000
	syntheticNoiseRate = 0.08
)

var syntheticCompanies = []string{"C01", "C02", "C03"}

var syntheticLabelOf = map[string]string{
	"0010-R01":  "010 - Venetian Blinds",
	"0015-R01":  "015 - Wood Blinds",
	"0020-R01":  "020 - Vertical Blinds",
	"0030-R01":  "030 - Pleated Blinds",
	"0032-R01":  "032 - Duette Blinds",
	"0040-R01":  "040 - Roller Blinds",
	"0042-R01":  "042 - Roman Shades",
	"0088-R01":  "088 - Insect Screens",
	"1870140":   "040 - Roller Blinds",
	"1870156":   "098 - Undefined/Various",
	"3410-1036": "010 - Venetian Blinds",
	"3440-1034": "040 - Roller Blinds",
	"3432-1015": "032 - Duette Blinds",
	"390010060": "094 - Order Surcharges",
}

// SyntheticSource implements RecordSource with seeded sample data for
// offline use and testing. The same seed always produces the same record
// sets; both sets are materialized once at construction so repeated calls
// observe one consistent world.
type SyntheticSource struct {
	companies  []string
	orderLines []domain.OrderLineRecord
	labeled    []domain.LabeledRecord
}

// NewSyntheticSource creates a synthetic RecordSource from the given seed.
func NewSyntheticSource(seed int64) contracts.RecordSource {
	rng := rand.New(rand.NewSource(seed))

	items := make([]string, 0, len(syntheticLabelOf))
	labelSet := make(map[string]struct{})
	for item, label := range syntheticLabelOf {
		items = append(items, item)
		labelSet[label] = struct{}{}
	}
	sort.Strings(items)

	labels := make([]string, 0, len(labelSet))
	for label := range labelSet {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	s := &SyntheticSource{companies: syntheticCompanies}
	for i := 0; i < syntheticLineCount; i++ {
		company := s.companies[rng.Intn(len(s.companies))]
		item := items[rng.Intn(len(items))]
		order := fmt.Sprintf("25-%06d", i)
		line := int64(rng.Intn(4) + 1)

		s.orderLines = append(s.orderLines, domain.OrderLineRecord{
			CompanyCode: company,
			OrderNumber: order,
			LineNumber:  line,
			ItemID:      item,
		})

		label := syntheticLabelOf[item]
		if rng.Float64() < syntheticNoiseRate {
			label = pickOtherLabel(rng, labels, label)
		}
		s.labeled = append(s.labeled, domain.LabeledRecord{
			CompanyCode:  company,
			OrderNumber:  order,
			LineNumber:   line,
			ProductLabel: label,
		})
	}
	return s
}

// CompanyCodes returns the fixed synthetic companies.
func (s *SyntheticSource) CompanyCodes(_ context.Context) ([]string, error) {
	return slices.Clone(s.companies), nil
}

// OrderLines returns the generated order-line records for the given
// companies.
func (s *SyntheticSource) OrderLines(_ context.Context, companyCodes []string) ([]domain.OrderLineRecord, error) {
	records := make([]domain.OrderLineRecord, 0, len(s.orderLines))
	for _, r := range s.orderLines {
		if slices.Contains(companyCodes, r.CompanyCode) {
			records = append(records, r)
		}
	}
	return records, nil
}

// LabeledLines returns the generated labeled records for the given
// companies.
func (s *SyntheticSource) LabeledLines(_ context.Context, companyCodes []string) ([]domain.LabeledRecord, error) {
	records := make([]domain.LabeledRecord, 0, len(s.labeled))
	for _, r := range s.labeled {
		if slices.Contains(companyCodes, r.CompanyCode) {
			records = append(records, r)
		}
	}
	return records, nil
}

// pickOtherLabel returns a label different from base, chosen from the
// sorted distinct label list so noise is reproducible for a fixed seed.
func pickOtherLabel(rng *rand.Rand, labels []string, base string) string {
	for {
		candidate := labels[rng.Intn(len(labels))]
		if candidate != base {
			return candidate
		}
	}
}
