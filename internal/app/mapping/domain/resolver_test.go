package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderLine(company, order string, line int64, item string) OrderLineRecord {
	return OrderLineRecord{CompanyCode: company, OrderNumber: order, LineNumber: line, ItemID: item}
}

func labeledLine(company, order string, line int64, label string) LabeledRecord {
	return LabeledRecord{CompanyCode: company, OrderNumber: order, LineNumber: line, ProductLabel: label}
}

func TestResolveMappings_MajorityWins(t *testing.T) {
	orderLines := []OrderLineRecord{
		orderLine("C01", "O1", 1, "X"),
		orderLine("C01", "O2", 1, "X"),
		orderLine("C01", "O3", 1, "X"),
	}
	labeled := []LabeledRecord{
		labeledLine("C01", "O1", 1, "Blinds"),
		labeledLine("C01", "O2", 1, "Blinds"),
		labeledLine("C01", "O3", 1, "Shades"),
	}

	got := ResolveMappings(orderLines, labeled)

	require.Len(t, got, 1)
	assert.Equal(t, ResolvedMapping{CompanyCode: "C01", ItemID: "X", ProductLabel: "Blinds"}, got[0])
}

func TestResolveMappings_UnmatchedOccurrenceDropped(t *testing.T) {
	orderLines := []OrderLineRecord{
		orderLine("C01", "O1", 1, "X"),
		orderLine("C01", "O2", 1, "X"),
		orderLine("C01", "O3", 1, "X"),
	}
	// No labeled row for O3: that occurrence contributes nothing.
	labeled := []LabeledRecord{
		labeledLine("C01", "O1", 1, "Blinds"),
		labeledLine("C01", "O2", 1, "Blinds"),
	}

	got := ResolveMappings(orderLines, labeled)

	require.Len(t, got, 1)
	assert.Equal(t, "Blinds", got[0].ProductLabel)
}

func TestResolveMappings_EmptyInputs(t *testing.T) {
	t.Run("no labeled records yields empty output", func(t *testing.T) {
		got := ResolveMappings([]OrderLineRecord{orderLine("C01", "O1", 1, "X")}, nil)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("no order lines yields empty output", func(t *testing.T) {
		got := ResolveMappings(nil, []LabeledRecord{labeledLine("C01", "O1", 1, "Blinds")})
		assert.Empty(t, got)
	})

	t.Run("disjoint key spaces yield empty output", func(t *testing.T) {
		got := ResolveMappings(
			[]OrderLineRecord{orderLine("C01", "O1", 1, "X")},
			[]LabeledRecord{labeledLine("C02", "O9", 3, "Blinds")},
		)
		assert.Empty(t, got)
	})
}

func TestResolveMappings_TieBreakIsFirstEncountered(t *testing.T) {
	orderLines := []OrderLineRecord{
		orderLine("C01", "O1", 1, "X"),
		orderLine("C01", "O2", 1, "X"),
	}
	labeled := []LabeledRecord{
		labeledLine("C01", "O1", 1, "Shades"),
		labeledLine("C01", "O2", 1, "Blinds"),
	}

	// Counts tie 1-1; the label joined to the earlier order line wins.
	got := ResolveMappings(orderLines, labeled)
	require.Len(t, got, 1)
	assert.Equal(t, "Shades", got[0].ProductLabel)

	// Same input, same pick, every time.
	for range 10 {
		again := ResolveMappings(orderLines, labeled)
		assert.Equal(t, got, again)
	}
}

func TestResolveMappings_SingleOccurrenceWins(t *testing.T) {
	got := ResolveMappings(
		[]OrderLineRecord{orderLine("C02", "O7", 2, "Y")},
		[]LabeledRecord{labeledLine("C02", "O7", 2, "Screens")},
	)

	require.Len(t, got, 1)
	assert.Equal(t, ResolvedMapping{CompanyCode: "C02", ItemID: "Y", ProductLabel: "Screens"}, got[0])
}

func TestResolveMappings_OutputSortedByCompanyThenItem(t *testing.T) {
	orderLines := []OrderLineRecord{
		orderLine("C02", "O1", 1, "B"),
		orderLine("C01", "O2", 1, "Z"),
		orderLine("C01", "O3", 1, "A"),
		orderLine("C02", "O4", 1, "A"),
	}
	labeled := []LabeledRecord{
		labeledLine("C02", "O1", 1, "L1"),
		labeledLine("C01", "O2", 1, "L2"),
		labeledLine("C01", "O3", 1, "L3"),
		labeledLine("C02", "O4", 1, "L4"),
	}

	got := ResolveMappings(orderLines, labeled)

	require.Len(t, got, 4)
	assert.Equal(t, "C01", got[0].CompanyCode)
	assert.Equal(t, "A", got[0].ItemID)
	assert.Equal(t, "C01", got[1].CompanyCode)
	assert.Equal(t, "Z", got[1].ItemID)
	assert.Equal(t, "C02", got[2].CompanyCode)
	assert.Equal(t, "A", got[2].ItemID)
	assert.Equal(t, "C02", got[3].CompanyCode)
	assert.Equal(t, "B", got[3].ItemID)
}

func TestResolveMappings_MalformedOrderLinesSkipped(t *testing.T) {
	orderLines := []OrderLineRecord{
		orderLine("", "O1", 1, "X"),
		orderLine("C01", "", 1, "X"),
		orderLine("C01", "O1", 1, ""),
		orderLine("C01", "O1", 1, "X"),
	}
	labeled := []LabeledRecord{
		labeledLine("C01", "O1", 1, "Blinds"),
		labeledLine("", "O1", 1, "Noise"),
	}

	got := ResolveMappings(orderLines, labeled)

	require.Len(t, got, 1)
	assert.Equal(t, ResolvedMapping{CompanyCode: "C01", ItemID: "X", ProductLabel: "Blinds"}, got[0])
}

func TestResolveMappings_EmptyLabelsDiscarded(t *testing.T) {
	orderLines := []OrderLineRecord{
		orderLine("C01", "O1", 1, "X"),
		orderLine("C01", "O2", 1, "X"),
	}
	labeled := []LabeledRecord{
		labeledLine("C01", "O1", 1, ""),
		labeledLine("C01", "O2", 1, "Blinds"),
	}

	got := ResolveMappings(orderLines, labeled)

	require.Len(t, got, 1)
	assert.Equal(t, "Blinds", got[0].ProductLabel)
}

func TestResolveMappings_DuplicateLabeledKeyFirstWins(t *testing.T) {
	orderLines := []OrderLineRecord{orderLine("C01", "O1", 1, "X")}
	labeled := []LabeledRecord{
		labeledLine("C01", "O1", 1, "First"),
		labeledLine("C01", "O1", 1, "Second"),
	}

	got := ResolveMappings(orderLines, labeled)

	require.Len(t, got, 1)
	assert.Equal(t, "First", got[0].ProductLabel)
}

func TestResolveMappings_CompaniesVoteIndependently(t *testing.T) {
	orderLines := []OrderLineRecord{
		orderLine("C01", "O1", 1, "X"),
		orderLine("C01", "O2", 1, "X"),
		orderLine("C02", "O3", 1, "X"),
	}
	labeled := []LabeledRecord{
		labeledLine("C01", "O1", 1, "Blinds"),
		labeledLine("C01", "O2", 1, "Blinds"),
		labeledLine("C02", "O3", 1, "Shades"),
	}

	got := ResolveMappings(orderLines, labeled)

	require.Len(t, got, 2)
	assert.Equal(t, ResolvedMapping{CompanyCode: "C01", ItemID: "X", ProductLabel: "Blinds"}, got[0])
	assert.Equal(t, ResolvedMapping{CompanyCode: "C02", ItemID: "X", ProductLabel: "Shades"}, got[1])
}

func TestResolveMappings_MajorityCorrectnessProperty(t *testing.T) {
	// Every selected label must have a count >= every other label observed
	// for that pair.
	orderLines := []OrderLineRecord{
		orderLine("C01", "O1", 1, "X"),
		orderLine("C01", "O1", 2, "X"),
		orderLine("C01", "O2", 1, "X"),
		orderLine("C01", "O2", 2, "X"),
		orderLine("C01", "O3", 1, "X"),
	}
	labeled := []LabeledRecord{
		labeledLine("C01", "O1", 1, "A"),
		labeledLine("C01", "O1", 2, "B"),
		labeledLine("C01", "O2", 1, "B"),
		labeledLine("C01", "O2", 2, "B"),
		labeledLine("C01", "O3", 1, "A"),
	}

	got := ResolveMappings(orderLines, labeled)

	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].ProductLabel) // 3 beats 2
}
