package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateMeanDepth(t *testing.T) {
	// Fractions over all depth buckets of ctg1 sum to 1.
	table := Aggregate([]Bin{
		{Contig: "ctg1", Depth: 0, Fraction: 0.25},
		{Contig: "ctg1", Depth: 2, Fraction: 0.25},
		{Contig: "ctg1", Depth: 4, Fraction: 0.5},
	})
	s, ok := table.Lookup("ctg1")
	require.True(t, ok)
	assert.True(t, s.HasMeanDepth)
	assert.True(t, s.HasPercentCovered)
	assert.InDelta(t, 0*0.25+2*0.25+4*0.5, s.MeanDepth, 1e-12)
	assert.InDelta(t, 75.0, s.Covered(), 1e-12)
}

func TestAggregateFullyCovered(t *testing.T) {
	table := Aggregate([]Bin{
		{Contig: "ctg1", Depth: 3, Fraction: 0.5},
		{Contig: "ctg1", Depth: 1, Fraction: 0.5},
	})
	s, ok := table.Lookup("ctg1")
	require.True(t, ok)
	assert.False(t, s.HasPercentCovered)
	assert.Equal(t, 100.0, s.Covered())
	assert.Equal(t, 2.0, s.MeanDepth)
}

func TestAggregateUncovered(t *testing.T) {
	table := Aggregate([]Bin{{Contig: "ctg1", Depth: 0, Fraction: 1}})
	s, ok := table.Lookup("ctg1")
	require.True(t, ok)
	assert.False(t, s.HasMeanDepth)
	assert.Equal(t, 0.0, s.Covered())

	_, ok = table.Lookup("ctg2")
	assert.False(t, ok)
}
