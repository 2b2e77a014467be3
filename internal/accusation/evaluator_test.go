package accusation

import (
	"fmt"
	"testing"

	"example.com/detective/internal/suspicion"

	"github.com/stretchr/testify/assert"
)

var roster = []string{"Mordomo", "Jardineiro", "Cozinheira"}

// indexWith builds an index holding n distinct clues for each suspect.
func indexWith(counts map[string]int) *suspicion.Index {
	ix := suspicion.New()
	for suspect, n := range counts {
		for i := 0; i < n; i++ {
			ix.Insert(fmt.Sprintf("%s clue %d", suspect, i), suspect)
		}
	}
	return ix
}

func TestRank_EmptyIndex(t *testing.T) {
	r := Rank(roster, suspicion.New())

	assert.False(t, r.Implicated())
	assert.Empty(t, r.Leaders)
	assert.Len(t, r.Counts, 3)
}

func TestRank_SingleLeader(t *testing.T) {
	r := Rank(roster, indexWith(map[string]int{"Jardineiro": 3}))

	assert.True(t, r.Implicated())
	assert.Equal(t, []string{"Jardineiro"}, r.Leaders)
	assert.Equal(t, 3, r.Top)
}

func TestRank_TieKeepsRosterOrder(t *testing.T) {
	// GIVEN counts [2,2,1] for [Mordomo, Jardineiro, Cozinheira]
	ix := indexWith(map[string]int{"Mordomo": 2, "Jardineiro": 2, "Cozinheira": 1})

	// WHEN the roster is ranked
	r := Rank(roster, ix)

	// THEN both leaders come back in roster order
	assert.Equal(t, []string{"Mordomo", "Jardineiro"}, r.Leaders)
	assert.Equal(t, []SuspectCount{{"Mordomo", 2}, {"Jardineiro", 2}, {"Cozinheira", 1}}, r.Counts)
}

func TestRank_IgnoresSuspectsOutsideRoster(t *testing.T) {
	r := Rank(roster, indexWith(map[string]int{"Desconhecido": 4, "Cozinheira": 1}))
	assert.Equal(t, []string{"Cozinheira"}, r.Leaders)
	assert.Equal(t, 1, r.Top)
}

func TestAccuse_ThresholdBoundary(t *testing.T) {
	for n, want := range map[int]bool{0: false, 1: false, 2: true, 3: true} {
		t.Run(fmt.Sprintf("%d clues", n), func(t *testing.T) {
			v := Accuse("Mordomo", indexWith(map[string]int{"Mordomo": n}))
			assert.Equal(t, want, v.Correct)
			assert.Equal(t, n, v.Count)
			assert.Equal(t, "Mordomo", v.Suspect)
		})
	}
}
