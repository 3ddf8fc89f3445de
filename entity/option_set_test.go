package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionSetKeyOrderIndependent(t *testing.T) {
	assert.Equal(t, OptionSetKey([]uint{3, 1, 2}), OptionSetKey([]uint{1, 2, 3}))
	assert.Equal(t, OptionSetKey([]uint{2, 3, 1}), OptionSetKey([]uint{1, 2, 3}))
	assert.Equal(t, "1-2-3", OptionSetKey([]uint{3, 1, 2}))
}

func TestOptionSetKeyEdgeCases(t *testing.T) {
	assert.Equal(t, "", OptionSetKey(nil))
	assert.Equal(t, "7", OptionSetKey([]uint{7}))
	// duplicates are not filtered — callers supply at most one id per type
	assert.Equal(t, "5-5", OptionSetKey([]uint{5, 5}))
}

func TestOptionSetKeyDoesNotMutateInput(t *testing.T) {
	ids := []uint{9, 1, 4}
	OptionSetKey(ids)
	assert.Equal(t, []uint{9, 1, 4}, ids)
}

func TestOptionIDMapKey(t *testing.T) {
	a := OptionIDMap{1: 10, 2: 20}
	b := OptionIDMap{2: 20, 1: 10}
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, "10-20", a.Key())
}

func TestOptionIDMapTypeIDsSorted(t *testing.T) {
	m := OptionIDMap{5: 50, 1: 10, 3: 30}
	assert.Equal(t, []uint{1, 3, 5}, m.TypeIDs())
}
