package entity

import (
	"sort"
	"strconv"
	"strings"
)

// OptionIDMap คือ selection ของ user: variation type id -> option id ที่เลือก
type OptionIDMap map[uint]uint

// Values returns the selected option ids. Order is not defined; use
// OptionSetKey for identity and TypeIDs for deterministic iteration.
func (m OptionIDMap) Values() []uint {
	ids := make([]uint, 0, len(m))
	for _, id := range m {
		ids = append(ids, id)
	}
	return ids
}

// TypeIDs returns the variation type ids in ascending order.
func (m OptionIDMap) TypeIDs() []uint {
	ids := make([]uint, 0, len(m))
	for typeID := range m {
		ids = append(ids, typeID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Key is the canonical identity of the selection, independent of map order.
func (m OptionIDMap) Key() string {
	return OptionSetKey(m.Values())
}

// OptionSetKey canonicalizes a set of option ids: sort ascending, join with "-".
// Two selections are the same cart line iff their keys are equal.
func OptionSetKey(optionIDs []uint) string {
	ids := make([]uint, len(optionIDs))
	copy(ids, optionIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, "-")
}
