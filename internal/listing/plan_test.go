package listing

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id int
}

func (i item) Key() string { return strconv.Itoa(i.id) }

func items(ids ...int) []item {
	out := make([]item, len(ids))
	for i, id := range ids {
		out[i] = item{id: id}
	}
	return out
}

func TestPlan_RealEntriesPreserveOrder(t *testing.T) {
	tests := []struct {
		name   string
		result ResultSet[item]
	}{
		{name: "settled", result: ResultSet[item]{Items: items(3, 1, 2), Total: 3}},
		{name: "pending next page", result: ResultSet[item]{Items: items(3, 1, 2), Total: 40, IsPending: true}},
		{name: "unknown total", result: ResultSet[item]{Items: items(3, 1, 2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := Plan(tt.result, false)
			realEntries := layout.Real()
			require.Len(t, realEntries, 3)
			assert.Equal(t, []string{"3", "1", "2"}, []string{realEntries[0].Key(), realEntries[1].Key(), realEntries[2].Key()})
			for i, e := range realEntries {
				assert.Equal(t, EntryReal, e.Kind)
				assert.Equal(t, tt.result.Items[i], e.Item)
				assert.False(t, e.IsPending)
			}
		})
	}
}

func TestPlan_FirstLoadPlaceholders(t *testing.T) {
	for _, result := range []ResultSet[item]{
		{Items: nil, Total: 0, IsPending: true},
		{Items: []item{}, Total: 0, IsPending: true},
	} {
		layout := Plan(result, true)
		assert.Empty(t, layout.Real())
		require.Len(t, layout.Entries, PlaceholderCount)
		assert.Equal(t, []string{"0", "1", "2", "3", "4", "5", "6", "7"}, layout.Keys())
		for i, e := range layout.Entries {
			assert.Equal(t, EntryPlaceholder, e.Kind)
			assert.Equal(t, i, e.Index)
			assert.True(t, e.ShowCollection)
			assert.True(t, e.IsPending)
			_, ok := e.Diagram()
			assert.False(t, ok)
		}
		assert.True(t, layout.Sentinel)
	}
}

func TestPlan_PlaceholdersFollowRealItemsWhileTotalUnknown(t *testing.T) {
	layout := Plan(ResultSet[item]{Items: items(1, 2), IsPending: true}, false)
	assert.Equal(t, []string{"1", "2", "0", "1", "2", "3", "4", "5", "6", "7"}, layout.Keys())
	assert.Len(t, layout.Placeholders(), PlaceholderCount)
}

func TestPlan_NoPlaceholdersOnSubsequentPages(t *testing.T) {
	layout := Plan(ResultSet[item]{Items: items(1, 2), Total: 50, IsPending: true}, false)
	assert.Equal(t, []string{"1", "2"}, layout.Keys())
	assert.Empty(t, layout.Placeholders())
}

func TestPlan_EmptySettled(t *testing.T) {
	layout := Plan(ResultSet[item]{Items: []item{}, Total: 0, IsPending: false}, false)
	assert.Empty(t, layout.Entries)
	assert.True(t, layout.Sentinel)

	layout = Plan(ResultSet[item]{}, false)
	assert.Empty(t, layout.Entries)
	assert.True(t, layout.Sentinel)
}

func TestPlan_Idempotent(t *testing.T) {
	result := ResultSet[item]{Items: items(5, 6), Total: 0, IsPending: true}
	first := Plan(result, true)
	second := Plan(result, true)
	assert.Equal(t, first, second)
}

func TestPlan_Scenarios(t *testing.T) {
	t.Run("initial mount", func(t *testing.T) {
		layout := Plan(ResultSet[item]{IsPending: true}, true)
		require.Len(t, layout.Entries, 8)
		for _, e := range layout.Entries {
			assert.True(t, e.ShowCollection)
			assert.True(t, e.IsPending)
			assert.Equal(t, EntryPlaceholder, e.Kind)
		}
	})

	t.Run("first page arrives", func(t *testing.T) {
		layout := Plan(ResultSet[item]{Items: items(1, 2), Total: 2}, true)
		assert.Equal(t, []string{"1", "2"}, layout.Keys())
		assert.Empty(t, layout.Placeholders())
	})

	t.Run("next page pending", func(t *testing.T) {
		layout := Plan(ResultSet[item]{Items: items(1, 2), Total: 2, IsPending: true}, true)
		assert.Equal(t, []string{"1", "2"}, layout.Keys())
		assert.Empty(t, layout.Placeholders())
	})
}

func TestFirstLoad(t *testing.T) {
	assert.True(t, FirstLoad(ResultSet[item]{IsPending: true}))
	assert.False(t, FirstLoad(ResultSet[item]{IsPending: true, Total: 1}))
	assert.False(t, FirstLoad(ResultSet[item]{}))
}

func TestEntry_Key(t *testing.T) {
	assert.Equal(t, "42", Entry[item]{Kind: EntryReal, Item: item{id: 42}}.Key())
	assert.Equal(t, "3", Entry[item]{Kind: EntryPlaceholder, Index: 3}.Key())
	assert.Equal(t, "", Entry[item]{Kind: EntryKind(9)}.Key())

	assert.Equal(t, "real", EntryReal.String())
	assert.Equal(t, "placeholder", EntryPlaceholder.String())
	assert.Equal(t, "unknown", EntryKind(9).String())
}
