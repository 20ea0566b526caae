package huffman

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildFrequencyTable(t *testing.T) {
	ft := BuildFrequencyTable([]byte("abracadabra"))

	require.Equal(t, 5, ft.Len())
	require.Equal(t, uint64(11), ft.Total())
	require.Equal(t, uint64(5), ft.Count('a'))
	require.Equal(t, uint64(2), ft.Count('b'))
	require.Equal(t, uint64(2), ft.Count('r'))
	require.Equal(t, uint64(1), ft.Count('c'))
	require.Equal(t, uint64(1), ft.Count('d'))
	require.Zero(t, ft.Count('z'))
}

func TestBuildFrequencyTableEmpty(t *testing.T) {
	ft := BuildFrequencyTable(nil)
	require.Zero(t, ft.Len())
	require.Zero(t, ft.Total())
	require.Empty(t, ft.Entries())
	require.Empty(t, ft.DisplayOrder())
}

func TestFrequencyTableOrders(t *testing.T) {
	ft := BuildFrequencyTable([]byte("abracadabra"))

	require.Equal(t, []SymbolCount{
		{'a', 5}, {'b', 2}, {'c', 1}, {'d', 1}, {'r', 2},
	}, ft.Entries())

	require.Equal(t, []SymbolCount{
		{'a', 5}, {'b', 2}, {'r', 2}, {'c', 1}, {'d', 1},
	}, ft.DisplayOrder())
}

func TestFrequencyTableMarshal(t *testing.T) {
	ft := BuildFrequencyTable([]byte("aab"))

	data, err := ft.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x02, 0x00,
		'a', 0x02, 0, 0, 0, 0, 0, 0, 0,
		'b', 0x01, 0, 0, 0, 0, 0, 0, 0,
	}, data)
	require.Len(t, data, ft.BinarySize())

	var got FrequencyTable
	require.NoError(t, got.UnmarshalBinary(data))
	require.Equal(t, ft.Entries(), got.Entries())
	require.Equal(t, ft.Len(), got.Len())
}

func TestReadFrequencyTableStopsAtEnd(t *testing.T) {
	ft := BuildFrequencyTable([]byte("hello, world"))
	data, err := ft.MarshalBinary()
	require.NoError(t, err)

	r := bytes.NewReader(append(data, 0xAA, 0xBB))
	got, err := ReadFrequencyTable(r)
	require.NoError(t, err)
	require.Equal(t, ft.Entries(), got.Entries())
	require.Equal(t, 2, r.Len())
}

func TestFrequencyTableMalformed(t *testing.T) {
	entry := func(sym byte, count byte) []byte {
		return []byte{sym, count, 0, 0, 0, 0, 0, 0, 0}
	}
	concat := func(parts ...[]byte) []byte {
		return bytes.Join(parts, nil)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "half count", data: []byte{0x01}},
		{name: "too many entries", data: []byte{0x01, 0x02}},
		{name: "truncated entry", data: concat([]byte{0x01, 0x00}, entry('a', 1)[:5])},
		{name: "missing entry", data: concat([]byte{0x02, 0x00}, entry('a', 1))},
		{name: "zero count", data: concat([]byte{0x01, 0x00}, entry('a', 0))},
		{name: "descending symbols", data: concat([]byte{0x02, 0x00}, entry('b', 1), entry('a', 1))},
		{name: "duplicate symbols", data: concat([]byte{0x02, 0x00}, entry('a', 1), entry('a', 1))},
		{name: "total overflow", data: concat([]byte{0x02, 0x00},
			[]byte{'a', 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, entry('b', 1))},
		{name: "trailing bytes", data: concat([]byte{0x01, 0x00}, entry('a', 1), []byte{0x00})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ft FrequencyTable
			err := ft.UnmarshalBinary(tt.data)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrFormat), "got %v", err)
		})
	}
}
