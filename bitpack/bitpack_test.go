package bitpack

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// bitsOf parses a string of '0' and '1' characters.
func bitsOf(s string) []bool {
	out := make([]bool, len(s))
	for i := range s {
		out[i] = s[i] == '1'
	}
	return out
}

func TestPackMSBFirst(t *testing.T) {
	tests := []struct {
		name        string
		bits        string
		wantData    []byte
		wantPadding uint8
	}{
		{name: "empty", bits: "", wantData: nil, wantPadding: 0},
		{name: "single one", bits: "1", wantData: []byte{0x80}, wantPadding: 7},
		{name: "single zero", bits: "0", wantData: []byte{0x00}, wantPadding: 7},
		{name: "full byte", bits: "10001111", wantData: []byte{0x8f}, wantPadding: 0},
		{name: "byte and a half", bits: "110011110101", wantData: []byte{0xcf, 0x50}, wantPadding: 4},
		{name: "two bytes", bits: "1000111101010101", wantData: []byte{0x8f, 0x55}, wantPadding: 0},
		{name: "seven bits", bits: "0000001", wantData: []byte{0x02}, wantPadding: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, padding, err := Pack(slices.Values(bitsOf(tt.bits)))
			require.NoError(t, err)
			if len(tt.wantData) == 0 {
				require.Empty(t, data)
			} else {
				require.Equal(t, tt.wantData, data)
			}
			require.Equal(t, tt.wantPadding, padding)
		})
	}
}

func TestPaddingBound(t *testing.T) {
	for n := 0; n < 64; n++ {
		bits := make([]bool, n)
		for i := range bits {
			bits[i] = i%3 == 0
		}
		data, padding, err := Pack(slices.Values(bits))
		require.NoError(t, err)
		require.LessOrEqual(t, padding, uint8(MaxPadding))
		require.Equal(t, uint8((8-n%8)%8), padding, "n=%d", n)
		require.Equal(t, PaddingFor(uint64(n)), padding)
		require.Len(t, data, (n+7)/8)
	}
}

func TestUnpackDropsPadding(t *testing.T) {
	seq, err := Unpack([]byte{0xcf, 0x50}, 4)
	require.NoError(t, err)
	require.Equal(t, bitsOf("110011110101"), slices.Collect(seq))

	seq, err = Unpack(nil, 0)
	require.NoError(t, err)
	require.Empty(t, slices.Collect(seq))
}

func TestUnpackStopsEarly(t *testing.T) {
	seq, err := Unpack([]byte{0xff, 0xff}, 0)
	require.NoError(t, err)

	count := 0
	for range seq {
		count++
		if count == 3 {
			break
		}
	}
	require.Equal(t, 3, count)
}

func TestUnpackInvalidPadding(t *testing.T) {
	_, err := Unpack([]byte{0x00}, 8)
	require.True(t, errors.Is(err, ErrInvalidPadding), "got %v", err)

	_, err = Unpack(nil, 3)
	require.True(t, errors.Is(err, ErrInvalidPadding), "got %v", err)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{0, 1, 7, 8, 9, 15, 16, 17, 255, 1000, 4099} {
		bits := make([]bool, n)
		for i := range bits {
			bits[i] = rng.Intn(2) == 1
		}

		data, padding, err := Pack(slices.Values(bits))
		require.NoError(t, err)

		n2, err := BitLen(data, padding)
		require.NoError(t, err)
		require.Equal(t, n, n2)

		seq, err := Unpack(data, padding)
		require.NoError(t, err)
		got := slices.Collect(seq)
		if n == 0 {
			require.Empty(t, got)
			continue
		}
		require.Equal(t, bits, got, "n=%d", n)
	}
}
