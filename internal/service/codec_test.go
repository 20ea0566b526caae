package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cocosip/go-huffman-codec/codec"
	"github.com/cocosip/go-huffman-codec/huffman"
	"github.com/cocosip/go-huffman-codec/internal/logger"
)

func TestCompressDecompress(t *testing.T) {
	svc := NewCodecService(logger.Discard())

	data := []byte("she sells sea shells by the sea shore")
	compressed, c, err := svc.Compress("", data)
	require.NoError(t, err)
	require.Equal(t, "huffman", c.Name())

	out, c, err := svc.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, "huffman", c.Name())
	require.Equal(t, data, out)
}

func TestCompressUnknownCodec(t *testing.T) {
	svc := NewCodecService(logger.Discard())
	_, _, err := svc.Compress("lzw", []byte("x"))
	require.True(t, errors.Is(err, codec.ErrCodecNotFound), "got %v", err)
	require.False(t, IsInvalidInput(err))
}

func TestDecompressInvalidInput(t *testing.T) {
	svc := NewCodecService(logger.Discard())

	_, _, err := svc.Decompress([]byte("not a huffman file"))
	require.True(t, errors.Is(err, codec.ErrUnknownSignature), "got %v", err)
	require.True(t, IsInvalidInput(err))

	compressed, _, err := svc.Compress("huffman", []byte("abracadabra"))
	require.NoError(t, err)
	_, _, err = svc.Decompress(compressed[:len(compressed)-1])
	require.True(t, errors.Is(err, huffman.ErrCorruptData), "got %v", err)
	require.True(t, IsInvalidInput(err))

	_, _, err = svc.Decompress([]byte("HUF1\x05"))
	require.True(t, errors.Is(err, huffman.ErrFormat), "got %v", err)
	require.True(t, IsInvalidInput(err))
}

func TestConcurrentCalls(t *testing.T) {
	svc := NewCodecService(logger.Discard())

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			data := make([]byte, 2000+i)
			for j := range data {
				data[j] = byte(j * (i + 1) % 97)
			}
			compressed, _, err := svc.Compress("", data)
			if err != nil {
				errs <- err
				return
			}
			out, _, err := svc.Decompress(compressed)
			if err != nil {
				errs <- err
				return
			}
			if string(out) != string(data) {
				errs <- errors.New("round trip mismatch")
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func TestAnalyze(t *testing.T) {
	svc := NewCodecService(logger.Discard())
	a, err := svc.Analyze([]byte("abracadabra"))
	require.NoError(t, err)
	require.Equal(t, 55, a.CompressedSize)
	require.NotEmpty(t, svc.Codecs())
}
