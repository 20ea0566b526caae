package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cocosip/go-huffman-codec/codec"
	"github.com/cocosip/go-huffman-codec/huffman"
	"github.com/cocosip/go-huffman-codec/internal/service"
)

type CodecHandler struct {
	svc          *service.CodecService
	maxBodyBytes int64
}

func NewCodecHandler(s *service.CodecService, maxBodyBytes int64) *CodecHandler {
	return &CodecHandler{svc: s, maxBodyBytes: maxBodyBytes}
}

type codecResp struct {
	Name      string `json:"name"`
	Signature string `json:"signature"`
	Extension string `json:"extension"`
}

type symbolCountResp struct {
	Symbol int    `json:"symbol"`
	Label  string `json:"label"`
	Count  uint64 `json:"count"`
}

type codeResp struct {
	Symbol int    `json:"symbol"`
	Label  string `json:"label"`
	Code   string `json:"code"`
}

type analyzeResp struct {
	OriginalSize   int               `json:"original_size"`
	CompressedSize int               `json:"compressed_size"`
	EncodedBits    uint64            `json:"encoded_bits"`
	Padding        uint8             `json:"padding"`
	Ratio          float64           `json:"ratio"`
	Frequencies    []symbolCountResp `json:"frequencies"`
	Codes          []codeResp        `json:"codes"`
	Tree           string            `json:"tree"`
}

// readBody reads the whole request body, answering 413 when it exceeds the
// configured limit. It reports false when a response has been written.
func (h *CodecHandler) readBody(c *gin.Context) ([]byte, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return data, true
}

func (h *CodecHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, codec.ErrCodecNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case service.IsInvalidInput(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *CodecHandler) List(c *gin.Context) {
	codecs := h.svc.Codecs()
	out := make([]codecResp, 0, len(codecs))
	for _, cd := range codecs {
		out = append(out, codecResp{Name: cd.Name(), Signature: cd.Signature(), Extension: cd.Extension()})
	}
	c.JSON(http.StatusOK, out)
}

func (h *CodecHandler) Compress(c *gin.Context) {
	data, ok := h.readBody(c)
	if !ok {
		return
	}
	out, cd, err := h.svc.Compress(c.Query("codec"), data)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Header("X-Original-Size", strconv.Itoa(len(data)))
	c.Header("X-Codec", cd.Name())
	c.Data(http.StatusOK, "application/octet-stream", out)
}

func (h *CodecHandler) Decompress(c *gin.Context) {
	data, ok := h.readBody(c)
	if !ok {
		return
	}
	out, cd, err := h.svc.Decompress(data)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Header("X-Codec", cd.Name())
	c.Data(http.StatusOK, "application/octet-stream", out)
}

func (h *CodecHandler) Analyze(c *gin.Context) {
	data, ok := h.readBody(c)
	if !ok {
		return
	}
	a, err := h.svc.Analyze(data)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := analyzeResp{
		OriginalSize:   a.OriginalSize,
		CompressedSize: a.CompressedSize,
		EncodedBits:    a.EncodedBits,
		Padding:        a.Padding,
		Ratio:          a.Ratio(),
		Frequencies:    make([]symbolCountResp, 0, a.Table.Len()),
		Codes:          make([]codeResp, 0, a.Table.Len()),
		Tree:           a.Tree.Preorder(),
	}
	for _, e := range a.Table.DisplayOrder() {
		resp.Frequencies = append(resp.Frequencies, symbolCountResp{
			Symbol: int(e.Symbol),
			Label:  huffman.SymbolLabel(e.Symbol),
			Count:  e.Count,
		})
	}
	if a.Codes != nil {
		for _, e := range a.Codes.Entries() {
			resp.Codes = append(resp.Codes, codeResp{
				Symbol: int(e.Symbol),
				Label:  huffman.SymbolLabel(e.Symbol),
				Code:   e.Code.String(),
			})
		}
	}
	c.JSON(http.StatusOK, resp)
}
