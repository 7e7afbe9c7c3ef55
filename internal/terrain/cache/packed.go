package cache

import (
	"bufio"
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// packedVersion is bumped when the packed framing changes incompatibly.
const packedVersion = 1

type packedHeader struct {
	Version int `json:"version"`
	CX      int `json:"cx"`
	CY      int `json:"cy"`
}

// EncodePacked frames a quantized chunk as a zstd-compressed blob: a JSON
// header line for cheap identification, then a gob body. The blob is an
// in-memory interchange format for tooling (dumps, previews, diffing); the
// cache itself never stores packed blobs.
func EncodePacked(cc *CachedChunk) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}

	bw := bufio.NewWriter(enc)
	hb, _ := json.Marshal(packedHeader{Version: packedVersion, CX: cc.CX, CY: cc.CY})
	if _, err := bw.Write(hb); err != nil {
		return nil, err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return nil, err
	}
	if err := gob.NewEncoder(bw).Encode(cc); err != nil {
		return nil, fmt.Errorf("gob encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodePacked reverses EncodePacked.
func DecodePacked(b []byte) (*CachedChunk, error) {
	dec, err := zstd.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	br := bufio.NewReader(dec)
	line, err := br.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("packed header: %w", err)
	}
	var hdr packedHeader
	if err := json.Unmarshal(bytes.TrimSpace(line), &hdr); err != nil {
		return nil, fmt.Errorf("packed header: %w", err)
	}
	if hdr.Version != packedVersion {
		return nil, fmt.Errorf("packed version %d not supported", hdr.Version)
	}

	var cc CachedChunk
	if err := gob.NewDecoder(br).Decode(&cc); err != nil {
		return nil, fmt.Errorf("gob decode: %w", err)
	}
	return &cc, nil
}
