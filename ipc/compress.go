package ipc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

func compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(src); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	return buf.Bytes(), nil
}

// decompress refuses output larger than MaxFrame.
func decompress(src []byte) ([]byte, error) {
	zr := lz4.NewReader(bytes.NewReader(src))
	out, err := io.ReadAll(io.LimitReader(zr, MaxFrame+1))
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	if len(out) > MaxFrame {
		return nil, fmt.Errorf("lz4 decompress: envelope exceeds %d bytes", MaxFrame)
	}
	return out, nil
}
