package qr

import (
	"github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 256
	MinSize     = 128
	MaxSize     = 1024
)

// PNG encodes content as a square QR image of size pixels, clamped to [MinSize, MaxSize].
func PNG(content string, size int) ([]byte, error) {
	switch {
	case size <= 0:
		size = DefaultSize
	case size < MinSize:
		size = MinSize
	case size > MaxSize:
		size = MaxSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}
