//go:build unit

package qr_test

import (
	"bytes"
	"image/png"
	"testing"

	"course-marketplace/internal/pkg/qr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNG(t *testing.T) {
	url := "https://example.com/verify/CERT-A1B2C3-0F9E8D-7K2"

	cases := []struct {
		name string
		size int
		want int
	}{
		{name: "default when unset", size: 0, want: qr.DefaultSize},
		{name: "within bounds", size: 300, want: 300},
		{name: "clamped up", size: 16, want: qr.MinSize},
		{name: "clamped down", size: 5000, want: qr.MaxSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := qr.PNG(url, tc.size)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, tc.want, img.Bounds().Dx())
			assert.Equal(t, tc.want, img.Bounds().Dy())
		})
	}
}
