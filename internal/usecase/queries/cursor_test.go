//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"course-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2026, 3, 1, 12, 30, 45, 123456789, time.UTC)

	gotTime, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(createdAt, id))
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.True(t, createdAt.Truncate(time.Microsecond).Equal(gotTime))
}

func TestDecodeAfterCursorErrors(t *testing.T) {
	enc := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "%%%"},
		{name: "unknown version", cursor: enc("v2:1-" + uuid.NewString())},
		{name: "missing separator", cursor: enc("v1:12345")},
		{name: "bad timestamp", cursor: enc("v1:abc-" + uuid.NewString())},
		{name: "bad uuid", cursor: enc("v1:12345-not-a-uuid")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tt.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
