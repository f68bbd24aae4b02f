package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationParamsValidate(t *testing.T) {
	tests := []struct {
		name        string
		in          PaginationParams
		wantPage    int
		wantPerPage int
	}{
		{"defaults applied", PaginationParams{Page: 0, PerPage: 0}, 1, 15},
		{"negative page", PaginationParams{Page: -3, PerPage: 20}, 1, 20},
		{"per page capped", PaginationParams{Page: 2, PerPage: 500}, 2, 100},
		{"valid untouched", PaginationParams{Page: 4, PerPage: 25}, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Validate()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantPerPage, tt.in.PerPage)
		})
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 15, 31)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	last := NewPagination(3, 15, 31)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
}

func TestCursorRoundTrip(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	encoded := EncodeCursor("abc-123", created)

	params := CursorParams{Cursor: encoded}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, "abc-123", cursor.ID)
	assert.True(t, created.Equal(cursor.CreatedAt))
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	params := CursorParams{Cursor: "not base64!!"}
	_, err := params.DecodeCursor()
	assert.Error(t, err)
}

func TestNewCursorPaginationTrimsExtraItem(t *testing.T) {
	type row struct {
		ID        string
		CreatedAt time.Time
	}
	items := []row{
		{"a", time.Now()},
		{"b", time.Now()},
		{"c", time.Now()},
	}

	meta, trimmed := NewCursorPagination(items, 2,
		func(r row) string { return r.ID },
		func(r row) time.Time { return r.CreatedAt },
	)

	assert.Len(t, trimmed, 2)
	assert.True(t, meta.HasNext)
	require.NotNil(t, meta.NextCursor)
	require.NotNil(t, meta.PrevCursor)
}
