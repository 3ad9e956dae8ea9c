// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/storybook/pkg/types"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "index", "stories.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

var stories = []types.Story{
	{ID: 1, Title: "시간우체통", Author: "곽민서", Image: "image/compressed/1.곽민서.jpeg", Content: "편지가 도착했다"},
	{ID: 6, Title: "Creepy Smile", Author: "고은준", Image: "image/compressed/6.고은준.png", Content: "100% real smile_here"},
	{ID: 6, Title: "그림자의 밤", Author: "궉민아", Image: "image/placeholder.png", Content: "밤이 깊었다"},
}

func TestReplaceAndAll(t *testing.T) {
	c := testCatalog(t)
	ctx := context.Background()

	require.NoError(t, c.Replace(ctx, stories))
	got, err := c.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, stories, got)

	require.NoError(t, c.Replace(ctx, stories[:1]))
	got, err = c.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, stories[:1], got)

	require.NoError(t, c.Replace(ctx, nil))
	got, err = c.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearch(t *testing.T) {
	c := testCatalog(t)
	ctx := context.Background()
	require.NoError(t, c.Replace(ctx, stories))

	tests := []struct {
		name    string
		query   string
		limit   int
		wantIDs []int
	}{
		{name: "title", query: "우체통", wantIDs: []int{1}},
		{name: "author", query: "궉민아", wantIDs: []int{6}},
		{name: "content", query: "밤", wantIDs: []int{6}},
		{name: "ascii case-insensitive", query: "creepy", wantIDs: []int{6}},
		{name: "literal percent", query: "100%", wantIDs: []int{6}},
		{name: "literal underscore", query: "e_h", wantIDs: []int{6}},
		{name: "underscore is not a wildcard", query: "y_S"},
		{name: "image path not searched", query: "placeholder"},
		{name: "limit", query: "다", limit: 1, wantIDs: []int{1}},
		{name: "no match", query: "없는 이야기"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Search(ctx, tt.query, tt.limit)
			require.NoError(t, err)
			ids := []int{}
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			want := tt.wantIDs
			if want == nil {
				want = []int{}
			}
			assert.Equal(t, want, ids)
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now \\ ok`, escapeLike(`50% off_now \ ok`))
}
