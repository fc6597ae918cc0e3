package summary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shimajima-eiji/obsidian-waka-box/internal/wakatime"
)

type mockFetcher struct {
	sum   *wakatime.Summary
	err   error
	calls int
}

func (m *mockFetcher) Fetch(ctx context.Context, date string) (*wakatime.Summary, error) {
	m.calls++
	return m.sum, m.err
}

type mapCache struct {
	entries map[string]*wakatime.Summary
	puts    int
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]*wakatime.Summary)}
}

func (c *mapCache) Get(date string) (*wakatime.Summary, bool) {
	s, ok := c.entries[date]
	return s, ok
}

func (c *mapCache) Put(date string, sum *wakatime.Summary) {
	c.puts++
	c.entries[date] = sum
}

func testSummary(name string) *wakatime.Summary {
	return &wakatime.Summary{
		Data: []wakatime.Day{
			{Languages: []wakatime.Language{{Name: name, Text: "1 hr", Percent: 100}}},
		},
	}
}

func TestGetCacheHitSkipsNetwork(t *testing.T) {
	f := &mockFetcher{sum: testSummary("fresh")}
	c := newMapCache()
	c.entries["2025-03-10"] = testSummary("cached")

	svc := NewService(f, c, nil)
	sum, fromCache, err := svc.Get(context.Background(), "2025-03-10", false)

	require.NoError(t, err)
	require.True(t, fromCache)
	require.Equal(t, "cached", sum.Data[0].Languages[0].Name)
	require.Zero(t, f.calls, "cache hit must not invoke the fetcher")
}

func TestGetCacheMissFetchesAndPersists(t *testing.T) {
	f := &mockFetcher{sum: testSummary("fresh")}
	c := newMapCache()

	svc := NewService(f, c, nil)
	sum, fromCache, err := svc.Get(context.Background(), "2025-03-10", false)

	require.NoError(t, err)
	require.False(t, fromCache)
	require.Equal(t, "fresh", sum.Data[0].Languages[0].Name)
	require.Equal(t, 1, f.calls)
	require.Equal(t, 1, c.puts, "successful fetch must refresh the cache")
}

func TestGetForceBypassesCache(t *testing.T) {
	f := &mockFetcher{sum: testSummary("fresh")}
	c := newMapCache()
	c.entries["2025-03-10"] = testSummary("cached")

	svc := NewService(f, c, nil)
	sum, fromCache, err := svc.Get(context.Background(), "2025-03-10", true)

	require.NoError(t, err)
	require.False(t, fromCache)
	require.Equal(t, "fresh", sum.Data[0].Languages[0].Name)
	require.Equal(t, 1, f.calls, "force must always invoke the fetcher")
	require.Equal(t, "fresh", c.entries["2025-03-10"].Data[0].Languages[0].Name,
		"force must overwrite the cache entry")
}

func TestGetFetchFailure(t *testing.T) {
	fetchErr := errors.New("boom")
	f := &mockFetcher{err: fetchErr}
	c := newMapCache()

	svc := NewService(f, c, nil)
	sum, fromCache, err := svc.Get(context.Background(), "2025-03-10", false)

	require.Nil(t, sum)
	require.False(t, fromCache)
	require.ErrorIs(t, err, fetchErr)
	require.Zero(t, c.puts, "failed fetch must not touch the cache")
	require.Equal(t, 1, f.calls, "no retry within a single call")
}
