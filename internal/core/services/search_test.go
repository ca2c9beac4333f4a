package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch-cli/internal/core/domain"
)

func idsN(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("r%d", i)
	}
	return ids
}

func TestSearchController_EmptyQueryIsValidation(t *testing.T) {
	svc := newMockRetrieval()
	sc := NewSearchController(svc, 5)

	for _, q := range []string{"", "   ", "\t\n"} {
		_, _, err := sc.RunSearch(context.Background(), q, domain.QueryModeBoolean)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
		assert.True(t, errors.Is(err, domain.ErrEmptyQuery))
	}
	assert.Equal(t, 0, svc.callCount("query"))
}

func TestSearchController_InvalidMode(t *testing.T) {
	svc := newMockRetrieval()
	sc := NewSearchController(svc, 5)

	_, _, err := sc.RunSearch(context.Background(), "cat", domain.QueryMode("fuzzy"))
	assert.True(t, errors.Is(err, domain.ErrInvalidQueryMode))
	assert.Equal(t, 0, svc.callCount("query"))
}

func TestSearchController_SuccessResetsPage(t *testing.T) {
	svc := newMockRetrieval()
	svc.RunQueryFunc = func(_ context.Context, _ string, _ domain.QueryMode) ([]string, error) {
		return idsN(12), nil
	}
	sc := NewSearchController(svc, 5)

	_, _, err := sc.RunSearch(context.Background(), "cat", domain.QueryModeBoolean)
	require.NoError(t, err)
	assert.Equal(t, 3, sc.SetPage(3).Page)

	_, _, err = sc.RunSearch(context.Background(), "dog", domain.QueryModeProximity)
	require.NoError(t, err)

	ids, w := sc.CurrentPage()
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, []string{"r0", "r1", "r2", "r3", "r4"}, ids)
	q, mode := sc.Query()
	assert.Equal(t, "dog", q)
	assert.Equal(t, domain.QueryModeProximity, mode)
}

func TestSearchController_PassesQueryAndMode(t *testing.T) {
	svc := newMockRetrieval()
	var gotQuery string
	var gotMode domain.QueryMode
	svc.RunQueryFunc = func(_ context.Context, q string, m domain.QueryMode) ([]string, error) {
		gotQuery, gotMode = q, m
		return nil, nil
	}
	sc := NewSearchController(svc, 5)

	_, _, err := sc.RunSearch(context.Background(), "  a AND b  ", "")
	require.NoError(t, err)
	assert.Equal(t, "a AND b", gotQuery)
	assert.Equal(t, domain.QueryModeBoolean, gotMode)
}

func TestSearchController_FailureLeavesState(t *testing.T) {
	svc := newMockRetrieval()
	svc.RunQueryFunc = func(_ context.Context, _ string, _ domain.QueryMode) ([]string, error) {
		return idsN(12), nil
	}
	sc := NewSearchController(svc, 5)
	_, _, err := sc.RunSearch(context.Background(), "cat", domain.QueryModeBoolean)
	require.NoError(t, err)
	sc.SetPage(2)

	beforeIDs := sc.Results()
	beforePage, beforeWindow := sc.CurrentPage()

	svc.RunQueryFunc = func(_ context.Context, _ string, _ domain.QueryMode) ([]string, error) {
		return nil, serviceErr("search")
	}
	_, _, err = sc.RunSearch(context.Background(), "dog", domain.QueryModeBoolean)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrService))

	afterPage, afterWindow := sc.CurrentPage()
	assert.Equal(t, beforeIDs, sc.Results())
	assert.Equal(t, beforePage, afterPage)
	assert.Equal(t, beforeWindow, afterWindow)
	q, _ := sc.Query()
	assert.Equal(t, "cat", q)
}

func TestSearchController_PreservesServiceOrder(t *testing.T) {
	svc := newMockRetrieval()
	svc.RunQueryFunc = func(_ context.Context, _ string, _ domain.QueryMode) ([]string, error) {
		return []string{"z", "a", "m"}, nil
	}
	sc := NewSearchController(svc, 5)
	_, _, err := sc.RunSearch(context.Background(), "x", domain.QueryModeBoolean)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, sc.Results())
}

func TestSearchController_LatestIssuedWins(t *testing.T) {
	svc := newMockRetrieval()
	slow := make(chan struct{})
	svc.RunQueryFunc = func(_ context.Context, q string, _ domain.QueryMode) ([]string, error) {
		if q == "old" {
			<-slow
			return []string{"old"}, nil
		}
		return []string{"new"}, nil
	}
	sc := NewSearchController(svc, 5)

	oldApplied := make(chan bool, 1)
	go func() {
		_, applied, _ := sc.RunSearch(context.Background(), "old", domain.QueryModeBoolean)
		oldApplied <- applied
	}()
	require.Eventually(t, func() bool { return svc.callCount("query") == 1 }, time.Second, time.Millisecond)

	_, applied, err := sc.RunSearch(context.Background(), "new", domain.QueryModeBoolean)
	require.NoError(t, err)
	assert.True(t, applied)
	close(slow)

	assert.False(t, <-oldApplied)
	assert.Equal(t, []string{"new"}, sc.Results())
}

func TestSearchController_Clear(t *testing.T) {
	svc := newMockRetrieval()
	svc.RunQueryFunc = func(_ context.Context, _ string, _ domain.QueryMode) ([]string, error) {
		return idsN(12), nil
	}
	sc := NewSearchController(svc, 5)
	_, _, err := sc.RunSearch(context.Background(), "cat", domain.QueryModeBoolean)
	require.NoError(t, err)
	sc.SetPage(3)

	sc.Clear()

	ids, w := sc.CurrentPage()
	assert.Empty(t, ids)
	assert.Equal(t, 1, w.Page)
	assert.Empty(t, sc.Results())
}

func TestSearchController_ClearDropsInFlight(t *testing.T) {
	svc := newMockRetrieval()
	slow := make(chan struct{})
	svc.RunQueryFunc = func(_ context.Context, _ string, _ domain.QueryMode) ([]string, error) {
		<-slow
		return []string{"late"}, nil
	}
	sc := NewSearchController(svc, 5)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _, _ = sc.RunSearch(context.Background(), "cat", domain.QueryModeBoolean)
	}()
	require.Eventually(t, func() bool { return svc.callCount("query") == 1 }, time.Second, time.Millisecond)

	sc.Clear()
	close(slow)
	<-done

	assert.Empty(t, sc.Results())
}
