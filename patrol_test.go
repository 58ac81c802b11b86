package patrol_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/patrol"
	"github.com/aretw0/patrol/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Solve(t *testing.T) {
	ctx := context.Background()
	eng, err := patrol.New()
	require.NoError(t, err)

	t.Run("Both parts", func(t *testing.T) {
		report, err := eng.Solve(ctx, strings.NewReader(exampleMap), patrol.PartAll)
		require.NoError(t, err)
		assert.Equal(t, 41, report.Visited)
		assert.Equal(t, 6, report.Loops)
		assert.Equal(t, 90, report.Candidates)
		require.NotNil(t, report.Walked)
		assert.Equal(t, 41, report.Walked.Count(domain.Visited))
	})

	t.Run("Walk only", func(t *testing.T) {
		report, err := eng.Solve(ctx, strings.NewReader(exampleMap), patrol.PartWalk)
		require.NoError(t, err)
		assert.Equal(t, 41, report.Visited)
		assert.Zero(t, report.Candidates)
	})

	t.Run("Search only", func(t *testing.T) {
		report, err := eng.Solve(ctx, strings.NewReader(exampleMap), patrol.PartSearch)
		require.NoError(t, err)
		assert.Nil(t, report.Walked)
		assert.Equal(t, 6, report.Loops)
	})

	t.Run("Malformed map", func(t *testing.T) {
		report, err := eng.Solve(ctx, strings.NewReader("..?\n.^."), patrol.PartAll)
		assert.Nil(t, report)
		assert.True(t, errors.Is(err, domain.ErrUnknownCell), "got %v", err)
	})
}

func TestNew_StepLimit(t *testing.T) {
	eng, err := patrol.New(patrol.WithStepLimit(5))
	require.NoError(t, err)

	_, err = eng.Solve(context.Background(), strings.NewReader(exampleMap), patrol.PartWalk)
	assert.ErrorIs(t, err, domain.ErrStepLimit)
}
