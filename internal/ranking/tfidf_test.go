package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVectors(t *testing.T) {
	corpus := []string{
		"python sql pipelines",
		"python modeling",
		"",
	}

	vectors := buildVectors(corpus)
	require.Len(t, vectors, 3)

	// Terms unique to a document weigh more than shared terms.
	assert.Greater(t, vectors[0]["sql"], vectors[0]["python"])
	assert.Empty(t, vectors[2])
}

func TestBuildVectorsDropsStopAndShortWords(t *testing.T) {
	vectors := buildVectors([]string{"the go of it and python"})

	require.Len(t, vectors, 1)
	assert.Contains(t, vectors[0], "python")
	assert.NotContains(t, vectors[0], "the")
	assert.NotContains(t, vectors[0], "go")
}

func TestCosineSimilarity(t *testing.T) {
	a := termVector{"python": 0.5, "sql": 0.3}
	b := termVector{"python": 0.2, "docker": 0.4}
	c := termVector{"haskell": 1.0}

	assert.Greater(t, cosineSimilarity(a, b), 0.0)
	assert.Equal(t, 0.0, cosineSimilarity(a, c))
	assert.InDelta(t, 1.0, cosineSimilarity(a, a), 1e-9)
}

func TestCosineSimilarityZeroNorm(t *testing.T) {
	a := termVector{"python": 0.5}

	assert.Equal(t, 0.0, cosineSimilarity(a, termVector{}))
	assert.Equal(t, 0.0, cosineSimilarity(termVector{}, a))
	assert.Equal(t, 0.0, cosineSimilarity(termVector{}, termVector{}))
}
