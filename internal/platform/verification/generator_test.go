package verification

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	var gen Generator
	code, err := gen.Generate()

	require.NoError(t, err)
	assert.Len(t, code, CodeLength)

	for _, c := range code {
		assert.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q in code", c)
	}
}

func TestGenerator_CodesAreUnique(t *testing.T) {
	t.Parallel()

	var gen Generator
	seen := make(map[string]struct{}, 1000)

	for i := 0; i < 1000; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)

		_, dup := seen[code]
		require.False(t, dup, "generated a duplicate code after %d iterations", i)
		seen[code] = struct{}{}
	}
}

func TestGenerator_CodesUseFullAlphabet(t *testing.T) {
	t.Parallel()

	// With 100 codes (3200 characters) every one of the 62 symbols should
	// appear; a missing symbol would indicate a broken selection range.
	var gen Generator
	counts := make(map[rune]int)
	for i := 0; i < 100; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		for _, c := range code {
			counts[c]++
		}
	}

	assert.Len(t, counts, len(alphabet))
}
