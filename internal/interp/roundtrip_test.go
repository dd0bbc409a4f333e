package interp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-ps-lang/ps/internal/psval"
)

// Confirms that parsing the `==` representation of a literal value and
// executing it yields a value equal (under eq) to the original.
// `true`/`false` only round-trip through execution (they print as bare
// words that resolve through the system dictionary, not through
// Step's literal-push path), which is why this lives alongside the
// interpreter rather than as a parser-only test.
func TestFormatPSRoundTrips(t *testing.T) {
	cases := []psval.Value{
		psval.Integer(42),
		psval.Integer(-7),
		psval.Real(3.5),
		psval.Boolean(true),
		psval.Boolean(false),
		psval.NewString("hello world"),
		psval.Name{Text: "foo", Executable: false},
	}

	for _, original := range cases {
		rendered := psval.FormatPS(original)
		it := New(Dynamic, &bytes.Buffer{})
		require.Nil(t, it.Run("", rendered), rendered)
		got, err := it.Operands.Pop("test")
		require.Nil(t, err, rendered)
		require.True(t, psval.Equal(original, got), "round-trip of %q", rendered)
	}
}
