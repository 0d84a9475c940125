package nested

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapper_Render(t *testing.T) {
	assert.Equal(t, "((((((((1))))))))", Of(1, 8).Render())
	assert.Equal(t, "42", Of(42, 0).Render())
	assert.Equal(t, "(hello)", Of("hello", 1).Render())
	assert.Equal(t, "((2.5))", Of(2.5, 2).Render())
}

func TestWrapper_RenderAllDepths(t *testing.T) {
	for d := uint(0); d <= 64; d++ {
		want := strings.Repeat("(", int(d)) + "7" + strings.Repeat(")", int(d))
		require.Equal(t, want, Of(7, d).Render(), "depth %d", d)
	}
}

func TestWrapper_String(t *testing.T) {
	w := Of(3, 2)
	assert.Equal(t, "((3))", w.String())
	assert.Equal(t, "((3))", fmt.Sprint(w))
	assert.Equal(t, "x((3))", fmt.Sprintf("x%v", w))
}

func TestWrapper_EmptyPayload(t *testing.T) {
	assert.Equal(t, "()", New(nil, 1).Render())
	assert.Equal(t, "(())", Wrap(nil, 2).Render())
	assert.Nil(t, New(nil, 3).ViewInner())
}

func TestWrapper_Chain(t *testing.T) {
	w0 := Of(42, 0)
	w1 := Wrap(w0, 1)
	w2 := Wrap(w1, 2)

	assert.Equal(t, "42", w0.Render())
	assert.Equal(t, "(42)", w1.Render())
	assert.Equal(t, "(((42)))", w2.Render())

	inner := w2.ViewInner()
	require.IsType(t, Ref{}, inner)
	assert.Equal(t, w1.Render(), inner.Render())
	assert.Equal(t, "(42)", inner.Render())
}

func TestWrapper_ViewInnerScalar(t *testing.T) {
	for _, d := range []uint{0, 1, 8} {
		w := Of(1, d)
		inner := w.ViewInner()

		assert.Equal(t, Scalar[int]{Value: 1}, inner)
		assert.Equal(t, "1", inner.Render())
		assert.Equal(t, d, w.Depth())
	}
}

// The view must alias the wrapper already held as payload, not a new wrapper
// rebuilt with depth-1.
func TestWrapper_ViewInnerAliasesExistingWrapper(t *testing.T) {
	w0 := Of(42, 0)
	w1 := Wrap(w0, 1)
	w2 := Wrap(w1, 2)

	ref, ok := w2.ViewInner().(Ref)
	require.True(t, ok)
	assert.Same(t, w1, ref.Target)
	assert.Equal(t, uint(1), ref.Target.Depth())

	ref, ok = ref.Target.ViewInner().(Ref)
	require.True(t, ok)
	assert.Same(t, w0, ref.Target)

	assert.Equal(t, uint(2), w2.Depth())
	assert.Equal(t, "(((42)))", w2.Render())
}

func TestWrapper_ViewInnerIsNotADecrementedCopy(t *testing.T) {
	w := Of(1, 8)
	decremented := strings.Repeat("(", 7) + "1" + strings.Repeat(")", 7)

	for i := 0; i < 3; i++ {
		assert.NotEqual(t, decremented, w.ViewInner().Render())
		assert.Equal(t, "1", w.ViewInner().Render())
		assert.Equal(t, uint(8), w.Depth())
	}
}

func TestWrapper_ViewInnerAtDepthZero(t *testing.T) {
	w := Wrap(Of("x", 3), 0)

	require.NotPanics(t, func() { _ = w.ViewInner() })
	assert.Equal(t, "(((x)))", w.ViewInner().Render())
	assert.Equal(t, uint(0), w.Depth())
}

func TestWrapper_Innermost(t *testing.T) {
	links := Chain(42, 0, 1, 2, 3)
	require.Len(t, links, 4)

	assert.Equal(t, Scalar[int]{Value: 42}, links[3].Innermost())
	assert.Equal(t, Scalar[int]{Value: 42}, links[0].Innermost())
	assert.Equal(t, Ref{}, Wrap(nil, 1).Innermost())
}

func TestChain(t *testing.T) {
	assert.Nil(t, Chain(1))

	links := Chain(42, 0, 1, 2)
	require.Len(t, links, 3)

	want := []string{"42", "(42)", "(((42)))"}
	for i, w := range links {
		assert.Equal(t, want[i], w.Render())
		if i > 0 {
			ref, ok := w.ViewInner().(Ref)
			require.True(t, ok)
			assert.Same(t, links[i-1], ref.Target)
		}
	}
}
