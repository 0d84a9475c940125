// Package nested provides Wrapper, a value paired with a nesting depth.
//
// A Wrapper renders as its payload surrounded by depth pairs of parentheses.
// Its payload is either a Scalar or a Ref to another Wrapper, so wrappers can be
// chained:
//
//	w0 := nested.Of(42, 0)
//	w1 := nested.Wrap(w0, 1)
//	w2 := nested.Wrap(w1, 2)
//	w2.Render()             // "(((42)))"
//	w2.ViewInner().Render() // "(42)", the rendering of w1 itself
//
// ViewInner always hands out the payload the wrapper already holds. It does not
// produce a wrapper with a decremented depth: such a copy is a different value
// from the real inner payload, and at depth 0 the decrement would underflow.
package nested
