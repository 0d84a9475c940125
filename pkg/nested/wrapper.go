package nested

import "strings"

// Wrapper is an immutable payload with a nesting depth.
type Wrapper struct {
	payload Payload
	depth   uint
}

func New(payload Payload, depth uint) *Wrapper {
	return &Wrapper{payload: payload, depth: depth}
}

// Of wraps a scalar value.
func Of[T any](value T, depth uint) *Wrapper {
	return New(Scalar[T]{Value: value}, depth)
}

// Wrap wraps another wrapper by reference.
func Wrap(inner *Wrapper, depth uint) *Wrapper {
	return New(Ref{Target: inner}, depth)
}

// Chain builds one wrapper per depth. The first wraps value, every following one
// wraps its predecessor by reference. All links are returned, innermost first.
func Chain[T any](value T, depths ...uint) []*Wrapper {
	if len(depths) == 0 {
		return nil
	}

	links := make([]*Wrapper, len(depths))
	links[0] = Of(value, depths[0])
	for i := 1; i < len(depths); i++ {
		links[i] = Wrap(links[i-1], depths[i])
	}
	return links
}

func (w *Wrapper) Depth() uint {
	return w.depth
}

// Render returns depth "(" followed by the payload rendering and depth ")".
func (w *Wrapper) Render() string {
	inner := ""
	if w.payload != nil {
		inner = w.payload.Render()
	}
	if w.depth == 0 {
		return inner
	}

	d := int(w.depth)
	var sb strings.Builder
	sb.Grow(2*d + len(inner))
	for i := 0; i < d; i++ {
		sb.WriteByte('(')
	}
	sb.WriteString(inner)
	for i := 0; i < d; i++ {
		sb.WriteByte(')')
	}
	return sb.String()
}

func (w *Wrapper) String() string {
	return w.Render()
}

// ViewInner returns the payload held by w, one layer down. For a Ref the result
// aliases the referenced wrapper; nothing is copied and the depth is untouched.
func (w *Wrapper) ViewInner() Payload {
	return w.payload
}

// Innermost follows Ref payloads one hop at a time and returns the first payload
// that is not a Ref to a live wrapper.
func (w *Wrapper) Innermost() Payload {
	p := w.payload
	for {
		ref, ok := p.(Ref)
		if !ok || ref.Target == nil {
			return p
		}
		p = ref.Target.ViewInner()
	}
}
