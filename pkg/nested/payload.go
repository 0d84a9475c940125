package nested

import "fmt"

var (
	_ Payload = Scalar[int]{}
	_ Payload = Ref{}
)

// Payload is what a Wrapper holds: a Scalar or a Ref. The set is closed.
type Payload interface {
	Render() string
	isPayload()
}

// Scalar is a plain value rendered with its default textual form.
type Scalar[T any] struct {
	Value T
}

func (s Scalar[T]) Render() string {
	return fmt.Sprint(s.Value)
}

func (Scalar[T]) isPayload() {}

// Ref points at a Wrapper owned elsewhere. The referenced wrapper must stay
// reachable for as long as the Ref is used, which the garbage collector guarantees.
type Ref struct {
	Target *Wrapper
}

func (r Ref) Render() string {
	if r.Target == nil {
		return ""
	}
	return r.Target.Render()
}

func (Ref) isPayload() {}
