package state

// FromRegistry is implemented by state types that know how to fetch their own
// canonical instance. Implementations are usually one line delegating to Get
// and may be generated.
type FromRegistry[S any] interface {
	FromRegistry(r *Registry) (Cell[S], error)
}

// Fetch resolves S through its FromRegistry implementation.
func Fetch[S FromRegistry[S]](r *Registry) (Cell[S], error) {
	var zero S
	return zero.FromRegistry(r)
}

var (
	_ FromRegistry[Time]   = Time{}
	_ FromRegistry[Events] = Events{}
	_ FromRegistry[Chunks] = Chunks{}
)
