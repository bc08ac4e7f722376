package dotpath

// Container is a nested key-value mapping. It is an alias so that plain
// map[string]any values decoded from JSON or YAML are containers as-is.
type Container = map[string]any

// Kind classifies a value for traversal.
type Kind int

const (
	// KindAbsent marks a key that is not present.
	KindAbsent Kind = iota
	// KindNull marks a key holding nil, including a nil Container.
	KindNull
	// KindContainer marks a Container.
	KindContainer
	// KindScalar marks anything else, slices included.
	KindScalar
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindContainer:
		return "container"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Classify reports the kind of value. present is false when the value was looked
// up and not found.
func Classify(value any, present bool) Kind {
	if !present {
		return KindAbsent
	}

	switch typed := value.(type) {
	case nil:
		return KindNull
	case Container:
		if typed == nil {
			return KindNull
		}

		return KindContainer
	default:
		return KindScalar
	}
}

// lookup returns the child at key together with its kind.
func lookup(container Container, key string) (any, Kind) {
	value, present := container[key]

	return value, Classify(value, present)
}
