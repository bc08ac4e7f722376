package dotpath

import (
	"reflect"
	"strconv"
)

// DeepCopy returns a copy of doc that shares no map or slice with it.
//
// Supported values are containers, other string-keyed maps, slices and arrays,
// booleans, strings, integers and floats. Anything else (functions, channels,
// pointers, structs, complex numbers) and cyclic references fail with
// *NotSerializableError.
func DeepCopy(doc Container) (Container, error) {
	if doc == nil {
		return nil, nil //nolint:nilnil // a nil document copies to a nil document
	}

	c := copier{visiting: map[uintptr]struct{}{}}

	copied, err := c.copyContainer("", doc)
	if err != nil {
		return nil, err
	}

	return copied, nil
}

// CopyValue returns a copy of a single document value that shares no map or
// slice with it. It accepts the same values as DeepCopy.
func CopyValue(value any) (any, error) {
	c := copier{visiting: map[uintptr]struct{}{}}

	return c.copyValue("", value)
}

type copier struct {
	visiting map[uintptr]struct{}
}

func (c *copier) copyContainer(at string, container Container) (Container, error) {
	release, err := c.enter(at, reflect.ValueOf(container))
	if err != nil {
		return nil, err
	}
	defer release()

	out := make(Container, len(container))

	for key, value := range container {
		copied, err := c.copyValue(join(at, key), value)
		if err != nil {
			return nil, err
		}

		out[key] = copied
	}

	return out, nil
}

func (c *copier) copyValue(at string, value any) (any, error) {
	switch typed := value.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return value, nil
	case Container:
		if typed == nil {
			return typed, nil
		}

		return c.copyContainer(at, typed)
	case []any:
		if typed == nil {
			return typed, nil
		}

		release, err := c.enter(at, reflect.ValueOf(typed))
		if err != nil {
			return nil, err
		}
		defer release()

		out := make([]any, len(typed))

		for i, elem := range typed {
			copied, err := c.copyValue(join(at, strconv.Itoa(i)), elem)
			if err != nil {
				return nil, err
			}

			out[i] = copied
		}

		return out, nil
	}

	copied, err := c.copyReflect(at, reflect.ValueOf(value))
	if err != nil {
		return nil, err
	}

	return copied.Interface(), nil
}

// copyReflect handles typed collections such as []string or map[string]int.
func (c *copier) copyReflect(at string, value reflect.Value) (reflect.Value, error) {
	switch value.Kind() { //nolint:exhaustive // everything else is rejected below
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return value, nil
	case reflect.Interface:
		if value.IsNil() {
			return value, nil
		}

		inner, err := c.copyValue(at, value.Elem().Interface())
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(inner), nil
	case reflect.Slice:
		if value.IsNil() {
			return value, nil
		}

		release, err := c.enter(at, value)
		if err != nil {
			return reflect.Value{}, err
		}
		defer release()

		out := reflect.MakeSlice(value.Type(), value.Len(), value.Len())

		return out, c.copyElems(at, value, out)
	case reflect.Array:
		out := reflect.New(value.Type()).Elem()

		return out, c.copyElems(at, value, out)
	case reflect.Map:
		if value.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, &NotSerializableError{Path: at, Reason: value.Type().String()}
		}

		if value.IsNil() {
			return value, nil
		}

		release, err := c.enter(at, value)
		if err != nil {
			return reflect.Value{}, err
		}
		defer release()

		out := reflect.MakeMapWithSize(value.Type(), value.Len())
		iter := value.MapRange()

		for iter.Next() {
			elem, err := c.copyElem(join(at, iter.Key().String()), iter.Value(), value.Type().Elem())
			if err != nil {
				return reflect.Value{}, err
			}

			out.SetMapIndex(iter.Key(), elem)
		}

		return out, nil
	default:
		return reflect.Value{}, &NotSerializableError{Path: at, Reason: value.Type().String()}
	}
}

func (c *copier) copyElems(at string, from, to reflect.Value) error {
	for i := range from.Len() {
		elem, err := c.copyElem(join(at, strconv.Itoa(i)), from.Index(i), from.Type().Elem())
		if err != nil {
			return err
		}

		to.Index(i).Set(elem)
	}

	return nil
}

// copyElem copies a collection element and converts the result back to the
// collection's element type.
func (c *copier) copyElem(at string, elem reflect.Value, elemType reflect.Type) (reflect.Value, error) {
	if elem.Kind() == reflect.Interface && elem.IsNil() {
		return reflect.Zero(elemType), nil
	}

	copied, err := c.copyReflect(at, elem)
	if err != nil {
		return reflect.Value{}, err
	}

	if copied.Type() != elemType {
		copied = copied.Convert(elemType)
	}

	return copied, nil
}

// enter marks a map or slice as being copied, failing if it is already on the
// current copy path.
func (c *copier) enter(at string, value reflect.Value) (func(), error) {
	if value.Len() == 0 {
		return func() {}, nil
	}

	ptr := value.Pointer()
	if _, seen := c.visiting[ptr]; seen {
		return nil, &NotSerializableError{Path: at, Reason: "cyclic reference"}
	}

	c.visiting[ptr] = struct{}{}

	return func() { delete(c.visiting, ptr) }, nil
}

func join(at, key string) string {
	if at == "" {
		return key
	}

	return at + Separator + key
}
