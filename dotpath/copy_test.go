package dotpath_test

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/0xalexb/objectops/dotpath"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

func TestDeepCopy_IsValueEqualAndIndependent(t *testing.T) {
	t.Parallel()

	source := dotpath.Container{
		"a":      1,
		"b":      dotpath.Container{"c": 2, "d": dotpath.Container{"e": "deep"}},
		"list":   []any{1, "two", dotpath.Container{"three": 3.0}, nil},
		"tags":   []string{"x", "y"},
		"counts": map[string]int{"k": 1},
		"array":  [2]int{1, 2},
		"label":  label("named"),
		"null":   nil,
		"flag":   false,
		"uint":   uint64(7),
	}

	copied, err := dotpath.DeepCopy(source)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(source, copied))

	copied["b"].(dotpath.Container)["d"].(dotpath.Container)["e"] = "changed"
	copied["list"].([]any)[2].(dotpath.Container)["three"] = 0
	copied["tags"].([]string)[0] = "changed"
	copied["counts"].(map[string]int)["k"] = 99

	assert.Equal(t, "deep", source["b"].(dotpath.Container)["d"].(dotpath.Container)["e"])
	assert.InDelta(t, 3.0, source["list"].([]any)[2].(dotpath.Container)["three"], 0)
	assert.Equal(t, "x", source["tags"].([]string)[0])
	assert.Equal(t, 1, source["counts"].(map[string]int)["k"])
}

func TestDeepCopy_NilAndEmpty(t *testing.T) {
	t.Parallel()

	copied, err := dotpath.DeepCopy(nil)
	require.NoError(t, err)
	assert.Nil(t, copied)

	copied, err = dotpath.DeepCopy(dotpath.Container{})
	require.NoError(t, err)
	assert.NotNil(t, copied)
	assert.Empty(t, copied)
}

func TestDeepCopy_NotSerializable(t *testing.T) {
	t.Parallel()

	cyclic := dotpath.Container{}
	cyclic["self"] = cyclic

	cyclicList := []any{nil}
	cyclicList[0] = cyclicList

	number := 1

	testCases := []struct {
		name   string
		doc    dotpath.Container
		path   string
		reason string
	}{
		{
			name:   "function",
			doc:    dotpath.Container{"a": dotpath.Container{"f": func() {}}},
			path:   "a.f",
			reason: "func()",
		},
		{
			name:   "channel",
			doc:    dotpath.Container{"c": make(chan int)},
			path:   "c",
			reason: "chan int",
		},
		{
			name:   "pointer",
			doc:    dotpath.Container{"p": &number},
			path:   "p",
			reason: "*int",
		},
		{
			name:   "struct",
			doc:    dotpath.Container{"s": struct{}{}},
			path:   "s",
			reason: "struct {}",
		},
		{
			name:   "int keyed map",
			doc:    dotpath.Container{"m": map[int]string{1: "x"}},
			path:   "m",
			reason: "map[int]string",
		},
		{
			name:   "function inside slice",
			doc:    dotpath.Container{"l": []any{1, func() {}}},
			path:   "l.1",
			reason: "func()",
		},
		{
			name:   "cyclic container",
			doc:    dotpath.Container{"root": cyclic},
			path:   "root.self",
			reason: "cyclic reference",
		},
		{
			name:   "cyclic slice",
			doc:    dotpath.Container{"l": cyclicList},
			path:   "l.0",
			reason: "cyclic reference",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			copied, err := dotpath.DeepCopy(testCase.doc)

			var notSerializable *dotpath.NotSerializableError

			require.ErrorAs(t, err, &notSerializable)
			assert.Nil(t, copied)
			assert.Equal(t, testCase.path, notSerializable.Path)
			assert.Equal(t, testCase.reason, notSerializable.Reason)
		})
	}
}

func TestDeepCopy_SharedButAcyclicIsAllowed(t *testing.T) {
	t.Parallel()

	shared := dotpath.Container{"v": 1}
	source := dotpath.Container{"x": shared, "y": shared}

	copied, err := dotpath.DeepCopy(source)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(source, copied))
}

// randomDocument builds a nested document with a deterministic generator.
func randomDocument(rng *rand.Rand, depth int) dotpath.Container {
	doc := dotpath.Container{}

	for i := range rng.IntN(4) + 1 {
		key := "k" + strconv.Itoa(i)

		switch {
		case depth > 0 && rng.IntN(2) == 0:
			doc[key] = randomDocument(rng, depth-1)
		case rng.IntN(3) == 0:
			doc[key] = []any{rng.IntN(10), "s"}
		default:
			doc[key] = rng.IntN(100)
		}
	}

	return doc
}

// containerPaths lists the dot paths of every container nested in doc.
func containerPaths(prefix string, doc dotpath.Container) []string {
	var paths []string

	for key, value := range doc {
		nested, ok := value.(dotpath.Container)
		if !ok {
			continue
		}

		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		paths = append(paths, path)
		paths = append(paths, containerPaths(path, nested)...)
	}

	return paths
}

func TestDeepCopy_MutatingAnyNestedContainerLeavesSourceIntact(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec // deterministic test data

	for range 50 {
		source := randomDocument(rng, 4)
		snapshot, err := dotpath.DeepCopy(source)
		require.NoError(t, err)

		for _, raw := range containerPaths("", source) {
			copied, err := dotpath.DeepCopy(source)
			require.NoError(t, err)

			nested, _, err := dotpath.Get(copied, dotpath.MustParse(raw))
			require.NoError(t, err)

			nested.(dotpath.Container)["mutated"] = true

			require.Empty(t, cmp.Diff(snapshot, source), "mutating %q in the copy changed the source", raw)
		}
	}
}

func TestCopyValue(t *testing.T) {
	t.Parallel()

	source := map[string]any{"a": []any{dotpath.Container{"b": 1}}}

	copied, err := dotpath.CopyValue(source)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(source, copied))

	copied.(map[string]any)["a"].([]any)[0].(dotpath.Container)["b"] = 2 //nolint:forcetypeassert // shape known

	assert.Equal(t, 1, source["a"].([]any)[0].(dotpath.Container)["b"])

	scalar, err := dotpath.CopyValue("x")
	require.NoError(t, err)
	assert.Equal(t, "x", scalar)

	_, err = dotpath.CopyValue(func() {})

	var notSerializable *dotpath.NotSerializableError

	require.ErrorAs(t, err, &notSerializable)
}
