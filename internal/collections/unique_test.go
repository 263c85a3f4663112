package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newByName() *UniqueList[*tempObject] {
	return NewUniqueList(NameField(objName), false)
}

func newByAll() *UniqueList[*tempObject] {
	fields := []Field[*tempObject]{
		{Name: "name", Get: objName},
		{Name: "foo", Get: func(o *tempObject) string { return o.foo }},
		{Name: "bar", Get: func(o *tempObject) string { return o.bar }},
	}
	return NewUniqueList(fields, false)
}

func TestUniqueList_AppendDeduplicates(t *testing.T) {
	a := &tempObject{name: "a"}
	b := &tempObject{name: "b"}
	a2 := &tempObject{name: "a"}

	ul := newByName()
	ul.Append(a)
	ul.Append(b)
	require.Equal(t, 2, ul.Len())

	// Inserting a duplicate key evicts the old element; the newest wins and
	// moves to the tail.
	ul.Append(a2)
	require.Equal(t, 2, ul.Len())
	assert.Same(t, b, ul.At(0))
	assert.Same(t, a2, ul.At(1))
}

func TestUniqueList_CompositeKey(t *testing.T) {
	obj1 := &tempObject{name: "object one", foo: "foo1", bar: "common bar"}
	obj2 := &tempObject{name: "object two", foo: "foo2", bar: "common bar"}
	// Same key as obj1, different object.
	obj3 := &tempObject{name: "object one", foo: "foo1", bar: "common bar"}

	ul := newByAll()
	ul.Append(obj1)
	ul.Append(obj2)
	require.Equal(t, 2, ul.Len())

	ul.Append(obj3)
	require.Equal(t, 2, ul.Len())
	assert.Same(t, obj2, ul.At(0))
	assert.Same(t, obj3, ul.At(1))

	// A differing component anywhere in the tuple means a distinct key.
	obj4 := &tempObject{name: "object one", foo: "foo1", bar: "other bar"}
	ul.Append(obj4)
	assert.Equal(t, 3, ul.Len())
}

func TestUniqueList_ByKey(t *testing.T) {
	obj1 := &tempObject{name: "object one", foo: "foo1", bar: "common bar"}
	obj2 := &tempObject{name: "object two", foo: "foo2", bar: "common bar"}

	ul := newByAll()
	ul.Extend([]*tempObject{obj1, obj2})

	got, err := ul.ByKey("object one", "foo1", "common bar")
	require.NoError(t, err)
	assert.Same(t, obj1, got)

	_, err = ul.ByKey("object one", "foo2", "common bar")
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)

	// Wrong arity is a distinct error class, not "not found".
	_, err = ul.ByKey("object one")
	var ka *KeyArityError
	require.ErrorAs(t, err, &ka)
	assert.Equal(t, 1, ka.Got)
	assert.Equal(t, 3, ka.Want)
}

func TestUniqueList_ByPartialKey(t *testing.T) {
	obj1 := &tempObject{name: "object one", foo: "foo1", bar: "bar1"}
	obj2 := &tempObject{name: "object one", foo: "foo2", bar: "bar2"}
	obj3 := &tempObject{name: "object two", foo: "foo1", bar: "bar1"}

	ul := newByAll()
	ul.Extend([]*tempObject{obj1, obj2, obj3})
	require.Equal(t, 3, ul.Len())

	narrowed, err := ul.ByPartialKey("object one")
	require.NoError(t, err)
	require.Equal(t, 2, narrowed.Len())
	assert.Same(t, obj1, narrowed.At(0))
	assert.Same(t, obj2, narrowed.At(1))

	// The narrowed list is keyed by the remaining fields.
	got, err := narrowed.ByKey("foo2", "bar2")
	require.NoError(t, err)
	assert.Same(t, obj2, got)

	_, err = ul.ByPartialKey("object three")
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)

	// Full-length keys belong to ByKey.
	_, err = ul.ByPartialKey("object one", "foo1", "bar1")
	var ka *KeyArityError
	assert.ErrorAs(t, err, &ka)
}

func TestUniqueList_Set(t *testing.T) {
	a := &tempObject{name: "a"}
	b := &tempObject{name: "b"}

	ul := newByName()
	ul.Append(a)
	ul.Append(b)

	// Replacing in place with a fresh key is fine.
	c := &tempObject{name: "c"}
	require.NoError(t, ul.Set(1, c))
	assert.Same(t, c, ul.At(1))

	// Introducing a duplicate elsewhere is rejected and the list unchanged.
	aDup := &tempObject{name: "a"}
	err := ul.Set(1, aDup)
	var dup *DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, 0, dup.Index)
	assert.Same(t, c, ul.At(1))

	// Overwriting an element with its own key is allowed.
	require.NoError(t, ul.Set(0, aDup))
	assert.Same(t, aDup, ul.At(0))
}

func TestUniqueList_IgnoreCase(t *testing.T) {
	a := &tempObject{name: "Alpha"}
	a2 := &tempObject{name: "ALPHA"}

	ul := NewUniqueList(NameField(objName), true)
	ul.Append(a)
	ul.Append(a2)
	require.Equal(t, 1, ul.Len())
	assert.Same(t, a2, ul.At(0))

	got, err := ul.ByKey("alpha")
	require.NoError(t, err)
	assert.Same(t, a2, got)
}

func TestUniqueList_InvariantUnderInsertSequences(t *testing.T) {
	names := []string{"a", "b", "a", "c", "b", "a", "d"}

	ul := newByName()
	for _, n := range names {
		ul.Append(&tempObject{name: n})

		// At every point no two elements share a key.
		seen := map[string]bool{}
		for _, it := range ul.Items() {
			require.False(t, seen[it.name], "duplicate key %q after insert", it.name)
			seen[it.name] = true
		}
	}
	assert.Equal(t, []*tempObject{ul.At(0), ul.At(1), ul.At(2), ul.At(3)}, ul.Items())
	assert.Equal(t, "c", ul.At(0).name)
	assert.Equal(t, "b", ul.At(1).name)
	assert.Equal(t, "a", ul.At(2).name)
	assert.Equal(t, "d", ul.At(3).name)
}
