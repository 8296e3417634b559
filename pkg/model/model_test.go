package model

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLeaf struct {
	Name    *string    `cwmp:"Name,rw,string,maxLength=8"`
	Port    *uint32    `cwmp:"Port,rw,unsignedInt,min=1,max=65535"`
	Offset  *int32     `cwmp:"Offset,ro,int,min=-5,units=seconds"`
	Seen    *time.Time `cwmp:"Seen,ro,dateTime"`
	Blob    *Base64    `cwmp:"Blob,ro,base64,maxLength=4"`
	private int
}

func (*testLeaf) ObjectName() string { return "Leaf" }

type testRoot struct {
	Enable *bool       `cwmp:"Enable,rw,boolean"`
	Leaf   *testLeaf   `cwmp:"Leaf,object"`
	Items  []*testLeaf `cwmp:"Item,multi"`
}

func (*testRoot) ObjectName() string { return "Root" }

type badType struct {
	Name *int32 `cwmp:"Name,rw,string"`
}

func (*badType) ObjectName() string { return "Bad" }

type badTag struct {
	Name *string `cwmp:"Name,rw,string,colour=blue"`
}

func (*badTag) ObjectName() string { return "BadTag" }

type notEntity struct{}

func TestAccess(t *testing.T) {
	tests := []struct {
		in   string
		want Access
	}{
		{"ro", AccessReadOnly},
		{"readOnly", AccessReadOnly},
		{"rw", AccessReadWrite},
		{"readWrite", AccessReadWrite},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAccess(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"sometimes", "r", "w", "wr", ""} {
		_, err := ParseAccess(bad)
		assert.ErrorIs(t, err, ErrInvalidTag, bad)
	}

	assert.True(t, AccessReadWrite.CanWrite())
	assert.False(t, AccessReadOnly.CanWrite())
	assert.Equal(t, "readWrite", AccessReadWrite.Long())
	assert.Equal(t, "ro", AccessReadOnly.String())
}

func TestDataType(t *testing.T) {
	for _, name := range []string{"string", "int", "unsignedInt", "long", "unsignedLong", "boolean", "dateTime", "base64", "hexBinary"} {
		dt, err := ParseDataType(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, dt.String())
		assert.NotNil(t, dt.GoType(), name)
	}

	_, err := ParseDataType("unknown")
	assert.ErrorIs(t, err, ErrInvalidTag)

	assert.True(t, DataTypeUnsignedLong.IsNumeric())
	assert.False(t, DataTypeBoolean.IsNumeric())
	assert.True(t, DataTypeHexBinary.IsBinary())
	assert.Equal(t, "unknown", DataType(200).String())
}

func TestSchemaOf(t *testing.T) {
	meta, err := SchemaFor(&testRoot{})
	require.NoError(t, err)

	assert.Equal(t, "Root", meta.Name)
	assert.Equal(t, reflect.TypeOf(testRoot{}), meta.GoType)
	require.Len(t, meta.Parameters, 1)
	require.Len(t, meta.Children, 2)

	leaf, ok := meta.Child("Leaf")
	require.True(t, ok)
	assert.False(t, leaf.MultiInstance)
	assert.Equal(t, "Leaf", leaf.Object.Name)

	items, ok := meta.Child("Item")
	require.True(t, ok)
	assert.True(t, items.MultiInstance)
	assert.Equal(t, "Items", items.Field)
	assert.Same(t, leaf.Object, items.Object, "element metadata is shared through the cache")

	t.Run("Parameters", func(t *testing.T) {
		lm := leaf.Object
		require.Len(t, lm.Parameters, 5, "untagged fields are skipped")

		name, ok := lm.Parameter("Name")
		require.True(t, ok)
		assert.Equal(t, DataTypeString, name.Type)
		assert.True(t, name.Writable())
		assert.Equal(t, 8, name.MaxLength)
		assert.Equal(t, 0, name.Index)

		port, _ := lm.Parameter("Port")
		require.NotNil(t, port.MinValue)
		require.NotNil(t, port.MaxValue)
		assert.EqualValues(t, 1, *port.MinValue)
		assert.EqualValues(t, 65535, *port.MaxValue)
		assert.Equal(t, "1..65535", port.Constraints())

		offset, _ := lm.Parameter("Offset")
		assert.False(t, offset.Writable())
		assert.Equal(t, "seconds", offset.Units)
		assert.Nil(t, offset.MaxValue)
		assert.Equal(t, "-5..", offset.Constraints())

		blob, _ := lm.Parameter("Blob")
		assert.Equal(t, DataTypeBase64, blob.Type)

		_, ok = lm.Parameter("Missing")
		assert.False(t, ok)
	})

	t.Run("Cached", func(t *testing.T) {
		again, err := SchemaOf(reflect.TypeOf(testRoot{}))
		require.NoError(t, err)
		assert.Same(t, meta, again)
	})

	t.Run("New", func(t *testing.T) {
		n := meta.New()
		assert.IsType(t, &testRoot{}, n)
	})
}

func TestSchemaErrors(t *testing.T) {
	_, err := SchemaFor(&badType{})
	assert.ErrorIs(t, err, ErrInvalidTag)

	_, err = SchemaFor(&badTag{})
	assert.ErrorIs(t, err, ErrInvalidTag)

	_, err = SchemaOf(reflect.TypeOf(notEntity{}))
	assert.ErrorIs(t, err, ErrNotEntity)

	_, err = SchemaFor(nil)
	assert.ErrorIs(t, err, ErrNotEntity)

	assert.Panics(t, func() { MustSchemaFor(&badType{}) })
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		wantErr bool
	}{
		{"object", "DeviceInfo,object", false},
		{"multi", "WANDevice,multi", false},
		{"full", "X,rw,unsignedInt,min=0,max=10,units=dB", false},
		{"lengths", "X,ro,string,minLength=6,maxLength=6", false},
		{"missing name", ",rw,string", true},
		{"missing type", "X,rw", true},
		{"bad number", "X,rw,int,min=low", true},
		{"negative length", "X,rw,string,maxLength=-1", true},
		{"no value", "X,rw,string,maxLength", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTag(tt.tag)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTag)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	spec := RootSpec{Name: "test", Path: "Device.Test.{i}.", New: func() Node { return &testRoot{} }}
	require.NoError(t, r.Register(spec))

	assert.Equal(t, []string{
		"Device.Test.{i}.",
		"Device.Test.{i}.Item.{i}.",
		"Device.Test.{i}.Leaf.",
	}, r.Templates())

	meta, err := r.Lookup("Device.Test.{i}.Item.{i}.")
	require.NoError(t, err)
	assert.Equal(t, "Leaf", meta.Name)

	_, err = r.Lookup("Device.Test.{i}.Nope.")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	err = r.Register(spec)
	assert.ErrorIs(t, err, ErrDuplicateRoot)

	got, ok := r.Root("test")
	require.True(t, ok)
	assert.Equal(t, "Device.Test.1.", got.Prefix(1))
	assert.Equal(t, "Root", got.Object())

	byObject, ok := r.RootByObject("Root")
	require.True(t, ok)
	assert.Equal(t, "test", byObject.Name)

	_, ok = r.RootByObject("Other")
	assert.False(t, ok)
	assert.Len(t, r.Roots(), 1)

	err = r.Register(RootSpec{Name: "broken", Path: "X"})
	assert.ErrorIs(t, err, ErrNotEntity)
}

func TestBinaryText(t *testing.T) {
	b := Base64("hello")
	text, err := b.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", string(text))

	var back Base64
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, b, back)
	assert.Error(t, back.UnmarshalText([]byte("!!")))

	h := HexBinary{0xca, 0xfe}
	assert.Equal(t, "cafe", h.String())
	var hb HexBinary
	require.NoError(t, hb.UnmarshalText([]byte("CAFE")))
	assert.Equal(t, h, hb)
	assert.Error(t, hb.UnmarshalText([]byte("xyz")))
}
