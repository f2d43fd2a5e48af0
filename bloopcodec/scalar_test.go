package bloopcodec_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeschinkel/bloopcfg/bloopcodec"
	"github.com/mikeschinkel/bloopcfg/bloopmodel"
)

func TestEnumCodecs_RoundTrip(t *testing.T) {
	t.Run("compile order", func(t *testing.T) {
		c := bloopcodec.NewLeafCodecs().CompileOrder
		for _, e := range bloopmodel.CompileOrderEntries {
			got := encodeString(t, c, e.Value)
			assert.Equal(t, `"`+e.ID+`"`, got)
			v, err := decodeString(c, got)
			require.NoError(t, err)
			assert.Equal(t, e.Value, v)
		}
	})
	t.Run("linker mode", func(t *testing.T) {
		c := bloopcodec.NewLeafCodecs().LinkerMode
		for _, e := range bloopmodel.LinkerModeEntries {
			v, err := decodeString(c, encodeString(t, c, e.Value))
			require.NoError(t, err)
			assert.Equal(t, e.Value, v)
		}
	})
	t.Run("module kind", func(t *testing.T) {
		c := bloopcodec.NewLeafCodecs().ModuleKindJS
		for _, e := range bloopmodel.ModuleKindJSEntries {
			v, err := decodeString(c, encodeString(t, c, e.Value))
			require.NoError(t, err)
			assert.Equal(t, e.Value, v)
		}
	})
}

func TestEnumCodec_CanonicalIdentifiers(t *testing.T) {
	leaves := bloopcodec.NewLeafCodecs()
	c := leaves.CompileOrder
	assert.Equal(t, `"mixed"`, encodeString(t, c, bloopmodel.Mixed))
	assert.Equal(t, `"java->scala"`, encodeString(t, c, bloopmodel.JavaThenScala))
	assert.Equal(t, `"scala->java"`, encodeString(t, c, bloopmodel.ScalaThenJava))
	assert.Equal(t, `"debug"`, encodeString(t, leaves.LinkerMode, bloopmodel.Debug))
	assert.Equal(t, `"none"`, encodeString(t, leaves.ModuleKindJS, bloopmodel.NoModule))
}

func TestEnumCodec_RejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantGot string
	}{
		{name: "unknown string", input: `"bogus"`, wantGot: `"bogus"`},
		{name: "variant name instead of identifier", input: `"Mixed"`, wantGot: `"Mixed"`},
		{name: "number", input: `42`, wantGot: `42`},
		{name: "object", input: `{"a": 1}`, wantGot: `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var enumErr *bloopcodec.EnumError

			_, err := decodeString(bloopcodec.NewLeafCodecs().CompileOrder, tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, bloopcodec.ErrUnknownEnumValue)
			require.True(t, errors.As(err, &enumErr))
			assert.Equal(t, tt.wantGot, enumErr.Got)
			assert.Equal(t, []string{"mixed", "java->scala", "scala->java"}, enumErr.IDs)
		})
	}
}

func TestEnumError_Message(t *testing.T) {
	_, err := decodeString(bloopcodec.NewLeafCodecs().CompileOrder, `"bogus"`)
	require.Error(t, err)
	assert.Equal(t,
		`unknown compile order "bogus"; expected one of ('mixed', 'java->scala', 'scala->java') for Mixed, JavaThenScala, ScalaThenJava`,
		err.Error(),
	)
}

func TestEnumCodec_EncodeUndeclaredValue(t *testing.T) {
	c := bloopcodec.NewLinkerModeCodec()
	err := c.Encode(newDiscardEncoder(), bloopmodel.LinkerMode(7))
	assert.ErrorIs(t, err, bloopcodec.ErrInvalidEnumValue)
}

func TestPathCodec_Decode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bloopmodel.Path
	}{
		{name: "absolute", input: `"/work/core/src"`, want: "/work/core/src"},
		{name: "dot segments kept", input: `"/work/core/../lib/./src"`, want: "/work/core/../lib/./src"},
		{name: "trailing slash kept", input: `"/work/core/"`, want: "/work/core/"},
		{name: "leading dot kept", input: `"./src"`, want: "./src"},
		{name: "relative", input: `"target/classes"`, want: "target/classes"},
		{name: "empty string falls back", input: `""`, want: bloopmodel.EmptyPath},
		{name: "NUL byte falls back", input: `"a\u0000b"`, want: bloopmodel.EmptyPath},
		{name: "number falls back", input: `12`, want: bloopmodel.EmptyPath},
		{name: "object falls back", input: `{"path": "/x"}`, want: bloopmodel.EmptyPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeString[bloopmodel.Path](bloopcodec.PathCodec{}, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathCodec_MalformedJSONStillFails(t *testing.T) {
	_, err := decodeString[bloopmodel.Path](bloopcodec.PathCodec{}, `{"path": `)
	assert.ErrorIs(t, err, bloopcodec.ErrStructural)
}

func TestPathsCodec_FallbackPerElement(t *testing.T) {
	leaves := bloopcodec.NewLeafCodecs()
	got, err := decodeString(leaves.Paths, `["/a", 5, "/b"]`)
	require.NoError(t, err)
	assert.Equal(t, []bloopmodel.Path{"/a", bloopmodel.EmptyPath, "/b"}, got)
}

func TestMainClassCodec_Decode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *string
	}{
		{name: "string", input: `"com.acme.Main"`, want: ptr("com.acme.Main")},
		{name: "single element list", input: `["com.acme.Main"]`, want: ptr("com.acme.Main")},
		{name: "empty list", input: `[]`, want: nil},
		{name: "null", input: `null`, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeString(bloopcodec.NewLeafCodecs().MainClass, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMainClassCodec_Cardinality(t *testing.T) {
	var cardErr *bloopcodec.CardinalityError

	_, err := decodeString(bloopcodec.NewLeafCodecs().MainClass, `["A", "B"]`)
	require.Error(t, err)
	assert.ErrorIs(t, err, bloopcodec.ErrCardinality)
	require.True(t, errors.As(err, &cardErr))
	assert.Equal(t, []string{"A", "B"}, cardErr.Values)
	assert.Equal(t, `Expected only one main class, obtained ["A","B"]`, err.Error())
}

func TestMainClassCodec_EncodesCurrentForm(t *testing.T) {
	c := bloopcodec.NewLeafCodecs().MainClass
	assert.Equal(t, `"Main"`, encodeString(t, c, ptr("Main")))
}

func TestListCodec_EmptyIsNotNil(t *testing.T) {
	got, err := decodeString(bloopcodec.NewLeafCodecs().Strings, `[]`)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, `[]`, encodeString(t, bloopcodec.NewLeafCodecs().Strings, []string{}))
}

func TestListCodec_ElementErrorLocation(t *testing.T) {
	var pathErr *bloopcodec.PathError

	_, err := decodeString(bloopcodec.NewLeafCodecs().Strings, `["a", "b", 3]`)
	require.Error(t, err)
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "/2", pathErr.Pointer())
}

func TestIntCodec(t *testing.T) {
	n, err := decodeString[int](bloopcodec.IntCodec{}, `3`)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = decodeString[int](bloopcodec.IntCodec{}, `3.5`)
	assert.ErrorIs(t, err, bloopcodec.ErrStructural)

	_, err = decodeString[int](bloopcodec.IntCodec{}, `"3"`)
	assert.ErrorIs(t, err, bloopcodec.ErrUnexpectedKind)
}

func TestBoolCodec_WrongKind(t *testing.T) {
	_, err := decodeString[bool](bloopcodec.BoolCodec{}, `"true"`)
	assert.ErrorIs(t, err, bloopcodec.ErrUnexpectedKind)
}
