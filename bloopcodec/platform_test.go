package bloopcodec_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeschinkel/bloopcfg/bloopcodec"
	"github.com/mikeschinkel/bloopcfg/bloopmodel"
)

func samplePlatforms(mainClass *string) map[string]bloopmodel.Platform {
	return map[string]bloopmodel.Platform{
		"jvm": bloopmodel.JvmPlatform{Config: bloopmodel.JvmConfig{
			Home:    "/usr/lib/jvm/java-17",
			Options: []string{"-Xmx1g", "-Dfile.encoding=UTF-8"},
		}, Main: mainClass},
		"js": bloopmodel.JsPlatform{Config: bloopmodel.JsConfig{
			Version:        "1.16.0",
			Mode:           bloopmodel.Release,
			Kind:           bloopmodel.CommonJSModule,
			EmitSourceMaps: true,
			JSDom:          ptr(false),
			Output:         "/work/out/main.js",
			Toolchain:      []bloopmodel.Path{},
		}, Main: mainClass},
		"native": bloopmodel.NativePlatform{Config: bloopmodel.NativeConfig{
			Version:   "0.4.16",
			Mode:      bloopmodel.Debug,
			GC:        "immix",
			Clang:     "/usr/bin/clang",
			Clangpp:   "/usr/bin/clang++",
			Toolchain: []bloopmodel.Path{"/usr/bin"},
			Options: bloopmodel.NativeOptions{
				Linker:   []string{"-lm"},
				Compiler: []string{},
			},
			Check: true,
		}, Main: mainClass},
	}
}

func TestPlatformCodec_RoundTrip(t *testing.T) {
	c := bloopcodec.Default().Platform
	mainClasses := []struct {
		name      string
		mainClass *string
		want      string
	}{
		{name: "none", mainClass: nil},
		{name: "empty", mainClass: ptr(""), want: `"mainClass":""`},
		{name: "named", mainClass: ptr("com.acme.Main"), want: `"mainClass":"com.acme.Main"`},
	}
	for _, mc := range mainClasses {
		for name, p := range samplePlatforms(mc.mainClass) {
			t.Run(name+"/"+mc.name, func(t *testing.T) {
				require.NoError(t, bloopmodel.ValidatePlatform(p))
				encoded := encodeString(t, c, p)
				got, err := decodeString(c, encoded)
				require.NoError(t, err, encoded)
				assert.Equal(t, p, got)
				assert.Equal(t, p.Kind(), got.Kind())
				if mc.mainClass == nil {
					assert.NotContains(t, encoded, `"mainClass"`)
					assert.Nil(t, got.MainClass())
					return
				}
				assert.Contains(t, encoded, mc.want)
				require.NotNil(t, got.MainClass())
				assert.Equal(t, *mc.mainClass, *got.MainClass())
			})
		}
	}
}

func TestPlatformCodec_EncodesTagAndConfig(t *testing.T) {
	c := bloopcodec.Default().Platform
	p, err := bloopmodel.NewJvmPlatform(bloopmodel.JvmConfig{Home: "/jdk"}, bloopmodel.MainClassOf("Main"))
	require.NoError(t, err)
	assert.Equal(t,
		`{"name":"jvm","config":{"home":"/jdk"},"mainClass":"Main"}`,
		encodeString(t, c, bloopmodel.Platform(p)),
	)
}

func TestPlatformCodec_FieldOrderIndependent(t *testing.T) {
	c := bloopcodec.Default().Platform
	inputs := []string{
		`{"name":"js","config":{"version":"1.16.0","mode":"debug","kind":"none"},"mainClass":"Main"}`,
		`{"config":{"kind":"none","mode":"debug","version":"1.16.0"},"name":"js","mainClass":"Main"}`,
		`{"mainClass":"Main","config":{"mode":"debug","version":"1.16.0","kind":"none"},"name":"js"}`,
	}
	want := bloopmodel.JsPlatform{
		Config: bloopmodel.JsConfig{
			Version: "1.16.0",
			Mode:    bloopmodel.Debug,
			Kind:    bloopmodel.NoModule,
		},
		Main: ptr("Main"),
	}
	for _, input := range inputs {
		got, err := decodeString(c, input)
		require.NoError(t, err, input)
		assert.Equal(t, bloopmodel.Platform(want), got, input)
	}
}

func TestPlatformCodec_LegacyMainClassList(t *testing.T) {
	c := bloopcodec.Default().Platform
	got, err := decodeString(c, `{"name":"jvm","config":{},"mainClass":["Main"]}`)
	require.NoError(t, err)
	require.NotNil(t, got.MainClass())
	assert.Equal(t, "Main", *got.MainClass())
	assert.Equal(t, `{"name":"jvm","config":{},"mainClass":"Main"}`, encodeString(t, c, got))

	got, err = decodeString(c, `{"name":"jvm","config":{},"mainClass":[]}`)
	require.NoError(t, err)
	assert.Nil(t, got.MainClass())
}

func TestPlatformCodec_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantErr     error
		wantPointer string
	}{
		{
			name:        "unknown tag",
			input:       `{"name":"wasm","config":{}}`,
			wantErr:     bloopcodec.ErrUnknownPlatform,
			wantPointer: "/name",
		},
		{
			name:    "missing tag",
			input:   `{"config":{}}`,
			wantErr: bloopcodec.ErrMissingField,
		},
		{
			name:    "missing config",
			input:   `{"name":"jvm"}`,
			wantErr: bloopcodec.ErrMissingField,
		},
		{
			name:        "bad linker mode in config",
			input:       `{"name":"native","config":{"version":"0.4","mode":"fast"}}`,
			wantErr:     bloopcodec.ErrUnknownEnumValue,
			wantPointer: "/config/mode",
		},
		{
			name:        "too many main classes",
			input:       `{"name":"jvm","config":{},"mainClass":["A","B"]}`,
			wantErr:     bloopcodec.ErrCardinality,
			wantPointer: "/mainClass",
		},
		{
			name:    "not an object",
			input:   `["jvm"]`,
			wantErr: bloopcodec.ErrUnexpectedKind,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pathErr *bloopcodec.PathError

			got, err := decodeString(bloopcodec.Default().Platform, tt.input)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantPointer == "" {
				return
			}
			require.True(t, errors.As(err, &pathErr), err.Error())
			assert.Equal(t, tt.wantPointer, pathErr.Pointer())
		})
	}
}

func TestPlatformCodec_DiscriminatorError(t *testing.T) {
	var discErr *bloopcodec.DiscriminatorError

	_, err := decodeString(bloopcodec.Default().Platform, `{"name":"wasm","config":{}}`)
	require.True(t, errors.As(err, &discErr))
	assert.Equal(t, "wasm", discErr.Tag)
	assert.Equal(t, []string{"jvm", "js", "native"}, discErr.Accepted)
}

func TestPlatformCodec_UnknownMembersPassThrough(t *testing.T) {
	c := bloopcodec.Default().Platform
	input := `{"name":"jvm","config":{"home":"/jdk","extra":1},"runtimeConfig":{"a": [1, 2]}}`

	got, err := decodeString(c, input)
	require.NoError(t, err)
	jvm, ok := got.(bloopmodel.JvmPlatform)
	require.True(t, ok)
	assert.Equal(t, []string{"extra"}, jvm.Config.Unknown.Names())
	assert.Equal(t, []string{"runtimeConfig"}, jvm.Unknown.Names())
	assert.Equal(t,
		`{"name":"jvm","config":{"home":"/jdk","extra":1},"runtimeConfig":{"a":[1,2]}}`,
		encodeString(t, c, got),
	)
}

func TestPlatformCodec_StrictModeRejectsUnknownMembers(t *testing.T) {
	var pathErr *bloopcodec.PathError

	c := bloopcodec.NewCodecs(bloopcodec.CodecsArgs{RejectUnknown: true}).Platform
	_, err := decodeString(c, `{"name":"jvm","config":{"home":"/jdk","extra":1}}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, bloopcodec.ErrUnknownField)
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "/config/extra", pathErr.Pointer())
}

func TestPlatformCodec_EncodeNil(t *testing.T) {
	err := bloopcodec.Default().Platform.Encode(newDiscardEncoder(), nil)
	assert.ErrorIs(t, err, bloopcodec.ErrNilPlatform)
}

func TestPlatformCodec_EncodePointerVariant(t *testing.T) {
	tests := []struct {
		name     string
		platform bloopmodel.Platform
	}{
		{name: "typed nil jvm", platform: (*bloopmodel.JvmPlatform)(nil)},
		{name: "typed nil js", platform: (*bloopmodel.JsPlatform)(nil)},
		{name: "typed nil native", platform: (*bloopmodel.NativePlatform)(nil)},
		{name: "jvm pointer", platform: &bloopmodel.JvmPlatform{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				err = bloopcodec.Default().Platform.Encode(newDiscardEncoder(), tt.platform)
			})
			assert.ErrorIs(t, err, bloopcodec.ErrNilPlatform)
		})
	}
}
