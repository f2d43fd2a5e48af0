package bloopcfg_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/mikeschinkel/go-dt"
	"github.com/mikeschinkel/go-fsfix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeschinkel/bloopcfg"
	"github.com/mikeschinkel/bloopcfg/bloopcodec"
	"github.com/mikeschinkel/bloopcfg/bloopmodel"
)

const minimalConfig = `{
  "version": "1.4.0",
  "projects": [
    {
      "name": "app",
      "directory": "/work/app",
      "sources": ["/work/app/src"],
      "dependencies": [],
      "platform": {"name": "jvm", "config": {"home": "/jdk"}, "mainClass": "app.Main"}
    }
  ]
}
`

func TestReadBytes(t *testing.T) {
	f, err := bloopcfg.ReadBytes([]byte(minimalConfig))
	require.NoError(t, err)
	require.Len(t, f.Projects, 1)
	assert.Equal(t, "app", f.Projects[0].Name)
	assert.Equal(t, bloopmodel.JvmKind, f.Projects[0].Platform.Kind())
}

func TestReadBytes_NeverPanics(t *testing.T) {
	inputs := []string{
		``,
		`{`,
		`null`,
		`"text"`,
		`[]`,
		`{"version":`,
		`{"version":"1.4.0","projects":[{"name":"a"}]}`,
		`{"version":"1.4.0","projects":[{"name":"a","directory":"/a","platform":{"name":"jvm","config":[]}}]}`,
		`{"version":"1.4.0","projects":[{"name":"a","directory":"/a","platform":{"name":"jvm","config":{},"mainClass":{}}}]}`,
		"\x00\x01\x02\xff",
		minimalConfig[:len(minimalConfig)/2],
		minimalConfig + "garbage",
	}
	for _, input := range inputs {
		t.Run(strings.ToValidUTF8(input[:min(len(input), 24)], "?"), func(t *testing.T) {
			var f *bloopmodel.File
			var err error

			require.NotPanics(t, func() {
				f, err = bloopcfg.ReadBytes([]byte(input))
			})
			assert.Nil(t, f)
			assert.ErrorIs(t, err, bloopcfg.ErrFailedToParseConfig)
		})
	}
}

func TestReadBytes_KeepsCause(t *testing.T) {
	var enumErr *bloopcodec.EnumError

	_, err := bloopcfg.ReadBytes([]byte(`{"version":"1.4.0","projects":[{"name":"a","directory":"/a","platform":{"name":"js","config":{"version":"1","mode":"fast","kind":"none"}}}]}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, bloopcfg.ErrFailedToParseConfig)
	assert.ErrorIs(t, err, bloopcodec.ErrUnknownEnumValue)
	require.True(t, errors.As(err, &enumErr))
	assert.Equal(t, `"fast"`, enumErr.Got)
}

func TestReadBytesStrict(t *testing.T) {
	input := strings.Replace(minimalConfig, `"name": "app",`, `"name": "app", "sbt": {},`, 1)

	_, err := bloopcfg.ReadBytes([]byte(input))
	require.NoError(t, err)

	_, err = bloopcfg.ReadBytesStrict([]byte(input))
	assert.ErrorIs(t, err, bloopcodec.ErrUnknownField)
}

func TestReadJSONC(t *testing.T) {
	input := `{
  // written by hand
  "version": "1.4.0",
  "projects": [
    {
      "name": "app", /* the only project */
      "directory": "/work/app",
      "platform": {"name": "native", "config": {"version": "0.4.16", "mode": "debug",},},
    },
  ],
}`
	_, err := bloopcfg.ReadBytes([]byte(input))
	require.Error(t, err)

	f, err := bloopcfg.ReadJSONC([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, bloopmodel.NativeKind, f.Projects[0].Platform.Kind())
}

func TestReadFile(t *testing.T) {
	var tf *fsfix.RootFixture
	var ff *fsfix.FileFixture

	tf = fsfix.NewRootFixture("bloopcfg-read")
	defer tf.Cleanup()
	ff = tf.AddFileFixture(t, "app.json", &fsfix.FileFixtureArgs{
		Content: minimalConfig,
	})
	tf.Create(t)

	f, err := bloopcfg.ReadFile(ff.Filepath)
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", f.Version)
}

func TestReadFile_Missing(t *testing.T) {
	var tf *fsfix.RootFixture

	tf = fsfix.NewRootFixture("bloopcfg-missing")
	defer tf.Cleanup()
	tf.Create(t)

	_, err := bloopcfg.ReadFile(dt.FilepathJoin(tf.Dir(), "absent.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, bloopcfg.ErrFailedToReadConfig)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		want    bloopcfg.VersionStatus
	}{
		{version: "1.4.0", want: bloopcfg.VersionSupported},
		{version: "1.0.0", want: bloopcfg.VersionSupported},
		{version: "v1.2.0", want: bloopcfg.VersionSupported},
		{version: "2.0.0", want: bloopcfg.VersionNewer},
		{version: "1.4.1", want: bloopcfg.VersionNewer},
		{version: "latest", want: bloopcfg.VersionInvalid},
		{version: "", want: bloopcfg.VersionInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, bloopcfg.CheckVersion(tt.version))
		})
	}
}
