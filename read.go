package bloopcfg

import (
	"fmt"
	"sync"

	"github.com/mikeschinkel/go-dt"
	"github.com/tidwall/jsonc"

	"github.com/mikeschinkel/bloopcfg/bloopcodec"
	"github.com/mikeschinkel/bloopcfg/bloopmodel"
)

// ReadFile reads and decodes the configuration document at fp. Filesystem
// failures keep their cause, so errors.Is(err, fs.ErrNotExist) works.
func ReadFile(fp dt.Filepath) (f *bloopmodel.File, err error) {
	var data []byte

	data, err = fp.ReadFile()
	if err != nil {
		err = dt.NewErr(ErrFailedToReadConfig, dt.ErrFailedToReadFile, "filepath", fp, err)
		goto end
	}
	f, err = ReadBytes(data)
	if err != nil {
		err = dt.WithErr(err, "filepath", fp)
	}
end:
	return f, err
}

var strictCodecs = sync.OnceValue(func() *bloopcodec.Codecs {
	return bloopcodec.NewCodecs(bloopcodec.CodecsArgs{RejectUnknown: true})
})

// ReadBytes decodes one configuration document. It never panics; every
// failure is returned as an error wrapping ErrFailedToParseConfig.
func ReadBytes(data []byte) (f *bloopmodel.File, err error) {
	return readBytes(bloopcodec.Default(), data)
}

// ReadBytesStrict is ReadBytes with members the model does not know treated
// as errors.
func ReadBytesStrict(data []byte) (f *bloopmodel.File, err error) {
	return readBytes(strictCodecs(), data)
}

// ReadJSONC decodes a hand-edited document that may carry comments and
// trailing commas.
func ReadJSONC(data []byte) (f *bloopmodel.File, err error) {
	return ReadBytes(jsonc.ToJSON(data))
}

func readBytes(codecs *bloopcodec.Codecs, data []byte) (f *bloopmodel.File, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		f = nil
		err = dt.NewErr(ErrFailedToParseConfig, ErrDecoderPanic, "panic", fmt.Sprint(r))
	}()

	f, err = codecs.DecodeFile(data)
	if err != nil {
		err = dt.NewErr(ErrFailedToParseConfig, err)
		goto end
	}
	checkVersion(f.Version)
end:
	return f, err
}
