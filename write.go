package bloopcfg

import (
	"github.com/mikeschinkel/go-dt"

	"github.com/mikeschinkel/bloopcfg/bloopcodec"
	"github.com/mikeschinkel/bloopcfg/bloopmodel"
)

// Bytes encodes f with two-space indentation. It panics if f cannot be
// encoded, which cannot happen for a File built by bloopmodel.NewFile or one
// that passes File.Validate.
func Bytes(f *bloopmodel.File) []byte {
	b, err := Encode(f)
	if err != nil {
		panic(err)
	}
	return b
}

func ToStr(f *bloopmodel.File) string {
	return string(Bytes(f))
}

// Encode is Bytes returning the error instead of panicking.
func Encode(f *bloopmodel.File) (data []byte, err error) {
	if f == nil {
		err = dt.NewErr(ErrNilConfig)
		goto end
	}
	data, err = bloopcodec.Default().EncodeFile(f)
end:
	return data, err
}

// WriteFile encodes f to fp, creating the parent directory if needed.
func WriteFile(fp dt.Filepath, f *bloopmodel.File) (err error) {
	var data []byte

	data, err = Encode(f)
	if err != nil {
		err = dt.NewErr(ErrFailedToWriteConfig, "filepath", fp, err)
		goto end
	}
	err = fp.Dir().MkdirAll(0755)
	if err != nil {
		err = dt.NewErr(ErrFailedToWriteConfig, dt.ErrFailedtoCreateDir, "dir", fp.Dir(), err)
		goto end
	}
	err = fp.WriteFile(data, 0644)
	if err != nil {
		err = dt.NewErr(ErrFailedToWriteConfig, dt.ErrFailedToWriteToFile, "filepath", fp, err)
	}
end:
	return err
}
