package bloopcodec

import (
	"encoding/json/jsontext"

	"github.com/mikeschinkel/bloopcfg/bloopmodel"
)

// PathCodec never reports a decode error of its own: a string that does not
// parse as a path, or a value that is not a string at all, decodes to
// bloopmodel.EmptyPath. Documents that are not valid JSON still fail.
type PathCodec struct{}

var _ Codec[bloopmodel.Path] = PathCodec{}

func (PathCodec) Encode(enc *jsontext.Encoder, p bloopmodel.Path) error {
	return enc.WriteToken(jsontext.String(p.String()))
}

func (PathCodec) Decode(dec *jsontext.Decoder) (p bloopmodel.Path, err error) {
	var tok jsontext.Token
	var perr error
	var kind jsontext.Kind

	kind = dec.PeekKind()
	if kind != '"' {
		err = structural(dec.SkipValue())
		if err == nil {
			logger.Debug("Non-string path replaced by empty path", "kind", kindName(kind))
		}
		p = bloopmodel.EmptyPath
		goto end
	}
	tok, err = dec.ReadToken()
	if err != nil {
		err = structural(err)
		goto end
	}
	p, perr = bloopmodel.ParsePath(tok.String())
	if perr != nil {
		logger.Debug("Unparsable path replaced by empty path", "path", tok.String(), "error", perr)
		p = bloopmodel.EmptyPath
	}
end:
	return p, err
}
