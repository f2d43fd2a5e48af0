package bloopcodec

import (
	"encoding/json/jsontext"
)

// MainClassCodec reads a main class written either as an optional string
// (current form) or as a list of at most one string (older form), and always
// writes the current form. nil means no main class; the owning record omits
// the member in that case.
type MainClassCodec struct {
	str   Codec[string]
	names Codec[[]string]
}

var _ Codec[*string] = (*MainClassCodec)(nil)

func NewMainClassCodec(str Codec[string], names Codec[[]string]) *MainClassCodec {
	return &MainClassCodec{
		str:   str,
		names: names,
	}
}

func (c *MainClassCodec) Encode(enc *jsontext.Encoder, mainClass *string) error {
	if mainClass == nil {
		return enc.WriteToken(jsontext.Null)
	}
	return c.str.Encode(enc, *mainClass)
}

func (c *MainClassCodec) Decode(dec *jsontext.Decoder) (mainClass *string, err error) {
	var names []string
	var s string

	switch dec.PeekKind() {
	case '[':
		names, err = c.names.Decode(dec)
		if err != nil {
			goto end
		}
		switch len(names) {
		case 0:
		case 1:
			mainClass = &names[0]
		default:
			err = &CardinalityError{
				What:   "main class",
				Values: names,
			}
		}
	case 'n':
		_, err = dec.ReadToken()
		err = structural(err)
	default:
		s, err = c.str.Decode(dec)
		if err != nil {
			goto end
		}
		mainClass = &s
	}
end:
	return mainClass, err
}
