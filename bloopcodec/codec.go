package bloopcodec

import (
	"encoding/json/jsontext"
	"slices"
	"strconv"

	"github.com/mikeschinkel/bloopcfg/bloopmodel"

	"github.com/mikeschinkel/go-dt"
)

// Codec converts between one model type and its JSON form. Decode consumes
// exactly one JSON value. Implementations hold no mutable state and are safe
// for concurrent use.
type Codec[T any] interface {
	Encode(enc *jsontext.Encoder, v T) error
	Decode(dec *jsontext.Decoder) (T, error)
}

// structural wraps a reader error from jsontext.
func structural(err error) error {
	if err == nil {
		return nil
	}
	return dt.NewErr(ErrStructural, err)
}

func unexpectedKind(want string, got jsontext.Kind) error {
	return dt.NewErr(ErrStructural, ErrUnexpectedKind, "expected", want, "got", kindName(got))
}

func kindName(k jsontext.Kind) (name string) {
	switch k {
	case 'n':
		name = "null"
	case 'f', 't':
		name = "boolean"
	case '"':
		name = "string"
	case '0':
		name = "number"
	case '{':
		name = "object"
	case '[':
		name = "array"
	case '}', ']':
		name = "end of container"
	default:
		name = "invalid"
	}
	return name
}

// readRaw consumes the next value and returns a compact private copy.
func readRaw(dec *jsontext.Decoder) (raw jsontext.Value, err error) {
	var v jsontext.Value

	v, err = dec.ReadValue()
	if err != nil {
		err = structural(err)
		goto end
	}
	raw = v.Clone()
	err = raw.Compact()
	if err != nil {
		err = structural(err)
	}
end:
	return raw, err
}

// memberFunc decodes the value of member name. It returns handled=false,
// without reading anything, for members it does not model.
type memberFunc func(dec *jsontext.Decoder, name string) (handled bool, err error)

// objectCodec holds what every record codec shares: the record's name for
// diagnostics, its required members, and the unknown member policy.
type objectCodec struct {
	typeName      string
	required      []string
	rejectUnknown bool
}

func newObjectCodec(typeName string, rejectUnknown bool, required ...string) objectCodec {
	return objectCodec{
		typeName:      typeName,
		required:      required,
		rejectUnknown: rejectUnknown,
	}
}

// decode reads one object, handing each member to fn. Members fn does not
// handle are returned in document order, or rejected in strict mode.
func (o objectCodec) decode(dec *jsontext.Decoder, fn memberFunc) (unknown bloopmodel.Members, err error) {
	var tok jsontext.Token
	var name string
	var handled bool
	var raw jsontext.Value
	var found []string
	var missing []string

	tok, err = dec.ReadToken()
	if err != nil {
		err = structural(err)
		goto end
	}
	if tok.Kind() != '{' {
		err = dt.WithErr(unexpectedKind("object", tok.Kind()), "type", o.typeName)
		goto end
	}
	for dec.PeekKind() != '}' {
		tok, err = dec.ReadToken()
		if err != nil {
			err = structural(err)
			goto end
		}
		name = tok.String()
		handled, err = fn(dec, name)
		if err != nil {
			err = withSegment(err, name)
			goto end
		}
		if handled {
			if slices.Contains(o.required, name) {
				found = append(found, name)
			}
			continue
		}
		if o.rejectUnknown {
			err = withSegment(dt.NewErr(ErrUnknownField, "type", o.typeName, "field", name), name)
			goto end
		}
		raw, err = readRaw(dec)
		if err != nil {
			err = withSegment(err, name)
			goto end
		}
		unknown = append(unknown, bloopmodel.Member{Name: name, Value: raw})
	}
	_, err = dec.ReadToken()
	if err != nil {
		err = structural(err)
		goto end
	}
	for _, req := range o.required {
		if !slices.Contains(found, req) {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		err = dt.NewErr(ErrMissingField, "type", o.typeName, "fields", missing)
	}
end:
	return unknown, err
}

// objectWriter writes one object. The first error sticks and later writes
// are skipped.
type objectWriter struct {
	enc *jsontext.Encoder
	err error
}

func (o objectCodec) begin(enc *jsontext.Encoder) *objectWriter {
	return &objectWriter{
		enc: enc,
		err: enc.WriteToken(jsontext.BeginObject),
	}
}

func (w *objectWriter) name(name string) bool {
	if w.err != nil {
		return false
	}
	w.err = w.enc.WriteToken(jsontext.String(name))
	return w.err == nil
}

// end writes the unknown members back and closes the object.
func (w *objectWriter) end(unknown bloopmodel.Members) error {
	for _, m := range unknown {
		if !w.name(m.Name) {
			break
		}
		w.err = w.enc.WriteValue(m.Value)
	}
	if w.err == nil {
		w.err = w.enc.WriteToken(jsontext.EndObject)
	}
	return w.err
}

func writeMember[T any](w *objectWriter, name string, c Codec[T], v T) {
	if !w.name(name) {
		return
	}
	w.err = withSegment(c.Encode(w.enc, v), name)
}

// writeList omits nil slices; empty non-nil slices are written as [].
func writeList[T any](w *objectWriter, name string, c Codec[[]T], v []T) {
	if v == nil {
		return
	}
	writeMember(w, name, c, v)
}

func writePath(w *objectWriter, name string, c Codec[bloopmodel.Path], p bloopmodel.Path) {
	if p.IsEmpty() {
		return
	}
	writeMember(w, name, c, p)
}

func writeString(w *objectWriter, name string, c Codec[string], s string) {
	if s == "" {
		return
	}
	writeMember(w, name, c, s)
}

func writeOptional[T any](w *objectWriter, name string, c Codec[T], v *T) {
	if v == nil {
		return
	}
	writeMember(w, name, c, *v)
}

// decodeOptional decodes into a fresh *T.
func decodeOptional[T any](dec *jsontext.Decoder, c Codec[T]) (v *T, err error) {
	var t T
	t, err = c.Decode(dec)
	if err != nil {
		goto end
	}
	v = &t
end:
	return v, err
}

// ListCodec encodes []T as a JSON array using an element codec.
type ListCodec[T any] struct {
	elem Codec[T]
}

var _ Codec[[]string] = (*ListCodec[string])(nil)

func NewListCodec[T any](elem Codec[T]) *ListCodec[T] {
	return &ListCodec[T]{elem: elem}
}

func (c *ListCodec[T]) Encode(enc *jsontext.Encoder, vs []T) (err error) {
	err = enc.WriteToken(jsontext.BeginArray)
	if err != nil {
		goto end
	}
	for i, v := range vs {
		err = c.elem.Encode(enc, v)
		if err != nil {
			err = withSegment(err, strconv.Itoa(i))
			goto end
		}
	}
	err = enc.WriteToken(jsontext.EndArray)
end:
	return err
}

// Decode returns an empty non-nil slice for [].
func (c *ListCodec[T]) Decode(dec *jsontext.Decoder) (vs []T, err error) {
	var tok jsontext.Token
	var v T

	tok, err = dec.ReadToken()
	if err != nil {
		err = structural(err)
		goto end
	}
	if tok.Kind() != '[' {
		err = unexpectedKind("array", tok.Kind())
		goto end
	}
	vs = make([]T, 0)
	for dec.PeekKind() != ']' {
		v, err = c.elem.Decode(dec)
		if err != nil {
			err = withSegment(err, strconv.Itoa(len(vs)))
			goto end
		}
		vs = append(vs, v)
	}
	_, err = dec.ReadToken()
	if err != nil {
		err = structural(err)
	}
end:
	return vs, err
}

type StringCodec struct{}

var _ Codec[string] = StringCodec{}

func (StringCodec) Encode(enc *jsontext.Encoder, s string) error {
	return enc.WriteToken(jsontext.String(s))
}

func (StringCodec) Decode(dec *jsontext.Decoder) (s string, err error) {
	var tok jsontext.Token
	tok, err = dec.ReadToken()
	if err != nil {
		err = structural(err)
		goto end
	}
	if tok.Kind() != '"' {
		err = unexpectedKind("string", tok.Kind())
		goto end
	}
	s = tok.String()
end:
	return s, err
}

type BoolCodec struct{}

var _ Codec[bool] = BoolCodec{}

func (BoolCodec) Encode(enc *jsontext.Encoder, b bool) error {
	return enc.WriteToken(jsontext.Bool(b))
}

func (BoolCodec) Decode(dec *jsontext.Decoder) (b bool, err error) {
	var tok jsontext.Token
	tok, err = dec.ReadToken()
	if err != nil {
		err = structural(err)
		goto end
	}
	switch tok.Kind() {
	case 't':
		b = true
	case 'f':
		b = false
	default:
		err = unexpectedKind("boolean", tok.Kind())
	}
end:
	return b, err
}

type IntCodec struct{}

var _ Codec[int] = IntCodec{}

func (IntCodec) Encode(enc *jsontext.Encoder, n int) error {
	return enc.WriteToken(jsontext.Int(int64(n)))
}

func (IntCodec) Decode(dec *jsontext.Decoder) (n int, err error) {
	var tok jsontext.Token
	tok, err = dec.ReadToken()
	if err != nil {
		err = structural(err)
		goto end
	}
	if tok.Kind() != '0' {
		err = unexpectedKind("number", tok.Kind())
		goto end
	}
	n, err = strconv.Atoi(tok.String())
	if err != nil {
		err = dt.NewErr(ErrStructural, ErrUnexpectedKind, "expected", "integer", "got", tok.String())
	}
end:
	return n, err
}

// RawCodec passes a value through untouched, in compact form.
type RawCodec struct{}

var _ Codec[jsontext.Value] = RawCodec{}

func (RawCodec) Encode(enc *jsontext.Encoder, v jsontext.Value) error {
	return enc.WriteValue(v)
}

func (RawCodec) Decode(dec *jsontext.Decoder) (jsontext.Value, error) {
	return readRaw(dec)
}
