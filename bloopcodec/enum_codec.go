package bloopcodec

import (
	"encoding/json/jsontext"
	"strconv"

	"github.com/mikeschinkel/bloopcfg/bloopmodel"

	"github.com/mikeschinkel/go-dt"
)

// EnumCodec encodes a closed enumeration as its canonical identifier string.
// One instance exists per enumeration type, parameterized by its table.
type EnumCodec[T comparable] struct {
	typeName string
	table    bloopmodel.EnumTable[T]
}

type EnumCodecArgs[T comparable] struct {
	// TypeName is used in diagnostics, e.g. "compile order".
	TypeName string
	Table    bloopmodel.EnumTable[T]
}

func NewEnumCodec[T comparable](args EnumCodecArgs[T]) *EnumCodec[T] {
	return &EnumCodec[T]{
		typeName: args.TypeName,
		table:    args.Table,
	}
}

func (c *EnumCodec[T]) Encode(enc *jsontext.Encoder, v T) (err error) {
	entry, ok := c.table.ByValue(v)
	if !ok {
		err = dt.NewErr(ErrInvalidEnumValue, "type", c.typeName, "value", v)
		goto end
	}
	err = enc.WriteToken(jsontext.String(entry.ID))
end:
	return err
}

// Decode accepts only the canonical identifiers. Any other string, and any
// non-string value, is consumed and reported as an *EnumError.
func (c *EnumCodec[T]) Decode(dec *jsontext.Decoder) (v T, err error) {
	var tok jsontext.Token
	var raw jsontext.Value
	var entry bloopmodel.EnumEntry[T]
	var ok bool

	if dec.PeekKind() != '"' {
		raw, err = readRaw(dec)
		if err != nil {
			goto end
		}
		err = c.enumError(string(raw))
		goto end
	}
	tok, err = dec.ReadToken()
	if err != nil {
		err = structural(err)
		goto end
	}
	entry, ok = c.table.ByID(tok.String())
	if !ok {
		err = c.enumError(strconv.Quote(tok.String()))
		goto end
	}
	v = entry.Value
end:
	return v, err
}

func (c *EnumCodec[T]) enumError(got string) error {
	return &EnumError{
		TypeName: c.typeName,
		Got:      got,
		IDs:      c.table.IDs(),
		Names:    c.table.Names(),
	}
}

func NewCompileOrderCodec() *EnumCodec[bloopmodel.CompileOrder] {
	return NewEnumCodec(EnumCodecArgs[bloopmodel.CompileOrder]{
		TypeName: "compile order",
		Table:    bloopmodel.CompileOrderEntries,
	})
}

func NewLinkerModeCodec() *EnumCodec[bloopmodel.LinkerMode] {
	return NewEnumCodec(EnumCodecArgs[bloopmodel.LinkerMode]{
		TypeName: "linker mode",
		Table:    bloopmodel.LinkerModeEntries,
	})
}

func NewModuleKindJSCodec() *EnumCodec[bloopmodel.ModuleKindJS] {
	return NewEnumCodec(EnumCodecArgs[bloopmodel.ModuleKindJS]{
		TypeName: "module kind",
		Table:    bloopmodel.ModuleKindJSEntries,
	})
}
