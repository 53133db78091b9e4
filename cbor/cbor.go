// Package cbor encodes values in Core Deterministic CBOR (RFC 8949, section 4.2.1)
// by wrapping github.com/fxamacker/cbor. Equal values always encode to equal bytes,
// which makes the encoding suitable as input to a hash, such as a public key
// fingerprint.
package cbor

import (
	"github.com/fxamacker/cbor/v2" // imports as cbor
)

var (
	encOptions = cbor.EncOptions{
		InfConvert:    cbor.InfConvertFloat16,
		IndefLength:   cbor.IndefLengthForbidden,
		NaNConvert:    cbor.NaNConvert7e00,
		ShortestFloat: cbor.ShortestFloat16,
		Sort:          cbor.SortCoreDeterministic,

		// We don't use tags
		TagsMd: cbor.TagsForbidden,
	}

	encMode cbor.EncMode
)

func init() {
	var err error
	if encMode, err = encOptions.EncMode(); err != nil {
		panic(err)
	}
}

// Marshal encodes src into a CBOR-encoded byte slice.
func Marshal(src interface{}) ([]byte, error) {
	return encMode.Marshal(src)
}
