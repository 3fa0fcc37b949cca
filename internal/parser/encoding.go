package parser

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

type Encoding string

const (
	EncodingUTF8   Encoding = "utf-8"
	EncodingLatin1 Encoding = "iso-8859-1"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText turns raw file bytes into text. UTF-8 is tried first; input that
// is not valid UTF-8, or that already carries replacement characters from an
// earlier lossy conversion, is read as ISO-8859-1 instead.
func DecodeText(raw []byte) (string, Encoding) {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	if utf8.Valid(raw) && !bytes.ContainsRune(raw, utf8.RuneError) {
		return string(raw), EncodingUTF8
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), "\ufffd"), EncodingUTF8
	}
	return string(decoded), EncodingLatin1
}
