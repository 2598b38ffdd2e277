package param

import (
	"github.com/arloliu/go-scpi/internal/pool"
)

// Format encodes p and returns its wire representation as a string.
//
// It is a convenience for callers that assemble command strings rather than
// writing to a transport directly. On error the returned string is empty;
// no partial prefix escapes.
func Format(p Parameter) (string, error) {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	if err := p.Encode(buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// AppendFormat encodes p and appends its wire representation to dst.
//
// On error dst is returned unmodified.
func AppendFormat(dst []byte, p Parameter) ([]byte, error) {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	if err := p.Encode(buf); err != nil {
		return dst, err
	}

	return append(dst, buf.Bytes()...), nil
}
