package ir

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/signadot/jdoc/codec"
	"github.com/signadot/jdoc/token"
)

// retype changes y's type to to, following the promotion matrix:
//
//   - Null is reachable from every type; children are released.
//   - String, Number and Bool are reachable from Null and from each other,
//     never from an Object or Array.
//   - Object and Array are reachable only from Null (or themselves).
func (y *Node) retype(to Type) error {
	from := y.Type
	if from == to {
		return nil
	}
	switch {
	case to == NullType:
		for _, c := range y.Values {
			release(c)
		}
		y.Values = nil
		y.Text = ""
	case to.IsLeaf():
		if !from.IsLeaf() {
			return fmt.Errorf("%w: cannot set %s value on %s", ErrIncorrect, to, from)
		}
	default:
		if from != NullType {
			return fmt.Errorf("%w: cannot make %s into %s", ErrIncorrect, from, to)
		}
		y.Text = ""
	}
	y.Type = to
	return nil
}

func (y *Node) setScalar(t Type, text string) error {
	if err := y.retype(t); err != nil {
		return err
	}
	y.Text = text
	return nil
}

// SetNull makes y Null, releasing any children. It never fails.
func (y *Node) SetNull() error {
	return y.retype(NullType)
}

func (y *Node) SetString(v string) error {
	return y.setScalar(StringType, v)
}

// SetUTF8 stores d as a String. d must be valid UTF-8.
func (y *Node) SetUTF8(d []byte) error {
	if !utf8.Valid(d) {
		return fmt.Errorf("%w: invalid utf8", ErrBadEncoding)
	}
	return y.setScalar(StringType, string(d))
}

// SetNumber stores text, which must be a JSON number literal, verbatim.
func (y *Node) SetNumber(text string) error {
	if !token.IsNumber(text) {
		return fmt.Errorf("%w: %q is not a number", ErrParam, text)
	}
	return y.setScalar(NumberType, text)
}

func (y *Node) SetInt64(v int64) error {
	return y.setScalar(NumberType, strconv.FormatInt(v, 10))
}

func (y *Node) SetInt32(v int32) error {
	return y.SetInt64(int64(v))
}

func (y *Node) SetInt16(v int16) error {
	return y.SetInt64(int64(v))
}

func (y *Node) SetUint64(v uint64) error {
	return y.setScalar(NumberType, strconv.FormatUint(v, 10))
}

func (y *Node) SetUint32(v uint32) error {
	return y.SetUint64(uint64(v))
}

func (y *Node) SetUint16(v uint16) error {
	return y.SetUint64(uint64(v))
}

// SetFloat stores the shortest text which reads back as v. NaN and the
// infinities have no JSON form and are rejected.
func (y *Node) SetFloat(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v has no JSON form", ErrParam, v)
	}
	return y.setScalar(NumberType, formatFloat(v))
}

func (y *Node) SetBool(v bool) error {
	return y.setScalar(BoolType, strconv.FormatBool(v))
}

// SetBytesHex stores d as a String of lower case hex.
func (y *Node) SetBytesHex(d []byte) error {
	return y.setScalar(StringType, codec.EncodeHex(d))
}

// SetBytesBase64 stores d as a String of padded standard base64.
func (y *Node) SetBytesBase64(d []byte) error {
	return y.setScalar(StringType, codec.EncodeBase64(d))
}

// SetBigInt stores v as a decimal Number.
func (y *Node) SetBigInt(v *big.Int) error {
	if v == nil {
		return fmt.Errorf("%w: nil big.Int", ErrParam)
	}
	return y.setScalar(NumberType, codec.FormatBigInt(v))
}

// SetTime stores t in encoding enc: a Number for TimeUnix, a String
// otherwise.
func (y *Node) SetTime(t time.Time, enc TimeEncoding) error {
	text, err := codec.FormatTime(t, enc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParam, err)
	}
	if enc.IsString() {
		return y.setScalar(StringType, text)
	}
	return y.setScalar(NumberType, text)
}
