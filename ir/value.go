package ir

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/signadot/jdoc/codec"
	"github.com/signadot/jdoc/token"
)

type TimeEncoding = codec.TimeEncoding

const (
	TimeUnix     = codec.TimeUnix
	TimeStamp    = codec.TimeStamp
	TimeDateTime = codec.TimeDateTime
)

func (y *Node) at(path string) (*Node, error) {
	if path == "" {
		return y, nil
	}
	return y.Get(path)
}

// GetString returns the text of the node at path. Every getter takes a
// path relative to y, resolved read only; "" means y.
//
// Getters coerce scalars:
//
//	target   Number             String               Bool        Null
//	string   canonical text     as stored            true/false  ""
//	bool     0 is false         "" is false          as stored   false
//	number   parsed             leading number or 0  false is 0  0
//
// Objects and Arrays fail with ErrIncorrect.
func (y *Node) GetString(path string) (string, error) {
	x, err := y.at(path)
	if err != nil {
		return "", err
	}
	switch x.Type {
	case ObjectType, ArrayType:
		return "", fmt.Errorf("%w: string from %s", ErrIncorrect, x.Type)
	default:
		return x.Text, nil
	}
}

func (y *Node) GetUTF8(path string) ([]byte, error) {
	s, err := y.GetString(path)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (y *Node) GetBool(path string) (bool, error) {
	x, err := y.at(path)
	if err != nil {
		return false, err
	}
	switch x.Type {
	case BoolType:
		return x.Text == "true", nil
	case NumberType:
		return !isZero(x.Text), nil
	case StringType:
		return x.Text != "", nil
	case NullType:
		return false, nil
	default:
		return false, fmt.Errorf("%w: bool from %s", ErrIncorrect, x.Type)
	}
}

// isZero reports whether every mantissa digit of a number literal is 0.
func isZero(text string) bool {
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case 'e', 'E':
			return true
		case '-', '+', '.', '0':
		default:
			return false
		}
	}
	return true
}

// numText returns the number text x reads as.
func numText(x *Node) (string, error) {
	switch x.Type {
	case NumberType:
		return x.Text, nil
	case StringType:
		if p := token.NumberPrefix(x.Text); p != "" {
			return p, nil
		}
		return "0", nil
	case BoolType:
		if x.Text == "true" {
			return "1", nil
		}
		return "0", nil
	case NullType:
		return "0", nil
	default:
		return "", fmt.Errorf("%w: number from %s", ErrIncorrect, x.Type)
	}
}

func (y *Node) numText(path string) (string, error) {
	x, err := y.at(path)
	if err != nil {
		return "", err
	}
	return numText(x)
}

func parseFloat(text string) (float64, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrIncorrect, text)
	}
	return f, nil
}

func (y *Node) GetFloat(path string) (float64, error) {
	text, err := y.numText(path)
	if err != nil {
		return 0, err
	}
	return parseFloat(text)
}

// parseInt reads integer literals exactly, saturating on overflow, and
// other literals as floats truncated toward zero.
func parseInt(text string) (int64, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	f, err := parseFloat(text)
	if err != nil {
		return 0, err
	}
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64, nil
	case f <= math.MinInt64:
		return math.MinInt64, nil
	}
	return int64(f), nil
}

func parseUint(text string) (uint64, error) {
	v, err := strconv.ParseUint(text, 10, 64)
	if err == nil || (errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(text, "-")) {
		return v, nil
	}
	if strings.HasPrefix(text, "-") {
		i, err := parseInt(text)
		return uint64(i), err
	}
	f, err := parseFloat(text)
	if err != nil {
		return 0, err
	}
	if f >= math.MaxUint64 {
		return math.MaxUint64, nil
	}
	return uint64(f), nil
}

func (y *Node) GetInt64(path string) (int64, error) {
	text, err := y.numText(path)
	if err != nil {
		return 0, err
	}
	return parseInt(text)
}

// GetInt32 reads an int64 as GetInt64 does and keeps the low 32 bits.
func (y *Node) GetInt32(path string) (int32, error) {
	v, err := y.GetInt64(path)
	return int32(v), err
}

// GetInt16 reads an int64 as GetInt64 does and keeps the low 16 bits.
func (y *Node) GetInt16(path string) (int16, error) {
	v, err := y.GetInt64(path)
	return int16(v), err
}

// GetUint64 reads unsigned integer literals exactly. A negative value
// keeps its two's complement bits.
func (y *Node) GetUint64(path string) (uint64, error) {
	text, err := y.numText(path)
	if err != nil {
		return 0, err
	}
	return parseUint(text)
}

func (y *Node) GetUint32(path string) (uint32, error) {
	v, err := y.GetUint64(path)
	return uint32(v), err
}

func (y *Node) GetUint16(path string) (uint16, error) {
	v, err := y.GetUint64(path)
	return uint16(v), err
}

// GetBigInt reads the number at path exactly, truncating any fraction. A
// number whose exponent is too large to expand (1e9999999) is
// ErrBadEncoding although the stored text is valid.
func (y *Node) GetBigInt(path string) (*big.Int, error) {
	text, err := y.numText(path)
	if err != nil {
		return nil, err
	}
	res, err := codec.ParseBigInt(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadEncoding, err)
	}
	return res, nil
}

// encoded returns the text of a String holding encoded bytes. Null reads as
// no bytes.
func (y *Node) encoded(path, what string) (string, bool, error) {
	x, err := y.at(path)
	if err != nil {
		return "", false, err
	}
	switch x.Type {
	case StringType:
		return x.Text, true, nil
	case NullType:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("%w: %s from %s", ErrIncorrect, what, x.Type)
	}
}

func (y *Node) GetBytesHex(path string) ([]byte, error) {
	text, ok, err := y.encoded(path, "hex")
	if !ok {
		return nil, err
	}
	res, err := codec.DecodeHex(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadEncoding, err)
	}
	return res, nil
}

func (y *Node) GetBytesBase64(path string) ([]byte, error) {
	text, ok, err := y.encoded(path, "base64")
	if !ok {
		return nil, err
	}
	res, err := codec.DecodeBase64(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadEncoding, err)
	}
	return res, nil
}

// GetTime reads a time stored in encoding enc. For TimeUnix the node is
// read as an integer; the stamp encodings need a String. Null reads as the
// Unix epoch.
func (y *Node) GetTime(path string, enc TimeEncoding) (time.Time, error) {
	x, err := y.at(path)
	if err != nil {
		return time.Time{}, err
	}
	if x.Type == NullType {
		return time.Unix(0, 0).UTC(), nil
	}
	if !enc.IsString() {
		text, err := numText(x)
		if err != nil {
			return time.Time{}, err
		}
		secs, err := parseInt(text)
		if err != nil {
			return time.Time{}, err
		}
		return time.Unix(secs, 0).UTC(), nil
	}
	if x.Type != StringType {
		return time.Time{}, fmt.Errorf("%w: %s time from %s", ErrIncorrect, enc, x.Type)
	}
	res, err := codec.ParseTime(x.Text, enc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrBadEncoding, err)
	}
	return res, nil
}
