package codec

import (
	"fmt"
	"math/big"
)

// ParseBigInt reads a decimal number literal as an integer. Literals with a
// fraction or exponent are evaluated exactly and truncated toward zero.
//
// The exponent is limited to what math/big.Rat expands: a valid JSON
// number such as 1e9999999 is ErrMalformed here.
func ParseBigInt(s string) (*big.Int, error) {
	if res, ok := new(big.Int).SetString(s, 10); ok {
		return res, nil
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: integer %q", ErrMalformed, s)
	}
	return new(big.Int).Quo(r.Num(), r.Denom()), nil
}

func FormatBigInt(v *big.Int) string {
	return v.String()
}

// BigIntBytes returns the big endian magnitude of v and whether v is
// negative.
func BigIntBytes(v *big.Int) ([]byte, bool) {
	return v.Bytes(), v.Sign() < 0
}

// BigIntFromBytes builds an integer from a big endian magnitude.
func BigIntFromBytes(d []byte, neg bool) *big.Int {
	res := new(big.Int).SetBytes(d)
	if neg {
		res.Neg(res)
	}
	return res
}
