package util

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

// WeiDecimals is the scale of the ledger's smallest unit: 10^18 wei per coin.
const WeiDecimals = 18

// maxRawBits bounds raw amounts to one ledger word (uint256).
const maxRawBits = 256

// AmountContext is the decimal context used for all amount arithmetic. The
// precision covers a full uint256 raw amount (78 digits) plus the fractional
// digits introduced by wei conversion.
var AmountContext = apd.BaseContext.WithPrecision(96)

var (
	ErrorInvalidAmount = errors.New("invalid amount")
	ErrorPrecisionLoss = errors.New("amount exceeds representable precision")
)

// ToDisplay converts a raw smallest-unit amount into its decimal display
// value. The conversion is exact; it fails with ErrorPrecisionLoss if the raw
// amount does not fit in a ledger word.
func ToDisplay(raw *big.Int) (*apd.Decimal, error) {
	if raw == nil || raw.Sign() < 0 {
		return nil, errors.WithStack(ErrorInvalidAmount)
	}
	if raw.BitLen() > maxRawBits {
		return nil, errors.WithStack(ErrorPrecisionLoss)
	}
	d := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(raw), -WeiDecimals)
	d.Reduce(d)
	return d, nil
}

// ToRaw converts a decimal display value back into the raw smallest-unit
// amount. It fails with ErrorInvalidAmount on negative or non-finite input,
// and on amounts finer than one wei.
func ToRaw(d *apd.Decimal) (*big.Int, error) {
	if d == nil || d.Form != apd.Finite || d.Negative {
		return nil, errors.WithStack(ErrorInvalidAmount)
	}

	scaled := new(apd.Decimal).Set(d)
	scaled.Exponent += WeiDecimals

	var wei apd.Decimal
	res, err := AmountContext.Quantize(&wei, scaled, 0)
	if err != nil {
		return nil, errors.Wrap(err, "scale amount to wei")
	}
	if res.Inexact() {
		// finer than one wei
		return nil, errors.WithStack(ErrorInvalidAmount)
	}

	raw := wei.Coeff.MathBigInt()
	if raw.BitLen() > maxRawBits {
		return nil, errors.WithStack(ErrorPrecisionLoss)
	}
	return raw, nil
}
