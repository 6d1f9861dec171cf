package approx

import (
	"bytes"
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"
)

// approxGobVersion guards the wire format the way the teacher's
// decimalGobVersion guards *Decimal's: bump it if the field layout below
// ever changes, so old encodings fail loudly instead of silently
// misparsing.
const approxGobVersion byte = 1

// GobEncode implements gob.GobEncoder. The wire format is a version
// byte, a bottom flag, the mb and s fields as fixed-width big-endian
// integers, and then m and e as length-prefixed big-endian byte strings
// (big.Int.Bytes/SetBytes) with a leading sign byte each — directly
// mirroring the version-byte-then-packed-fields shape of the teacher's
// own Decimal.GobEncode, adapted from a single mantissa+exponent+flags
// record to this type's two-mantissa centred-interval record.
func (a *Approx) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(approxGobVersion)
	if a.IsBottom() {
		buf.WriteByte(1)
		return buf.Bytes(), nil
	}
	buf.WriteByte(0)
	if err := binary.Write(&buf, binary.BigEndian, a.mb); err != nil {
		return nil, errors.Wrap(err, "approx: GobEncode mb")
	}
	if err := binary.Write(&buf, binary.BigEndian, a.s); err != nil {
		return nil, errors.Wrap(err, "approx: GobEncode s")
	}
	if err := writeSignedBigInt(&buf, a.m); err != nil {
		return nil, errors.Wrap(err, "approx: GobEncode m")
	}
	if err := writeSignedBigInt(&buf, a.e); err != nil {
		return nil, errors.Wrap(err, "approx: GobEncode e")
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (a *Approx) GobDecode(data []byte) error {
	buf := bytes.NewReader(data)
	version, err := buf.ReadByte()
	if err != nil {
		return errors.Wrap(err, "approx: GobDecode version")
	}
	if version != approxGobVersion {
		return errors.Errorf("approx: GobDecode unsupported version %d", version)
	}
	bottom, err := buf.ReadByte()
	if err != nil {
		return errors.Wrap(err, "approx: GobDecode bottom flag")
	}
	if bottom != 0 {
		*a = Approx{bottom: true}
		return nil
	}
	var mb uint32
	var s int32
	if err := binary.Read(buf, binary.BigEndian, &mb); err != nil {
		return errors.Wrap(err, "approx: GobDecode mb")
	}
	if err := binary.Read(buf, binary.BigEndian, &s); err != nil {
		return errors.Wrap(err, "approx: GobDecode s")
	}
	m, err := readSignedBigInt(buf)
	if err != nil {
		return errors.Wrap(err, "approx: GobDecode m")
	}
	e, err := readSignedBigInt(buf)
	if err != nil {
		return errors.Wrap(err, "approx: GobDecode e")
	}
	if e.Sign() < 0 {
		return errors.New("approx: GobDecode negative error radius")
	}
	*a = Approx{mb: mb, m: m, e: e, s: s}
	return nil
}

func writeSignedBigInt(buf *bytes.Buffer, x *big.Int) error {
	sign := byte(0)
	if x.Sign() < 0 {
		sign = 1
	}
	buf.WriteByte(sign)
	b := x.Bytes()
	if err := binary.Write(buf, binary.BigEndian, uint32(len(b))); err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

func readSignedBigInt(buf *bytes.Reader) (*big.Int, error) {
	sign, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	var n uint32
	if err := binary.Read(buf, binary.BigEndian, &n); err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if _, err := buf.Read(b); err != nil {
		return nil, err
	}
	x := new(big.Int).SetBytes(b)
	if sign == 1 {
		x.Neg(x)
	}
	return x, nil
}
