package typeutil

import (
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// Parse returns the value of type t whose text is s. It accepts the canonical text produced by Value.String for every
// type, so Parse(v.Type(), v.String()) is equal to v. CLASS text parses only for registered classes. Integral text
// must be base 10 and in range for the type; it never wraps.
func Parse(t Type, s string, opts ...Option) (Value, error) {
	switch t {
	case TypeBoolean:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, conversionError(TypeString, t, s, err)
		}
		return Boolean(b), nil
	case TypeChar:
		r, err := ToChar(String(s))
		if err != nil {
			return nil, err
		}
		return Char(r), nil
	case TypeByte:
		x, err := parseSigned[int8](s, t)
		return wrap(Byte(x), err)
	case TypeShort:
		x, err := parseSigned[int16](s, t)
		return wrap(Short(x), err)
	case TypeInt:
		x, err := parseSigned[int32](s, t)
		return wrap(Int(x), err)
	case TypeLong:
		x, err := parseSigned[int64](s, t)
		return wrap(Long(x), err)
	case TypeFloat:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, conversionError(TypeString, t, s, err)
		}
		return Float(f), nil
	case TypeDouble:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, conversionError(TypeString, t, s, err)
		}
		return Double(f), nil
	case TypeString:
		return String(s), nil
	case TypeDate:
		d, err := parseDate(s, configure(opts))
		return wrap(Date(d), err)
	case TypeByteArray:
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, conversionError(TypeString, t, s, err)
		}
		return ByteArray(b), nil
	case TypeClass:
		return wrap(ClassForName(s))
	case TypeBigInteger:
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, conversionError(TypeString, t, s, xerrors.New("not a base 10 integer"))
		}
		return BigInteger{i: n}, nil
	case TypeBigDecimal:
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, conversionError(TypeString, t, s, err)
		}
		return NewBigDecimal(d), nil
	}
	return nil, unsupported("Parse", t)
}

// parseDate tries each configured layout in turn, then format detection if lenient dates are enabled.
func parseDate(s string, conf config) (time.Time, error) {
	if d, ok, err := parseSignedYearDate(s); ok {
		return d, err
	}
	var firstErr error
	for _, layout := range conf.dateLayouts {
		d, err := time.ParseInLocation(layout, s, conf.location)
		if err == nil {
			return d, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if conf.lenientDates {
		d, err := dateparse.ParseIn(s, conf.location)
		if err == nil {
			log().Debug("detected date format", zap.String("input", s), zap.Time("parsed", d))
			return d, nil
		}
		firstErr = err
	}
	return time.Time{}, conversionError(TypeString, TypeDate, s, firstErr)
}

// parseSignedYearDate parses the canonical text of dates whose year is outside 0000 to 9999. The ok result reports
// whether s has that form at all.
func parseSignedYearDate(s string) (d time.Time, ok bool, err error) {
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return time.Time{}, false, nil
	}
	end := strings.IndexByte(s[1:], '-') + 1
	if end == 0 {
		return time.Time{}, false, nil
	}
	digits := s[1:end]
	if len(digits) < 4 {
		return time.Time{}, true, conversionError(TypeString, TypeDate, s, xerrors.New("signed year needs at least 4 digits"))
	}
	year, err := strconv.ParseUint(digits, 10, 31)
	if err != nil {
		return time.Time{}, true, conversionError(TypeString, TypeDate, s, err)
	}
	// 2000 is a leap year, so every month and day of the canonical form parses.
	rest, err := time.Parse(DateLayout, "2000"+s[end:])
	if err != nil {
		return time.Time{}, true, conversionError(TypeString, TypeDate, s, err)
	}
	y := int(year)
	if s[0] == '-' {
		y = -y
	}
	d = time.Date(y, rest.Month(), rest.Day(), rest.Hour(), rest.Minute(), rest.Second(), rest.Nanosecond(),
		rest.Location())
	if d.Day() != rest.Day() {
		return time.Time{}, true, conversionError(TypeString, TypeDate, s, xerrors.New("day out of range"))
	}
	return d, true, nil
}
