package main

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront-orders/internal/domain/coupon"
)

const maxLineBytes = 64 << 10

var hundred = decimal.NewFromInt(100)

// couponRecord is one line of an import file.
type couponRecord struct {
	Code          string
	DiscountType  coupon.DiscountType
	DiscountValue decimal.Decimal
	MinPurchase   decimal.Decimal
	UsageLimit    int
	Status        string
	ValidFrom     time.Time
	ValidUntil    time.Time
}

// lineError reports an unparsable or invalid line.
type lineError struct {
	File string
	Line int
	Err  error
}

func (e *lineError) Error() string {
	return e.File + ":" + strconv.Itoa(e.Line) + ": " + e.Err.Error()
}

func (e *lineError) Unwrap() error { return e.Err }

// parseRecord decodes a JSON object line. Codes are upper-cased and status
// defaults to active.
func parseRecord(line []byte) (couponRecord, error) {
	rec := couponRecord{Status: coupon.StatusActive}
	err := jx.DecodeBytes(line).Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "code":
			var s string
			s, err = d.Str()
			rec.Code = coupon.NormalizeCode(s)
		case "discount_type":
			var s string
			s, err = d.Str()
			rec.DiscountType = coupon.DiscountType(s)
		case "discount_value":
			rec.DiscountValue, err = decodeDecimal(d)
		case "min_purchase":
			rec.MinPurchase, err = decodeDecimal(d)
		case "usage_limit":
			rec.UsageLimit, err = d.Int()
		case "status":
			rec.Status, err = d.Str()
		case "valid_from":
			rec.ValidFrom, err = decodeTime(d)
		case "valid_until":
			rec.ValidUntil, err = decodeTime(d)
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, key)
		}
		return nil
	})
	if err != nil {
		return couponRecord{}, err
	}
	return rec, validate(rec)
}

// decodeDecimal accepts a JSON number or a numeric string.
func decodeDecimal(d *jx.Decoder) (decimal.Decimal, error) {
	switch d.Next() {
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromString(s)
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromString(n.String())
	default:
		return decimal.Zero, errors.New("expected number")
	}
}

func decodeTime(d *jx.Decoder) (time.Time, error) {
	s, err := d.Str()
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, s)
}

func validate(rec couponRecord) error {
	switch {
	case rec.Code == "":
		return errors.New("code is required")
	case rec.DiscountType != coupon.DiscountPercentage && rec.DiscountType != coupon.DiscountFlat:
		return errors.Errorf("unsupported discount type %q", rec.DiscountType)
	case rec.DiscountValue.IsNegative():
		return errors.New("discount value must not be negative")
	case rec.DiscountType == coupon.DiscountPercentage && rec.DiscountValue.GreaterThan(hundred):
		return errors.New("percentage discount above 100")
	case rec.MinPurchase.IsNegative():
		return errors.New("minimum purchase must not be negative")
	case rec.UsageLimit < 0:
		return errors.New("usage limit must not be negative")
	case rec.ValidFrom.IsZero() || rec.ValidUntil.IsZero():
		return errors.New("validity window is required")
	case rec.ValidUntil.Before(rec.ValidFrom):
		return errors.New("valid_until precedes valid_from")
	}
	return nil
}

// readFile streams a gzip JSONL file. Invalid lines go to onInvalid; blank
// lines are skipped.
func readFile(ctx context.Context, path string, onRecord func(couponRecord), onInvalid func(*lineError)) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	gz, err := pgzip.NewReader(f)
	if err != nil {
		return errors.Wrapf(err, "create gzip reader for %s", path)
	}
	defer func() { _ = gz.Close() }()

	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	n := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		n++
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		rec, err := parseRecord(line)
		if err != nil {
			onInvalid(&lineError{File: path, Line: n, Err: err})
			continue
		}
		onRecord(rec)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "scan %s", path)
	}
	return nil
}
