package paramtree

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cwmp-model/cwmp-go/pkg/model"
)

// FormatValue returns the CWMP string form of a parameter value as
// returned in Parameter.Value.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case model.Base64:
		return v.String()
	case model.HexBinary:
		return v.String()
	}
	return fmt.Sprint(v)
}

// ParseValue converts the CWMP string form of a dt value into the Go
// value stored behind the field (e.g. uint32 for unsignedInt). A dateTime
// without a zone designator is taken as UTC.
func ParseValue(dt model.DataType, s string) (any, error) {
	var (
		v   any
		err error
	)
	switch dt {
	case model.DataTypeString:
		v = s
	case model.DataTypeInt:
		var n int64
		n, err = strconv.ParseInt(strings.TrimSpace(s), 10, 32)
		v = int32(n)
	case model.DataTypeUnsignedInt:
		var n uint64
		n, err = strconv.ParseUint(strings.TrimSpace(s), 10, 32)
		v = uint32(n)
	case model.DataTypeLong:
		v, err = strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	case model.DataTypeUnsignedLong:
		v, err = strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	case model.DataTypeBoolean:
		v, err = parseBool(s)
	case model.DataTypeDateTime:
		v, err = parseDateTime(strings.TrimSpace(s))
	case model.DataTypeBase64:
		var b []byte
		b, err = base64.StdEncoding.DecodeString(strings.TrimSpace(s))
		v = model.Base64(b)
	case model.DataTypeHexBinary:
		var b []byte
		b, err = hex.DecodeString(strings.TrimSpace(s))
		v = model.HexBinary(b)
	default:
		return nil, fmt.Errorf("%w: unsupported type %s", ErrInvalidValue, dt)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid %s", ErrInvalidValue, s, dt)
	}
	return v, nil
}

// localDateTime is xsd:dateTime without a zone designator, which some CPEs
// report. Fractional seconds are accepted after the seconds field.
const localDateTime = "2006-01-02T15:04:05"

// parseDateTime accepts RFC 3339 and the zone-less form, read as UTC.
func parseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}
	if t, lerr := time.Parse(localDateTime, s); lerr == nil {
		return t, nil
	}
	return time.Time{}, err
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, strconv.ErrSyntax
}

// fieldValue reads a parameter field. ok is false when unset.
func fieldValue(fv reflect.Value) (v any, ok bool) {
	if !fv.IsValid() || fv.IsNil() {
		return nil, false
	}
	return fv.Elem().Interface(), true
}

// storeValue writes v (as returned by ParseValue) into a parameter field.
func storeValue(fv reflect.Value, v any) {
	ptr := reflect.New(fv.Type().Elem())
	ptr.Elem().Set(reflect.ValueOf(v))
	fv.Set(ptr)
}
