package client

import (
	"fmt"
	"gitlab.com/ignitionrobotics/billing/paystack/pkg/api"
	"math"
	"net/url"
	"reflect"
	"strconv"
)

// filterParams returns a new set of params containing only the keys present in allowed.
// Unknown keys are dropped without failing.
func filterParams(allowed []string, in api.Params) api.Params {
	out := make(api.Params, len(allowed))
	for _, key := range allowed {
		if v, ok := in[key]; ok {
			out[key] = v
		}
	}
	return out
}

// missing returns the first field in required whose value in fields is absent or zero.
func missing(required []string, fields api.Params) (string, bool) {
	for _, name := range required {
		if isZero(fields[name]) {
			return name, true
		}
	}
	return "", false
}

// isZero returns true for nil, zero values and empty slices or maps.
func isZero(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	}
	return rv.IsZero()
}

// payload merges defaults, filtered optional params and required fields, in that order of precedence.
// Fields listed in op.minorUnits are multiplied by 100.
func (op operation) payload(required, optional api.Params) api.Params {
	out := make(api.Params, len(op.defaults)+len(optional)+len(required))
	for k, v := range op.defaults {
		out[k] = v
	}
	for k, v := range filterParams(op.optional, optional) {
		out[k] = v
	}
	for k, v := range required {
		if k == op.pathParam {
			continue
		}
		out[k] = v
	}
	for _, field := range op.minorUnits {
		if amount, ok := out[field].(int64); ok {
			out[field], _ = toMinorUnits(amount)
		}
	}
	return out
}

// overflows returns the first field in op.minorUnits that can't be converted to minor units.
func (op operation) overflows(required api.Params) (string, bool) {
	for _, field := range op.minorUnits {
		amount, ok := required[field].(int64)
		if !ok {
			continue
		}
		if _, ok = toMinorUnits(amount); !ok {
			return field, true
		}
	}
	return "", false
}

// toMinorUnits converts an amount in major currency units into minor units (e.g. naira to kobo).
// It returns false if the result doesn't fit in an int64.
func toMinorUnits(amount int64) (int64, bool) {
	if amount > math.MaxInt64/100 || amount < math.MinInt64/100 {
		return 0, false
	}
	return amount * 100, true
}

// query encodes the given params as URL query values.
func query(params api.Params) url.Values {
	values := make(url.Values, len(params))
	for k, v := range params {
		values.Set(k, formatValue(v))
	}
	return values
}

// formatValue formats a query value. Floats never use exponent notation.
func formatValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case bool:
		return strconv.FormatBool(t)
	}
	return fmt.Sprint(v)
}
