package usecase

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain"
)

// CoerceArgs converts raw JSON-decoded values into the Go values the ABI
// encoder expects for the method's declared parameter types. A mismatch is
// reported as an InvalidArgumentError instead of surfacing later as a
// packing or chain failure.
func CoerceArgs(method abi.Method, raw []any) ([]any, error) {
	if len(raw) != len(method.Inputs) {
		return nil, &domain.InvalidArgumentError{
			Method: method.Name,
			Index:  len(raw),
			Want:   fmt.Sprintf("%d arguments", len(method.Inputs)),
			Err:    errors.New("argument count mismatch"),
		}
	}

	args := make([]any, len(raw))
	for i, input := range method.Inputs {
		v, err := coerceValue(input.Type, raw[i])
		if err != nil {
			return nil, &domain.InvalidArgumentError{
				Method: method.Name,
				Index:  i,
				Want:   input.Type.String(),
				Err:    err,
			}
		}
		args[i] = v
	}
	return args, nil
}

func coerceValue(t abi.Type, raw any) (any, error) {
	switch t.T {
	case abi.UintTy, abi.IntTy:
		n, err := coerceBigInt(raw)
		if err != nil {
			return nil, err
		}
		return sizedInt(t, n)

	case abi.BoolTy:
		switch v := raw.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("cannot parse %q as bool", v)
			}
			return b, nil
		}
		return nil, fmt.Errorf("cannot use %T as bool", raw)

	case abi.StringTy:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("cannot use %T as string", raw)
		}
		return s, nil

	case abi.AddressTy:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("cannot use %T as address", raw)
		}
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("%q is not a hex address", s)
		}
		return common.HexToAddress(s), nil

	case abi.BytesTy:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("cannot use %T as bytes", raw)
		}
		return common.FromHex(s), nil

	case abi.FixedBytesTy:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("cannot use %T as bytes%d", raw, t.Size)
		}
		b := common.FromHex(s)
		if len(b) != t.Size {
			return nil, fmt.Errorf("expected %d bytes, got %d", t.Size, len(b))
		}
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr.Interface(), nil

	case abi.SliceTy, abi.ArrayTy:
		items, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("cannot use %T as %s", raw, t.String())
		}
		if t.T == abi.ArrayTy && len(items) != t.Size {
			return nil, fmt.Errorf("expected %d elements, got %d", t.Size, len(items))
		}
		var out reflect.Value
		if t.T == abi.SliceTy {
			out = reflect.MakeSlice(t.GetType(), len(items), len(items))
		} else {
			out = reflect.New(t.GetType()).Elem()
		}
		for i, item := range items {
			v, err := coerceValue(*t.Elem, item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out.Index(i).Set(reflect.ValueOf(v))
		}
		return out.Interface(), nil
	}

	return nil, fmt.Errorf("unsupported parameter type %s", t.String())
}

func coerceBigInt(raw any) (*big.Int, error) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("%v is not an integer", v)
		}
		// Past 2^53 a float64 no longer represents every integer, so the
		// value received here may already differ from what the caller sent.
		if math.Abs(v) > 1<<53 {
			return nil, fmt.Errorf("%v exceeds the integer precision of JSON numbers - pass large values as strings", v)
		}
		return big.NewInt(int64(v)), nil
	case string:
		s := strings.TrimSpace(v)
		base := 10
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			base = 16
			s = s[2:]
		}
		n, ok := new(big.Int).SetString(s, base)
		if !ok {
			return nil, fmt.Errorf("cannot parse %q as integer", v)
		}
		return n, nil
	}
	return nil, fmt.Errorf("cannot use %T as integer", raw)
}

// sizedInt produces the exact Go type the ABI encoder requires for the
// integer width: native sized ints for 8/16/32/64 bits, *big.Int otherwise.
func sizedInt(t abi.Type, n *big.Int) (any, error) {
	if t.T == abi.UintTy {
		if n.Sign() < 0 {
			return nil, fmt.Errorf("value %s is negative", n)
		}
		if n.BitLen() > t.Size {
			return nil, fmt.Errorf("value %s overflows uint%d", n, t.Size)
		}
		switch t.Size {
		case 8:
			return uint8(n.Uint64()), nil
		case 16:
			return uint16(n.Uint64()), nil
		case 32:
			return uint32(n.Uint64()), nil
		case 64:
			return n.Uint64(), nil
		}
		return n, nil
	}

	bound := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
	if n.Cmp(new(big.Int).Neg(bound)) < 0 || n.Cmp(new(big.Int).Sub(bound, big.NewInt(1))) > 0 {
		return nil, fmt.Errorf("value %s overflows int%d", n, t.Size)
	}
	switch t.Size {
	case 8:
		return int8(n.Int64()), nil
	case 16:
		return int16(n.Int64()), nil
	case 32:
		return int32(n.Int64()), nil
	case 64:
		return n.Int64(), nil
	}
	return n, nil
}
