package ntuple

import (
	"fmt"
	"reflect"
)

// Number is any type a numeric column element can be converted to.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// length of a slice valued column, false for scalars.
func length(col any) (int, bool) {
	switch c := col.(type) {
	case []float32:
		return len(c), true
	case []float64:
		return len(c), true
	case []int32:
		return len(c), true
	case []int64:
		return len(c), true
	case [][]int32:
		return len(c), true
	}
	v := reflect.ValueOf(col)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return 0, false
	}
	return v.Len(), true
}

func element(col any, i int) (any, error) {
	switch c := col.(type) {
	case []float32:
		if i >= 0 && i < len(c) {
			return c[i], nil
		}
	case []int32:
		if i >= 0 && i < len(c) {
			return c[i], nil
		}
	case [][]int32:
		if i >= 0 && i < len(c) {
			return c[i], nil
		}
	default:
		v := reflect.ValueOf(col)
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
			return nil, fmt.Errorf("column holds a %T, not a list: %w", col, ErrSchema)
		}
		if i >= 0 && i < v.Len() {
			return v.Index(i).Interface(), nil
		}
	}
	n, _ := length(col)
	return nil, fmt.Errorf("element %d of %d: %w", i, n, ErrIndex)
}

func convert[T Number](v any) (T, error) {
	var zero T
	if t, ok := v.(T); ok {
		return t, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.Convert(reflect.TypeOf(zero)).Interface().(T), nil
	case reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	default:
		return zero, fmt.Errorf("%T is not a number: %w", v, ErrSchema)
	}
}

func convertSlice[T Number](v any) ([]T, error) {
	switch c := v.(type) {
	case []T:
		return c, nil
	case []int32:
		out := make([]T, len(c))
		for i, x := range c {
			out[i] = T(x)
		}
		return out, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%T is not a list: %w", v, ErrSchema)
	}
	out := make([]T, rv.Len())
	for i := range out {
		x, err := convert[T](rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

// count reads an object count from a size column: either any list (its length)
// or an integer scalar holding the count.
func count(col any) (int, error) {
	if n, ok := length(col); ok {
		return n, nil
	}
	switch reflect.ValueOf(col).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := convert[int](col)
		if err != nil {
			return 0, err
		}
		if n < 0 {
			return 0, fmt.Errorf("negative count %d: %w", n, ErrSchema)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("size column holds a %T: %w", col, ErrSchema)
	}
}
