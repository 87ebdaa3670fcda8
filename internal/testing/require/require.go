package require

import (
	"fmt"
	"reflect"
	"testing"
)

func Equal(t *testing.T, got, want any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got `%v`, want `%v`", got, want)
	}
}

func NotEqual(t *testing.T, got, want any) {
	t.Helper()
	if reflect.DeepEqual(got, want) {
		t.Fatalf("got `%v`, want anything else", got)
	}
}

func Nil(t *testing.T, v any) {
	t.Helper()
	if !isNil(v) {
		t.Fatalf("got `%v`, want <nil>", v)
	}
}

func NotNil(t *testing.T, v any) {
	t.Helper()
	if isNil(v) {
		t.Fatal("got <nil>, want anything else")
	}
}

func PanicWithError(t *testing.T, message string, f func()) {
	t.Helper()

	recovered, panicked := capture(f)
	if !panicked {
		t.Fatal("expected panic")
	}
	if fmt.Sprint(recovered) != message {
		t.Fatalf("got panic `%v`, want `%s`", recovered, message)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}

	return false
}

func capture(f func()) (recovered any, panicked bool) {
	panicked = true

	defer func() {
		recovered = recover()
	}()

	f()
	panicked = false

	return
}
