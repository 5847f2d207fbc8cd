package xlog

import "reflect"

// TypeName returns the fully-qualified name of T ("import/path.Name").
// Pointer types resolve to their element type.
func TypeName[T any]() string {
	return typeName(reflect.TypeFor[T]())
}

// TypeNameOf is TypeName for the dynamic type of v. A nil v yields "".
func TypeNameOf(v any) string {
	if v == nil {
		return ""
	}
	return typeName(reflect.TypeOf(v))
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
