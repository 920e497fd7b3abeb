package definition

import (
	"reflect"
)

// AsDefinition reports whether v exposes the definition capability surface,
// and returns it as a Definition if so.
//
// The fast path is a direct interface assertion. The fallback is a
// structural check: when an artifact was compiled against a different copy
// of this package (an isolated load context), its types carry the right
// method set but fail identity-based assertion. Recognition must therefore
// be structural (method names and signatures), not type identity. The
// reflection adapter returned in that case keeps the rest of the pipeline
// oblivious to load-context mechanics.
func AsDefinition(v any) (Definition, bool) {
	if v == nil {
		return nil, false
	}
	if d, ok := v.(Definition); ok {
		return d, true
	}
	return asStructural(reflect.ValueOf(v))
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// asStructural matches v's method set against the Definition surface and
// wraps it in a reflection-backed adapter on success.
func asStructural(v reflect.Value) (Definition, bool) {
	name, ok := methodReturning(v, "Name", reflect.String)
	if !ok {
		return nil, false
	}
	target, ok := methodReturning(v, "TargetPath", reflect.String)
	if !ok {
		return nil, false
	}
	validate, ok := methodReturningError(v, "Validate")
	if !ok {
		return nil, false
	}
	publish, ok := methodReturningError(v, "Publish")
	if !ok {
		return nil, false
	}
	return &structuralDefinition{
		name:     name,
		target:   target,
		validate: validate,
		publish:  publish,
	}, true
}

// methodReturning finds a niladic method on v returning a single value of
// the given kind.
func methodReturning(v reflect.Value, name string, kind reflect.Kind) (reflect.Value, bool) {
	m := v.MethodByName(name)
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	t := m.Type()
	if t.NumIn() != 0 || t.NumOut() != 1 || t.Out(0).Kind() != kind {
		return reflect.Value{}, false
	}
	return m, true
}

// methodReturningError finds a niladic method on v returning exactly one
// error. The predeclared error type is shared across load contexts, so a
// direct type comparison is safe here.
func methodReturningError(v reflect.Value, name string) (reflect.Value, bool) {
	m := v.MethodByName(name)
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	t := m.Type()
	if t.NumIn() != 0 || t.NumOut() != 1 || !t.Out(0).Implements(errType) {
		return reflect.Value{}, false
	}
	return m, true
}

// structuralDefinition invokes the underlying value's methods through
// reflection.
type structuralDefinition struct {
	name     reflect.Value
	target   reflect.Value
	validate reflect.Value
	publish  reflect.Value
}

func (d *structuralDefinition) Name() string {
	return d.name.Call(nil)[0].String()
}

func (d *structuralDefinition) TargetPath() string {
	return d.target.Call(nil)[0].String()
}

func (d *structuralDefinition) Validate() error {
	return callError(d.validate)
}

func (d *structuralDefinition) Publish() error {
	return callError(d.publish)
}

func callError(m reflect.Value) error {
	out := m.Call(nil)[0]
	if out.IsNil() {
		return nil
	}
	return out.Interface().(error)
}
