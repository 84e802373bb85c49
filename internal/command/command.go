package command

import (
	"errors"
	"reflect"
)

var (
	// ErrMissingCommand is reported when there is no function to invoke.
	ErrMissingCommand = errors.New("missing command method")
	// ErrIncorrectArguments is reported when the caller's arguments do not
	// match what the command takes.
	ErrIncorrectArguments = errors.New("incorrect arguments")
)

// Done completes a command. Exactly one of err or v is meaningful. Calling
// it more than once is undefined.
type Done func(err error, v any)

// Command is a function that takes Arity explicit arguments followed by a
// Done callback.
type Command interface {
	Arity() int
	Invoke(args []any, done Done) error
}

// Func is a command that takes only the completion callback.
type Func func(done Done)

func (f Func) Arity() int { return 0 }

func (f Func) Invoke(args []any, done Done) error {
	if len(args) != 0 {
		return ErrIncorrectArguments
	}
	f(done)
	return nil
}

// ArgFunc is a command that takes one argument of type A before the
// completion callback.
type ArgFunc[A any] func(arg A, done Done)

func (f ArgFunc[A]) Arity() int { return 1 }

func (f ArgFunc[A]) Invoke(args []any, done Done) error {
	if len(args) != 1 {
		return ErrIncorrectArguments
	}
	arg, ok := args[0].(A)
	if !ok {
		return ErrIncorrectArguments
	}
	f(arg, done)
	return nil
}

var doneType = reflect.TypeOf(Done(nil))

// dynamic adapts a plain function value whose last parameter accepts a Done.
type dynamic struct {
	fn reflect.Value
}

func (d dynamic) Arity() int { return d.fn.Type().NumIn() - 1 }

func (d dynamic) Invoke(args []any, done Done) error {
	t := d.fn.Type()
	if len(args) != d.Arity() {
		return ErrIncorrectArguments
	}
	in := make([]reflect.Value, 0, t.NumIn())
	for i, a := range args {
		pt := t.In(i)
		if a == nil {
			switch pt.Kind() {
			case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
				in = append(in, reflect.Zero(pt))
				continue
			}
			return ErrIncorrectArguments
		}
		av := reflect.ValueOf(a)
		if !av.Type().AssignableTo(pt) {
			return ErrIncorrectArguments
		}
		in = append(in, av)
	}
	in = append(in, reflect.ValueOf(done).Convert(t.In(t.NumIn()-1)))
	d.fn.Call(in)
	return nil
}

// lookup resolves fn to a Command. Typed commands are used as they are;
// other functions are checked by reflection.
func lookup(fn any) (Command, error) {
	if fn == nil {
		return nil, ErrMissingCommand
	}
	rv := reflect.ValueOf(fn)
	if rv.Kind() == reflect.Func && rv.IsNil() {
		return nil, ErrMissingCommand
	}
	if c, ok := fn.(Command); ok {
		return c, nil
	}
	if rv.Kind() != reflect.Func {
		return nil, ErrMissingCommand
	}

	t := rv.Type()
	if t.IsVariadic() || t.NumIn() == 0 || !doneType.ConvertibleTo(t.In(t.NumIn()-1)) {
		return nil, ErrIncorrectArguments
	}
	return dynamic{fn: rv}, nil
}
