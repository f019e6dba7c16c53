package interp

// newClock builds the single built-in `clock` function, returning the
// current time in seconds as a float64 via the Interpreter's clock
// source. It takes no arguments.
func newClock() *NativeFunction {
	return &NativeFunction{
		arity: 0,
		name:  "clock",
		fn: func(i *Interpreter, args []Value) (Value, *RuntimeError) {
			return i.clock(), nil
		},
	}
}
