package interp

// LoxClass is a class value: a name, an optional superclass, and a method
// table. Classes are themselves Callable — calling one constructs an
// instance and, if an `init` method is defined anywhere in the chain,
// invokes it.
type LoxClass struct {
	Name       string
	Superclass *LoxClass
	Methods    map[string]*LoxFunction
}

// NewClass builds a class value with its own (unbound) method table.
func NewClass(name string, superclass *LoxClass, methods map[string]*LoxFunction) *LoxClass {
	return &LoxClass{Name: name, Superclass: superclass, Methods: methods}
}

// FindMethod looks up name on this class, then recurses into the
// superclass chain. Leftmost (most-derived) definition wins and lookup is
// deterministic: a name defined anywhere in the chain is always found.
func (c *LoxClass) FindMethod(name string) *LoxFunction {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

func (c *LoxClass) String() string { return c.Name }

// Arity is the constructor's arity: that of `init` if defined, else 0.
func (c *LoxClass) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs a fresh instance and, if the class chain defines
// `init`, binds and invokes it with args before returning the instance.
func (c *LoxClass) Call(i *Interpreter, args []Value) (Value, *RuntimeError) {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.bind(instance).Call(i, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
