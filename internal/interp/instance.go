package interp

import "github.com/loxscript/golox/internal/token"

// LoxInstance is a runtime object: a class pointer plus a field map.
// Fields are created on first assignment and shadow methods of the same
// name; methods themselves live on the class, never copied per instance.
type LoxInstance struct {
	Class  *LoxClass
	fields map[string]Value
}

// NewInstance constructs an instance of class with no fields set.
func NewInstance(class *LoxClass) *LoxInstance {
	return &LoxInstance{Class: class, fields: make(map[string]Value)}
}

// Get reads a field or bound method named by name. Field lookup takes
// priority over methods; a name found in neither is an error.
func (inst *LoxInstance) Get(name token.Token) (Value, *RuntimeError) {
	if v, ok := inst.fields[name.Lexeme]; ok {
		return v, nil
	}

	if method := inst.Class.FindMethod(name.Lexeme); method != nil {
		return method.bind(inst), nil
	}

	return nil, &RuntimeError{Token: name, Message: "Undefined property '" + name.Lexeme + "'."}
}

// Set stores value in the instance's field map, creating the field if it
// does not already exist.
func (inst *LoxInstance) Set(name token.Token, value Value) {
	inst.fields[name.Lexeme] = value
}
