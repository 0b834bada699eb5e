package runtime

// Environment is a scoped name-to-value mapping with a parent chain. Only
// the global scope exists today; the chain is the extension point for
// blocks and functions.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates an environment with an optional parent scope.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Define declares a variable in the current scope. Redeclaring an existing
// name rebinds it.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get looks up a variable by walking the scope chain.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if val, exists := env.values[name]; exists {
			return val, true
		}
	}
	return nil, false
}
