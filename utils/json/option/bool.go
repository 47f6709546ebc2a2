package option

// Bool is the option type for bool. Use the predeclared True and False values
// where possible.
type Bool *bool

var (
	// True is a Bool with a true value.
	True = NewBool(true)
	// False is a Bool with a false value.
	False = NewBool(false)
)

// NewBool creates a new Bool using the value of the passed bool.
func NewBool(b bool) Bool { return &b }
