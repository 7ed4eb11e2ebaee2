package amortizer

import "fmt"

// Method defines how the loan is repaid over its periods.
type Method int

const (
	// Annuity repays the loan with a constant payment, the interest share
	// shrinks while the principal share grows. It is the default method.
	Annuity Method = iota
	// Straight repays a constant amount of principal each period, the
	// interest and the payment decrease over time.
	Straight
)

// Methods lists all the valid methods.
var Methods = []Method{Annuity, Straight}

func (m Method) String() string {
	switch m {
	case Annuity:
		return "annuity"
	case Straight:
		return "straight"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the known methods.
func (m Method) Valid() bool { return m == Annuity || m == Straight }

// ParseMethod parses a string into a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "annuity":
		return Annuity, nil
	case "straight":
		return Straight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

func (m Method) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
	return []byte(m.String()), nil
}

func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Set implements flag.Value so that a Method can be used directly as a flag.
func (m *Method) Set(s string) error { return m.UnmarshalText([]byte(s)) }
