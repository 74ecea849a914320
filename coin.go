package coinmatch

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCoin = errors.New("unknown coin")
var ErrUnknownState = errors.New("unknown state")

type UsState int

const (
	Alabama UsState = iota
	Alaska
)

var stateNames = map[UsState]string{
	Alabama: "Alabama",
	Alaska:  "Alaska",
}

func (s UsState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("UsState(%d)", int(s))
}

// ParseUsState accepts a state name in any letter case.
func ParseUsState(name string) (UsState, error) {
	for state, n := range stateNames {
		if strings.EqualFold(n, name) {
			return state, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, name)
}

// Coin is one of Penny, Nickel, Dime or Quarter. The set is closed:
// no type outside this package can implement it.
type Coin interface {
	fmt.Stringer
	coin()
}

type Penny struct{}

type Nickel struct{}

type Dime struct{}

// Quarter carries the state printed on its back.
type Quarter struct {
	State UsState
}

func (Penny) coin()   {}
func (Nickel) coin()  {}
func (Dime) coin()    {}
func (Quarter) coin() {}

func (Penny) String() string  { return "Penny" }
func (Nickel) String() string { return "Nickel" }
func (Dime) String() string   { return "Dime" }

func (q Quarter) String() string {
	return fmt.Sprintf("Quarter(%s)", q.State)
}

// ParseCoin reads "penny", "nickel", "dime" or "quarter[:state]".
// A quarter without a state is an Alabama quarter.
func ParseCoin(s string) (Coin, error) {
	kind, state, hasState := strings.Cut(strings.TrimSpace(s), ":")

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "penny":
		if hasState {
			break
		}
		return Penny{}, nil
	case "nickel":
		if hasState {
			break
		}
		return Nickel{}, nil
	case "dime":
		if hasState {
			break
		}
		return Dime{}, nil
	case "quarter":
		if !hasState {
			return Quarter{State: Alabama}, nil
		}
		st, err := ParseUsState(strings.TrimSpace(state))
		if err != nil {
			return nil, err
		}
		return Quarter{State: st}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCoin, s)
}

// ValueInCents returns the coin's worth. The quarter's state does not
// change its value.
func ValueInCents(c Coin) uint32 {
	switch c.(type) {
	case Penny:
		return 1
	case Nickel:
		return 5
	case Dime:
		return 10
	case Quarter:
		return 25
	default:
		panic(fmt.Sprintf("coinmatch: unknown coin %T", c))
	}
}
