package workflow

import "fmt"

// State is one stage of the single-dish pipeline. The set is closed: values
// at or above numStates are invalid.
type State uint8

const (
	CheckPan State = iota
	AcquirePan
	// BuyIngredient is where the cooking stage of the pipeline begins once a
	// pan sits on the cooker.
	BuyIngredient
	PlaceIngredient
	Chop
	PickupChopped
	Cook
	BuyPlate
	PlacePlate
	BuySide
	AddSide
	AwaitCooked
	AddCooked
	PickupPlate
	Submit
	Reset

	numStates
)

var stateNames = [numStates]string{
	CheckPan:        "CHECK_PAN",
	AcquirePan:      "ACQUIRE_PAN",
	BuyIngredient:   "BUY_INGREDIENT",
	PlaceIngredient: "PLACE_INGREDIENT",
	Chop:            "CHOP",
	PickupChopped:   "PICKUP_CHOPPED",
	Cook:            "COOK",
	BuyPlate:        "BUY_PLATE",
	PlacePlate:      "PLACE_PLATE",
	BuySide:         "BUY_SIDE",
	AddSide:         "ADD_SIDE",
	AwaitCooked:     "AWAIT_COOKED",
	AddCooked:       "ADD_COOKED",
	PickupPlate:     "PICKUP_PLATE",
	Submit:          "SUBMIT",
	Reset:           "RESET",
}

// successors lists where each state may go besides staying put. Reset is the
// only edge back to the start of the cycle.
var successors = [numStates][]State{
	CheckPan:        {AcquirePan, BuyIngredient},
	AcquirePan:      {BuyIngredient},
	BuyIngredient:   {PlaceIngredient},
	PlaceIngredient: {Chop},
	Chop:            {PickupChopped},
	PickupChopped:   {Cook},
	Cook:            {BuyPlate},
	BuyPlate:        {PlacePlate},
	PlacePlate:      {BuySide},
	BuySide:         {AddSide},
	AddSide:         {AwaitCooked},
	AwaitCooked:     {AddCooked},
	AddCooked:       {PickupPlate},
	PickupPlate:     {Submit},
	Submit:          {Reset},
	Reset:           {CheckPan},
}

func States() []State {
	out := make([]State, 0, numStates)
	for s := State(0); s < numStates; s++ {
		out = append(out, s)
	}
	return out
}

func (s State) Valid() bool { return s < numStates }

func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("State(%d)", uint8(s))
	}
	return stateNames[s]
}

// Successors returns the states s may move to on a completed step.
func Successors(s State) []State {
	if !s.Valid() {
		return nil
	}
	return append([]State(nil), successors[s]...)
}

// CanMove reports whether from -> to is a legal step; staying put always is.
func CanMove(from, to State) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	for _, s := range successors[from] {
		if s == to {
			return true
		}
	}
	return false
}

func ParseState(name string) (State, error) {
	for s, n := range stateNames {
		if n == name {
			return State(s), nil
		}
	}
	return 0, fmt.Errorf("unknown state %q", name)
}

func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid state %d", uint8(s))
	}
	return []byte(stateNames[s]), nil
}

func (s *State) UnmarshalText(b []byte) error {
	v, err := ParseState(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
