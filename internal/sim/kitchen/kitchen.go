package kitchen

//go:generate go tool mockgen -destination=./mocks/controller_mock.go -package=mocks . Controller

// Pos is a grid cell. X grows to the right, Y grows downward.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Pos) Add(dx, dy int) Pos { return Pos{X: p.X + dx, Y: p.Y + dy} }

type TileKind string

const (
	TileFloor   TileKind = "FLOOR"
	TileWall    TileKind = "WALL"
	TileCounter TileKind = "COUNTER"
	TileCooker  TileKind = "COOKER"
	TileShop    TileKind = "SHOP"
	TileSubmit  TileKind = "SUBMIT"
	TileTrash   TileKind = "TRASH"
)

type ItemKind uint8

const (
	ItemFood ItemKind = iota + 1
	ItemPlate
	ItemPan
)

func (k ItemKind) String() string {
	switch k {
	case ItemFood:
		return "FOOD"
	case ItemPlate:
		return "PLATE"
	case ItemPan:
		return "PAN"
	default:
		return "NONE"
	}
}

// Food is an ingredient in any stage of preparation.
type Food struct {
	Name        string `json:"name"`
	Chopped     bool   `json:"chopped"`
	CookedStage int    `json:"cooked_stage"`
	CookTicks   int    `json:"cook_ticks,omitempty"`
}

// Item is anything a bot can hold or a tile can carry. Exactly one of the
// payload fields matches Kind; a Pan or Plate may be empty.
type Item struct {
	Kind ItemKind `json:"kind"`

	Food  *Food  `json:"food,omitempty"`
	Foods []Food `json:"foods,omitempty"` // plate contents
}

func NewFood(name string) *Item { return &Item{Kind: ItemFood, Food: &Food{Name: name}} }
func NewPan() *Item             { return &Item{Kind: ItemPan} }
func NewPlate() *Item           { return &Item{Kind: ItemPlate} }

func (it *Item) IsPan() bool   { return it != nil && it.Kind == ItemPan }
func (it *Item) IsPlate() bool { return it != nil && it.Kind == ItemPlate }
func (it *Item) IsFood() bool  { return it != nil && it.Kind == ItemFood }

// PanFood returns the food cooking in a pan, if any.
func (it *Item) PanFood() (*Food, bool) {
	if !it.IsPan() || it.Food == nil {
		return nil, false
	}
	return it.Food, true
}

func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	out := &Item{Kind: it.Kind}
	if it.Food != nil {
		f := *it.Food
		out.Food = &f
	}
	if len(it.Foods) > 0 {
		out.Foods = append([]Food(nil), it.Foods...)
	}
	return out
}

// Tile is a read-only view of one map cell and the item resting on it.
type Tile struct {
	Kind     TileKind
	Walkable bool
	Item     *Item
}

// BotState is the per-turn snapshot of one bot.
type BotState struct {
	ID      int   `json:"id"`
	Pos     Pos   `json:"pos"`
	Holding *Item `json:"holding,omitempty"`
}

// Order is an engine-owned request for a set of ingredients. ClaimedBy and
// CompletedTurn are absent (nil) unless set by the engine.
type Order struct {
	OrderID     int      `json:"order_id"`
	Required    []string `json:"required"`
	Reward      float64  `json:"reward"`
	Penalty     float64  `json:"penalty"`
	CreatedTurn int      `json:"created_turn"`
	ExpiresTurn int      `json:"expires_turn"`
	IsActive    bool     `json:"is_active"`

	ClaimedBy     *int `json:"claimed_by,omitempty"`
	CompletedTurn *int `json:"completed_turn,omitempty"`
}

// Controller is the per-turn engine API handed to the bot. Queries return
// snapshots; every mutating call reports whether the engine accepted it.
type Controller interface {
	TeamBotIDs() []int
	Orders() []Order
	Turn() int
	BotState(botID int) (BotState, bool)
	TeamMoney() int
	Tile(x, y int) (Tile, bool)
	Map() *Map

	Move(botID, dx, dy int) bool
	Place(botID, x, y int) bool
	Buy(botID int, item string, x, y int) bool
	Chop(botID, x, y int) bool
	Pickup(botID, x, y int) bool
	AddFoodToPlate(botID, x, y int) bool
	TakeFromPan(botID, x, y int) bool
	Submit(botID, x, y int) bool
	Trash(botID, x, y int) bool
}
