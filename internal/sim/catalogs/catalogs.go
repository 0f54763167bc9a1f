package catalogs

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	ShopPan   = "PAN"
	ShopPlate = "PLATE"
)

type Catalogs struct {
	Foods FoodCatalog
	Shop  ShopCatalog
}

type FoodCatalog struct {
	// Order is the declaration order of foods.json.
	Order  []string
	Defs   map[string]FoodDef
	Digest string

	// CookProgress is the number of cooking ticks that take a food from raw
	// to cooked stage 1.
	CookProgress int
}

type FoodDef struct {
	Name    string `json:"name"`
	CanChop bool   `json:"can_chop"`
	CanCook bool   `json:"can_cook"`
	BuyCost int    `json:"buy_cost"`
}

type ShopCatalog struct {
	Items  map[string]ShopDef
	Digest string
}

type ShopDef struct {
	ID      string `json:"id"`
	BuyCost int    `json:"buy_cost"`
}

type foodsFile struct {
	CookProgress int       `json:"cook_progress"`
	Foods        []FoodDef `json:"foods"`
}

// Cost returns the buy cost of a food or shop item.
func (c *Catalogs) Cost(id string) (int, bool) {
	if d, ok := c.Foods.Defs[id]; ok {
		return d.BuyCost, true
	}
	if d, ok := c.Shop.Items[id]; ok {
		return d.BuyCost, true
	}
	return 0, false
}

// FoodList returns the food definitions in declaration order.
func (c *Catalogs) FoodList() []FoodDef {
	out := make([]FoodDef, 0, len(c.Foods.Order))
	for _, name := range c.Foods.Order {
		out = append(out, c.Foods.Defs[name])
	}
	return out
}

func Load(configDir string) (*Catalogs, error) {
	var c Catalogs
	if err := loadFoods(filepath.Join(configDir, "foods.json"), &c.Foods); err != nil {
		return nil, err
	}
	if err := loadShop(filepath.Join(configDir, "shop.json"), &c.Shop); err != nil {
		return nil, err
	}
	return &c, nil
}

// Defaults mirrors configs/foods.json and configs/shop.json.
func Defaults() *Catalogs {
	c, err := parse(defaultFoodsJSON, defaultShopJSON)
	if err != nil {
		panic("catalogs: bad built-in defaults: " + err.Error())
	}
	return c
}

func parse(foods, shop []byte) (*Catalogs, error) {
	var c Catalogs
	if err := decodeFoods(foods, &c.Foods); err != nil {
		return nil, err
	}
	if err := decodeShop(shop, &c.Shop); err != nil {
		return nil, err
	}
	return &c, nil
}

func loadFoods(path string, out *FoodCatalog) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return decodeFoods(raw, out)
}

func decodeFoods(raw []byte, out *FoodCatalog) error {
	out.Digest = sha256Hex(raw)

	var f foodsFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("foods.json: %w", err)
	}
	if f.CookProgress <= 0 {
		return fmt.Errorf("foods.json: cook_progress must be > 0")
	}
	out.CookProgress = f.CookProgress
	out.Defs = map[string]FoodDef{}
	out.Order = out.Order[:0]
	for _, d := range f.Foods {
		if d.Name == "" {
			return fmt.Errorf("foods.json: empty name")
		}
		if _, dup := out.Defs[d.Name]; dup {
			return fmt.Errorf("foods.json: duplicate food %s", d.Name)
		}
		if d.BuyCost < 0 {
			return fmt.Errorf("foods.json: %s: negative buy_cost", d.Name)
		}
		out.Defs[d.Name] = d
		out.Order = append(out.Order, d.Name)
	}
	return nil
}

func loadShop(path string, out *ShopCatalog) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return decodeShop(raw, out)
}

func decodeShop(raw []byte, out *ShopCatalog) error {
	out.Digest = sha256Hex(raw)

	var defs []ShopDef
	if err := json.Unmarshal(raw, &defs); err != nil {
		return fmt.Errorf("shop.json: %w", err)
	}
	out.Items = map[string]ShopDef{}
	for _, d := range defs {
		if d.ID == "" {
			return fmt.Errorf("shop.json: empty id")
		}
		out.Items[d.ID] = d
	}
	for _, need := range []string{ShopPan, ShopPlate} {
		if _, ok := out.Items[need]; !ok {
			return fmt.Errorf("shop.json: missing %s", need)
		}
	}
	return nil
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

var defaultFoodsJSON = []byte(`{
  "cook_progress": 20,
  "foods": [
    {"name": "EGG", "can_chop": false, "can_cook": true, "buy_cost": 20},
    {"name": "ONIONS", "can_chop": true, "can_cook": false, "buy_cost": 30},
    {"name": "MEAT", "can_chop": true, "can_cook": true, "buy_cost": 80},
    {"name": "NOODLES", "can_chop": false, "can_cook": false, "buy_cost": 40},
    {"name": "SAUCE", "can_chop": false, "can_cook": false, "buy_cost": 10}
  ]
}`)

var defaultShopJSON = []byte(`[
  {"id": "PAN", "buy_cost": 50},
  {"id": "PLATE", "buy_cost": 20}
]`)
