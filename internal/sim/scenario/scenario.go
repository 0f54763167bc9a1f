// Package scenario loads kitchen scenarios: a layout, starting money and the
// orders the sandbox engine will serve.
package scenario

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"kitchenbot.ai/internal/sim/catalogs"
	"kitchenbot.ai/internal/sim/kitchen"
	"kitchenbot.ai/internal/sim/kitchen/sandbox"
)

//go:embed scenario.schema.json
var schemaJSON string

const DefaultTurns = 200

type Scenario struct {
	Name   string          `json:"name"`
	Layout []string        `json:"layout"`
	Money  int             `json:"money"`
	Turns  int             `json:"turns,omitempty"`
	Orders []kitchen.Order `json:"orders"`

	// Digest is the sha256 of the file as read.
	Digest string `json:"-"`
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource("scenario.schema.json", strings.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = c.Compile("scenario.schema.json")
	})
	return schema, schemaErr
}

func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse validates raw against the scenario schema and the layout and order
// rules the schema cannot express.
func Parse(raw []byte) (*Scenario, error) {
	sch, err := compiled()
	if err != nil {
		return nil, fmt.Errorf("scenario schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if err := sch.Validate(doc); err != nil {
		return nil, err
	}

	var s Scenario
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	if s.Turns == 0 {
		s.Turns = DefaultTurns
	}
	if _, spawns, err := kitchen.ParseLayout(s.Layout); err != nil {
		return nil, err
	} else if len(spawns) == 0 {
		return nil, fmt.Errorf("layout: no bot spawn")
	}
	seen := map[int]bool{}
	for _, o := range s.Orders {
		if seen[o.OrderID] {
			return nil, fmt.Errorf("orders: duplicate order_id %d", o.OrderID)
		}
		seen[o.OrderID] = true
		if o.ExpiresTurn < o.CreatedTurn {
			return nil, fmt.Errorf("orders: order %d expires before it is created", o.OrderID)
		}
	}
	sum := sha256.Sum256(raw)
	s.Digest = hex.EncodeToString(sum[:])
	return &s, nil
}

// CheckFoods reports required foods that cat cannot sell.
func (s *Scenario) CheckFoods(cat *catalogs.Catalogs) error {
	var unknown []string
	for _, o := range s.Orders {
		for _, name := range o.Required {
			if _, ok := cat.Foods.Defs[name]; !ok {
				unknown = append(unknown, fmt.Sprintf("%d:%s", o.OrderID, name))
			}
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("orders: unknown foods %s", strings.Join(unknown, ","))
	}
	return nil
}

// Kitchen builds a fresh sandbox engine for the scenario.
func (s *Scenario) Kitchen(cat *catalogs.Catalogs) (*sandbox.Kitchen, error) {
	m, spawns, err := kitchen.ParseLayout(s.Layout)
	if err != nil {
		return nil, err
	}
	return sandbox.New(m, spawns, sandbox.Options{Catalogs: cat, Money: s.Money, Orders: s.Orders}), nil
}
