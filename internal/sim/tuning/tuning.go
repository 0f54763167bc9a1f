package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Tuning struct {
	Priority Priority `yaml:"priority"`
	Recipe   Recipe   `yaml:"recipe"`
}

type Priority struct {
	DefaultPrepTime float64 `yaml:"default_prep_time"`

	ValueWeight      float64 `yaml:"value_weight"`
	UrgencyWeight    float64 `yaml:"urgency_weight"`
	SlackWeight      float64 `yaml:"slack_weight"`
	ActivationWeight float64 `yaml:"activation_weight"`

	AllowInactive bool `yaml:"allow_inactive"`
	AllowClaimed  bool `yaml:"allow_claimed"`

	// PrepTimes overrides the catalog-derived per-food prep estimate.
	PrepTimes map[string]float64 `yaml:"prep_times,omitempty"`
}

type Recipe struct {
	// Main is bought, chopped and cooked; Side goes straight onto the plate.
	Main string `yaml:"main"`
	Side string `yaml:"side"`

	// CookedDone is the pan cooked stage at which Main is taken out.
	CookedDone int `yaml:"cooked_done"`
}

func Defaults() Tuning {
	return Tuning{
		Priority: Priority{
			DefaultPrepTime:  1.0,
			ValueWeight:      2.0,
			UrgencyWeight:    2.0,
			SlackWeight:      1.5,
			ActivationWeight: 1.0,
			AllowInactive:    true,
			AllowClaimed:     false,
		},
		Recipe: Recipe{
			Main:       "MEAT",
			Side:       "NOODLES",
			CookedDone: 1,
		},
	}
}

// Load reads path over Defaults, so omitted keys keep their default.
func Load(path string) (Tuning, error) {
	t := Defaults()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}

func (t Tuning) Validate() error {
	p := t.Priority
	if p.DefaultPrepTime < 0 {
		return fmt.Errorf("priority.default_prep_time must be >= 0")
	}
	for name, w := range map[string]float64{
		"value_weight":      p.ValueWeight,
		"urgency_weight":    p.UrgencyWeight,
		"slack_weight":      p.SlackWeight,
		"activation_weight": p.ActivationWeight,
	} {
		if w < 0 {
			return fmt.Errorf("priority.%s must be >= 0", name)
		}
	}
	for food, v := range p.PrepTimes {
		if v < 0 {
			return fmt.Errorf("priority.prep_times.%s must be >= 0", food)
		}
	}
	if t.Recipe.Main == "" || t.Recipe.Side == "" {
		return fmt.Errorf("recipe.main and recipe.side are required")
	}
	if t.Recipe.CookedDone < 1 {
		return fmt.Errorf("recipe.cooked_done must be >= 1")
	}
	return nil
}
