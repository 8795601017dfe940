package catalog

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// DishOption is a named modifier of a dish price: a flat extra, or a set of choices.
type DishOption struct {
	name    string
	extra   kernel.Optional[kernel.Price]
	choices []DishOptionChoice
}

// DishOptionChoice is one mutually exclusive alternative of an option.
type DishOptionChoice struct {
	name  string
	extra kernel.Optional[kernel.Price]
}

func NewDishOption(name string, extra kernel.Optional[kernel.Price], choices []DishOptionChoice) (DishOption, error) {
	if name == "" {
		return DishOption{}, errs.NewValueIsRequiredError("option name")
	}
	if err := validateExtra(extra); err != nil {
		return DishOption{}, err
	}

	return DishOption{
		name:    name,
		extra:   extra,
		choices: append([]DishOptionChoice(nil), choices...),
	}, nil
}

func NewDishOptionChoice(name string, extra kernel.Optional[kernel.Price]) (DishOptionChoice, error) {
	if err := errors.Join(requireName(name), validateExtra(extra)); err != nil {
		return DishOptionChoice{}, err
	}

	return DishOptionChoice{name: name, extra: extra}, nil
}

func (o DishOption) Name() string {
	return o.name
}

// Extra is the flat charge applied whenever the option is selected.
func (o DishOption) Extra() (kernel.Price, bool) {
	return o.extra.Get()
}

func (o DishOption) Choices() []DishOptionChoice {
	return append([]DishOptionChoice(nil), o.choices...)
}

// FindChoice looks a choice up by exact name.
func (o DishOption) FindChoice(name string) (DishOptionChoice, bool) {
	for _, c := range o.choices {
		if c.name == name {
			return c, true
		}
	}
	return DishOptionChoice{}, false
}

func (c DishOptionChoice) Name() string {
	return c.name
}

func (c DishOptionChoice) Extra() (kernel.Price, bool) {
	return c.extra.Get()
}

func requireName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("choice name")
	}
	return nil
}

func validateExtra(extra kernel.Optional[kernel.Price]) error {
	if v, ok := extra.Get(); ok {
		return v.Validate()
	}
	return nil
}
