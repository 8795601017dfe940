package order

import "eats/internal/core/domain/model/kernel"

// Selection is an option picked by the customer for a line, with the name of the
// chosen alternative when the option offers choices. Selections are taken from the
// request as-is and need not match the dish options.
type Selection struct {
	optionName string
	choice     kernel.Optional[string]
}

func NewSelection(optionName string, choice kernel.Optional[string]) Selection {
	return Selection{optionName: optionName, choice: choice}
}

func (s Selection) OptionName() string {
	return s.optionName
}

func (s Selection) Choice() (string, bool) {
	return s.choice.Get()
}

// Item is one line of an order: a dish reference plus the customer's selections.
// Items are created with their order and never change.
type Item struct {
	id         kernel.ID
	dishID     kernel.ID
	selections []Selection
}

// NewItem builds a line that has not been persisted yet.
func NewItem(dishID kernel.ID, selections []Selection) (Item, error) {
	if err := dishID.Validate(); err != nil {
		return Item{}, err
	}
	return Item{dishID: dishID, selections: append([]Selection(nil), selections...)}, nil
}

// RestoreItem rebuilds a persisted line.
func RestoreItem(id, dishID kernel.ID, selections []Selection) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	item, err := NewItem(dishID, selections)
	if err != nil {
		return Item{}, err
	}
	item.id = id
	return item, nil
}

// ID is zero until the store persists the line.
func (i Item) ID() kernel.ID {
	return i.id
}

func (i Item) DishID() kernel.ID {
	return i.dishID
}

func (i Item) Selections() []Selection {
	return append([]Selection(nil), i.selections...)
}
