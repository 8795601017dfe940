package services

import (
	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// Line pairs a resolved dish with the selections requested for it.
type Line struct {
	Dish       *catalog.Dish
	Selections []order.Selection
}

// PricingEngine computes line and order prices from catalog data.
//
// Pricing rules for one line:
//   - Start from the dish base price
//   - For each selection, find the dish option with exactly that name
//   - If the option carries a flat extra, add it and ignore its choices
//   - Otherwise find the choice with exactly the selected name and add its extra
//   - Selections matching nothing contribute nothing and are not an error
//
// Every rule is a commutative addition, so the result does not depend on the
// order of the selections.
type PricingEngine struct{}

func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// PriceItem returns the final price of one dish with the given selections.
func (PricingEngine) PriceItem(dish *catalog.Dish, selections []order.Selection) kernel.Price {
	price := dish.Price()
	for _, s := range selections {
		price = price.Add(selectionExtra(dish, s))
	}
	return price
}

// PriceOrder sums the final price of every line.
func (e PricingEngine) PriceOrder(lines []Line) kernel.Price {
	total := kernel.ZeroPrice
	for _, l := range lines {
		total = total.Add(e.PriceItem(l.Dish, l.Selections))
	}
	return total
}

func selectionExtra(dish *catalog.Dish, s order.Selection) kernel.Price {
	option, ok := dish.FindOption(s.OptionName())
	if !ok {
		return kernel.ZeroPrice
	}

	// A zero flat extra counts as "no flat extra", so choices are still consulted.
	if extra, ok := option.Extra(); ok && extra > 0 {
		return extra
	}

	name, ok := s.Choice()
	if !ok {
		return kernel.ZeroPrice
	}
	choice, ok := option.FindChoice(name)
	if !ok {
		return kernel.ZeroPrice
	}
	if extra, ok := choice.Extra(); ok {
		return extra
	}
	return kernel.ZeroPrice
}
