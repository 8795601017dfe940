// Package orderrepo maps order aggregates to the orders and order_items tables.
package orderrepo

import (
	"time"

	"eats/internal/adapters/out/postgres/catalogrepo"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderDTO is an order row. Restaurant is loaded with a join so that the owner
// is known without a second query.
type OrderDTO struct {
	ID           int64                     `gorm:"primaryKey;autoIncrement"`
	CustomerID   int64                     `gorm:"index;not null"`
	RestaurantID int64                     `gorm:"index;not null"`
	Restaurant   catalogrepo.RestaurantDTO `gorm:"foreignKey:RestaurantID"`
	DelivererID  *int64                    `gorm:"index"`
	Total        int64                     `gorm:"not null"`
	Status       int                       `gorm:"index;not null"`
	Items        []OrderItemDTO            `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order with the selections as sent by the customer.
type OrderItemDTO struct {
	ID      int64                `gorm:"primaryKey;autoIncrement"`
	OrderID int64                `gorm:"index;not null"`
	DishID  int64                `gorm:"not null"`
	Options []OrderItemOptionDTO `gorm:"type:jsonb;serializer:json"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

type OrderItemOptionDTO struct {
	Name   string  `json:"name"`
	Choice *string `json:"choice,omitempty"`
}

// fromDomain maps a new order. IDs are left to the database.
func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	dto := OrderDTO{
		CustomerID:   o.CustomerID().Int64(),
		RestaurantID: o.Restaurant().ID().Int64(),
		DelivererID:  delivererPtr(o),
		Total:        o.Total().Int64(),
		Status:       int(o.Status()),
		Items:        make([]OrderItemDTO, 0, len(items)),
	}

	for _, item := range items {
		selections := item.Selections()
		options := make([]OrderItemOptionDTO, 0, len(selections))
		for _, s := range selections {
			opt := OrderItemOptionDTO{Name: s.OptionName()}
			if choice, ok := s.Choice(); ok {
				opt.Choice = &choice
			}
			options = append(options, opt)
		}
		dto.Items = append(dto.Items, OrderItemDTO{
			DishID:  item.DishID().Int64(),
			Options: options,
		})
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	ref, err := order.NewRestaurantRef(kernel.ID(dto.RestaurantID), kernel.ID(dto.Restaurant.OwnerID))
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		selections := make([]order.Selection, 0, len(itemDTO.Options))
		for _, opt := range itemDTO.Options {
			selections = append(selections, order.NewSelection(opt.Name, kernel.FromPtr(opt.Choice)))
		}

		item, itemErr := order.RestoreItem(kernel.ID(itemDTO.ID), kernel.ID(itemDTO.DishID), selections)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var deliverer kernel.Optional[kernel.ID]
	if dto.DelivererID != nil {
		deliverer = kernel.Some(kernel.ID(*dto.DelivererID))
	}

	return order.RestoreOrder(
		kernel.ID(dto.ID),
		kernel.ID(dto.CustomerID),
		ref,
		deliverer,
		items,
		kernel.Price(dto.Total),
		order.Status(dto.Status),
	)
}

func delivererPtr(o *order.Order) *int64 {
	id, ok := o.Deliverer()
	if !ok {
		return nil
	}
	raw := id.Int64()
	return &raw
}
