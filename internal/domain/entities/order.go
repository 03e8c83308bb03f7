package entities

import "time"

// OrderCategory classifies the supplies being ordered.

type OrderCategory string

const (
	OrderCategoryGlassware       OrderCategory = "glassware"
	OrderCategoryAlcohol         OrderCategory = "alcohol"
	OrderCategoryFood            OrderCategory = "food"
	OrderCategoryDrinks          OrderCategory = "drinks"
	OrderCategoryCleaning        OrderCategory = "cleaning_supplies"
	OrderCategoryTableware       OrderCategory = "tableware"
	OrderCategoryKitchenSupplies OrderCategory = "kitchen_supplies"
	OrderCategoryBarSupplies     OrderCategory = "bar_supplies"
	OrderCategoryOther           OrderCategory = "other"
)

func (c OrderCategory) Valid() bool {
	switch c {
	case OrderCategoryGlassware, OrderCategoryAlcohol, OrderCategoryFood,
		OrderCategoryDrinks, OrderCategoryCleaning, OrderCategoryTableware,
		OrderCategoryKitchenSupplies, OrderCategoryBarSupplies, OrderCategoryOther:
		return true
	}
	return false
}

// RecurringFrequency applies only to recurring orders.

type RecurringFrequency string

const (
	RecurringDaily   RecurringFrequency = "daily"
	RecurringWeekly  RecurringFrequency = "weekly"
	RecurringMonthly RecurringFrequency = "monthly"
)

func (f RecurringFrequency) Valid() bool {
	switch f {
	case RecurringDaily, RecurringWeekly, RecurringMonthly:
		return true
	}
	return false
}

// OrderItem is one line of a supply order. Unit is free text (bottles, kg,
// boxes, ...).

type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
	Notes    string `json:"notes,omitempty"`
}

// Order is a supply order raised by restaurant staff. Items is never empty.

type Order struct {
	RequestBase

	Category              OrderCategory      `json:"category"`
	Items                 []OrderItem        `json:"items"`
	IsRecurring           bool               `json:"is_recurring"`
	RecurringFrequency    RecurringFrequency `json:"recurring_frequency,omitempty"`
	EstimatedDeliveryDate *time.Time         `json:"estimated_delivery_date,omitempty"`
	ActualDeliveryDate    *time.Time         `json:"actual_delivery_date,omitempty"`
}

// SearchFields lists the texts a free-text search matches against: the id,
// the comments and every item name.
func (o Order) SearchFields() []string {
	fields := []string{o.ID, o.Comments}
	for _, item := range o.Items {
		fields = append(fields, item.Name)
	}
	return fields
}

func (o Order) CategoryKey() string { return string(o.Category) }

func (o Order) CompletedAt() *time.Time { return o.ActualDeliveryDate }
