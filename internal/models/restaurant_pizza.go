package models

import "gorm.io/gorm"

// Price bounds for a pizza on a restaurant menu
const (
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza is the priced association between a restaurant and a pizza
type RestaurantPizza struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	Price        int  `gorm:"not null" json:"price" validate:"min=1,max=30"`
	PizzaID      uint `gorm:"not null;index" json:"pizza_id" validate:"required"`
	RestaurantID uint `gorm:"not null;index" json:"restaurant_id" validate:"required"`

	Pizza      *Pizza      `gorm:"constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	Restaurant *Restaurant `gorm:"constraint:OnDelete:CASCADE" json:"-" validate:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// RestaurantPizzaInput is the payload used to create a restaurant pizza.
// Pointer fields distinguish a missing value from a zero value.
type RestaurantPizzaInput struct {
	Price        *int  `json:"price" validate:"required,min=1,max=30"`
	PizzaID      *uint `json:"pizza_id" validate:"required"`
	RestaurantID *uint `json:"restaurant_id" validate:"required"`
}

// Validate checks that every field is present and the price is in range
func (in RestaurantPizzaInput) Validate() error {
	return validateStruct(in)
}

// NewRestaurantPizza validates the input and builds an unsaved RestaurantPizza
func NewRestaurantPizza(in RestaurantPizzaInput) (RestaurantPizza, error) {
	if err := in.Validate(); err != nil {
		return RestaurantPizza{}, err
	}
	return RestaurantPizza{
		Price:        *in.Price,
		PizzaID:      *in.PizzaID,
		RestaurantID: *in.RestaurantID,
	}, nil
}

// Validate checks the price range and that both references are set
func (rp *RestaurantPizza) Validate() error {
	return validateStruct(rp)
}

// BeforeSave is the last guard before a row is written
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	return rp.Validate()
}

// Serialize projects the association into {id, price, pizza_id, restaurant_id}.
// WithParents nests the pizza and restaurant scalar shapes when they are loaded.
func (rp RestaurantPizza) Serialize(opts ...SerializeOption) *Record {
	o := newSerializeOptions(opts)
	record := project([]field{
		{"id", rp.ID},
		{"price", rp.Price},
		{"pizza_id", rp.PizzaID},
		{"restaurant_id", rp.RestaurantID},
	}, o.only)

	if o.parents {
		if rp.Pizza != nil {
			record.Set("pizza", rp.Pizza.Serialize())
		}
		if rp.Restaurant != nil {
			record.Set("restaurant", rp.Restaurant.Serialize())
		}
	}
	return record
}
