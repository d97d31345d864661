package models

import "gorm.io/gorm"

// Restaurant represents a restaurant and the pizzas it sells
type Restaurant struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name" validate:"required"`
	Address string `gorm:"not null" json:"address" validate:"required"`

	// Loaded only on demand, e.g. when a single restaurant is requested
	RestaurantPizzas []RestaurantPizza `json:"-" validate:"-"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// Validate checks that name and address are present
func (r *Restaurant) Validate() error {
	return validateStruct(r)
}

// BeforeSave keeps invalid restaurants from reaching the database
func (r *Restaurant) BeforeSave(tx *gorm.DB) error {
	return r.Validate()
}

// Serialize projects the restaurant into its canonical {id, name, address} shape.
// With WithRelations the associated restaurant pizzas are appended under
// "restaurant_pizzas", each one in its scalar shape.
func (r Restaurant) Serialize(opts ...SerializeOption) *Record {
	o := newSerializeOptions(opts)
	record := project([]field{
		{"id", r.ID},
		{"name", r.Name},
		{"address", r.Address},
	}, o.only)

	if o.relations {
		items := make([]*Record, 0, len(r.RestaurantPizzas))
		for _, rp := range r.RestaurantPizzas {
			items = append(items, rp.Serialize())
		}
		record.Set("restaurant_pizzas", items)
	}
	return record
}
