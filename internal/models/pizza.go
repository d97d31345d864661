package models

import "gorm.io/gorm"

// Pizza represents a pizza that restaurants can put on their menu
type Pizza struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name" validate:"required"`
	Ingredients string `gorm:"not null" json:"ingredients" validate:"required"`

	RestaurantPizzas []RestaurantPizza `json:"-" validate:"-"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// Validate checks that name and ingredients are present
func (p *Pizza) Validate() error {
	return validateStruct(p)
}

// BeforeSave keeps invalid pizzas from reaching the database
func (p *Pizza) BeforeSave(tx *gorm.DB) error {
	return p.Validate()
}

// Serialize projects the pizza into its canonical {id, name, ingredients} shape.
// Relations are never expanded for pizzas.
func (p Pizza) Serialize(opts ...SerializeOption) *Record {
	o := newSerializeOptions(opts)
	return project([]field{
		{"id", p.ID},
		{"name", p.Name},
		{"ingredients", p.Ingredients},
	}, o.only)
}
