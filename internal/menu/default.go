package menu

import (
	"github.com/Beka01247/sizzlesync-pos/internal/domain"
	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultItems is the house menu: four categories of five items each.
func DefaultItems() []Item {
	return []Item{
		{Name: "Spring Rolls", Price: price("120.00"), Category: domain.CategoryAppetizers, Variants: []string{"Sweet Chili Sauce", "Garlic Mayo"}},
		{Name: "Chicken Wings", Price: price("150.00"), Category: domain.CategoryAppetizers, Variants: []string{"Buffalo", "BBQ", "Honey Garlic"}},
		{Name: "Calamari", Price: price("180.00"), Category: domain.CategoryAppetizers, Variants: []string{"Mayonnaise", "Vinegar"}},
		{Name: "Nachos", Price: price("160.00"), Category: domain.CategoryAppetizers, Variants: []string{"Extra Cheese", "Jalapeños", "Sour Cream"}},
		{Name: "Garlic Bread", Price: price("90.00"), Category: domain.CategoryAppetizers, Variants: []string{"Extra Butter", "Parmesan"}},

		{Name: "Grilled Chicken", Price: price("220.00"), Category: domain.CategoryMainCourse, Variants: []string{"Garlic Rice", "Plain Rice"}},
		{Name: "Beef Steak", Price: price("350.00"), Category: domain.CategoryMainCourse, Variants: []string{"Mushroom Sauce", "Pepper Sauce", "Garlic Rice"}},
		{Name: "Pork Chop", Price: price("280.00"), Category: domain.CategoryMainCourse, Variants: []string{"Gravy", "Steamed Veggies"}},
		{Name: "Fish Fillet", Price: price("260.00"), Category: domain.CategoryMainCourse, Variants: []string{"Lemon Butter", "Rice"}},
		{Name: "Pasta Carbonara", Price: price("240.00"), Category: domain.CategoryMainCourse, Variants: []string{"Extra Cheese", "Garlic Bread"}},

		{Name: "Chocolate Cake", Price: price("110.00"), Category: domain.CategoryDesserts, Variants: []string{"Extra Frosting", "Sprinkles"}},
		{Name: "Ice Cream", Price: price("80.00"), Category: domain.CategoryDesserts, Variants: []string{"Chocolate", "Vanilla", "Ube", "Mango"}},
		{Name: "Halo-Halo", Price: price("120.00"), Category: domain.CategoryDesserts, Variants: []string{"Extra Leche Flan", "Extra Ice Cream"}},
		{Name: "Leche Flan", Price: price("95.00"), Category: domain.CategoryDesserts, Variants: []string{"Caramel Drizzle"}},
		{Name: "Fruit Salad", Price: price("100.00"), Category: domain.CategoryDesserts, Variants: []string{"Extra Cream"}},

		{Name: "Iced Tea", Price: price("50.00"), Category: domain.CategoryBeverages, Variants: []string{"Lemon", "Extra Ice"}},
		{Name: "Soft Drinks", Price: price("45.00"), Category: domain.CategoryBeverages, Variants: []string{"Coke", "Sprite", "Royal"}},
		{Name: "Fresh Juice", Price: price("70.00"), Category: domain.CategoryBeverages, Variants: []string{"Orange", "Mango", "Pineapple", "Watermelon"}},
		{Name: "Coffee", Price: price("65.00"), Category: domain.CategoryBeverages, Variants: []string{"Black", "With Cream", "Iced"}},
		{Name: "Milkshake", Price: price("85.00"), Category: domain.CategoryBeverages, Variants: []string{"Chocolate", "Strawberry", "Vanilla", "Mango"}},
	}
}

// Default builds the catalog from DefaultItems. The items are known valid.
func Default() *Catalog {
	c, err := New(DefaultItems())
	if err != nil {
		panic(err)
	}
	return c
}
