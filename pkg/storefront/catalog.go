package storefront

import "github.com/shopspring/decimal"

// Product is one catalog entry served by the replica.
type Product struct {
	ID    int
	Name  string
	Desc  string
	Price decimal.Decimal
	Image string
}

// DefaultCatalog mirrors the six products of the public demo store.
func DefaultCatalog() []Product {
	return []Product{
		{
			ID:    0,
			Name:  "Sauce Labs Backpack",
			Desc:  "carry.allTheThings() with the sleek, streamlined Sly Pack that melds uncompromising style with unequaled laptop and tablet protection.",
			Price: decimal.RequireFromString("29.99"),
			Image: "/static/img/sauce-backpack.jpg",
		},
		{
			ID:    1,
			Name:  "Sauce Labs Bike Light",
			Desc:  "A red light isn't the desired state in testing but it sure helps when riding your bike at night. Water-resistant with 3 lighting modes, 1 AAA battery included.",
			Price: decimal.RequireFromString("9.99"),
			Image: "/static/img/bike-light.jpg",
		},
		{
			ID:    2,
			Name:  "Sauce Labs Bolt T-Shirt",
			Desc:  "Get your testing superhero on with the Sauce Labs bolt T-shirt. From American Apparel, 100% ringspun combed cotton, heather gray with red bolt.",
			Price: decimal.RequireFromString("15.99"),
			Image: "/static/img/bolt-shirt.jpg",
		},
		{
			ID:    3,
			Name:  "Sauce Labs Fleece Jacket",
			Desc:  "It's not every day that you come across a midweight quarter-zip fleece jacket capable of handling everything from a relaxing day outdoors to a busy day at the office.",
			Price: decimal.RequireFromString("49.99"),
			Image: "/static/img/sauce-pullover.jpg",
		},
		{
			ID:    4,
			Name:  "Sauce Labs Onesie",
			Desc:  "Rib snap infant onesie for the junior automation engineer in development. Reinforced 3-snap bottom closure, two-needle hemmed sleeved and bottom won't unravel.",
			Price: decimal.RequireFromString("7.99"),
			Image: "/static/img/red-onesie.jpg",
		},
		{
			ID:    5,
			Name:  "Test.allTheThings() T-Shirt (Red)",
			Desc:  "This classic Sauce Labs t-shirt is perfect to wear when cozying up to your keyboard to automate a few tests. Super-soft and comfy ringspun combed cotton.",
			Price: decimal.RequireFromString("15.99"),
			Image: "/static/img/red-tatt.jpg",
		},
	}
}
