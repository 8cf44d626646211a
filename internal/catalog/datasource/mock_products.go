package datasource

import "github.com/seasonal-storefront/server/internal/catalog/model"

// MockProducts returns a fresh copy of the bundled catalog, three products
// per category, in the camelCase shape the storefront front end uses.
func MockProducts() []model.RawProduct {
	return []model.RawProduct{
		mock("clothing-1", "Classic White T-Shirt", "A timeless white t-shirt made from 100% organic cotton.", "clothing",
			799, 1299, 4.5, true, "photo-1521572163474-6864f9cf17ab",
			withTags("essentials", "casual"), withDiscount(38)),
		mock("clothing-2", "Slim Fit Jeans", "Comfortable slim fit jeans that go with everything.", "clothing",
			1499, 2499, 4.2, true, "photo-1542272604-787c3835535d",
			withSizes("S", "M", "L", "XL")),
		mock("clothing-3", "Winter Jacket", "Stay warm and stylish with this winter jacket featuring premium insulation.", "clothing",
			3599, 5999, 4.8, false, "photo-1539533018447-63fcce2678e3",
			withSizes("M", "L", "XL")),
		mock("electronics-1", "Wireless Earbuds", "True wireless earbuds with noise cancellation and long battery life.", "electronics",
			3990, 5990, 4.6, true, "photo-1606220588913-b3aacb4d2f46",
			withDiscount(33)),
		mock("electronics-2", "Smart Watch", "Track your fitness, receive notifications, and more with this sleek smartwatch.", "electronics",
			5990, 7990, 4.4, true, "photo-1546868871-7041f2a55e12"),
		mock("electronics-3", "Bluetooth Speaker", "Portable Bluetooth speaker with 360° sound and 20-hour battery life.", "electronics",
			2499, 3499, 4.3, false, "photo-1608043152269-423dbba4e7e1"),
		mock("home-decor-1", "Decorative Throw Pillow", "Add a pop of color to your sofa with this beautiful throw pillow.", "home-decor",
			899, 1499, 4.1, true, "photo-1579656381226-5fc0f0100c3b",
			withDiscount(40)),
		mock("home-decor-2", "Modern Wall Clock", "Minimalist wall clock that adds style to any room.", "home-decor",
			1499, 1999, 4.5, false, "photo-1507473885765-e6ed057f782c"),
		mock("home-decor-3", "Ceramic Vase", "Handcrafted ceramic vase for your favorite flowers.", "home-decor",
			1299, 0, 4.7, false, "photo-1612196808214-b8e1d6145a8c"),
		mock("toys-1", "Plush Teddy Bear", "Soft and huggable teddy bear for children of all ages.", "toys",
			999, 1499, 4.9, true, "photo-1562040506-a9b32cb51b94",
			withDiscount(33)),
		mock("toys-2", "Building Blocks Set", "Educational building blocks to boost creativity and motor skills.", "toys",
			1899, 2499, 4.5, false, "photo-1587654780291-39c9404d746b"),
		mock("toys-3", "Remote Control Car", "High-speed remote control car for indoor and outdoor fun.", "toys",
			2499, 3499, 4.2, true, "photo-1595856619767-ab739fa7daae"),
		mock("kitchenware-1", "Chef's Knife Set", "Professional-grade knife set for all your cooking needs.", "kitchenware",
			4999, 6999, 4.8, true, "photo-1593618793289-9dc339f5a5dd",
			withDiscount(28)),
		mock("kitchenware-2", "Ceramic Coffee Mug", "Elegant ceramic mug for your morning coffee or tea.", "kitchenware",
			899, 1299, 4.4, false, "photo-1571489528490-118422f47cbb"),
		mock("kitchenware-3", "Silicone Cooking Utensil Set", "Heat-resistant silicone utensils for non-stick cookware.", "kitchenware",
			1999, 2999, 4.6, true, "photo-1627302968982-6bf89267746a"),
	}
}

type mockAttr func(*model.RawProduct)

func withTags(tags ...string) mockAttr {
	return func(p *model.RawProduct) { p.Tags = tags }
}

func withSizes(sizes ...string) mockAttr {
	return func(p *model.RawProduct) { p.Sizes = sizes }
}

func withDiscount(pct float64) mockAttr {
	return func(p *model.RawProduct) { p.Discount = model.Float64Ptr(pct) }
}

// mock builds a catalog entry. originalPrice 0 means none.
func mock(id, name, description, category string, price, originalPrice, rating float64, onSale bool, photo string, attrs ...mockAttr) model.RawProduct {
	p := model.RawProduct{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       model.Float64Ptr(price),
		Category:    category,
		Image:       "https://images.unsplash.com/" + photo + "?w=600&h=600&fit=crop",
		Rating:      rating,
		IsOnSaleAlt: model.BoolPtr(onSale),
	}
	if originalPrice > 0 {
		p.OriginalPriceAlt = model.Float64Ptr(originalPrice)
	}
	for _, attr := range attrs {
		attr(&p)
	}
	return p
}
