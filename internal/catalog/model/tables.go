package model

// Tables is the static configuration behind synthesis and image fallbacks.
// It is built once, injected into the resolver, generator and service, and
// treated as read-only by all of them.
type Tables struct {
	// SampleNames holds plausible product names per category, picked cyclically.
	SampleNames map[string][]string
	// DefaultNames is used for categories missing from SampleNames.
	DefaultNames []string
	// FeaturedNames are the curated names of synthesized featured products.
	FeaturedNames []string
	// PromoCategories are cycled through by on-sale and featured synthesis.
	PromoCategories []string
	// FallbackImages maps a category to an image used when URI construction fails.
	FallbackImages map[string]string
	// DefaultImage is the fallback for unknown categories.
	DefaultImage string
	// KitchenwareTerms maps lower-cased kitchenware names to curated photo search terms.
	KitchenwareTerms map[string]string
}

// Names returns the sample names for category, or the default names.
func (t Tables) Names(category string) []string {
	if names, ok := t.SampleNames[category]; ok && len(names) > 0 {
		return names
	}
	return t.DefaultNames
}

// DefaultTables returns the storefront's built-in tables.
func DefaultTables() Tables {
	return Tables{
		SampleNames: map[string][]string{
			CategoryClothing:    {"Casual T-Shirt", "Winter Jacket", "Denim Jeans", "Summer Dress", "Knit Sweater", "Formal Shirt"},
			CategoryElectronics: {"Bluetooth Speaker", "Wireless Earbuds", "Smartphone Charger", "LED Desk Lamp", "Digital Watch", "Portable Power Bank"},
			CategoryHomeDecor:   {"Decorative Pillow", "Wall Clock", "Picture Frame", "Ceramic Vase", "Throw Blanket", "Table Lamp"},
			CategoryToys:        {"Plush Teddy Bear", "Building Blocks", "Remote Control Car", "Puzzle Game", "Action Figure", "Board Game"},
			CategoryKitchenware: {"Coffee Mug", "Cutting Board", "Kitchen Knife Set", "Mixing Bowl", "Silicone Spatula", "Measuring Cups"},
		},
		DefaultNames:    []string{"Product 1", "Product 2", "Product 3", "Product 4", "Product 5", "Product 6"},
		FeaturedNames:   []string{"Premium Winter Coat", "Wireless Headphones", "Luxury Throw Pillow"},
		PromoCategories: []string{CategoryClothing, CategoryElectronics, CategoryHomeDecor},
		FallbackImages: map[string]string{
			CategoryClothing:    "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?w=600&h=600&fit=crop",
			CategoryElectronics: "https://images.unsplash.com/photo-1550009158-9ebf69173e03?w=600&h=600&fit=crop",
			CategoryHomeDecor:   "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=600&h=600&fit=crop",
			CategoryToys:        "https://images.unsplash.com/photo-1618842676088-c4d48a6a7c9d?w=600&h=600&fit=crop",
			CategoryKitchenware: "https://images.unsplash.com/photo-1610701596061-2ecf227e85b2?w=600&h=600&fit=crop",
		},
		DefaultImage: "https://images.unsplash.com/photo-1588345921523-c2dcdb7f1dcd?w=600&h=600&fit=crop",
		KitchenwareTerms: map[string]string{
			"chef's knife set":             "chef knife set,professional,cooking",
			"ceramic coffee mug":           "coffee mug,ceramic,kitchen",
			"silicone cooking utensil set": "cooking utensils,kitchen tools,silicone",
			"coffee mug":                   "coffee mug,ceramic,kitchen",
			"cutting board":                "cutting board,kitchen,wood",
			"kitchen knife set":            "chef knife,kitchen,professional",
		},
	}
}
