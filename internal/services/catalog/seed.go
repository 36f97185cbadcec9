package catalog

import "zentro/internal/models"

var seedCategories = []models.Category{
	{ID: "electronics", Name: "Electronics", Icon: "📱"},
	{ID: "fashion", Name: "Fashion", Icon: "👕"},
	{ID: "home", Name: "Home & Garden", Icon: "🏠"},
	{ID: "sports", Name: "Sports & Fitness", Icon: "⚽"},
	{ID: "books", Name: "Books", Icon: "📚"},
	{ID: "beauty", Name: "Beauty & Health", Icon: "💄"},
}

var seedProducts = []models.Product{
	{
		ID:            "1",
		Name:          "Premium Wireless Headphones",
		Description:   "High-quality wireless headphones with noise cancellation and premium sound quality.",
		Price:         299.99,
		OriginalPrice: 399.99,
		Image:         "/premium-wireless-headphones-black.png",
		Category:      "electronics",
		Rating:        4.8,
		Reviews:       1247,
		InStock:       true,
		Featured:      true,
		Tags:          []string{"wireless", "noise-cancelling", "premium"},
	},
	{
		ID:            "2",
		Name:          "Designer Cotton T-Shirt",
		Description:   "Comfortable and stylish cotton t-shirt with modern design and premium fabric.",
		Price:         49.99,
		OriginalPrice: 69.99,
		Image:         "/designer-cotton-t-shirt-white.png",
		Category:      "fashion",
		Rating:        4.6,
		Reviews:       892,
		InStock:       true,
		Featured:      true,
		Tags:          []string{"cotton", "designer", "comfortable"},
	},
	{
		ID:          "3",
		Name:        "Smart Home Security Camera",
		Description: "Advanced security camera with AI detection, night vision, and mobile app control.",
		Price:       199.99,
		Image:       "/smart-security-camera-white-modern.png",
		Category:    "electronics",
		Rating:      4.7,
		Reviews:     634,
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          "4",
		Name:        "Ergonomic Office Chair",
		Description: "Professional office chair with lumbar support and adjustable height.",
		Price:       349.99,
		Image:       "/ergonomic-office-chair.png",
		Category:    "home",
		Rating:      4.9,
		Reviews:     456,
		InStock:     true,
	},
	{
		ID:            "5",
		Name:          "Fitness Tracker Watch",
		Description:   "Smart fitness tracker with heart rate monitoring and GPS tracking.",
		Price:         149.99,
		OriginalPrice: 199.99,
		Image:         "/fitness-tracker-watch.png",
		Category:      "sports",
		Rating:        4.5,
		Reviews:       1089,
		InStock:       true,
		Featured:      true,
	},
	{
		ID:          "6",
		Name:        "Premium Skincare Set",
		Description: "Complete skincare routine with natural ingredients and anti-aging formula.",
		Price:       89.99,
		Image:       "/premium-skincare-set.png",
		Category:    "beauty",
		Rating:      4.8,
		Reviews:     723,
		InStock:     true,
	},
	{
		ID:            "7",
		Name:          "Bestselling Novel Collection",
		Description:   "Collection of this year's most popular fiction novels.",
		Price:         34.99,
		OriginalPrice: 49.99,
		Image:         "/bestselling-novel-collection.png",
		Category:      "books",
		Rating:        4.7,
		Reviews:       312,
		InStock:       true,
	},
	{
		ID:          "8",
		Name:        "Wireless Charging Pad",
		Description: "Fast wireless charging pad compatible with all Qi-enabled devices.",
		Price:       39.99,
		Image:       "/wireless-charging-pad.png",
		Category:    "electronics",
		Rating:      4.4,
		Reviews:     567,
		InStock:     true,
	},
}
