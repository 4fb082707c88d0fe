package impl

import (
	"veggiemarket/internal/domain/entity"
)

// defaultCatalog returns the starter products inserted by the seed command.
// IDs derive deterministically from the legacy seed slugs so re-running the
// seed never duplicates rows.
func defaultCatalog() []*entity.Product {
	return []*entity.Product{
		{
			ID:          entity.CanonicalProductID("prod1"),
			Name:        "Organic Spinach",
			Description: "Fresh organic spinach, perfect for salads and cooking. Packed with vitamins A, C, and K, iron, and antioxidants.",
			Price:       3.99,
			Stock:       30,
			Image:       "https://images.unsplash.com/photo-1576045057995-568f588f82fb?q=80&w=1000&auto=format&fit=crop",
			Category:    "greens",
			Organic:     true,
			Unit:        "bunch",
		},
		{
			ID:          entity.CanonicalProductID("prod2"),
			Name:        "Organic Kale",
			Description: "Fresh organic kale, an excellent source of vitamins K, A, and C, grown without harmful pesticides.",
			Price:       2.99,
			Stock:       25,
			Image:       "https://images.unsplash.com/photo-1524179091875-bf99a9a6af57?q=80&w=1000&auto=format&fit=crop",
			Category:    "greens",
			Organic:     true,
			Unit:        "bunch",
		},
		{
			ID:          entity.CanonicalProductID("prod3"),
			Name:        "Red Bell Pepper",
			Description: "Sweet and crunchy red bell peppers, an excellent source of vitamin C and antioxidants.",
			Price:       1.49,
			Stock:       40,
			Image:       "https://images.unsplash.com/photo-1526470498-9ae73c665de8?q=80&w=1998&auto=format&fit=crop",
			Category:    "vegetables",
			Unit:        "each",
		},
		{
			ID:          entity.CanonicalProductID("prod4"),
			Name:        "Organic Carrots",
			Description: "Sweet and nutritious organic carrots, grown in rich soil without synthetic fertilizers or pesticides.",
			Price:       2.49,
			Stock:       25,
			Image:       "https://images.unsplash.com/photo-1445282768818-728615cc910a?q=80&w=1770&auto=format&fit=crop",
			Category:    "roots",
			Organic:     true,
			Unit:        "bundle",
		},
		{
			ID:          entity.CanonicalProductID("prod5"),
			Name:        "Fresh Broccoli",
			Description: "Crisp and flavorful broccoli crowns with tight, dense florets at peak freshness.",
			Price:       2.29,
			Stock:       35,
			Image:       "https://images.unsplash.com/photo-1459411621453-7b03977f4bfc?q=80&w=2002&auto=format&fit=crop",
			Category:    "vegetables",
			Organic:     true,
			Unit:        "head",
		},
		{
			ID:          entity.CanonicalProductID("prod6"),
			Name:        "Cucumber",
			Description: "Cool and refreshing cucumbers, perfect for salads, quick pickles, or infused water.",
			Price:       0.99,
			Stock:       45,
			Image:       "https://images.unsplash.com/photo-1604977042946-1eecc30f269e?q=80&w=1000&auto=format&fit=crop",
			Category:    "vegetables",
			Unit:        "each",
		},
		{
			ID:          entity.CanonicalProductID("prod7"),
			Name:        "Organic Tomatoes",
			Description: "Juicy vine-ripened organic tomatoes, perfect for salsas, sandwiches, and sauces.",
			Price:       3.49,
			Stock:       30,
			Image:       "https://images.unsplash.com/photo-1592924357228-91f67e116b13?q=80&w=1000&auto=format&fit=crop",
			Category:    "vegetables",
			Organic:     true,
			Unit:        "pound",
		},
		{
			ID:          entity.CanonicalProductID("prod8"),
			Name:        "Garlic",
			Description: "Fresh aromatic garlic bulbs with plump cloves and tight, papery skin.",
			Price:       0.79,
			Stock:       50,
			Image:       "https://images.unsplash.com/photo-1615475532358-a6b7e5522902?q=80&w=1000&auto=format&fit=crop",
			Category:    "herbs",
			Unit:        "bulb",
		},
		{
			ID:          entity.CanonicalProductID("prod9"),
			Name:        "Yellow Onion",
			Description: "Versatile yellow onions, the workhorse of the kitchen and perfect for caramelizing.",
			Price:       0.89,
			Stock:       60,
			Image:       "https://images.unsplash.com/photo-1508747703725-719777637510?q=80&w=1000&auto=format&fit=crop",
			Category:    "vegetables",
			Unit:        "each",
		},
		{
			ID:          entity.CanonicalProductID("prod10"),
			Name:        "Green Beans",
			Description: "Crisp green beans harvested at peak tenderness, bright and sweet when lightly cooked.",
			Price:       2.99,
			Stock:       25,
			Image:       "https://images.unsplash.com/photo-1567375698348-5d9d5ae99de0?q=80&w=1000&auto=format&fit=crop",
			Category:    "vegetables",
			Unit:        "pound",
		},
		{
			ID:          entity.CanonicalProductID("prod11"),
			Name:        "Organic Potatoes",
			Description: "Versatile organic potatoes with a full earthy flavor, great roasted, mashed, or baked.",
			Price:       3.99,
			Stock:       40,
			Image:       "https://images.unsplash.com/photo-1518977676601-b53f82aba655?q=80&w=1000&auto=format&fit=crop",
			Category:    "roots",
			Organic:     true,
			Unit:        "bag",
		},
		{
			ID:          entity.CanonicalProductID("prod12"),
			Name:        "Fresh Cilantro",
			Description: "Aromatic cilantro harvested with roots intact for longer-lasting freshness.",
			Price:       1.29,
			Stock:       20,
			Image:       "https://images.unsplash.com/photo-1526318472351-c75fcf070305?q=80&w=1000&auto=format&fit=crop",
			Category:    "herbs",
			Unit:        "bunch",
		},
	}
}
