package catalog

import "github.com/nikolayk812/cakeshop/internal/domain"

// Products returns the built-in catalogue. Records are fixed at build time;
// display order here is the catalogue order.
func Products() []domain.ProductRecord {
	return []domain.ProductRecord{
		{
			ID:          "birthday-1",
			Name:        "Chocolate Birthday Delight",
			Category:    domain.CategoryBirthday,
			Price:       45,
			Description: "Rich chocolate cake with vanilla frosting, perfect for birthday celebrations",
			Keywords:    []string{"chocolate", "vanilla", "birthday", "celebration", "kids", "party"},
			Image:       "https://via.placeholder.com/400x300/8B4513/FFFFFF?text=Chocolate+Birthday",
		},
		{
			ID:          "birthday-2",
			Name:        "Rainbow Sprinkle Fantasy",
			Category:    domain.CategoryBirthday,
			Price:       55,
			Description: "Colorful vanilla cake with rainbow sprinkles and buttercream frosting",
			Keywords:    []string{"rainbow", "sprinkles", "vanilla", "colorful", "kids", "fun", "birthday"},
			Image:       "https://via.placeholder.com/400x300/FF69B4/FFFFFF?text=Rainbow+Cake",
		},
		{
			ID:          "birthday-3",
			Name:        "Strawberry Dream Cake",
			Category:    domain.CategoryBirthday,
			Price:       60,
			Description: "Fresh strawberry cake with cream cheese frosting and berry topping",
			Keywords:    []string{"strawberry", "fresh", "cream cheese", "berries", "fruit", "birthday"},
			Image:       "https://via.placeholder.com/400x300/FFB6C1/FFFFFF?text=Strawberry+Dream",
		},
		{
			ID:          "birthday-4",
			Name:        "Funfetti Celebration",
			Category:    domain.CategoryBirthday,
			Price:       65,
			Description: "Classic funfetti cake with colorful confetti and vanilla buttercream",
			Keywords:    []string{"funfetti", "confetti", "celebration", "vanilla", "colorful", "birthday"},
			Image:       "https://via.placeholder.com/400x300/FFFFE0/8B4513?text=Funfetti+Fun",
		},
		{
			ID:          "birthday-5",
			Name:        "Caramel Surprise Cake",
			Category:    domain.CategoryBirthday,
			Price:       70,
			Description: "Moist caramel cake with salted caramel drizzle and pecans",
			Keywords:    []string{"caramel", "salted", "pecans", "surprise", "sweet", "birthday"},
			Image:       "https://via.placeholder.com/400x300/DEB887/FFFFFF?text=Caramel+Surprise",
		},
		{
			ID:          "birthday-6",
			Name:        "Red Velvet Classic",
			Category:    domain.CategoryBirthday,
			Price:       75,
			Description: "Traditional red velvet cake with cream cheese frosting and elegant decoration",
			Keywords:    []string{"red velvet", "classic", "cream cheese", "elegant", "traditional", "birthday"},
			Image:       "https://via.placeholder.com/400x300/DC143C/FFFFFF?text=Red+Velvet",
		},
		{
			ID:          "wedding-1",
			Name:        "Elegant Wedding Tower",
			Category:    domain.CategoryWedding,
			Price:       200,
			Description: "Three-tier elegant wedding cake with white fondant and pearl decorations",
			Keywords:    []string{"wedding", "elegant", "three-tier", "fondant", "pearl", "white", "bridal"},
			Image:       "https://via.placeholder.com/400x300/FFF8DC/8B4513?text=Elegant+Wedding",
		},
		{
			ID:          "wedding-2",
			Name:        "Royal Rose Garden",
			Category:    domain.CategoryWedding,
			Price:       350,
			Description: "Luxury four-tier cake with handcrafted sugar roses and gold accents",
			Keywords:    []string{"royal", "roses", "luxury", "four-tier", "sugar flowers", "gold", "wedding"},
			Image:       "https://via.placeholder.com/400x300/F0E68C/8B4513?text=Royal+Rose",
		},
		{
			ID:          "wedding-3",
			Name:        "Classic White Dream",
			Category:    domain.CategoryWedding,
			Price:       275,
			Description: "Traditional white wedding cake with intricate lace piping and flowers",
			Keywords:    []string{"classic", "white", "traditional", "lace", "piping", "flowers", "wedding"},
			Image:       "https://via.placeholder.com/400x300/FFFAF0/8B4513?text=White+Dream",
		},
		{
			ID:          "wedding-4",
			Name:        "Vintage Romance",
			Category:    domain.CategoryWedding,
			Price:       300,
			Description: "Romantic vintage-style cake with cascading buttercream flowers",
			Keywords:    []string{"vintage", "romance", "buttercream", "cascading", "flowers", "romantic", "wedding"},
			Image:       "https://via.placeholder.com/400x300/F5F5DC/8B4513?text=Vintage+Romance",
		},
		{
			ID:          "wedding-5",
			Name:        "Modern Minimalist",
			Category:    domain.CategoryWedding,
			Price:       280,
			Description: "Contemporary clean-line design with geometric patterns and gold leaf",
			Keywords:    []string{"modern", "minimalist", "contemporary", "geometric", "gold leaf", "clean", "wedding"},
			Image:       "https://via.placeholder.com/400x300/F8F8FF/8B4513?text=Modern+Minimal",
		},
		{
			ID:          "wedding-6",
			Name:        "Floral Paradise",
			Category:    domain.CategoryWedding,
			Price:       320,
			Description: "Garden-inspired cake with fresh flowers and natural decoration elements",
			Keywords:    []string{"floral", "paradise", "fresh flowers", "garden", "natural", "organic", "wedding"},
			Image:       "https://via.placeholder.com/400x300/F0FFF0/8B4513?text=Floral+Paradise",
		},
		{
			ID:          "event-1",
			Name:        "Corporate Celebration",
			Category:    domain.CategoryEvent,
			Price:       120,
			Description: "Professional sheet cake perfect for office parties and corporate events",
			Keywords:    []string{"corporate", "office", "professional", "sheet cake", "business", "celebration", "event"},
			Image:       "https://via.placeholder.com/400x300/4682B4/FFFFFF?text=Corporate+Cake",
		},
		{
			ID:          "event-2",
			Name:        "Graduation Success",
			Category:    domain.CategoryEvent,
			Price:       100,
			Description: "Congratulatory cake for graduation ceremonies with cap and diploma design",
			Keywords:    []string{"graduation", "success", "diploma", "cap", "congratulations", "achievement", "event"},
			Image:       "https://via.placeholder.com/400x300/32CD32/FFFFFF?text=Graduation+Success",
		},
		{
			ID:          "event-3",
			Name:        "Anniversary Bliss",
			Category:    domain.CategoryEvent,
			Price:       85,
			Description: "Romantic anniversary cake with heart decorations and elegant script",
			Keywords:    []string{"anniversary", "romantic", "hearts", "love", "celebration", "elegant", "event"},
			Image:       "https://via.placeholder.com/400x300/FF1493/FFFFFF?text=Anniversary+Bliss",
		},
		{
			ID:          "event-4",
			Name:        "Baby Shower Joy",
			Category:    domain.CategoryEvent,
			Price:       110,
			Description: "Adorable baby shower cake with pastel colors and baby-themed decorations",
			Keywords:    []string{"baby shower", "pastel", "adorable", "baby", "cute", "celebration", "event"},
			Image:       "https://via.placeholder.com/400x300/FFB6C1/FFFFFF?text=Baby+Shower",
		},
		{
			ID:          "event-5",
			Name:        "Holiday Festival",
			Category:    domain.CategoryEvent,
			Price:       90,
			Description: "Seasonal holiday cake with festive decorations and warm spices",
			Keywords:    []string{"holiday", "festival", "seasonal", "festive", "spices", "celebration", "event"},
			Image:       "https://via.placeholder.com/400x300/228B22/FFFFFF?text=Holiday+Festival",
		},
		{
			ID:          "event-6",
			Name:        "Sports Victory",
			Category:    domain.CategoryEvent,
			Price:       105,
			Description: "Championship celebration cake with sports themes and team colors",
			Keywords:    []string{"sports", "victory", "championship", "team", "celebration", "achievement", "event"},
			Image:       "https://via.placeholder.com/400x300/FF4500/FFFFFF?text=Sports+Victory",
		},
		{
			ID:          "custom-1",
			Name:        "Personalized Theme Cake",
			Category:    domain.CategoryCustom,
			Price:       200,
			Description: "Fully customized cake designed according to your specific theme and requirements",
			Keywords:    []string{"custom", "personalized", "theme", "unique", "bespoke", "special", "design"},
			Image:       "https://via.placeholder.com/400x300/9370DB/FFFFFF?text=Custom+Theme",
		},
		{
			ID:          "custom-2",
			Name:        "Character Fantasy Cake",
			Category:    domain.CategoryCustom,
			Price:       160,
			Description: "Custom cake featuring your favorite characters from movies, cartoons, or books",
			Keywords:    []string{"character", "fantasy", "movies", "cartoons", "books", "custom", "kids"},
			Image:       "https://via.placeholder.com/400x300/FF6347/FFFFFF?text=Character+Fantasy",
		},
		{
			ID:          "custom-3",
			Name:        "Hobby & Interest Cake",
			Category:    domain.CategoryCustom,
			Price:       130,
			Description: "Personalized cake reflecting your hobbies, interests, or profession",
			Keywords:    []string{"hobby", "interest", "profession", "personalized", "unique", "custom", "special"},
			Image:       "https://via.placeholder.com/400x300/20B2AA/FFFFFF?text=Hobby+Cake",
		},
		{
			ID:          "custom-4",
			Name:        "Photo Print Cake",
			Category:    domain.CategoryCustom,
			Price:       180,
			Description: "Custom cake with edible photo printing of your memorable moments",
			Keywords:    []string{"photo", "print", "edible", "memories", "pictures", "custom", "special"},
			Image:       "https://via.placeholder.com/400x300/DA70D6/FFFFFF?text=Photo+Print",
		},
		{
			ID:          "custom-5",
			Name:        "Architectural Wonder",
			Category:    domain.CategoryCustom,
			Price:       150,
			Description: "Custom cake designed as buildings, landmarks, or architectural structures",
			Keywords:    []string{"architectural", "buildings", "landmarks", "structures", "custom", "unique", "design"},
			Image:       "https://via.placeholder.com/400x300/B8860B/FFFFFF?text=Architecture+Cake",
		},
		{
			ID:          "custom-6",
			Name:        "Artistic Masterpiece",
			Category:    domain.CategoryCustom,
			Price:       140,
			Description: "Custom artistic cake with hand-painted designs and creative elements",
			Keywords:    []string{"artistic", "masterpiece", "hand-painted", "creative", "art", "custom", "unique"},
			Image:       "https://via.placeholder.com/400x300/4169E1/FFFFFF?text=Artistic+Cake",
		},
	}
}
