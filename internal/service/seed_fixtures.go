package service

import "github.com/ignatzorin/cookfolio-backend/internal/models"

// seedPortfolios содержит стартовый каталог портфолио.
var seedPortfolios = []models.NewPortfolio{
	{
		Title:         "Artisan Sourdough Journey",
		Description:   "From starter to perfect crust - a 6-month exploration of traditional bread making techniques.",
		Category:      "Baking",
		Cuisine:       models.StringPtr("European"),
		SkillLevel:    "Intermediate",
		CookName:      "Sarah Chen",
		CookTitle:     "Home Baker",
		CookAvatarURL: "https://images.unsplash.com/photo-1607631568010-0666f65db3b7?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1509440159596-0249088772ff?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"sourdough", "fermentation", "traditional", "artisan"},
		Techniques:    []string{"Autolyse", "Bulk fermentation", "Shaping", "Scoring"},
		Ingredients:   []string{"Bread flour", "Whole wheat flour", "Water", "Salt", "Sourdough starter"},
		TimeRequired:  models.StringPtr("3-5 days"),
		Difficulty:    models.StringPtr("Medium"),
		Story:         models.StringPtr("My journey into sourdough began during lockdown when I wanted to master the ancient art of bread making. Through countless experiments with hydration levels, fermentation times, and shaping techniques, I've developed a method that consistently produces bakery-quality loaves at home."),
	},
	{
		Title:         "Nonna's Pasta Secrets",
		Description:   "Traditional Italian pasta recipes passed down through generations, perfected in my modern kitchen.",
		Category:      "Italian",
		Cuisine:       models.StringPtr("Italian"),
		SkillLevel:    "Beginner",
		CookName:      "Marco Rossi",
		CookTitle:     "Heritage Cook",
		CookAvatarURL: "https://images.unsplash.com/photo-1582750433449-648ed127bb54?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1621996346565-e3dbc353d2e5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"pasta", "italian", "traditional", "family-recipes"},
		Techniques:    []string{"Hand-rolling", "Egg pasta", "Sauce pairing", "Fresh herbs"},
		Ingredients:   []string{"00 flour", "Eggs", "Olive oil", "Parmesan", "Fresh basil"},
		TimeRequired:  models.StringPtr("2-3 hours"),
		Difficulty:    models.StringPtr("Easy"),
		Story:         models.StringPtr("These recipes come from my grandmother who taught me that pasta making is not just about technique, but about love and tradition. Each shape tells a story, each sauce has its perfect partner."),
	},
	{
		Title:         "French Pastry Mastery",
		Description:   "Mastering the art of French pastry from basic techniques to complex multi-layered desserts.",
		Category:      "Pastry",
		Cuisine:       models.StringPtr("French"),
		SkillLevel:    "Advanced",
		CookName:      "Emma Laurent",
		CookTitle:     "Pastry Enthusiast",
		CookAvatarURL: "https://images.unsplash.com/photo-1664913665254-87fd1fa7a7d7?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1519915028121-7d3463d20b13?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"pastry", "french", "desserts", "precision"},
		Techniques:    []string{"Lamination", "Choux pastry", "Tempering chocolate", "Sugar work"},
		Ingredients:   []string{"Butter", "Flour", "Eggs", "Sugar", "Vanilla", "Chocolate"},
		TimeRequired:  models.StringPtr("4-8 hours"),
		Difficulty:    models.StringPtr("Hard"),
		Story:         models.StringPtr("French pastry demands precision and patience. Every fold, every temperature matters. Through systematic practice and understanding the science behind each technique, I've learned to create desserts that rival those from Parisian patisseries."),
	},
	{
		Title:         "Wok Mastery Journey",
		Description:   "Exploring the art of wok cooking and creating modern fusion dishes with traditional techniques.",
		Category:      "Asian Fusion",
		Cuisine:       models.StringPtr("Asian"),
		SkillLevel:    "Intermediate",
		CookName:      "David Kim",
		CookTitle:     "Fusion Chef",
		CookAvatarURL: "https://images.unsplash.com/photo-1651684215020-f7a5b6610f23?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1617093727343-374698b1b08d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"wok", "stir-fry", "fusion", "high-heat"},
		Techniques:    []string{"Wok hei", "Velvet chicken", "Flash cooking", "Sauce building"},
		Ingredients:   []string{"Soy sauce", "Garlic", "Ginger", "Scallions", "Sesame oil"},
		TimeRequired:  models.StringPtr("30-45 minutes"),
		Difficulty:    models.StringPtr("Medium"),
		Story:         models.StringPtr("The wok is more than a cooking vessel - it's a tool for creating 'wok hei', that elusive breath of the wok that gives stir-fries their distinctive flavor. Learning to control the fierce heat and timing has opened up a world of quick, flavorful cooking."),
	},
	{
		Title:         "Mediterranean Wellness",
		Description:   "Healthy, flavorful Mediterranean recipes that bring the taste of the coast to your kitchen.",
		Category:      "Mediterranean",
		Cuisine:       models.StringPtr("Mediterranean"),
		SkillLevel:    "Beginner",
		CookName:      "Sofia Greco",
		CookTitle:     "Wellness Cook",
		CookAvatarURL: "https://images.unsplash.com/photo-1609466845026-1532d0e6b8a6?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1594909122845-11baa439b7bf?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"mediterranean", "healthy", "olive-oil", "fresh"},
		Techniques:    []string{"Grilling", "Marinating", "Cold preparation", "Herb combinations"},
		Ingredients:   []string{"Olive oil", "Tomatoes", "Olives", "Feta", "Fresh herbs"},
		TimeRequired:  models.StringPtr("30-60 minutes"),
		Difficulty:    models.StringPtr("Easy"),
		Story:         models.StringPtr("The Mediterranean diet isn't just about health - it's about celebrating fresh, seasonal ingredients with simple preparations that let their natural flavors shine. These recipes connect us to generations of coastal cooking wisdom."),
	},
	{
		Title:         "Science Meets Flavor",
		Description:   "Experimental cooking techniques that transform ordinary ingredients into extraordinary experiences.",
		Category:      "Molecular",
		Cuisine:       models.StringPtr("Modern"),
		SkillLevel:    "Expert",
		CookName:      "Alex Rivera",
		CookTitle:     "Food Scientist",
		CookAvatarURL: "https://images.unsplash.com/photo-1590859808308-3d2d9c515b1a?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1582750433449-648ed127bb54?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"molecular", "science", "innovation", "technique"},
		Techniques:    []string{"Spherification", "Gelification", "Foam creation", "Temperature contrast"},
		Ingredients:   []string{"Agar", "Sodium alginate", "Liquid nitrogen", "Lecithin"},
		TimeRequired:  models.StringPtr("2-4 hours"),
		Difficulty:    models.StringPtr("Expert"),
		Story:         models.StringPtr("Molecular gastronomy isn't about replacing traditional cooking - it's about understanding the science behind flavor and texture to create new experiences. Each technique opens up possibilities for surprising and delighting diners."),
	},
	{
		Title:        "Texas BBQ Pit Master",
		Description:  "Low and slow barbecue techniques learned from competition pitmasters across the American South.",
		Category:     "BBQ",
		Cuisine:      models.StringPtr("American"),
		SkillLevel:   "Advanced",
		CookName:     "Jake Thompson",
		CookTitle:    "Backyard Pitmaster",
		ImageURL:     "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:         []string{"barbecue", "smoking", "texas", "competition"},
		Techniques:   []string{"Wood smoking", "Dry rubs", "Low temperature cooking", "Bark formation"},
		Ingredients:  []string{"Brisket", "Hickory wood", "Brown sugar", "Paprika", "Coffee"},
		TimeRequired: models.StringPtr("12-16 hours"),
		Difficulty:   models.StringPtr("Hard"),
		Story:        models.StringPtr("What started as weekend grilling turned into an obsession with authentic Texas barbecue. After traveling across Texas to learn from pit masters, I've brought championship-level techniques to my backyard smoker."),
	},
	{
		Title:        "Spice Route Adventures",
		Description:  "Authentic Indian curry techniques and spice blending mastered through family traditions.",
		Category:     "Curry",
		Cuisine:      models.StringPtr("Indian"),
		SkillLevel:   "Intermediate",
		CookName:     "Priya Sharma",
		CookTitle:    "Spice Master",
		ImageURL:     "https://images.unsplash.com/photo-1565557623262-b51c2513a641?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:         []string{"curry", "spices", "indian", "authentic"},
		Techniques:   []string{"Tempering", "Spice grinding", "Layered cooking", "Tadka"},
		Ingredients:  []string{"Turmeric", "Cumin", "Coriander", "Garam masala", "Fresh ginger"},
		TimeRequired: models.StringPtr("2-4 hours"),
		Difficulty:   models.StringPtr("Medium"),
		Story:        models.StringPtr("Growing up watching my mother blend spices by hand taught me that curry is an art form. Each region has its secrets, and I've spent years documenting family recipes and regional variations."),
	},
	{
		Title:        "Ramen Lab Experiments",
		Description:  "Creating authentic tonkotsu and innovative fusion ramen broths through scientific experimentation.",
		Category:     "Ramen",
		Cuisine:      models.StringPtr("Japanese"),
		SkillLevel:   "Advanced",
		CookName:     "Takeshi Nakamura",
		CookTitle:    "Ramen Scientist",
		ImageURL:     "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:         []string{"ramen", "broth", "japanese", "noodles"},
		Techniques:   []string{"Bone cooking", "Emulsification", "Noodle making", "Tare balancing"},
		Ingredients:  []string{"Pork bones", "Kombu", "Miso", "Sake", "Fresh noodles"},
		TimeRequired: models.StringPtr("24-48 hours"),
		Difficulty:   models.StringPtr("Hard"),
		Story:        models.StringPtr("True ramen is alchemy - transforming simple ingredients into liquid gold. My home lab experiments with temperature, timing, and technique have unlocked the secrets of restaurant-quality bowls."),
	},
	{
		Title:        "Nordic Foraging Kitchen",
		Description:  "Seasonal cooking inspired by Scandinavian foraging traditions and preservation techniques.",
		Category:     "Foraging",
		Cuisine:      models.StringPtr("Nordic"),
		SkillLevel:   "Intermediate",
		CookName:     "Astrid Larsen",
		CookTitle:    "Foraging Expert",
		ImageURL:     "https://images.unsplash.com/photo-1515443961218-a51367888e4b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:         []string{"foraging", "preservation", "nordic", "seasonal"},
		Techniques:   []string{"Fermentation", "Smoking", "Pickling", "Wild identification"},
		Ingredients:  []string{"Wild mushrooms", "Sea buckthorn", "Juniper", "Wild herbs"},
		TimeRequired: models.StringPtr("3-6 hours"),
		Difficulty:   models.StringPtr("Medium"),
		Story:        models.StringPtr("Learning to forage has connected me to the land and seasons in ways I never imagined. Nordic preservation techniques turn wild ingredients into pantry treasures that last through winter."),
	},
	{
		Title:        "Fermentation Station",
		Description:  "Mastering the art of fermentation from kimchi to kombucha, exploring cultures worldwide.",
		Category:     "Fermentation",
		Cuisine:      models.StringPtr("Global"),
		SkillLevel:   "Intermediate",
		CookName:     "Luna Rodriguez",
		CookTitle:    "Fermentation Enthusiast",
		ImageURL:     "https://images.unsplash.com/photo-1609501676725-7186f73b2cc9?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:         []string{"fermentation", "probiotics", "preservation", "cultures"},
		Techniques:   []string{"Lacto-fermentation", "Wild fermentation", "Temperature control", "pH monitoring"},
		Ingredients:  []string{"Cabbage", "Salt", "SCOBY", "Various vegetables"},
		TimeRequired: models.StringPtr("1 week - 6 months"),
		Difficulty:   models.StringPtr("Medium"),
		Story:        models.StringPtr("Fermentation is ancient biotechnology at work in my kitchen. From Korean kimchi to German sauerkraut, I'm preserving flavors and creating living foods that nurture both body and soul."),
	},
	{
		Title:         "Plant-Based Revolution",
		Description:   "Innovative plant-based cooking that doesn't compromise on flavor or satisfaction.",
		Category:      "Plant-Based",
		Cuisine:       models.StringPtr("Global"),
		SkillLevel:    "Beginner",
		CookName:      "Maya Patel",
		CookTitle:     "Plant Pioneer",
		CookAvatarURL: "https://images.unsplash.com/photo-1621274790572-7c32596bc67f?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1566385101042-1a0aa0c1268c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"vegan", "plant-based", "sustainable", "innovative"},
		Techniques:    []string{"Protein building", "Umami development", "Texture creation", "Nutritional balancing"},
		Ingredients:   []string{"Jackfruit", "Nutritional yeast", "Cashews", "Mushrooms", "Lentils"},
		TimeRequired:  models.StringPtr("1-3 hours"),
		Difficulty:    models.StringPtr("Easy"),
		Story:         models.StringPtr("Plant-based cooking isn't about limitation - it's about discovery. Every vegetable, grain, and legume has untapped potential to create dishes that satisfy omnivores and vegans alike."),
	},
	{
		Title:         "Chocolate Artisan Journey",
		Description:   "Bean-to-bar chocolate making and creating artisanal confections at home.",
		Category:      "Chocolate",
		Cuisine:       models.StringPtr("Global"),
		SkillLevel:    "Expert",
		CookName:      "Gabriel Santos",
		CookTitle:     "Chocolate Craftsman",
		CookAvatarURL: "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1606890737304-57a1ca8a5b62?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"chocolate", "bean-to-bar", "artisan", "confection"},
		Techniques:    []string{"Roasting", "Winnowing", "Conching", "Tempering"},
		Ingredients:   []string{"Cacao beans", "Coconut sugar", "Vanilla beans", "Sea salt"},
		TimeRequired:  models.StringPtr("3-7 days"),
		Difficulty:    models.StringPtr("Expert"),
		Story:         models.StringPtr("Making chocolate from bean to bar taught me that real chocolate is a reflection of terroir, technique, and time. Each origin tells its story through flavor, and I'm the translator."),
	},
	{
		Title:         "Middle Eastern Mezze",
		Description:   "Traditional and modern Middle Eastern small plates that bring people together.",
		Category:      "Mezze",
		Cuisine:       models.StringPtr("Middle Eastern"),
		SkillLevel:    "Intermediate",
		CookName:      "Layla Al-Rashid",
		CookTitle:     "Mezze Master",
		CookAvatarURL: "https://images.unsplash.com/photo-1595152772835-219674b2a8a6?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"mezze", "middle-eastern", "sharing", "traditional"},
		Techniques:    []string{"Smoking", "Grilling", "Pickling", "Spice blending"},
		Ingredients:   []string{"Tahini", "Pomegranate", "Za'atar", "Sumac", "Freekeh"},
		TimeRequired:  models.StringPtr("2-4 hours"),
		Difficulty:    models.StringPtr("Medium"),
		Story:         models.StringPtr("Mezze is about abundance and sharing - every dish tells a story of hospitality. My grandmother's recipes mixed with modern techniques create meals that bring families together around the table."),
	},
	{
		Title:         "Breakfast Around the World",
		Description:   "Exploring morning traditions from different cultures and perfecting the first meal of the day.",
		Category:      "Breakfast",
		Cuisine:       models.StringPtr("Global"),
		SkillLevel:    "Beginner",
		CookName:      "Oliver Bennett",
		CookTitle:     "Morning Food Explorer",
		CookAvatarURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1533089860892-a7c6f0a88666?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"breakfast", "global", "morning", "traditions"},
		Techniques:    []string{"Poaching", "Steaming", "Griddling", "Fresh preparation"},
		Ingredients:   []string{"Eggs", "Rice", "Beans", "Fresh fruits", "Various grains"},
		TimeRequired:  models.StringPtr("30-90 minutes"),
		Difficulty:    models.StringPtr("Easy"),
		Story:         models.StringPtr("Breakfast sets the tone for the entire day. From Japanese tamago to Mexican huevos rancheros, I'm documenting how different cultures fuel their mornings with love and flavor."),
	},
	{
		Title:         "Cocktail Culinary Crossover",
		Description:   "Creating food-inspired cocktails and cocktail-inspired dishes that blur the lines.",
		Category:      "Cocktails",
		Cuisine:       models.StringPtr("Modern"),
		SkillLevel:    "Advanced",
		CookName:      "Carmen Cruz",
		CookTitle:     "Liquid Chef",
		CookAvatarURL: "https://images.unsplash.com/photo-1595273670150-bd0c3c392e18?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1564576775949-2ac164c96e12?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"cocktails", "molecular", "fusion", "innovative"},
		Techniques:    []string{"Infusion", "Clarification", "Spherification", "Aromatics"},
		Ingredients:   []string{"Premium spirits", "Fresh herbs", "Exotic fruits", "Bitters"},
		TimeRequired:  models.StringPtr("2-5 hours"),
		Difficulty:    models.StringPtr("Hard"),
		Story:         models.StringPtr("The line between kitchen and bar is disappearing. Using culinary techniques in cocktails and cocktail elements in food, I'm creating experiences that surprise and delight all the senses."),
	},
	{
		Title:         "Artisan Ice Cream Laboratory",
		Description:   "Small-batch ice cream with innovative flavors and textures using liquid nitrogen.",
		Category:      "Ice Cream",
		Cuisine:       models.StringPtr("Modern"),
		SkillLevel:    "Advanced",
		CookName:      "Isabella Zhang",
		CookTitle:     "Frozen Dessert Scientist",
		CookAvatarURL: "https://images.unsplash.com/photo-1600275669439-14903ad15de7?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1567206563064-6f60f40a2b57?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"ice-cream", "liquid-nitrogen", "innovative", "texture"},
		Techniques:    []string{"Liquid nitrogen freezing", "Emulsification", "Flavor balancing", "Texture engineering"},
		Ingredients:   []string{"Heavy cream", "Egg yolks", "Exotic fruits", "Liquid nitrogen"},
		TimeRequired:  models.StringPtr("3-6 hours"),
		Difficulty:    models.StringPtr("Hard"),
		Story:         models.StringPtr("Ice cream is frozen chemistry. Using liquid nitrogen and understanding crystallization, I create textures and temperatures impossible with traditional methods. Every scoop is a moment of pure joy."),
	},
	{
		Title:         "Street Food World Tour",
		Description:   "Recreating authentic street food from around the globe in my home kitchen.",
		Category:      "Street Food",
		Cuisine:       models.StringPtr("Global"),
		SkillLevel:    "Intermediate",
		CookName:      "Raj Patel",
		CookTitle:     "Street Food Specialist",
		CookAvatarURL: "https://images.unsplash.com/photo-1560250097-0b93528c311a?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"street-food", "authentic", "travel", "cultural"},
		Techniques:    []string{"High-heat cooking", "Quick assembly", "Sauce mastery", "Portable presentation"},
		Ingredients:   []string{"Various proteins", "Fresh vegetables", "Street spices", "Handheld bases"},
		TimeRequired:  models.StringPtr("30-120 minutes"),
		Difficulty:    models.StringPtr("Medium"),
		Story:         models.StringPtr("Street food captures the soul of a culture in every bite. From Bangkok's pad thai to Mexico City's tacos, I'm bringing the energy and flavors of global street markets to my kitchen."),
	},
	{
		Title:         "Cheese Making Chronicles",
		Description:   "From simple fresh cheeses to aged varieties, exploring the ancient art of cheese making.",
		Category:      "Cheese",
		Cuisine:       models.StringPtr("European"),
		SkillLevel:    "Advanced",
		CookName:      "Henri Dubois",
		CookTitle:     "Home Cheese Maker",
		CookAvatarURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1452195100486-9cc805987862?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"cheese", "fermentation", "aging", "traditional"},
		Techniques:    []string{"Culturing", "Pressing", "Aging", "Wax coating"},
		Ingredients:   []string{"Fresh milk", "Rennet", "Cheese cultures", "Salt"},
		TimeRequired:  models.StringPtr("2 days - 12 months"),
		Difficulty:    models.StringPtr("Hard"),
		Story:         models.StringPtr("Cheese making connects us to thousands of years of food preservation. What begins as simple milk becomes complex flavors through the magic of time, culture, and careful attention."),
	},
	{
		Title:         "Ancient Grains Renaissance",
		Description:   "Rediscovering forgotten grains and creating modern dishes with ancient nutrition.",
		Category:      "Grains",
		Cuisine:       models.StringPtr("Ancient"),
		SkillLevel:    "Beginner",
		CookName:      "Dr. Sarah Wilson",
		CookTitle:     "Grain Researcher",
		CookAvatarURL: "https://images.unsplash.com/photo-1494790108755-2616b612b786?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1533777857889-4be7c70b33f7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"ancient-grains", "nutrition", "heritage", "sustainable"},
		Techniques:    []string{"Sprouting", "Slow cooking", "Texture building", "Flavor pairing"},
		Ingredients:   []string{"Einkorn", "Emmer", "Spelt", "Teff", "Amaranth"},
		TimeRequired:  models.StringPtr("1-4 hours"),
		Difficulty:    models.StringPtr("Easy"),
		Story:         models.StringPtr("Ancient grains hold the genetic diversity our ancestors knew. Each variety tells a story of adaptation and survival, while providing modern kitchens with incredible flavors and nutrition."),
	},
	{
		Title:         "Authentic Butter Chicken Mastery",
		Description:   "Perfect the restaurant-style butter chicken with rich tomato gravy and tender marinated chicken.",
		Category:      "Indian Curry",
		Cuisine:       models.StringPtr("Indian"),
		SkillLevel:    "Intermediate",
		CookName:      "Anita Kapoor",
		CookTitle:     "Indian Cuisine Expert",
		CookAvatarURL: "https://images.unsplash.com/photo-1664913665254-87fd1fa7a7d7?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"butter-chicken", "curry", "indian", "restaurant-style"},
		Techniques:    []string{"Tandoori marination", "Tomato base preparation", "Cream balancing", "Spice tempering"},
		Ingredients:   []string{"Chicken", "Tomatoes", "Heavy cream", "Garam masala", "Fenugreek leaves"},
		TimeRequired:  models.StringPtr("3-4 hours"),
		Difficulty:    models.StringPtr("Medium"),
		Story:         models.StringPtr("Butter chicken represents the soul of Punjabi cuisine. After years of perfecting this dish, I've learned that the secret lies in the perfect balance of sweetness, richness, and aromatic spices that create that signature restaurant taste at home."),
	},
	{
		Title:         "Hyderabad Biryani Heritage",
		Description:   "Master the art of authentic Hyderabadi dum biryani with perfectly layered rice and aromatic spices.",
		Category:      "Biryani",
		Cuisine:       models.StringPtr("Indian"),
		SkillLevel:    "Advanced",
		CookName:      "Mohammed Ahmed",
		CookTitle:     "Biryani Specialist",
		CookAvatarURL: "https://images.unsplash.com/photo-1582750433449-648ed127bb54?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1563379091339-03246963d96c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"biryani", "hyderabadi", "dum-cooking", "royal-cuisine"},
		Techniques:    []string{"Dum cooking", "Rice layering", "Saffron infusion", "Meat marination"},
		Ingredients:   []string{"Basmati rice", "Mutton", "Saffron", "Whole spices", "Fried onions"},
		TimeRequired:  models.StringPtr("6-8 hours"),
		Difficulty:    models.StringPtr("Hard"),
		Story:         models.StringPtr("Hyderabadi biryani is a royal legacy passed down through generations. Each grain of rice tells a story of Nizami culture. The dum cooking technique, where the pot is sealed and slow-cooked, creates magic that no modern method can replicate."),
	},
	{
		Title:         "South Indian Dosa Perfection",
		Description:   "From batter fermentation to crispy golden dosas - mastering the art of South Indian breakfast.",
		Category:      "South Indian",
		Cuisine:       models.StringPtr("Indian"),
		SkillLevel:    "Intermediate",
		CookName:      "Lakshmi Menon",
		CookTitle:     "South Indian Cook",
		CookAvatarURL: "https://images.unsplash.com/photo-1621274790572-7c32596bc67f?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1630383249896-424e482df921?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"dosa", "south-indian", "fermentation", "breakfast"},
		Techniques:    []string{"Batter fermentation", "Tawa handling", "Paper-thin spreading", "Sambhar preparation"},
		Ingredients:   []string{"Rice", "Urad dal", "Fenugreek seeds", "Curry leaves", "Coconut"},
		TimeRequired:  models.StringPtr("2 days (fermentation)"),
		Difficulty:    models.StringPtr("Medium"),
		Story:         models.StringPtr("Dosa making is an art that connects us to centuries of South Indian tradition. The perfect fermentation, the rhythm of spreading batter, and the satisfaction of that first crispy bite - it's a meditation that feeds both body and soul."),
	},
	{
		Title:         "Punjabi Chole Bhature Feast",
		Description:   "Authentic Punjabi chole with fluffy bhature - a street food favorite made restaurant-perfect.",
		Category:      "Punjabi",
		Cuisine:       models.StringPtr("Indian"),
		SkillLevel:    "Intermediate",
		CookName:      "Harpreet Singh",
		CookTitle:     "Punjabi Food Master",
		CookAvatarURL: "https://images.unsplash.com/photo-1651684215020-f7a5b6610f23?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1601050690597-df0568f70950?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"chole-bhature", "punjabi", "street-food", "chickpeas"},
		Techniques:    []string{"Chickpea cooking", "Bhature dough preparation", "Deep frying", "Spice balancing"},
		Ingredients:   []string{"Chickpeas", "All-purpose flour", "Yogurt", "Punjabi spices", "Ginger-garlic"},
		TimeRequired:  models.StringPtr("4-5 hours"),
		Difficulty:    models.StringPtr("Medium"),
		Story:         models.StringPtr("Chole Bhature is the heart of Punjabi hospitality. From the bustling streets of Amritsar to family kitchens, this combination represents celebration and abundance. Every bite should burst with bold flavors and love."),
	},
	{
		Title:         "Bengali Fish Curry Traditions",
		Description:   "Delicate Bengali fish curry with mustard oil and traditional five-spice blend.",
		Category:      "Bengali",
		Cuisine:       models.StringPtr("Indian"),
		SkillLevel:    "Intermediate",
		CookName:      "Ruma Chakraborty",
		CookTitle:     "Bengali Cook",
		CookAvatarURL: "https://images.unsplash.com/photo-1609466845026-1532d0e6b8a6?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1631292784640-2b24be784d5d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"bengali", "fish-curry", "mustard-oil", "traditional"},
		Techniques:    []string{"Fish preparation", "Panch phoron tempering", "Mustard oil cooking", "Curry balancing"},
		Ingredients:   []string{"Rohu fish", "Mustard oil", "Panch phoron", "Turmeric", "Green chilies"},
		TimeRequired:  models.StringPtr("1-2 hours"),
		Difficulty:    models.StringPtr("Medium"),
		Story:         models.StringPtr("Bengali cuisine celebrates the bounty of rivers and seas. This fish curry, with its distinctive mustard oil aroma and subtle spicing, represents the essence of Bengali cooking - simple ingredients transformed through traditional techniques."),
	},
	{
		Title:         "Rajasthani Dal Baati Churma",
		Description:   "Royal Rajasthani comfort food - crispy baati with rich dal and sweet churma.",
		Category:      "Rajasthani",
		Cuisine:       models.StringPtr("Indian"),
		SkillLevel:    "Advanced",
		CookName:      "Shyam Raj",
		CookTitle:     "Rajasthani Heritage Cook",
		CookAvatarURL: "https://images.unsplash.com/photo-1590859808308-3d2d9c515b1a?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
		ImageURL:      "https://images.unsplash.com/photo-1606491956689-2ea866880c84?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Tags:          []string{"rajasthani", "dal-baati-churma", "desert-cuisine", "traditional"},
		Techniques:    []string{"Baati shaping", "Clay oven cooking", "Dal preparation", "Churma making"},
		Ingredients:   []string{"Whole wheat flour", "Mixed lentils", "Jaggery", "Ghee", "Desert spices"},
		TimeRequired:  models.StringPtr("4-6 hours"),
		Difficulty:    models.StringPtr("Hard"),
		Story:         models.StringPtr("Dal Baati Churma tells the story of Rajasthan's harsh desert life where every grain was precious. This hearty meal sustained travelers and warriors, combining protein, carbs, and sweets in perfect harmony."),
	},
}

// seedCaseStudies содержит стартовый набор статей.
var seedCaseStudies = []models.NewCaseStudy{
	{
		Title:            "Perfect Sourdough: A Scientific Approach",
		Description:      "Deep dive into the fermentation process, hydration ratios, and temperature control that creates the perfect sourdough.",
		Category:         "Baking Science",
		ReadTime:         "15 min read",
		ImageURL:         "https://images.unsplash.com/photo-1549931319-a545dcf3bc73?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Content:          "This comprehensive study examines the science behind sourdough fermentation, analyzing the complex interactions between wild yeast, lactobacilli, flour proteins, and environmental factors that contribute to perfect bread. Through controlled experiments varying hydration levels from 65% to 85%, we documented how water content affects crumb structure, crust development, and flavor complexity. Temperature monitoring revealed optimal fermentation occurs at 78-82°F, with significant flavor development differences observed across temperature ranges. Autolyse timing experiments demonstrated that 30-60 minutes produces optimal gluten development without overworking the dough. pH testing throughout the fermentation process showed correlation between acidity levels and final bread characteristics. The study includes detailed analysis of scoring techniques, oven spring optimization, and steam injection timing for crust development.",
		Methodology:      models.StringPtr("Controlled environment testing with consistent flour batches, digital scales, pH meters, and temperature logging. Each variable tested in triplicate with statistical analysis."),
		Results:          models.StringPtr("Optimal hydration at 75-78% for home bakers, fermentation temperature of 80°F, and 45-minute autolyse period produced consistently superior results."),
		Insights:         models.StringPtr("Understanding the science enables consistent results. Small changes in technique create significant improvements in final bread quality."),
		ExperimentsCount: models.Int64Ptr(12),
		Author:           "Dr. Sarah Chen & Baking Science Lab",
		PublishedAt:      models.StringPtr("2024-03-15"),
	},
	{
		Title:            "Hand-Rolled Pasta: Texture Analysis",
		Description:      "Comparing machine vs. hand-rolled pasta through texture, taste, and traditional technique preservation.",
		Category:         "Technique Study",
		ReadTime:         "12 min read",
		ImageURL:         "https://images.unsplash.com/photo-1551892374-ecf8754cf8b0?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		Content:          "This study examines the textural and flavor differences between hand-rolled and machine-made pasta through systematic testing of 8 traditional pasta shapes. Using texture analysis equipment, we measured firmness, elasticity, and surface roughness of pasta made with identical dough using different methods. Hand-rolled pasta consistently showed 15-20% greater surface area due to slight irregularities that improve sauce adhesion. Blind taste tests with 50 participants revealed significant preference for hand-rolled pasta texture and sauce integration. The study documents traditional techniques including proper dough consistency, resting periods, and rolling patterns. Microscopic analysis reveals how hand-rolling creates unique surface textures that commercial machines cannot replicate. Time efficiency analysis shows machine methods save 60% preparation time but sacrifice textural qualities valued in traditional Italian cooking.",
		Methodology:      models.StringPtr("Controlled pasta preparation using identical dough batches, texture analysis equipment, blind taste testing, and microscopic surface analysis."),
		Results:          models.StringPtr("Hand-rolled pasta superior in texture, sauce adhesion, and taste preference despite longer preparation time."),
		Insights:         models.StringPtr("Traditional techniques create irreplaceable textural qualities that modern equipment cannot fully replicate."),
		ExperimentsCount: models.Int64Ptr(8),
		Author:           "Marco Rossi & Culinary Heritage Institute",
		PublishedAt:      models.StringPtr("2024-02-28"),
	},
	{
		Title:            "Knife Skills: Efficiency vs. Precision",
		Description:      "How proper knife techniques impact cooking times, texture, and flavor development in home cooking.",
		Category:         "Fundamental Skills",
		ReadTime:         "10 min read",
		ImageURL:         "https://pixabay.com/get/ge0b5eb939e248147459733b0ad4447d6362f13cf1d45fffdf1553f4f6dfe238ce58ac165483e1f73f3f7a8e6375ff913691bb738dc4fe2f88b19f7678fd4aea9_1280.jpg",
		Content:          "This comprehensive analysis examines how knife skills affect cooking outcomes through timed cutting tests and flavor analysis. Professional and amateur cooks prepared identical ingredients using different cutting techniques while measuring speed, uniformity, and final dish quality. Results show that uniform cuts reduce cooking time by 25-30% and improve flavor distribution. The study documents proper grip techniques, cutting angles, and maintenance practices. Texture analysis reveals how cut size and shape affect ingredient cooking rates and flavor release. Time studies demonstrate that initial skill investment pays dividends in daily cooking efficiency. Safety analysis shows proper technique reduces injury risk by 80%. The research includes detailed analysis of how different cuts (julienne, brunoise, chiffonade) affect specific cooking applications and final presentation.",
		Methodology:      models.StringPtr("Timed cutting tests with multiple skill levels, texture analysis, safety incident tracking, and flavor development measurement."),
		Results:          models.StringPtr("Proper knife skills improve cooking efficiency by 30%, reduce injuries by 80%, and significantly enhance final dish quality."),
		Insights:         models.StringPtr("Fundamental knife skills are the foundation of efficient, safe, and flavorful home cooking."),
		ExperimentsCount: models.Int64Ptr(15),
		Author:           "Chef Training Institute",
		PublishedAt:      models.StringPtr("2024-01-20"),
	},
	{
		Title:            "Temperature Control in Home Cooking",
		Description:      "Comprehensive analysis of how precise temperature control transforms home cooking results.",
		Category:         "Cooking Science",
		ReadTime:         "18 min read",
		ImageURL:         "https://pixabay.com/get/gede91f3d4b308fe8c8a3a8f09e0b2d20bd25a5be36064d1f17da46d73437556214f4b89c45ff1e29edc1507ae1ffd714b28b102ebe4da6f32514cba1aa544475_1280.jpg",
		Content:          "This extensive study examines temperature control across multiple cooking methods including roasting, searing, braising, and baking. Using precision thermometers and data logging, we tracked temperature effects on protein denaturation, Maillard reactions, and moisture retention. Tests included comparing conventional vs. sous vide cooking, optimal searing temperatures, and oven accuracy variations. Results demonstrate that precise temperature control improves food safety, texture, and flavor development. The study reveals common home cooking temperature mistakes and provides correction strategies. Detailed analysis shows how temperature control affects different proteins, vegetables, and starches. Equipment testing compares thermometer accuracy and reveals significant variations in home oven temperatures. The research includes practical applications for home cooks including calibration techniques and temperature monitoring strategies.",
		Methodology:      models.StringPtr("Temperature logging across multiple cooking methods, protein analysis, equipment calibration testing, and comparative cooking trials."),
		Results:          models.StringPtr("Precise temperature control improves cooking outcomes by 40-60% across all tested methods and ingredients."),
		Insights:         models.StringPtr("Temperature is the most critical and controllable variable in cooking success."),
		ExperimentsCount: models.Int64Ptr(25),
		Author:           "Culinary Science Research Group",
		PublishedAt:      models.StringPtr("2024-04-10"),
	},
}
