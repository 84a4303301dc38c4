package catalog

// Default returns the built-in catalog of grade-school-themed
// hierarchies. Every categorization carries four levels so that any
// window of two to four layers can be cut from it.
func Default() *Catalog {
	c := New()

	c.Register(Categorization{
		Name:   "shopping",
		Levels: []string{"District", "Supermarket", "Product", "Ingredient"},
	})
	c.RegisterItems("District",
		[]string{"Riverside District", "Oakwood District", "Maple Hill District", "Sunnyvale District", "Brookfield District", "Lakeview District"},
	)
	c.RegisterItems("Supermarket",
		[]string{"FreshMart", "GreenGrocer", "ValueFoods", "CornerMarket", "DailyBasket", "HarvestHouse", "PennyPantry", "TownSquare Market"},
	)
	c.RegisterItems("Product",
		[]string{"Apple Pie", "Banana Bread", "Carrot Cake", "Pumpkin Soup"},
		[]string{"Orange Juice", "Grape Soda", "Lemonade"},
		[]string{"Cheese Sandwich", "Veggie Wrap", "Tuna Salad"},
	)
	c.RegisterItems("Ingredient",
		[]string{"Flour", "Sugar", "Butter", "Eggs", "Milk", "Salt", "Honey", "Cocoa", "Vanilla", "Cinnamon"},
	)

	c.Register(Categorization{
		Name:   "school",
		Levels: []string{"School District", "School", "Classroom", "Backpack"},
	})
	c.RegisterItems("School District",
		[]string{"North District", "South District", "East District", "West District", "Central District"},
	)
	c.RegisterItems("School",
		[]string{"Lincoln Elementary", "Riverside Primary", "Hillcrest Academy", "Meadowbrook School", "Pine Grove School", "Cedar Lane School"},
	)
	c.RegisterItems("Classroom",
		[]string{"Room 101", "Room 102", "Room 103", "Room 201", "Room 202", "Room 203", "Art Studio", "Science Lab"},
	)
	c.RegisterItems("Backpack",
		[]string{"Red Backpack", "Blue Backpack", "Green Backpack", "Yellow Backpack", "Purple Backpack", "Orange Backpack"},
	)

	c.Register(Categorization{
		Name:   "zoo",
		Levels: []string{"Zoo", "Enclosure", "Animal", "Toy"},
	})
	c.RegisterItems("Zoo",
		[]string{"City Zoo", "Safari Park", "Wildlife World", "Harbor Zoo", "Mountain Zoo"},
	)
	c.RegisterItems("Enclosure",
		[]string{"Savanna Habitat", "Rainforest Dome", "Arctic Exhibit", "Reptile House", "Aviary", "Aquarium Hall"},
	)
	c.RegisterItems("Animal",
		[]string{"Lion", "Elephant", "Giraffe", "Zebra"},
		[]string{"Penguin", "Seal", "Polar Bear"},
		[]string{"Parrot", "Flamingo", "Toucan"},
	)
	c.RegisterItems("Toy",
		[]string{"Rope Ball", "Rubber Ring", "Puzzle Feeder", "Hanging Tire", "Floating Log", "Scratching Post"},
	)

	return c
}
