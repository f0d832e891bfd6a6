package letterboard

// GrindSetting is one row of the Encore grind table.
type GrindSetting struct {
	GrindSize  string
	BrewMethod string
	Icon       string
}

// RecipeField is one labelled line of a recipe card.
type RecipeField struct {
	Label   string
	Value   string
	LinkURL string
}

// EncoreGrindSettings backs the encore notecard.
var EncoreGrindSettings = []GrindSetting{
	{GrindSize: "07", BrewMethod: "Espresso", Icon: "/espresso_machine.webp"},
	{GrindSize: "14", BrewMethod: "AeroPress", Icon: "/aeropress.webp"},
	{GrindSize: "26", BrewMethod: "V60", Icon: "/pourover.webp"},
	{GrindSize: "35", BrewMethod: "Cold Brew / French Press", Icon: "/french_press.webp"},
}

// V60Recipe backs the v60 notecard.
var V60Recipe = []RecipeField{
	{Label: "Ratio", Value: "1:15"},
	{Label: "Water", Value: "1000g filtered water"},
	{Label: "Coffee", Value: "66g @ 26 grind setting"},
	{Label: "Method", Value: "Tetsu Kasuya V60 Brewing Technique", LinkURL: "https://www.youtube.com/watch?v=wmCW8xSWGZY"},
}

// NotecardTitle returns the display title of a notecard.
func NotecardTitle(n NotecardType) string {
	switch n {
	case NotecardEncore:
		return "Encore Grind Settings"
	case NotecardV60:
		return "V60 Recipe"
	}
	return ""
}
