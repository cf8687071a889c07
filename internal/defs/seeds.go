// internal/defs/seeds.go
package defs

// SeedDefinition describes one purchasable card of the seed bank.
type SeedDefinition struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Image string `json:"image"` // логическое имя картинки в каталоге ассетов
}

// DefaultSeeds is the stock seed bank, in display order.
var DefaultSeeds = []SeedDefinition{
	{ID: "SUNFLOWER", Name: "SunFlowerSeed", Price: 50, Image: "seeds/SunFlowerSeed"},
	{ID: "WALLNUT", Name: "WallNutSeed", Price: 50, Image: "seeds/WallNutSeed"},
	{ID: "PEASHOOTER", Name: "PeaShooterSeed", Price: 100, Image: "seeds/PeaShooterSeed"},
	{ID: "ICEPEA", Name: "IcePeaSeed", Price: 175, Image: "seeds/IcePeaSeed"},
}
