package component

// Card — карточка семени в банке семян.
type Card struct {
	SeedID      string
	Price       int
	Purchasable bool
	Selected    bool
}
