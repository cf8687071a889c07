package component

// Kind — тег варианта сущности. По нему выбирается набор поведений.
type Kind int

const (
	KindHazard Kind = iota
	KindCollectible
	KindDefense
	KindBackground
	KindCard
	KindTool
)

func (k Kind) String() string {
	switch k {
	case KindHazard:
		return "Hazard"
	case KindCollectible:
		return "Collectible"
	case KindDefense:
		return "Defense"
	case KindBackground:
		return "Background"
	case KindCard:
		return "Card"
	case KindTool:
		return "Tool"
	default:
		return "Unknown"
	}
}
