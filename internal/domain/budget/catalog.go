package budget

type Tier struct {
	Key          string  `json:"key"`
	Name         string  `json:"name"`
	JapaneseName string  `json:"japanese_name"`
	Price        float64 `json:"price"`
}

type CategorySpec struct {
	Category Category `json:"category"`
	Scaling  Scaling  `json:"scaling"`
	Default  string   `json:"default"`
	Tiers    []Tier   `json:"tiers"`
}

func (c CategorySpec) price(key string) (float64, bool) {
	if key == "" {
		return 0, true
	}
	for _, tier := range c.Tiers {
		if tier.Key == key {
			return tier.Price, true
		}
	}
	return 0, false
}

// Tiers are listed cheapest first.
var catalog = []CategorySpec{
	{
		Category: CategoryFlight,
		Scaling:  ScalingFlat,
		Default:  "economy",
		Tiers: []Tier{
			{Key: "economy", Name: "Chūkansō", JapaneseName: "中間層", Price: 1100},
			{Key: "business", Name: "Fuyūsō", JapaneseName: "富裕層", Price: 4500},
		},
	},
	{
		Category: CategoryHotels,
		Scaling:  ScalingPerNight,
		Default:  "budget",
		Tiers: []Tier{
			{Key: "budget", Name: "Ronin", JapaneseName: "浪人", Price: 80},
			{Key: "mid", Name: "Daimyo", JapaneseName: "大名", Price: 160},
			{Key: "luxury", Name: "Shogun", JapaneseName: "将軍", Price: 400},
		},
	},
	{
		Category: CategoryFood,
		Scaling:  ScalingPerDay,
		Default:  "budget",
		Tiers: []Tier{
			{Key: "budget", Name: "Aikido", JapaneseName: "合気道", Price: 40},
			{Key: "mid", Name: "Judo", JapaneseName: "柔道", Price: 80},
			{Key: "premium", Name: "Sumo", JapaneseName: "相撲", Price: 120},
		},
	},
	{
		Category: CategoryActivities,
		Scaling:  ScalingPerDay,
		Default:  "basic",
		Tiers: []Tier{
			{Key: "basic", Name: "Genin", JapaneseName: "下忍", Price: 20},
			{Key: "moderate", Name: "Chunin", JapaneseName: "中忍", Price: 60},
			{Key: "premium", Name: "Jonin", JapaneseName: "上忍", Price: 100},
		},
	},
	{
		Category: CategoryShopping,
		Scaling:  ScalingFlat,
		Default:  "minimal",
		Tiers: []Tier{
			{Key: "minimal", Name: "Gachapon", JapaneseName: "ガチャポン", Price: 100},
			{Key: "moderate", Name: "Shotengai", JapaneseName: "商店街", Price: 350},
			{Key: "splurge", Name: "Ginza", JapaneseName: "銀座", Price: 1000},
		},
	},
}

func Catalog() []CategorySpec {
	result := make([]CategorySpec, 0, len(catalog))
	for _, entry := range catalog {
		copied := entry
		copied.Tiers = append([]Tier(nil), entry.Tiers...)
		result = append(result, copied)
	}
	return result
}

func Categories() []Category {
	result := make([]Category, 0, len(catalog))
	for _, entry := range catalog {
		result = append(result, entry.Category)
	}
	return result
}

func DefaultTiers() Tiers {
	return Tiers{}.WithDefaults()
}

// Price is the unit price of a tier; ok is false for unknown keys.
func Price(category Category, key string) (float64, bool) {
	for _, entry := range catalog {
		if entry.Category == category {
			return entry.price(key)
		}
	}
	return 0, false
}
