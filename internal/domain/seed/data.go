package seed

type RosterMember struct {
	Name     string
	Initials string
	Color    string
}

var DefaultRoster = []RosterMember{
	{Name: "Julian", Initials: "J", Color: "#ff5c8d"},
	{Name: "Dave", Initials: "D", Color: "#5ce1e6"},
	{Name: "Jason", Initials: "Js", Color: "#b06cff"},
	{Name: "Frank", Initials: "F", Color: "#ff9a5c"},
	{Name: "Cathy", Initials: "C", Color: "#ffd93d"},
	{Name: "Matylda", Initials: "M", Color: "#4ade80"},
	{Name: "Patryk", Initials: "P", Color: "#ff8fab"},
}

type cityData struct {
	Name         string
	JapaneseName string
	Description  string
	ImageURL     string
	Highlights   []string
}

type attractionData struct {
	Name         string
	City         string
	Description  string
	TimeEstimate string
}

var cities = []cityData{
	{
		Name:         "Tokyo",
		JapaneseName: "東京",
		Description:  "Japan's electric capital with world-class neighborhoods for food, fashion, nightlife, pop culture and modern design.",
		Highlights:   []string{"Shibuya", "Senso-ji", "Akihabara", "Shinjuku", "teamLab"},
	},
	{
		Name:         "Kyoto",
		JapaneseName: "京都",
		Description:  "Japan's cultural heart: temples, shrines, gardens and traditional neighborhoods with timeless atmosphere.",
		Highlights:   []string{"Fushimi Inari", "Golden Pavilion", "Arashiyama", "Gion", "Tea Ceremony"},
	},
	{
		Name:         "Osaka",
		JapaneseName: "大阪",
		Description:  "Japan's fun-loving food city with street eats, neon nights and big theme-park energy.",
		Highlights:   []string{"Dotonbori", "Kuromon Market", "Universal Studios", "Osaka Castle"},
	},
	{
		Name:         "Nara",
		JapaneseName: "奈良",
		Description:  "A compact, walkable temple city famous for deer, grand religious sites and relaxed green spaces.",
		Highlights:   []string{"Deer Park", "Todaiji Buddha", "Kasuga Shrine"},
	},
	{
		Name:         "Miyajima",
		JapaneseName: "宮島",
		Description:  "A sacred island escape with shrine scenery, forested hikes and postcard views across the bay.",
		ImageURL:     "https://images.unsplash.com/photo-1505069190533-da1c9af13f7c?w=800&q=80",
		Highlights:   []string{"Itsukushima Shrine", "Mount Misen", "Floating Torii"},
	},
	{
		Name:         "Hakone",
		JapaneseName: "箱根",
		Description:  "Japan's most iconic landscape zone: Fuji views, volcanic terrain, lake cruises and onsen relaxation.",
		ImageURL:     "https://images.unsplash.com/photo-1578271887552-5ac3a72752bc?w=800&q=80",
		Highlights:   []string{"Mt. Fuji Views", "Onsen Ryokan", "Open-Air Museum", "Scenic Loop"},
	},
	{
		Name:         "Kanazawa",
		JapaneseName: "金沢",
		Description:  "A refined \"little Kyoto\" with gardens, preserved districts and top-tier craft traditions.",
		Highlights:   []string{"Kenrokuen Garden", "Historic Districts", "Crafts"},
	},
	{
		Name:         "Shirakawa-go",
		JapaneseName: "白川郷",
		Description:  "A UNESCO farmhouse village in the Japanese Alps with storybook roofs and rural scenery.",
		ImageURL:     "https://images.unsplash.com/photo-1522623349500-de37a56ea2a5?w=800&q=80",
		Highlights:   []string{"Gassho-zukuri Houses", "Mountain Views", "Traditional Village"},
	},
	{
		Name:         "Nikko",
		JapaneseName: "日光",
		Description:  "A shrine-and-nature destination north of Tokyo with ornate architecture set in forested mountains.",
		Highlights:   []string{"Toshogu Shrines", "Cedar Paths", "Waterfalls"},
	},
	{
		Name:         "Koyasan",
		JapaneseName: "高野山",
		Description:  "A spiritual mountain town of temples, quiet forests and one of Japan's most memorable cemeteries.",
		ImageURL:     "https://images.unsplash.com/photo-1478436127897-769e1b3f0f36?w=800&q=80",
		Highlights:   []string{"Temple Stay", "Okunoin Cemetery", "Shojin Ryori"},
	},
	{
		Name:         "Naoshima",
		JapaneseName: "直島",
		Description:  "An art island in the Seto Inland Sea with architectural museums, outdoor sculptures and coastal cycling.",
		ImageURL:     "https://images.unsplash.com/photo-1503899036084-c55cdd92da26?w=800&q=80",
		Highlights:   []string{"Art Museums", "Yayoi Kusama Pumpkin", "Island Cycling"},
	},
	{
		Name:         "Okinawa",
		JapaneseName: "沖縄",
		Description:  "Japan's subtropical islands: beaches, coral reefs, a relaxed pace and a distinct local culture.",
		ImageURL:     "https://images.unsplash.com/photo-1542640244-7e672d6cef4e?w=800&q=80",
		Highlights:   []string{"Snorkeling", "Beaches", "Ryukyu Culture"},
	},
}

var attractions = []attractionData{
	{"Tokyo Shopping Districts", "Tokyo", "From Ginza flagships to Shibuya streetwear and Harajuku style, each retail zone feels like a different world.", "3–8 hrs"},
	{"Shibuya Scramble Crossing", "Tokyo", "Iconic crossing energy, Hachikō, towering screens and endlessly browseable side streets.", "2–4 hrs"},
	{"Senso-ji and Nakamise Street", "Tokyo", "Old-Tokyo charm with lantern-lit temple gates and a classic snack-and-souvenir approach.", "2–4 hrs"},
	{"Meiji Shrine and Yoyogi Park", "Tokyo", "A peaceful forested shrine precinct that feels miles away from the city.", "1.5–3 hrs"},
	{"Tsukiji Outer Market Crawl", "Tokyo", "A lively food market for sushi, grilled seafood, knives and matcha treats. Arrive hungry.", "1.5–3 hrs"},
	{"Shinjuku Night Alleys", "Tokyo", "Skyline views followed by lantern alleys and tiny bars.", "3–5 hrs"},
	{"teamLab Digital Art", "Tokyo", "Walk-through light and sound installations that feel like an interactive dream.", "2–3 hrs"},
	{"Akihabara Pop Culture", "Tokyo", "The epicenter of anime and electronics: gadgets, collectibles, themed cafés and arcades.", "2–4 hrs"},
	{"Fushimi Inari Torii Walk", "Kyoto", "Thousands of vermillion torii gates winding up a wooded mountain.", "2–4 hrs"},
	{"Kiyomizu-dera and Higashiyama", "Kyoto", "A classic temple veranda view, then historic lanes filled with crafts and sweets.", "3–5 hrs"},
	{"Arashiyama Bamboo and River", "Kyoto", "Bamboo, river scenery and serene temples.", "4–6 hrs"},
	{"Gion Evening Stroll", "Kyoto", "Lantern-lit streets and wooden machiya facades after dark.", "1.5–3 hrs"},
	{"Nishiki Market Tasting", "Kyoto", "Kyoto's kitchen: local bites, pickles, sweets and seasonal specialties.", "1.5–3 hrs"},
	{"Golden Pavilion Visit", "Kyoto", "A gold-leaf pavilion mirrored in a pond. Short visit, huge visual payoff.", "1–2 hrs"},
	{"Kyoto Tea Ceremony", "Kyoto", "A calm, guided introduction to Japanese aesthetics and ritual.", "1–2 hrs"},
	{"Dotonbori Neon Night", "Osaka", "A neon canal of takoyaki, okonomiyaki and people-watching.", "2–4 hrs"},
	{"Kuromon Market Bites", "Osaka", "Fresh seafood, fruit, skewers and quick bites. Ideal lunch stop.", "1.5–3 hrs"},
	{"Universal Studios Japan", "Osaka", "High-production rides and immersive themed areas. Plan early, stay late.", "8–12 hrs"},
	{"Osaka Castle Grounds", "Osaka", "A historic landmark framed by moats and gardens.", "2–3.5 hrs"},
	{"Umeda Skyline Views", "Osaka", "Big-city panoramas and sleek shopping complexes, best at sunset.", "1.5–2.5 hrs"},
	{"Nara Park and Deer", "Nara", "Friendly deer roaming open lawns, equal parts cute and chaotic.", "2–4 hrs"},
	{"Todaiji Great Buddha", "Nara", "A monumental wooden hall housing an enormous Buddha.", "1–2 hrs"},
	{"Itsukushima Shrine Views", "Miyajima", "One of Japan's most famous waterfront shrines, magical near high tide.", "1.5–3 hrs"},
	{"Mount Misen Hike", "Miyajima", "Panoramic viewpoints above the Seto Inland Sea.", "3–5 hrs"},
	{"Climb Mount Fuji", "Hakone", "A bucket-list sunrise climb above the clouds. Demanding but rewarding.", "12–18 hrs"},
	{"Fuji Five Lakes Day Trip", "Hakone", "Classic Fuji photo angles, lakeside cafés and easy scenic walks.", "6–10 hrs"},
	{"Hakone Onsen Ryokan Stay", "Hakone", "Hot springs, quiet views and an unhurried kaiseki meal.", "Overnight"},
	{"Hakone Open-Air Museum", "Hakone", "Sculptures in a mountain garden setting.", "2–3.5 hrs"},
	{"Hakone Scenic Loop", "Hakone", "Ropeways, volcanic scenery and lake cruising in one circuit.", "6–8 hrs"},
	{"Kenrokuen Garden Walk", "Kanazawa", "One of Japan's most celebrated landscape gardens.", "1.5–3 hrs"},
	{"Kanazawa Historic Districts", "Kanazawa", "Teahouse streets and old residences for photos, crafts and matcha breaks.", "3–5 hrs"},
	{"Shirakawa-go Farmhouses", "Shirakawa-go", "Thatched gassho-zukuri homes in a valley setting.", "3–5 hrs"},
	{"Nikko Toshogu Shrines", "Nikko", "Detailed, colorful shrine complexes and cedar-lined paths.", "4–7 hrs"},
	{"Koyasan Temple Stay", "Koyasan", "Sleep at a temple, eat shojin ryori and walk Okunoin.", "Overnight"},
	{"Naoshima Art Island Day", "Naoshima", "Contemporary art in bold architecture at an unhurried pace.", "6–10 hrs"},
	{"Okinawa Snorkeling and Beaches", "Okinawa", "Clear water and reef life. Choose a guided snorkel or dive.", "3–6 hrs"},
}
