// Package content holds the portal's curated static data: the home page
// bulletin board, the ration board and the reaction palette. Editable here,
// served read-only over the API.
package content

// RegionName labels the area this portal instance serves.
const RegionName = "Ward 12, ABC City"

// Location is one pin on the local map.
type Location struct {
	Name string  `json:"name"`
	Type string  `json:"type"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// NewsItem is one bulletin entry.
type NewsItem struct {
	Title   string   `json:"title"`
	Date    string   `json:"date"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// QuickContact is one entry in the home page's short contact list.
type QuickContact struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Contact string `json:"contact"`
	Notes   string `json:"notes"`
}

// UtilitySchedule is one area's slot for a utility service.
type UtilitySchedule struct {
	Area     string `json:"area"`
	Schedule string `json:"schedule"`
}

// Notice is a banner shown at the top of the portal.
type Notice struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// HomePage bundles everything the landing page shows.
type HomePage struct {
	Region    string                       `json:"region"`
	Notices   []Notice                     `json:"notices"`
	Locations []Location                   `json:"locations"`
	News      []NewsItem                   `json:"news"`
	Contacts  []QuickContact               `json:"contacts"`
	Utilities map[string][]UtilitySchedule `json:"utilities"`
}

var locations = []Location{
	{Name: "Green Grocers", Type: "Shop", Lat: 37.7749, Lon: -122.4194},
	{Name: "Asha Clinic", Type: "Service", Lat: 37.7756, Lon: -122.4183},
	{Name: "Community Hall", Type: "Key Point", Lat: 37.7768, Lon: -122.4170},
	{Name: "Local Leader - Mr. Roy", Type: "Leader", Lat: 37.7750, Lon: -122.4160},
	{Name: "Bakery Corner", Type: "Shop", Lat: 37.7740, Lon: -122.4205},
	{Name: "Ration Shop", Type: "Government", Lat: 37.7745, Lon: -122.4180},
}

var news = []NewsItem{
	{Title: "Road repair on Main St", Date: "2025-11-01", Content: "Main St will have partial closures from Nov 3 to Nov 5 for resurfacing.", Tags: []string{"Transport", "Alert"}},
	{Title: "Health camp this weekend", Date: "2025-10-28", Content: "Free health checkup at Community Hall on Sunday 10am-2pm.", Tags: []string{"Health"}},
	{Title: "Festive cleanup drive", Date: "2025-10-20", Content: "Volunteer cleanup drive; meet at 8am near Bakery Corner.", Tags: []string{"Community"}},
}

var contacts = []QuickContact{
	{Name: "Green Grocers", Type: "Shop", Contact: "+1-555-0101", Notes: "Groceries & vegetables"},
	{Name: "Asha Clinic", Type: "Service", Contact: "+1-555-0202", Notes: "General physician"},
	{Name: "Mr. Roy", Type: "Local Leader", Contact: "+1-555-0303", Notes: "Ward representative"},
}

var utilities = map[string][]UtilitySchedule{
	"water_supply": {
		{Area: "North Block", Schedule: "Mon, Wed, Fri: 6am - 9am"},
		{Area: "South Block", Schedule: "Tue, Thu: 5pm - 8pm"},
	},
	"garbage_collection": {
		{Area: "All Areas", Schedule: "Tue & Fri - 7am"},
	},
}

var notices = []Notice{
	{Level: "info", Text: "Novel community meeting on Nov 6 at 6pm, Community Hall."},
	{Level: "warning", Text: "Expect short water outage on Nov 3 morning due to maintenance."},
}

// Home returns the landing page bundle.
func Home() HomePage {
	return HomePage{
		Region:    RegionName,
		Notices:   notices,
		Locations: locations,
		News:      news,
		Contacts:  contacts,
		Utilities: utilities,
	}
}

// RationRate is one line of the printed rate card. Dry goods are priced per
// kg, kerosene per liter; the unused pair stays zero and is omitted.
type RationRate struct {
	Item               string  `json:"item"`
	Category           string  `json:"category"`
	RatePerKg          float64 `json:"rate_per_kg,omitempty"`
	MonthlyLimitKg     int     `json:"monthly_limit_kg,omitempty"`
	RatePerLiter       float64 `json:"rate_per_liter,omitempty"`
	MonthlyLimitLiters int     `json:"monthly_limit_liters,omitempty"`
	Availability       string  `json:"availability"`
}

// Announcement is one ration office notice.
type Announcement struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ShopTiming is one ration shop's visiting hours.
type ShopTiming struct {
	Shop   string `json:"shop"`
	Timing string `json:"timing"`
}

// RationBoard bundles the ration page: the printed rate card per area plus
// announcements and shop timings. The live, editable rates live in the
// database; this is the curated fallback card.
type RationBoard struct {
	Rates         map[string][]RationRate `json:"rates"`
	Announcements []Announcement          `json:"announcements"`
	ShopTimings   []ShopTiming            `json:"shop_timings"`
	Helpline      string                  `json:"helpline"`
}

var rationRates = map[string][]RationRate{
	"Ward 12": {
		{Item: "Rice", Category: "APL", RatePerKg: 8.50, MonthlyLimitKg: 5, Availability: "In Stock"},
		{Item: "Rice", Category: "BPL", RatePerKg: 3.00, MonthlyLimitKg: 7, Availability: "In Stock"},
		{Item: "Wheat", Category: "APL", RatePerKg: 7.50, MonthlyLimitKg: 5, Availability: "Limited Stock"},
		{Item: "Wheat", Category: "BPL", RatePerKg: 2.50, MonthlyLimitKg: 7, Availability: "In Stock"},
		{Item: "Sugar", Category: "APL", RatePerKg: 30.00, MonthlyLimitKg: 2, Availability: "In Stock"},
		{Item: "Sugar", Category: "BPL", RatePerKg: 15.00, MonthlyLimitKg: 3, Availability: "Out of Stock"},
		{Item: "Kerosene", Category: "All", RatePerLiter: 25.00, MonthlyLimitLiters: 3, Availability: "Limited Stock"},
	},
	"Surrounding Areas": {
		{Item: "Rice", Category: "APL", RatePerKg: 9.00, MonthlyLimitKg: 5, Availability: "In Stock"},
		{Item: "Rice", Category: "BPL", RatePerKg: 3.00, MonthlyLimitKg: 7, Availability: "Limited Stock"},
		{Item: "Wheat", Category: "APL", RatePerKg: 8.00, MonthlyLimitKg: 5, Availability: "In Stock"},
		{Item: "Wheat", Category: "BPL", RatePerKg: 2.50, MonthlyLimitKg: 7, Availability: "In Stock"},
		{Item: "Sugar", Category: "APL", RatePerKg: 31.00, MonthlyLimitKg: 2, Availability: "Out of Stock"},
		{Item: "Sugar", Category: "BPL", RatePerKg: 15.00, MonthlyLimitKg: 3, Availability: "Limited Stock"},
		{Item: "Kerosene", Category: "All", RatePerLiter: 26.00, MonthlyLimitLiters: 3, Availability: "In Stock"},
	},
}

var announcements = []Announcement{
	{Date: "2025-11-01", Title: "Sugar stock update", Content: "New sugar stock expected by Nov 5. BPL card holders can collect previous month's quota until Nov 10."},
	{Date: "2025-10-28", Title: "Rate revision notice", Content: "Slight increase in APL rates expected from next month due to transport cost adjustment."},
}

var shopTimings = []ShopTiming{
	{Shop: "Ward 12 Main Shop", Timing: "Mon-Sat: 9:00 AM - 5:00 PM"},
	{Shop: "Ward 12 Extension Counter", Timing: "Mon-Fri: 10:00 AM - 4:00 PM"},
	{Shop: "Holiday Notice", Timing: "Closed on Sundays and public holidays"},
}

// Rations returns the curated ration board.
func Rations() RationBoard {
	return RationBoard{
		Rates:         rationRates,
		Announcements: announcements,
		ShopTimings:   shopTimings,
		Helpline:      "+1-555-0123 (Mon-Fri, 9 AM - 6 PM)",
	}
}

// Reaction pairs an emoji with its label in the picker.
type Reaction struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

var reactions = []Reaction{
	{Emoji: "👍", Label: "Like"},
	{Emoji: "❤️", Label: "Love"},
	{Emoji: "🌟", Label: "Star"},
	{Emoji: "🙏", Label: "Thanks"},
	{Emoji: "😊", Label: "Smile"},
}

// Reactions returns the emoji palette in picker order.
func Reactions() []Reaction {
	return reactions
}

// Member is one selectable identity for posting without an account.
type Member struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

var members = []Member{
	{Name: "Neha Singh", Avatar: "👩"},
	{Name: "Amit Kumar", Avatar: "👨"},
	{Name: "Saira Khan", Avatar: "👩"},
	{Name: "Guest User", Avatar: "👤"},
}

// SampleMembers returns the selectable identities shown in file mode.
func SampleMembers() []Member {
	return members
}
