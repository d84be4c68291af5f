package menu

// CurrentKey is the fixed document key the published menu lives under.
const CurrentKey = "current"

// Document is the parsed weekly menu, as stored and served by the API.
// LastUpdated and UpdatedBy are stamped by the service, never by Parse.
type Document struct {
	Month       string   `json:"month" bson:"month"`
	LastUpdated string   `json:"lastUpdated,omitempty" bson:"lastUpdated,omitempty"`
	UpdatedBy   string   `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	Sheets      []string `json:"sheets" bson:"sheets"`
	Menu        Menu     `json:"menu" bson:"menu"`
}

// Menu splits day entries by sheet classification.
type Menu struct {
	VegNonVeg []DayEntry `json:"vegNonVeg" bson:"vegNonVeg"`
	Special   []DayEntry `json:"special" bson:"special"`
}

// DayEntry is one recurring weekday block, possibly covering several dates.
type DayEntry struct {
	Day     string  `json:"day" bson:"day"`
	Dates   []int   `json:"dates" bson:"dates"`
	RawDate string  `json:"rawDate" bson:"rawDate"`
	Meals   MealSet `json:"meals" bson:"meals"`
}

// MealSet holds the four meal lists of a day. Items tagged "[d] " apply
// only to day-of-month d; untagged items apply to every date of the block.
type MealSet struct {
	Breakfast []string `json:"breakfast" bson:"breakfast"`
	Lunch     []string `json:"lunch" bson:"lunch"`
	Snacks    []string `json:"snacks" bson:"snacks"`
	Dinner    []string `json:"dinner" bson:"dinner"`
}

// Meal identifies one of the four meal columns.
type Meal int

const (
	Breakfast Meal = iota
	Lunch
	Snacks
	Dinner
)

// Meals lists the meal columns in output order.
var Meals = [...]Meal{Breakfast, Lunch, Snacks, Dinner}

func (m Meal) String() string {
	switch m {
	case Breakfast:
		return "breakfast"
	case Lunch:
		return "lunch"
	case Snacks:
		return "snacks"
	case Dinner:
		return "dinner"
	}
	return "unknown"
}

func newDocument() *Document {
	return &Document{
		Sheets: []string{},
		Menu: Menu{
			VegNonVeg: []DayEntry{},
			Special:   []DayEntry{},
		},
	}
}

// set stores items under meal m.
func (s *MealSet) set(m Meal, items []string) {
	switch m {
	case Breakfast:
		s.Breakfast = items
	case Lunch:
		s.Lunch = items
	case Snacks:
		s.Snacks = items
	case Dinner:
		s.Dinner = items
	}
}

// Get returns the items of meal m.
func (s MealSet) Get(m Meal) []string {
	switch m {
	case Breakfast:
		return s.Breakfast
	case Lunch:
		return s.Lunch
	case Snacks:
		return s.Snacks
	case Dinner:
		return s.Dinner
	}
	return nil
}
