package model

// Item is a perishable item stored in one of the household's storage
// locations. DateAdded and ExpiryDate are YYYY-MM-DD strings.
type Item struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	DateAdded  string `json:"date_added"`
	ExpiryDate string `json:"expiry_date"`
	Fridge     string `json:"fridge"`
	ImagePath  string `json:"image_path"`
}

// Fridges lists the selectable storage-location labels.
var Fridges = []string{
	"Fridge 1",
	"Fridge 2",
	"Freezer",
	"Pantry",
}

// ValidFridge reports whether label is one of the known storage locations.
func ValidFridge(label string) bool {
	for _, f := range Fridges {
		if f == label {
			return true
		}
	}
	return false
}
