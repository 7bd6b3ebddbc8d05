package models

type MenuItem struct {
	ID    int
	Name  string
	Price int
}

// DefaultMenu returns a fresh copy of the seed catalog. The menu store
// falls back to it whenever the persisted file is absent or unreadable.
func DefaultMenu() map[int]MenuItem {
	return map[int]MenuItem{
		1: {ID: 1, Name: "Coffee", Price: 50},
		2: {ID: 2, Name: "Tea", Price: 30},
		3: {ID: 3, Name: "Sandwich", Price: 100},
		4: {ID: 4, Name: "Cake", Price: 80},
	}
}
