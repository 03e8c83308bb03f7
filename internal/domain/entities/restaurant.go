package entities

// RestaurantID identifies one of the chain's restaurants. The set is fixed;
// requests and user assignments only ever reference these four values.

type RestaurantID string

const (
	RestaurantMonsieurMouettes RestaurantID = "1"
	RestaurantGigio            RestaurantID = "2"
	RestaurantTigers           RestaurantID = "3"
	RestaurantLaTetrade        RestaurantID = "4"
)

// Restaurant is the static descriptor for a chain location, used by the
// reports endpoint to label per-restaurant aggregates.

type Restaurant struct {
	ID   RestaurantID `json:"id"`
	Name string       `json:"name"`
}

var Restaurants = []Restaurant{
	{ID: RestaurantMonsieurMouettes, Name: "Monsieur Mouettes"},
	{ID: RestaurantGigio, Name: "Gigio"},
	{ID: RestaurantTigers, Name: "Tigers"},
	{ID: RestaurantLaTetrade, Name: "La Tétrade"},
}

func (r RestaurantID) Valid() bool {
	for _, known := range Restaurants {
		if known.ID == r {
			return true
		}
	}
	return false
}

func (r RestaurantID) Name() string {
	for _, known := range Restaurants {
		if known.ID == r {
			return known.Name
		}
	}
	return string(r)
}
