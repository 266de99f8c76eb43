package owners

// Owner pertenece a exactamente un país y se asocia a criaturas vía creature_owners.
type Owner struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Gym       string `json:"gym"`
	CountryID int64  `json:"countryId"`
}
