package activity

// Entry vive en el document store, sin FK contra la base relacional.
// El ID lo asigna el store.
type Entry struct {
	ID       string `json:"id"`
	OwnerID  int64  `json:"ownerId"`
	Activity string `json:"activity"`
}
