package reviews

const (
	MinRating = 1
	MaxRating = 10
)

// Review siempre referencia una criatura y un reviewer existentes.
type Review struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	Rating     int    `json:"rating"`
	CreatureID int64  `json:"creatureId"`
	ReviewerID int64  `json:"reviewerId"`
}
