package creatures

import "time"

// Creature representa una criatura registrada.
// El rating no se persiste: se deriva de las reviews que la referencian.
type Creature struct {
	ID        int64
	Name      string
	BirthDate time.Time
}

// DateOnly deja solo la fecha, a medianoche UTC. BirthDate se guarda así.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
