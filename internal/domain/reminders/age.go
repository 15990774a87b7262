package reminders

import "time"

// Age es la edad de la mascota en las dos unidades que usan los protocolos.
// Known=false significa fecha de nacimiento desconocida; las reglas la tratan como adulta.
type Age struct {
	Weeks  int
	Months int
	Known  bool
}

// CalculateAge no lee el reloj: now siempre viene del caller.
//
// Weeks = floor(|now - birth| en días / 7).
// Months = diferencia año/mes sin ajustar por día (un nacido el 31/01 tiene 1 mes el 01/02).
// Ambas fechas se comparan en UTC.
func CalculateAge(birth *time.Time, now time.Time) Age {
	if birth == nil {
		return Age{}
	}

	b := birth.UTC()
	n := now.UTC()

	d := n.Sub(b)
	if d < 0 {
		d = -d
	}
	days := int(d / (24 * time.Hour))

	months := (n.Year()-b.Year())*12 + int(n.Month()) - int(b.Month())

	return Age{
		Weeks:  days / 7,
		Months: months,
		Known:  true,
	}
}
