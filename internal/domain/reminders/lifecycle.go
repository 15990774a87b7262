package reminders

import "time"

// Transition aplica PENDING <-> COMPLETED.
// Pedir el estado actual es un no-op (changed=false); un destino inválido es ErrInvalidInput.
func Transition(current, target Status) (next Status, changed bool, err error) {
	if !target.Valid() {
		return current, false, ErrInvalidInput
	}
	if current == target {
		return current, false, nil
	}
	return target, true, nil
}

// IsOverdue: pendiente y con vencimiento estrictamente anterior a now.
func (r Reminder) IsOverdue(now time.Time) bool {
	return r.Status == StatusPending && r.DueDate.Before(now)
}

// IsDueToday: pendiente y vence el mismo día calendario que now, en la zona de now.
func (r Reminder) IsDueToday(now time.Time) bool {
	if r.Status != StatusPending {
		return false
	}
	y1, m1, d1 := r.DueDate.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// View es un Reminder más sus clasificaciones derivadas contra un instante.
type View struct {
	Reminder
	Overdue  bool
	DueToday bool
}

func Classify(r Reminder, now time.Time) View {
	return View{
		Reminder: r,
		Overdue:  r.IsOverdue(now),
		DueToday: r.IsDueToday(now),
	}
}

// Summary cuenta recordatorios por estado y clasificación derivada.
type Summary struct {
	Total     int
	Pending   int
	Completed int
	Overdue   int
	DueToday  int
}

func Summarize(items []Reminder, now time.Time) Summary {
	var s Summary
	for _, r := range items {
		s.Total++
		switch r.Status {
		case StatusPending:
			s.Pending++
		case StatusCompleted:
			s.Completed++
		}
		if r.IsOverdue(now) {
			s.Overdue++
		}
		if r.IsDueToday(now) {
			s.DueToday++
		}
	}
	return s
}

// DayBounds devuelve [inicio, fin) del día calendario de now, en la zona de now.
// Es la ventana de IsDueToday expresada como rango para los adapters.
func DayBounds(now time.Time) (time.Time, time.Time) {
	start := startOfDay(now)
	return start, start.AddDate(0, 0, 1)
}

// startOfDay devuelve la medianoche de t en su propia zona.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
