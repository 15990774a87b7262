package reminders

// Protocol es la tabla de vacunas y desparasitación de una categoría con protocolo (perro, gato).
// Los valores son estáticos; ProtocolFor devuelve copias.
type Protocol struct {
	Category Category

	// Vacunación juvenil: aplica si la edad es conocida y Weeks < JuvenileMaxWeeks.
	JuvenileMaxWeeks   int
	JuvenileDoseWeeks  []int // semanas desde el nacimiento
	JuvenileDoseTitle  string
	AdultVaccineTitle  string
	AdultVaccineMonths int // frecuencia del refuerzo adulto
	AdultVaccineDays   int // el refuerzo adulto vence now + N días

	// Desparasitación juvenil: aplica si la edad es conocida y Months < DewormJuvenileMonths;
	// genera DewormJuvenileMonths - Months recordatorios mensuales.
	DewormJuvenileMonths int
	JuvenileDewormTitle  string
	AdultDewormTitle     string
	AdultDewormMonths    int // frecuencia adulta; el primero vence now
}

var protocols = map[Category]Protocol{
	CategoryDog: {
		Category:             CategoryDog,
		JuvenileMaxWeeks:     20,
		JuvenileDoseWeeks:    []int{8, 12, 16},
		JuvenileDoseTitle:    "Puppy vaccine",
		AdultVaccineTitle:    "Annual vaccine booster",
		AdultVaccineMonths:   12,
		AdultVaccineDays:     365,
		DewormJuvenileMonths: 6,
		JuvenileDewormTitle:  "Puppy deworming",
		AdultDewormTitle:     "Deworming",
		AdultDewormMonths:    3,
	},
	CategoryCat: {
		Category:             CategoryCat,
		JuvenileMaxWeeks:     15,
		JuvenileDoseWeeks:    []int{9, 12},
		JuvenileDoseTitle:    "Kitten vaccine",
		AdultVaccineTitle:    "Annual vaccine booster",
		AdultVaccineMonths:   12,
		AdultVaccineDays:     365,
		DewormJuvenileMonths: 4,
		JuvenileDewormTitle:  "Kitten deworming",
		AdultDewormTitle:     "Deworming",
		AdultDewormMonths:    4,
	},
}

// ProtocolFor devuelve el protocolo de la categoría; BIRD y UNKNOWN no tienen.
func ProtocolFor(c Category) (Protocol, bool) {
	p, ok := protocols[c]
	if !ok {
		return Protocol{}, false
	}
	p.JuvenileDoseWeeks = append([]int(nil), p.JuvenileDoseWeeks...)
	return p, true
}

// Higiene de aves: independiente de vacunas/desparasitación.
const (
	birdCheckupTitle     = "Beak/nail checkup"
	birdCheckupMinMonths = 12 // o edad desconocida
	birdCheckupMonths    = 6
	birdCheckupDays      = 180

	birdCleaningTitle  = "Deep habitat cleaning"
	birdCleaningMonths = 1
	birdCleaningDays   = 30
)

// Castración: solo perro/gato con fecha de nacimiento conocida y Months < spayMaxMonths.
const (
	spayNeuterTitle     = "Spay/neuter"
	spayMaxMonths       = 12
	spayEarlyMonths     = 6 // por debajo: vence birth + spayEarlyOffsetDays
	spayEarlyOffsetDays = 180
	spayLateDelayDays   = 30 // si no: vence now + spayLateDelayDays
)
