package reminders

import (
	"fmt"
	"time"
)

// Generate deriva los recordatorios de una mascota recién registrada.
// Es pura: mismo pet y mismo now => misma lista. No persiste ni notifica.
//
// Orden de evaluación: vacunas y desparasitación (perro/gato), higiene (aves),
// castración (perro/gato). Lista vacía es un resultado válido.
func Generate(pet Pet, now time.Time) []Draft {
	age := CalculateAge(pet.BirthDate, now)
	category := ClassifySpecies(pet.Species)

	drafts := make([]Draft, 0)

	if p, ok := ProtocolFor(category); ok {
		drafts = append(drafts, vaccineDrafts(p, pet.BirthDate, age, now)...)
		drafts = append(drafts, dewormDrafts(p, age, now)...)
	}

	if category == CategoryBird {
		drafts = append(drafts, birdHygieneDrafts(age, now)...)
	}

	if d, ok := spayNeuterDraft(category, pet.BirthDate, age, now); ok {
		drafts = append(drafts, d)
	}

	for i := range drafts {
		drafts[i].PetID = pet.ID
	}
	return drafts
}

func vaccineDrafts(p Protocol, birth *time.Time, age Age, now time.Time) []Draft {
	if !age.Known || age.Weeks >= p.JuvenileMaxWeeks {
		isRec, freq := recurring(p.AdultVaccineMonths)
		return []Draft{{
			Type:            TypeVaccine,
			Title:           p.AdultVaccineTitle,
			DueDate:         addDays(now, p.AdultVaccineDays),
			IsRecurring:     isRec,
			FrequencyMonths: freq,
		}}
	}

	out := make([]Draft, 0, len(p.JuvenileDoseWeeks))
	for i, w := range p.JuvenileDoseWeeks {
		due := addDays(*birth, w*7)
		// Dosis cuya ventana ya pasó no se recuperan.
		if due.Before(now) {
			continue
		}
		out = append(out, Draft{
			Type:    TypeVaccine,
			Title:   fmt.Sprintf("%s (dose %d/%d)", p.JuvenileDoseTitle, i+1, len(p.JuvenileDoseWeeks)),
			DueDate: due,
		})
	}
	return out
}

func dewormDrafts(p Protocol, age Age, now time.Time) []Draft {
	if !age.Known || age.Months >= p.DewormJuvenileMonths {
		isRec, freq := recurring(p.AdultDewormMonths)
		return []Draft{{
			Type:            TypeDeworm,
			Title:           p.AdultDewormTitle,
			DueDate:         now,
			IsRecurring:     isRec,
			FrequencyMonths: freq,
		}}
	}

	count := p.DewormJuvenileMonths - age.Months
	out := make([]Draft, 0, count)
	for m := 1; m <= count; m++ {
		out = append(out, Draft{
			Type:    TypeDeworm,
			Title:   fmt.Sprintf("%s (month %d)", p.JuvenileDewormTitle, m),
			DueDate: now.AddDate(0, m, 0),
		})
	}
	return out
}

func birdHygieneDrafts(age Age, now time.Time) []Draft {
	out := make([]Draft, 0, 2)

	if !age.Known || age.Months >= birdCheckupMinMonths {
		isRec, freq := recurring(birdCheckupMonths)
		out = append(out, Draft{
			Type:            TypeHygiene,
			Title:           birdCheckupTitle,
			DueDate:         addDays(now, birdCheckupDays),
			IsRecurring:     isRec,
			FrequencyMonths: freq,
		})
	}

	isRec, freq := recurring(birdCleaningMonths)
	out = append(out, Draft{
		Type:            TypeHygiene,
		Title:           birdCleaningTitle,
		DueDate:         addDays(now, birdCleaningDays),
		IsRecurring:     isRec,
		FrequencyMonths: freq,
	})
	return out
}

func spayNeuterDraft(c Category, birth *time.Time, age Age, now time.Time) (Draft, bool) {
	if c != CategoryDog && c != CategoryCat {
		return Draft{}, false
	}
	if !age.Known || age.Months >= spayMaxMonths {
		return Draft{}, false
	}

	due := addDays(now, spayLateDelayDays)
	if age.Months < spayEarlyMonths {
		due = addDays(*birth, spayEarlyOffsetDays)
	}

	return Draft{
		Type:    TypeSpayNeuter,
		Title:   spayNeuterTitle,
		DueDate: due,
	}, true
}

func addDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
