package reminders

import "strings"

// Category es la clasificación de especie que elige el protocolo.
type Category string

const (
	CategoryDog     Category = "DOG"
	CategoryCat     Category = "CAT"
	CategoryBird    Category = "BIRD"
	CategoryUnknown Category = "UNKNOWN"
)

// speciesTokens se evalúa en orden; gana la primera categoría con algún token contenido.
// Para agregar especies basta con sumar una fila.
var speciesTokens = []struct {
	category Category
	tokens   []string
}{
	{CategoryDog, []string{"perro", "canino", "dog"}},
	{CategoryCat, []string{"gato", "felino", "cat"}},
	{CategoryBird, []string{"loro", "ave", "parrot", "bird"}},
}

// ClassifySpecies pasa a minúsculas y busca por substring, no por palabra completa
// ("perrito" es DOG, "caterpillar" es CAT). Sin match => UNKNOWN, que no es error.
func ClassifySpecies(species string) Category {
	s := strings.ToLower(species)
	for _, row := range speciesTokens {
		for _, tok := range row.tokens {
			if strings.Contains(s, tok) {
				return row.category
			}
		}
	}
	return CategoryUnknown
}
