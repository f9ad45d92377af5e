package recipe

import "github.com/google/uuid"

// Diff descreve a substituição do conjunto de linhas de uma composição
type Diff struct {
	Added   []Line
	Removed []Line
	Changed []Line
	// Result é o conjunto final, na ordem enviada pelo cliente
	Result []Line
}

// Empty informa se a substituição não altera nada
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// DiffLines compara as linhas atuais com o conjunto enviado, casando pelo
// componente. Linhas mantidas preservam o ID.
func DiffLines(recipeID string, current []Line, submitted []LineInput) Diff {
	byComponent := make(map[string]Line, len(current))
	for _, l := range current {
		byComponent[l.ComponentID] = l
	}

	var d Diff
	d.Result = make([]Line, 0, len(submitted))
	kept := make(map[string]bool, len(submitted))
	for _, li := range submitted {
		existing, ok := byComponent[li.ComponentID]
		if !ok {
			line := Line{
				ID:          uuid.New().String(),
				RecipeID:    recipeID,
				ComponentID: li.ComponentID,
				Quantity:    li.Quantity,
			}
			d.Added = append(d.Added, line)
			d.Result = append(d.Result, line)
			continue
		}

		kept[li.ComponentID] = true
		if !existing.Quantity.Equal(li.Quantity) {
			existing.Quantity = li.Quantity
			d.Changed = append(d.Changed, existing)
		}
		d.Result = append(d.Result, existing)
	}

	for _, l := range current {
		if !kept[l.ComponentID] {
			d.Removed = append(d.Removed, l)
		}
	}
	return d
}
