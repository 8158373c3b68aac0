package calc

import (
	"github.com/linyc74/cbioingest/internal/coerce"
	"github.com/linyc74/cbioingest/internal/schema"
)

// therapyPairs maps each derived therapy flag to the drug field that
// determines it.
var therapyPairs = [][2]string{
	{schema.NeoadjuvantChemotherapy, schema.NeoadjuvantChemotherapyDrug},
	{schema.AdjuvantChemotherapy, schema.AdjuvantChemotherapyDrug},
	{schema.PalliativeChemotherapy, schema.PalliativeChemotherapyDrug},
	{schema.AdjuvantTargetedTherapy, schema.AdjuvantTargetedTherapyDrug},
	{schema.PalliativeTargetedTherapy, schema.PalliativeTargetedTherapyDrug},
	{schema.Immunotherapy, schema.ImmunotherapyDrug},
}

// therapyFlags sets each therapy flag from its drug field: false when no
// drug was given (blank or "None"), true otherwise.
func (e *Engine) therapyFlags(rec map[string]string) error {
	for _, pair := range therapyPairs {
		flag, drug := pair[0], pair[1]
		if !e.schema.Has(flag) || !e.schema.Has(drug) {
			continue
		}
		given := rec[drug] != "" && rec[drug] != "None"
		rec[flag] = coerce.FormatBool(given)
	}
	return nil
}
