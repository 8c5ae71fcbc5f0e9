package models

import "encoding/json"

func (r *Recipe) UnmarshalJSON(b []byte) error {
	type plain Recipe
	var aux struct {
		plain
		Instructions string `json:"instructions"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*r = Recipe(aux.plain)
	if r.Steps == "" {
		r.Steps = aux.Instructions
	}
	return nil
}
