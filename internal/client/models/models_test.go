package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	var item PantryItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"ingredientName":"milk","amount":"1L","expiresOn":"2026-02-01"}`), &item))
	require.NotNil(t, item.ExpiresOn)
	assert.Equal(t, Date{Year: 2026, Month: time.February, Day: 1}, *item.ExpiresOn)

	var undated PantryItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":4,"ingredientName":"salt","amount":"1kg","expiresOn":null}`), &undated))
	assert.Nil(t, undated.ExpiresOn)

	b, err := json.Marshal(NewPantryItem{IngredientName: "salt", Amount: "1kg"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ingredientName":"salt","amount":"1kg","expiresOn":null}`, string(b))

	d := Date{Year: 2026, Month: time.December, Day: 5}
	b, err = json.Marshal(NewPantryItem{IngredientName: "egg", Amount: "6", ExpiresOn: &d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ingredientName":"egg","amount":"6","expiresOn":"2026-12-05"}`, string(b))
}

func TestDate_UnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"05/12/2026"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-16")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-16", d.String())

	_, err = ParseDate("tomorrow")
	assert.Error(t, err)
}

func TestRecipe_InstructionsFallback(t *testing.T) {
	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"title":"Toast","instructions":"slice\ntoast"}`), &r))
	assert.Equal(t, "slice\ntoast", r.Steps)

	var both Recipe
	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"title":"Tea","steps":"boil","instructions":"ignored"}`), &both))
	assert.Equal(t, "boil", both.Steps)
}

func TestRecipe_TagAndStepLists(t *testing.T) {
	r := Recipe{Tags: "quick, vegan,,", Steps: "  chop onions \n\n\r\nfry  \n   "}
	assert.Equal(t, []string{"quick", "vegan"}, r.TagList())
	assert.Equal(t, []string{"chop onions", "fry"}, r.StepList())

	assert.Nil(t, Recipe{}.TagList())
	assert.Nil(t, Recipe{Steps: "\n \n"}.StepList())
}

func TestLoginResult_Profile(t *testing.T) {
	r := LoginResult{Token: "t", UserID: 7, Email: "a@b.c", Name: "Ann"}
	assert.Equal(t, UserProfile{ID: 7, Email: "a@b.c", Name: "Ann"}, r.Profile())
}
