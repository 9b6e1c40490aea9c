package nutrition

import (
	"math"

	"github.com/nutrivue/backend/internal/models"
)

// Nutrition is a calories/protein/carbs/fats quadruple in kcal and grams.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// Add returns the element-wise sum.
func (n Nutrition) Add(o Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fats:     n.Fats + o.Fats,
	}
}

func (n Nutrition) scale(f float64) Nutrition {
	return Nutrition{
		Calories: n.Calories * f,
		Protein:  n.Protein * f,
		Carbs:    n.Carbs * f,
		Fats:     n.Fats * f,
	}
}

func (n Nutrition) round2() Nutrition {
	return Nutrition{
		Calories: round2(n.Calories),
		Protein:  round2(n.Protein),
		Carbs:    round2(n.Carbs),
		Fats:     round2(n.Fats),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// contribution is the nutrition an ingredient adds at its stored amount.
func contribution(ing models.Ingredient) Nutrition {
	return Nutrition{
		Calories: ing.Calories,
		Protein:  ing.Protein,
		Carbs:    ing.Carbs,
		Fats:     ing.Fats,
	}
}

// perGramRates divides the stored contribution by the stored amount.
// A zero stored amount yields zero rates rather than dividing.
func perGramRates(ing models.Ingredient) Nutrition {
	if ing.Amount <= 0 {
		return Nutrition{}
	}
	return contribution(ing).scale(1 / ing.Amount)
}

// DishBaseTotals sums the stored ingredient contributions: the dish's
// authoritative nutrition at its default serving.
func DishBaseTotals(d *models.Dish) Nutrition {
	var total Nutrition
	for _, ing := range d.Ingredients {
		total = total.Add(contribution(ing))
	}
	return total.round2()
}

// IngredientPortion is one ingredient row at the current serving size.
type IngredientPortion struct {
	ID        uint                    `json:"id"`
	Name      string                  `json:"name"`
	Amount    float64                 `json:"amount"`
	Nutrition Nutrition               `json:"nutrition"`
	Scalable  bool                    `json:"is_scalable"`
	Custom    bool                    `json:"custom_amount"`
	Allergens models.JSONBStringArray `json:"allergens"`
}

// Scaler computes display nutrition for one dish at an arbitrary serving
// size, with optional per-ingredient gram overrides. Non-custom ingredients
// scale linearly with servingSize/baseUnit; a custom ingredient's
// contribution is fixed at rate × customGrams until changed again, and the
// dish total is base×scale plus the per-ingredient deltas. The dish's base
// totals stay authoritative throughout.
type Scaler struct {
	dish     *models.Dish
	base     Nutrition
	baseUnit float64
	serving  float64
	custom   map[uint]float64
}

// NewScaler prepares a scaler at the dish's default serving. Dishes with a
// zero default serving fall back to a 100 g basis.
func NewScaler(d *models.Dish) *Scaler {
	unit := d.DefaultServing
	if unit <= 0 {
		unit = 100
	}
	return &Scaler{
		dish:     d,
		base:     DishBaseTotals(d),
		baseUnit: unit,
		serving:  unit,
		custom:   make(map[uint]float64),
	}
}

// BaseUnit returns the gram basis the ingredient amounts are stored against.
func (s *Scaler) BaseUnit() float64 { return s.baseUnit }

// Serving returns the current serving size in grams.
func (s *Scaler) Serving() float64 { return s.serving }

// BaseTotals returns the dish nutrition at the base unit.
func (s *Scaler) BaseTotals() Nutrition { return s.base }

// SetServing changes the serving size. Non-positive sizes reset to the base
// unit. Custom ingredient overrides survive serving changes.
func (s *Scaler) SetServing(grams float64) {
	if grams <= 0 {
		grams = s.baseUnit
	}
	s.serving = grams
}

// SetIngredientAmount overrides one ingredient's gram amount for the current
// serving. Only scalable ingredients accept overrides; others are ignored.
func (s *Scaler) SetIngredientAmount(ingredientID uint, grams float64) {
	for _, ing := range s.dish.Ingredients {
		if ing.ID == ingredientID && ing.Scalable {
			if grams < 0 {
				grams = 0
			}
			s.custom[ingredientID] = grams
			return
		}
	}
}

// ClearIngredientAmount removes an override so the ingredient scales with
// the serving size again.
func (s *Scaler) ClearIngredientAmount(ingredientID uint) {
	delete(s.custom, ingredientID)
}

// ScalableAmount returns the current gram amount of the first scalable
// ingredient, honoring overrides. Zero when the dish has none.
func (s *Scaler) ScalableAmount() float64 {
	scale := s.serving / s.baseUnit
	for _, ing := range s.dish.Ingredients {
		if !ing.Scalable {
			continue
		}
		if grams, ok := s.custom[ing.ID]; ok {
			return grams
		}
		return round2(ing.Amount * scale)
	}
	return 0
}

// Totals returns the dish nutrition at the current serving with overrides
// applied: (base × scale) + Σ (custom contribution − default contribution).
func (s *Scaler) Totals() Nutrition {
	scale := s.serving / s.baseUnit
	total := s.base.scale(scale)

	for _, ing := range s.dish.Ingredients {
		grams, ok := s.custom[ing.ID]
		if !ok {
			continue
		}
		rates := perGramRates(ing)
		defaultContribution := rates.scale(ing.Amount * scale)
		customContribution := rates.scale(grams)
		total = total.Add(customContribution).Add(defaultContribution.scale(-1))
	}

	return total.round2()
}

// Ingredients returns the display rows for the current serving size.
func (s *Scaler) Ingredients() []IngredientPortion {
	scale := s.serving / s.baseUnit
	portions := make([]IngredientPortion, 0, len(s.dish.Ingredients))

	for _, ing := range s.dish.Ingredients {
		rates := perGramRates(ing)

		amount := round2(ing.Amount * scale)
		custom := false
		if grams, ok := s.custom[ing.ID]; ok {
			amount = grams
			custom = true
		}

		portions = append(portions, IngredientPortion{
			ID:        ing.ID,
			Name:      ing.Name,
			Amount:    amount,
			Nutrition: rates.scale(amount).round2(),
			Scalable:  ing.Scalable,
			Custom:    custom,
			Allergens: ing.Allergens,
		})
	}
	return portions
}
