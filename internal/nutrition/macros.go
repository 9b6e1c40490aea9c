package nutrition

import (
	"errors"
	"math"
	"strings"
	"time"
)

var (
	// ErrIncompleteProfile is returned when height, weight or birth date are
	// missing; callers surface it as "complete your profile first".
	ErrIncompleteProfile = errors.New("health profile is incomplete")
	// ErrUnderage is returned for computed ages under 15.
	ErrUnderage = errors.New("age must be at least 15")
)

// MinimumAge is the youngest age the calculator accepts.
const MinimumAge = 15

// calorieFloor is the lowest daily target the calculator will return.
const calorieFloor = 1200

// activityMultipliers maps activity levels to their TDEE multiplier. This is
// the single source of truth for valid activity levels; unknown levels fall
// back to sedentary.
var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly active":    1.375,
	"moderately active": 1.55,
	"very active":       1.725,
}

// MacroInput is everything the calculator needs from a health profile.
type MacroInput struct {
	HeightCm      float64
	WeightKg      float64
	Age           int
	Sex           string
	ActivityLevel string
	Goals         []string
}

// MacroTargets is a daily calorie budget with its macro gram split.
type MacroTargets struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	FatG     int `json:"fat_g"`
	CarbG    int `json:"carb_g"`
}

// macroSplit is the fraction of calories assigned to each macro. The three
// tables below are the product policy for this service: the default split,
// a higher-protein cut for weight loss, and a higher-protein lower-carb
// split for athletic performance.
type macroSplit struct {
	protein, fat, carb float64
}

var (
	splitDefault    = macroSplit{protein: 0.25, fat: 0.30, carb: 0.45}
	splitWeightLoss = macroSplit{protein: 0.30, fat: 0.25, carb: 0.45}
	splitAthletic   = macroSplit{protein: 0.35, fat: 0.30, carb: 0.35}
)

// Kcal-per-gram constants. Fixed by chemistry, not policy.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarb    = 4
	kcalPerGramFat     = 9
)

// AgeAt computes a calendar-aware age: the year difference, minus one when
// the birthday has not yet occurred in the current year.
func AgeAt(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// BMR computes the basal metabolic rate via Mifflin-St Jeor.
func BMR(heightCm, weightKg float64, age int, sex string) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if strings.EqualFold(sex, "male") {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr
}

// BMI expects height in centimeters and weight in kilograms, and returns the
// value rounded to 2 decimals. Returns 0 for non-positive inputs.
func BMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	h := heightCm / 100.0
	return round2(weightKg / (h * h))
}

// CalculateMacros derives the daily calorie target and macro gram split from
// body metrics, activity level, and goals.
//
// Calories = BMR × activity multiplier, adjusted −500 for weight loss or
// +300 for athletic performance, floored at 1200 kcal. Macro grams follow
// the goal's split table at 4/4/9 kcal per gram.
func CalculateMacros(in MacroInput) (MacroTargets, error) {
	if in.HeightCm <= 0 || in.WeightKg <= 0 {
		return MacroTargets{}, ErrIncompleteProfile
	}
	if in.Age < MinimumAge {
		return MacroTargets{}, ErrUnderage
	}

	bmr := BMR(in.HeightCm, in.WeightKg, in.Age, in.Sex)

	multiplier, ok := activityMultipliers[strings.ToLower(strings.TrimSpace(in.ActivityLevel))]
	if !ok {
		multiplier = activityMultipliers["sedentary"]
	}
	calories := bmr * multiplier

	split := splitDefault
	switch {
	case hasGoal(in.Goals, "weight loss"):
		calories -= 500
		split = splitWeightLoss
	case hasGoal(in.Goals, "athletic"):
		calories += 300
		split = splitAthletic
	}

	if calories < calorieFloor {
		calories = calorieFloor
	}

	return MacroTargets{
		Calories: int(math.Round(calories)),
		ProteinG: int(math.Round(calories * split.protein / kcalPerGramProtein)),
		FatG:     int(math.Round(calories * split.fat / kcalPerGramFat)),
		CarbG:    int(math.Round(calories * split.carb / kcalPerGramCarb)),
	}, nil
}

// hasGoal reports whether any goal contains the given fragment,
// case-insensitively. Goal strings come from free-form onboarding choices,
// so substring matching is deliberate.
func hasGoal(goals []string, fragment string) bool {
	for _, g := range goals {
		if strings.Contains(strings.ToLower(g), fragment) {
			return true
		}
	}
	return false
}
