package service

import "math"

const (
	cmPerInch = 2.54
	lbsPerKg  = 2.20462
)

// CmToFeetInches converts a height in centimeters into whole feet and
// rounded inches. Inputs <= 0 yield non-meaningful output; callers validate
// upstream.
func CmToFeetInches(cm float64) (int, int) {
	totalInches := cm / cmPerInch
	feet := int(math.Floor(totalInches / 12))
	inches := int(math.Round(math.Mod(totalInches, 12)))
	return feet, inches
}

// FeetInchesToCm converts feet and inches to centimeters rounded to the
// nearest whole centimeter.
func FeetInchesToCm(feet, inches int) float64 {
	totalInches := float64(feet)*12 + float64(inches)
	return math.Round(totalInches * cmPerInch)
}

// KgToLbs and LbsToKg round to one decimal in both directions so that
// round-trips stay within 0.1 of the original value.
func KgToLbs(kg float64) float64 {
	return round1(kg * lbsPerKg)
}

func LbsToKg(lbs float64) float64 {
	return round1(lbs / lbsPerKg)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
