package services

import (
	"fmt"
	"regexp"
	"strconv"
)

// RiskLevel enum
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Legality verdicts for a rent increase.
const (
	LikelyOK    = "Likely OK"
	LikelyNotOK = "Likely NOT OK"
	Unsure      = "Unsure"
)

var firstNumber = regexp.MustCompile(`\d+`)

// RiskAssessment is the outcome of RentRisk.
type RiskAssessment struct {
	Level    RiskLevel `json:"riskLevel"`
	Summary  string    `json:"summary"`
	Baseline float64   `json:"baseline"`
	Ratio    float64   `json:"ratio"`
}

// RentBaseline is the expected rent for a unit with the given bedroom count.
func RentBaseline(bedrooms int) float64 {
	return float64(bedrooms*800 + 200)
}

// RentRisk classifies rent against the bedroom baseline first, then escalates
// on the number of past issues. Escalation never lowers the level.
func RentRisk(rent float64, bedrooms, priorIssues int) RiskAssessment {
	if bedrooms <= 0 {
		bedrooms = 1
	}
	baseline := RentBaseline(bedrooms)
	ratio := rent / baseline

	level := RiskLow
	summary := "Rent seems reasonable for this size."
	switch {
	case ratio >= 1.3:
		level = RiskHigh
		summary = "Rent looks VERY high for what it is."
	case ratio >= 1.1:
		level = RiskMedium
		summary = "Rent is a bit high compared to similar places."
	}

	if priorIssues >= 3 && level != RiskHigh {
		level = RiskMedium
		summary += " This building has multiple past complaints."
	}
	if priorIssues >= 5 {
		level = RiskHigh
		summary = "Tenants reported serious recurring problems in this building."
	}

	return RiskAssessment{Level: level, Summary: summary, Baseline: baseline, Ratio: ratio}
}

// BedroomsFromLabel extracts the first integer of labels like "2 bedrooms".
// Labels without a positive number ("studio") count as one bedroom.
func BedroomsFromLabel(label string) int {
	m := firstNumber.FindString(label)
	if m == "" {
		return 1
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// LegalityResult is the outcome of RentIncreaseLegality.
type LegalityResult struct {
	Percent float64 `json:"pct"`
	Result  string  `json:"result"`
	Explain string  `json:"explain"`
}

// RentIncreaseLegality applies the increase heuristic: up to 3% is likely
// fine, above 5% without major work is likely not. Everything else,
// including 3-5% without major work, stays Unsure.
func RentIncreaseLegality(base, proposed float64, majorWork bool) LegalityResult {
	if base <= 0 {
		return LegalityResult{Result: Unsure, Explain: "Base rent must be greater than zero."}
	}

	pct := (proposed - base) / base * 100
	res := LegalityResult{Percent: pct, Result: Unsure, Explain: fmt.Sprintf("Increase: %.2f%%", pct)}

	if pct <= 3 {
		res.Result = LikelyOK
		res.Explain += " - modest increase."
	}
	if pct > 5 && !majorWork {
		res.Result = LikelyNotOK
		res.Explain += " - high without major work."
	}
	return res
}
