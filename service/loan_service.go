package service

import (
	"encoding/json"
	"fmt"
	"log"
	"math"

	"github.com/Krishna-debug223/Rent-vs-Buy/domain"
	"github.com/Krishna-debug223/Rent-vs-Buy/repository"
)

// roundTo2Decimals rounds to cents.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// MonthlyPayment is the fixed annuity payment for a fully amortizing loan:
// M = P * r(1+r)^n / ((1+r)^n - 1) with r the monthly rate.
// growth is (1+r)^n - 1 computed without cancellation, so rates too small
// to move 1+r still give a finite payment. A zero rate pays the principal
// off linearly.
func MonthlyPayment(principal float64, annualRate domain.Percent, months int) float64 {
	r := annualRate.Fraction() / 12
	n := float64(months)

	growth := math.Expm1(n * math.Log1p(r))
	if r == 0 || growth == 0 {
		return principal / n
	}

	return principal * r * (growth + 1) / growth
}

type LoanService struct {
	cache repository.CacheRepository
}

// NewLoanService creates a new LoanService backed by the given cache.
func NewLoanService(cache repository.CacheRepository) *LoanService {
	return &LoanService{cache: cache}
}

func validateLoan(input domain.LoanInput) error {
	if !(input.Amount > 0) {
		return invalid("amount", input.Amount, "must be positive")
	}
	if input.Amount > MaxLoanAmount {
		return invalid("amount", input.Amount, fmt.Sprintf("exceeds the maximum of %.2f", MaxLoanAmount))
	}
	if !(input.InterestRate >= 0) {
		return invalid("interest_rate", input.InterestRate, "must not be negative")
	}
	if input.InterestRate > MaxInterestRate {
		return invalid("interest_rate", input.InterestRate, fmt.Sprintf("exceeds the maximum of %.2f%%", MaxInterestRate))
	}
	if input.TermMonths < MinTermMonths {
		return invalid("term_months", input.TermMonths, "must be at least 1")
	}
	if input.TermMonths > MaxTermMonths {
		return invalid("term_months", input.TermMonths, fmt.Sprintf("exceeds the maximum of %d months", MaxTermMonths))
	}
	return nil
}

// CalculateLoan calculates the payment schedule totals for a loan.
func (s *LoanService) CalculateLoan(
	input domain.LoanInput,
) (domain.LoanResult, error) {

	if err := validateLoan(input); err != nil {
		return domain.LoanResult{}, err
	}

	key, err := repository.CacheKey(cachePrefixLoan, input)
	if err == nil {
		if raw, ok := s.cache.Get(key); ok {
			var cached domain.LoanResult
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
			log.Printf("Warning: discarding unreadable cache entry %s", key)
		}
	}

	payment := MonthlyPayment(input.Amount, input.InterestRate, input.TermMonths)
	total := payment * float64(input.TermMonths)
	interest := total - input.Amount

	result := domain.LoanResult{
		MonthlyPayment: roundTo2Decimals(payment),
		TotalPayment:   roundTo2Decimals(total),
		TotalInterest:  roundTo2Decimals(interest),
	}

	// Caching is not critical
	if key != "" {
		if b, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(key, string(b)); err != nil {
				log.Printf("Warning: failed to cache loan calculation: %v", err)
			}
		}
	}

	return result, nil
}
