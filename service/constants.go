package service

const (
	MaxLoanAmount   = 1_000_000_000.0 // also the home price ceiling
	MaxInterestRate = 1000.0          // percent per year
	MaxTermMonths   = 600             // 50 years
	MinTermMonths   = 1
	MaxTermYears    = MaxTermMonths / 12
	MinTermYears    = 1
	MaxMonthlyRent  = 10_000_000.0

	// A home cannot lose more than its whole value in a year.
	MinAppreciationPct = -100.0

	MaxSweepPoints = 50 // values per sweep axis

	cachePrefixSim  = "rvb:sim"
	cachePrefixLoan = "rvb:loan"
)
