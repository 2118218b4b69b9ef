package http

import "net/http"

// NewRouter wires every endpoint behind the rate limiter.
func NewRouter(
	limiter *RateLimiter,
	loans *LoanHandler,
	simulations *SimulationHandler,
	sweeps *SweepHandler,
) http.Handler {
	mux := http.NewServeMux()

	limited := func(h http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, h)
	}

	mux.Handle("/loan/calculate", limited(loans.CalculateLoan))
	mux.Handle("/simulate", limited(simulations.Simulate))
	mux.Handle("/simulate/report", limited(simulations.Report))
	mux.Handle("/simulate/sweep", limited(sweeps.Sweep))
	mux.Handle("GET /simulations/{id}", limited(simulations.GetSimulation))

	return mux
}
