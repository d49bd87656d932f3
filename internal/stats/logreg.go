package stats

import (
	"math"

	"github.com/tmadsen/bracketstats/internal/tourney"
)

const (
	newtonIterations = 100
	// ridge keeps the slope finite when the data is separable; the intercept
	// is left free.
	ridge = 1.0
)

// Outcome collects the signed seed differences of a team's games. A win is
// recorded as loser seed minus winner seed, a loss as winner seed minus
// loser seed, so a positive entry always means the team beat its seeding.
type Outcome struct {
	Wins   []int
	Losses []int
}

// Outcomes accumulates per-team (or per-grouping) outcomes.
type Outcomes map[string]*Outcome

// Get returns the outcome for a key, creating it on first use.
func (o Outcomes) Get(key string) *Outcome {
	outcome, ok := o[key]
	if !ok {
		outcome = &Outcome{}
		o[key] = outcome
	}
	return outcome
}

// Regression is a fitted win-probability model 1/(1+exp(-rate*x-rate*reseed))
// over seed difference x. A negative Reseed means the team wins more than
// its seeding predicts, by about that many seed positions.
type Regression struct {
	Games  int
	Rate   float64
	Reseed float64
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// CalcLogReg fits the two-parameter model to one outcome. When every game
// went the same way there is nothing to fit; the reseed saturates at the
// full bracket width instead.
func CalcLogReg(outcome *Outcome) Regression {
	games := len(outcome.Wins) + len(outcome.Losses)
	if len(outcome.Wins) == 0 || len(outcome.Losses) == 0 {
		reseed := -16.0
		if len(outcome.Wins) == 0 {
			reseed = 16.0
		}
		if games == 0 {
			reseed = 0
		}
		return Regression{Games: games, Rate: 0, Reseed: reseed}
	}
	xs := make([]float64, 0, games)
	ys := make([]float64, 0, games)
	for _, x := range outcome.Wins {
		xs = append(xs, float64(x))
		ys = append(ys, 1)
	}
	for _, x := range outcome.Losses {
		xs = append(xs, float64(x))
		ys = append(ys, 0)
	}
	intercept, rate := fitWithIntercept(xs, ys)
	reseed := 0.0
	if rate != 0 {
		reseed = intercept / rate
	}
	return Regression{Games: games, Rate: rate, Reseed: reseed}
}

// fitWithIntercept maximizes the ridge-penalized likelihood of
// y ~ sigmoid(b0 + b1 x) by Newton's method.
func fitWithIntercept(xs, ys []float64) (b0, b1 float64) {
	for iter := 0; iter < newtonIterations; iter++ {
		var g0, g1, h00, h01, h11 float64
		for i, x := range xs {
			p := sigmoid(b0 + b1*x)
			w := p * (1 - p)
			g0 += ys[i] - p
			g1 += x * (ys[i] - p)
			h00 += w
			h01 += w * x
			h11 += w * x * x
		}
		g1 -= ridge * b1
		h11 += ridge
		det := h00*h11 - h01*h01
		if det == 0 {
			break
		}
		d0 := (h11*g0 - h01*g1) / det
		d1 := (h00*g1 - h01*g0) / det
		b0 += d0
		b1 += d1
		if math.Abs(d0) < 1e-12 && math.Abs(d1) < 1e-12 {
			break
		}
	}
	return b0, b1
}

// MatrixRegression is the fit of a whole win/loss matrix, by symmetry
// through the origin: rate only, with the average log-loss as a quality
// measure.
type MatrixRegression struct {
	Games       int
	Rate        float64
	LossPerGame float64
}

// AnalyzeWinLoss fits win probability against seed difference for a full
// matrix. Each game appears twice in a matrix's diagonals, once as a win at
// difference d and once as a loss at -d, so the intercept is forced to zero.
func AnalyzeWinLoss(m *WinLoss) MatrixRegression {
	wins := m.WinsByDiff()
	games := 0
	for _, w := range wins {
		games += w
	}
	if games == 0 {
		return MatrixRegression{}
	}
	rate := fitThroughOrigin(wins)
	totalLoss := 0.0
	for i, winCount := range wins {
		diff := float64(i - (tourney.MaxSeed - 1))
		lossCount := wins[len(wins)-1-i]
		p := sigmoid(rate * diff)
		totalLoss -= float64(winCount)*math.Log(p) + float64(lossCount)*math.Log(1-p)
	}
	return MatrixRegression{Games: games, Rate: rate, LossPerGame: totalLoss / float64(games)}
}

// fitThroughOrigin maximizes the ridge-penalized likelihood of
// y ~ sigmoid(b x) over the per-difference win counts.
func fitThroughOrigin(wins []int) float64 {
	b := 0.0
	for iter := 0; iter < newtonIterations; iter++ {
		var g, h float64
		for i, winCount := range wins {
			x := float64(i - (tourney.MaxSeed - 1))
			lossCount := wins[len(wins)-1-i]
			p := sigmoid(b * x)
			g += x * (float64(winCount) - float64(winCount+lossCount)*p)
			h += float64(winCount+lossCount) * x * x * p * (1 - p)
		}
		g -= ridge * b
		h += ridge
		if h == 0 {
			break
		}
		d := g / h
		b += d
		if math.Abs(d) < 1e-12 {
			break
		}
	}
	return b
}

// WilsonInterval is the 95% Wilson score interval for a win proportion,
// returned as center and half-width.
func WilsonInterval(successes, total int) (center, halfWidth float64) {
	const kappa = 1.96
	kappaSq := kappa * kappa
	n := float64(total)
	phat := float64(successes) / n
	qhat := (n - float64(successes)) / n
	center = (float64(successes) + kappaSq/2) / (n + kappaSq)
	halfWidth = kappa * math.Sqrt(n) * math.Sqrt(phat*qhat+kappaSq/(4*n)) / (n + kappaSq)
	return center, halfWidth
}
