package distributions

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrUnknownDistribution indicates a name missing from the catalog.
	ErrUnknownDistribution = errors.New("distributions: unknown distribution")
	// ErrNoDistributions indicates an empty selection.
	ErrNoDistributions = errors.New("distributions: specify at least one distribution")
	// ErrParams indicates a missing or out-of-domain parameter.
	ErrParams = errors.New("distributions: invalid parameters")
	// ErrUndefinedMoment indicates the mean or variance does not exist at the
	// given parameters (Student's t with ν ≤ 1 or ν ≤ 2).
	ErrUndefinedMoment = errors.New("distributions: moment undefined")
	// ErrNoReference indicates gonum has no implementation of the entry.
	ErrNoReference = errors.New("distributions: no gonum implementation")
)

// Params maps parameter names (see Entry.Params) to values.
type Params map[string]float64

// Distribution is the part of a gonum distuv value exposed by Entry.Distribution.
type Distribution interface {
	Mean() float64
	Variance() float64
	Prob(x float64) float64
}

// Entry is one catalog row. The text fields are LaTeX math-mode fragments
// except Name, which is a text cell. MeanAt and VarianceAt evaluate the same
// formulas as Mean and Variance.
type Entry struct {
	Key      string
	Name     string
	Space    string
	Density  string
	Mean     string
	Variance string
	Params   []string // parameter names accepted by the *At methods

	check    func(Params) error
	mean     func(Params) (float64, error)
	variance func(Params) (float64, error)
	ref      func(Params) Distribution // nil when gonum has no counterpart
}

// MeanAt evaluates the Mean formula at p.
func (e Entry) MeanAt(p Params) (float64, error) {
	if err := e.validate(p); err != nil {
		return 0, err
	}
	return e.mean(p)
}

// VarianceAt evaluates the Variance formula at p.
func (e Entry) VarianceAt(p Params) (float64, error) {
	if err := e.validate(p); err != nil {
		return 0, err
	}
	return e.variance(p)
}

// Distribution returns the gonum distribution with parameters p, for
// densities and numeric moments. Geometric has none and yields ErrNoReference.
func (e Entry) Distribution(p Params) (Distribution, error) {
	if e.ref == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoReference, e.Key)
	}
	if err := e.validate(p); err != nil {
		return nil, err
	}

	return e.ref(p), nil
}

func (e Entry) validate(p Params) error {
	for _, name := range e.Params {
		v, ok := p[name]
		if !ok {
			return fmt.Errorf("%w: %s: missing %q", ErrParams, e.Key, name)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s: %s=%v", ErrParams, e.Key, name, v)
		}
	}
	if err := e.check(p); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrParams, e.Key, err)
	}

	return nil
}

// positive returns a check requiring p[name] > 0.
func positive(name string) func(Params) error {
	return func(p Params) error {
		if p[name] <= 0 {
			return fmt.Errorf("%s=%v must be positive", name, p[name])
		}
		return nil
	}
}

func probability(name string, p Params) error {
	if v := p[name]; v < 0 || v > 1 {
		return fmt.Errorf("%s=%v outside [0,1]", name, v)
	}
	return nil
}

func constant(f func(Params) float64) func(Params) (float64, error) {
	return func(p Params) (float64, error) { return f(p), nil }
}

var catalog = map[string]Entry{
	"binomial": {
		Key:      "binomial",
		Name:     `Binomial --- $\Bin(n,p)$`,
		Space:    `\{0,1,\ldots,n\}`,
		Density:  `\binom{n}{x}\,p^x(1-p)^{n-x}`,
		Mean:     `np`,
		Variance: `np(1-p)`,
		Params:   []string{"n", "p"},
		check: func(p Params) error {
			if n := p["n"]; n < 0 || n != math.Trunc(n) {
				return fmt.Errorf("n=%v must be a non-negative integer", n)
			}
			return probability("p", p)
		},
		mean:     constant(func(p Params) float64 { return p["n"] * p["p"] }),
		variance: constant(func(p Params) float64 { return p["n"] * p["p"] * (1 - p["p"]) }),
		ref: func(p Params) Distribution {
			return distuv.Binomial{N: p["n"], P: p["p"]}
		},
	},
	"chi-squared": {
		Key:      "chi-squared",
		Name:     `Chi-squared --- $\chi^2_\nu$`,
		Space:    `(0,\infty)`,
		Density:  `\frac{1}{2^{\nu/2}\Gamma(\nu/2)}x^{\nu/2-1}e^{-x/2}`,
		Mean:     `\nu`,
		Variance: `2\nu`,
		Params:   []string{"nu"},
		check:    positive("nu"),
		mean:     constant(func(p Params) float64 { return p["nu"] }),
		variance: constant(func(p Params) float64 { return 2 * p["nu"] }),
		ref: func(p Params) Distribution {
			return distuv.ChiSquared{K: p["nu"]}
		},
	},
	"exponential": {
		Key:      "exponential",
		Name:     `Exponential --- $\Exp(\lambda)$`,
		Space:    `[0,\infty)`,
		Density:  `\lambda e^{-\lambda x}`,
		Mean:     `\frac{1}{\lambda}`,
		Variance: `\frac{1}{\lambda^2}`,
		Params:   []string{"lambda"},
		check:    positive("lambda"),
		mean:     constant(func(p Params) float64 { return 1 / p["lambda"] }),
		variance: constant(func(p Params) float64 { return 1 / (p["lambda"] * p["lambda"]) }),
		ref: func(p Params) Distribution {
			return distuv.Exponential{Rate: p["lambda"]}
		},
	},
	"geometric": {
		Key:      "geometric",
		Name:     `Geometric --- $\Geom(p)$`,
		Space:    `\{1,2,\ldots\}`,
		Density:  `p(1-p)^{x-1}`,
		Mean:     `\frac{1}{p}`,
		Variance: `\frac{1-p}{p^2}`,
		Params:   []string{"p"},
		check: func(p Params) error {
			if v := p["p"]; v <= 0 || v > 1 {
				return fmt.Errorf("p=%v outside (0,1]", v)
			}
			return nil
		},
		mean:     constant(func(p Params) float64 { return 1 / p["p"] }),
		variance: constant(func(p Params) float64 { return (1 - p["p"]) / (p["p"] * p["p"]) }),
	},
	"normal": {
		Key:      "normal",
		Name:     `Normal --- $\Norm(\mu,\sigma^2)$`,
		Space:    `(-\infty,\infty)`,
		Density:  `\frac{\exp\bigl(-(x-\mu)^2/(2\sigma^2)\bigr)}{\sigma\sqrt{2\pi}}`,
		Mean:     `\mu`,
		Variance: `\sigma^2`,
		Params:   []string{"mu", "sigma"},
		check:    positive("sigma"),
		mean:     constant(func(p Params) float64 { return p["mu"] }),
		variance: constant(func(p Params) float64 { return p["sigma"] * p["sigma"] }),
		ref: func(p Params) Distribution {
			return distuv.Normal{Mu: p["mu"], Sigma: p["sigma"]}
		},
	},
	"poisson": {
		Key:      "poisson",
		Name:     `Poisson --- $\Pois(\lambda)$`,
		Space:    `\{0,1,2,\ldots\}`,
		Density:  `\frac{\lambda^x e^{-\lambda}}{x!}`,
		Mean:     `\lambda`,
		Variance: `\lambda`,
		Params:   []string{"lambda"},
		check:    positive("lambda"),
		mean:     constant(func(p Params) float64 { return p["lambda"] }),
		variance: constant(func(p Params) float64 { return p["lambda"] }),
		ref: func(p Params) Distribution {
			return distuv.Poisson{Lambda: p["lambda"]}
		},
	},
	"student-t": {
		Key:      "student-t",
		Name:     `Student's $t$ --- $t_\nu$`,
		Space:    `(-\infty,\infty)`,
		Density:  `\frac{\Gamma((\nu+1)/2)}{\sqrt{\nu\pi}\Gamma(\nu/2)}\left(1+\frac{x^2}{\nu}\right)^{-(\nu+1)/2}`,
		Mean:     `0 \ (\nu>1)`,
		Variance: `\frac{\nu}{\nu-2} \ (\nu>2)`,
		Params:   []string{"nu"},
		check:    positive("nu"),
		mean: func(p Params) (float64, error) {
			if p["nu"] <= 1 {
				return 0, fmt.Errorf("%w: t mean needs nu>1, got %v", ErrUndefinedMoment, p["nu"])
			}
			return 0, nil
		},
		variance: func(p Params) (float64, error) {
			nu := p["nu"]
			if nu <= 2 {
				return 0, fmt.Errorf("%w: t variance needs nu>2, got %v", ErrUndefinedMoment, nu)
			}
			return nu / (nu - 2), nil
		},
		ref: func(p Params) Distribution {
			return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: p["nu"]}
		},
	},
	"uniform": {
		Key:      "uniform",
		Name:     `Uniform --- $\Unif[a,b]$`,
		Space:    `[a,b]`,
		Density:  `\frac{1}{b-a}`,
		Mean:     `\frac{a+b}{2}`,
		Variance: `\frac{(b-a)^2}{12}`,
		Params:   []string{"a", "b"},
		check: func(p Params) error {
			if !(p["a"] < p["b"]) {
				return fmt.Errorf("a=%v must be below b=%v", p["a"], p["b"])
			}
			return nil
		},
		mean: constant(func(p Params) float64 { return (p["a"] + p["b"]) / 2 }),
		variance: constant(func(p Params) float64 {
			w := p["b"] - p["a"]
			return w * w / 12
		}),
		ref: func(p Params) Distribution {
			return distuv.Uniform{Min: p["a"], Max: p["b"]}
		},
	},
}

// Names returns the catalog keys in sorted order.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}

// Lookup returns a copy of the catalog entry for name.
func Lookup(name string) (Entry, error) {
	e, ok := catalog[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownDistribution, name)
	}
	e.Params = slices.Clone(e.Params)

	return e, nil
}
