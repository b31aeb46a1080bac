package distributions_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statclass/distributions"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"binomial", "chi-squared", "exponential", "geometric",
		"normal", "poisson", "student-t", "uniform",
	}, distributions.Names())
}

// testParams is one valid parameterisation per catalog entry.
var testParams = map[string]distributions.Params{
	"binomial":    {"n": 10, "p": 0.3},
	"chi-squared": {"nu": 7},
	"exponential": {"lambda": 4},
	"geometric":   {"p": 0.25},
	"normal":      {"mu": -1, "sigma": 3},
	"poisson":     {"lambda": 2.5},
	"student-t":   {"nu": 6},
	"uniform":     {"a": 1, "b": 7},
}

// TestMoments_MatchGonum evaluates each μ/σ² formula and compares it with the
// gonum distribution built from the same parameters.
func TestMoments_MatchGonum(t *testing.T) {
	for _, name := range distributions.Names() {
		t.Run(name, func(t *testing.T) {
			e, err := distributions.Lookup(name)
			require.NoError(t, err)
			require.Equal(t, name, e.Key)
			p, ok := testParams[name]
			require.True(t, ok, "missing test parameters")

			mean, err := e.MeanAt(p)
			require.NoError(t, err)
			variance, err := e.VarianceAt(p)
			require.NoError(t, err)

			d, err := e.Distribution(p)
			if name == "geometric" {
				require.ErrorIs(t, err, distributions.ErrNoReference)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, d.Mean(), mean, 1e-12)
			assert.InDelta(t, d.Variance(), variance, 1e-12)
		})
	}
}

// TestGeometric_Series checks the geometric formulas against truncated sums
// of x·ρ(x) and x²·ρ(x).
func TestGeometric_Series(t *testing.T) {
	e, err := distributions.Lookup("geometric")
	require.NoError(t, err)
	const p = 0.25

	var m1, m2 float64
	for x := 1; x <= 400; x++ {
		rho := p * math.Pow(1-p, float64(x-1))
		m1 += float64(x) * rho
		m2 += float64(x*x) * rho
	}
	mean, err := e.MeanAt(distributions.Params{"p": p})
	require.NoError(t, err)
	variance, err := e.VarianceAt(distributions.Params{"p": p})
	require.NoError(t, err)
	assert.InDelta(t, m1, mean, 1e-9)
	assert.InDelta(t, m2-m1*m1, variance, 1e-9)
}

func TestParams_Errors(t *testing.T) {
	binomial, _ := distributions.Lookup("binomial")
	_, err := binomial.MeanAt(distributions.Params{"n": 10})
	require.ErrorIs(t, err, distributions.ErrParams)
	_, err = binomial.MeanAt(distributions.Params{"n": 2.5, "p": 0.5})
	require.ErrorIs(t, err, distributions.ErrParams)
	_, err = binomial.Distribution(distributions.Params{"n": 3, "p": 1.5})
	require.ErrorIs(t, err, distributions.ErrParams)

	uniform, _ := distributions.Lookup("uniform")
	_, err = uniform.VarianceAt(distributions.Params{"a": 2, "b": 2})
	require.ErrorIs(t, err, distributions.ErrParams)

	normal, _ := distributions.Lookup("normal")
	_, err = normal.MeanAt(distributions.Params{"mu": math.NaN(), "sigma": 1})
	require.ErrorIs(t, err, distributions.ErrParams)

	studentT, _ := distributions.Lookup("student-t")
	_, err = studentT.MeanAt(distributions.Params{"nu": 1})
	require.ErrorIs(t, err, distributions.ErrUndefinedMoment)
	_, err = studentT.VarianceAt(distributions.Params{"nu": 2})
	require.ErrorIs(t, err, distributions.ErrUndefinedMoment)
	v, err := studentT.VarianceAt(distributions.Params{"nu": 3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestDistribution_Density(t *testing.T) {
	normal, _ := distributions.Lookup("normal")
	d, err := normal.Distribution(distributions.Params{"mu": 0, "sigma": 1})
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), d.Prob(0), 1e-15)
}

func TestLookup_ReturnsCopy(t *testing.T) {
	e, _ := distributions.Lookup("uniform")
	e.Params[0] = "x"
	again, _ := distributions.Lookup("uniform")
	assert.Equal(t, []string{"a", "b"}, again.Params)
}

func TestLookup_Unknown(t *testing.T) {
	_, err := distributions.Lookup("cauchy")
	require.ErrorIs(t, err, distributions.ErrUnknownDistribution)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, distributions.Render(&buf, "poisson", "exponential"))

	want := strings.Join([]string{
		`\begin{center}`,
		`\small`,
		`\begin{tabular}{`,
		`c`,
		`>{$ \displaystyle}c<{$}`,
		`>{$ \displaystyle}c<{$}`,
		`>{$ \displaystyle}c<{$}`,
		`>{$ \displaystyle}c<{$}`,
		`}`,
		`Distribution & \text{Sample Space} & \varrho(x) & \mu & \sigma^2 \\`,
		`\toprule`,
		`Exponential --- $\Exp(\lambda)$ & [0,\infty) & \lambda e^{-\lambda x} & \frac{1}{\lambda} & \frac{1}{\lambda^2} \\`,
		`Poisson --- $\Pois(\lambda)$ & \{0,1,2,\ldots\} & \frac{\lambda^x e^{-\lambda}}{x!} & \lambda & \lambda \\`,
		`\bottomrule`,
		`\end{tabular}`,
		`\end{center}`,
		``,
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRender_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, distributions.Render(&buf), distributions.ErrNoDistributions)
	require.ErrorIs(t, distributions.Render(&buf, "normal", "gamma"), distributions.ErrUnknownDistribution)
	assert.Zero(t, buf.Len(), "nothing is written when validation fails")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build", "distributions.tex")
	require.NoError(t, distributions.WriteFile(path, "uniform", "binomial"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Less(t, strings.Index(text, "Binomial"), strings.Index(text, "Uniform"))
}
