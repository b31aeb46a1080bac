package critvals_test

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statclass/critvals"
)

const defaultTable = `\begin{center}
\small
\textbf{Upper quantiles: $q_\alpha$ satisfies $\Prob(X>q_\alpha)=\alpha$}

\begin{tabular}{rlcccc@{\hspace{0.6em}}|@{\hspace{0.6em}}cccc}
$X$ & $\alpha$ & $0.99$ & $0.975$ & $0.95$ & $0.9$ & $0.1$ & $0.05$ & $0.025$ & $0.01$ \\
\toprule
$\mathrm{Norm}(0,1)$ & $z_\alpha$ & -2.33 & -1.96 & -1.64 & -1.28 & 1.28 & 1.64 & 1.96 & 2.33 \\
\bottomrule
\end{tabular}
\end{center}

`

func TestRender_Defaults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, critvals.Render(&buf))
	assert.Equal(t, defaultTable, buf.String())
}

func TestBuild_Validation(t *testing.T) {
	cases := []struct {
		name string
		opts []critvals.Option
		err  error
	}{
		{"NoAlphas", []critvals.Option{critvals.WithAlphas()}, critvals.ErrNoAlphas},
		{"AlphaZero", []critvals.Option{critvals.WithAlphas(0.5, 0)}, critvals.ErrAlphaRange},
		{"AlphaOne", []critvals.Option{critvals.WithAlphas(1)}, critvals.ErrAlphaRange},
		{"Digits", []critvals.Option{critvals.WithDigits(0)}, critvals.ErrDigits},
		{"TDegrees", []critvals.Option{critvals.WithTDegrees(3, 0)}, critvals.ErrDegreesOfFreedom},
		{"ChiDegrees", []critvals.Option{critvals.WithChiDegrees(-2)}, critvals.ErrDegreesOfFreedom},
		{"Format", []critvals.Option{critvals.WithFormat(critvals.Format(9))}, critvals.ErrFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := critvals.Build(tc.opts...)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, tbl)
		})
	}
}

func TestBuild_AlphaSplit(t *testing.T) {
	tbl, err := critvals.Build(critvals.WithAlphas(0.05, 0.95, 0.05, 0.5, 0.01))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.95, 0.5}, tbl.LeftAlphas)
	assert.Equal(t, []float64{0.05, 0.01}, tbl.RightAlphas)

	// All α on one side: split in the middle of the sorted list.
	tbl, err = critvals.Build(critvals.WithAlphas(0.01, 0.1, 0.05))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1}, tbl.LeftAlphas)
	assert.Equal(t, []float64{0.05, 0.01}, tbl.RightAlphas)
	assert.Equal(t, `rlc@{\hspace{0.6em}}|@{\hspace{0.6em}}cc`, tbl.ColSpec())
}

// TestBuild_Quantiles compares against published table values.
func TestBuild_Quantiles(t *testing.T) {
	tbl, err := critvals.Build(
		critvals.WithAlphas(0.95, 0.05, 0.025, 0.01),
		critvals.WithTDegrees(9),
		critvals.WithChiDegrees(10),
	)
	require.NoError(t, err)
	require.Len(t, tbl.Blocks, 3)

	z := tbl.Blocks[0][0]
	assert.InDelta(t, -1.644854, z.Left[0], 1e-5)
	assert.InDeltaSlice(t, []float64{1.644854, 1.959964, 2.326348}, z.Right, 1e-5)

	tRow := tbl.Blocks[1][0]
	assert.Equal(t, `$t_\nu$`, tRow.Dist)
	assert.Equal(t, `$t_{9,\alpha}$`, tRow.Label)
	assert.InDeltaSlice(t, []float64{1.833113, 2.262157, 2.821438}, tRow.Right, 1e-4)

	chi := tbl.Blocks[2][0]
	assert.Equal(t, `$\chi^2_\nu$`, chi.Dist)
	assert.InDelta(t, 3.940299, chi.Left[0], 1e-4)
	assert.InDeltaSlice(t, []float64{18.307038, 20.483177, 23.209251}, chi.Right, 1e-3)

	lines := tbl.Lines()
	assert.Contains(t, lines, `$\mathrm{Norm}(0,1)$ & $z_\alpha$ & -1.64 & 1.64 & 1.96 & 2.33 \\`)
	assert.Contains(t, lines, `$t_\nu$ & $t_{9,\alpha}$ & -1.83 & 1.83 & 2.26 & 2.82 \\`)
	assert.Contains(t, lines, `$\chi^2_\nu$ & $\chi^2_{10,\alpha}$ & 3.94 & 18.3 & 20.5 & 23.2 \\`)
	assert.Equal(t, 2, countLines(lines, `\midrule`))
}

func TestBuild_Midrules(t *testing.T) {
	tbl, err := critvals.Build(critvals.WithTDegrees(4, 2))
	require.NoError(t, err)
	lines := tbl.Lines()
	assert.Equal(t, 1, countLines(lines, `\midrule`))
	assert.Equal(t, []int{2, 4}, tbl.TDegrees)

	// Continuation rows leave the distribution cell empty.
	assert.True(t, strings.HasPrefix(tbl.Blocks[1][1].Dist, `{}`))

	tbl, err = critvals.Build(critvals.WithCaption("  "))
	require.NoError(t, err)
	lines = tbl.Lines()
	assert.Equal(t, 0, countLines(lines, `\midrule`))
	assert.NotContains(t, strings.Join(lines, "\n"), `\textbf`)
}

func TestBuild_SampleSizeAndBait(t *testing.T) {
	tbl, err := critvals.Build(critvals.WithSampleSize(10))
	require.NoError(t, err)
	assert.Equal(t, []int{9}, tbl.TDegrees)
	assert.Equal(t, []int{20}, tbl.ChiDegrees)

	tbl, err = critvals.Build(
		critvals.WithSampleSize(2),
		critvals.WithTBait(1, -1, 0, 1),
		critvals.WithChiBait(-2, 2),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, tbl.TDegrees, "offsets producing df < 1 are dropped")
	assert.Equal(t, []int{2, 6}, tbl.ChiDegrees)

	tbl, err = critvals.Build(
		critvals.WithSampleSize(10),
		critvals.WithTDegrees(30, 5),
		critvals.WithChiDegrees(20),
		critvals.WithBaitIncludeTarget(true),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 9, 30}, tbl.TDegrees)
	assert.Equal(t, []int{20}, tbl.ChiDegrees)

	tbl, err = critvals.Build(critvals.WithSampleSize(10), critvals.WithTDegrees(5))
	require.NoError(t, err)
	assert.Equal(t, []int{5}, tbl.TDegrees, "explicit dfs win without include-target")
}

func TestBuild_ShuffleIsSeeded(t *testing.T) {
	opts := []critvals.Option{
		critvals.WithTDegrees(1, 2, 3, 4, 5, 6, 7, 8),
		critvals.WithChiDegrees(10, 20, 30, 40),
		critvals.WithShuffle(42),
	}
	a, err := critvals.Build(opts...)
	require.NoError(t, err)
	b, err := critvals.Build(opts...)
	require.NoError(t, err)
	assert.Equal(t, a.TDegrees, b.TDegrees)
	assert.Equal(t, a.ChiDegrees, b.ChiDegrees)

	sorted := slices.Clone(a.TDegrees)
	slices.Sort(sorted)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, sorted)
	assert.Equal(t, len(a.TDegrees), len(a.Blocks[1]))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build", "nested", "critvals.tex")
	require.NoError(t, critvals.WriteFile(path, critvals.WithFormat(critvals.FormatDec)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `& 1.645 &`)
	assert.True(t, strings.HasSuffix(string(data), "\\end{center}\n\n"))

	require.ErrorIs(t, critvals.WriteFile(path, critvals.WithDigits(-1)), critvals.ErrDigits)
}

func countLines(lines []string, want string) int {
	n := 0
	for _, l := range lines {
		if l == want {
			n++
		}
	}
	return n
}
