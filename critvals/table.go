package critvals

import (
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// Row is one distribution line of the table.
type Row struct {
	Dist  string    // first cell; "{}" on continuation rows
	Label string    // quantile symbol, e.g. $t_{9,\alpha}$
	Left  []float64 // values for Table.LeftAlphas
	Right []float64 // values for Table.RightAlphas
}

// Table is a resolved critical-value table. Blocks are separated by \midrule
// when rendered; empty blocks are skipped.
type Table struct {
	Caption     string
	LeftAlphas  []float64
	RightAlphas []float64
	Blocks      [][]Row
	TDegrees    []int
	ChiDegrees  []int

	digits int
	format Format
}

// Build resolves opts into a Table.
// Implementation:
//   - Stage 1 (Validate): digits, α values and explicit degrees of freedom.
//   - Stage 2 (Prepare): de-duplicate/sort α, split into blocks; derive and
//     order degrees of freedom.
//   - Stage 3 (Execute): evaluate inverse survival functions per row.
func Build(opts ...Option) (*Table, error) {
	o := gatherOptions(opts...)
	if o.digits < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrDigits, o.digits)
	}
	if o.format != FormatSig && o.format != FormatDec {
		return nil, fmt.Errorf("%w: %v", ErrFormat, o.format)
	}
	if len(o.alphas) == 0 {
		return nil, ErrNoAlphas
	}
	for _, a := range o.alphas {
		if !(a > 0 && a < 1) {
			return nil, fmt.Errorf("%w: got %v", ErrAlphaRange, a)
		}
	}
	for _, nu := range append(slices.Clone(o.tDF), o.chiDF...) {
		if nu < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrDegreesOfFreedom, nu)
		}
	}

	left, right := splitAlphas(o.alphas)
	tDF, chiDF := resolveDegrees(o)

	t := &Table{
		Caption:     o.caption,
		LeftAlphas:  left,
		RightAlphas: right,
		TDegrees:    tDF,
		ChiDegrees:  chiDF,
		digits:      o.digits,
		format:      o.format,
	}

	normal := distuv.UnitNormal
	t.Blocks = append(t.Blocks, []Row{t.row(`$\mathrm{Norm}(0,1)$`, `$z_\alpha$`, normal.Quantile)})

	var tRows []Row
	for i, nu := range tDF {
		dist := `{}`
		if i == 0 {
			dist = `$t_\nu$`
		}
		st := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(nu)}
		tRows = append(tRows, t.row(dist, fmt.Sprintf(`$t_{%d,\alpha}$`, nu), st.Quantile))
	}
	t.Blocks = append(t.Blocks, tRows)

	var chiRows []Row
	for i, nu := range chiDF {
		dist := `{}`
		if i == 0 {
			dist = `$\chi^2_\nu$`
		}
		chi := distuv.ChiSquared{K: float64(nu)}
		chiRows = append(chiRows, t.row(dist, fmt.Sprintf(`$\chi^2_{%d,\alpha}$`, nu), chi.Quantile))
	}
	t.Blocks = append(t.Blocks, chiRows)

	return t, nil
}

// row evaluates the upper quantile (inverse survival function) at every α.
func (t *Table) row(dist, label string, quantile func(p float64) float64) Row {
	isf := func(alphas []float64) []float64 {
		out := make([]float64, len(alphas))
		for i, a := range alphas {
			out[i] = quantile(1 - a)
		}
		return out
	}

	return Row{Dist: dist, Label: label, Left: isf(t.LeftAlphas), Right: isf(t.RightAlphas)}
}

// splitAlphas de-duplicates (first occurrence wins), sorts descending and
// splits at alphaSplit; when one side would be empty it splits at len/2.
func splitAlphas(alphas []float64) (left, right []float64) {
	uniq := uniqueFloats(alphas)
	slices.SortFunc(uniq, func(a, b float64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})
	for _, a := range uniq {
		if a >= alphaSplit {
			left = append(left, a)
		} else {
			right = append(right, a)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		m := len(uniq) / 2
		left, right = uniq[:m:m], uniq[m:]
	}

	return left, right
}

// resolveDegrees applies the sample-size targets, bait offsets, ordering and
// optional shuffle to the t and χ² degree lists.
func resolveDegrees(o options) (tDF, chiDF []int) {
	tDF = slices.Clone(o.tDF)
	chiDF = slices.Clone(o.chiDF)

	if o.sampleSize > 0 {
		tTarget := o.sampleSize - 1
		chiTarget := 2 * o.sampleSize
		tDF = withTarget(tDF, tTarget, o.tBait, o.includeTarget)
		chiDF = withTarget(chiDF, chiTarget, o.chiBait, o.includeTarget)
	}

	tDF = uniqueInts(tDF)
	slices.Sort(tDF)
	chiDF = uniqueInts(chiDF)
	slices.Sort(chiDF)

	if o.shuffle {
		shuffle := rand.Shuffle
		if o.seed != 0 {
			shuffle = rand.New(rand.NewPCG(o.seed, o.seed)).Shuffle
		}
		shuffle(len(tDF), func(i, j int) { tDF[i], tDF[j] = tDF[j], tDF[i] })
		shuffle(len(chiDF), func(i, j int) { chiDF[i], chiDF[j] = chiDF[j], chiDF[i] })
	}

	return tDF, chiDF
}

// withTarget derives target+offset rows when explicit is empty, otherwise
// optionally appends the target.
func withTarget(explicit []int, target int, offsets []int, includeTarget bool) []int {
	if len(explicit) == 0 {
		var out []int
		for _, k := range offsets {
			if target+k >= 1 {
				out = append(out, target+k)
			}
		}
		return out
	}
	if includeTarget && !slices.Contains(explicit, target) {
		explicit = append(explicit, target)
	}

	return explicit
}

func uniqueFloats(xs []float64) []float64 {
	seen := make(map[float64]struct{}, len(xs))
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}

func uniqueInts(xs []int) []int {
	seen := make(map[int]struct{}, len(xs))
	out := make([]int, 0, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}

// ColSpec returns the tabular column specification: two label columns, the
// left α block, a spaced rule, the right α block.
func (t *Table) ColSpec() string {
	return "rl" + strings.Repeat("c", len(t.LeftAlphas)) +
		`@{\hspace{0.6em}}|@{\hspace{0.6em}}` +
		strings.Repeat("c", len(t.RightAlphas))
}

func (t *Table) header() string {
	hl := make([]string, len(t.LeftAlphas))
	for i, a := range t.LeftAlphas {
		hl[i] = "$" + formatAlpha(a) + "$"
	}
	hr := make([]string, len(t.RightAlphas))
	for i, a := range t.RightAlphas {
		hr[i] = "$" + formatAlpha(a) + "$"
	}

	return `$X$ & $\alpha$ & ` + strings.Join(hl, " & ") + " & " + strings.Join(hr, " & ") + ` \\`
}

func (t *Table) line(r Row) string {
	cells := func(vs []float64) string {
		s := make([]string, len(vs))
		for i, v := range vs {
			s[i] = FormatValue(v, t.digits, t.format)
		}
		return strings.Join(s, " & ")
	}

	return r.Dist + " & " + r.Label + " & " + cells(r.Left) + " & " + cells(r.Right) + ` \\`
}

// Lines returns the LaTeX source, one element per line, ending with an empty
// line.
func (t *Table) Lines() []string {
	lines := []string{`\begin{center}`, `\small`}
	if strings.TrimSpace(t.Caption) != "" {
		lines = append(lines, `\textbf{`+t.Caption+`}`, "")
	}
	lines = append(lines, `\begin{tabular}{`+t.ColSpec()+`}`, t.header(), `\toprule`)

	first := true
	for _, block := range t.Blocks {
		if len(block) == 0 {
			continue
		}
		if !first {
			lines = append(lines, `\midrule`)
		}
		first = false
		for _, r := range block {
			lines = append(lines, t.line(r))
		}
	}

	return append(lines, `\bottomrule`, `\end{tabular}`, `\end{center}`, "")
}

// WriteTo writes the rendered table to w. It implements io.WriterTo.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, strings.Join(t.Lines(), "\n")+"\n")
	return int64(n), err
}

// Render builds the table from opts and writes it to w.
func Render(w io.Writer, opts ...Option) error {
	t, err := Build(opts...)
	if err != nil {
		return err
	}
	_, err = t.WriteTo(w)

	return err
}

// WriteFile renders the table to path, creating parent directories.
func WriteFile(path string, opts ...Option) error {
	var buf bytes.Buffer
	if err := Render(&buf, opts...); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("critvals: create output dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("critvals: write %s: %w", path, err)
	}
	gatherOptions(opts...).logger.V(1).Info("wrote critical value table", "path", path, "bytes", buf.Len())

	return nil
}
