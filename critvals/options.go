package critvals

import "github.com/go-logr/logr"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDigits is the number of digits passed to FormatValue.
	DefaultDigits = 3

	// DefaultFormat prints significant digits.
	DefaultFormat = FormatSig

	// DefaultCaption is the bold line printed above the table.
	DefaultCaption = `Upper quantiles: $q_\alpha$ satisfies $\Prob(X>q_\alpha)=\alpha$`

	// alphaSplit separates the left (α ≥ alphaSplit) and right α blocks.
	alphaSplit = 0.5
)

// DefaultAlphas returns the α levels used when WithAlphas is not given.
func DefaultAlphas() []float64 {
	return []float64{0.99, 0.975, 0.95, 0.9, 0.1, 0.05, 0.025, 0.01}
}

// Option mutates internal options.
type Option func(*options)

type options struct {
	alphas        []float64
	digits        int
	caption       string
	format        Format
	tDF           []int
	chiDF         []int
	sampleSize    int
	tBait         []int
	chiBait       []int
	includeTarget bool
	shuffle       bool
	seed          uint64
	logger        logr.Logger
}

// WithAlphas replaces the α levels. Duplicates are dropped and the list is
// sorted in descending order by Build.
func WithAlphas(alphas ...float64) Option {
	cp := append([]float64(nil), alphas...)
	return func(o *options) { o.alphas = cp }
}

// WithDigits sets the digit count handed to FormatValue.
func WithDigits(d int) Option {
	return func(o *options) { o.digits = d }
}

// WithCaption sets the caption; an empty or blank caption is omitted.
func WithCaption(c string) Option {
	return func(o *options) { o.caption = c }
}

// WithFormat selects significant-digit or fixed-decimal output.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithTDegrees lists explicit Student's t degrees of freedom.
func WithTDegrees(dfs ...int) Option {
	cp := append([]int(nil), dfs...)
	return func(o *options) { o.tDF = cp }
}

// WithChiDegrees lists explicit χ² degrees of freedom.
func WithChiDegrees(dfs ...int) Option {
	cp := append([]int(nil), dfs...)
	return func(o *options) { o.chiDF = cp }
}

// WithSampleSize derives target degrees of freedom from n: n−1 for t and 2n
// for χ². Values ≤ 0 disable the derivation.
func WithSampleSize(n int) Option {
	return func(o *options) { o.sampleSize = n }
}

// WithTBait sets offsets around the t target; each target+offset ≥ 1 becomes
// a row when no explicit t degrees are given. An empty list means {0}.
func WithTBait(offsets ...int) Option {
	cp := append([]int(nil), offsets...)
	return func(o *options) { o.tBait = cp }
}

// WithChiBait is WithTBait for the χ² target.
func WithChiBait(offsets ...int) Option {
	cp := append([]int(nil), offsets...)
	return func(o *options) { o.chiBait = cp }
}

// WithBaitIncludeTarget appends the derived target to explicit degree lists
// that do not already contain it.
func WithBaitIncludeTarget(include bool) Option {
	return func(o *options) { o.includeTarget = include }
}

// WithShuffle permutes the t and χ² rows. Seed 0 draws from the runtime's
// random source; any other seed gives a reproducible order.
func WithShuffle(seed uint64) Option {
	return func(o *options) {
		o.shuffle = true
		o.seed = seed
	}
}

// WithLogger receives a V(1) record for every file written.
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.logger = l }
}

func gatherOptions(opts ...Option) options {
	o := options{
		alphas:  DefaultAlphas(),
		digits:  DefaultDigits,
		caption: DefaultCaption,
		format:  DefaultFormat,
		tBait:   []int{0},
		chiBait: []int{0},
		logger:  logr.Discard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if len(o.tBait) == 0 {
		o.tBait = []int{0}
	}
	if len(o.chiBait) == 0 {
		o.chiBait = []int{0}
	}

	return o
}
