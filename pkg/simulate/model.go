package simulate

// Grading scale and noise model constants. Scores are grade points on
// a 0..10 scale; simulated outcomes below 5.0 or above 10.0 are not
// physically meaningful and get truncated, not resampled.
const (
	// ScaleMax is the maximum grade point of the scale. A required
	// average above it means the target is out of reach no matter the
	// performance.
	ScaleMax = 10.0

	// DefaultSims is the sample count used when the caller passes a
	// non-positive count to Project.
	DefaultSims = 5000

	scoreFloor = 5.0
	scoreCeil  = 10.0
	noiseSigma = 0.3
)

// Scenario is a named hypothesis about future performance: one target
// mean SGPA per pending semester, in the profile's pending order.
type Scenario struct {
	Name  string
	Means []float64
}

// Scenarios builds the scenario table for the given number of pending
// semesters. It is a pure function of that count and returns fresh
// slices on every call. Order is fixed: the four flat built-ins first,
// then (with at least two semesters left) a strategy that front-loads
// effort onto the next semester only.
func Scenarios(pending int) []Scenario {
	flat := func(name string, mean float64) Scenario {
		means := make([]float64, pending)
		for i := range means {
			means[i] = mean
		}
		return Scenario{Name: name, Means: means}
	}

	out := []Scenario{
		flat("Chill Mode (~8.0)", 8.0),
		flat("Consistent (~8.5)", 8.5),
		flat("Push Hard (~9.2)", 9.2),
		flat("Topper Mode (~9.6)", 9.6),
	}
	if pending >= 2 {
		mixed := flat("Push Next Sem Only", 8.5)
		mixed.Means[0] = 9.2
		out = append(out, mixed)
	}
	return out
}

// TargetOdds is the estimated chance of reaching one target CGPA,
// with and without extra credits folded in. Values are percentages.
type TargetOdds struct {
	Target    float64 `json:"target"`
	Prob      float64 `json:"probability"`
	ProbExtra float64 `json:"probability_with_extra"`
}

// Outcome aggregates one scenario's Monte Carlo run.
type Outcome struct {
	Scenario string       `json:"scenario"`
	MeanCGPA float64      `json:"mean_cgpa"`
	StdDev   float64      `json:"std_dev"`
	MaxCGPA  float64      `json:"max_cgpa"`
	Targets  []TargetOdds `json:"targets"`
}

// Verdict classifies how realistic a target is given the best
// with-extra probability across all scenarios.
type Verdict int

const (
	VerdictUnreachable Verdict = iota
	VerdictDifficult
	VerdictAchievable
)

// Classify maps a best-case probability (percent) to a verdict.
// Thresholds are fixed: below 1% unreachable, below 50% difficult.
func Classify(maxProbExtra float64) Verdict {
	switch {
	case maxProbExtra < 1:
		return VerdictUnreachable
	case maxProbExtra < 50:
		return VerdictDifficult
	default:
		return VerdictAchievable
	}
}

func (v Verdict) String() string {
	switch v {
	case VerdictUnreachable:
		return "Impossible/Highly Unlikely"
	case VerdictDifficult:
		return "Difficult"
	case VerdictAchievable:
		return "Achievable"
	default:
		return "Unknown"
	}
}

// MaxExtraProbability returns the best with-extra probability for the
// target at index k across all outcomes, or 0 with no outcomes.
func MaxExtraProbability(outcomes []Outcome, k int) float64 {
	var best float64
	for _, o := range outcomes {
		if k < len(o.Targets) && o.Targets[k].ProbExtra > best {
			best = o.Targets[k].ProbExtra
		}
	}
	return best
}
