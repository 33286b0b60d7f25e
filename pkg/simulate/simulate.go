package simulate

import (
	"math"
	"math/rand/v2"

	"github.com/Autocrat2005/CGPASimulator/pkg/profile"
)

// Simulator answers two questions about a profile: what average SGPA
// the remaining semesters require to hit each target, and how likely
// each target is under named performance scenarios. All aggregates are
// precomputed once at construction; the profile is not mutated.
type Simulator struct {
	profile *profile.StudentProfile

	pastCredits []float64
	pastScores  []float64
	pastPoints  float64
	pastTotal   float64

	futureCredits []float64
	futureTotal   float64
	nFuture       int
}

// New builds a simulator from one profile snapshot. The pending order
// of the profile at construction time is the order scenario means are
// applied in.
func New(p *profile.StudentProfile) *Simulator {
	s := &Simulator{profile: p}

	for _, sem := range p.Completed() {
		s.pastCredits = append(s.pastCredits, sem.Credits)
		s.pastScores = append(s.pastScores, sem.SGPA.Value)
		s.pastPoints += sem.Credits * sem.SGPA.Value
		s.pastTotal += sem.Credits
	}
	for _, sem := range p.Pending() {
		s.futureCredits = append(s.futureCredits, sem.Credits)
		s.futureTotal += sem.Credits
	}
	s.nFuture = len(s.futureCredits)
	return s
}

// CompletedCredits returns the total credits of finished semesters.
func (s *Simulator) CompletedCredits() float64 { return s.pastTotal }

// PendingCount returns the number of semesters still to come.
func (s *Simulator) PendingCount() int { return s.nFuture }

// CurrentCGPA returns the credit-weighted average over completed
// semesters. ErrNoCompleted when nothing has been completed yet; the
// figure is undefined then and must not be rendered.
func (s *Simulator) CurrentCGPA() (float64, error) {
	if s.pastTotal == 0 {
		return 0, ErrNoCompleted
	}
	return s.pastPoints / s.pastTotal, nil
}

// RequiredAverage solves for the exact average SGPA over all remaining
// semesters that lands the final CGPA on target. The result is not
// clamped: a value above ScaleMax means the target is unreachable and
// callers surface it that way. With no remaining semesters it returns
// 0, the "nothing left to influence" sentinel.
func (s *Simulator) RequiredAverage(target float64, withExtra bool) float64 {
	finalCredits := s.pastTotal + s.futureTotal
	var offset float64
	if withExtra {
		finalCredits += s.profile.ExtraCredits
		offset = s.profile.ExtraCredits * s.profile.ExtraGrade
	}

	if s.futureTotal == 0 {
		return 0.0
	}
	return (target*finalCredits - s.pastPoints - offset) / s.futureTotal
}

// Project runs the Monte Carlo projection: for every scenario, sims
// independent draws per pending semester from N(mean, 0.3) clamped into
// [5.0, 10.0], aggregated into mean/max CGPA and per-target odds.
// A nil rng selects fresh randomness; tests inject a seeded generator
// for exact reproducibility. Returns nil for a profile with no credits
// at all.
func (s *Simulator) Project(rng *rand.Rand, sims int) []Outcome {
	if sims <= 0 {
		sims = DefaultSims
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	totalCr := s.pastTotal + s.futureTotal
	if totalCr == 0 {
		return nil
	}
	extraPts := s.profile.ExtraCredits * s.profile.ExtraGrade
	totalCrEx := totalCr + s.profile.ExtraCredits
	targets := s.profile.Targets

	scenarios := Scenarios(s.nFuture)
	outcomes := make([]Outcome, 0, len(scenarios))

	for _, sc := range scenarios {
		var sum, sumSq float64
		maxCgpa := math.Inf(-1)
		baseHits := make([]int, len(targets))
		extraHits := make([]int, len(targets))

		for i := 0; i < sims; i++ {
			var futurePts float64
			for j, mean := range sc.Means {
				score := clampScore(mean + rng.NormFloat64()*noiseSigma)
				futurePts += score * s.futureCredits[j]
			}

			base := (s.pastPoints + futurePts) / totalCr
			extra := (s.pastPoints + futurePts + extraPts) / totalCrEx

			sum += base
			sumSq += base * base
			if base > maxCgpa {
				maxCgpa = base
			}
			for k, t := range targets {
				if base >= t {
					baseHits[k]++
				}
				if extra >= t {
					extraHits[k]++
				}
			}
		}

		n := float64(sims)
		mean := sum / n
		variance := sumSq/n - mean*mean
		if variance < 0 {
			variance = 0
		}

		odds := make([]TargetOdds, len(targets))
		for k, t := range targets {
			odds[k] = TargetOdds{
				Target:    t,
				Prob:      float64(baseHits[k]) / n * 100,
				ProbExtra: float64(extraHits[k]) / n * 100,
			}
		}
		outcomes = append(outcomes, Outcome{
			Scenario: sc.Name,
			MeanCGPA: mean,
			StdDev:   math.Sqrt(variance),
			MaxCGPA:  maxCgpa,
			Targets:  odds,
		})
	}
	return outcomes
}

// clampScore truncates a simulated SGPA into the realistic band of the
// scale. NaN collapses to the floor.
func clampScore(x float64) float64 {
	if math.IsNaN(x) || x < scoreFloor {
		return scoreFloor
	}
	if x > scoreCeil {
		return scoreCeil
	}
	return x
}
