package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Autocrat2005/CGPASimulator/pkg/profile"
)

// errInputClosed reports stdin closing mid-collection (Ctrl-D).
// Treated like an interrupt: clean exit message, no error semantics.
var errInputClosed = errors.New("cgpasim: input closed")

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(r), out: w}
}

func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// intVal re-prompts until the answer parses. Malformed input never
// propagates past the prompt loop.
func (p *prompter) intVal(label string) (int, error) {
	for {
		s, err := p.line(label)
		if err != nil {
			return 0, err
		}
		if v, err := strconv.Atoi(s); err == nil {
			return v, nil
		}
	}
}

func (p *prompter) floatVal(label string) (float64, error) {
	for {
		s, err := p.line(label)
		if err != nil {
			return 0, err
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v, nil
		}
	}
}

func (p *prompter) yes(label string) (bool, error) {
	s, err := p.line(label)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(s, "y"), nil
}

// floatList parses a comma-separated list, re-prompting until every
// element parses and at least one is present.
func (p *prompter) floatList(label string) ([]float64, error) {
	for {
		s, err := p.line(label)
		if err != nil {
			return nil, err
		}
		parts := strings.Split(s, ",")
		out := make([]float64, 0, len(parts))
		ok := len(parts) > 0
		for _, part := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				ok = false
				break
			}
			out = append(out, v)
		}
		if ok && len(out) > 0 {
			return out, nil
		}
	}
}

// collect walks the interactive setup: completed semesters, remaining
// semesters, extra credits, target CGPAs.
func collect(r io.Reader, w io.Writer, pal palette) (*profile.StudentProfile, error) {
	p := newPrompter(r, w)
	fmt.Fprintln(w, pal.cyan("\n=== CGPA Predictor Setup ==="))

	prof := profile.New()

	nDone, err := p.intVal("How many semesters have you completed so far? ")
	if err != nil {
		return nil, err
	}
	for i := 1; i <= nDone; i++ {
		fmt.Fprintf(w, "\n--- Semester %d ---\n", i)
		cr, err := p.floatVal(fmt.Sprintf("Credits for Sem %d: ", i))
		if err != nil {
			return nil, err
		}
		sg, err := p.floatVal(fmt.Sprintf("SGPA for Sem %d: ", i))
		if err != nil {
			return nil, err
		}
		prof.AddCompleted(i, cr, sg)
	}

	nFuture, err := p.intVal("\nHow many semesters are left? ")
	if err != nil {
		return nil, err
	}
	for i := nDone + 1; i <= nDone+nFuture; i++ {
		fmt.Fprintf(w, "\n--- Semester %d (future) ---\n", i)
		cr, err := p.floatVal(fmt.Sprintf("Credits for Sem %d: ", i))
		if err != nil {
			return nil, err
		}
		prof.AddPending(i, cr)
	}

	extra, err := p.yes("\nDo you have extra credits (clubs, sports, NSS)? (y/n): ")
	if err != nil {
		return nil, err
	}
	if extra {
		cr, err := p.floatVal("Total extra credits: ")
		if err != nil {
			return nil, err
		}
		gr, err := p.floatVal("Grade point for these (usually 10): ")
		if err != nil {
			return nil, err
		}
		prof.ExtraCredits = cr
		prof.ExtraGrade = gr
	}

	targets, err := p.floatList("\nEnter target CGPAs (comma separated, e.g. 8.5, 9.0): ")
	if err != nil {
		return nil, err
	}
	prof.Targets = targets

	return prof, nil
}
