package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect_FullSession(t *testing.T) {
	// 2 completed, 1 pending, extra credits, two targets.
	in := strings.Join([]string{
		"2",
		"20", "8.0",
		"22", "8.6",
		"1",
		"21",
		"y",
		"4", "10",
		"8.5, 9.0",
	}, "\n")

	var out bytes.Buffer
	prof, err := collect(strings.NewReader(in), &out, newPalette(false))
	require.NoError(t, err)

	require.Len(t, prof.Semesters, 3)
	assert.Equal(t, 20.0, prof.Semesters[1].Credits)
	assert.True(t, prof.Semesters[1].Done())
	assert.Equal(t, 8.6, prof.Semesters[2].SGPA.Value)
	assert.False(t, prof.Semesters[3].Done(), "semester 3 collected as pending")
	assert.Equal(t, 4.0, prof.ExtraCredits)
	assert.Equal(t, 10.0, prof.ExtraGrade)
	assert.Equal(t, []float64{8.5, 9.0}, prof.Targets)

	assert.Contains(t, out.String(), "=== CGPA Predictor Setup ===")
	assert.Contains(t, out.String(), "--- Semester 3 (future) ---")
}

func TestCollect_RepromptsOnGarbage(t *testing.T) {
	// Non-numeric answers recover locally via re-prompt.
	in := strings.Join([]string{
		"one", "1",
		"twenty", "20", "8.0",
		"0",
		"n",
		"nine,lots", "9.0",
	}, "\n")

	var out bytes.Buffer
	prof, err := collect(strings.NewReader(in), &out, newPalette(false))
	require.NoError(t, err)

	require.Len(t, prof.Semesters, 1)
	assert.Equal(t, []float64{9.0}, prof.Targets)
	assert.Equal(t, 0.0, prof.ExtraCredits, "answering n keeps the default")
	assert.Equal(t, 10.0, prof.ExtraGrade)
}

func TestCollect_InputClosedMidway(t *testing.T) {
	var out bytes.Buffer
	_, err := collect(strings.NewReader("2\n20\n"), &out, newPalette(false))
	require.ErrorIs(t, err, errInputClosed, "closing stdin behaves like an interrupt")
}

func TestPrompter_FloatList(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("8.5,9, 9.5\n"), &out)
	got, err := p.floatList("targets: ")
	require.NoError(t, err)
	assert.Equal(t, []float64{8.5, 9.0, 9.5}, got)
}
