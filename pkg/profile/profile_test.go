package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() *StudentProfile {
	p := New()
	p.AddCompleted(1, 20, 8.0)
	p.AddCompleted(2, 22, 8.6)
	p.AddPending(3, 21)
	p.AddPending(4, 19)
	p.ExtraCredits = 4
	p.ExtraGrade = 10
	p.Targets = []float64{8.5, 9.0}
	return p
}

func TestScore_JSONNullRoundTrip(t *testing.T) {
	pending := Score{}
	b, err := json.Marshal(pending)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b), "pending score must encode as null, never 0")

	var back Score
	require.NoError(t, json.Unmarshal(b, &back))
	assert.False(t, back.Valid)

	done := Graded(8.75)
	b, err = json.Marshal(done)
	require.NoError(t, err)
	assert.Equal(t, "8.75", string(b))

	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Valid)
	assert.Equal(t, 8.75, back.Value)
}

func TestProfile_RoundTrip(t *testing.T) {
	p := sampleProfile()

	b, err := json.Marshal(p)
	require.NoError(t, err)
	t.Logf("snapshot: %s", b)

	back := new(StudentProfile)
	require.NoError(t, json.Unmarshal(b, back))
	assert.Equal(t, p, back, "round-trip must preserve the profile exactly")

	// presence/absence survived: sem 2 completed, sem 3 pending
	assert.True(t, back.Semesters[2].Done())
	assert.False(t, back.Semesters[3].Done())
}

func TestProfile_SnapshotShape(t *testing.T) {
	p := New()
	p.AddCompleted(1, 20, 8.0)
	p.AddPending(2, 18)

	b, err := json.Marshal(p)
	require.NoError(t, err)

	// The on-disk contract: stringified indexes, explicit null sgpa.
	assert.JSONEq(t, `{
		"semesters": {
			"1": {"credits": 20, "sgpa": 8},
			"2": {"credits": 18, "sgpa": null}
		},
		"extraCredits": 0,
		"extraGrade": 10,
		"targets": [8.5, 9]
	}`, string(b))
}

func TestProfile_DefaultsOnLoad(t *testing.T) {
	raw := `{"semesters": {"1": {"credits": 20, "sgpa": 8.0}}}`

	p := new(StudentProfile)
	require.NoError(t, json.Unmarshal([]byte(raw), p))

	assert.Equal(t, 0.0, p.ExtraCredits)
	assert.Equal(t, 10.0, p.ExtraGrade)
	assert.Equal(t, []float64{8.5, 9.0}, p.Targets)
	require.Contains(t, p.Semesters, 1)
	assert.Equal(t, 1, p.Semesters[1].ID, "semester ID restored from map key")
}

func TestProfile_MalformedSnapshot(t *testing.T) {
	cases := map[string]string{
		"no semesters":  `{"extraCredits": 2}`,
		"wrong type":    `{"semesters": {"1": {"credits": "twenty", "sgpa": 8}}}`,
		"not an object": `[1, 2, 3]`,
	}
	for name, raw := range cases {
		p := new(StudentProfile)
		err := json.Unmarshal([]byte(raw), p)
		assert.Error(t, err, "case %q should fail to load", name)
	}

	p := new(StudentProfile)
	err := json.Unmarshal([]byte(`{"extraCredits": 2}`), p)
	require.ErrorIs(t, err, ErrNoSemesters)
}

func TestProfile_Partition(t *testing.T) {
	p := sampleProfile()

	done := p.Completed()
	require.Len(t, done, 2)
	assert.Equal(t, 1, done[0].ID)
	assert.Equal(t, 2, done[1].ID)

	pending := p.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, 3, pending[0].ID)
	assert.Equal(t, 4, pending[1].ID)

	// projections, not state: completing a semester moves it over
	p.Semesters[3].SGPA = Graded(9.1)
	assert.Len(t, p.Completed(), 3)
	assert.Len(t, p.Pending(), 1)
}
