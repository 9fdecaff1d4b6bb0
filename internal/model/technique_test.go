package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsDefault(t *testing.T) {
	s := New()
	assert.Equal(t, TechSYN, s.Technique.Kind)
	assert.Nil(t, s.Target.Targets)
	assert.Nil(t, s.Timing.Template)
	assert.Zero(t, s.Output.Verbose)
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		in   ScanTechnique
		want []ScanTechnique
	}{
		{"single", Technique(TechUDP), []ScanTechnique{Technique(TechUDP)}},
		{"empty composite", Multiple(), []ScanTechnique{Syn()}},
		{
			"nested",
			Multiple(Syn(), Multiple(Technique(TechUDP), SCTP(SCTPCookie))),
			[]ScanTechnique{Syn(), Technique(TechUDP), SCTP(SCTPCookie)},
		},
		{
			"repeat keeps first position and last payload",
			Multiple(Idle("a"), Syn(), Idle("b")),
			[]ScanTechnique{Idle("b"), Syn()},
		},
		{
			"sctp subtypes are distinct",
			Multiple(SCTP(SCTPInit), SCTP(SCTPCookie)),
			[]ScanTechnique{SCTP(SCTPInit), SCTP(SCTPCookie)},
		},
		{
			"stray payload on flag-only case is dropped",
			ScanTechnique{Kind: TechACK, Arg: "junk"},
			[]ScanTechnique{Technique(TechACK)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.in.Flatten()); diff != "" {
				t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAdd(t *testing.T) {
	got := Technique(TechConnect).Add(Technique(TechUDP))
	assert.Equal(t, Multiple(Technique(TechConnect), Technique(TechUDP)), got)

	got = got.Add(Technique(TechConnect))
	assert.Equal(t, Multiple(Technique(TechConnect), Technique(TechUDP)), got)

	got = Idle("z1").Add(Idle("z2"))
	assert.Equal(t, Idle("z2"), got)
}

func TestCloneIsDeep(t *testing.T) {
	s := New()
	s.Target.Targets = []string{"a"}
	s.Ports.Ports = Ptr("80")
	s.Technique = Multiple(Syn(), Technique(TechUDP))

	c := s.Clone()
	c.Target.Targets[0] = "b"
	*c.Ports.Ports = "443"
	c.Technique.Members[0] = Technique(TechFIN)

	require.Equal(t, "a", s.Target.Targets[0])
	assert.Equal(t, "80", *s.Ports.Ports)
	assert.Equal(t, TechSYN, s.Technique.Members[0].Kind)
}

func TestNormalize(t *testing.T) {
	a := New()
	a.Target.Targets = []string{}
	a.Technique = Multiple(Multiple(Technique(TechUDP)))

	b := New()
	b.Technique = Technique(TechUDP)

	if diff := cmp.Diff(b.Normalize(), a.Normalize()); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestTimingTemplateString(t *testing.T) {
	assert.Equal(t, "aggressive", Aggressive.String())
	assert.True(t, Insane.Valid())
	assert.False(t, TimingTemplate(6).Valid())
	assert.Len(t, TimingTemplates, 6)
}
