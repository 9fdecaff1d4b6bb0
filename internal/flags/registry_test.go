package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/nmapcraft/internal/model"
)

func TestResolvedKindMatchesDeclared(t *testing.T) {
	s := model.New()
	for _, id := range Enumerate() {
		f := Lookup(id)
		acc := Resolve(s, id)
		assert.Equal(t, f.Kind, acc.Kind(), "field %s", f.Name)
	}
}

func TestEnumerateIsStableCopy(t *testing.T) {
	a := Enumerate()
	a[0] = FieldLogErrors
	b := Enumerate()
	assert.Equal(t, FieldTargets, b[0])
	assert.Len(t, b, int(fieldCount))
	assert.Equal(t, First(), b[0])
}

func TestCycle(t *testing.T) {
	for _, id := range Enumerate() {
		assert.Equal(t, id, Next(Prev(id)))
		assert.Equal(t, id, Prev(Next(id)))
	}

	assert.Equal(t, First(), Next(FieldLogErrors))
	assert.Equal(t, FieldLogErrors, Prev(First()))

	id := First()
	for i := 0; i < len(Enumerate()); i++ {
		id = Next(id)
	}
	assert.Equal(t, First(), id)
}

func TestMetadata(t *testing.T) {
	id, ok := ByName("spoof-ip")
	require.True(t, ok)
	assert.Equal(t, FieldSpoofIP, id)
	assert.Equal(t, "-S", Lookup(id).Flag)
	assert.Equal(t, SectionEvasion, Lookup(id).Section)

	_, ok = ByName("nope")
	assert.False(t, ok)

	n, ok := VariantArity(FieldTimingTemplate)
	require.True(t, ok)
	assert.Equal(t, 6, n)
	n, ok = VariantArity(FieldTechnique)
	require.True(t, ok)
	assert.Equal(t, 15, n)
	_, ok = VariantArity(FieldPorts)
	assert.False(t, ok)

	assert.Len(t, Sections(), 11)
	assert.Equal(t, []FieldID{FieldTechnique, FieldTechniqueArg}, InSection(SectionTechnique))
}

func TestTypeMismatchPanics(t *testing.T) {
	s := model.New()
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*TypeMismatchError)
		require.True(t, ok)
		assert.Equal(t, KindOptionalString, err.Got)
		assert.Equal(t, KindBool, err.Want)
	}()
	Bool(s, FieldPorts)
}

func TestAccessorsAreIndependent(t *testing.T) {
	s := model.New()
	ports := String(s, FieldPorts)
	fast := Bool(s, FieldFastMode)
	verbose := Int(s, FieldVerbose)

	require.NoError(t, ports.Set("80,443"))
	fast.Toggle()
	require.NoError(t, verbose.Set(2))

	assert.Equal(t, "80,443", *s.Ports.Ports)
	assert.True(t, s.Ports.FastMode)
	assert.Equal(t, uint8(2), s.Output.Verbose)

	other := model.New()
	Bool(other, FieldFastMode).Set(false)
	assert.True(t, s.Ports.FastMode)
}

func TestIntBounds(t *testing.T) {
	s := model.New()
	acc := Int(s, FieldVersionIntensity)
	assert.Error(t, acc.Set(10))
	assert.Nil(t, s.Service.Intensity)
	require.NoError(t, acc.Set(9))
	v, ok := acc.Get()
	assert.True(t, ok)
	assert.Equal(t, 9, v)
	acc.Clear()
	assert.Nil(t, s.Service.Intensity)

	assert.Error(t, IntList(s, FieldSYNDiscovery).Set([]int{80, 70000}))
	assert.Nil(t, s.HostDiscovery.SYNDiscovery)
}

func TestListCopies(t *testing.T) {
	s := model.New()
	acc := StringList(s, FieldDecoys)
	in := []string{"a", "ME", "a"}
	acc.Set(in)
	in[0] = "z"
	assert.Equal(t, []string{"a", "ME", "a"}, s.Evasion.Decoys)

	out := acc.Get()
	out[0] = "y"
	assert.Equal(t, "a", s.Evasion.Decoys[0])
}

func TestSpoofIPValidates(t *testing.T) {
	s := model.New()
	acc := String(s, FieldSpoofIP)
	assert.Error(t, acc.Set("not-an-ip"))
	assert.Nil(t, s.Evasion.SpoofIP)
	require.NoError(t, acc.Set("10.0.0.1"))
	v, ok := acc.Get()
	assert.True(t, ok)
	assert.Equal(t, "10.0.0.1", v)
}

func TestTechniqueChoice(t *testing.T) {
	s := model.New()
	choice := Choice(s, FieldTechnique)
	arg := String(s, FieldTechniqueArg)

	i, ok := choice.Get()
	require.True(t, ok)
	assert.Equal(t, "SYN", choice.Labels()[i])

	assert.Error(t, arg.Set("zombie"))

	require.NoError(t, choice.Set(13))
	assert.Equal(t, model.TechIdle, s.Technique.Kind)
	require.NoError(t, arg.Set("zombie"))
	require.NoError(t, choice.Set(14))
	assert.Equal(t, model.FTPBounce("zombie"), s.Technique)

	s.Technique = model.Multiple(model.Syn(), model.Technique(model.TechUDP))
	_, ok = choice.Get()
	assert.False(t, ok)
	assert.Equal(t, "syn+udp", Format(choice))
	require.NoError(t, choice.Set(9))
	assert.Equal(t, model.SCTP(model.SCTPInit), s.Technique)

	choice.Clear()
	assert.Equal(t, model.Syn(), s.Technique)
	assert.Error(t, choice.Set(15))
}

func TestAssignAndFormat(t *testing.T) {
	s := model.New()
	tests := []struct {
		id   FieldID
		in   string
		want string
	}{
		{FieldFastMode, "yes", "true"},
		{FieldTopPorts, "100", "100"},
		{FieldPortRatio, "0.25", "0.25"},
		{FieldPorts, "1-1024", "1-1024"},
		{FieldInputFile, "/tmp/hosts", "/tmp/hosts"},
		{FieldScripts, "http-title, ssl-cert", "http-title,ssl-cert"},
		{FieldUDPDiscovery, "53,161", "53,161"},
		{FieldTimingTemplate, "4", "T4 aggressive"},
		{FieldTimingTemplate, "t2 polite", "T2 polite"},
		{FieldTechnique, "udp", "UDP"},
		{FieldTimingTemplate, "T3", "T3 normal"},
		{FieldTechnique, "idle", "Idle"},
	}
	for _, tc := range tests {
		t.Run(Lookup(tc.id).Name+"="+tc.in, func(t *testing.T) {
			acc := Resolve(s, tc.id)
			require.NoError(t, Assign(acc, tc.in))
			assert.Equal(t, tc.want, Format(acc))
			assert.True(t, IsSet(acc))
		})
	}

	require.NoError(t, Assign(Resolve(s, FieldTopPorts), ""))
	assert.Nil(t, s.Ports.TopPorts)

	assert.Error(t, Assign(Resolve(s, FieldTopPorts), "many"))
	assert.Error(t, Assign(Resolve(s, FieldUDPDiscovery), "53,dns"))
	assert.Equal(t, []uint16{53, 161}, s.HostDiscovery.UDPDiscovery)
	assert.Error(t, Assign(Resolve(s, FieldFastMode), "maybe"))
	assert.Error(t, Assign(Resolve(s, FieldTechnique), "warp"))
	assert.ErrorContains(t, Assign(Resolve(s, FieldTechnique), "sctp"), "ambiguous")
	assert.Error(t, Assign(Resolve(s, FieldPortRatio), "2"))
}
