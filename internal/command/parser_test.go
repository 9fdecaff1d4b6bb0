package command

import (
	"errors"
	"net/netip"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/nmapcraft/internal/model"
)

var addrComparer = cmp.Comparer(func(a, b netip.Addr) bool { return a == b })

func sampleScan() *model.Scan {
	s := model.New()
	s.Target.Targets = []string{"192.168.1.0/24", "scanme.nmap.org"}
	s.Target.ExcludeFile = model.Ptr("skip list.txt")
	s.HostDiscovery.SkipPortScan = true
	s.HostDiscovery.SYNDiscovery = []uint16{22, 443}
	s.HostDiscovery.IPProtocolPing = []uint8{1, 2}
	s.HostDiscovery.DNSServers = []string{"1.1.1.1", "8.8.8.8"}
	s.Technique = model.Multiple(model.Syn(), model.Technique(model.TechUDP), model.Scanflags("URGACKPSH"))
	s.Ports.Ports = model.Ptr("1-1024")
	s.Ports.TopPorts = model.Ptr(uint32(100))
	s.Ports.PortRatio = model.Ptr(float32(0.25))
	s.Service.Enabled = true
	s.Service.Intensity = model.Ptr(uint8(7))
	s.Script.Scripts = []string{"http-title", "ssl-cert"}
	s.Script.ScriptArgs = model.Ptr(`user="admin",pass=x y`)
	s.OS.Enabled = true
	s.OS.MaxRetries = model.Ptr(uint32(2))
	tpl := model.Polite
	s.Timing.Template = &tpl
	s.Timing.HostTimeout = model.Ptr("30m")
	s.Timing.MinRate = model.Ptr(uint32(50))
	addr := netip.MustParseAddr("2001:db8::1")
	s.Evasion.SpoofIP = &addr
	s.Evasion.Decoys = []string{"10.0.0.9", "ME"}
	s.Evasion.SourcePort = model.Ptr(uint16(53))
	s.Evasion.TTL = model.Ptr(uint8(64))
	s.Evasion.DataString = model.Ptr(`back\slash "and" quotes`)
	s.Output.XML = model.Ptr("/tmp/out.xml")
	s.Output.Verbose = 3
	s.Output.Debug = 2
	s.Output.OpenOnly = true
	s.Misc.IPv6 = true
	s.Misc.NoResolve = true
	return s
}

func TestParseBasic(t *testing.T) {
	s, err := Parse("nmap -sS -p 80,443 192.168.1.1")
	require.NoError(t, err)
	assert.Equal(t, model.Syn(), s.Technique)
	require.NotNil(t, s.Ports.Ports)
	assert.Equal(t, "80,443", *s.Ports.Ports)
	assert.Equal(t, []string{"192.168.1.1"}, s.Target.Targets)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		sentinel error
		msg      string
	}{
		{"bad number", "nmap -iR not-a-number host", ErrInvalidValue, "invalid value 'not-a-number' for flag -iR"},
		{"unknown flag", "nmap --bogus-flag host", ErrInvalidFlag, "invalid flag: --bogus-flag"},
		{"missing value", "nmap -p", ErrMissingValue, "missing value for flag -p"},
		{"bad address", "nmap -S 999.1.1.1", ErrInvalidValue, "invalid value '999.1.1.1' for flag -S"},
		{"octet overflow", "nmap --ttl 256", ErrInvalidValue, "invalid value '256' for flag --ttl"},
		{"bad timing", "nmap -T9", ErrInvalidFlag, "invalid flag: -T9"},
		{"flag without value", "nmap --open=yes", ErrInvalidFlag, "invalid flag: --open=yes"},
		{"bad level", "nmap -v999", ErrInvalidValue, "invalid value '999' for flag -v"},
		{"bad ratio", "nmap --port-ratio NaN", ErrInvalidValue, "invalid value 'NaN' for flag --port-ratio"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Parse(tc.in)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, tc.sentinel))
			assert.EqualError(t, err, tc.msg)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
		})
	}
}

func TestParseErrorKinds(t *testing.T) {
	err := &ParseError{Kind: ConflictingFlags, Flag: "-sL", Other: "-sn"}
	assert.EqualError(t, err, "conflicting flags: -sL and -sn")
	assert.ErrorIs(t, err, ErrConflictingFlags)
	assert.NotErrorIs(t, err, ErrInvalidFlag)
}

func TestParseEquivalentSpellings(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"glued ports", "nmap -p80", "nmap -p 80"},
		{"all ports", "nmap -p-", "nmap -p -"},
		{"glued discovery", "nmap -PS22,80 host", "nmap -PS 22,80 host"},
		{"long equals", "nmap --top-ports=10 --script=a,b", "nmap --top-ports 10 --script a,b"},
		{"source port alias", "nmap -g 53", "nmap --source-port 53"},
		{"version alias", "nmap -V", "nmap --version"},
		{"help alias", "nmap -h", "nmap --help"},
		{"stacked verbose", "nmap -vvv", "nmap -v -v -v"},
		{"verbose level", "nmap -v3", "nmap -vv -v"},
		{"debug level", "nmap -d2", "nmap -dd"},
		{"program path", "/usr/local/bin/nmap -sU", "nmap -sU"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := Parse(tc.a)
			require.NoError(t, err)
			b, err := Parse(tc.b)
			require.NoError(t, err)
			if diff := cmp.Diff(b.Normalize(), a.Normalize(), addrComparer); diff != "" {
				t.Errorf("mismatch (-%q +%q):\n%s", tc.b, tc.a, diff)
			}
		})
	}
}

func TestParseDiscoveryLists(t *testing.T) {
	s, err := Parse("nmap -PS22,x,80 -PO -PU 10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, []uint16{22, 80}, s.HostDiscovery.SYNDiscovery)
	assert.Nil(t, s.HostDiscovery.IPProtocolPing)
	assert.Nil(t, s.HostDiscovery.UDPDiscovery)
	assert.Equal(t, []string{"10.0.0.1"}, s.Target.Targets)
}

func TestParseRepetition(t *testing.T) {
	s, err := Parse("nmap -p 22 -p 80 --script a,b --script c")
	require.NoError(t, err)
	assert.Equal(t, "80", *s.Ports.Ports)
	assert.Equal(t, []string{"c"}, s.Script.Scripts)
}

func TestParseTechniques(t *testing.T) {
	tests := []struct {
		in   string
		want model.ScanTechnique
	}{
		{"nmap host", model.Syn()},
		{"nmap -sT", model.Technique(model.TechConnect)},
		{"nmap -sT -sU", model.Multiple(model.Technique(model.TechConnect), model.Technique(model.TechUDP))},
		{"nmap -sI z1 -sU -sI z2", model.Multiple(model.Idle("z2"), model.Technique(model.TechUDP))},
		{"nmap -sS -sS", model.Syn()},
		{"nmap -sY -sZ", model.Multiple(model.SCTP(model.SCTPInit), model.SCTP(model.SCTPCookie))},
		{"nmap --scanflags SYNFIN -b ftp.example.com", model.Multiple(model.Scanflags("SYNFIN"), model.FTPBounce("ftp.example.com"))},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			s, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.Technique)
		})
	}
}

func TestParseQuotedValues(t *testing.T) {
	s, err := Parse(`nmap --data-string "a b" --script-args "x=\"1\"" -e ""`)
	require.NoError(t, err)
	assert.Equal(t, "a b", *s.Evasion.DataString)
	assert.Equal(t, `x="1"`, *s.Script.ScriptArgs)
	assert.Equal(t, "", *s.Evasion.Interface)
	assert.Empty(t, s.Target.Targets)
}

func TestParseCustomProgram(t *testing.T) {
	s, err := ParseProgram("sudo-nmap", "sudo-nmap -F host")
	require.NoError(t, err)
	assert.True(t, s.Ports.FastMode)
	assert.Equal(t, []string{"host"}, s.Target.Targets)

	s, err = Parse("-F host")
	require.NoError(t, err)
	assert.Equal(t, []string{"host"}, s.Target.Targets)
}

func TestRoundTrip(t *testing.T) {
	scans := map[string]*model.Scan{
		"default": model.New(),
		"sample":  sampleScan(),
	}

	many := model.New()
	many.Output.Verbose = 255
	many.Output.Debug = 1
	scans["saturated verbosity"] = many

	empties := model.New()
	empties.Target.Targets = []string{""}
	empties.Script.ScriptHelp = model.Ptr("")
	empties.Technique = model.Multiple()
	scans["empty values"] = empties

	for name, s := range scans {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(Build(s))
			require.NoError(t, err, "command: %s", Build(s))
			if diff := cmp.Diff(s.Normalize(), got.Normalize(), addrComparer); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s\ncommand: %s", diff, Build(s))
			}

			args := BuildArgs(s)
			fromArgs, err := ParseArgs(DefaultProgram, args)
			require.NoError(t, err)
			if diff := cmp.Diff(s.Normalize(), fromArgs.Normalize(), addrComparer); diff != "" {
				t.Errorf("argv round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlagsAreRecognized(t *testing.T) {
	all := Flags()
	require.True(t, sort.StringsAreSorted(all))
	assert.Contains(t, all, "-sS")
	assert.Contains(t, all, "-v")

	for _, f := range all {
		_, err := Parse("nmap " + f)
		assert.False(t, errors.Is(err, ErrInvalidFlag), "%s: %v", f, err)
	}
}
