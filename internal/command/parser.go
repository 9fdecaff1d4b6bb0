package command

import (
	"math"
	"net/netip"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/user/nmapcraft/internal/model"
)

// Parse reads an nmap command line into a scan. A leading "nmap" token is
// skipped. On error no partial scan is returned.
func Parse(line string) (*model.Scan, error) {
	return ParseProgram(DefaultProgram, line)
}

// ParseProgram is Parse with a different program name to skip.
func ParseProgram(program, line string) (*model.Scan, error) {
	return ParseArgs(program, Tokenize(line))
}

// ParseArgs parses an already tokenized command line.
func ParseArgs(program string, tokens []string) (*model.Scan, error) {
	p := &parser{scan: model.New(), tokens: tokens}
	if len(tokens) > 0 && isProgram(tokens[0], program) {
		p.pos = 1
	}

	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		p.pos++
		if !strings.HasPrefix(tok, "-") || tok == "-" {
			p.scan.Target.Targets = append(p.scan.Target.Targets, tok)
			continue
		}
		if err := p.flag(tok); err != nil {
			return nil, err
		}
	}

	return p.scan, nil
}

func isProgram(tok, program string) bool {
	if program == "" {
		return false
	}
	return tok == program || filepath.Base(tok) == filepath.Base(program)
}

type arity int

const (
	argNone arity = iota
	argRequired
	// argOptional consumes the next token only when it looks like a value.
	argOptional
)

type rule struct {
	arity arity
	apply func(p *parser, flag, val string) error
}

type parser struct {
	scan   *model.Scan
	tokens []string
	pos    int

	techniqueSet bool
}

func (p *parser) peek() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	return p.tokens[p.pos], true
}

func (p *parser) flag(tok string) error {
	if r, ok := rules[tok]; ok {
		return p.run(r, tok)
	}

	if strings.HasPrefix(tok, "--") {
		if name, val, ok := strings.Cut(tok, "="); ok {
			if r, ok := rules[name]; ok && r.arity != argNone {
				return r.apply(p, name, val)
			}
		}
		return invalidFlag(tok)
	}

	if handled, err := p.stacked(tok); handled {
		return err
	}

	for _, prefix := range gluedPrefixes {
		if rest, ok := strings.CutPrefix(tok, prefix); ok && rest != "" {
			return rules[prefix].apply(p, prefix, rest)
		}
	}

	return invalidFlag(tok)
}

func (p *parser) run(r rule, flag string) error {
	switch r.arity {
	case argRequired:
		val, ok := p.peek()
		if !ok {
			return missingValue(flag)
		}
		p.pos++
		return r.apply(p, flag, val)
	case argOptional:
		val, ok := p.peek()
		if ok && looksNumeric(val) {
			p.pos++
			return r.apply(p, flag, val)
		}
		return r.apply(p, flag, "")
	}
	return r.apply(p, flag, "")
}

// stacked handles -vvv, -ddd and the level forms -v3, -d2.
func (p *parser) stacked(tok string) (bool, error) {
	if len(tok) < 2 {
		return false, nil
	}
	var counter *uint8
	switch tok[1] {
	case 'v':
		counter = &p.scan.Output.Verbose
	case 'd':
		counter = &p.scan.Output.Debug
	default:
		return false, nil
	}
	letter := tok[1]
	body := tok[1:]

	if strings.Trim(body, string(letter)) == "" {
		*counter = saturatingAdd(*counter, len(body))
		return true, nil
	}
	if level := body[1:]; isDigits(level) {
		n, err := strconv.ParseUint(level, 10, 8)
		if err != nil {
			return true, invalidValue(tok[:2], level)
		}
		*counter = uint8(n)
		return true, nil
	}
	return false, nil
}

func saturatingAdd(c uint8, n int) uint8 {
	if int(c)+n > math.MaxUint8 {
		return math.MaxUint8
	}
	return c + uint8(n)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// looksNumeric reports whether s reads as a comma list of numbers, so a
// following target address is not taken as a port list.
func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != ',' {
			return false
		}
	}
	return true
}

func (p *parser) addTechnique(t model.ScanTechnique) {
	if !p.techniqueSet {
		p.scan.Technique = t
		p.techniqueSet = true
		return
	}
	p.scan.Technique = p.scan.Technique.Add(t)
}

// gluedPrefixes are flags whose value may be attached, e.g. -p80 or -PS22,80.
var gluedPrefixes = []string{"-PS", "-PA", "-PU", "-PY", "-PO", "-p"}

func on(field func(s *model.Scan) *bool) rule {
	return rule{argNone, func(p *parser, _, _ string) error {
		*field(p.scan) = true
		return nil
	}}
}

func text(field func(s *model.Scan) **string) rule {
	return rule{argRequired, func(p *parser, _, val string) error {
		*field(p.scan) = &val
		return nil
	}}
}

func number[T uint8 | uint16 | uint32](field func(s *model.Scan) **T) rule {
	var zero T
	bits := int(8 * sizeOf(zero))
	return rule{argRequired, func(p *parser, flag, val string) error {
		n, err := strconv.ParseUint(val, 10, bits)
		if err != nil {
			return invalidValue(flag, val)
		}
		v := T(n)
		*field(p.scan) = &v
		return nil
	}}
}

func sizeOf[T uint8 | uint16 | uint32](v T) uintptr {
	switch any(v).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	}
	return 4
}

func list(field func(s *model.Scan) *[]string) rule {
	return rule{argRequired, func(p *parser, _, val string) error {
		*field(p.scan) = strings.Split(val, ",")
		return nil
	}}
}

// numbers parses a comma list, dropping entries that are not valid numbers.
func numbers[T uint8 | uint16](field func(s *model.Scan) *[]T) rule {
	var zero T
	bits := int(8 * sizeOf(zero))
	return rule{argOptional, func(p *parser, _, val string) error {
		var out []T
		for _, part := range strings.Split(val, ",") {
			if n, err := strconv.ParseUint(part, 10, bits); err == nil {
				out = append(out, T(n))
			}
		}
		*field(p.scan) = out
		return nil
	}}
}

func technique(t model.ScanTechnique) rule {
	return rule{argNone, func(p *parser, _, _ string) error {
		p.addTechnique(t)
		return nil
	}}
}

func techniqueArg(build func(string) model.ScanTechnique) rule {
	return rule{argRequired, func(p *parser, _, val string) error {
		p.addTechnique(build(val))
		return nil
	}}
}

func timing(t model.TimingTemplate) rule {
	return rule{argNone, func(p *parser, _, _ string) error {
		v := t
		p.scan.Timing.Template = &v
		return nil
	}}
}

var portRatio = rule{argRequired, func(p *parser, flag, val string) error {
	f, err := strconv.ParseFloat(val, 32)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return invalidValue(flag, val)
	}
	v := float32(f)
	p.scan.Ports.PortRatio = &v
	return nil
}}

var spoofIP = rule{argRequired, func(p *parser, flag, val string) error {
	addr, err := netip.ParseAddr(val)
	if err != nil {
		return invalidValue(flag, val)
	}
	p.scan.Evasion.SpoofIP = &addr
	return nil
}}

var ports = text(func(s *model.Scan) **string { return &s.Ports.Ports })

var sourcePort = number(func(s *model.Scan) **uint16 { return &s.Evasion.SourcePort })

var rules = map[string]rule{
	// Target specification
	"-iL":            text(func(s *model.Scan) **string { return &s.Target.InputFile }),
	"-iR":            number(func(s *model.Scan) **uint32 { return &s.Target.RandomTargets }),
	"--exclude":      list(func(s *model.Scan) *[]string { return &s.Target.Exclude }),
	"--exclude-file": text(func(s *model.Scan) **string { return &s.Target.ExcludeFile }),

	// Host discovery
	"-sL":           on(func(s *model.Scan) *bool { return &s.HostDiscovery.ListScan }),
	"-sn":           on(func(s *model.Scan) *bool { return &s.HostDiscovery.PingScan }),
	"-Pn":           on(func(s *model.Scan) *bool { return &s.HostDiscovery.SkipPortScan }),
	"-PS":           numbers(func(s *model.Scan) *[]uint16 { return &s.HostDiscovery.SYNDiscovery }),
	"-PA":           numbers(func(s *model.Scan) *[]uint16 { return &s.HostDiscovery.ACKDiscovery }),
	"-PU":           numbers(func(s *model.Scan) *[]uint16 { return &s.HostDiscovery.UDPDiscovery }),
	"-PY":           numbers(func(s *model.Scan) *[]uint16 { return &s.HostDiscovery.SCTPDiscovery }),
	"-PE":           on(func(s *model.Scan) *bool { return &s.HostDiscovery.ICMPEcho }),
	"-PP":           on(func(s *model.Scan) *bool { return &s.HostDiscovery.ICMPTimestamp }),
	"-PM":           on(func(s *model.Scan) *bool { return &s.HostDiscovery.ICMPNetmask }),
	"-PO":           numbers(func(s *model.Scan) *[]uint8 { return &s.HostDiscovery.IPProtocolPing }),
	"--dns-servers": list(func(s *model.Scan) *[]string { return &s.HostDiscovery.DNSServers }),
	"--system-dns":  on(func(s *model.Scan) *bool { return &s.HostDiscovery.SystemDNS }),
	"--traceroute":  on(func(s *model.Scan) *bool { return &s.HostDiscovery.Traceroute }),

	// Scan techniques
	"-sS":         technique(model.Syn()),
	"-sT":         technique(model.Technique(model.TechConnect)),
	"-sA":         technique(model.Technique(model.TechACK)),
	"-sW":         technique(model.Technique(model.TechWindow)),
	"-sM":         technique(model.Technique(model.TechMaimon)),
	"-sU":         technique(model.Technique(model.TechUDP)),
	"-sN":         technique(model.Technique(model.TechNull)),
	"-sF":         technique(model.Technique(model.TechFIN)),
	"-sX":         technique(model.Technique(model.TechXmas)),
	"-sY":         technique(model.SCTP(model.SCTPInit)),
	"-sZ":         technique(model.SCTP(model.SCTPCookie)),
	"-sO":         technique(model.Technique(model.TechIPProtocol)),
	"--scanflags": techniqueArg(model.Scanflags),
	"-sI":         techniqueArg(model.Idle),
	"-b":          techniqueArg(model.FTPBounce),

	// Port specification
	"-p":              ports,
	"--exclude-ports": text(func(s *model.Scan) **string { return &s.Ports.ExcludePorts }),
	"-F":              on(func(s *model.Scan) *bool { return &s.Ports.FastMode }),
	"-r":              on(func(s *model.Scan) *bool { return &s.Ports.ConsecutivePorts }),
	"--top-ports":     number(func(s *model.Scan) **uint32 { return &s.Ports.TopPorts }),
	"--port-ratio":    portRatio,

	// Service detection
	"-sV":                 on(func(s *model.Scan) *bool { return &s.Service.Enabled }),
	"--version-intensity": number(func(s *model.Scan) **uint8 { return &s.Service.Intensity }),
	"--version-light":     on(func(s *model.Scan) *bool { return &s.Service.Light }),
	"--version-all":       on(func(s *model.Scan) *bool { return &s.Service.All }),
	"--version-trace":     on(func(s *model.Scan) *bool { return &s.Service.Trace }),

	// Script scan
	"-sC":                on(func(s *model.Scan) *bool { return &s.Script.Default }),
	"--script":           list(func(s *model.Scan) *[]string { return &s.Script.Scripts }),
	"--script-args":      text(func(s *model.Scan) **string { return &s.Script.ScriptArgs }),
	"--script-args-file": text(func(s *model.Scan) **string { return &s.Script.ScriptArgsFile }),
	"--script-trace":     on(func(s *model.Scan) *bool { return &s.Script.ScriptTrace }),
	"--script-updatedb":  on(func(s *model.Scan) *bool { return &s.Script.ScriptUpdateDB }),
	"--script-help":      text(func(s *model.Scan) **string { return &s.Script.ScriptHelp }),

	// OS detection
	"-O":             on(func(s *model.Scan) *bool { return &s.OS.Enabled }),
	"--osscan-limit": on(func(s *model.Scan) *bool { return &s.OS.Limit }),
	"--osscan-guess": on(func(s *model.Scan) *bool { return &s.OS.Guess }),
	"--max-os-tries": number(func(s *model.Scan) **uint32 { return &s.OS.MaxRetries }),

	// Timing and performance
	"-T0":                     timing(model.Paranoid),
	"-T1":                     timing(model.Sneaky),
	"-T2":                     timing(model.Polite),
	"-T3":                     timing(model.Normal),
	"-T4":                     timing(model.Aggressive),
	"-T5":                     timing(model.Insane),
	"--min-hostgroup":         number(func(s *model.Scan) **uint32 { return &s.Timing.MinHostgroup }),
	"--max-hostgroup":         number(func(s *model.Scan) **uint32 { return &s.Timing.MaxHostgroup }),
	"--min-parallelism":       number(func(s *model.Scan) **uint32 { return &s.Timing.MinParallelism }),
	"--max-parallelism":       number(func(s *model.Scan) **uint32 { return &s.Timing.MaxParallelism }),
	"--min-rtt-timeout":       text(func(s *model.Scan) **string { return &s.Timing.MinRTTTimeout }),
	"--max-rtt-timeout":       text(func(s *model.Scan) **string { return &s.Timing.MaxRTTTimeout }),
	"--initial-rtt-timeout":   text(func(s *model.Scan) **string { return &s.Timing.InitialRTTTimeout }),
	"--max-retries":           number(func(s *model.Scan) **uint32 { return &s.Timing.MaxRetries }),
	"--host-timeout":          text(func(s *model.Scan) **string { return &s.Timing.HostTimeout }),
	"--script-timeout":        text(func(s *model.Scan) **string { return &s.Timing.ScriptTimeout }),
	"--scan-delay":            text(func(s *model.Scan) **string { return &s.Timing.ScanDelay }),
	"--max-scan-delay":        text(func(s *model.Scan) **string { return &s.Timing.MaxScanDelay }),
	"--min-rate":              number(func(s *model.Scan) **uint32 { return &s.Timing.MinRate }),
	"--max-rate":              number(func(s *model.Scan) **uint32 { return &s.Timing.MaxRate }),
	"--defeat-rst-ratelimit":  on(func(s *model.Scan) *bool { return &s.Timing.DefeatRSTRatelimit }),
	"--defeat-icmp-ratelimit": on(func(s *model.Scan) *bool { return &s.Timing.DefeatICMPRatelimit }),
	"--nsock-engine":          text(func(s *model.Scan) **string { return &s.Timing.NsockEngine }),

	// Evasion and spoofing
	"-f":                on(func(s *model.Scan) *bool { return &s.Evasion.FragmentPackets }),
	"--mtu":             number(func(s *model.Scan) **uint32 { return &s.Evasion.MTU }),
	"-D":                list(func(s *model.Scan) *[]string { return &s.Evasion.Decoys }),
	"-S":                spoofIP,
	"-e":                text(func(s *model.Scan) **string { return &s.Evasion.Interface }),
	"-g":                sourcePort,
	"--source-port":     sourcePort,
	"--data":            text(func(s *model.Scan) **string { return &s.Evasion.Data }),
	"--data-string":     text(func(s *model.Scan) **string { return &s.Evasion.DataString }),
	"--data-length":     number(func(s *model.Scan) **uint32 { return &s.Evasion.DataLength }),
	"--ip-options":      text(func(s *model.Scan) **string { return &s.Evasion.IPOptions }),
	"--ttl":             number(func(s *model.Scan) **uint8 { return &s.Evasion.TTL }),
	"--randomize-hosts": on(func(s *model.Scan) *bool { return &s.Evasion.RandomizeHosts }),
	"--spoof-mac":       text(func(s *model.Scan) **string { return &s.Evasion.SpoofMAC }),
	"--badsum":          on(func(s *model.Scan) *bool { return &s.Evasion.Badsum }),
	"--adler32":         on(func(s *model.Scan) *bool { return &s.Evasion.Adler32 }),

	// Output
	"-oN":             text(func(s *model.Scan) **string { return &s.Output.Normal }),
	"-oX":             text(func(s *model.Scan) **string { return &s.Output.XML }),
	"-oS":             text(func(s *model.Scan) **string { return &s.Output.ScriptKiddie }),
	"-oG":             text(func(s *model.Scan) **string { return &s.Output.Grepable }),
	"-oA":             text(func(s *model.Scan) **string { return &s.Output.AllFormats }),
	"--reason":        on(func(s *model.Scan) *bool { return &s.Output.Reason }),
	"--stats-every":   text(func(s *model.Scan) **string { return &s.Output.StatsEvery }),
	"--packet-trace":  on(func(s *model.Scan) *bool { return &s.Output.PacketTrace }),
	"--open":          on(func(s *model.Scan) *bool { return &s.Output.OpenOnly }),
	"--iflist":        on(func(s *model.Scan) *bool { return &s.Output.IfList }),
	"--append-output": on(func(s *model.Scan) *bool { return &s.Output.AppendOutput }),
	"--resume":        text(func(s *model.Scan) **string { return &s.Output.Resume }),
	"--stylesheet":    text(func(s *model.Scan) **string { return &s.Output.Stylesheet }),
	"--webxml":        on(func(s *model.Scan) *bool { return &s.Output.WebXML }),
	"--no-stylesheet": on(func(s *model.Scan) *bool { return &s.Output.NoStylesheet }),

	// Misc
	"-6":               on(func(s *model.Scan) *bool { return &s.Misc.IPv6 }),
	"-A":               on(func(s *model.Scan) *bool { return &s.Misc.Aggressive }),
	"--datadir":        text(func(s *model.Scan) **string { return &s.Misc.DataDir }),
	"--send-eth":       on(func(s *model.Scan) *bool { return &s.Misc.SendEth }),
	"--send-ip":        on(func(s *model.Scan) *bool { return &s.Misc.SendIP }),
	"--privileged":     on(func(s *model.Scan) *bool { return &s.Misc.Privileged }),
	"--unprivileged":   on(func(s *model.Scan) *bool { return &s.Misc.Unprivileged }),
	"--release-memory": on(func(s *model.Scan) *bool { return &s.Misc.ReleaseMemory }),
	"-V":               on(func(s *model.Scan) *bool { return &s.Misc.Version }),
	"--version":        on(func(s *model.Scan) *bool { return &s.Misc.Version }),
	"-h":               on(func(s *model.Scan) *bool { return &s.Misc.Help }),
	"--help":           on(func(s *model.Scan) *bool { return &s.Misc.Help }),
	"-R":               on(func(s *model.Scan) *bool { return &s.Misc.ResolveAll }),
	"-n":               on(func(s *model.Scan) *bool { return &s.Misc.NoResolve }),
	"--unique":         on(func(s *model.Scan) *bool { return &s.Misc.Unique }),
	"--log-errors":     on(func(s *model.Scan) *bool { return &s.Misc.LogErrors }),
}

// Flags returns every flag spelling the parser accepts, sorted.
func Flags() []string {
	out := make([]string, 0, len(rules)+2)
	for name := range rules {
		out = append(out, name)
	}
	out = append(out, "-v", "-d")
	sort.Strings(out)
	return out
}
