// Package command converts scans to nmap command lines and back.
package command

import (
	"strconv"
	"strings"

	"github.com/user/nmapcraft/internal/model"
)

// DefaultProgram is the program name commands start with.
const DefaultProgram = "nmap"

// Build renders s as an nmap command line.
func Build(s *model.Scan) string {
	return BuildFor(DefaultProgram, s)
}

// BuildFor renders s as a command line starting with program.
func BuildFor(program string, s *model.Scan) string {
	args := BuildArgs(s)
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, Quote(program))
	for _, a := range args {
		parts = append(parts, Quote(a))
	}
	return strings.Join(parts, " ")
}

// BuildArgs returns the arguments Build would print, unquoted and without
// the program name.
func BuildArgs(s *model.Scan) []string {
	var a argv
	a.hostDiscovery(&s.HostDiscovery)
	a.technique(s.Technique)
	a.ports(&s.Ports)
	a.service(&s.Service)
	a.script(&s.Script)
	a.os(&s.OS)
	a.timing(&s.Timing)
	a.evasion(&s.Evasion)
	a.output(&s.Output)
	a.misc(&s.Misc)
	a.target(&s.Target)
	return a
}

type argv []string

func (a *argv) flag(on bool, name string) {
	if on {
		*a = append(*a, name)
	}
}

func (a *argv) str(name string, v *string) {
	if v != nil {
		*a = append(*a, name, *v)
	}
}

func (a *argv) list(name string, v []string) {
	if len(v) > 0 {
		*a = append(*a, name, strings.Join(v, ","))
	}
}

// glued emits a numeric list attached to its flag, e.g. -PS22,80.
func glued[T uint8 | uint16](a *argv, name string, v []T) {
	if len(v) == 0 {
		return
	}
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.FormatUint(uint64(n), 10)
	}
	*a = append(*a, name+strings.Join(parts, ","))
}

func num[T uint8 | uint16 | uint32](a *argv, name string, v *T) {
	if v != nil {
		*a = append(*a, name, strconv.FormatUint(uint64(*v), 10))
	}
}

// count emits a stacked level: 1 is -v, 2 is -vv, anything higher repeats -v.
func (a *argv) count(name string, n uint8) {
	switch n {
	case 0:
	case 1:
		*a = append(*a, name)
	case 2:
		*a = append(*a, name+name[1:])
	default:
		for i := uint8(0); i < n; i++ {
			*a = append(*a, name)
		}
	}
}

func (a *argv) hostDiscovery(hd *model.HostDiscovery) {
	a.flag(hd.ListScan, "-sL")
	a.flag(hd.PingScan, "-sn")
	a.flag(hd.SkipPortScan, "-Pn")
	glued(a, "-PS", hd.SYNDiscovery)
	glued(a, "-PA", hd.ACKDiscovery)
	glued(a, "-PU", hd.UDPDiscovery)
	glued(a, "-PY", hd.SCTPDiscovery)
	a.flag(hd.ICMPEcho, "-PE")
	a.flag(hd.ICMPTimestamp, "-PP")
	a.flag(hd.ICMPNetmask, "-PM")
	glued(a, "-PO", hd.IPProtocolPing)
	a.list("--dns-servers", hd.DNSServers)
	a.flag(hd.SystemDNS, "--system-dns")
	a.flag(hd.Traceroute, "--traceroute")
}

var techniqueFlags = map[model.TechniqueKind]string{
	model.TechSYN:        "-sS",
	model.TechConnect:    "-sT",
	model.TechACK:        "-sA",
	model.TechWindow:     "-sW",
	model.TechMaimon:     "-sM",
	model.TechUDP:        "-sU",
	model.TechNull:       "-sN",
	model.TechFIN:        "-sF",
	model.TechXmas:       "-sX",
	model.TechIPProtocol: "-sO",
	model.TechScanflags:  "--scanflags",
	model.TechIdle:       "-sI",
	model.TechFTPBounce:  "-b",
}

func (a *argv) technique(t model.ScanTechnique) {
	switch t.Kind {
	case model.TechMultiple:
		for _, m := range t.Members {
			a.technique(m)
		}
	case model.TechSCTP:
		if t.SCTP == model.SCTPCookie {
			*a = append(*a, "-sZ")
		} else {
			*a = append(*a, "-sY")
		}
	default:
		name, ok := techniqueFlags[t.Kind]
		if !ok {
			return
		}
		*a = append(*a, name)
		if t.Kind.HasPayload() {
			*a = append(*a, t.Arg)
		}
	}
}

func (a *argv) ports(p *model.PortSpecification) {
	a.str("-p", p.Ports)
	a.str("--exclude-ports", p.ExcludePorts)
	a.flag(p.FastMode, "-F")
	a.flag(p.ConsecutivePorts, "-r")
	num(a, "--top-ports", p.TopPorts)
	if p.PortRatio != nil {
		*a = append(*a, "--port-ratio", strconv.FormatFloat(float64(*p.PortRatio), 'g', -1, 32))
	}
}

func (a *argv) service(sd *model.ServiceDetection) {
	a.flag(sd.Enabled, "-sV")
	num(a, "--version-intensity", sd.Intensity)
	a.flag(sd.Light, "--version-light")
	a.flag(sd.All, "--version-all")
	a.flag(sd.Trace, "--version-trace")
}

func (a *argv) script(ss *model.ScriptScan) {
	a.flag(ss.Default, "-sC")
	a.list("--script", ss.Scripts)
	a.str("--script-args", ss.ScriptArgs)
	a.str("--script-args-file", ss.ScriptArgsFile)
	a.flag(ss.ScriptTrace, "--script-trace")
	a.flag(ss.ScriptUpdateDB, "--script-updatedb")
	a.str("--script-help", ss.ScriptHelp)
}

func (a *argv) os(od *model.OSDetection) {
	a.flag(od.Enabled, "-O")
	a.flag(od.Limit, "--osscan-limit")
	a.flag(od.Guess, "--osscan-guess")
	num(a, "--max-os-tries", od.MaxRetries)
}

func (a *argv) timing(tp *model.TimingPerformance) {
	if tp.Template != nil {
		*a = append(*a, "-T"+strconv.Itoa(int(*tp.Template)))
	}
	num(a, "--min-hostgroup", tp.MinHostgroup)
	num(a, "--max-hostgroup", tp.MaxHostgroup)
	num(a, "--min-parallelism", tp.MinParallelism)
	num(a, "--max-parallelism", tp.MaxParallelism)
	a.str("--min-rtt-timeout", tp.MinRTTTimeout)
	a.str("--max-rtt-timeout", tp.MaxRTTTimeout)
	a.str("--initial-rtt-timeout", tp.InitialRTTTimeout)
	num(a, "--max-retries", tp.MaxRetries)
	a.str("--host-timeout", tp.HostTimeout)
	a.str("--script-timeout", tp.ScriptTimeout)
	a.str("--scan-delay", tp.ScanDelay)
	a.str("--max-scan-delay", tp.MaxScanDelay)
	num(a, "--min-rate", tp.MinRate)
	num(a, "--max-rate", tp.MaxRate)
	a.flag(tp.DefeatRSTRatelimit, "--defeat-rst-ratelimit")
	a.flag(tp.DefeatICMPRatelimit, "--defeat-icmp-ratelimit")
	a.str("--nsock-engine", tp.NsockEngine)
}

func (a *argv) evasion(es *model.EvasionSpoofing) {
	a.flag(es.FragmentPackets, "-f")
	num(a, "--mtu", es.MTU)
	a.list("-D", es.Decoys)
	if es.SpoofIP != nil {
		*a = append(*a, "-S", es.SpoofIP.String())
	}
	a.str("-e", es.Interface)
	num(a, "-g", es.SourcePort)
	a.str("--data", es.Data)
	a.str("--data-string", es.DataString)
	num(a, "--data-length", es.DataLength)
	a.str("--ip-options", es.IPOptions)
	num(a, "--ttl", es.TTL)
	a.flag(es.RandomizeHosts, "--randomize-hosts")
	a.str("--spoof-mac", es.SpoofMAC)
	a.flag(es.Badsum, "--badsum")
	a.flag(es.Adler32, "--adler32")
}

func (a *argv) output(o *model.OutputOptions) {
	a.str("-oN", o.Normal)
	a.str("-oX", o.XML)
	a.str("-oS", o.ScriptKiddie)
	a.str("-oG", o.Grepable)
	a.str("-oA", o.AllFormats)
	a.count("-v", o.Verbose)
	a.count("-d", o.Debug)
	a.flag(o.Reason, "--reason")
	a.str("--stats-every", o.StatsEvery)
	a.flag(o.PacketTrace, "--packet-trace")
	a.flag(o.OpenOnly, "--open")
	a.flag(o.IfList, "--iflist")
	a.flag(o.AppendOutput, "--append-output")
	a.str("--resume", o.Resume)
	a.str("--stylesheet", o.Stylesheet)
	a.flag(o.WebXML, "--webxml")
	a.flag(o.NoStylesheet, "--no-stylesheet")
}

func (a *argv) misc(m *model.MiscOptions) {
	a.flag(m.IPv6, "-6")
	a.flag(m.Aggressive, "-A")
	a.str("--datadir", m.DataDir)
	a.flag(m.SendEth, "--send-eth")
	a.flag(m.SendIP, "--send-ip")
	a.flag(m.Privileged, "--privileged")
	a.flag(m.Unprivileged, "--unprivileged")
	a.flag(m.ReleaseMemory, "--release-memory")
	a.flag(m.Version, "-V")
	a.flag(m.Help, "-h")
	a.flag(m.ResolveAll, "-R")
	a.flag(m.NoResolve, "-n")
	a.flag(m.Unique, "--unique")
	a.flag(m.LogErrors, "--log-errors")
}

func (a *argv) target(t *model.TargetSpecification) {
	a.str("-iL", t.InputFile)
	num(a, "-iR", t.RandomTargets)
	a.list("--exclude", t.Exclude)
	a.str("--exclude-file", t.ExcludeFile)
	*a = append(*a, t.Targets...)
}
