package flags

import (
	"math"

	"github.com/user/nmapcraft/internal/model"
)

// FieldID identifies one editable field of a scan.
type FieldID int

const (
	FieldTargets FieldID = iota
	FieldInputFile
	FieldRandomTargets
	FieldExclude
	FieldExcludeFile

	FieldListScan
	FieldPingScan
	FieldSkipPortScan
	FieldSYNDiscovery
	FieldACKDiscovery
	FieldUDPDiscovery
	FieldSCTPDiscovery
	FieldICMPEcho
	FieldICMPTimestamp
	FieldICMPNetmask
	FieldIPProtocolPing
	FieldDNSServers
	FieldSystemDNS
	FieldTraceroute

	FieldTechnique
	FieldTechniqueArg

	FieldPorts
	FieldExcludePorts
	FieldFastMode
	FieldConsecutivePorts
	FieldTopPorts
	FieldPortRatio

	FieldServiceDetection
	FieldVersionIntensity
	FieldVersionLight
	FieldVersionAll
	FieldVersionTrace

	FieldDefaultScripts
	FieldScripts
	FieldScriptArgs
	FieldScriptArgsFile
	FieldScriptTrace
	FieldScriptUpdateDB
	FieldScriptHelp

	FieldOSDetection
	FieldOSScanLimit
	FieldOSScanGuess
	FieldMaxOSTries

	FieldTimingTemplate
	FieldMinHostgroup
	FieldMaxHostgroup
	FieldMinParallelism
	FieldMaxParallelism
	FieldMinRTTTimeout
	FieldMaxRTTTimeout
	FieldInitialRTTTimeout
	FieldMaxRetries
	FieldHostTimeout
	FieldScriptTimeout
	FieldScanDelay
	FieldMaxScanDelay
	FieldMinRate
	FieldMaxRate
	FieldDefeatRSTRatelimit
	FieldDefeatICMPRatelimit
	FieldNsockEngine

	FieldFragment
	FieldMTU
	FieldDecoys
	FieldSpoofIP
	FieldInterface
	FieldSourcePort
	FieldData
	FieldDataString
	FieldDataLength
	FieldIPOptions
	FieldTTL
	FieldRandomizeHosts
	FieldSpoofMAC
	FieldBadsum
	FieldAdler32

	FieldOutputNormal
	FieldOutputXML
	FieldOutputScriptKiddie
	FieldOutputGrepable
	FieldOutputAll
	FieldVerbose
	FieldDebug
	FieldReason
	FieldStatsEvery
	FieldPacketTrace
	FieldOpenOnly
	FieldIfList
	FieldAppendOutput
	FieldResume
	FieldStylesheet
	FieldWebXML
	FieldNoStylesheet

	FieldIPv6
	FieldAggressive
	FieldDataDir
	FieldSendEth
	FieldSendIP
	FieldPrivileged
	FieldUnprivileged
	FieldReleaseMemory
	FieldVersion
	FieldHelp
	FieldResolveAll
	FieldNoResolve
	FieldUnique
	FieldLogErrors

	fieldCount
)

// Section groups fields the way nmap's help groups its options.
type Section int

const (
	SectionTarget Section = iota
	SectionHostDiscovery
	SectionTechnique
	SectionPorts
	SectionService
	SectionScript
	SectionOS
	SectionTiming
	SectionEvasion
	SectionOutput
	SectionMisc
)

var sectionNames = [...]string{
	SectionTarget:        "Target Specification",
	SectionHostDiscovery: "Host Discovery",
	SectionTechnique:     "Scan Technique",
	SectionPorts:         "Port Specification",
	SectionService:       "Service Detection",
	SectionScript:        "Script Scan",
	SectionOS:            "OS Detection",
	SectionTiming:        "Timing & Performance",
	SectionEvasion:       "Evasion & Spoofing",
	SectionOutput:        "Output",
	SectionMisc:          "Misc",
}

func (s Section) String() string {
	if int(s) >= 0 && int(s) < len(sectionNames) {
		return sectionNames[s]
	}
	return "unknown"
}

// Sections returns every section in display order.
func Sections() []Section {
	out := make([]Section, len(sectionNames))
	for i := range out {
		out[i] = Section(i)
	}
	return out
}

// Field is the static description of one field.
type Field struct {
	ID      FieldID
	Name    string
	Label   string
	Flag    string
	Section Section
	Kind    Kind
	Help    string
	Choices []string

	bind func(*model.Scan) Accessor
}

var timingLabels = []string{
	"T0 paranoid", "T1 sneaky", "T2 polite", "T3 normal", "T4 aggressive", "T5 insane",
}

var techniqueLabels = []string{
	"SYN", "Connect", "ACK", "Window", "Maimon", "UDP", "Null", "FIN", "Xmas",
	"SCTP INIT", "SCTP COOKIE-ECHO", "IP protocol", "Scanflags", "Idle", "FTP bounce",
}

var techniqueChoices = []model.ScanTechnique{
	model.Syn(),
	model.Technique(model.TechConnect),
	model.Technique(model.TechACK),
	model.Technique(model.TechWindow),
	model.Technique(model.TechMaimon),
	model.Technique(model.TechUDP),
	model.Technique(model.TechNull),
	model.Technique(model.TechFIN),
	model.Technique(model.TechXmas),
	model.SCTP(model.SCTPInit),
	model.SCTP(model.SCTPCookie),
	model.Technique(model.TechIPProtocol),
	model.Scanflags(""),
	model.Idle(""),
	model.FTPBounce(""),
}

const (
	maxPort  = math.MaxUint16
	maxUint8 = math.MaxUint8
	maxU32   = math.MaxUint32
)

var fields = [...]Field{
	// Target specification
	{FieldTargets, "targets", "Targets", "", SectionTarget, KindStringList, "Hosts, networks or ranges to scan", nil,
		func(s *model.Scan) Accessor { return stringList(&s.Target.Targets) }},
	{FieldInputFile, "input-file", "Input file", "-iL", SectionTarget, KindOptionalPath, "Read targets from a file", nil,
		func(s *model.Scan) Accessor { return pathField(&s.Target.InputFile) }},
	{FieldRandomTargets, "random-targets", "Random targets", "-iR", SectionTarget, KindOptionalInt, "Choose this many random targets", nil,
		func(s *model.Scan) Accessor { return optionalUint(&s.Target.RandomTargets, 0, maxU32) }},
	{FieldExclude, "exclude", "Exclude", "--exclude", SectionTarget, KindStringList, "Hosts or networks to skip", nil,
		func(s *model.Scan) Accessor { return stringList(&s.Target.Exclude) }},
	{FieldExcludeFile, "exclude-file", "Exclude file", "--exclude-file", SectionTarget, KindOptionalPath, "Read excluded hosts from a file", nil,
		func(s *model.Scan) Accessor { return pathField(&s.Target.ExcludeFile) }},

	// Host discovery
	{FieldListScan, "list-scan", "List scan", "-sL", SectionHostDiscovery, KindBool, "List targets without scanning", nil,
		func(s *model.Scan) Accessor { return boolField(&s.HostDiscovery.ListScan) }},
	{FieldPingScan, "ping-scan", "Ping scan", "-sn", SectionHostDiscovery, KindBool, "Host discovery only, no port scan", nil,
		func(s *model.Scan) Accessor { return boolField(&s.HostDiscovery.PingScan) }},
	{FieldSkipPortScan, "skip-discovery", "Skip discovery", "-Pn", SectionHostDiscovery, KindBool, "Treat all hosts as online", nil,
		func(s *model.Scan) Accessor { return boolField(&s.HostDiscovery.SkipPortScan) }},
	{FieldSYNDiscovery, "syn-discovery", "TCP SYN discovery", "-PS", SectionHostDiscovery, KindIntList, "TCP SYN ping to these ports", nil,
		func(s *model.Scan) Accessor { return uintList(&s.HostDiscovery.SYNDiscovery, maxPort) }},
	{FieldACKDiscovery, "ack-discovery", "TCP ACK discovery", "-PA", SectionHostDiscovery, KindIntList, "TCP ACK ping to these ports", nil,
		func(s *model.Scan) Accessor { return uintList(&s.HostDiscovery.ACKDiscovery, maxPort) }},
	{FieldUDPDiscovery, "udp-discovery", "UDP discovery", "-PU", SectionHostDiscovery, KindIntList, "UDP ping to these ports", nil,
		func(s *model.Scan) Accessor { return uintList(&s.HostDiscovery.UDPDiscovery, maxPort) }},
	{FieldSCTPDiscovery, "sctp-discovery", "SCTP discovery", "-PY", SectionHostDiscovery, KindIntList, "SCTP INIT ping to these ports", nil,
		func(s *model.Scan) Accessor { return uintList(&s.HostDiscovery.SCTPDiscovery, maxPort) }},
	{FieldICMPEcho, "icmp-echo", "ICMP echo", "-PE", SectionHostDiscovery, KindBool, "ICMP echo request discovery", nil,
		func(s *model.Scan) Accessor { return boolField(&s.HostDiscovery.ICMPEcho) }},
	{FieldICMPTimestamp, "icmp-timestamp", "ICMP timestamp", "-PP", SectionHostDiscovery, KindBool, "ICMP timestamp request discovery", nil,
		func(s *model.Scan) Accessor { return boolField(&s.HostDiscovery.ICMPTimestamp) }},
	{FieldICMPNetmask, "icmp-netmask", "ICMP netmask", "-PM", SectionHostDiscovery, KindBool, "ICMP netmask request discovery", nil,
		func(s *model.Scan) Accessor { return boolField(&s.HostDiscovery.ICMPNetmask) }},
	{FieldIPProtocolPing, "ip-protocol-ping", "IP protocol ping", "-PO", SectionHostDiscovery, KindIntList, "IP protocol ping with these protocol numbers", nil,
		func(s *model.Scan) Accessor { return uintList(&s.HostDiscovery.IPProtocolPing, maxUint8) }},
	{FieldDNSServers, "dns-servers", "DNS servers", "--dns-servers", SectionHostDiscovery, KindStringList, "Custom DNS servers", nil,
		func(s *model.Scan) Accessor { return stringList(&s.HostDiscovery.DNSServers) }},
	{FieldSystemDNS, "system-dns", "System DNS", "--system-dns", SectionHostDiscovery, KindBool, "Use the OS resolver", nil,
		func(s *model.Scan) Accessor { return boolField(&s.HostDiscovery.SystemDNS) }},
	{FieldTraceroute, "traceroute", "Traceroute", "--traceroute", SectionHostDiscovery, KindBool, "Trace hop path to each host", nil,
		func(s *model.Scan) Accessor { return boolField(&s.HostDiscovery.Traceroute) }},

	// Scan technique
	{FieldTechnique, "technique", "Technique", "-s", SectionTechnique, KindChoice, "Port scan technique", techniqueLabels,
		func(s *model.Scan) Accessor { return techniqueChoice(&s.Technique) }},
	{FieldTechniqueArg, "technique-arg", "Technique argument", "", SectionTechnique, KindOptionalString, "Zombie host, FTP relay or TCP flags", nil,
		func(s *model.Scan) Accessor { return techniquePayload(&s.Technique) }},

	// Port specification
	{FieldPorts, "ports", "Ports", "-p", SectionPorts, KindOptionalString, "Port ranges to scan", nil,
		func(s *model.Scan) Accessor { return optionalString(&s.Ports.Ports) }},
	{FieldExcludePorts, "exclude-ports", "Exclude ports", "--exclude-ports", SectionPorts, KindOptionalString, "Port ranges to skip", nil,
		func(s *model.Scan) Accessor { return optionalString(&s.Ports.ExcludePorts) }},
	{FieldFastMode, "fast", "Fast mode", "-F", SectionPorts, KindBool, "Scan fewer ports than the default", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Ports.FastMode) }},
	{FieldConsecutivePorts, "consecutive", "Consecutive", "-r", SectionPorts, KindBool, "Scan ports in order", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Ports.ConsecutivePorts) }},
	{FieldTopPorts, "top-ports", "Top ports", "--top-ports", SectionPorts, KindOptionalInt, "Scan the most common ports", nil,
		func(s *model.Scan) Accessor { return optionalUint(&s.Ports.TopPorts, 0, maxU32) }},
	{FieldPortRatio, "port-ratio", "Port ratio", "--port-ratio", SectionPorts, KindOptionalFloat, "Scan ports more common than this ratio", nil,
		func(s *model.Scan) Accessor { return floatField(&s.Ports.PortRatio, 0, 1) }},

	// Service detection
	{FieldServiceDetection, "service-detection", "Service detection", "-sV", SectionService, KindBool, "Probe open ports for service and version", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Service.Enabled) }},
	{FieldVersionIntensity, "version-intensity", "Version intensity", "--version-intensity", SectionService, KindOptionalInt, "Probe intensity from 0 (light) to 9 (all)", nil,
		func(s *model.Scan) Accessor { return optionalUint(&s.Service.Intensity, 0, 9) }},
	{FieldVersionLight, "version-light", "Version light", "--version-light", SectionService, KindBool, "Limit to likely probes", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Service.Light) }},
	{FieldVersionAll, "version-all", "Version all", "--version-all", SectionService, KindBool, "Try every probe", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Service.All) }},
	{FieldVersionTrace, "version-trace", "Version trace", "--version-trace", SectionService, KindBool, "Show version scan activity", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Service.Trace) }},

	// Script scan
	{FieldDefaultScripts, "default-scripts", "Default scripts", "-sC", SectionScript, KindBool, "Run the default script set", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Script.Default) }},
	{FieldScripts, "scripts", "Scripts", "--script", SectionScript, KindStringList, "Scripts, categories or directories", nil,
		func(s *model.Scan) Accessor { return stringList(&s.Script.Scripts) }},
	{FieldScriptArgs, "script-args", "Script args", "--script-args", SectionScript, KindOptionalString, "Arguments passed to scripts", nil,
		func(s *model.Scan) Accessor { return optionalString(&s.Script.ScriptArgs) }},
	{FieldScriptArgsFile, "script-args-file", "Script args file", "--script-args-file", SectionScript, KindOptionalPath, "Read script arguments from a file", nil,
		func(s *model.Scan) Accessor { return pathField(&s.Script.ScriptArgsFile) }},
	{FieldScriptTrace, "script-trace", "Script trace", "--script-trace", SectionScript, KindBool, "Show all script traffic", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Script.ScriptTrace) }},
	{FieldScriptUpdateDB, "script-updatedb", "Update script DB", "--script-updatedb", SectionScript, KindBool, "Rebuild the script database", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Script.ScriptUpdateDB) }},
	{FieldScriptHelp, "script-help", "Script help", "--script-help", SectionScript, KindOptionalString, "Show help for these scripts", nil,
		func(s *model.Scan) Accessor { return optionalString(&s.Script.ScriptHelp) }},

	// OS detection
	{FieldOSDetection, "os-detection", "OS detection", "-O", SectionOS, KindBool, "Enable OS fingerprinting", nil,
		func(s *model.Scan) Accessor { return boolField(&s.OS.Enabled) }},
	{FieldOSScanLimit, "osscan-limit", "OS scan limit", "--osscan-limit", SectionOS, KindBool, "Only fingerprint promising hosts", nil,
		func(s *model.Scan) Accessor { return boolField(&s.OS.Limit) }},
	{FieldOSScanGuess, "osscan-guess", "OS scan guess", "--osscan-guess", SectionOS, KindBool, "Guess the OS aggressively", nil,
		func(s *model.Scan) Accessor { return boolField(&s.OS.Guess) }},
	{FieldMaxOSTries, "max-os-tries", "Max OS tries", "--max-os-tries", SectionOS, KindOptionalInt, "OS detection attempts per target", nil,
		func(s *model.Scan) Accessor { return optionalUint(&s.OS.MaxRetries, 0, maxU32) }},

	// Timing and performance
	{FieldTimingTemplate, "timing", "Timing template", "-T", SectionTiming, KindChoice, "Overall timing template", timingLabels,
		func(s *model.Scan) Accessor { return timingChoice(&s.Timing.Template) }},
	{FieldMinHostgroup, "min-hostgroup", "Min hostgroup", "--min-hostgroup", SectionTiming, KindOptionalInt, "Smallest parallel host group", nil,
		func(s *model.Scan) Accessor { return optionalUint(&s.Timing.MinHostgroup, 0, maxU32) }},
	{FieldMaxHostgroup, "max-hostgroup", "Max hostgroup", "--max-hostgroup", SectionTiming, KindOptionalInt, "Largest parallel host group", nil,
		func(s *model.Scan) Accessor { return optionalUint(&s.Timing.MaxHostgroup, 0, maxU32) }},
	{FieldMinParallelism, "min-parallelism", "Min parallelism", "--min-parallelism", SectionTiming, KindOptionalInt, "Minimum probes in flight", nil,
		func(s *model.Scan) Accessor { return optionalUint(&s.Timing.MinParallelism, 0, maxU32) }},
	{FieldMaxParallelism, "max-parallelism", "Max parallelism", "--max-parallelism", SectionTiming, KindOptionalInt, "Maximum probes in flight", nil,
		func(s *model.Scan) Accessor { return optionalUint(&s.Timing.MaxParallelism, 0, maxU32) }},
	{FieldMinRTTTimeout, "min-rtt-timeout", "Min RTT timeout", "--min-rtt-timeout", SectionTiming, KindOptionalString, "Lower bound on probe round trip time", nil,
		func(s *model.Scan) Accessor { return optionalString(&s.Timing.MinRTTTimeout) }},
	{FieldMaxRTTTimeout, "max-rtt-timeout", "Max RTT timeout", "--max-rtt-timeout", SectionTiming, KindOptionalString, "Upper bound on probe round trip time", nil,
		func(s *model.Scan) Accessor { return optionalString(&s.Timing.MaxRTTTimeout) }},
	{FieldInitialRTTTimeout, "initial-rtt-timeout", "Initial RTT timeout", "--initial-rtt-timeout", SectionTiming, KindOptionalString, "Starting probe round trip time", nil,
		func(s *model.Scan) Accessor { return optionalString(&s.Timing.InitialRTTTimeout) }},
	{FieldMaxRetries, "max-retries", "Max retries", "--max-retries", SectionTiming, KindOptionalInt, "Port probe retransmissions", nil,
		func(s *model.Scan) Accessor { return optionalUint(&s.Timing.MaxRetries, 0, maxU32) }},
	{FieldHostTimeout, "host-timeout", "Host timeout", "--host-timeout", SectionTiming, KindOptionalString, "Give up on a host after this long", nil,
		func(s *model.Scan) Accessor { return optionalString(&s.Timing.HostTimeout) }},
	{FieldScriptTimeout, "script-timeout", "Script timeout", "--script-timeout", SectionTiming, KindOptionalString, "Cap on script run time", nil,
		func(s *model.Scan) Accessor { return optionalString(&s.Timing.ScriptTimeout) }},
	{FieldScanDelay, "scan-delay", "Scan delay", "--scan-delay", SectionTiming, KindOptionalString, "Delay between probes", nil,
		func(s *model.Scan) Accessor { return optionalString(&s.Timing.ScanDelay) }},
	{FieldMaxScanDelay, "max-scan-delay", "Max scan delay", "--max-scan-delay", SectionTiming, KindOptionalString, "Largest delay between probes", nil,
		func(s *model.Scan) Accessor { return optionalString(&s.Timing.MaxScanDelay) }},
	{FieldMinRate, "min-rate", "Min rate", "--min-rate", SectionTiming, KindOptionalInt, "Send at least this many packets per second", nil,
		func(s *model.Scan) Accessor { return optionalUint(&s.Timing.MinRate, 0, maxU32) }},
	{FieldMaxRate, "max-rate", "Max rate", "--max-rate", SectionTiming, KindOptionalInt, "Send at most this many packets per second", nil,
		func(s *model.Scan) Accessor { return optionalUint(&s.Timing.MaxRate, 0, maxU32) }},
	{FieldDefeatRSTRatelimit, "defeat-rst-ratelimit", "Defeat RST ratelimit", "--defeat-rst-ratelimit", SectionTiming, KindBool, "Ignore RST rate limiting", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Timing.DefeatRSTRatelimit) }},
	{FieldDefeatICMPRatelimit, "defeat-icmp-ratelimit", "Defeat ICMP ratelimit", "--defeat-icmp-ratelimit", SectionTiming, KindBool, "Ignore ICMP rate limiting", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Timing.DefeatICMPRatelimit) }},
	{FieldNsockEngine, "nsock-engine", "Nsock engine", "--nsock-engine", SectionTiming, KindOptionalString, "I/O multiplexing engine", nil,
		func(s *model.Scan) Accessor { return optionalString(&s.Timing.NsockEngine) }},

	// Evasion and spoofing
	{FieldFragment, "fragment", "Fragment packets", "-f", SectionEvasion, KindBool, "Split probes into small fragments", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Evasion.FragmentPackets) }},
	{FieldMTU, "mtu", "MTU", "--mtu", SectionEvasion, KindOptionalInt, "Fragment size, a multiple of 8", nil,
		func(s *model.Scan) Accessor { return optionalUint(&s.Evasion.MTU, 0, maxU32) }},
	{FieldDecoys, "decoys", "Decoys", "-D", SectionEvasion, KindStringList, "Decoy addresses, ME marks the real host", nil,
		func(s *model.Scan) Accessor { return stringList(&s.Evasion.Decoys) }},
	{FieldSpoofIP, "spoof-ip", "Spoof source", "-S", SectionEvasion, KindOptionalString, "Source address to claim", nil,
		func(s *model.Scan) Accessor { return addrField(&s.Evasion.SpoofIP) }},
	{FieldInterface, "interface", "Interface", "-e", SectionEvasion, KindOptionalString, "Network interface to use", nil,
		func(s *model.Scan) Accessor { return optionalString(&s.Evasion.Interface) }},
	{FieldSourcePort, "source-port", "Source port", "-g", SectionEvasion, KindOptionalInt, "Source port to send from", nil,
		func(s *model.Scan) Accessor { return optionalUint(&s.Evasion.SourcePort, 0, maxPort) }},
	{FieldData, "data", "Data (hex)", "--data", SectionEvasion, KindOptionalString, "Append hex payload to probes", nil,
		func(s *model.Scan) Accessor { return optionalString(&s.Evasion.Data) }},
	{FieldDataString, "data-string", "Data (string)", "--data-string", SectionEvasion, KindOptionalString, "Append text payload to probes", nil,
		func(s *model.Scan) Accessor { return optionalString(&s.Evasion.DataString) }},
	{FieldDataLength, "data-length", "Data length", "--data-length", SectionEvasion, KindOptionalInt, "Append random bytes to probes", nil,
		func(s *model.Scan) Accessor { return optionalUint(&s.Evasion.DataLength, 0, maxU32) }},
	{FieldIPOptions, "ip-options", "IP options", "--ip-options", SectionEvasion, KindOptionalString, "IP options to send", nil,
		func(s *model.Scan) Accessor { return optionalString(&s.Evasion.IPOptions) }},
	{FieldTTL, "ttl", "TTL", "--ttl", SectionEvasion, KindOptionalInt, "IP time-to-live", nil,
		func(s *model.Scan) Accessor { return optionalUint(&s.Evasion.TTL, 0, maxUint8) }},
	{FieldRandomizeHosts, "randomize-hosts", "Randomize hosts", "--randomize-hosts", SectionEvasion, KindBool, "Shuffle target order", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Evasion.RandomizeHosts) }},
	{FieldSpoofMAC, "spoof-mac", "Spoof MAC", "--spoof-mac", SectionEvasion, KindOptionalString, "MAC address, prefix or vendor", nil,
		func(s *model.Scan) Accessor { return optionalString(&s.Evasion.SpoofMAC) }},
	{FieldBadsum, "badsum", "Bad checksum", "--badsum", SectionEvasion, KindBool, "Send probes with bogus checksums", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Evasion.Badsum) }},
	{FieldAdler32, "adler32", "Adler32", "--adler32", SectionEvasion, KindBool, "Use the old SCTP checksum", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Evasion.Adler32) }},

	// Output
	{FieldOutputNormal, "output-normal", "Normal output", "-oN", SectionOutput, KindOptionalPath, "Write normal output to a file", nil,
		func(s *model.Scan) Accessor { return pathField(&s.Output.Normal) }},
	{FieldOutputXML, "output-xml", "XML output", "-oX", SectionOutput, KindOptionalPath, "Write XML output to a file", nil,
		func(s *model.Scan) Accessor { return pathField(&s.Output.XML) }},
	{FieldOutputScriptKiddie, "output-script-kiddie", "Script kiddie output", "-oS", SectionOutput, KindOptionalPath, "Write s|<rIpt kIddi3 output to a file", nil,
		func(s *model.Scan) Accessor { return pathField(&s.Output.ScriptKiddie) }},
	{FieldOutputGrepable, "output-grepable", "Grepable output", "-oG", SectionOutput, KindOptionalPath, "Write grepable output to a file", nil,
		func(s *model.Scan) Accessor { return pathField(&s.Output.Grepable) }},
	{FieldOutputAll, "output-all", "All formats", "-oA", SectionOutput, KindOptionalPath, "Write the three main formats with this basename", nil,
		func(s *model.Scan) Accessor { return pathField(&s.Output.AllFormats) }},
	{FieldVerbose, "verbose", "Verbosity", "-v", SectionOutput, KindOptionalInt, "Verbosity level", nil,
		func(s *model.Scan) Accessor { return countField(&s.Output.Verbose) }},
	{FieldDebug, "debug", "Debug level", "-d", SectionOutput, KindOptionalInt, "Debugging level", nil,
		func(s *model.Scan) Accessor { return countField(&s.Output.Debug) }},
	{FieldReason, "reason", "Reason", "--reason", SectionOutput, KindBool, "Show why a port is in its state", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Output.Reason) }},
	{FieldStatsEvery, "stats-every", "Stats every", "--stats-every", SectionOutput, KindOptionalString, "Print progress at this interval", nil,
		func(s *model.Scan) Accessor { return optionalString(&s.Output.StatsEvery) }},
	{FieldPacketTrace, "packet-trace", "Packet trace", "--packet-trace", SectionOutput, KindBool, "Show every packet sent and received", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Output.PacketTrace) }},
	{FieldOpenOnly, "open", "Open only", "--open", SectionOutput, KindBool, "Only show open ports", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Output.OpenOnly) }},
	{FieldIfList, "iflist", "Interface list", "--iflist", SectionOutput, KindBool, "Print interfaces and routes", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Output.IfList) }},
	{FieldAppendOutput, "append-output", "Append output", "--append-output", SectionOutput, KindBool, "Append to output files", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Output.AppendOutput) }},
	{FieldResume, "resume", "Resume", "--resume", SectionOutput, KindOptionalPath, "Resume an aborted scan from its output file", nil,
		func(s *model.Scan) Accessor { return pathField(&s.Output.Resume) }},
	{FieldStylesheet, "stylesheet", "Stylesheet", "--stylesheet", SectionOutput, KindOptionalPath, "XSL stylesheet for XML output", nil,
		func(s *model.Scan) Accessor { return pathField(&s.Output.Stylesheet) }},
	{FieldWebXML, "webxml", "Web XML", "--webxml", SectionOutput, KindBool, "Reference the nmap.org stylesheet", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Output.WebXML) }},
	{FieldNoStylesheet, "no-stylesheet", "No stylesheet", "--no-stylesheet", SectionOutput, KindBool, "Omit the XSL stylesheet", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Output.NoStylesheet) }},

	// Misc
	{FieldIPv6, "ipv6", "IPv6", "-6", SectionMisc, KindBool, "Enable IPv6 scanning", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Misc.IPv6) }},
	{FieldAggressive, "aggressive", "Aggressive", "-A", SectionMisc, KindBool, "OS, version, script and traceroute", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Misc.Aggressive) }},
	{FieldDataDir, "datadir", "Data dir", "--datadir", SectionMisc, KindOptionalPath, "Custom nmap data file location", nil,
		func(s *model.Scan) Accessor { return pathField(&s.Misc.DataDir) }},
	{FieldSendEth, "send-eth", "Send ethernet", "--send-eth", SectionMisc, KindBool, "Send raw ethernet frames", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Misc.SendEth) }},
	{FieldSendIP, "send-ip", "Send IP", "--send-ip", SectionMisc, KindBool, "Send raw IP packets", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Misc.SendIP) }},
	{FieldPrivileged, "privileged", "Privileged", "--privileged", SectionMisc, KindBool, "Assume full privileges", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Misc.Privileged) }},
	{FieldUnprivileged, "unprivileged", "Unprivileged", "--unprivileged", SectionMisc, KindBool, "Assume no raw socket privileges", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Misc.Unprivileged) }},
	{FieldReleaseMemory, "release-memory", "Release memory", "--release-memory", SectionMisc, KindBool, "Free memory before quitting", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Misc.ReleaseMemory) }},
	{FieldVersion, "version", "Version", "-V", SectionMisc, KindBool, "Print the nmap version", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Misc.Version) }},
	{FieldHelp, "help", "Help", "-h", SectionMisc, KindBool, "Print the nmap help summary", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Misc.Help) }},
	{FieldResolveAll, "resolve-all", "Resolve all", "-R", SectionMisc, KindBool, "Always reverse-resolve", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Misc.ResolveAll) }},
	{FieldNoResolve, "no-resolve", "No resolve", "-n", SectionMisc, KindBool, "Never reverse-resolve", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Misc.NoResolve) }},
	{FieldUnique, "unique", "Unique", "--unique", SectionMisc, KindBool, "Scan each address once", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Misc.Unique) }},
	{FieldLogErrors, "log-errors", "Log errors", "--log-errors", SectionMisc, KindBool, "Log errors to normal output", nil,
		func(s *model.Scan) Accessor { return boolField(&s.Misc.LogErrors) }},
}
