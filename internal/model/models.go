// Package model defines the structured nmap scan configuration.
package model

import "net/netip"

// Scan represents a complete nmap scan configuration.
//
// The zero value is the all-default configuration: every boolean is false,
// every optional is unset, every list is empty and the scan technique is SYN.
type Scan struct {
	Target        TargetSpecification `json:"target" yaml:"target"`
	HostDiscovery HostDiscovery       `json:"host_discovery" yaml:"host_discovery"`
	Technique     ScanTechnique       `json:"technique" yaml:"technique"`
	Ports         PortSpecification   `json:"ports" yaml:"ports"`
	Service       ServiceDetection    `json:"service" yaml:"service"`
	Script        ScriptScan          `json:"script" yaml:"script"`
	OS            OSDetection         `json:"os" yaml:"os"`
	Timing        TimingPerformance   `json:"timing" yaml:"timing"`
	Evasion       EvasionSpoofing     `json:"evasion" yaml:"evasion"`
	Output        OutputOptions       `json:"output" yaml:"output"`
	Misc          MiscOptions         `json:"misc" yaml:"misc"`
}

// New returns an all-default scan.
func New() *Scan {
	return &Scan{}
}

// TargetSpecification holds targets and target input options.
type TargetSpecification struct {
	Targets       []string `json:"targets,omitempty" yaml:"targets,omitempty"`
	InputFile     *string  `json:"input_file,omitempty" yaml:"input_file,omitempty"`         // -iL
	RandomTargets *uint32  `json:"random_targets,omitempty" yaml:"random_targets,omitempty"` // -iR
	Exclude       []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`               // --exclude
	ExcludeFile   *string  `json:"exclude_file,omitempty" yaml:"exclude_file,omitempty"`     // --exclude-file
}

// HostDiscovery holds host discovery options.
type HostDiscovery struct {
	ListScan       bool     `json:"list_scan,omitempty" yaml:"list_scan,omitempty"`               // -sL
	PingScan       bool     `json:"ping_scan,omitempty" yaml:"ping_scan,omitempty"`               // -sn
	SkipPortScan   bool     `json:"skip_port_scan,omitempty" yaml:"skip_port_scan,omitempty"`     // -Pn
	SYNDiscovery   []uint16 `json:"syn_discovery,omitempty" yaml:"syn_discovery,omitempty"`       // -PS
	ACKDiscovery   []uint16 `json:"ack_discovery,omitempty" yaml:"ack_discovery,omitempty"`       // -PA
	UDPDiscovery   []uint16 `json:"udp_discovery,omitempty" yaml:"udp_discovery,omitempty"`       // -PU
	SCTPDiscovery  []uint16 `json:"sctp_discovery,omitempty" yaml:"sctp_discovery,omitempty"`     // -PY
	ICMPEcho       bool     `json:"icmp_echo,omitempty" yaml:"icmp_echo,omitempty"`               // -PE
	ICMPTimestamp  bool     `json:"icmp_timestamp,omitempty" yaml:"icmp_timestamp,omitempty"`     // -PP
	ICMPNetmask    bool     `json:"icmp_netmask,omitempty" yaml:"icmp_netmask,omitempty"`         // -PM
	IPProtocolPing []uint8  `json:"ip_protocol_ping,omitempty" yaml:"ip_protocol_ping,omitempty"` // -PO
	DNSServers     []string `json:"dns_servers,omitempty" yaml:"dns_servers,omitempty"`           // --dns-servers
	SystemDNS      bool     `json:"system_dns,omitempty" yaml:"system_dns,omitempty"`             // --system-dns
	Traceroute     bool     `json:"traceroute,omitempty" yaml:"traceroute,omitempty"`             // --traceroute
}

// PortSpecification holds port selection options.
type PortSpecification struct {
	Ports            *string  `json:"ports,omitempty" yaml:"ports,omitempty"`                 // -p
	ExcludePorts     *string  `json:"exclude_ports,omitempty" yaml:"exclude_ports,omitempty"` // --exclude-ports
	FastMode         bool     `json:"fast_mode,omitempty" yaml:"fast_mode,omitempty"`         // -F
	ConsecutivePorts bool     `json:"consecutive,omitempty" yaml:"consecutive,omitempty"`     // -r
	TopPorts         *uint32  `json:"top_ports,omitempty" yaml:"top_ports,omitempty"`         // --top-ports
	PortRatio        *float32 `json:"port_ratio,omitempty" yaml:"port_ratio,omitempty"`       // --port-ratio
}

// ServiceDetection holds service and version detection options.
type ServiceDetection struct {
	Enabled   bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`     // -sV
	Intensity *uint8 `json:"intensity,omitempty" yaml:"intensity,omitempty"` // --version-intensity (0-9)
	Light     bool   `json:"light,omitempty" yaml:"light,omitempty"`         // --version-light
	All       bool   `json:"all,omitempty" yaml:"all,omitempty"`             // --version-all
	Trace     bool   `json:"trace,omitempty" yaml:"trace,omitempty"`         // --version-trace
}

// ScriptScan holds NSE options.
type ScriptScan struct {
	Default        bool     `json:"default,omitempty" yaml:"default,omitempty"`                   // -sC
	Scripts        []string `json:"scripts,omitempty" yaml:"scripts,omitempty"`                   // --script
	ScriptArgs     *string  `json:"script_args,omitempty" yaml:"script_args,omitempty"`           // --script-args
	ScriptArgsFile *string  `json:"script_args_file,omitempty" yaml:"script_args_file,omitempty"` // --script-args-file
	ScriptTrace    bool     `json:"script_trace,omitempty" yaml:"script_trace,omitempty"`         // --script-trace
	ScriptUpdateDB bool     `json:"script_updatedb,omitempty" yaml:"script_updatedb,omitempty"`   // --script-updatedb
	ScriptHelp     *string  `json:"script_help,omitempty" yaml:"script_help,omitempty"`           // --script-help
}

// OSDetection holds OS detection options.
type OSDetection struct {
	Enabled    bool    `json:"enabled,omitempty" yaml:"enabled,omitempty"`         // -O
	Limit      bool    `json:"limit,omitempty" yaml:"limit,omitempty"`             // --osscan-limit
	Guess      bool    `json:"guess,omitempty" yaml:"guess,omitempty"`             // --osscan-guess
	MaxRetries *uint32 `json:"max_retries,omitempty" yaml:"max_retries,omitempty"` // --max-os-tries
}

// TimingPerformance holds timing and performance options.
type TimingPerformance struct {
	Template            *TimingTemplate `json:"template,omitempty" yaml:"template,omitempty"` // -T<0-5>
	MinHostgroup        *uint32         `json:"min_hostgroup,omitempty" yaml:"min_hostgroup,omitempty"`
	MaxHostgroup        *uint32         `json:"max_hostgroup,omitempty" yaml:"max_hostgroup,omitempty"`
	MinParallelism      *uint32         `json:"min_parallelism,omitempty" yaml:"min_parallelism,omitempty"`
	MaxParallelism      *uint32         `json:"max_parallelism,omitempty" yaml:"max_parallelism,omitempty"`
	MinRTTTimeout       *string         `json:"min_rtt_timeout,omitempty" yaml:"min_rtt_timeout,omitempty"`
	MaxRTTTimeout       *string         `json:"max_rtt_timeout,omitempty" yaml:"max_rtt_timeout,omitempty"`
	InitialRTTTimeout   *string         `json:"initial_rtt_timeout,omitempty" yaml:"initial_rtt_timeout,omitempty"`
	MaxRetries          *uint32         `json:"max_retries,omitempty" yaml:"max_retries,omitempty"`
	HostTimeout         *string         `json:"host_timeout,omitempty" yaml:"host_timeout,omitempty"`
	ScriptTimeout       *string         `json:"script_timeout,omitempty" yaml:"script_timeout,omitempty"`
	ScanDelay           *string         `json:"scan_delay,omitempty" yaml:"scan_delay,omitempty"`
	MaxScanDelay        *string         `json:"max_scan_delay,omitempty" yaml:"max_scan_delay,omitempty"`
	MinRate             *uint32         `json:"min_rate,omitempty" yaml:"min_rate,omitempty"`
	MaxRate             *uint32         `json:"max_rate,omitempty" yaml:"max_rate,omitempty"`
	DefeatRSTRatelimit  bool            `json:"defeat_rst_ratelimit,omitempty" yaml:"defeat_rst_ratelimit,omitempty"`
	DefeatICMPRatelimit bool            `json:"defeat_icmp_ratelimit,omitempty" yaml:"defeat_icmp_ratelimit,omitempty"`
	NsockEngine         *string         `json:"nsock_engine,omitempty" yaml:"nsock_engine,omitempty"`
}

// EvasionSpoofing holds firewall/IDS evasion and spoofing options.
type EvasionSpoofing struct {
	FragmentPackets bool        `json:"fragment_packets,omitempty" yaml:"fragment_packets,omitempty"` // -f
	MTU             *uint32     `json:"mtu,omitempty" yaml:"mtu,omitempty"`                           // --mtu
	Decoys          []string    `json:"decoys,omitempty" yaml:"decoys,omitempty"`                     // -D, order is significant
	SpoofIP         *netip.Addr `json:"spoof_ip,omitempty" yaml:"spoof_ip,omitempty"`                 // -S
	Interface       *string     `json:"interface,omitempty" yaml:"interface,omitempty"`               // -e
	SourcePort      *uint16     `json:"source_port,omitempty" yaml:"source_port,omitempty"`           // -g/--source-port
	Data            *string     `json:"data,omitempty" yaml:"data,omitempty"`                         // --data
	DataString      *string     `json:"data_string,omitempty" yaml:"data_string,omitempty"`           // --data-string
	DataLength      *uint32     `json:"data_length,omitempty" yaml:"data_length,omitempty"`           // --data-length
	IPOptions       *string     `json:"ip_options,omitempty" yaml:"ip_options,omitempty"`             // --ip-options
	TTL             *uint8      `json:"ttl,omitempty" yaml:"ttl,omitempty"`                           // --ttl
	RandomizeHosts  bool        `json:"randomize_hosts,omitempty" yaml:"randomize_hosts,omitempty"`   // --randomize-hosts
	SpoofMAC        *string     `json:"spoof_mac,omitempty" yaml:"spoof_mac,omitempty"`               // --spoof-mac
	Badsum          bool        `json:"badsum,omitempty" yaml:"badsum,omitempty"`                     // --badsum
	Adler32         bool        `json:"adler32,omitempty" yaml:"adler32,omitempty"`                   // --adler32
}

// OutputOptions holds output options.
type OutputOptions struct {
	Normal        *string `json:"normal,omitempty" yaml:"normal,omitempty"`               // -oN
	XML           *string `json:"xml,omitempty" yaml:"xml,omitempty"`                     // -oX
	ScriptKiddie  *string `json:"script_kiddie,omitempty" yaml:"script_kiddie,omitempty"` // -oS
	Grepable      *string `json:"grepable,omitempty" yaml:"grepable,omitempty"`           // -oG
	AllFormats    *string `json:"all_formats,omitempty" yaml:"all_formats,omitempty"`     // -oA (base filename)
	Verbose       uint8   `json:"verbose,omitempty" yaml:"verbose,omitempty"`             // -v, -vv, ...
	Debug         uint8   `json:"debug,omitempty" yaml:"debug,omitempty"`                 // -d, -dd, ...
	Reason        bool    `json:"reason,omitempty" yaml:"reason,omitempty"`               // --reason
	StatsEvery    *string `json:"stats_every,omitempty" yaml:"stats_every,omitempty"`     // --stats-every
	PacketTrace   bool    `json:"packet_trace,omitempty" yaml:"packet_trace,omitempty"`   // --packet-trace
	OpenOnly      bool    `json:"open_only,omitempty" yaml:"open_only,omitempty"`         // --open
	IfList        bool    `json:"iflist,omitempty" yaml:"iflist,omitempty"`               // --iflist
	AppendOutput  bool    `json:"append_output,omitempty" yaml:"append_output,omitempty"` // --append-output
	Resume        *string `json:"resume,omitempty" yaml:"resume,omitempty"`               // --resume
	Stylesheet    *string `json:"stylesheet,omitempty" yaml:"stylesheet,omitempty"`       // --stylesheet
	WebXML        bool    `json:"webxml,omitempty" yaml:"webxml,omitempty"`               // --webxml
	NoStylesheet  bool    `json:"no_stylesheet,omitempty" yaml:"no_stylesheet,omitempty"` // --no-stylesheet
}

// MiscOptions holds miscellaneous options.
type MiscOptions struct {
	IPv6          bool    `json:"ipv6,omitempty" yaml:"ipv6,omitempty"`                     // -6
	Aggressive    bool    `json:"aggressive,omitempty" yaml:"aggressive,omitempty"`         // -A
	DataDir       *string `json:"datadir,omitempty" yaml:"datadir,omitempty"`               // --datadir
	SendEth       bool    `json:"send_eth,omitempty" yaml:"send_eth,omitempty"`             // --send-eth
	SendIP        bool    `json:"send_ip,omitempty" yaml:"send_ip,omitempty"`               // --send-ip
	Privileged    bool    `json:"privileged,omitempty" yaml:"privileged,omitempty"`         // --privileged
	Unprivileged  bool    `json:"unprivileged,omitempty" yaml:"unprivileged,omitempty"`     // --unprivileged
	ReleaseMemory bool    `json:"release_memory,omitempty" yaml:"release_memory,omitempty"` // --release-memory
	Version       bool    `json:"version,omitempty" yaml:"version,omitempty"`               // -V
	Help          bool    `json:"help,omitempty" yaml:"help,omitempty"`                     // -h
	ResolveAll    bool    `json:"resolve_all,omitempty" yaml:"resolve_all,omitempty"`       // -R
	NoResolve     bool    `json:"no_resolve,omitempty" yaml:"no_resolve,omitempty"`         // -n
	Unique        bool    `json:"unique,omitempty" yaml:"unique,omitempty"`                 // --unique
	LogErrors     bool    `json:"log_errors,omitempty" yaml:"log_errors,omitempty"`         // --log-errors
}

// TimingTemplate is an nmap timing template, -T0 through -T5.
type TimingTemplate uint8

const (
	Paranoid TimingTemplate = iota
	Sneaky
	Polite
	Normal
	Aggressive
	Insane
)

var timingNames = [...]string{"paranoid", "sneaky", "polite", "normal", "aggressive", "insane"}

// TimingTemplates lists every template in -T order.
var TimingTemplates = []TimingTemplate{Paranoid, Sneaky, Polite, Normal, Aggressive, Insane}

func (t TimingTemplate) String() string {
	if int(t) < len(timingNames) {
		return timingNames[t]
	}
	return "unknown"
}

func (t TimingTemplate) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Valid reports whether t is one of the six templates.
func (t TimingTemplate) Valid() bool {
	return int(t) < len(timingNames)
}
