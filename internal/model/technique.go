package model

// TechniqueKind identifies one case of ScanTechnique.
type TechniqueKind uint8

const (
	TechSYN TechniqueKind = iota // -sS (default)
	TechConnect                  // -sT
	TechACK                      // -sA
	TechWindow                   // -sW
	TechMaimon                   // -sM
	TechUDP                      // -sU
	TechNull                     // -sN
	TechFIN                      // -sF
	TechXmas                     // -sX
	TechScanflags                // --scanflags <flags>
	TechIdle                     // -sI <zombie host>
	TechSCTP                     // -sY / -sZ
	TechIPProtocol               // -sO
	TechFTPBounce                // -b <relay>
	TechMultiple                 // several of the above
)

var techniqueNames = [...]string{
	TechSYN:        "syn",
	TechConnect:    "connect",
	TechACK:        "ack",
	TechWindow:     "window",
	TechMaimon:     "maimon",
	TechUDP:        "udp",
	TechNull:       "null",
	TechFIN:        "fin",
	TechXmas:       "xmas",
	TechScanflags:  "scanflags",
	TechIdle:       "idle",
	TechSCTP:       "sctp",
	TechIPProtocol: "ip-protocol",
	TechFTPBounce:  "ftp-bounce",
	TechMultiple:   "multiple",
}

func (k TechniqueKind) String() string {
	if int(k) < len(techniqueNames) {
		return techniqueNames[k]
	}
	return "unknown"
}

// MarshalText renders the kind by name in JSON and YAML output.
func (k TechniqueKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// HasPayload reports whether the case carries a string argument.
func (k TechniqueKind) HasPayload() bool {
	return k == TechScanflags || k == TechIdle || k == TechFTPBounce
}

// SCTPScanType selects between the two SCTP scans.
type SCTPScanType uint8

const (
	SCTPInit   SCTPScanType = iota // -sY
	SCTPCookie                     // -sZ
)

func (t SCTPScanType) String() string {
	if t == SCTPCookie {
		return "cookie-echo"
	}
	return "init"
}

func (t SCTPScanType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ScanTechnique is the closed scan technique variant. Which of Arg, SCTP
// and Members is meaningful depends on Kind; the rest stay zero.
type ScanTechnique struct {
	Kind    TechniqueKind   `json:"kind" yaml:"kind"`
	Arg     string          `json:"arg,omitempty" yaml:"arg,omitempty"`
	SCTP    SCTPScanType    `json:"sctp,omitempty" yaml:"sctp,omitempty"`
	Members []ScanTechnique `json:"members,omitempty" yaml:"members,omitempty"`
}

// Technique returns a flag-only technique. Payload cases get an empty payload.
func Technique(k TechniqueKind) ScanTechnique {
	return ScanTechnique{Kind: k}
}

// Syn returns the default SYN technique.
func Syn() ScanTechnique { return ScanTechnique{Kind: TechSYN} }

// Scanflags returns a custom TCP flags scan.
func Scanflags(flags string) ScanTechnique {
	return ScanTechnique{Kind: TechScanflags, Arg: flags}
}

// Idle returns an idle scan through the given zombie host.
func Idle(zombie string) ScanTechnique {
	return ScanTechnique{Kind: TechIdle, Arg: zombie}
}

// FTPBounce returns an FTP bounce scan through the given relay.
func FTPBounce(relay string) ScanTechnique {
	return ScanTechnique{Kind: TechFTPBounce, Arg: relay}
}

// SCTP returns an SCTP scan of the given type.
func SCTP(t SCTPScanType) ScanTechnique {
	return ScanTechnique{Kind: TechSCTP, SCTP: t}
}

// Multiple returns a composite technique.
func Multiple(ts ...ScanTechnique) ScanTechnique {
	return ScanTechnique{Kind: TechMultiple, Members: ts}
}

// sameCase reports whether a and b are the same technique irrespective of payload.
func sameCase(a, b ScanTechnique) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == TechSCTP {
		return a.SCTP == b.SCTP
	}
	return true
}

// Flatten returns the member techniques of t depth-first, one entry per
// case. A case seen twice keeps its first position and its last payload.
// An empty composite flattens to the default SYN.
func (t ScanTechnique) Flatten() []ScanTechnique {
	var out []ScanTechnique
	var walk func(ScanTechnique)
	walk = func(cur ScanTechnique) {
		if cur.Kind == TechMultiple {
			for _, m := range cur.Members {
				walk(m)
			}
			return
		}
		leaf := ScanTechnique{Kind: cur.Kind}
		if cur.Kind.HasPayload() {
			leaf.Arg = cur.Arg
		}
		if cur.Kind == TechSCTP {
			leaf.SCTP = cur.SCTP
		}
		for i := range out {
			if sameCase(out[i], leaf) {
				out[i] = leaf
				return
			}
		}
		out = append(out, leaf)
	}
	walk(t)
	if len(out) == 0 {
		return []ScanTechnique{Syn()}
	}
	return out
}

// Add merges next into t the way repeated technique flags combine on a
// command line and returns the result.
func (t ScanTechnique) Add(next ScanTechnique) ScanTechnique {
	members := append(t.Flatten(), next.Flatten()...)
	flat := Multiple(members...).Flatten()
	if len(flat) == 1 {
		return flat[0]
	}
	return Multiple(flat...)
}

// Clone returns a deep copy.
func (t ScanTechnique) Clone() ScanTechnique {
	c := t
	if t.Members != nil {
		c.Members = make([]ScanTechnique, len(t.Members))
		for i, m := range t.Members {
			c.Members[i] = m.Clone()
		}
	}
	return c
}

func (t ScanTechnique) String() string {
	switch t.Kind {
	case TechSCTP:
		return "sctp-" + t.SCTP.String()
	case TechMultiple:
		s := ""
		for i, m := range t.Members {
			if i > 0 {
				s += "+"
			}
			s += m.String()
		}
		return s
	}
	if t.Kind.HasPayload() {
		return t.Kind.String() + "(" + t.Arg + ")"
	}
	return t.Kind.String()
}
