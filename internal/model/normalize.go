package model

// Clone returns a deep copy of s.
func (s *Scan) Clone() *Scan {
	c := *s

	c.Target.Targets = cloneSlice(s.Target.Targets)
	c.Target.InputFile = clonePtr(s.Target.InputFile)
	c.Target.RandomTargets = clonePtr(s.Target.RandomTargets)
	c.Target.Exclude = cloneSlice(s.Target.Exclude)
	c.Target.ExcludeFile = clonePtr(s.Target.ExcludeFile)

	hd := &c.HostDiscovery
	hd.SYNDiscovery = cloneSlice(s.HostDiscovery.SYNDiscovery)
	hd.ACKDiscovery = cloneSlice(s.HostDiscovery.ACKDiscovery)
	hd.UDPDiscovery = cloneSlice(s.HostDiscovery.UDPDiscovery)
	hd.SCTPDiscovery = cloneSlice(s.HostDiscovery.SCTPDiscovery)
	hd.IPProtocolPing = cloneSlice(s.HostDiscovery.IPProtocolPing)
	hd.DNSServers = cloneSlice(s.HostDiscovery.DNSServers)

	c.Technique = s.Technique.Clone()

	c.Ports.Ports = clonePtr(s.Ports.Ports)
	c.Ports.ExcludePorts = clonePtr(s.Ports.ExcludePorts)
	c.Ports.TopPorts = clonePtr(s.Ports.TopPorts)
	c.Ports.PortRatio = clonePtr(s.Ports.PortRatio)

	c.Service.Intensity = clonePtr(s.Service.Intensity)

	c.Script.Scripts = cloneSlice(s.Script.Scripts)
	c.Script.ScriptArgs = clonePtr(s.Script.ScriptArgs)
	c.Script.ScriptArgsFile = clonePtr(s.Script.ScriptArgsFile)
	c.Script.ScriptHelp = clonePtr(s.Script.ScriptHelp)

	c.OS.MaxRetries = clonePtr(s.OS.MaxRetries)

	tp := &c.Timing
	tp.Template = clonePtr(s.Timing.Template)
	tp.MinHostgroup = clonePtr(s.Timing.MinHostgroup)
	tp.MaxHostgroup = clonePtr(s.Timing.MaxHostgroup)
	tp.MinParallelism = clonePtr(s.Timing.MinParallelism)
	tp.MaxParallelism = clonePtr(s.Timing.MaxParallelism)
	tp.MinRTTTimeout = clonePtr(s.Timing.MinRTTTimeout)
	tp.MaxRTTTimeout = clonePtr(s.Timing.MaxRTTTimeout)
	tp.InitialRTTTimeout = clonePtr(s.Timing.InitialRTTTimeout)
	tp.MaxRetries = clonePtr(s.Timing.MaxRetries)
	tp.HostTimeout = clonePtr(s.Timing.HostTimeout)
	tp.ScriptTimeout = clonePtr(s.Timing.ScriptTimeout)
	tp.ScanDelay = clonePtr(s.Timing.ScanDelay)
	tp.MaxScanDelay = clonePtr(s.Timing.MaxScanDelay)
	tp.MinRate = clonePtr(s.Timing.MinRate)
	tp.MaxRate = clonePtr(s.Timing.MaxRate)
	tp.NsockEngine = clonePtr(s.Timing.NsockEngine)

	es := &c.Evasion
	es.MTU = clonePtr(s.Evasion.MTU)
	es.Decoys = cloneSlice(s.Evasion.Decoys)
	es.SpoofIP = clonePtr(s.Evasion.SpoofIP)
	es.Interface = clonePtr(s.Evasion.Interface)
	es.SourcePort = clonePtr(s.Evasion.SourcePort)
	es.Data = clonePtr(s.Evasion.Data)
	es.DataString = clonePtr(s.Evasion.DataString)
	es.DataLength = clonePtr(s.Evasion.DataLength)
	es.IPOptions = clonePtr(s.Evasion.IPOptions)
	es.TTL = clonePtr(s.Evasion.TTL)
	es.SpoofMAC = clonePtr(s.Evasion.SpoofMAC)

	out := &c.Output
	out.Normal = clonePtr(s.Output.Normal)
	out.XML = clonePtr(s.Output.XML)
	out.ScriptKiddie = clonePtr(s.Output.ScriptKiddie)
	out.Grepable = clonePtr(s.Output.Grepable)
	out.AllFormats = clonePtr(s.Output.AllFormats)
	out.StatsEvery = clonePtr(s.Output.StatsEvery)
	out.Resume = clonePtr(s.Output.Resume)
	out.Stylesheet = clonePtr(s.Output.Stylesheet)

	c.Misc.DataDir = clonePtr(s.Misc.DataDir)

	return &c
}

// Normalize returns a canonical deep copy of s for semantic comparison:
// empty lists become nil and the scan technique is flattened.
func (s *Scan) Normalize() *Scan {
	c := s.Clone()

	c.Target.Targets = nilIfEmpty(c.Target.Targets)
	c.Target.Exclude = nilIfEmpty(c.Target.Exclude)

	hd := &c.HostDiscovery
	hd.SYNDiscovery = nilIfEmpty(hd.SYNDiscovery)
	hd.ACKDiscovery = nilIfEmpty(hd.ACKDiscovery)
	hd.UDPDiscovery = nilIfEmpty(hd.UDPDiscovery)
	hd.SCTPDiscovery = nilIfEmpty(hd.SCTPDiscovery)
	hd.IPProtocolPing = nilIfEmpty(hd.IPProtocolPing)
	hd.DNSServers = nilIfEmpty(hd.DNSServers)

	c.Script.Scripts = nilIfEmpty(c.Script.Scripts)
	c.Evasion.Decoys = nilIfEmpty(c.Evasion.Decoys)

	flat := c.Technique.Flatten()
	if len(flat) == 1 {
		c.Technique = flat[0]
	} else {
		c.Technique = Multiple(flat...)
	}

	return c
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}
