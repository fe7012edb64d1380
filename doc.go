// Package macaddrs finds the MAC addresses of a machine's network adapters by
// reading the output of the platform's network configuration command.
//
// # Overview
//
// The work is split in two. [Extract] is a pure function: given the raw text
// of a command such as ifconfig, a delimiter, and an optional [Filter], it
// returns the [Set] of unique addresses found on the accepted lines, dropping
// the all-zero placeholder address. A [Provider] is the thin layer around it
// that picks the command for the current platform, runs it, and hands its
// output to [Extract].
//
// # Quick Start
//
//	addrs, err := macaddrs.AllAddrs(ctx)
//
// Or restrict extraction to some lines:
//
//	addrs, err := macaddrs.AddrsWithFilter(ctx, macaddrs.Contains("eth0"))
//
// # Extracting From Text
//
// Output captured elsewhere can be scanned directly:
//
//	addrs, err := macaddrs.Extract(output, macaddrs.DelimiterColon, nil)
//
// Addresses are returned exactly as printed; case is not normalized, so
// getmac yields 10-7B-44-8E-84-A5 and ifconfig yields 10:7b:44:8e:84:a5.
// Only the address made entirely of 00 groups is discarded; 00:19:86:00:17:11
// is kept.
//
// # Filters
//
// A [Filter] is any func(string) bool. [Contains], [Not], [AnyOf], and [AllOf]
// build common filters, and [SkipVirtualInterfaces] drops lines that begin
// with a VPN, bridge, or container interface name.
//
// # Platform Support
//
//   - Linux: /sbin/ifconfig -a, falling back to /sbin/ip link
//   - macOS and other Unix systems: /sbin/ifconfig -a
//   - Windows: %SystemRoot%\System32\getmac.exe, run without a console window
//
// Use [Provider.WithSources] to run a different command.
//
// # Testing
//
// Inject a custom [CommandExecutor] via [Provider.WithExecutor] to replace
// real system commands with deterministic test doubles:
//
//	provider := macaddrs.New().WithExecutor(myMock)
//
// # CLI Tool
//
// A command-line tool is provided in cmd/macaddrs:
//
//	macaddrs
//	macaddrs --contains eth0 --json
//	ip link | macaddrs --input -
//	macaddrs version
package macaddrs
