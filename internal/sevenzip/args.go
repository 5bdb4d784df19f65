// Package sevenzip builds process invocations for an external 7-Zip
// style archiver binary.
package sevenzip

import "strings"

// switchPrefix is the reserved output-routing switch namespace. Raw
// arguments in this namespace are stripped so the fixed routing below is
// always authoritative.
const switchPrefix = "-bs"

// assumeYes answers every interactive prompt with yes.
const assumeYes = "-y"

// Fixed output routing, always appended in this order:
// program messages to stdout, error messages to stdout, progress to stderr.
var routingSwitches = []string{"-bso1", "-bse1", "-bsp2"}

// Normalize derives the final argument vector from the caller's raw
// arguments. Non-interactive runs get -y prepended unless already present;
// interactive runs keep whatever confirmation behavior the caller chose.
// The input slice is never mutated.
func Normalize(raw []string, interactive bool) []string {
	out := make([]string, 0, len(raw)+4)
	if !interactive && !contains(raw, assumeYes) {
		out = append(out, assumeYes)
	}
	for _, arg := range raw {
		if strings.HasPrefix(arg, switchPrefix) {
			continue
		}
		out = append(out, arg)
	}
	return append(out, routingSwitches...)
}

func contains(args []string, want string) bool {
	for _, arg := range args {
		if arg == want {
			return true
		}
	}
	return false
}
