package variant

import (
	"fmt"
	"strings"
)

// The os-release file format is a simplified INI-like one: variable
// assignments with optional single or double quoting, comments, and
// backslash escapes within double-quoted and unquoted values.
var osReleaseLine = pattern(
	`^(?:(\s*(?:#.*)?)|(?:([A-Za-z0-9_]+)=((["'])?(.*?)(["'])?)))$`,
)

const (
	relGroupComment = 1
	relGroupVarname = 2
	relGroupFull    = 3
	relGroupOQuot   = 4
	relGroupQuoted  = 5
	relGroupCQuot   = 6
)

// ParseOSRelease parses the contents of an os-release style file into a
// name/value map. Comments and empty lines are skipped; malformed lines
// are errors.
func ParseOSRelease(contents string) (map[string]string, error) {
	res := make(map[string]string)
	for _, line := range strings.Split(contents, "\n") {
		name, value, ok, err := parseOSReleaseLine(line)
		if err != nil {
			return nil, err
		}
		if ok {
			res[name] = value
		}
	}
	return res, nil
}

func parseOSReleaseLine(line string) (string, string, bool, error) {
	m := osReleaseLine.FindStringSubmatch(line)
	if m == nil {
		return "", "", false, fmt.Errorf("unexpected os-release line %q", line)
	}
	varname := m[relGroupVarname]
	if varname == "" {
		// A comment or an empty line.
		return "", "", false, nil
	}
	oquot, cquot, quoted := m[relGroupOQuot], m[relGroupCQuot], m[relGroupQuoted]

	if oquot == "'" {
		if strings.Contains(quoted, "'") {
			return "", "", false, fmt.Errorf(
				"the value in the %q os-release line contains the quote character", line)
		}
		if cquot != oquot {
			return "", "", false, fmt.Errorf(
				"mismatched open/close quotes in the %q os-release line", line)
		}
		return varname, quoted, true, nil
	}

	if oquot == `"` {
		if cquot != oquot {
			return "", "", false, fmt.Errorf(
				"mismatched open/close quotes in the %q os-release line", line)
		}
	} else {
		quoted = m[relGroupFull]
	}

	var value strings.Builder
	for quoted != "" {
		idx := strings.IndexByte(quoted, '\\')
		if idx < 0 {
			value.WriteString(quoted)
			break
		}
		if idx == len(quoted)-1 {
			return "", "", false, fmt.Errorf(
				"backslash at the end of the %q os-release line", line)
		}
		value.WriteString(quoted[:idx])
		value.WriteByte(quoted[idx+1])
		quoted = quoted[idx+2:]
	}
	return varname, value.String(), true, nil
}
