package curl

import "strconv"

// Option is an engine option identifier. Numeric values follow the engine's
// convention of encoding the option's transfer type in the value range.
type Option int32

// Value-range bases, matching the engine ABI.
const (
	optLong     Option = 0
	optObject   Option = 10000
	optFunction Option = 20000
	optOffT     Option = 30000
)

// IsWide reports whether the option transfers at off_t width.
func (o Option) IsWide() bool { return o >= optOffT }

// String returns the symbolic name when the option is in the tables, the
// numeric form otherwise.
func (o Option) String() string {
	if n := OptionName(o); n != "" {
		return n
	}
	return "option#" + strconv.Itoa(int(o))
}

// Class is the closed set of option kinds the adapter knows how to install.
// Every symbolic option maps to exactly one class; identifiers outside the
// tables classify as ClassNotImplemented with a descriptive rejection.
type Class uint8

const (
	ClassNotImplemented Class = iota
	ClassSpecific            // opaque engine-specific pointer values
	ClassList                // ordered sequence of strings (or multipart body)
	ClassString              // string or null
	ClassInteger             // number; wide options transfer as 64-bit
	ClassFunction            // host callable or null
)

var classNames = [...]string{
	ClassNotImplemented: "not-implemented",
	ClassSpecific:       "specific",
	ClassList:           "list",
	ClassString:         "string",
	ClassInteger:        "integer",
	ClassFunction:       "function",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

// OptionDesc is one row of the option table.
type OptionDesc struct {
	Name   string
	Option Option
	Class  Class
	// MinVersion is the first engine release that knows the option;
	// zero means it has always existed.
	MinVersion Version
}

var optionsByName map[string]*OptionDesc
var optionsByID map[Option]*OptionDesc

func init() {
	optionsByName = make(map[string]*OptionDesc, len(optionTable))
	optionsByID = make(map[Option]*OptionDesc, len(optionTable))
	for i := range optionTable {
		d := &optionTable[i]
		optionsByName[d.Name] = d
		optionsByID[d.Option] = d
	}
}

// ClassifyOption resolves a symbolic option name against an engine release.
// Unknown names and options the release predates both come back as
// ClassNotImplemented; the boolean distinguishes "known identifier" from
// "never heard of it".
func ClassifyOption(name string, version Version) (OptionDesc, bool) {
	d, ok := optionsByName[name]
	if !ok {
		return OptionDesc{Name: name, Class: ClassNotImplemented}, false
	}
	out := *d
	if d.MinVersion != 0 && !version.AtLeast(d.MinVersion) {
		out.Class = ClassNotImplemented
	}
	return out, true
}

// ClassifyOptionID is ClassifyOption for callers holding the numeric form.
func ClassifyOptionID(opt Option, version Version) (OptionDesc, bool) {
	d, ok := optionsByID[opt]
	if !ok {
		return OptionDesc{Option: opt, Class: ClassNotImplemented}, false
	}
	out := *d
	if d.MinVersion != 0 && !version.AtLeast(d.MinVersion) {
		out.Class = ClassNotImplemented
	}
	return out, true
}

// OptionName returns the symbolic name for a known option id.
func OptionName(opt Option) string {
	if d, ok := optionsByID[opt]; ok {
		return d.Name
	}
	return ""
}

// OptionCount returns the number of table entries. Tooling/tests only.
func OptionCount() int { return len(optionTable) }
