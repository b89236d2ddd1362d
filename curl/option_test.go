package curl

import "testing"

var testVersion = MakeVersion(7, 70, 0)

func TestClassifyOption(t *testing.T) {
	tests := []struct {
		name      string
		option    string
		version   Version
		wantClass Class
		wantKnown bool
	}{
		{"string option", "URL", testVersion, ClassString, true},
		{"integer option", "VERBOSE", testVersion, ClassInteger, true},
		{"list option", "HTTPHEADER", testVersion, ClassList, true},
		{"multipart list option", "HTTPPOST", testVersion, ClassList, true},
		{"function option", "WRITEFUNCTION", testVersion, ClassFunction, true},
		{"specific option", "SHARE", testVersion, ClassSpecific, true},
		{"wide integer option", "POSTFIELDSIZE_LARGE", testVersion, ClassInteger, true},
		{"known but unsupported", "ERRORBUFFER", testVersion, ClassNotImplemented, true},
		{"unknown name", "NO_SUCH_OPTION", testVersion, ClassNotImplemented, false},
		{"empty name", "", testVersion, ClassNotImplemented, false},
		{"gated option at version", "XFERINFOFUNCTION", Version7320, ClassFunction, true},
		{"gated option below version", "XFERINFOFUNCTION", MakeVersion(7, 31, 0), ClassNotImplemented, true},
		{"trailer below gate", "TRAILERFUNCTION", MakeVersion(7, 63, 0), ClassNotImplemented, true},
		{"trailer at gate", "TRAILERFUNCTION", Version7640, ClassFunction, true},
		{"doh url below gate", "DOH_URL", MakeVersion(7, 61, 0), ClassNotImplemented, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, known := ClassifyOption(tt.option, tt.version)
			if known != tt.wantKnown {
				t.Fatalf("known = %v, want %v", known, tt.wantKnown)
			}
			if desc.Class != tt.wantClass {
				t.Errorf("class = %v, want %v", desc.Class, tt.wantClass)
			}
			if known && desc.Name != tt.option {
				t.Errorf("name = %q, want %q", desc.Name, tt.option)
			}
		})
	}
}

func TestClassifyOptionID(t *testing.T) {
	desc, known := ClassifyOptionID(OptURL, testVersion)
	if !known || desc.Class != ClassString || desc.Name != "URL" {
		t.Fatalf("ClassifyOptionID(OptURL) = %+v, %v", desc, known)
	}

	if _, known := ClassifyOptionID(Option(99999), testVersion); known {
		t.Error("unknown id must not classify as known")
	}
}

func TestOptionTableConsistency(t *testing.T) {
	if OptionCount() == 0 {
		t.Fatal("empty option table")
	}

	seenNames := make(map[string]bool, OptionCount())
	seenIDs := make(map[Option]bool, OptionCount())
	for _, d := range optionTable {
		if d.Name == "" {
			t.Errorf("option %d has no name", d.Option)
		}
		if seenNames[d.Name] {
			t.Errorf("duplicate option name %q", d.Name)
		}
		if seenIDs[d.Option] {
			t.Errorf("duplicate option id %d (%s)", d.Option, d.Name)
		}
		seenNames[d.Name] = true
		seenIDs[d.Option] = true
	}
}

func TestOptionValueRanges(t *testing.T) {
	// The numeric encoding must place each class in its engine value range.
	tests := []struct {
		name string
		opt  Option
		base Option
	}{
		{"URL is object-range", OptURL, optObject},
		{"VERBOSE is long-range", OptVerbose, optLong},
		{"WRITEFUNCTION is function-range", OptWriteFunction, optFunction},
		{"POSTFIELDSIZE_LARGE is off_t-range", OptPostFieldSizeLarge, optOffT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.opt < tt.base || tt.opt >= tt.base+10000 {
				t.Errorf("option %d outside range starting at %d", tt.opt, tt.base)
			}
		})
	}
}

func TestOptionName(t *testing.T) {
	if got := OptionName(OptHTTPHeader); got != "HTTPHEADER" {
		t.Errorf("OptionName(OptHTTPHeader) = %q", got)
	}
	if got := OptionName(Option(99999)); got != "" {
		t.Errorf("OptionName(unknown) = %q, want empty", got)
	}
}
