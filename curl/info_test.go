package curl

import "testing"

func TestClassifyInfo(t *testing.T) {
	tests := []struct {
		name      string
		info      string
		version   Version
		wantClass InfoClass
		wantKnown bool
	}{
		{"string info", "EFFECTIVE_URL", testVersion, InfoClassString, true},
		{"long info", "RESPONSE_CODE", testVersion, InfoClassLong, true},
		{"double info", "TOTAL_TIME", testVersion, InfoClassDouble, true},
		{"slist info", "COOKIELIST", testVersion, InfoClassSList, true},
		{"socket info", "ACTIVESOCKET", testVersion, InfoClassSocket, true},
		{"socket info below gate", "ACTIVESOCKET", MakeVersion(7, 44, 0), InfoNotImplemented, true},
		{"wide timing at gate", "TOTAL_TIME_T", Version7610, InfoClassOffT, true},
		{"wide timing below gate", "TOTAL_TIME_T", MakeVersion(7, 60, 0), InfoNotImplemented, true},
		{"known but unsupported", "CERTINFO", testVersion, InfoNotImplemented, true},
		{"unknown name", "NO_SUCH_INFO", testVersion, InfoNotImplemented, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, known := ClassifyInfo(tt.info, tt.version)
			if known != tt.wantKnown {
				t.Fatalf("known = %v, want %v", known, tt.wantKnown)
			}
			if desc.Class != tt.wantClass {
				t.Errorf("class = %v, want %v", desc.Class, tt.wantClass)
			}
		})
	}
}

func TestClassifyInfoID(t *testing.T) {
	desc, known := ClassifyInfoID(InfoActiveSocket, testVersion)
	if !known || desc.Class != InfoClassSocket {
		t.Fatalf("ClassifyInfoID(InfoActiveSocket) = %+v, %v", desc, known)
	}

	if _, known := ClassifyInfoID(Info(0x700000), testVersion); known {
		t.Error("unknown id must not classify as known")
	}
}

func TestInfoTableConsistency(t *testing.T) {
	seenNames := make(map[string]bool, len(infoTable))
	seenIDs := make(map[Info]bool, len(infoTable))
	for _, d := range infoTable {
		if d.Name == "" {
			t.Errorf("info %d has no name", d.Info)
		}
		if seenNames[d.Name] {
			t.Errorf("duplicate info name %q", d.Name)
		}
		if seenIDs[d.Info] {
			t.Errorf("duplicate info id %#x (%s)", int32(d.Info), d.Name)
		}
		seenNames[d.Name] = true
		seenIDs[d.Info] = true
	}
}

func TestInfoTypePrefixMatchesClass(t *testing.T) {
	// Identifiers encode their out-parameter type in the high bits; every
	// implemented table row must agree with that encoding.
	prefixFor := map[InfoClass]Info{
		InfoClassString: infoString,
		InfoClassLong:   infoLong,
		InfoClassDouble: infoDouble,
		InfoClassSList:  infoSList,
		InfoClassSocket: infoSocket,
		InfoClassOffT:   infoOffT,
	}
	for _, d := range infoTable {
		if d.Class == InfoNotImplemented {
			continue
		}
		want := prefixFor[d.Class]
		if d.Info&0xf00000 != want {
			t.Errorf("%s: id %#x does not carry prefix %#x for class %v",
				d.Name, int32(d.Info), int32(want), d.Class)
		}
	}
}
