package curl

// InfoType tags the kind of data handed to the debug-trace callback.
type InfoType int32

const (
	InfoText InfoType = iota
	InfoHeaderIn
	InfoHeaderOut
	InfoDataIn
	InfoDataOut
	InfoSSLDataIn
	InfoSSLDataOut
)

var infoTypeNames = [...]string{
	InfoText:       "text",
	InfoHeaderIn:   "header-in",
	InfoHeaderOut:  "header-out",
	InfoDataIn:     "data-in",
	InfoDataOut:    "data-out",
	InfoSSLDataIn:  "ssl-data-in",
	InfoSSLDataOut: "ssl-data-out",
}

func (t InfoType) String() string {
	if int(t) < len(infoTypeNames) {
		return infoTypeNames[t]
	}
	return "unknown"
}

// Return sentinels the engine understands from callback slots.
const (
	ChunkBgnFuncOK   = 0
	ChunkBgnFuncFail = 1
	ChunkBgnFuncSkip = 2

	ChunkEndFuncOK   = 0
	ChunkEndFuncFail = 1

	FnMatchFuncMatch   = 0
	FnMatchFuncNoMatch = 1
	FnMatchFuncFail    = 2

	TrailerFuncOK    = 0
	TrailerFuncAbort = 1
)
