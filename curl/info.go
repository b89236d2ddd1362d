package curl

// Info is an engine introspection identifier. The value range encodes the
// out-parameter type, same as the engine header does.
type Info int32

const (
	infoString Info = 0x100000
	infoLong   Info = 0x200000
	infoDouble Info = 0x300000
	infoSList  Info = 0x400000
	infoSocket Info = 0x500000
	infoOffT   Info = 0x600000
)

// Socket is the engine's socket handle type.
type Socket int64

// SocketBad is the engine's "no socket" sentinel.
const SocketBad Socket = -1

// InfoClass tells the adapter which typed out-parameter to use.
type InfoClass uint8

const (
	InfoNotImplemented InfoClass = iota
	InfoClassString
	InfoClassDouble
	InfoClassLong
	InfoClassOffT
	InfoClassSocket
	InfoClassSList
)

var infoClassNames = [...]string{
	InfoNotImplemented: "not-implemented",
	InfoClassString:    "string",
	InfoClassDouble:    "double",
	InfoClassLong:      "long",
	InfoClassOffT:      "off_t",
	InfoClassSocket:    "socket",
	InfoClassSList:     "slist",
}

func (c InfoClass) String() string {
	if int(c) < len(infoClassNames) {
		return infoClassNames[c]
	}
	return "unknown"
}

const (
	InfoEffectiveURL          Info = infoString + 1
	InfoResponseCode          Info = infoLong + 2
	InfoTotalTime             Info = infoDouble + 3
	InfoNamelookupTime        Info = infoDouble + 4
	InfoConnectTime           Info = infoDouble + 5
	InfoPretransferTime       Info = infoDouble + 6
	InfoSizeUpload            Info = infoDouble + 7
	InfoSizeDownload          Info = infoDouble + 8
	InfoSpeedDownload         Info = infoDouble + 9
	InfoSpeedUpload           Info = infoDouble + 10
	InfoHeaderSize            Info = infoLong + 11
	InfoRequestSize           Info = infoLong + 12
	InfoSSLVerifyResult       Info = infoLong + 13
	InfoFiletime              Info = infoLong + 14
	InfoContentLengthDownload Info = infoDouble + 15
	InfoContentLengthUpload   Info = infoDouble + 16
	InfoStartTransferTime     Info = infoDouble + 17
	InfoContentType           Info = infoString + 18
	InfoRedirectTime          Info = infoDouble + 19
	InfoRedirectCount         Info = infoLong + 20
	InfoPrivate               Info = infoString + 21
	InfoHTTPConnectCode       Info = infoLong + 22
	InfoHTTPAuthAvail         Info = infoLong + 23
	InfoProxyAuthAvail        Info = infoLong + 24
	InfoOSErrno               Info = infoLong + 25
	InfoNumConnects           Info = infoLong + 26
	InfoSSLEngines            Info = infoSList + 27
	InfoCookieList            Info = infoSList + 28
	InfoLastSocket            Info = infoLong + 29
	InfoFTPEntryPath          Info = infoString + 30
	InfoRedirectURL           Info = infoString + 31
	InfoPrimaryIP             Info = infoString + 32
	InfoAppConnectTime        Info = infoDouble + 33
	InfoCertInfo              Info = infoSList + 34
	InfoConditionUnmet        Info = infoLong + 35
	InfoRTSPSessionID         Info = infoString + 36
	InfoRTSPClientCseq        Info = infoLong + 37
	InfoRTSPServerCseq        Info = infoLong + 38
	InfoRTSPCseqRecv          Info = infoLong + 39
	InfoPrimaryPort           Info = infoLong + 40
	InfoLocalIP               Info = infoString + 41
	InfoLocalPort             Info = infoLong + 42
	InfoTLSSession            Info = infoSList + 43
	InfoActiveSocket          Info = infoSocket + 44
	InfoTLSSSLPtr             Info = infoSList + 45
	InfoHTTPVersion           Info = infoLong + 46
	InfoProxySSLVerifyResult  Info = infoLong + 47
	InfoProtocol              Info = infoLong + 48
	InfoScheme                Info = infoString + 49
	InfoTotalTimeT            Info = infoOffT + 50
	InfoNamelookupTimeT       Info = infoOffT + 51
	InfoConnectTimeT          Info = infoOffT + 52
	InfoPretransferTimeT      Info = infoOffT + 53
	InfoStartTransferTimeT    Info = infoOffT + 54
	InfoRedirectTimeT         Info = infoOffT + 55
	InfoAppConnectTimeT       Info = infoOffT + 56
	InfoSizeUploadT           Info = infoOffT + 7
	InfoSizeDownloadT         Info = infoOffT + 8
	InfoSpeedDownloadT        Info = infoOffT + 9
	InfoSpeedUploadT          Info = infoOffT + 10
	InfoFiletimeT             Info = infoOffT + 14
	InfoContentLengthDownloadT Info = infoOffT + 15
	InfoContentLengthUploadT   Info = infoOffT + 16
)

// InfoDesc is one row of the info table.
type InfoDesc struct {
	Name       string
	Info       Info
	Class      InfoClass
	MinVersion Version
}

var infoTable = [...]InfoDesc{
	{Name: "EFFECTIVE_URL", Info: InfoEffectiveURL, Class: InfoClassString},
	{Name: "CONTENT_TYPE", Info: InfoContentType, Class: InfoClassString},
	{Name: "FTP_ENTRY_PATH", Info: InfoFTPEntryPath, Class: InfoClassString},
	{Name: "REDIRECT_URL", Info: InfoRedirectURL, Class: InfoClassString},
	{Name: "PRIMARY_IP", Info: InfoPrimaryIP, Class: InfoClassString},
	{Name: "RTSP_SESSION_ID", Info: InfoRTSPSessionID, Class: InfoClassString},
	{Name: "LOCAL_IP", Info: InfoLocalIP, Class: InfoClassString},
	{Name: "SCHEME", Info: InfoScheme, Class: InfoClassString},

	{Name: "RESPONSE_CODE", Info: InfoResponseCode, Class: InfoClassLong},
	{Name: "HEADER_SIZE", Info: InfoHeaderSize, Class: InfoClassLong},
	{Name: "REQUEST_SIZE", Info: InfoRequestSize, Class: InfoClassLong},
	{Name: "SSL_VERIFYRESULT", Info: InfoSSLVerifyResult, Class: InfoClassLong},
	{Name: "FILETIME", Info: InfoFiletime, Class: InfoClassLong},
	{Name: "REDIRECT_COUNT", Info: InfoRedirectCount, Class: InfoClassLong},
	{Name: "HTTP_CONNECTCODE", Info: InfoHTTPConnectCode, Class: InfoClassLong},
	{Name: "HTTPAUTH_AVAIL", Info: InfoHTTPAuthAvail, Class: InfoClassLong},
	{Name: "PROXYAUTH_AVAIL", Info: InfoProxyAuthAvail, Class: InfoClassLong},
	{Name: "OS_ERRNO", Info: InfoOSErrno, Class: InfoClassLong},
	{Name: "NUM_CONNECTS", Info: InfoNumConnects, Class: InfoClassLong},
	{Name: "LASTSOCKET", Info: InfoLastSocket, Class: InfoClassLong},
	{Name: "CONDITION_UNMET", Info: InfoConditionUnmet, Class: InfoClassLong},
	{Name: "RTSP_CLIENT_CSEQ", Info: InfoRTSPClientCseq, Class: InfoClassLong},
	{Name: "RTSP_SERVER_CSEQ", Info: InfoRTSPServerCseq, Class: InfoClassLong},
	{Name: "RTSP_CSEQ_RECV", Info: InfoRTSPCseqRecv, Class: InfoClassLong},
	{Name: "PRIMARY_PORT", Info: InfoPrimaryPort, Class: InfoClassLong},
	{Name: "LOCAL_PORT", Info: InfoLocalPort, Class: InfoClassLong},
	{Name: "HTTP_VERSION", Info: InfoHTTPVersion, Class: InfoClassLong},
	{Name: "PROXY_SSL_VERIFYRESULT", Info: InfoProxySSLVerifyResult, Class: InfoClassLong},
	{Name: "PROTOCOL", Info: InfoProtocol, Class: InfoClassLong},

	{Name: "TOTAL_TIME", Info: InfoTotalTime, Class: InfoClassDouble},
	{Name: "NAMELOOKUP_TIME", Info: InfoNamelookupTime, Class: InfoClassDouble},
	{Name: "CONNECT_TIME", Info: InfoConnectTime, Class: InfoClassDouble},
	{Name: "PRETRANSFER_TIME", Info: InfoPretransferTime, Class: InfoClassDouble},
	{Name: "SIZE_UPLOAD", Info: InfoSizeUpload, Class: InfoClassDouble},
	{Name: "SIZE_DOWNLOAD", Info: InfoSizeDownload, Class: InfoClassDouble},
	{Name: "SPEED_DOWNLOAD", Info: InfoSpeedDownload, Class: InfoClassDouble},
	{Name: "SPEED_UPLOAD", Info: InfoSpeedUpload, Class: InfoClassDouble},
	{Name: "CONTENT_LENGTH_DOWNLOAD", Info: InfoContentLengthDownload, Class: InfoClassDouble},
	{Name: "CONTENT_LENGTH_UPLOAD", Info: InfoContentLengthUpload, Class: InfoClassDouble},
	{Name: "STARTTRANSFER_TIME", Info: InfoStartTransferTime, Class: InfoClassDouble},
	{Name: "REDIRECT_TIME", Info: InfoRedirectTime, Class: InfoClassDouble},
	{Name: "APPCONNECT_TIME", Info: InfoAppConnectTime, Class: InfoClassDouble},

	{Name: "TOTAL_TIME_T", Info: InfoTotalTimeT, Class: InfoClassOffT, MinVersion: Version7610},
	{Name: "NAMELOOKUP_TIME_T", Info: InfoNamelookupTimeT, Class: InfoClassOffT, MinVersion: Version7610},
	{Name: "CONNECT_TIME_T", Info: InfoConnectTimeT, Class: InfoClassOffT, MinVersion: Version7610},
	{Name: "PRETRANSFER_TIME_T", Info: InfoPretransferTimeT, Class: InfoClassOffT, MinVersion: Version7610},
	{Name: "STARTTRANSFER_TIME_T", Info: InfoStartTransferTimeT, Class: InfoClassOffT, MinVersion: Version7610},
	{Name: "REDIRECT_TIME_T", Info: InfoRedirectTimeT, Class: InfoClassOffT, MinVersion: Version7610},
	{Name: "APPCONNECT_TIME_T", Info: InfoAppConnectTimeT, Class: InfoClassOffT, MinVersion: Version7610},
	{Name: "FILETIME_T", Info: InfoFiletimeT, Class: InfoClassOffT, MinVersion: Version7590},
	{Name: "SIZE_UPLOAD_T", Info: InfoSizeUploadT, Class: InfoClassOffT, MinVersion: MakeVersion(7, 55, 0)},
	{Name: "SIZE_DOWNLOAD_T", Info: InfoSizeDownloadT, Class: InfoClassOffT, MinVersion: MakeVersion(7, 55, 0)},
	{Name: "SPEED_DOWNLOAD_T", Info: InfoSpeedDownloadT, Class: InfoClassOffT, MinVersion: MakeVersion(7, 55, 0)},
	{Name: "SPEED_UPLOAD_T", Info: InfoSpeedUploadT, Class: InfoClassOffT, MinVersion: MakeVersion(7, 55, 0)},
	{Name: "CONTENT_LENGTH_DOWNLOAD_T", Info: InfoContentLengthDownloadT, Class: InfoClassOffT, MinVersion: MakeVersion(7, 55, 0)},
	{Name: "CONTENT_LENGTH_UPLOAD_T", Info: InfoContentLengthUploadT, Class: InfoClassOffT, MinVersion: MakeVersion(7, 55, 0)},

	{Name: "ACTIVESOCKET", Info: InfoActiveSocket, Class: InfoClassSocket, MinVersion: Version7450},

	{Name: "SSL_ENGINES", Info: InfoSSLEngines, Class: InfoClassSList},
	{Name: "COOKIELIST", Info: InfoCookieList, Class: InfoClassSList},

	// Out-parameters whose payloads cannot cross the boundary.
	{Name: "PRIVATE", Info: InfoPrivate, Class: InfoNotImplemented},
	{Name: "CERTINFO", Info: InfoCertInfo, Class: InfoNotImplemented},
	{Name: "TLS_SESSION", Info: InfoTLSSession, Class: InfoNotImplemented},
	{Name: "TLS_SSL_PTR", Info: InfoTLSSSLPtr, Class: InfoNotImplemented},
}

var infosByName map[string]*InfoDesc
var infosByID map[Info]*InfoDesc

func init() {
	infosByName = make(map[string]*InfoDesc, len(infoTable))
	infosByID = make(map[Info]*InfoDesc, len(infoTable))
	for i := range infoTable {
		d := &infoTable[i]
		infosByName[d.Name] = d
		infosByID[d.Info] = d
	}
}

// ClassifyInfo resolves a symbolic info name against an engine release.
// Same contract as ClassifyOption.
func ClassifyInfo(name string, version Version) (InfoDesc, bool) {
	d, ok := infosByName[name]
	if !ok {
		return InfoDesc{Name: name, Class: InfoNotImplemented}, false
	}
	out := *d
	if d.MinVersion != 0 && !version.AtLeast(d.MinVersion) {
		out.Class = InfoNotImplemented
	}
	return out, true
}

// ClassifyInfoID is ClassifyInfo for callers holding the numeric form.
func ClassifyInfoID(info Info, version Version) (InfoDesc, bool) {
	d, ok := infosByID[info]
	if !ok {
		return InfoDesc{Info: info, Class: InfoNotImplemented}, false
	}
	out := *d
	if d.MinVersion != 0 && !version.AtLeast(d.MinVersion) {
		out.Class = InfoNotImplemented
	}
	return out, true
}

// InfoName returns the symbolic name for a known info id.
func InfoName(info Info) string {
	if d, ok := infosByID[info]; ok {
		return d.Name
	}
	return ""
}
