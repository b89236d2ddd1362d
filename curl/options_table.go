package curl

// Option identifiers the adapter references directly. The full symbolic
// table below carries the rest.
const (
	OptPort           Option = optLong + 3
	OptTimeout        Option = optLong + 13
	OptInfileSize     Option = optLong + 14
	OptLowSpeedLimit  Option = optLong + 19
	OptLowSpeedTime   Option = optLong + 20
	OptResumeFrom     Option = optLong + 21
	OptCRLF           Option = optLong + 27
	OptSSLVersion     Option = optLong + 32
	OptTimeCondition  Option = optLong + 33
	OptTimeValue      Option = optLong + 34
	OptVerbose        Option = optLong + 41
	OptHeader         Option = optLong + 42
	OptNoProgress     Option = optLong + 43
	OptNoBody         Option = optLong + 44
	OptFailOnError    Option = optLong + 45
	OptUpload         Option = optLong + 46
	OptPost           Option = optLong + 47
	OptDirListOnly    Option = optLong + 48
	OptAppend         Option = optLong + 50
	OptNetrc          Option = optLong + 51
	OptFollowLocation Option = optLong + 52
	OptTransferText   Option = optLong + 53
	OptPut            Option = optLong + 54
	OptPostFieldSize  Option = optLong + 60
	OptSSLVerifyPeer  Option = optLong + 64
	OptMaxRedirs      Option = optLong + 68
	OptFiletime       Option = optLong + 69
	OptConnectTimeout Option = optLong + 78
	OptHTTPGet        Option = optLong + 80
	OptSSLVerifyHost  Option = optLong + 81
	OptHTTPVersion    Option = optLong + 84
	OptBufferSize     Option = optLong + 98
	OptNoSignal       Option = optLong + 99
	OptProxyType      Option = optLong + 101
	OptHTTPAuth       Option = optLong + 107
	OptIPResolve      Option = optLong + 113
	OptMaxFileSize    Option = optLong + 114
	OptUseSSL         Option = optLong + 119
	OptTCPNoDelay     Option = optLong + 121
	OptConnectOnly    Option = optLong + 141
	OptTimeoutMs      Option = optLong + 155
	OptConnectTimeoutMs Option = optLong + 156
	OptWildcardMatch  Option = optLong + 197
	OptTCPKeepAlive   Option = optLong + 213
	OptTCPKeepIdle    Option = optLong + 214
	OptTCPKeepIntvl   Option = optLong + 215

	OptWriteData     Option = optObject + 1
	OptURL           Option = optObject + 2
	OptProxy         Option = optObject + 4
	OptUserPwd       Option = optObject + 5
	OptProxyUserPwd  Option = optObject + 6
	OptRange         Option = optObject + 7
	OptReadData      Option = optObject + 9
	OptErrorBuffer   Option = optObject + 10
	OptPostFields    Option = optObject + 15
	OptReferer       Option = optObject + 16
	OptFTPPort       Option = optObject + 17
	OptUserAgent     Option = optObject + 18
	OptCookie        Option = optObject + 22
	OptHTTPHeader    Option = optObject + 23
	OptHTTPPost      Option = optObject + 24
	OptSSLCert       Option = optObject + 25
	OptKeyPasswd     Option = optObject + 26
	OptQuote         Option = optObject + 28
	OptHeaderData    Option = optObject + 29
	OptCookieFile    Option = optObject + 31
	OptCustomRequest Option = optObject + 36
	OptStderr        Option = optObject + 37
	OptPostQuote     Option = optObject + 39
	OptProgressData  Option = optObject + 57
	OptInterface     Option = optObject + 62
	OptKRBLevel      Option = optObject + 63
	OptCAInfo        Option = optObject + 65
	OptTelnetOptions Option = optObject + 70
	OptCookieJar     Option = optObject + 82
	OptSSLCipherList Option = optObject + 83
	OptSSLCertType   Option = optObject + 86
	OptSSLKey        Option = optObject + 87
	OptSSLKeyType    Option = optObject + 88
	OptSSLEngine     Option = optObject + 89
	OptPreQuote      Option = optObject + 93
	OptDebugData     Option = optObject + 95
	OptCAPath        Option = optObject + 97
	OptShare         Option = optObject + 100
	OptAcceptEncoding Option = optObject + 102
	OptPrivate       Option = optObject + 103
	OptHTTP200Aliases Option = optObject + 104
	OptNetrcFile     Option = optObject + 118
	OptFTPAccount    Option = optObject + 134
	OptCookieList    Option = optObject + 135
	OptSeekData      Option = optObject + 168
	OptUsername      Option = optObject + 173
	OptPassword      Option = optObject + 174
	OptProxyUsername Option = optObject + 175
	OptProxyPassword Option = optObject + 176
	OptNoProxy       Option = optObject + 177
	OptSSHKnownHosts Option = optObject + 183
	OptMailFrom      Option = optObject + 186
	OptMailRcpt      Option = optObject + 187
	OptChunkData     Option = optObject + 201
	OptFnMatchData   Option = optObject + 202
	OptResolve       Option = optObject + 203
	OptDNSServers    Option = optObject + 211
	OptProxyHeader   Option = optObject + 228
	OptUnixSocketPath Option = optObject + 231
	OptDefaultProtocol Option = optObject + 238
	OptConnectTo     Option = optObject + 243
	OptRequestTarget Option = optObject + 266
	OptDOHURL        Option = optObject + 279
	OptTrailerData   Option = optObject + 284

	OptWriteFunction    Option = optFunction + 11
	OptReadFunction     Option = optFunction + 12
	OptProgressFunction Option = optFunction + 56
	OptHeaderFunction   Option = optFunction + 79
	OptDebugFunction    Option = optFunction + 94
	OptSSLCtxFunction   Option = optFunction + 108
	OptIoctlFunction    Option = optFunction + 130
	OptSockoptFunction  Option = optFunction + 148
	OptOpenSocketFunction Option = optFunction + 163
	OptSeekFunction     Option = optFunction + 167
	OptSSHKeyFunction   Option = optFunction + 184
	OptChunkBgnFunction Option = optFunction + 198
	OptChunkEndFunction Option = optFunction + 199
	OptFnMatchFunction  Option = optFunction + 200
	OptCloseSocketFunction Option = optFunction + 208
	OptXferInfoFunction Option = optFunction + 219
	OptTrailerFunction  Option = optFunction + 283

	OptInfileSizeLarge    Option = optOffT + 115
	OptResumeFromLarge    Option = optOffT + 116
	OptMaxFileSizeLarge   Option = optOffT + 117
	OptPostFieldSizeLarge Option = optOffT + 120
	OptMaxSendSpeedLarge  Option = optOffT + 145
	OptMaxRecvSpeedLarge  Option = optOffT + 146
)

// XferInfoData shares the engine slot with ProgressData; the engine aliases
// the two names to one option value.
const OptXferInfoData = OptProgressData

// optionTable is the symbolic option vocabulary. Grouped by class, sorted by
// id within each group. Data-pointer slots the adapter manages itself
// (WRITEDATA and friends) classify as not-implemented: the host never
// installs raw pointers.
var optionTable = [...]OptionDesc{
	// Integer / enum valued.
	{Name: "PORT", Option: OptPort, Class: ClassInteger},
	{Name: "TIMEOUT", Option: OptTimeout, Class: ClassInteger},
	{Name: "INFILESIZE", Option: OptInfileSize, Class: ClassInteger},
	{Name: "LOW_SPEED_LIMIT", Option: OptLowSpeedLimit, Class: ClassInteger},
	{Name: "LOW_SPEED_TIME", Option: OptLowSpeedTime, Class: ClassInteger},
	{Name: "RESUME_FROM", Option: OptResumeFrom, Class: ClassInteger},
	{Name: "CRLF", Option: OptCRLF, Class: ClassInteger},
	{Name: "SSLVERSION", Option: OptSSLVersion, Class: ClassInteger},
	{Name: "TIMECONDITION", Option: OptTimeCondition, Class: ClassInteger},
	{Name: "TIMEVALUE", Option: OptTimeValue, Class: ClassInteger},
	{Name: "VERBOSE", Option: OptVerbose, Class: ClassInteger},
	{Name: "HEADER", Option: OptHeader, Class: ClassInteger},
	{Name: "NOPROGRESS", Option: OptNoProgress, Class: ClassInteger},
	{Name: "NOBODY", Option: OptNoBody, Class: ClassInteger},
	{Name: "FAILONERROR", Option: OptFailOnError, Class: ClassInteger},
	{Name: "UPLOAD", Option: OptUpload, Class: ClassInteger},
	{Name: "POST", Option: OptPost, Class: ClassInteger},
	{Name: "DIRLISTONLY", Option: OptDirListOnly, Class: ClassInteger},
	{Name: "APPEND", Option: OptAppend, Class: ClassInteger},
	{Name: "NETRC", Option: OptNetrc, Class: ClassInteger},
	{Name: "FOLLOWLOCATION", Option: OptFollowLocation, Class: ClassInteger},
	{Name: "TRANSFERTEXT", Option: OptTransferText, Class: ClassInteger},
	{Name: "PUT", Option: OptPut, Class: ClassInteger},
	{Name: "POSTFIELDSIZE", Option: OptPostFieldSize, Class: ClassInteger},
	{Name: "SSL_VERIFYPEER", Option: OptSSLVerifyPeer, Class: ClassInteger},
	{Name: "MAXREDIRS", Option: OptMaxRedirs, Class: ClassInteger},
	{Name: "FILETIME", Option: OptFiletime, Class: ClassInteger},
	{Name: "CONNECTTIMEOUT", Option: OptConnectTimeout, Class: ClassInteger},
	{Name: "HTTPGET", Option: OptHTTPGet, Class: ClassInteger},
	{Name: "SSL_VERIFYHOST", Option: OptSSLVerifyHost, Class: ClassInteger},
	{Name: "HTTP_VERSION", Option: OptHTTPVersion, Class: ClassInteger},
	{Name: "BUFFERSIZE", Option: OptBufferSize, Class: ClassInteger},
	{Name: "NOSIGNAL", Option: OptNoSignal, Class: ClassInteger},
	{Name: "PROXYTYPE", Option: OptProxyType, Class: ClassInteger},
	{Name: "HTTPAUTH", Option: OptHTTPAuth, Class: ClassInteger},
	{Name: "IPRESOLVE", Option: OptIPResolve, Class: ClassInteger},
	{Name: "MAXFILESIZE", Option: OptMaxFileSize, Class: ClassInteger},
	{Name: "USE_SSL", Option: OptUseSSL, Class: ClassInteger},
	{Name: "TCP_NODELAY", Option: OptTCPNoDelay, Class: ClassInteger},
	{Name: "CONNECT_ONLY", Option: OptConnectOnly, Class: ClassInteger},
	{Name: "TIMEOUT_MS", Option: OptTimeoutMs, Class: ClassInteger},
	{Name: "CONNECTTIMEOUT_MS", Option: OptConnectTimeoutMs, Class: ClassInteger},
	{Name: "WILDCARDMATCH", Option: OptWildcardMatch, Class: ClassInteger},
	{Name: "TCP_KEEPALIVE", Option: OptTCPKeepAlive, Class: ClassInteger},
	{Name: "TCP_KEEPIDLE", Option: OptTCPKeepIdle, Class: ClassInteger},
	{Name: "TCP_KEEPINTVL", Option: OptTCPKeepIntvl, Class: ClassInteger},
	// READDATA carries a file descriptor number; the adapter intercepts it
	// client-side (see Easy.SetOpt) instead of forwarding a pointer.
	{Name: "READDATA", Option: OptReadData, Class: ClassInteger},
	// Wide-range options transfer as 64-bit.
	{Name: "INFILESIZE_LARGE", Option: OptInfileSizeLarge, Class: ClassInteger},
	{Name: "RESUME_FROM_LARGE", Option: OptResumeFromLarge, Class: ClassInteger},
	{Name: "MAXFILESIZE_LARGE", Option: OptMaxFileSizeLarge, Class: ClassInteger},
	{Name: "POSTFIELDSIZE_LARGE", Option: OptPostFieldSizeLarge, Class: ClassInteger},
	{Name: "MAX_SEND_SPEED_LARGE", Option: OptMaxSendSpeedLarge, Class: ClassInteger},
	{Name: "MAX_RECV_SPEED_LARGE", Option: OptMaxRecvSpeedLarge, Class: ClassInteger},

	// String valued.
	{Name: "URL", Option: OptURL, Class: ClassString},
	{Name: "PROXY", Option: OptProxy, Class: ClassString},
	{Name: "USERPWD", Option: OptUserPwd, Class: ClassString},
	{Name: "PROXYUSERPWD", Option: OptProxyUserPwd, Class: ClassString},
	{Name: "RANGE", Option: OptRange, Class: ClassString},
	{Name: "POSTFIELDS", Option: OptPostFields, Class: ClassString},
	{Name: "REFERER", Option: OptReferer, Class: ClassString},
	{Name: "FTPPORT", Option: OptFTPPort, Class: ClassString},
	{Name: "USERAGENT", Option: OptUserAgent, Class: ClassString},
	{Name: "COOKIE", Option: OptCookie, Class: ClassString},
	{Name: "SSLCERT", Option: OptSSLCert, Class: ClassString},
	{Name: "KEYPASSWD", Option: OptKeyPasswd, Class: ClassString},
	{Name: "COOKIEFILE", Option: OptCookieFile, Class: ClassString},
	{Name: "CUSTOMREQUEST", Option: OptCustomRequest, Class: ClassString},
	{Name: "INTERFACE", Option: OptInterface, Class: ClassString},
	{Name: "KRBLEVEL", Option: OptKRBLevel, Class: ClassString},
	{Name: "CAINFO", Option: OptCAInfo, Class: ClassString},
	{Name: "COOKIEJAR", Option: OptCookieJar, Class: ClassString},
	{Name: "SSL_CIPHER_LIST", Option: OptSSLCipherList, Class: ClassString},
	{Name: "SSLCERTTYPE", Option: OptSSLCertType, Class: ClassString},
	{Name: "SSLKEY", Option: OptSSLKey, Class: ClassString},
	{Name: "SSLKEYTYPE", Option: OptSSLKeyType, Class: ClassString},
	{Name: "SSLENGINE", Option: OptSSLEngine, Class: ClassString},
	{Name: "CAPATH", Option: OptCAPath, Class: ClassString},
	{Name: "ACCEPT_ENCODING", Option: OptAcceptEncoding, Class: ClassString},
	{Name: "NETRC_FILE", Option: OptNetrcFile, Class: ClassString},
	{Name: "FTP_ACCOUNT", Option: OptFTPAccount, Class: ClassString},
	{Name: "COOKIELIST", Option: OptCookieList, Class: ClassString},
	{Name: "USERNAME", Option: OptUsername, Class: ClassString},
	{Name: "PASSWORD", Option: OptPassword, Class: ClassString},
	{Name: "PROXYUSERNAME", Option: OptProxyUsername, Class: ClassString},
	{Name: "PROXYPASSWORD", Option: OptProxyPassword, Class: ClassString},
	{Name: "NOPROXY", Option: OptNoProxy, Class: ClassString},
	{Name: "SSH_KNOWNHOSTS", Option: OptSSHKnownHosts, Class: ClassString},
	{Name: "MAIL_FROM", Option: OptMailFrom, Class: ClassString},
	{Name: "DNS_SERVERS", Option: OptDNSServers, Class: ClassString},
	{Name: "UNIX_SOCKET_PATH", Option: OptUnixSocketPath, Class: ClassString},
	{Name: "DEFAULT_PROTOCOL", Option: OptDefaultProtocol, Class: ClassString},
	{Name: "REQUEST_TARGET", Option: OptRequestTarget, Class: ClassString},
	{Name: "DOH_URL", Option: OptDOHURL, Class: ClassString, MinVersion: MakeVersion(7, 62, 0)},

	// List valued. HTTPPOST is the structured multipart special case.
	{Name: "HTTPHEADER", Option: OptHTTPHeader, Class: ClassList},
	{Name: "HTTPPOST", Option: OptHTTPPost, Class: ClassList},
	{Name: "QUOTE", Option: OptQuote, Class: ClassList},
	{Name: "POSTQUOTE", Option: OptPostQuote, Class: ClassList},
	{Name: "TELNETOPTIONS", Option: OptTelnetOptions, Class: ClassList},
	{Name: "PREQUOTE", Option: OptPreQuote, Class: ClassList},
	{Name: "HTTP200ALIASES", Option: OptHTTP200Aliases, Class: ClassList},
	{Name: "MAIL_RCPT", Option: OptMailRcpt, Class: ClassList},
	{Name: "RESOLVE", Option: OptResolve, Class: ClassList},
	{Name: "PROXYHEADER", Option: OptProxyHeader, Class: ClassList},
	{Name: "CONNECT_TO", Option: OptConnectTo, Class: ClassList},

	// Callback valued.
	{Name: "WRITEFUNCTION", Option: OptWriteFunction, Class: ClassFunction},
	{Name: "HEADERFUNCTION", Option: OptHeaderFunction, Class: ClassFunction},
	{Name: "PROGRESSFUNCTION", Option: OptProgressFunction, Class: ClassFunction},
	{Name: "DEBUGFUNCTION", Option: OptDebugFunction, Class: ClassFunction},
	{Name: "CHUNK_BGN_FUNCTION", Option: OptChunkBgnFunction, Class: ClassFunction},
	{Name: "CHUNK_END_FUNCTION", Option: OptChunkEndFunction, Class: ClassFunction},
	{Name: "FNMATCH_FUNCTION", Option: OptFnMatchFunction, Class: ClassFunction},
	{Name: "XFERINFOFUNCTION", Option: OptXferInfoFunction, Class: ClassFunction, MinVersion: Version7320},
	{Name: "TRAILERFUNCTION", Option: OptTrailerFunction, Class: ClassFunction, MinVersion: Version7640},

	// Opaque engine-specific pointers.
	{Name: "SHARE", Option: OptShare, Class: ClassSpecific},
	{Name: "STDERR", Option: OptStderr, Class: ClassSpecific},

	// Not implemented: the host runtime has no use for raw data pointers or
	// callback slots whose contract cannot cross the boundary.
	{Name: "WRITEDATA", Option: OptWriteData, Class: ClassNotImplemented},
	{Name: "HEADERDATA", Option: OptHeaderData, Class: ClassNotImplemented},
	{Name: "DEBUGDATA", Option: OptDebugData, Class: ClassNotImplemented},
	{Name: "PROGRESSDATA", Option: OptProgressData, Class: ClassNotImplemented},
	{Name: "CHUNK_DATA", Option: OptChunkData, Class: ClassNotImplemented},
	{Name: "FNMATCH_DATA", Option: OptFnMatchData, Class: ClassNotImplemented},
	{Name: "TRAILERDATA", Option: OptTrailerData, Class: ClassNotImplemented},
	{Name: "SEEKDATA", Option: OptSeekData, Class: ClassNotImplemented},
	{Name: "PRIVATE", Option: OptPrivate, Class: ClassNotImplemented},
	{Name: "ERRORBUFFER", Option: OptErrorBuffer, Class: ClassNotImplemented},
	{Name: "READFUNCTION", Option: OptReadFunction, Class: ClassNotImplemented},
	{Name: "SEEKFUNCTION", Option: OptSeekFunction, Class: ClassNotImplemented},
	{Name: "IOCTLFUNCTION", Option: OptIoctlFunction, Class: ClassNotImplemented},
	{Name: "SOCKOPTFUNCTION", Option: OptSockoptFunction, Class: ClassNotImplemented},
	{Name: "OPENSOCKETFUNCTION", Option: OptOpenSocketFunction, Class: ClassNotImplemented},
	{Name: "CLOSESOCKETFUNCTION", Option: OptCloseSocketFunction, Class: ClassNotImplemented},
	{Name: "SSL_CTX_FUNCTION", Option: OptSSLCtxFunction, Class: ClassNotImplemented},
	{Name: "SSH_KEYFUNCTION", Option: OptSSHKeyFunction, Class: ClassNotImplemented},
}
