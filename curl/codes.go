package curl

import "strconv"

// Code is a transfer-engine status code. Codes are data, not errors: public
// adapter operations return them to the caller for inspection instead of
// converting them to Go errors.
type Code int32

const (
	OK Code = iota
	ErrUnsupportedProtocol
	ErrFailedInit
	ErrURLMalformat
	ErrNotBuiltIn
	ErrCouldntResolveProxy
	ErrCouldntResolveHost
	ErrCouldntConnect
	ErrWeirdServerReply
	ErrRemoteAccessDenied
	ErrFTPAcceptFailed
	ErrFTPWeirdPassReply
	ErrFTPAcceptTimeout
	ErrFTPWeirdPasvReply
	ErrFTPWeird227Format
	ErrFTPCantGetHost
	ErrHTTP2
	ErrFTPCouldntSetType
	ErrPartialFile
	ErrFTPCouldntRetrFile
	_ // obsolete 20
	ErrQuoteError
	ErrHTTPReturnedError
	ErrWriteError
	_ // obsolete 24
	ErrUploadFailed
	ErrReadError
	ErrOutOfMemory
	ErrOperationTimedout
	_ // obsolete 29
	ErrFTPPortFailed
	ErrFTPCouldntUseRest
	_ // obsolete 32
	ErrRangeError
	ErrHTTPPostError
	ErrSSLConnectError
	ErrBadDownloadResume
	ErrFileCouldntReadFile
	ErrLDAPCannotBind
	ErrLDAPSearchFailed
	_ // obsolete 40
	ErrFunctionNotFound
	ErrAbortedByCallback
	ErrBadFunctionArgument
	_ // obsolete 44
	ErrInterfaceFailed
	_ // obsolete 46
	ErrTooManyRedirects
	ErrUnknownOption
	ErrSetoptOptionSyntax
	_ // obsolete 50
	ErrPeerFailedVerification
	ErrGotNothing
	ErrSSLEngineNotfound
	ErrSSLEngineSetfailed
	ErrSendError
	ErrRecvError
	_ // obsolete 57
	ErrSSLCertproblem
	ErrSSLCipher
	ErrSSLCACert
	ErrBadContentEncoding
	ErrLDAPInvalidURL
	ErrFilesizeExceeded
	ErrUseSSLFailed
	ErrSendFailRewind
	ErrSSLEngineInitfailed
	ErrLoginDenied
	ErrTFTPNotfound
	ErrTFTPPerm
	ErrRemoteDiskFull
	ErrTFTPIllegal
	ErrTFTPUnknownID
	ErrRemoteFileExists
	ErrTFTPNosuchuser
	ErrConvFailed
	ErrConvReqd
	ErrSSLCACertBadfile
	ErrRemoteFileNotFound
	ErrSSH
	ErrSSLShutdownFailed
	ErrAgain
	ErrSSLCRLBadfile
	ErrSSLIssuerError
	ErrFTPPRETFailed
	ErrRTSPCseqError
	ErrRTSPSessionError
	ErrFTPBadFileList
	ErrChunkFailed
	ErrNoConnectionAvailable
	ErrSSLPinnedpubkeynotmatch
	ErrSSLInvalidcertstatus
	ErrHTTP2Stream
	ErrRecursiveAPICall
	ErrAuthError
	ErrHTTP3
	ErrQuicConnectError
)

// ErrConversionFailed is an adapter-level status: GetInfo retrieved a value
// from the engine but could not represent it as a host value. It sits outside
// the engine's code range so it can never collide with a future engine code.
const ErrConversionFailed Code = 1000

var codeMessages = map[Code]string{
	OK:                         "No error",
	ErrUnsupportedProtocol:     "Unsupported protocol",
	ErrFailedInit:              "Failed initialization",
	ErrURLMalformat:            "URL using bad/illegal format or missing URL",
	ErrNotBuiltIn:              "A requested feature, protocol or option was not found built-in in this libcurl due to a build-time decision",
	ErrCouldntResolveProxy:     "Couldn't resolve proxy name",
	ErrCouldntResolveHost:      "Couldn't resolve host name",
	ErrCouldntConnect:          "Couldn't connect to server",
	ErrWeirdServerReply:        "Weird server reply",
	ErrRemoteAccessDenied:      "Access denied to remote resource",
	ErrFTPAcceptFailed:         "FTP: The server failed to connect to data port",
	ErrFTPWeirdPassReply:       "FTP: unknown PASS reply",
	ErrFTPAcceptTimeout:        "FTP: Accepting server connect has timed out",
	ErrFTPWeirdPasvReply:       "FTP: unknown PASV reply",
	ErrFTPWeird227Format:       "FTP: unknown 227 response format",
	ErrFTPCantGetHost:          "FTP: can't figure out the host in the PASV response",
	ErrHTTP2:                   "Error in the HTTP2 framing layer",
	ErrFTPCouldntSetType:       "FTP: couldn't set file type",
	ErrPartialFile:             "Transferred a partial file",
	ErrFTPCouldntRetrFile:      "FTP: couldn't retrieve (RETR failed) the specified file",
	ErrQuoteError:              "Quote command returned error",
	ErrHTTPReturnedError:       "HTTP response code said error",
	ErrWriteError:              "Failed writing received data to disk/application",
	ErrUploadFailed:            "Upload failed (at start/before it took off)",
	ErrReadError:               "Failed to open/read local data from file/application",
	ErrOutOfMemory:             "Out of memory",
	ErrOperationTimedout:       "Timeout was reached",
	ErrFTPPortFailed:           "FTP: command PORT failed",
	ErrFTPCouldntUseRest:       "FTP: command REST failed",
	ErrRangeError:              "Requested range was not delivered by the server",
	ErrHTTPPostError:           "Internal problem setting up the POST",
	ErrSSLConnectError:         "SSL connect error",
	ErrBadDownloadResume:       "Couldn't resume download",
	ErrFileCouldntReadFile:     "Couldn't read a file:// file",
	ErrLDAPCannotBind:          "LDAP: cannot bind",
	ErrLDAPSearchFailed:        "LDAP: search failed",
	ErrFunctionNotFound:        "A required function in the library was not found",
	ErrAbortedByCallback:       "Operation was aborted by an application callback",
	ErrBadFunctionArgument:     "A libcurl function was given a bad argument",
	ErrInterfaceFailed:         "Failed binding local connection end",
	ErrTooManyRedirects:        "Number of redirects hit maximum amount",
	ErrUnknownOption:           "An unknown option was passed in to libcurl",
	ErrSetoptOptionSyntax:      "Malformed telnet option",
	ErrPeerFailedVerification:  "SSL peer certificate or SSH remote key was not OK",
	ErrGotNothing:              "Server returned nothing (no headers, no data)",
	ErrSSLEngineNotfound:       "SSL crypto engine not found",
	ErrSSLEngineSetfailed:      "Can not set SSL crypto engine as default",
	ErrSendError:               "Failed sending data to the peer",
	ErrRecvError:               "Failure when receiving data from the peer",
	ErrSSLCertproblem:          "Problem with the local SSL certificate",
	ErrSSLCipher:               "Couldn't use specified SSL cipher",
	ErrSSLCACert:               "Peer certificate cannot be authenticated with given CA certificates",
	ErrBadContentEncoding:      "Unrecognized or bad HTTP Content or Transfer-Encoding",
	ErrLDAPInvalidURL:          "Invalid LDAP URL",
	ErrFilesizeExceeded:        "Maximum file size exceeded",
	ErrUseSSLFailed:            "Requested SSL level failed",
	ErrSendFailRewind:          "Send failed since rewinding of the data stream failed",
	ErrSSLEngineInitfailed:     "Failed to initialise SSL crypto engine",
	ErrLoginDenied:             "Login denied",
	ErrTFTPNotfound:            "TFTP: File Not Found",
	ErrTFTPPerm:                "TFTP: Access Violation",
	ErrRemoteDiskFull:          "Disk full or allocation exceeded",
	ErrTFTPIllegal:             "TFTP: Illegal operation",
	ErrTFTPUnknownID:           "TFTP: Unknown transfer ID",
	ErrRemoteFileExists:        "Remote file already exists",
	ErrTFTPNosuchuser:          "TFTP: No such user",
	ErrConvFailed:              "Conversion failed",
	ErrConvReqd:                "Caller must register CURLOPT_CONV_ callback options",
	ErrSSLCACertBadfile:        "Problem with the SSL CA cert (path? access rights?)",
	ErrRemoteFileNotFound:      "Remote file not found",
	ErrSSH:                     "Error in the SSH layer",
	ErrSSLShutdownFailed:       "Failed to shut down the SSL connection",
	ErrAgain:                   "Socket not ready for send/recv",
	ErrSSLCRLBadfile:           "Failed to load CRL file (path? access rights?, format?)",
	ErrSSLIssuerError:          "Issuer check against peer certificate failed",
	ErrFTPPRETFailed:           "FTP: The server did not accept the PRET command",
	ErrRTSPCseqError:           "RTSP CSeq mismatch or invalid CSeq",
	ErrRTSPSessionError:        "RTSP session error",
	ErrFTPBadFileList:          "Unable to parse FTP file list",
	ErrChunkFailed:             "Chunk callback failed",
	ErrNoConnectionAvailable:   "The max connection limit is reached",
	ErrSSLPinnedpubkeynotmatch: "SSL public key does not match pinned public key",
	ErrSSLInvalidcertstatus:    "SSL server certificate status verification FAILED",
	ErrHTTP2Stream:             "Stream error in the HTTP/2 framing layer",
	ErrRecursiveAPICall:        "API function called from within callback",
	ErrAuthError:               "An authentication function returned an error",
	ErrHTTP3:                   "HTTP/3 error",
	ErrQuicConnectError:        "QUIC connection error",
	ErrConversionFailed:        "Retrieved value could not be converted to a host value",
}

// StrError maps a status code to a human-readable message. Unknown codes get
// a stable fallback that includes the numeric value.
func StrError(code Code) string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}
	return "Unknown error code " + strconv.Itoa(int(code))
}

func (c Code) String() string { return StrError(c) }

// Codes returns every status code StrError has a dedicated message for,
// in ascending order. Intended for table-driven tests and tooling.
func Codes() []Code {
	out := make([]Code, 0, len(codeMessages))
	for c := range codeMessages {
		out = append(out, c)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
