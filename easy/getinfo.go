package easy

import (
	"github.com/TrustedPlus/trusted-curl/curl"
	"github.com/TrustedPlus/trusted-curl/errors"
)

// InfoResult pairs the engine's verdict with the converted value. Value is
// nil whenever Code is not OK.
type InfoResult struct {
	Code  curl.Code
	Value any
}

// GetInfo retrieves one introspection value. Unsupported identifiers and a
// closed handle fail with an error; everything else comes back as an
// InfoResult, including engine-level failure codes. An internal conversion
// failure degrades to the ErrConversionFailed status instead of raising, so
// the accessor stays total.
func (e *Easy) GetInfo(name string) (InfoResult, error) {
	if !e.isOpen {
		return InfoResult{}, errors.ClosedHandle(errors.PhaseGetinfo)
	}
	desc, _ := curl.ClassifyInfo(name, e.version)
	return e.getClassified(desc)
}

// GetInfoID is GetInfo for callers holding the numeric info form.
func (e *Easy) GetInfoID(info curl.Info) (InfoResult, error) {
	if !e.isOpen {
		return InfoResult{}, errors.ClosedHandle(errors.PhaseGetinfo)
	}
	desc, _ := curl.ClassifyInfoID(info, e.version)
	return e.getClassified(desc)
}

func (e *Easy) getClassified(desc curl.InfoDesc) (res InfoResult, err error) {
	if desc.Class == curl.InfoNotImplemented {
		return InfoResult{}, errors.UnsupportedOption(errors.PhaseGetinfo, desc.Name)
	}

	defer func() {
		if recover() != nil {
			res = InfoResult{Code: curl.ErrConversionFailed}
			err = nil
		}
	}()

	switch desc.Class {
	case curl.InfoClassString:
		s, code := e.handle.GetString(desc.Info)
		if code != curl.OK {
			return InfoResult{Code: code}, nil
		}
		// Unset string infos surface as null, not an empty buffer.
		if s == "" {
			return InfoResult{Code: code, Value: nil}, nil
		}
		return InfoResult{Code: code, Value: s}, nil

	case curl.InfoClassDouble:
		v, code := e.handle.GetDouble(desc.Info)
		if code != curl.OK {
			return InfoResult{Code: code}, nil
		}
		return InfoResult{Code: code, Value: v}, nil

	case curl.InfoClassLong:
		v, code := e.handle.GetLong(desc.Info)
		if code != curl.OK {
			return InfoResult{Code: code}, nil
		}
		return InfoResult{Code: code, Value: v}, nil

	case curl.InfoClassOffT:
		v, code := e.handle.GetOff(desc.Info)
		if code != curl.OK {
			return InfoResult{Code: code}, nil
		}
		return InfoResult{Code: code, Value: v}, nil

	case curl.InfoClassSocket:
		v, code := e.handle.GetSocket(desc.Info)
		if code != curl.OK {
			return InfoResult{Code: code}, nil
		}
		return InfoResult{Code: code, Value: int64(v)}, nil

	case curl.InfoClassSList:
		l, code := e.handle.GetList(desc.Info)
		if code != curl.OK {
			return InfoResult{Code: code}, nil
		}
		// Drain in order, then free: the native list's lifetime does not
		// need to outlive this call.
		values := l.Strings()
		l.FreeAll()
		if values == nil {
			values = []string{}
		}
		return InfoResult{Code: code, Value: values}, nil
	}

	return InfoResult{}, errors.UnsupportedOption(errors.PhaseGetinfo, desc.Name)
}
