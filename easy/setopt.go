package easy

import (
	"go.uber.org/zap"

	"github.com/TrustedPlus/trusted-curl/curl"
	"github.com/TrustedPlus/trusted-curl/errors"
	"github.com/TrustedPlus/trusted-curl/form"
	"github.com/TrustedPlus/trusted-curl/host"
)

// SetOpt installs one configuration option. The returned code is the
// engine's verdict and is data: an engine-level rejection (for example an
// option the running engine release does not know) comes back as a non-OK
// code with a nil error. Host-level misuse (closed handle, unsupported
// identifier, wrong value type, malformed multipart descriptor) returns an
// error and never reaches the engine.
func (e *Easy) SetOpt(name string, value any) (curl.Code, error) {
	if !e.isOpen {
		return curl.OK, errors.ClosedHandle(errors.PhaseSetopt)
	}
	desc, _ := curl.ClassifyOption(name, e.version)
	return e.setClassified(desc, value)
}

// SetOptID is SetOpt for callers holding the numeric option form.
func (e *Easy) SetOptID(opt curl.Option, value any) (curl.Code, error) {
	if !e.isOpen {
		return curl.OK, errors.ClosedHandle(errors.PhaseSetopt)
	}
	desc, _ := curl.ClassifyOptionID(opt, e.version)
	if desc.Name == "" {
		desc.Name = "option " + desc.Option.String()
	}
	return e.setClassified(desc, value)
}

func (e *Easy) setClassified(desc curl.OptionDesc, value any) (curl.Code, error) {
	var code curl.Code
	var err error

	switch desc.Class {
	case curl.ClassNotImplemented:
		return curl.OK, errors.UnsupportedOption(errors.PhaseSetopt, desc.Name)

	case curl.ClassSpecific:
		// Opaque engine-specific values cannot cross the host boundary;
		// the engine's own rejection code is the defined answer.
		return curl.ErrUnknownOption, nil

	case curl.ClassString:
		code, err = e.setStringOption(desc, value)

	case curl.ClassInteger:
		code, err = e.setIntegerOption(desc, value)

	case curl.ClassList:
		code, err = e.setListOption(desc, value)

	case curl.ClassFunction:
		code, err = e.setFunctionOption(desc, value)

	default:
		return curl.OK, errors.UnsupportedOption(errors.PhaseSetopt, desc.Name)
	}

	if err == nil {
		Logger().Debug("option installed",
			zap.Uint64("id", e.id),
			zap.String("option", desc.Name),
			zap.Int32("code", int32(code)))
	}
	return code, err
}

func (e *Easy) setStringOption(desc curl.OptionDesc, value any) (curl.Code, error) {
	if value == nil {
		code := e.handle.SetString(desc.Option, nil)
		if code == curl.OK {
			e.retained.dropString(desc.Option)
		}
		return code, nil
	}

	s, err := host.ToString(value)
	if err != nil {
		return curl.OK, errors.TypeMismatch(errors.PhaseSetopt, desc.Name, "a string or null", value)
	}

	code := e.handle.SetString(desc.Option, &s)
	if code == curl.OK {
		e.retained.putString(desc.Option, s)
	}
	return code, nil
}

func (e *Easy) setIntegerOption(desc curl.OptionDesc, value any) (curl.Code, error) {
	// The write path reads the descriptor itself; the engine never needs
	// to own it.
	if desc.Option == curl.OptReadData {
		fd, err := host.ToInt64(value)
		if err != nil {
			return curl.OK, errors.TypeMismatch(errors.PhaseSetopt, desc.Name, "a file descriptor number", value)
		}
		e.readDataFD = fd
		e.hasReadFD = true
		return curl.OK, nil
	}

	if desc.Option.IsWide() {
		n, err := host.ToInt64(value)
		if err != nil {
			return curl.OK, errors.TypeMismatch(errors.PhaseSetopt, desc.Name, "a number", value)
		}
		return e.handle.SetOff(desc.Option, n), nil
	}

	n, err := host.ToInt32(value)
	if err != nil {
		return curl.OK, errors.TypeMismatch(errors.PhaseSetopt, desc.Name, "a number", value)
	}
	return e.handle.SetInt(desc.Option, int64(n)), nil
}

func (e *Easy) setListOption(desc curl.OptionDesc, value any) (curl.Code, error) {
	if desc.Option == curl.OptHTTPPost {
		return e.setMultipartOption(desc, value)
	}

	if value == nil {
		code := e.handle.SetList(desc.Option, nil)
		if code == curl.OK {
			e.retained.dropList(desc.Option)
		}
		return code, nil
	}

	strs, err := host.ToStrings(value)
	if err != nil {
		return curl.OK, errors.TypeMismatch(errors.PhaseSetopt, desc.Name,
			"an ordered sequence of strings or null", value)
	}

	var list *curl.SList
	for _, s := range strs {
		list = list.Append(s)
	}

	code := e.handle.SetList(desc.Option, list)
	if code != curl.OK {
		// Failed install must not leak the freshly built list.
		list.FreeAll()
		return code, nil
	}
	e.retained.putList(desc.Option, list)
	return code, nil
}

func (e *Easy) setMultipartOption(desc curl.OptionDesc, value any) (curl.Code, error) {
	if value == nil {
		code := e.handle.SetForm(desc.Option, nil)
		if code == curl.OK {
			e.retained.dropForm(desc.Option)
		}
		return code, nil
	}

	rows, ok := value.([]any)
	if !ok {
		return curl.OK, errors.TypeMismatch(errors.PhaseSetopt, desc.Name,
			"an ordered sequence of field descriptors or null", value)
	}

	body, err := form.FromDescriptors(rows)
	if err != nil {
		// No partial body is ever installed.
		return curl.OK, err
	}

	code := e.handle.SetForm(desc.Option, body)
	if code == curl.OK {
		e.retained.putForm(desc.Option, body)
	}
	return code, nil
}
