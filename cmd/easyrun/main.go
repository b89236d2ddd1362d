package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/TrustedPlus/trusted-curl/curl"
	"github.com/TrustedPlus/trusted-curl/easy"
	"github.com/TrustedPlus/trusted-curl/engine"
)

func main() {
	var (
		url         = flag.String("url", "", "URL to configure on the handle")
		headers     = flag.String("headers", "", "Request headers (comma-separated)")
		verbose     = flag.Bool("verbose", false, "Set the VERBOSE option")
		infos       = flag.String("info", "EFFECTIVE_URL,RESPONSE_CODE,TOTAL_TIME", "Infos to print after the transfer (comma-separated)")
		respBody    = flag.String("resp-body", "hello from the loopback engine\n", "Scripted response body")
		respHeaders = flag.String("resp-headers", "HTTP/1.1 200 OK", "Scripted response headers (comma-separated)")
		list        = flag.Bool("list", false, "List supported options and infos, then exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *list {
		listIdentifiers()
		return
	}

	if *url == "" {
		fmt.Fprintln(os.Stderr, "Usage: easyrun -url <url> [-headers H1,H2] [-verbose] [-info NAMES]")
		fmt.Fprintln(os.Stderr, "       easyrun -list")
		fmt.Fprintln(os.Stderr, "       easyrun -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*url, *headers, *infos, *respBody, *respHeaders, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listIdentifiers() {
	lb := engine.NewLoopback()
	fmt.Printf("Engine: loopback %s\n", lb.Version())
	fmt.Printf("Options: %d table entries\n", curl.OptionCount())
	fmt.Println("\nSupported option classes: string, integer, list, function")
	fmt.Println("Use the symbolic names from the native engine, e.g. URL, HTTPHEADER, VERBOSE.")
}

func run(url, headerStr, infoStr, respBody, respHeaders string, verbose bool) error {
	lb := engine.NewLoopback()

	e, err := easy.New(lb)
	if err != nil {
		return err
	}
	defer e.Close()

	if code, err := e.SetOpt("URL", url); err != nil {
		return err
	} else if code != curl.OK {
		return fmt.Errorf("set URL: %s", easy.StrError(code))
	}

	if headerStr != "" {
		var hs []any
		for _, h := range strings.Split(headerStr, ",") {
			hs = append(hs, h)
		}
		if code, err := e.SetOpt("HTTPHEADER", hs); err != nil {
			return err
		} else if code != curl.OK {
			return fmt.Errorf("set HTTPHEADER: %s", easy.StrError(code))
		}
	}

	if verbose {
		if _, err := e.SetOpt("VERBOSE", 1); err != nil {
			return err
		}
	}

	// Wire the response through the adapter's callbacks.
	var body strings.Builder
	e.OnData = func(args ...any) (any, error) {
		data := args[0].([]byte)
		body.Write(data)
		return len(data), nil
	}
	e.OnHeader = func(args ...any) (any, error) {
		data := args[0].([]byte)
		fmt.Printf("< %s\n", strings.TrimRight(string(data), "\r\n"))
		return len(data), nil
	}

	script := engine.Script{Body: [][]byte{[]byte(respBody)}}
	for _, h := range strings.Split(respHeaders, ",") {
		script.Headers = append(script.Headers, h+"\r\n")
	}
	if h, ok := e.EngineHandle().(*engine.Handle); ok {
		h.SetScript(script)
	}

	code, err := e.Perform()
	if err != nil {
		return err
	}
	fmt.Printf("\nTransfer finished: %s (%d)\n", easy.StrError(code), code)
	fmt.Printf("\n--- body ---\n%s", body.String())

	if infoStr != "" {
		fmt.Printf("\n--- info ---\n")
		for _, name := range strings.Split(infoStr, ",") {
			res, err := e.GetInfo(name)
			if err != nil {
				fmt.Printf("%-24s error: %v\n", name, err)
				continue
			}
			fmt.Printf("%-24s %v\n", name, res.Value)
		}
	}

	return nil
}
