// Command parsedoc is a line-oriented front door onto the document
// package: it opens a file, accepts textual edits from a small ":command"
// language on stdin, and prints the highlighted result. It exists only to
// give the core parser and document packages a runnable entry point; the
// keystroke loop and screen rendering it wraps are not part of the core.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aretext/parsedoc/config"
	"github.com/aretext/parsedoc/document"
	"github.com/aretext/parsedoc/file"
	"github.com/aretext/parsedoc/text"
)

var (
	noconfig = flag.Bool("noconfig", false, "force default configuration instead of loading/writing a config file")
	logpath  = flag.String("log", "", "log to file instead of discarding log output")
	render   = flag.Bool("render", false, "render the highlighted buffer to the terminal before exiting")
)

func main() {
	flag.Usage = printUsage
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds)
	if *logpath != "" {
		logFile, err := os.Create(*logpath)
		if err != nil {
			exitWithError(err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	path := flag.Arg(0)
	if path == "" {
		exitWithError(fmt.Errorf("parsedoc: a file path argument is required"))
	}

	if err := run(path); err != nil {
		exitWithError(err)
	}
}

func printUsage() {
	f := flag.CommandLine.Output()
	fmt.Fprintf(f, "Usage: %s [options...] path\n", os.Args[0])
	flag.PrintDefaults()
}

func run(path string) error {
	ruleSet, err := loadRuleSet()
	if err != nil {
		return err
	}
	gram := ruleSet.GrammarForPath(path)

	buf, err := file.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("%q does not exist yet; starting from an empty buffer\n", path)
		buf = text.NewBuffer()
	} else if err != nil {
		return err
	}

	doc := document.New(gram)
	if buf.ByteLen() > 0 {
		if err := doc.Edit(text.Span{}, buf.String()); err != nil {
			return err
		}
	}

	if err := runREPL(os.Stdin, os.Stdout, path, doc); err != nil {
		return err
	}

	if *render {
		return renderToTerminal(doc, gram)
	}
	return nil
}

func loadRuleSet() (config.RuleSet, error) {
	if *noconfig {
		return config.DefaultRuleSet(), nil
	}
	configPath, err := config.Path()
	if err != nil {
		return config.RuleSet{}, err
	}
	return config.Load(configPath)
}

func runREPL(in io.Reader, out io.Writer, path string, doc *document.Document) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if err := runCommand(line, out, path, doc); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}
