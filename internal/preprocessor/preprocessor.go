package preprocessor

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// DefaultMaxDepth bounds include recursion for a top-level invocation.
const DefaultMaxDepth = 200

var (
	ErrUnbalancedEndif = errors.New("#endif without matching #if")
	ErrIncludeDepth    = errors.New("include depth exceeded")
)

// LineSep is the platform line separator used to split and join text.
var LineSep = lineSeparator(runtime.GOOS)

func lineSeparator(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// ---------------- Defines ----------------

// Defines is the set of guard symbols seen during one top-level
// invocation. It is shared by every nested include.
type Defines map[string]struct{}

func NewDefines(names ...string) Defines {
	d := Defines{}
	for _, n := range names {
		d.Add(n)
	}
	return d
}

func (d Defines) Add(name string) { d[name] = struct{}{} }

func (d Defines) Has(name string) bool {
	_, ok := d[name]
	return ok
}

// ---------------- Includer ----------------

type Includer struct {
	Loader   Loader
	MaxDepth int
	Logger   *slog.Logger
}

func NewIncluder(loader Loader) *Includer {
	return &Includer{Loader: loader, MaxDepth: DefaultMaxDepth}
}

// Process loads name and returns it with local includes expanded and
// already-seen include guards elided. A nil defines starts a fresh set.
func (in *Includer) Process(name string, defines Defines) (string, error) {
	if defines == nil {
		defines = Defines{}
	}
	return in.process(name, defines, 0)
}

func (in *Includer) process(name string, defines Defines, depth int) (string, error) {
	maxDepth := in.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if depth > maxDepth {
		return "", fmt.Errorf("%s: %w (%d)", name, ErrIncludeDepth, maxDepth)
	}

	text, err := in.Loader.Load(name)
	if err != nil {
		return "", err
	}
	log := in.logger()

	lines := strings.Split(strings.Trim(text, LineSep), LineSep)
	out := make([]string, 0, len(lines))
	stack := 0
	skipping := false

	for i, line := range lines {
		d := Classify(line)

		if d.Kind == EndIf {
			if stack == 0 {
				return "", fmt.Errorf("%s:%d: %w", name, i+1, ErrUnbalancedEndif)
			}
			stack--
			if stack == 0 {
				skipping = false
				continue
			}
		}

		if d.IfStart {
			stack++
		}

		if d.Kind == IfNDef && stack == 1 {
			if defines.Has(d.Arg) {
				log.Debug("guard already defined, skipping block", "file", name, "line", i+1, "symbol", d.Arg)
				skipping = true
			}
			continue
		}

		if skipping {
			continue
		}

		switch {
		case d.Kind == Define && stack == 1:
			defines.Add(d.Arg)
		case d.Kind == Include:
			log.Debug("including", "file", name, "line", i+1, "path", d.Arg)
			sub, err := in.process(d.Arg, defines, depth+1)
			if err != nil {
				return "", fmt.Errorf("%s:%d: %w", name, i+1, err)
			}
			if sub == "" {
				continue
			}
			out = append(out, sub)
		default:
			out = append(out, line)
		}
	}

	return strings.Join(out, LineSep), nil
}

func (in *Includer) logger() *slog.Logger {
	if in.Logger == nil {
		return discard
	}
	return in.Logger
}
