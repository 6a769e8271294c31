package preprocessor

import (
	"regexp"
	"strings"
)

// ---------------- Directive classification ----------------

// Kind tags what a single source line means to the includer.
type Kind int

const (
	Plain Kind = iota
	EndIf
	IfStart
	IfNDef
	Define
	Include
)

func (k Kind) String() string {
	switch k {
	case EndIf:
		return "endif"
	case IfStart:
		return "if"
	case IfNDef:
		return "ifndef"
	case Define:
		return "define"
	case Include:
		return "include"
	default:
		return "plain"
	}
}

// Directive is a classified line. Kind is the most specific match;
// IfStart is also true for IfNDef lines since both push the stack.
type Directive struct {
	Kind    Kind
	IfStart bool
	Arg     string // symbol for IfNDef/Define, path for Include
	Text    string
}

var (
	reIfndef  = regexp.MustCompile(`^#ifndef\s+(\w+)`)
	reEndif   = regexp.MustCompile(`^#endif`)
	reDefine  = regexp.MustCompile(`^#define\s+(\w+)`)
	reInclude = regexp.MustCompile(`^#include\s+"([\w.]+)"`)
)

// Classify tags line once so the decision table never re-matches text.
func Classify(line string) Directive {
	d := Directive{Kind: Plain, Text: line}
	if !strings.HasPrefix(line, "#") {
		return d
	}
	if reEndif.MatchString(line) {
		d.Kind = EndIf
		return d
	}
	if strings.HasPrefix(line, "#if") {
		d.Kind = IfStart
		d.IfStart = true
		if m := reIfndef.FindStringSubmatch(line); m != nil {
			d.Kind = IfNDef
			d.Arg = m[1]
		}
		return d
	}
	if m := reDefine.FindStringSubmatch(line); m != nil {
		d.Kind = Define
		d.Arg = m[1]
		return d
	}
	if m := reInclude.FindStringSubmatch(line); m != nil {
		d.Kind = Include
		d.Arg = m[1]
	}
	return d
}
