// Package rendering renders a resume into text, markup and document formats.
package rendering

import "strings"

// latexEscaper covers the characters LaTeX treats as markup, plus < > | which the
// default T1 font encoding prints as other glyphs in body text
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`_`, `\_`,
	`^`, `\textasciicircum{}`,
	`~`, `\textasciitilde{}`,
	`<`, `\textless{}`,
	`>`, `\textgreater{}`,
	`|`, `\textbar{}`,
)

// EscapeLaTeX makes resume text safe to place in a LaTeX document body
func EscapeLaTeX(text string) string {
	return latexEscaper.Replace(text)
}
