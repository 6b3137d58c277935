package validation

import "github.com/jonathan/resume-cli/internal/types"

// Options tunes CheckResume. Zero values select the defaults.
type Options struct {
	MaxBulletChars int
	WeakPhrases    []string
	SkipStyle      bool
}

// CheckResume runs every writing check and returns the combined violations
func CheckResume(resume *types.Resume, opts *Options) *types.Violations {
	if opts == nil {
		opts = &Options{}
	}
	phrases := opts.WeakPhrases
	if len(phrases) == 0 {
		phrases = DefaultWeakPhrases
	}

	var all []types.Violation
	all = append(all, ValidateBulletLengths(resume, opts.MaxBulletChars)...)
	all = append(all, CheckForbiddenPhrases(resume, phrases)...)
	all = append(all, CheckRepeatedWords(resume)...)
	all = append(all, CheckPassiveVoice(resume)...)
	all = append(all, CheckFirstPerson(resume)...)
	if !opts.SkipStyle {
		all = append(all, CheckBulletStyle(resume)...)
	}

	if all == nil {
		all = []types.Violation{}
	}
	return &types.Violations{Violations: all}
}
