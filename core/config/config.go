// Package config holds the parse configuration for org-mode input.
//
// There is no process-global configuration state: a Config is threaded
// explicitly through every parse call, and a zero Config is usable.
//
/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

// Default workflow keywords, as in stock Emacs org-mode.
var (
	DefaultTodoKeywords = []string{"TODO"}
	DefaultDoneKeywords = []string{"DONE"}
)

// Config controls a single parse run.
type Config struct {
	// TodoKeywords are the workflow keywords denoting open items,
	// recognized at the start of headline titles. Nil selects
	// DefaultTodoKeywords.
	TodoKeywords []string
	// DoneKeywords are the workflow keywords denoting completed items.
	// Nil selects DefaultDoneKeywords.
	DoneKeywords []string
	// Strict lets the parser fail with an ELEX error on unterminated raw
	// constructs (#+BEGIN_… without matching #+END_…). The default is
	// forgiving: malformed input degrades to plain text.
	Strict bool
}

// Default returns the stock configuration: TODO/DONE keywords, forgiving
// parsing.
func Default() Config {
	return Config{
		TodoKeywords: DefaultTodoKeywords,
		DoneKeywords: DefaultDoneKeywords,
	}
}

// Todo returns the configured open-item keywords, falling back to the
// defaults for a zero Config.
func (c Config) Todo() []string {
	if c.TodoKeywords == nil {
		return DefaultTodoKeywords
	}
	return c.TodoKeywords
}

// Done returns the configured completed-item keywords, falling back to the
// defaults for a zero Config.
func (c Config) Done() []string {
	if c.DoneKeywords == nil {
		return DefaultDoneKeywords
	}
	return c.DoneKeywords
}
