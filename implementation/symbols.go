package implementation

import (
	"unicode"
)

// wordRun is a maximal run of word characters in a line. Columns count
// runes; end is exclusive.
type wordRun struct {
	start int
	end   int
	text  string
}

func isWordRune(r rune) bool {
	return (r == '_') || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// wordRuns scans line left to right and returns its non-overlapping word
// runs.
func wordRuns(line string) []wordRun {
	var runs []wordRun

	column := 0
	start := -1
	startByte := 0
	for index, r := range line {
		if isWordRune(r) {
			if start < 0 {
				start = column
				startByte = index
			}
		} else if start >= 0 {
			runs = append(runs, wordRun{start: start, end: column, text: line[startByte:index]})
			start = -1
		}
		column++
	}
	if start >= 0 {
		runs = append(runs, wordRun{start: start, end: column, text: line[startByte:]})
	}

	return runs
}

// covers treats both ends as inclusive, so a cursor right after the last
// character of a word still selects it.
func (self wordRun) covers(character int) bool {
	return (self.start <= character) && (character <= self.end)
}

// wordAt returns the first word run covering character, or "".
func wordAt(line string, character int) string {
	for _, run := range wordRuns(line) {
		if run.covers(character) {
			return run.text
		}
	}
	return ""
}
