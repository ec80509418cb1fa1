package display

import "strings"

// gallowsStages is indexed by tries remaining: stage 10 is an empty
// gallows base, stage 0 the fully drawn hanged man.
var gallowsStages = [11]string{
	0: `
     -------
    |       |
    |       @
    |      /|\
    |       |
    |      / \
    |
[-------]`,
	1: `
     -------
    |       |
    |       @
    |      /|\
    |       |
    |      /
    |
[-------]`,
	2: `
     -------
    |       |
    |       @
    |      /|\
    |       |
    |
    |
[-------]`,
	3: `
     -------
    |       |
    |       @
    |      /|
    |       |
    |
    |
[-------]`,
	4: `
     -------
    |       |
    |       @
    |       |
    |       |
    |
    |
[-------]`,
	5: `
     -------
    |       |
    |       @
    |
    |
    |
    |
[-------]`,
	6: `
     -------
    |       |
    |
    |
    |
    |
    |
[-------]`,
	7: `
     -------
    |
    |
    |
    |
    |
    |
[-------]`,
	8: `

    |
    |
    |
    |
    |
    |
[-------]`,
	9: `




    |
    |
    |
[-------]`,
	10: `







[-------]`,
}

// gallowsArt returns the drawing for the given number of tries remaining,
// clamped into range so a misconfigured tries budget still renders.
func gallowsArt(triesLeft int) string {
	if triesLeft < 0 {
		triesLeft = 0
	}
	if triesLeft > 10 {
		triesLeft = 10
	}
	return gallowsStages[triesLeft]
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

// maxArtHeight is the line count of the tallest stage. The full-screen
// renderer needs this many rows below the header to draw any stage.
func maxArtHeight() int {
	max := 0
	for _, stage := range gallowsStages {
		if h := len(splitLines(stage)); h > max {
			max = h
		}
	}
	return max
}
