// Package wordpool holds the built-in dictionary that secret words are
// drawn from. The list ships with the binary; there is no external word
// file to load.
package wordpool

import "lukechampine.com/frand"

// Source: https://www.hangmanwords.com/words
var poolOfWords = []string{
	"abruptly", "absurd", "abyss", "affix", "askew", "avenue", "awkward",
	"axiom", "azure", "bagpipes", "bandwagon", "banjo", "bayou",
	"beekeeper", "bikini", "blitz", "blizzard", "boggle", "bookworm",
	"boxcar", "boxful", "buckaroo", "buffalo", "buffoon", "buxom",
	"buzzard", "buzzing", "buzzwords", "caliph", "cobweb", "cockiness",
	"croquet", "crypt", "curacao", "cycle", "daiquiri", "dirndl",
	"disavow", "dizzying", "duplex", "dwarves", "embezzle", "equip",
	"espionage", "euouae", "exodus", "faking", "fishhook", "fixable",
	"fjord", "flapjack", "flopping", "fluffiness", "flyby", "foxglove",
	"frazzled", "frizzled", "fuchsia", "funny", "gabby", "galaxy",
	"galvanize", "gazebo", "giaour", "gizmo", "glowworm", "glyph",
	"gnarly", "gnostic", "gossip", "grogginess", "haiku", "haphazard",
	"hyphen", "iatrogenic", "icebox", "injury", "ivory", "ivy", "jackpot",
	"jaundice", "jawbreaker", "jaywalk", "jazziest", "jazzy", "jelly",
	"jigsaw", "jinx", "jiujitsu", "jockey", "jogging", "joking", "jovial",
	"joyful", "juicy", "jukebox", "jumbo", "kayak", "kazoo", "keyhole",
	"khaki", "kilobyte", "kiosk", "kitsch", "kiwifruit", "klutz",
	"knapsack", "larynx", "lengths", "lucky", "luxury", "lymph", "marquis",
	"matrix", "megahertz", "microwave", "mnemonic", "mystify", "naphtha",
	"nightclub", "nowadays", "numbskull", "nymph", "onyx", "ovary",
	"oxidize", "oxygen", "pajama", "peekaboo", "phlegm", "pixel", "pizazz",
	"pneumonia", "polka", "pshaw", "psyche", "puppy", "puzzling", "quartz",
	"queue", "quips", "quixotic", "quiz", "quizzes", "quorum",
	"razzmatazz", "rhubarb", "rhythm", "rickshaw", "schnapps", "scratch",
	"shiv", "snazzy", "sphinx", "spritz", "squawk", "staff", "strength",
	"strengths", "stretch", "stronghold", "stymied", "subway", "swivel",
	"syndrome", "thriftless", "thumbscrew", "topaz", "transcript",
	"transgress", "transplant", "triphthong", "twelfth", "twelfths",
	"unknown", "unworthy", "unzip", "uptown", "vaporize", "vixen", "vodka",
	"voodoo", "vortex", "voyeurism", "walkway", "waltz", "wave", "wavy",
	"waxy", "wellspring", "wheezy", "whiskey", "whizzing", "whomever",
	"wimpy", "witchcraft", "wizard", "woozy", "wristwatch", "wyvern",
	"xylophone", "yachtsman", "yippee", "yoked", "youthful", "yummy",
	"zephyr", "zigzag", "zigzagging", "zilch", "zipper", "zodiac",
	"zombie",
}

type Pool struct {
	words []string
}

func New() *Pool {
	return &Pool{words: poolOfWords}
}

// PickWord returns one dictionary word chosen uniformly at random. Words
// come back lowercase; the game uppercases them on its side.
func (p *Pool) PickWord() string {
	return p.words[frand.Intn(len(p.words))]
}

func (p *Pool) Len() int {
	return len(p.words)
}
