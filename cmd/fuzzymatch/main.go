// ----------------------------------------------------------
// Fuzzymatch
// A fuzzy string matching tool built on bounded edit distances
// ----------------------------------------------------------
// Docs and code: https://github.com/liminghu/fuzzystrmatch
// ----------------------------------------------------------

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"

	"github.com/liminghu/fuzzystrmatch/levenshtein"
)

const version = "1.0.0"

// Command-line arguments and help
type arguments struct {
	Terms     []string `arg:"positional" help:"terms to compare (a source and one or more targets, or one term with -w)" placeholder:"TERM"`
	Wordlist  string   `arg:"-w" help:"rank every word in FILE against TERM instead of comparing a pair" placeholder:"FILE"`
	Best      int      `arg:"-b" help:"number of closest words to report in wordlist mode" placeholder:"N" default:"10"`
	Max       int      `arg:"--max,-m" help:"report bound+1 as soon as a distance exceeds this bound (-1 = no bound)" placeholder:"BOUND" default:"-1"`
	Algorithm string   `arg:"-a" help:"distance algorithm (simple = character Levenshtein; transposing = byte-wise with adjacent swaps)" default:"simple"`
	InsCost   int      `arg:"--ins" help:"cost of inserting a character" placeholder:"COST" default:"1"`
	DelCost   int      `arg:"--del" help:"cost of deleting a character" placeholder:"COST" default:"1"`
	SubCost   int      `arg:"--sub" help:"cost of substituting a character" placeholder:"COST" default:"1"`
	TransCost int      `arg:"--trans" help:"cost of swapping adjacent characters (transposing algorithm only)" placeholder:"COST" default:"1"`
	Output    string   `arg:"-o" help:"output format (human = human readable; json = JSON)" placeholder:"format" default:"human"`
	Verbosity int      `arg:"-v" help:"how much noise to make (0 = quiet; 1 = debug; 2 = trace)" default:"0"`
}

func (arguments) Version() string {
	return getBanner()
}

var args arguments

// getBanner returns the main banner
func getBanner() string {
	return color.New(color.FgBlue, color.Bold).Sprint("🔍 Fuzzymatch v"+version) + " · " + color.New(color.FgWhite, color.Bold).Sprint("bounded edit distances in the PostgreSQL style")
}

// printHuman prints human readable output if enabled
func printHuman(s ...any) {
	if args.Output == "human" {
		fmt.Println(s...)
	}
}

// printJSON prints JSON formatted output if enabled
func printJSON(o any) {
	if args.Output == "json" {
		j, _ := json.Marshal(o)
		fmt.Println(string(j))
	}
}

type distanceOutput struct {
	Type     string `json:"type"`
	Source   string `json:"source"`
	Target   string `json:"target"`
	Distance int    `json:"distance"`
	Exceeded bool   `json:"exceeded"`
}

type matchOutput struct {
	Type     string `json:"type"`
	Rank     int    `json:"rank"`
	Word     string `json:"word"`
	Distance int    `json:"distance"`
}

type match struct {
	word     string
	distance int
}

// compareTerms prints the distance from the first positional term to each
// further one
func compareTerms(opts []levenshtein.Option) {
	source := args.Terms[0]
	targets := args.Terms[1:]
	if len(targets) > 1 {
		printHuman()
		printHuman(color.New(color.FgWhite, color.Bold).Sprintf("%-9s %s", "DISTANCE", "TERM"))
	}
	for _, target := range targets {

		// Calculate the distance, bounded if a threshold was given
		var d int
		var err error
		if args.Max >= 0 {
			d, err = levenshtein.DistanceLE(source, target, args.Max, opts...)
		} else {
			d, err = levenshtein.Distance(source, target, opts...)
		}
		if err != nil {
			log.WithFields(log.Fields{"source": source, "target": target, "err": err}).Fatal("Distance calculation failed")
		}

		// Report the result
		exceeded := args.Max >= 0 && d > args.Max
		shown := fmt.Sprintf("%d", d)
		if exceeded {
			shown = fmt.Sprintf("> %d", args.Max)
		}
		switch {
		case len(targets) > 1:
			printHuman(fmt.Sprintf("%-9s %s", shown, target))
		case exceeded:
			printHuman(color.New(color.FgWhite, color.Bold).Sprint("Distance:"), color.HiYellowString("%s", shown))
		default:
			printHuman(color.New(color.FgWhite, color.Bold).Sprint("Distance:"), d)
		}
		printJSON(distanceOutput{Type: "distance", Source: source, Target: target, Distance: d, Exceeded: exceeded})
	}
}

// rankWordlist scans the wordlist and keeps the closest words to the term,
// shrinking the distance bound as the list fills so that hopeless words cost
// almost nothing to reject
func rankWordlist(term string, opts []levenshtein.Option) []match {

	// Open the wordlist
	log.WithFields(log.Fields{"file": args.Wordlist}).Info("Using wordlist")
	fh, err := os.Open(args.Wordlist)
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("Unable to open wordlist")
	}
	defer fh.Close()

	// Reject an invalid search term before scanning the wordlist
	if _, err = levenshtein.DistanceLE(term, "", 0, opts...); err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("Invalid search term")
	}

	best := make([]match, 0, args.Best)
	bound := args.Max
	scanned := 0

	s := bufio.NewScanner(fh)
	for s.Scan() {

		// Read the word, skipping blank lines and comments
		word := s.Text()
		if len(word) == 0 || word[0] == '#' {
			continue
		}
		scanned++

		// A distance past the current bound cannot make the list
		d, derr := levenshtein.DistanceLE(term, word, bound, opts...)
		if derr != nil {
			log.WithFields(log.Fields{"word": word, "err": derr}).Warn("Skipping word")
			continue
		}
		if bound >= 0 && d > bound {
			continue
		}

		// Insert in distance order, keeping earlier words on ties
		i := sort.Search(len(best), func(i int) bool { return best[i].distance > d })
		best = append(best, match{})
		copy(best[i+1:], best[i:])
		best[i] = match{word: word, distance: d}
		if len(best) > args.Best {
			best = best[:args.Best]
		}

		// Once the list is full no word farther than the current worst helps
		if len(best) == args.Best {
			if w := best[len(best)-1].distance; bound < 0 || w < bound {
				bound = w
			}
		}
	}
	if err = s.Err(); err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("Error reading wordlist")
	}

	log.WithFields(log.Fields{"scanned": scanned, "kept": len(best)}).Info("Ranked wordlist")

	return best
}

func main() {

	// Parse and validate command-line arguments
	p := arg.MustParse(&args)
	args.Algorithm = strings.ToLower(args.Algorithm)
	if args.Algorithm != "simple" && args.Algorithm != "transposing" {
		p.Fail("algorithm must be one of: simple, transposing")
	}
	args.Output = strings.ToLower(args.Output)
	if args.Output != "human" && args.Output != "json" {
		p.Fail("output must be one of: human, json")
	}
	if args.InsCost < 0 || args.DelCost < 0 || args.SubCost < 0 || args.TransCost < 0 {
		p.Fail("operation costs must be non-negative")
	}
	if args.Best < 1 {
		p.Fail("-b must be at least 1")
	}
	if args.Wordlist == "" && len(args.Terms) < 2 {
		p.Fail("compare mode takes a source term and at least one target (or use -w FILE TERM)")
	}
	if args.Wordlist != "" && len(args.Terms) != 1 {
		p.Fail("wordlist mode takes exactly one term")
	}

	// Say hello
	printHuman(getBanner())

	// Set up logging
	log.SetFormatter(&log.TextFormatter{
		DisableLevelTruncation: true,
		DisableTimestamp:       true,
	})
	if args.Verbosity > 1 {
		log.SetLevel(log.TraceLevel)
	} else if args.Verbosity > 0 {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	// Assemble the distance options
	opts := []levenshtein.Option{
		levenshtein.WithCosts(args.InsCost, args.DelCost, args.SubCost, args.TransCost),
	}
	if args.Algorithm == "transposing" {
		opts = append(opts, levenshtein.WithAlgorithm(levenshtein.Transposing))
	}

	// Compare mode
	if args.Wordlist == "" {
		compareTerms(opts)

		return
	}

	// Wordlist mode
	matches := rankWordlist(args.Terms[0], opts)
	if len(matches) == 0 {
		printHuman("No words within the bound")

		return
	}
	printHuman()
	printHuman(color.New(color.FgWhite, color.Bold).Sprintf("%-9s %s", "DISTANCE", "WORD"))
	for i, m := range matches {
		w := m.word
		if m.distance == matches[0].distance {
			w = color.HiGreenString(w)
		}
		printHuman(fmt.Sprintf("%-9d %s", m.distance, w))
		printJSON(matchOutput{Type: "match", Rank: i + 1, Word: m.word, Distance: m.distance})
	}
}
