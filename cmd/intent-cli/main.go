// intent-cli runs the pre-processing pipeline over text from a flag or an
// interactive prompt and prints the tokens, entities and sentences it
// finds.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognicore/intentpipe/pkg/intent"
	"github.com/cognicore/intentpipe/pkg/intent/config"
	"github.com/cognicore/intentpipe/pkg/intent/report"
	"github.com/cognicore/intentpipe/pkg/intent/stoplist"
)

func main() {
	var (
		configPath   = flag.String("config", "", "Settings file (optional, YAML)")
		stoplistPath = flag.String("stoplist", "", "Stoplist file (optional, YAML)")
		text         = flag.String("text", "", "One-shot input (non-interactive mode)")
		stripMarkup  = flag.Bool("html", false, "Strip HTML markup from input before processing")
		asJSON       = flag.Bool("json", false, "Emit results as JSON records")
	)
	flag.Parse()

	settings := config.LoadOrDefault(*configPath)
	pipeline := intent.New(settings)

	if *stoplistPath != "" {
		sl, err := config.LoadStoplist(*stoplistPath)
		if err != nil {
			log.Fatal("load stoplist: ", err)
		}
		pipeline.Use(intent.StopwordStage(stoplist.New(sl.Terms)))
	}

	ctx := context.Background()
	builder := report.New()

	run := func(input string) {
		if *stripMarkup {
			input = stripHTML(input)
		}
		res, err := pipeline.Process(ctx, input)
		if err != nil {
			log.Fatal(err)
		}
		if *asJSON {
			out, err := json.MarshalIndent(builder.Build(res), "", "  ")
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(string(out))
			return
		}
		printResult(res)
	}

	// One-shot mode
	if *text != "" {
		run(*text)
		return
	}

	// Interactive mode
	fmt.Println("intentpipe — type text to process (Ctrl+D to exit)")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		run(line)
	}
	fmt.Println()
}

func printResult(res *intent.Result) {
	fmt.Printf("tokens (%d):\n", len(res.Tokens))
	for _, tok := range res.Tokens {
		fmt.Printf("  %-7s %q [%d:%d]\n", tok.Type, tok.Value, tok.Start, tok.End)
	}
	fmt.Printf("entities (%d):\n", len(res.Entities))
	for _, e := range res.Entities {
		fmt.Printf("  %-7s %q [%d:%d]\n", e.Type, e.Value, e.Start, e.End)
	}
	if len(res.Sentences) > 0 {
		fmt.Printf("sentences (%d):\n", len(res.Sentences))
		for _, s := range res.Sentences {
			fmt.Printf("  %s\n", s)
		}
	}
}

func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to the raw string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
