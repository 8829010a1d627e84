// url-scan fetches a web page, reduces it to text, runs the pipeline over
// it, and emits the result as a JSON record.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/cognicore/intentpipe/pkg/intent"
	"github.com/cognicore/intentpipe/pkg/intent/config"
	"github.com/cognicore/intentpipe/pkg/intent/report"
)

func main() {
	var (
		configPath = flag.String("config", "", "Settings file (optional, YAML)")
		timeout    = flag.Duration("timeout", 30*time.Second, "HTTP fetch timeout")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: url-scan [-config file] <url>")
	}
	target := flag.Arg(0)

	client := &http.Client{Timeout: *timeout}
	resp, err := client.Get(target)
	if err != nil {
		log.Fatal("fetch: ", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("fetch: %s returned %s", target, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatal("read body: ", err)
	}

	pipeline := intent.New(config.LoadOrDefault(*configPath))
	res, err := pipeline.Process(context.Background(), extractText(string(body)))
	if err != nil {
		log.Fatal("process: ", err)
	}

	out, err := json.MarshalIndent(report.New().Build(res), "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}

// extractText collects the text nodes of a page, skipping script and style
// subtrees, and collapses whitespace.
func extractText(page string) string {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return page
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(buf.String()), " ")
}
